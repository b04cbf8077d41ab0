package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-backoffice/services"
	"hotel-backoffice/utils"
)

type StatsController struct {
	StatsSvc *services.StatsService
}

func NewStatsController(svc *services.StatsService) *StatsController {
	return &StatsController{StatsSvc: svc}
}

// GetCustomerStats (GET /api/stats/customers)
func (ctrl *StatsController) GetCustomerStats(c *gin.Context) {
	stats, err := ctrl.StatsSvc.CustomerStats(c.Request.Context())
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

// GetBookingStats (GET /api/stats/bookings)
func (ctrl *StatsController) GetBookingStats(c *gin.Context) {
	stats, err := ctrl.StatsSvc.BookingStats(c.Request.Context())
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
