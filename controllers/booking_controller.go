package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-backoffice/models"
	"hotel-backoffice/services"
	"hotel-backoffice/utils"
)

type BookingController struct {
	BookingSvc *services.BookingService
	StatsSvc   *services.StatsService
}

func NewBookingController(svc *services.BookingService, stats *services.StatsService) *BookingController {
	return &BookingController{BookingSvc: svc, StatsSvc: stats}
}

// GetBookings (GET /api/bookings)
func (ctrl *BookingController) GetBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.List(c.Request.Context())
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// CreateBooking (POST /api/bookings)
func (ctrl *BookingController) CreateBooking(c *gin.Context) {
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload: "+err.Error())
		return
	}

	created, err := ctrl.BookingSvc.Create(c.Request.Context(), &booking)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}

	ctrl.StatsSvc.Invalidate(c.Request.Context())
	c.JSON(http.StatusCreated, gin.H{
		"message": "booking created successfully",
		"booking": created,
	})
}

// UpdateBooking (PUT /api/bookings)
func (ctrl *BookingController) UpdateBooking(c *gin.Context) {
	var booking models.Booking
	if err := c.ShouldBindJSON(&booking); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid booking payload: "+err.Error())
		return
	}

	updated, err := ctrl.BookingSvc.Update(c.Request.Context(), &booking)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}

	ctrl.StatsSvc.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"message": "booking updated successfully",
		"booking": updated,
	})
}

// DeleteBooking (DELETE /api/bookings?bookingRef=)
func (ctrl *BookingController) DeleteBooking(c *gin.Context) {
	bookingRef := c.Query("bookingRef")
	if bookingRef == "" {
		utils.JSONError(c, http.StatusBadRequest, "bookingRef is required")
		return
	}

	if err := ctrl.BookingSvc.Delete(c.Request.Context(), bookingRef); err != nil {
		utils.JSONFailure(c, err)
		return
	}

	ctrl.StatsSvc.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{"message": "booking deleted successfully"})
}

// FilterBookings (GET /api/bookings/filter?field=&value=)
func (ctrl *BookingController) FilterBookings(c *gin.Context) {
	bookings, err := ctrl.BookingSvc.Filter(c.Request.Context(), c.Query("field"), c.Query("value"))
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}
