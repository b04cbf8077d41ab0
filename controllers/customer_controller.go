package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"hotel-backoffice/models"
	"hotel-backoffice/services"
	"hotel-backoffice/utils"
)

type CustomerController struct {
	CustomerSvc *services.CustomerService
	StatsSvc    *services.StatsService
}

func NewCustomerController(svc *services.CustomerService, stats *services.StatsService) *CustomerController {
	return &CustomerController{CustomerSvc: svc, StatsSvc: stats}
}

// GetCustomers (GET /api/customers)
func (ctrl *CustomerController) GetCustomers(c *gin.Context) {
	customers, err := ctrl.CustomerSvc.List(c.Request.Context())
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GetCustomerByRef (GET /api/customers/:customerRef)
func (ctrl *CustomerController) GetCustomerByRef(c *gin.Context) {
	customer, err := ctrl.CustomerSvc.GetByRef(c.Request.Context(), c.Param("customerRef"))
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// CreateCustomer (POST /api/customers)
func (ctrl *CustomerController) CreateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid customer payload: "+err.Error())
		return
	}

	created, err := ctrl.CustomerSvc.Create(c.Request.Context(), &customer)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}

	ctrl.StatsSvc.Invalidate(c.Request.Context())
	c.JSON(http.StatusCreated, gin.H{
		"message":  "customer and booking entry created successfully",
		"customer": created,
	})
}

// UpdateCustomer (PUT /api/customers)
func (ctrl *CustomerController) UpdateCustomer(c *gin.Context) {
	var customer models.Customer
	if err := c.ShouldBindJSON(&customer); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid customer payload: "+err.Error())
		return
	}

	updated, syncFailed, err := ctrl.CustomerSvc.Update(c.Request.Context(), &customer)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}

	ctrl.StatsSvc.Invalidate(c.Request.Context())
	resp := gin.H{
		"message":  "customer updated successfully",
		"customer": updated,
	}
	if syncFailed {
		resp["bookingSyncFailed"] = true
		resp["message"] = "customer updated, but dependent bookings could not be re-pointed"
	}
	c.JSON(http.StatusOK, resp)
}

// DeleteCustomer (DELETE /api/customers?customerRef=)
func (ctrl *CustomerController) DeleteCustomer(c *gin.Context) {
	customerRef := c.Query("customerRef")
	if customerRef == "" {
		utils.JSONError(c, http.StatusBadRequest, "customerRef is required")
		return
	}

	deletedBookings, err := ctrl.CustomerSvc.Delete(c.Request.Context(), customerRef)
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}

	ctrl.StatsSvc.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"message":         "customer and bookings deleted successfully",
		"deletedBookings": deletedBookings,
	})
}

// FilterCustomers (GET /api/customers/filter?field=&value=)
func (ctrl *CustomerController) FilterCustomers(c *gin.Context) {
	customers, err := ctrl.CustomerSvc.Filter(c.Request.Context(), c.Query("field"), c.Query("value"))
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// SyncBookings (POST /api/customers/sync-bookings)
func (ctrl *CustomerController) SyncBookings(c *gin.Context) {
	removed, err := ctrl.CustomerSvc.SyncBookings(c.Request.Context())
	if err != nil {
		utils.JSONFailure(c, err)
		return
	}

	ctrl.StatsSvc.Invalidate(c.Request.Context())
	c.JSON(http.StatusOK, gin.H{
		"message":        "bookings synced with customer records",
		"orphansRemoved": removed,
	})
}
