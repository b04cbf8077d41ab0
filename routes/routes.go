package routes

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"hotel-backoffice/controllers"
	"hotel-backoffice/middleware"
)

func parseCorsOrigins(raw string) []string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return []string{"*"}
	}

	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, part := range parts {
		origin := strings.TrimSpace(part)
		if origin != "" {
			origins = append(origins, origin)
		}
	}
	if len(origins) == 0 {
		return []string{"*"}
	}
	return origins
}

// SetupRouter wires the controllers onto the API surface.
func SetupRouter(
	cc *controllers.CustomerController,
	bc *controllers.BookingController,
	sc *controllers.StatsController,
	corsOrigins string,
) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())

	origins := parseCorsOrigins(corsOrigins)
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	api := r.Group("/api")
	{
		customers := api.Group("/customers")
		{
			customers.GET("", cc.GetCustomers)
			customers.POST("", cc.CreateCustomer)
			customers.PUT("", cc.UpdateCustomer)
			customers.DELETE("", cc.DeleteCustomer)

			// fixed segments before /:customerRef so "filter" is never
			// treated as a reference
			customers.GET("/filter", cc.FilterCustomers)
			customers.POST("/sync-bookings", cc.SyncBookings)
			customers.GET("/:customerRef", cc.GetCustomerByRef)
		}

		bookings := api.Group("/bookings")
		{
			bookings.GET("", bc.GetBookings)
			bookings.POST("", bc.CreateBooking)
			bookings.PUT("", bc.UpdateBooking)
			bookings.DELETE("", bc.DeleteBooking)
			bookings.GET("/filter", bc.FilterBookings)
		}

		stats := api.Group("/stats")
		{
			stats.GET("/customers", sc.GetCustomerStats)
			stats.GET("/bookings", sc.GetBookingStats)
		}
	}

	return r
}
