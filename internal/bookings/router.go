package bookings

import "github.com/gin-gonic/gin"

// SetupBookingRoutes configures all booking-related routes
func SetupBookingRoutes(rg *gin.RouterGroup, controller Controller, sessionAuth gin.HandlerFunc) {
	bookings := rg.Group("/bookings")
	bookings.Use(sessionAuth)
	{
		bookings.POST("", controller.CreateBooking)                   // POST /api/v1/bookings
		bookings.GET("/:bookingId", controller.GetBooking)            // GET /api/v1/bookings/:bookingId
		bookings.POST("/:bookingId/cancel", controller.CancelBooking) // POST /api/v1/bookings/:bookingId/cancel
	}

	// User-specific booking routes
	users := rg.Group("/users/me")
	users.Use(sessionAuth)
	{
		users.GET("/bookings", controller.GetUserBookings) // GET /api/v1/users/me/bookings
	}
}
