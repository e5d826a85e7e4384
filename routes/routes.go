package routes

import (
	"time"

	"slotdesk/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterRoutes wires every endpoint onto the router.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/healthz", handlers.HealthHandler)

	api := r.Group("/api")
	{
		// Availability read path, shared by all three channels.
		api.GET("/availability", hb.Booking.QueryAvailability)

		// Booking mutator.
		bookings := api.Group("/bookings")
		{
			bookings.GET("", hb.Booking.ListBookings)
			bookings.POST("", hb.Booking.CreateBooking)
			bookings.POST("/:id/cancel", hb.Booking.CancelBooking)
			bookings.POST("/:id/reschedule", hb.Booking.RescheduleBooking)
			bookings.POST("/:id/complete", hb.Booking.CompleteBooking)
			bookings.DELETE("/:id", hb.Booking.DeleteBooking)
		}

		// Staff day overrides.
		overrides := api.Group("/overrides")
		{
			overrides.GET("/:date", hb.Override.GetOverride)
			overrides.PUT("/:date", hb.Override.SetOverride)
		}

		// Service catalogue.
		services := api.Group("/services")
		{
			services.GET("", hb.Service.ListServices)
			services.POST("", hb.Service.CreateService)
			services.PUT("/:id", hb.Service.UpdateService)
			services.DELETE("/:id", hb.Service.DeleteService)
		}

		// Conversational channel.
		api.POST("/chat/:channel/:phone", hb.Chat.Advance)
	}
}
