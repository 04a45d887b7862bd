package routes

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"madeasy/handlers"
	"madeasy/middleware"
)

// RegisterHealthRoutes registers the health-check and metrics endpoints.
func RegisterHealthRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/health", hb.HealthHandler)
	if hb.MetricsHandler != nil {
		r.GET("/metrics", hb.MetricsHandler)
	}
}

// RegisterBookingRoutes sets up the endpoints for the booking wizard.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle, requireAuth bool) {
	bookingGroup := r.Group("/api/booking")
	{
		// Catalogue data is public.
		bookingGroup.GET("/catalogue", hb.GetCatalogue)
		bookingGroup.POST("/quote", hb.QuotePrice)
		bookingGroup.GET("/schedule/options", hb.GetScheduleOptions)
		bookingGroup.GET("/locations/suggest", hb.SuggestLocations)
		bookingGroup.GET("/locations/geocode", hb.GeocodeAddress)

		session := bookingGroup.Group("/session")
		session.Use(middleware.JWTAuthMiddleware(requireAuth))
		session.POST("", hb.StartSession)
		session.GET("/:sessionID", hb.GetSession)
		session.DELETE("/:sessionID", hb.CancelSession)
		session.POST("/:sessionID/actions", hb.DispatchAction)
		session.GET("/:sessionID/validate", hb.ValidateStep)
		session.POST("/:sessionID/submit", hb.SubmitBooking)
		session.POST("/:sessionID/reset", hb.ResetSession)
	}
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle, requireAuth bool) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type", "X-Request-ID"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-ID"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoutes(r, hb)
	RegisterBookingRoutes(r, hb, requireAuth)
}
