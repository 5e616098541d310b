package routes

import (
	"net/http"
	"time"

	"deliveryhours/handlers"
	"deliveryhours/middleware"
	"deliveryhours/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterVenueRoutes registers venue and delivery-hours endpoints. Reads are
// public; anything that modifies data requires the admin token.
func RegisterVenueRoutes(r *gin.Engine, h *handlers.HoursHandler) {
	api := r.Group("/api/venues")
	{
		api.GET("", h.ListVenuesHandler)
		api.GET("/:id", h.GetVenueHandler)
		api.GET("/:id/hours", h.GetHoursHandler)
		api.GET("/:id/schedule", h.ScheduleHandler)
		api.GET("/:id/open", h.OpenAtHandler)

		protected := api.Group("")
		protected.Use(middleware.AdminAuthMiddleware())
		protected.POST("", h.CreateVenueHandler)
		protected.PUT("/:id/hours", h.SetHoursHandler)
		protected.PATCH("/:id/active", h.SetActiveHandler)
		protected.DELETE("/:id", h.DeleteVenueHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		status := utils.GetHealthStatus()
		c.JSON(http.StatusOK, gin.H{"status": "ok", "services": status})
	})
}

// CORSMiddleware returns the shared CORS policy.
func CORSMiddleware() gin.HandlerFunc {
	return cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	})
}
