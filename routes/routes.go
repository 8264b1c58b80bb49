package routes

import (
	"time"

	"huddle/handlers"
	"huddle/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterEventRoutes registers the chat transport's webhook ingress.
func RegisterEventRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/events", hb.EventHandler)
}

// RegisterTimetableRoutes registers direct timetable access endpoints.
func RegisterTimetableRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/timetables")
	{
		api.GET("/:personID", hb.GetTimetableHandler)
		api.PUT("/:personID", hb.PutTimetableHandler)
	}
}

// RegisterMeetingRoutes registers the direct resolution endpoint.
func RegisterMeetingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.POST("/api/meetings/resolve", hb.ResolveMeetingHandler)
}

// RegisterHealthRoute registers the health-check endpoint.
func RegisterHealthRoute(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/health", hb.HealthHandler)
}

// RegisterRoutes centralizes registration of all endpoints and middleware.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	r.Use(middleware.RateLimitMiddleware())

	RegisterEventRoutes(r, hb)
	RegisterTimetableRoutes(r, hb)
	RegisterMeetingRoutes(r, hb)
	RegisterHealthRoute(r, hb)
}
