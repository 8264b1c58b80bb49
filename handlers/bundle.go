package handlers

import (
	"github.com/gin-gonic/gin"
)

// HandlerBundle groups all endpoint handlers into one struct.
type HandlerBundle struct {
	// Webhook ingress
	EventHandler gin.HandlerFunc

	// Timetable endpoints
	GetTimetableHandler gin.HandlerFunc
	PutTimetableHandler gin.HandlerFunc

	// Direct resolution endpoint
	ResolveMeetingHandler gin.HandlerFunc

	// Health endpoint
	HealthHandler gin.HandlerFunc
}
