package handlers

import (
	"net/http"

	"huddle/models"
	"huddle/services/scheduler"
	"huddle/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// MeetingHandler exposes the resolution engine directly over HTTP, without
// going through the chat refinement flow.
type MeetingHandler struct {
	Scheduler scheduler.SchedulerService
}

// NewMeetingHandler creates a new MeetingHandler.
func NewMeetingHandler(svc scheduler.SchedulerService) *MeetingHandler {
	return &MeetingHandler{Scheduler: svc}
}

// ResolveHandler runs one resolution for the posted meeting request.
func (mh *MeetingHandler) ResolveHandler(c *gin.Context) {
	var req models.MeetingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	result, err := mh.Scheduler.ResolveRequest(req)
	if err != nil {
		if scheduler.IsValidationError(err) {
			utils.JSONError(c, http.StatusBadRequest, "invalid meeting request", err.Error())
			return
		}
		zap.L().Error("Resolution failed", zap.Strings("participants", req.Participants), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to resolve meeting", "resolution engine error")
		return
	}

	c.JSON(http.StatusOK, result)
}
