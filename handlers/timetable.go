package handlers

import (
	"net/http"

	"huddle/models"
	"huddle/services/scheduler"
	"huddle/services/timetable"
	"huddle/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// TimetableHandler exposes direct read/write access to stored timetables,
// bypassing the chat image-import path.
type TimetableHandler struct {
	Service timetable.ImportService
}

// NewTimetableHandler creates a new TimetableHandler.
func NewTimetableHandler(svc timetable.ImportService) *TimetableHandler {
	return &TimetableHandler{Service: svc}
}

// GetTimetableHandler returns a person's stored weekly timetable.
func (th *TimetableHandler) GetTimetableHandler(c *gin.Context) {
	personID := c.Param("personID")
	if personID == "" {
		utils.JSONError(c, http.StatusBadRequest, "person id is required", "missing personID path parameter")
		return
	}

	tt, err := th.Service.Get(personID)
	if err != nil {
		zap.L().Error("Timetable fetch failed", zap.String("person", personID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch timetable", "store error")
		return
	}
	if tt == nil {
		utils.JSONError(c, http.StatusNotFound, "timetable not found", "no timetable stored for "+personID)
		return
	}
	c.JSON(http.StatusOK, tt)
}

// PutTimetableHandler validates and stores a person's weekly timetable.
func (th *TimetableHandler) PutTimetableHandler(c *gin.Context) {
	personID := c.Param("personID")
	if personID == "" {
		utils.JSONError(c, http.StatusBadRequest, "person id is required", "missing personID path parameter")
		return
	}

	var schedule models.RawDayMap
	if err := c.ShouldBindJSON(&schedule); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	if err := th.Service.Put(personID, schedule); err != nil {
		if scheduler.IsValidationError(err) {
			utils.JSONError(c, http.StatusBadRequest, "invalid timetable", err.Error())
			return
		}
		zap.L().Error("Timetable upsert failed", zap.String("person", personID), zap.Error(err))
		utils.JSONError(c, http.StatusInternalServerError, "failed to store timetable", "store error")
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "stored", "person_id": personID})
}
