package timetable

import (
	"context"

	timetableRepo "huddle/database/repository/timetable"
	"huddle/models"
	ai "huddle/services/intelligence"
	"huddle/services/scheduler"
	"huddle/utils"

	"go.uber.org/zap"
)

// DefaultImportService wires the extraction service to the timetable store.
type DefaultImportService struct {
	AI   ai.AIService
	Repo timetableRepo.TimetableRepository
}

// ImportFromMessage runs extraction over the message, rejects malformed
// timetables before they can poison later resolutions, and upserts the rest.
func (s *DefaultImportService) ImportFromMessage(ctx context.Context, personID, text string, image []byte, mimeType string) (models.RawDayMap, error) {
	logger := utils.GetLogger()

	schedule, err := s.AI.ExtractTimetable(ctx, text, image, mimeType)
	if err != nil {
		logger.Error("timetable extraction failed", zap.String("person", personID), zap.Error(err))
		return nil, err
	}

	if err := s.Put(personID, schedule); err != nil {
		return nil, err
	}
	logger.Info("timetable imported", zap.String("person", personID), zap.Bool("fromImage", len(image) > 0))
	return schedule, nil
}

// Get returns a person's stored timetable.
func (s *DefaultImportService) Get(personID string) (*models.Timetable, error) {
	return s.Repo.Get(personID)
}

// Put validates and stores a timetable.
func (s *DefaultImportService) Put(personID string, schedule models.RawDayMap) error {
	// Normalization doubles as validation: weekend keys, malformed times and
	// non-chronological intervals are rejected here, before storage.
	if _, err := scheduler.Normalize(schedule); err != nil {
		return err
	}
	return s.Repo.Upsert(&models.Timetable{PersonID: personID, Schedule: schedule})
}
