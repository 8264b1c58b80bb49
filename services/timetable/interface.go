package timetable

import (
	"context"

	"huddle/models"
)

// ImportService ingests a person's timetable from a chat message (text or
// attached image) into the timetable store.
type ImportService interface {
	// ImportFromMessage extracts, validates and stores the timetable, and
	// returns the stored day map for echoing back to the user.
	ImportFromMessage(ctx context.Context, personID, text string, image []byte, mimeType string) (models.RawDayMap, error)

	// Get returns a person's stored timetable, or nil when none exists.
	Get(personID string) (*models.Timetable, error)

	// Put validates and stores a timetable supplied directly (API upsert).
	Put(personID string, schedule models.RawDayMap) error
}
