package ai

import (
	"context"

	"huddle/models"
)

// AIService is the typed contract with the text-understanding collaborator.
// All calls are bounded by the configured external timeout.
type AIService interface {
	// ExtractMeetingParams pulls structured meeting parameters out of the
	// accumulated conversation text. A non-empty Request field means the
	// model needs more information; the text is relayed to the user verbatim.
	ExtractMeetingParams(ctx context.Context, conversation string) (*models.MeetingParams, error)

	// ExtractTimetable pulls a weekly timetable out of a message, optionally
	// with an attached image (mimeType e.g. "image/png").
	ExtractTimetable(ctx context.Context, text string, image []byte, mimeType string) (models.RawDayMap, error)

	// ExtractPreferences collects per-participant slot preferences from the
	// conversation, given the proposed candidate slots.
	ExtractPreferences(ctx context.Context, conversation string, candidateSlots []string) (*models.MeetingPreferences, error)
}
