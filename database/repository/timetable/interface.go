package timetableRepo

import "huddle/models"

// TimetableRepository defines data access for stored personal timetables.
type TimetableRepository interface {
	// Get retrieves one person's timetable. A missing person yields (nil, nil).
	Get(personID string) (*models.Timetable, error)
	// GetMany retrieves timetables for the given person IDs. Missing persons
	// are simply absent from the returned map.
	GetMany(personIDs []string) (map[string]models.RawDayMap, error)
	// Upsert inserts or replaces a person's timetable.
	Upsert(t *models.Timetable) error
	// Delete removes a person's timetable.
	Delete(personID string) error
}
