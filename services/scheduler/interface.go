package scheduler

import "huddle/models"

// SchedulerService runs the full availability-resolution pipeline for one
// meeting request: fetch timetables, normalize them, expand the date range
// and search the slot grid.
type SchedulerService interface {
	ResolveRequest(req models.MeetingRequest) (models.ResolutionResult, error)
}
