package scheduler

import (
	timetableRepo "huddle/database/repository/timetable"
	"huddle/models"
	"huddle/utils"

	"go.uber.org/zap"
)

// DefaultSchedulerService wires the resolver to the timetable store.
type DefaultSchedulerService struct {
	Repo     timetableRepo.TimetableRepository
	Resolver *Resolver
}

// ResolveRequest validates the request, fetches and normalizes participant
// timetables, and runs the slot search.
//
// A participant whose timetable cannot be fetched does not abort the request:
// they are treated as fully available and reported in the result's Unknown
// set so the caller can qualify the attendance count.
func (s *DefaultSchedulerService) ResolveRequest(req models.MeetingRequest) (models.ResolutionResult, error) {
	logger := utils.GetLogger()

	if len(req.Participants) == 0 {
		return models.ResolutionResult{}, NewValidationError("meeting request has no participants")
	}
	if req.DurationMinutes <= 0 {
		return models.ResolutionResult{}, NewValidationError("meeting duration must be positive, got %d minutes", req.DurationMinutes)
	}

	mandatory := req.Mandatory
	if len(mandatory) == 0 {
		mandatory = req.Participants
	}

	weekdays, err := WeekdaysInRange(req.StartDate, req.EndDate)
	if err != nil {
		return models.ResolutionResult{}, err
	}
	if len(weekdays) == 0 {
		return models.ResolutionResult{}, NewValidationError("date range %s to %s contains no weekdays", req.StartDate, req.EndDate)
	}

	raw, err := s.Repo.GetMany(req.Participants)
	if err != nil {
		// Idempotent read, one retry is acceptable.
		logger.Warn("timetable fetch failed, retrying once", zap.Error(err))
		raw, err = s.Repo.GetMany(req.Participants)
	}
	if err != nil {
		// Degrade rather than fail: everyone becomes unknown-but-available.
		logger.Error("timetable fetch failed, treating all participants as unknown", zap.Error(err))
		raw = map[string]models.RawDayMap{}
	}

	schedules, err := NormalizeAll(req.Participants, raw)
	if err != nil {
		return models.ResolutionResult{}, err
	}

	result, err := s.Resolver.Resolve(schedules, mandatory, req.DurationMinutes, weekdays)
	if err != nil {
		return models.ResolutionResult{}, err
	}

	for _, id := range req.Participants {
		if _, ok := raw[id]; !ok {
			result.Unknown = append(result.Unknown, id)
		}
	}

	logger.Info("resolved meeting request",
		zap.Int("participants", len(req.Participants)),
		zap.Int("maxAvailable", result.MaxParticipants),
		zap.Int("tiedSlots", len(result.BestSlots)),
		zap.Strings("unavailableMandatory", result.UnavailableMandatory),
	)
	return result, nil
}
