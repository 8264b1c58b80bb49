package scheduler

import (
	"sort"

	"huddle/models"
)

// Resolver is the exhaustive best-slot search over a configured slot grid.
type Resolver struct {
	Grid GridConfig
}

// NewResolver builds a resolver over the given grid.
func NewResolver(grid GridConfig) *Resolver {
	return &Resolver{Grid: grid}
}

// Resolve scans every (weekday, slot) pair, weekdays outer and ascending
// slot starts inner, and returns every pair tied for the maximum number of
// available participants. A participant is unavailable for a slot
// as soon as one of their intervals on that day overlaps it. Unavailability
// is recorded only for mandatory participants.
//
// Zero attendance everywhere yields an empty slot list with MaxParticipants
// 0, which is a valid result, not an error.
func (r *Resolver) Resolve(
	schedules models.PersonSchedule,
	mandatory []string,
	durationMinutes int,
	weekdays []string,
) (models.ResolutionResult, error) {
	if len(schedules) == 0 {
		return models.ResolutionResult{}, NewValidationError("no participants to schedule")
	}
	if durationMinutes <= 0 {
		return models.ResolutionResult{}, NewValidationError("duration must be positive, got %d minutes", durationMinutes)
	}
	if err := r.Grid.Validate(); err != nil {
		return models.ResolutionResult{}, err
	}
	for person, intervals := range schedules {
		for _, iv := range intervals {
			if err := validateInterval(person, iv); err != nil {
				return models.ResolutionResult{}, err
			}
		}
	}
	for _, day := range weekdays {
		if !models.IsSchedulableWeekday(day) {
			return models.ResolutionResult{}, NewValidationError("cannot schedule on %q", day)
		}
	}

	mandatorySet := make(map[string]bool, len(mandatory))
	for _, id := range mandatory {
		mandatorySet[id] = true
	}

	// Iterate participants in a fixed order so repeated calls produce
	// identical results.
	people := make([]string, 0, len(schedules))
	for person := range schedules {
		people = append(people, person)
	}
	sort.Strings(people)

	var (
		best        []models.CandidateSlot
		maxCount    int
		unavailable = map[string]bool{}
	)

	slotStarts := r.Grid.SlotStarts()
	for _, day := range weekdays {
		for _, start := range slotStarts {
			count := 0
			slotUnavailable := []string{}
			for _, person := range people {
				busy := false
				for _, iv := range schedules[person] {
					if iv.Weekday == day && iv.Overlaps(start, durationMinutes) {
						busy = true
						break
					}
				}
				if busy {
					if mandatorySet[person] {
						slotUnavailable = append(slotUnavailable, person)
					}
					continue
				}
				count++
			}

			switch {
			case count > maxCount:
				maxCount = count
				best = []models.CandidateSlot{{Weekday: day, StartMinute: start}}
				unavailable = map[string]bool{}
				for _, id := range slotUnavailable {
					unavailable[id] = true
				}
			case count == maxCount && maxCount > 0:
				best = append(best, models.CandidateSlot{Weekday: day, StartMinute: start})
				for _, id := range slotUnavailable {
					unavailable[id] = true
				}
			}
		}
	}

	result := models.ResolutionResult{
		BestSlots:       best,
		MaxParticipants: maxCount,
	}
	for _, id := range mandatory {
		if unavailable[id] {
			result.UnavailableMandatory = append(result.UnavailableMandatory, id)
		}
	}
	return result, nil
}

func validateInterval(person string, iv models.Interval) error {
	if !models.IsSchedulableWeekday(iv.Weekday) {
		return NewValidationError("interval for %s has unknown weekday %q", person, iv.Weekday)
	}
	if iv.StartMinute < 0 || iv.EndMinute > 1440 {
		return NewValidationError("interval for %s on %s out of range [%d, %d)",
			person, iv.Weekday, iv.StartMinute, iv.EndMinute)
	}
	if iv.StartMinute >= iv.EndMinute {
		return NewValidationError("interval for %s on %s is not chronological (%d >= %d)",
			person, iv.Weekday, iv.StartMinute, iv.EndMinute)
	}
	return nil
}
