package scheduler

import (
	"huddle/models"
)

// Normalize converts a raw per-day class map into the ordered interval list
// the resolver consumes. Day order follows models.Weekdays; within a day, the
// imported class order is preserved.
//
// Unknown weekday keys (weekend days included) are rejected rather than
// silently dropped: the resolver only ever iterates Monday through Friday, so
// their presence means the import is malformed.
func Normalize(raw models.RawDayMap) ([]models.Interval, error) {
	for day := range raw {
		if !models.IsSchedulableWeekday(day) {
			return nil, NewValidationError("unknown weekday %q in timetable", day)
		}
	}

	var intervals []models.Interval
	for _, day := range models.Weekdays {
		for _, class := range raw[day] {
			start, err := TimeToMinutes(class.StartTime)
			if err != nil {
				return nil, err
			}
			end, err := TimeToMinutes(class.EndTime)
			if err != nil {
				return nil, err
			}
			if start >= end {
				return nil, NewValidationError("interval %q on %s is not chronological (%s >= %s)",
					class.Name, day, class.StartTime, class.EndTime)
			}
			intervals = append(intervals, models.Interval{
				Weekday:     day,
				StartMinute: start,
				EndMinute:   end,
				Label:       class.Name,
				Index:       class.Index,
			})
		}
	}
	return intervals, nil
}

// NormalizeAll builds the per-person schedule map used by one resolution
// call. Participants absent from raw get an empty interval list (fully
// available); the caller decides how to report them.
func NormalizeAll(participants []string, raw map[string]models.RawDayMap) (models.PersonSchedule, error) {
	schedules := make(models.PersonSchedule, len(participants))
	for _, id := range participants {
		dayMap, ok := raw[id]
		if !ok {
			schedules[id] = nil
			continue
		}
		intervals, err := Normalize(dayMap)
		if err != nil {
			return nil, err
		}
		schedules[id] = intervals
	}
	return schedules, nil
}
