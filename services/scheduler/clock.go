package scheduler

import (
	"fmt"
	"strconv"
	"strings"
)

// TimeToMinutes converts an "HH:MM" clock string to minutes from midnight.
func TimeToMinutes(clock string) (int, error) {
	parts := strings.Split(clock, ":")
	if len(parts) != 2 {
		return 0, NewValidationError("malformed time %q, want HH:MM", clock)
	}
	hours, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, NewValidationError("malformed hour in %q", clock)
	}
	minutes, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, NewValidationError("malformed minute in %q", clock)
	}
	if hours < 0 || hours > 24 || minutes < 0 || minutes > 59 {
		return 0, NewValidationError("time %q out of range", clock)
	}
	total := hours*60 + minutes
	if total > 1440 {
		return 0, NewValidationError("time %q out of range", clock)
	}
	return total, nil
}

// MinutesToClock renders minutes from midnight as "HH:MM".
func MinutesToClock(m int) string {
	return fmt.Sprintf("%02d:%02d", m/60, m%60)
}

// DurationToMinutes converts a duration expressed in hours (possibly
// fractional, e.g. "1.5") or minutes (e.g. "30 minutes") to whole minutes,
// rounding down.
func DurationToMinutes(raw string) (int, error) {
	s := strings.ToLower(strings.TrimSpace(raw))
	if s == "" {
		return 0, NewValidationError("empty meeting duration")
	}

	inMinutes := strings.Contains(s, "min")
	s = strings.NewReplacer("minutes", "", "minute", "", "mins", "", "min", "",
		"hours", "", "hour", "", "hrs", "", "hr", "", "h", "").Replace(s)
	s = strings.TrimSpace(s)

	value, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, NewValidationError("unparseable meeting duration %q", raw)
	}

	var minutes int
	if inMinutes {
		minutes = int(value)
	} else {
		minutes = int(value * 60)
	}
	if minutes <= 0 {
		return 0, NewValidationError("meeting duration must be positive, got %q", raw)
	}
	return minutes, nil
}
