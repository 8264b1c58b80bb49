package scheduler

import (
	"strings"
	"time"

	"huddle/models"
)

const dateLayout = "2006-01-02"

// ParseDateRange splits a "<start> to <end>" string into its two dates.
func ParseDateRange(raw string) (string, string, error) {
	parts := strings.Split(raw, " to ")
	if len(parts) != 2 {
		return "", "", NewValidationError("malformed date range %q, want \"YYYY-MM-DD to YYYY-MM-DD\"", raw)
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), nil
}

// WeekdaysInRange expands an inclusive date range into the chronological list
// of weekday names it covers. Saturdays and Sundays are skipped, and a weekday
// occurring twice in a long range is kept only at its first occurrence since
// candidate slots are weekday-level.
func WeekdaysInRange(startDate, endDate string) ([]string, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return nil, NewValidationError("malformed start date %q", startDate)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return nil, NewValidationError("malformed end date %q", endDate)
	}
	if end.Before(start) {
		return nil, NewValidationError("date range %s to %s is not chronological", startDate, endDate)
	}

	seen := make(map[string]bool, len(models.Weekdays))
	var weekdays []string
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		name := d.Weekday().String()
		if !models.IsSchedulableWeekday(name) || seen[name] {
			continue
		}
		seen[name] = true
		weekdays = append(weekdays, name)
	}
	return weekdays, nil
}

// FirstDateOfWeekday returns the first date in the inclusive range falling on
// the given weekday, formatted as "YYYY-MM-DD". Used to render a concrete date
// for a weekday-level candidate slot.
func FirstDateOfWeekday(startDate, endDate, weekday string) (string, error) {
	start, err := time.Parse(dateLayout, startDate)
	if err != nil {
		return "", NewValidationError("malformed start date %q", startDate)
	}
	end, err := time.Parse(dateLayout, endDate)
	if err != nil {
		return "", NewValidationError("malformed end date %q", endDate)
	}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		if d.Weekday().String() == weekday {
			return d.Format(dateLayout), nil
		}
	}
	return "", NewValidationError("no %s in range %s to %s", weekday, startDate, endDate)
}
