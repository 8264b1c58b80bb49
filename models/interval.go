package models

// Weekday names the resolver iterates over. Weekends are never represented:
// the scheduler only ever proposes Monday through Friday.
var Weekdays = []string{"Monday", "Tuesday", "Wednesday", "Thursday", "Friday"}

// IsSchedulableWeekday reports whether name is one of the five weekdays the
// scheduler knows about.
func IsSchedulableWeekday(name string) bool {
	for _, d := range Weekdays {
		if d == name {
			return true
		}
	}
	return false
}

// Interval represents one busy block in a person's weekly timetable.
type Interval struct {
	Weekday     string `json:"weekday" bson:"weekday"`
	StartMinute int    `json:"startMinute" bson:"startMinute"` // minutes from midnight
	EndMinute   int    `json:"endMinute" bson:"endMinute"`     // minutes from midnight, exclusive
	Label       string `json:"label" bson:"label"`             // e.g. class name
	Index       int    `json:"index" bson:"index"`
}

// Overlaps reports whether the half-open slot [slotStart, slotStart+duration)
// intersects the interval [StartMinute, EndMinute). A boundary touch does not
// count as overlap.
func (iv Interval) Overlaps(slotStart, duration int) bool {
	slotEnd := slotStart + duration
	return !(slotEnd <= iv.StartMinute || slotStart >= iv.EndMinute)
}
