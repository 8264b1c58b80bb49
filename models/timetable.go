package models

import "time"

// RawClass is one entry of a raw imported timetable, exactly as the
// text-understanding service emits it.
type RawClass struct {
	StartTime string `json:"start_time" bson:"start_time"` // "HH:MM"
	EndTime   string `json:"end_time" bson:"end_time"`     // "HH:MM"
	Name      string `json:"name" bson:"name"`
	Index     int    `json:"index" bson:"index"`
}

// RawDayMap maps a weekday name to that day's ordered class list.
type RawDayMap map[string][]RawClass

// Timetable is the stored weekly timetable of one person.
type Timetable struct {
	PersonID  string    `json:"personId" bson:"_id"`
	Schedule  RawDayMap `json:"schedule" bson:"schedule"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt"`
}

// PersonSchedule maps a person identifier to their normalized busy intervals.
// Built fresh per resolution call and never mutated afterwards.
type PersonSchedule map[string][]Interval
