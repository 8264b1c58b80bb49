package models

import (
	"encoding/json"
	"strings"
)

// FlexString decodes from either a JSON string or a bare number; extraction
// models are inconsistent about quoting numeric fields.
type FlexString string

func (f *FlexString) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if len(s) > 0 && s[0] == '"' {
		var v string
		if err := json.Unmarshal(data, &v); err != nil {
			return err
		}
		*f = FlexString(v)
		return nil
	}
	*f = FlexString(s)
	return nil
}

// MeetingParams is the structured output of the meeting-parameter extraction
// call. Field names match the JSON the model is instructed to emit.
type MeetingParams struct {
	Duration     FlexString `json:"meeting_duration"`   // "1", "1.5", "30 minutes"
	DateRange    string     `json:"meeting_date_range"` // "YYYY-MM-DD to YYYY-MM-DD"
	Participants []string   `json:"participants"`
	Deadline     string     `json:"meeting_schedule_finalization_deadline"`
	// Request is non-empty when the model needs more information; the text is
	// relayed to the user verbatim.
	Request string `json:"request"`
}

// PreferenceEntry is one participant's stated availability preference.
type PreferenceEntry struct {
	UserID     string `json:"user_id"`
	Preference string `json:"preference"` // empty when not yet supplied
}

// MeetingPreferences is the structured output of the preference extraction
// call run against a proposed slot list.
type MeetingPreferences struct {
	BestTime     string            `json:"best_time"` // "YYYY-MM-DD HH:MM"
	Participants []PreferenceEntry `json:"participants"`
}
