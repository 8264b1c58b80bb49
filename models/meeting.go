package models

// MeetingRequest carries the structured parameters of one scheduling request,
// as extracted from the conversation. Consumed once by the resolver.
type MeetingRequest struct {
	Participants    []string `json:"participants"`
	Mandatory       []string `json:"mandatory,omitempty"` // defaults to all participants
	StartDate       string   `json:"startDate"`           // "YYYY-MM-DD", inclusive
	EndDate         string   `json:"endDate"`             // "YYYY-MM-DD", inclusive
	DurationMinutes int      `json:"durationMinutes"`
	Deadline        string   `json:"deadline,omitempty"` // finalization deadline, "YYYY-MM-DD"
}

// CandidateSlot is one proposed meeting start drawn from the slot grid.
type CandidateSlot struct {
	Weekday     string `json:"weekday"`
	StartMinute int    `json:"startMinute"`
}

// ResolutionResult is the outcome of one resolver invocation: every slot tied
// for the maximum attendance, in evaluation order.
type ResolutionResult struct {
	BestSlots            []CandidateSlot `json:"bestSlots"`
	MaxParticipants      int             `json:"maxParticipants"`
	UnavailableMandatory []string        `json:"unavailableMandatory,omitempty"`
	// Unknown lists participants whose timetable could not be fetched; they
	// are counted as available but the caller is told the count is a guess.
	Unknown []string `json:"unknown,omitempty"`
}
