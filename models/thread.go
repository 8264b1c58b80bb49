package models

// ThreadState is the refinement-protocol state of one conversation thread.
type ThreadState string

const (
	StateCollectingParams   ThreadState = "collecting_params"
	StateProposing          ThreadState = "proposing"
	StateAwaitingPreference ThreadState = "awaiting_preference"
	StateFinalized          ThreadState = "finalized"
)

// Turn is one inbound conversation message, kept so later extraction calls
// see the accumulated thread text without re-fetching chat history.
type Turn struct {
	UserID string `json:"userId"`
	Text   string `json:"text"`
}

// ThreadSession is the explicit per-thread state record. It replaces
// re-deriving protocol state from previously posted prose.
type ThreadSession struct {
	ThreadID      string            `json:"threadId"`
	ChannelID     string            `json:"channelId"`
	State         ThreadState       `json:"state"`
	Turns         []Turn            `json:"turns"`
	Request       *MeetingRequest   `json:"request,omitempty"`
	Proposal      *ResolutionResult `json:"proposal,omitempty"`
	Preferences   map[string]string `json:"preferences,omitempty"` // participant id -> stated preference
	BestTime      string            `json:"bestTime,omitempty"`    // "YYYY-MM-DD HH:MM" once finalized
	DeadlineSwept bool              `json:"deadlineSwept,omitempty"`
}

// AllPreferencesIn reports whether every invited participant has supplied a
// non-empty preference.
func (s *ThreadSession) AllPreferencesIn() bool {
	if s.Request == nil {
		return false
	}
	for _, p := range s.Request.Participants {
		if s.Preferences[p] == "" {
			return false
		}
	}
	return true
}
