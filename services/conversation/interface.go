package conversation

import (
	"context"
	"time"

	"huddle/models"
)

// ConversationService drives the iterative refinement protocol for one
// scheduling thread: collect parameters, propose candidate slots, gather
// preferences, finalize.
type ConversationService interface {
	// HandleMeetingTurn processes one inbound mention in a scheduling thread
	// and posts whatever reply the current protocol state calls for.
	HandleMeetingTurn(ctx context.Context, ev models.InnerEvent) error

	// SweepDeadline finalizes a thread at its scheduled finalization
	// deadline using whatever preferences have been collected so far.
	SweepDeadline(ctx context.Context, threadID string) error
}

// DeadlineScheduler enqueues a deferred deadline sweep for a thread.
type DeadlineScheduler interface {
	ScheduleSweep(channelID, threadID string, at time.Time) error
}
