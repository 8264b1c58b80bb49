package notification

import "context"

// Messenger delivers replies back into the chat thread. The transport owns
// rendering acknowledgement and retries toward the end user; posts are NOT
// retried here to avoid duplicate user-visible messages.
type Messenger interface {
	// PostMessage sends text to a channel. threadTS scopes the reply to a
	// thread; empty posts to the channel top level.
	PostMessage(ctx context.Context, channelID, threadTS, text string) error
}
