package models

// ChatEvent is the inbound webhook payload from the chat transport. The shape
// follows the Slack Events API envelope.
type ChatEvent struct {
	Type      string     `json:"type"` // "url_verification" or "event_callback"
	Challenge string     `json:"challenge,omitempty"`
	EventID   string     `json:"event_id,omitempty"`
	Event     InnerEvent `json:"event,omitzero"`
}

// InnerEvent is the payload of an event_callback envelope.
type InnerEvent struct {
	Type        string     `json:"type"` // "app_mention" or "message"
	ChannelType string     `json:"channel_type,omitempty"`
	Channel     string     `json:"channel"`
	User        string     `json:"user"`
	Text        string     `json:"text"`
	TS          string     `json:"ts"`
	ThreadTS    string     `json:"thread_ts,omitempty"`
	BotID       string     `json:"bot_id,omitempty"`
	Files       []ChatFile `json:"files,omitempty"`
}

// ChatFile describes an attachment on an inbound message.
type ChatFile struct {
	ID         string `json:"id"`
	Mimetype   string `json:"mimetype"`
	URLPrivate string `json:"url_private"`
}

// ThreadKey returns the identifier of the conversation thread this event
// belongs to: the parent timestamp when replying in-thread, otherwise the
// event's own timestamp.
func (e InnerEvent) ThreadKey() string {
	if e.ThreadTS != "" {
		return e.ThreadTS
	}
	return e.TS
}
