package notification

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"huddle/utils"

	"go.uber.org/zap"
)

// ChatAPIClient posts messages through a Slack-compatible Web API
// (chat.postMessage). One bounded attempt per post: a failed write surfaces
// as an error instead of risking a duplicate reply.
type ChatAPIClient struct {
	BaseURL    string
	BotToken   string
	HTTPClient *http.Client
}

// NewChatAPIClient builds a messenger against the given API base URL.
func NewChatAPIClient(baseURL, botToken string, timeout time.Duration) *ChatAPIClient {
	return &ChatAPIClient{
		BaseURL:    baseURL,
		BotToken:   botToken,
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

type postMessageRequest struct {
	Channel  string `json:"channel"`
	Text     string `json:"text"`
	ThreadTS string `json:"thread_ts,omitempty"`
}

type postMessageResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error,omitempty"`
}

func (c *ChatAPIClient) PostMessage(ctx context.Context, channelID, threadTS, text string) error {
	logger := utils.GetLogger()

	payload, err := json.Marshal(postMessageRequest{
		Channel:  channelID,
		Text:     text,
		ThreadTS: threadTS,
	})
	if err != nil {
		return fmt.Errorf("failed to marshal chat message: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/chat.postMessage", bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build chat request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.BotToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		logger.Error("chat post failed", zap.String("channel", channelID), zap.Error(err))
		return fmt.Errorf("chat post failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("chat API returned status %d", resp.StatusCode)
	}

	var body postMessageResponse
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("failed to decode chat response: %w", err)
	}
	if !body.OK {
		return fmt.Errorf("chat API error: %s", body.Error)
	}
	return nil
}
