package notification

import (
	"context"
	"fmt"
	"io"
	"net/http"
)

// FileDownloader fetches message attachments (timetable images) from the
// chat transport's private file URLs.
type FileDownloader interface {
	DownloadFile(ctx context.Context, url string) ([]byte, error)
}

// DownloadFile fetches a private attachment using the bot token.
func (c *ChatAPIClient) DownloadFile(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build file request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+c.BotToken)

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("file download failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("file download returned status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
