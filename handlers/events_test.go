package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"huddle/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeConversation struct {
	turns chan models.InnerEvent
}

func (f *fakeConversation) HandleMeetingTurn(ctx context.Context, ev models.InnerEvent) error {
	f.turns <- ev
	return nil
}

func (f *fakeConversation) SweepDeadline(ctx context.Context, threadID string) error {
	return nil
}

type fakeImportService struct {
	imports chan string
}

func (f *fakeImportService) ImportFromMessage(ctx context.Context, personID, text string, image []byte, mimeType string) (models.RawDayMap, error) {
	f.imports <- personID
	return models.RawDayMap{}, nil
}

func (f *fakeImportService) Get(personID string) (*models.Timetable, error) { return nil, nil }

func (f *fakeImportService) Put(personID string, schedule models.RawDayMap) error { return nil }

type fakeMessenger struct{}

func (f *fakeMessenger) PostMessage(ctx context.Context, channelID, threadTS, text string) error {
	return nil
}

type fakeDownloader struct{}

func (f *fakeDownloader) DownloadFile(ctx context.Context, url string) ([]byte, error) {
	return []byte{0x89}, nil
}

type fakeDeduper struct {
	seen map[string]bool
}

func (f *fakeDeduper) FirstDelivery(ctx context.Context, eventID string) bool {
	if eventID == "" {
		return true
	}
	if f.seen[eventID] {
		return false
	}
	f.seen[eventID] = true
	return true
}

func newTestRouter(t *testing.T) (*gin.Engine, *fakeConversation, *fakeImportService) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	conv := &fakeConversation{turns: make(chan models.InnerEvent, 1)}
	imp := &fakeImportService{imports: make(chan string, 1)}
	eh := NewEventsHandler(conv, imp, &fakeMessenger{}, &fakeDownloader{}, &fakeDeduper{seen: map[string]bool{}})

	r := gin.New()
	r.POST("/api/events", eh.HandleEvent)
	return r, conv, imp
}

func postEvent(t *testing.T, r *gin.Engine, payload any) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestHandleEventEchoesVerificationChallenge(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := postEvent(t, r, models.ChatEvent{Type: "url_verification", Challenge: "abc123"})

	require.Equal(t, http.StatusOK, w.Code)
	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "abc123", resp["challenge"])
}

func TestHandleEventDropsRedelivery(t *testing.T) {
	r, conv, _ := newTestRouter(t)

	payload := models.ChatEvent{
		Type:    "event_callback",
		EventID: "Ev001",
		Event:   models.InnerEvent{Type: "app_mention", Channel: "C1", User: "U1", Text: "schedule", TS: "1.0"},
	}

	w := postEvent(t, r, payload)
	require.Equal(t, http.StatusOK, w.Code)
	select {
	case ev := <-conv.turns:
		assert.Equal(t, "1.0", ev.ThreadKey())
	case <-time.After(2 * time.Second):
		t.Fatal("first delivery was not dispatched")
	}

	w = postEvent(t, r, payload)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "duplicate")
	select {
	case <-conv.turns:
		t.Fatal("redelivery was dispatched")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestHandleEventIgnoresBotMessages(t *testing.T) {
	r, conv, _ := newTestRouter(t)

	w := postEvent(t, r, models.ChatEvent{
		Type:    "event_callback",
		EventID: "Ev002",
		Event:   models.InnerEvent{Type: "app_mention", BotID: "B1", Channel: "C1", TS: "2.0"},
	})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "ignored")
	select {
	case <-conv.turns:
		t.Fatal("bot event was dispatched")
	case <-time.After(100 * time.Millisecond):
	}
}

func TestHandleEventDispatchesDirectMessageToImport(t *testing.T) {
	r, _, imp := newTestRouter(t)

	w := postEvent(t, r, models.ChatEvent{
		Type:    "event_callback",
		EventID: "Ev003",
		Event: models.InnerEvent{
			Type:        "message",
			ChannelType: "im",
			Channel:     "D1",
			User:        "U7",
			Text:        "here is my timetable",
			TS:          "3.0",
			Files:       []models.ChatFile{{ID: "F1", Mimetype: "image/png", URLPrivate: "https://files.example/F1"}},
		},
	})

	require.Equal(t, http.StatusOK, w.Code)
	select {
	case person := <-imp.imports:
		assert.Equal(t, "U7", person)
	case <-time.After(2 * time.Second):
		t.Fatal("direct message was not dispatched to timetable import")
	}
}

func TestHandleEventRejectsMalformedPayload(t *testing.T) {
	r, _, _ := newTestRouter(t)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/events", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
