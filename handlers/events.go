package handlers

import (
	"context"
	"net/http"
	"strings"
	"time"

	"huddle/models"
	"huddle/services/conversation"
	"huddle/services/notification"
	"huddle/services/timetable"
	"huddle/utils"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// dispatchTimeout bounds the background processing of a single event,
// covering the extraction call, the store round trips and the reply post.
const dispatchTimeout = 60 * time.Second

// EventsHandler is the webhook ingress for the chat transport.
type EventsHandler struct {
	Conversation conversation.ConversationService
	Timetable    timetable.ImportService
	Messenger    notification.Messenger
	Files        notification.FileDownloader
	Dedup        Deduper
}

// NewEventsHandler creates a new EventsHandler.
func NewEventsHandler(conv conversation.ConversationService, tt timetable.ImportService, msg notification.Messenger, files notification.FileDownloader, dedup Deduper) *EventsHandler {
	return &EventsHandler{
		Conversation: conv,
		Timetable:    tt,
		Messenger:    msg,
		Files:        files,
		Dedup:        dedup,
	}
}

// HandleEvent receives a webhook delivery, answers the transport's handshake,
// drops redeliveries, and dispatches the event for background processing. The
// transport expects an acknowledgement within a few seconds, so the actual
// work never happens on the request path.
func (eh *EventsHandler) HandleEvent(c *gin.Context) {
	logger := utils.GetLogger()

	var envelope models.ChatEvent
	if err := c.ShouldBindJSON(&envelope); err != nil {
		logger.Warn("Malformed event payload", zap.Error(err))
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid payload"})
		return
	}

	if envelope.Type == "url_verification" {
		c.JSON(http.StatusOK, gin.H{"challenge": envelope.Challenge})
		return
	}

	if !eh.Dedup.FirstDelivery(c.Request.Context(), envelope.EventID) {
		c.JSON(http.StatusOK, gin.H{"status": "duplicate"})
		return
	}

	event := envelope.Event
	if event.BotID != "" {
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	traceID := uuid.NewString()
	switch {
	case event.Type == "app_mention":
		go eh.dispatchMeetingTurn(event, traceID)
	case event.Type == "message" && event.ChannelType == "im":
		go eh.dispatchTimetableImport(event, traceID)
	default:
		c.JSON(http.StatusOK, gin.H{"status": "ignored"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "accepted", "trace_id": traceID})
}

func (eh *EventsHandler) dispatchMeetingTurn(event models.InnerEvent, traceID string) {
	logger := utils.GetLogger().With(zap.String("trace", traceID), zap.String("thread", event.ThreadKey()))
	ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
	defer cancel()

	if err := eh.Conversation.HandleMeetingTurn(ctx, event); err != nil {
		logger.Error("Meeting turn failed", zap.Error(err))
		return
	}
	logger.Info("Meeting turn handled")
}

func (eh *EventsHandler) dispatchTimetableImport(event models.InnerEvent, traceID string) {
	logger := utils.GetLogger().With(zap.String("trace", traceID), zap.String("user", event.User))
	ctx, cancel := context.WithTimeout(context.Background(), dispatchTimeout)
	defer cancel()

	var image []byte
	var mimeType string
	for _, f := range event.Files {
		if !strings.HasPrefix(f.Mimetype, "image/") {
			continue
		}
		data, err := eh.Files.DownloadFile(ctx, f.URLPrivate)
		if err != nil {
			logger.Error("Attachment download failed", zap.String("file", f.ID), zap.Error(err))
			eh.reply(ctx, event, "I couldn't download your attachment. Please try again.")
			return
		}
		image = data
		mimeType = f.Mimetype
		break
	}

	schedule, err := eh.Timetable.ImportFromMessage(ctx, event.User, event.Text, image, mimeType)
	if err != nil {
		logger.Error("Timetable import failed", zap.Error(err))
		eh.reply(ctx, event, "I couldn't read a valid timetable from that message. Please check the format and resend it.")
		return
	}

	logger.Info("Timetable imported")
	eh.reply(ctx, event, conversation.RenderTimetable(schedule))
}

func (eh *EventsHandler) reply(ctx context.Context, event models.InnerEvent, text string) {
	if err := eh.Messenger.PostMessage(ctx, event.Channel, event.ThreadKey(), text); err != nil {
		utils.GetLogger().Error("Reply post failed", zap.String("channel", event.Channel), zap.Error(err))
	}
}
