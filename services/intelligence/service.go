package ai

import (
	"context"
	"strings"
	"time"

	"huddle/models"
	"huddle/utils"

	genai "github.com/google/generative-ai-go/genai"
	"go.uber.org/zap"
)

// DefaultAIService implements AIService on top of a generative model client.
type DefaultAIService struct {
	Client  GenerativeClient
	Timeout time.Duration
	Now     func() time.Time // injectable clock for prompt date stamping
}

// NewDefaultAIService wires the extraction service.
func NewDefaultAIService(client GenerativeClient, timeout time.Duration) *DefaultAIService {
	return &DefaultAIService{
		Client:  client,
		Timeout: timeout,
		Now:     time.Now,
	}
}

// generate runs one bounded model call with a single retry; extraction calls
// are idempotent reads.
func (s *DefaultAIService) generate(ctx context.Context, op, systemPrompt string, parts ...genai.Part) (string, error) {
	logger := utils.GetLogger()

	callCtx, cancel := context.WithTimeout(ctx, s.Timeout)
	reply, err := s.Client.Generate(callCtx, systemPrompt, parts...)
	cancel()
	if err == nil {
		return reply, nil
	}
	logger.Warn("model call failed, retrying once", zap.String("op", op), zap.Error(err))

	callCtx, cancel = context.WithTimeout(ctx, s.Timeout)
	defer cancel()
	reply, err = s.Client.Generate(callCtx, systemPrompt, parts...)
	if err != nil {
		return "", newExternalError(op, err)
	}
	return reply, nil
}

func (s *DefaultAIService) ExtractMeetingParams(ctx context.Context, conversation string) (*models.MeetingParams, error) {
	reply, err := s.generate(ctx, "extractMeetingParams", meetingParamsPrompt(s.Now()), genai.Text(conversation))
	if err != nil {
		return nil, err
	}
	var params models.MeetingParams
	if err := decodeReply("extractMeetingParams", reply, &params); err != nil {
		return nil, err
	}
	return &params, nil
}

func (s *DefaultAIService) ExtractTimetable(ctx context.Context, text string, image []byte, mimeType string) (models.RawDayMap, error) {
	if text == "" {
		text = "empty"
	}
	parts := []genai.Part{}
	if len(image) > 0 {
		parts = append(parts, genai.ImageData(strings.TrimPrefix(mimeType, "image/"), image))
	}
	parts = append(parts, genai.Text(text))

	reply, err := s.generate(ctx, "extractTimetable", timetablePrompt(), parts...)
	if err != nil {
		return nil, err
	}
	var dayMap models.RawDayMap
	if err := decodeReply("extractTimetable", reply, &dayMap); err != nil {
		return nil, err
	}
	return dayMap, nil
}

func (s *DefaultAIService) ExtractPreferences(ctx context.Context, conversation string, candidateSlots []string) (*models.MeetingPreferences, error) {
	reply, err := s.generate(ctx, "extractPreferences", preferencesPrompt(candidateSlots), genai.Text(conversation))
	if err != nil {
		return nil, err
	}
	var prefs models.MeetingPreferences
	if err := decodeReply("extractPreferences", reply, &prefs); err != nil {
		return nil, err
	}
	return &prefs, nil
}
