package conversation

import (
	"context"
	"fmt"
	"strings"
	"time"

	"huddle/models"
	ai "huddle/services/intelligence"
	"huddle/services/notification"
	"huddle/services/scheduler"
	"huddle/utils"

	"go.uber.org/zap"
)

const genericFailureText = "Sorry, something went wrong while processing your request. Please try again."

// DefaultConversationService is the production refinement-protocol driver.
type DefaultConversationService struct {
	AI        ai.AIService
	Scheduler scheduler.SchedulerService
	Store     ThreadStore
	Messenger notification.Messenger
	Deadline  DeadlineScheduler // optional; nil disables deadline sweeps
}

// HandleMeetingTurn advances the protocol state machine by one conversation
// turn and posts the corresponding reply into the thread.
func (s *DefaultConversationService) HandleMeetingTurn(ctx context.Context, ev models.InnerEvent) error {
	logger := utils.GetLogger()
	threadID := ev.ThreadKey()

	session, err := s.Store.Get(ctx, threadID)
	if err != nil {
		logger.Error("failed to load thread session", zap.String("thread", threadID), zap.Error(err))
		s.post(ctx, ev.Channel, threadID, genericFailureText)
		return err
	}
	if session == nil {
		session = &models.ThreadSession{
			ThreadID:  threadID,
			ChannelID: ev.Channel,
			State:     models.StateCollectingParams,
		}
	}
	if session.Preferences == nil {
		session.Preferences = map[string]string{}
	}
	session.Turns = append(session.Turns, models.Turn{UserID: ev.User, Text: ev.Text})

	switch session.State {
	case models.StateCollectingParams:
		err = s.collectParams(ctx, session)
	case models.StateAwaitingPreference:
		err = s.collectPreferences(ctx, session)
	case models.StateFinalized:
		s.post(ctx, session.ChannelID, session.ThreadID,
			"This meeting is already finalized. Mention me outside this thread to schedule another one.")
	default:
		err = fmt.Errorf("thread %s in unexpected state %q", threadID, session.State)
	}

	if saveErr := s.Store.Set(ctx, session); saveErr != nil {
		logger.Error("failed to save thread session", zap.String("thread", threadID), zap.Error(saveErr))
		if err == nil {
			err = saveErr
		}
	}
	return err
}

// collectParams runs parameter extraction over the accumulated thread text
// and either relays the extractor's request for more information or moves on
// to proposing slots.
func (s *DefaultConversationService) collectParams(ctx context.Context, session *models.ThreadSession) error {
	params, err := s.AI.ExtractMeetingParams(ctx, conversationText(session))
	if err != nil {
		utils.GetLogger().Error("meeting parameter extraction failed",
			zap.String("thread", session.ThreadID), zap.Error(err))
		s.post(ctx, session.ChannelID, session.ThreadID, genericFailureText)
		return err
	}

	if params.Request != "" {
		// Insufficient input: the extractor's question goes out unmodified.
		s.post(ctx, session.ChannelID, session.ThreadID, params.Request)
		return nil
	}

	req, err := buildMeetingRequest(params)
	if err != nil {
		s.post(ctx, session.ChannelID, session.ThreadID,
			fmt.Sprintf("Sorry, I couldn't make sense of the meeting details (%v). Could you rephrase?", err))
		return nil
	}
	session.Request = req
	session.State = models.StateProposing
	return s.propose(ctx, session)
}

// propose resolves availability and posts the tied best slots.
func (s *DefaultConversationService) propose(ctx context.Context, session *models.ThreadSession) error {
	logger := utils.GetLogger()

	res, err := s.Scheduler.ResolveRequest(*session.Request)
	if err != nil {
		session.State = models.StateCollectingParams
		if scheduler.IsValidationError(err) {
			s.post(ctx, session.ChannelID, session.ThreadID,
				fmt.Sprintf("Sorry, that request isn't schedulable (%v). Could you adjust it?", err))
			return nil
		}
		logger.Error("resolution failed", zap.String("thread", session.ThreadID), zap.Error(err))
		s.post(ctx, session.ChannelID, session.ThreadID, genericFailureText)
		return err
	}

	session.Proposal = &res
	if len(res.BestSlots) == 0 {
		// A valid outcome: report it and close the thread.
		session.State = models.StateFinalized
		s.post(ctx, session.ChannelID, session.ThreadID, renderProposal(session.Request, &res))
		return nil
	}

	session.State = models.StateAwaitingPreference
	s.post(ctx, session.ChannelID, session.ThreadID, renderProposal(session.Request, &res))

	if session.Request.Deadline != "" && s.Deadline != nil {
		if at, err := time.Parse("2006-01-02", session.Request.Deadline); err == nil {
			// Sweep at the end of the deadline day.
			at = at.Add(24*time.Hour - time.Minute)
			if err := s.Deadline.ScheduleSweep(session.ChannelID, session.ThreadID, at); err != nil {
				logger.Error("failed to schedule deadline sweep",
					zap.String("thread", session.ThreadID), zap.Error(err))
			}
		} else {
			logger.Warn("unparseable finalization deadline",
				zap.String("deadline", session.Request.Deadline))
		}
	}
	return nil
}

// collectPreferences merges newly stated preferences and finalizes once every
// invited participant has spoken.
func (s *DefaultConversationService) collectPreferences(ctx context.Context, session *models.ThreadSession) error {
	slots := RenderSlots(session.Request, session.Proposal.BestSlots)
	prefs, err := s.AI.ExtractPreferences(ctx, conversationText(session), slots)
	if err != nil {
		utils.GetLogger().Error("preference extraction failed",
			zap.String("thread", session.ThreadID), zap.Error(err))
		s.post(ctx, session.ChannelID, session.ThreadID, genericFailureText)
		return err
	}

	if prefs.BestTime != "" {
		session.BestTime = prefs.BestTime
	}
	for _, entry := range prefs.Participants {
		if entry.Preference != "" {
			session.Preferences[entry.UserID] = entry.Preference
		}
	}

	if !session.AllPreferencesIn() {
		s.post(ctx, session.ChannelID, session.ThreadID, renderAwaiting(session))
		return nil
	}

	if session.BestTime == "" && len(slots) > 0 {
		session.BestTime = slots[0]
	}
	session.State = models.StateFinalized
	s.post(ctx, session.ChannelID, session.ThreadID, renderFinal(session))
	return nil
}

// SweepDeadline force-finalizes a thread once its finalization deadline has
// passed, using whatever preferences were collected.
func (s *DefaultConversationService) SweepDeadline(ctx context.Context, threadID string) error {
	logger := utils.GetLogger()

	session, err := s.Store.Get(ctx, threadID)
	if err != nil {
		return err
	}
	if session == nil || session.State == models.StateFinalized || session.DeadlineSwept {
		return nil
	}
	session.DeadlineSwept = true

	if session.BestTime == "" && session.Request != nil && session.Proposal != nil {
		if slots := RenderSlots(session.Request, session.Proposal.BestSlots); len(slots) > 0 {
			session.BestTime = slots[0]
		}
	}
	session.State = models.StateFinalized
	s.post(ctx, session.ChannelID, session.ThreadID,
		"The finalization deadline has passed.\n"+renderFinal(session))

	logger.Info("thread finalized by deadline sweep", zap.String("thread", threadID))
	return s.Store.Set(ctx, session)
}

// post sends a reply. A failed write is logged but never retried.
func (s *DefaultConversationService) post(ctx context.Context, channelID, threadTS, text string) {
	if err := s.Messenger.PostMessage(ctx, channelID, threadTS, text); err != nil {
		utils.GetLogger().Error("failed to post reply",
			zap.String("channel", channelID), zap.String("thread", threadTS), zap.Error(err))
	}
}

// conversationText flattens the accumulated turns into the prompt input, one
// "<@user>: text" line per turn.
func conversationText(session *models.ThreadSession) string {
	var sb strings.Builder
	for _, turn := range session.Turns {
		fmt.Fprintf(&sb, "<@%s>: %s\n", turn.UserID, turn.Text)
	}
	return strings.TrimSpace(sb.String())
}

// buildMeetingRequest validates extracted parameters into a MeetingRequest.
func buildMeetingRequest(params *models.MeetingParams) (*models.MeetingRequest, error) {
	if len(params.Participants) == 0 {
		return nil, scheduler.NewValidationError("no participants extracted")
	}
	duration, err := scheduler.DurationToMinutes(string(params.Duration))
	if err != nil {
		return nil, err
	}
	start, end, err := scheduler.ParseDateRange(params.DateRange)
	if err != nil {
		return nil, err
	}
	return &models.MeetingRequest{
		Participants:    params.Participants,
		StartDate:       start,
		EndDate:         end,
		DurationMinutes: duration,
		Deadline:        params.Deadline,
	}, nil
}
