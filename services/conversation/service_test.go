package conversation

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"huddle/models"
	ai "huddle/services/intelligence"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memoryThreadStore struct {
	mu       sync.Mutex
	sessions map[string]*models.ThreadSession
}

func newMemoryThreadStore() *memoryThreadStore {
	return &memoryThreadStore{sessions: map[string]*models.ThreadSession{}}
}

func (m *memoryThreadStore) Get(ctx context.Context, threadID string) (*models.ThreadSession, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.sessions[threadID]
	if !ok {
		return nil, nil
	}
	copied := *s
	return &copied, nil
}

func (m *memoryThreadStore) Set(ctx context.Context, session *models.ThreadSession) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	copied := *session
	m.sessions[session.ThreadID] = &copied
	return nil
}

func (m *memoryThreadStore) Delete(ctx context.Context, threadID string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.sessions, threadID)
	return nil
}

type fakeAI struct {
	params    *models.MeetingParams
	paramsErr error
	prefs     *models.MeetingPreferences
	prefsErr  error
	lastText  string
}

func (f *fakeAI) ExtractMeetingParams(ctx context.Context, conversation string) (*models.MeetingParams, error) {
	f.lastText = conversation
	return f.params, f.paramsErr
}

func (f *fakeAI) ExtractTimetable(ctx context.Context, text string, image []byte, mimeType string) (models.RawDayMap, error) {
	return nil, errors.New("not used")
}

func (f *fakeAI) ExtractPreferences(ctx context.Context, conversation string, slots []string) (*models.MeetingPreferences, error) {
	f.lastText = conversation
	return f.prefs, f.prefsErr
}

var _ ai.AIService = (*fakeAI)(nil)

type fakeSchedulerService struct {
	result models.ResolutionResult
	err    error
}

func (f *fakeSchedulerService) ResolveRequest(req models.MeetingRequest) (models.ResolutionResult, error) {
	return f.result, f.err
}

type fakeMessenger struct {
	posts []string
}

func (f *fakeMessenger) PostMessage(ctx context.Context, channelID, threadTS, text string) error {
	f.posts = append(f.posts, text)
	return nil
}

func (f *fakeMessenger) last() string {
	if len(f.posts) == 0 {
		return ""
	}
	return f.posts[len(f.posts)-1]
}

type fakeDeadlineScheduler struct {
	scheduled []string
	at        time.Time
}

func (f *fakeDeadlineScheduler) ScheduleSweep(channelID, threadID string, at time.Time) error {
	f.scheduled = append(f.scheduled, threadID)
	f.at = at
	return nil
}

func mention(text string) models.InnerEvent {
	return models.InnerEvent{
		Type: "app_mention", Channel: "C01", User: "U01AAA", Text: text, TS: "111.222",
	}
}

func completeParams() *models.MeetingParams {
	return &models.MeetingParams{
		Duration:     "1",
		DateRange:    "2025-01-06 to 2025-01-08",
		Participants: []string{"U01AAA", "U01BBB"},
		Deadline:     "2025-01-07",
	}
}

func goodResult() models.ResolutionResult {
	return models.ResolutionResult{
		BestSlots:       []models.CandidateSlot{{Weekday: "Monday", StartMinute: 480}},
		MaxParticipants: 2,
	}
}

func newTestService(aiSvc *fakeAI, sched *fakeSchedulerService, store ThreadStore, msg *fakeMessenger, dl DeadlineScheduler) *DefaultConversationService {
	return &DefaultConversationService{
		AI: aiSvc, Scheduler: sched, Store: store, Messenger: msg, Deadline: dl,
	}
}

func TestHandleMeetingTurnRelaysExtractorRequest(t *testing.T) {
	aiSvc := &fakeAI{params: &models.MeetingParams{Request: "Who should attend?"}}
	store := newMemoryThreadStore()
	msg := &fakeMessenger{}
	svc := newTestService(aiSvc, &fakeSchedulerService{}, store, msg, nil)

	require.NoError(t, svc.HandleMeetingTurn(context.Background(), mention("schedule a meeting")))

	assert.Equal(t, "Who should attend?", msg.last())
	session, _ := store.Get(context.Background(), "111.222")
	require.NotNil(t, session)
	assert.Equal(t, models.StateCollectingParams, session.State)
	assert.Contains(t, aiSvc.lastText, "<@U01AAA>: schedule a meeting")
}

func TestHandleMeetingTurnProposesWhenParamsComplete(t *testing.T) {
	aiSvc := &fakeAI{params: completeParams()}
	sched := &fakeSchedulerService{result: goodResult()}
	store := newMemoryThreadStore()
	msg := &fakeMessenger{}
	dl := &fakeDeadlineScheduler{}
	svc := newTestService(aiSvc, sched, store, msg, dl)

	require.NoError(t, svc.HandleMeetingTurn(context.Background(), mention("1 hour next week with <@U01BBB>")))

	session, _ := store.Get(context.Background(), "111.222")
	require.NotNil(t, session)
	assert.Equal(t, models.StateAwaitingPreference, session.State)
	assert.Equal(t, 60, session.Request.DurationMinutes)
	assert.Contains(t, msg.last(), "2025-01-06 08:00")
	assert.Contains(t, msg.last(), "2 of 2 participants")
	assert.Equal(t, []string{"111.222"}, dl.scheduled)
}

func TestHandleMeetingTurnAccumulatesTurnsAcrossRounds(t *testing.T) {
	aiSvc := &fakeAI{params: &models.MeetingParams{Request: "For how long?"}}
	store := newMemoryThreadStore()
	msg := &fakeMessenger{}
	svc := newTestService(aiSvc, &fakeSchedulerService{}, store, msg, nil)

	ctx := context.Background()
	require.NoError(t, svc.HandleMeetingTurn(ctx, mention("schedule a meeting")))

	second := mention("one hour please")
	second.ThreadTS = "111.222"
	second.TS = "111.333"
	require.NoError(t, svc.HandleMeetingTurn(ctx, second))

	assert.Contains(t, aiSvc.lastText, "schedule a meeting")
	assert.Contains(t, aiSvc.lastText, "one hour please")
}

func TestHandleMeetingTurnUnparseableParamsStaysCollecting(t *testing.T) {
	params := completeParams()
	params.DateRange = "whenever"
	aiSvc := &fakeAI{params: params}
	store := newMemoryThreadStore()
	msg := &fakeMessenger{}
	svc := newTestService(aiSvc, &fakeSchedulerService{}, store, msg, nil)

	require.NoError(t, svc.HandleMeetingTurn(context.Background(), mention("meet whenever")))

	session, _ := store.Get(context.Background(), "111.222")
	assert.Equal(t, models.StateCollectingParams, session.State)
	assert.Contains(t, msg.last(), "couldn't make sense")
}

func TestHandleMeetingTurnExtractionFailurePostsGenericMessage(t *testing.T) {
	aiSvc := &fakeAI{paramsErr: errors.New("model unreachable")}
	store := newMemoryThreadStore()
	msg := &fakeMessenger{}
	svc := newTestService(aiSvc, &fakeSchedulerService{}, store, msg, nil)

	err := svc.HandleMeetingTurn(context.Background(), mention("schedule"))
	require.Error(t, err)
	assert.Equal(t, genericFailureText, msg.last())
}

func TestHandleMeetingTurnNoFeasibleSlotFinalizes(t *testing.T) {
	aiSvc := &fakeAI{params: completeParams()}
	sched := &fakeSchedulerService{result: models.ResolutionResult{}}
	store := newMemoryThreadStore()
	msg := &fakeMessenger{}
	svc := newTestService(aiSvc, sched, store, msg, nil)

	require.NoError(t, svc.HandleMeetingTurn(context.Background(), mention("schedule")))

	session, _ := store.Get(context.Background(), "111.222")
	assert.Equal(t, models.StateFinalized, session.State)
	assert.Contains(t, msg.last(), "No slot found")
}

func awaitingSession(t *testing.T, store ThreadStore) {
	t.Helper()
	req := &models.MeetingRequest{
		Participants:    []string{"U01AAA", "U01BBB"},
		StartDate:       "2025-01-06",
		EndDate:         "2025-01-08",
		DurationMinutes: 60,
	}
	res := goodResult()
	require.NoError(t, store.Set(context.Background(), &models.ThreadSession{
		ThreadID:  "111.222",
		ChannelID: "C01",
		State:     models.StateAwaitingPreference,
		Request:   req,
		Proposal:  &res,
	}))
}

func TestHandleMeetingTurnPartialPreferencesStayAwaiting(t *testing.T) {
	store := newMemoryThreadStore()
	awaitingSession(t, store)
	aiSvc := &fakeAI{prefs: &models.MeetingPreferences{
		Participants: []models.PreferenceEntry{
			{UserID: "U01AAA", Preference: "anytime"},
			{UserID: "U01BBB", Preference: ""},
		},
	}}
	msg := &fakeMessenger{}
	svc := newTestService(aiSvc, &fakeSchedulerService{}, store, msg, nil)

	reply := mention("anytime works for me")
	reply.ThreadTS = "111.222"
	require.NoError(t, svc.HandleMeetingTurn(context.Background(), reply))

	session, _ := store.Get(context.Background(), "111.222")
	assert.Equal(t, models.StateAwaitingPreference, session.State)
	assert.Equal(t, "anytime", session.Preferences["U01AAA"])
	assert.Contains(t, msg.last(), "<@U01BBB>")
}

func TestHandleMeetingTurnAllPreferencesFinalize(t *testing.T) {
	store := newMemoryThreadStore()
	awaitingSession(t, store)
	aiSvc := &fakeAI{prefs: &models.MeetingPreferences{
		BestTime: "2025-01-06 08:00",
		Participants: []models.PreferenceEntry{
			{UserID: "U01AAA", Preference: "anytime"},
			{UserID: "U01BBB", Preference: "mornings only"},
		},
	}}
	msg := &fakeMessenger{}
	svc := newTestService(aiSvc, &fakeSchedulerService{}, store, msg, nil)

	reply := mention("mornings only")
	reply.ThreadTS = "111.222"
	require.NoError(t, svc.HandleMeetingTurn(context.Background(), reply))

	session, _ := store.Get(context.Background(), "111.222")
	assert.Equal(t, models.StateFinalized, session.State)
	assert.Equal(t, "2025-01-06 08:00", session.BestTime)
	assert.Contains(t, msg.last(), "2025-01-06 08:00")
	assert.Contains(t, msg.last(), "mornings only")
}

func TestHandleMeetingTurnFinalizedThreadIsTerminal(t *testing.T) {
	store := newMemoryThreadStore()
	require.NoError(t, store.Set(context.Background(), &models.ThreadSession{
		ThreadID: "111.222", ChannelID: "C01", State: models.StateFinalized,
	}))
	msg := &fakeMessenger{}
	svc := newTestService(&fakeAI{}, &fakeSchedulerService{}, store, msg, nil)

	reply := mention("actually, can we move it?")
	reply.ThreadTS = "111.222"
	require.NoError(t, svc.HandleMeetingTurn(context.Background(), reply))

	session, _ := store.Get(context.Background(), "111.222")
	assert.Equal(t, models.StateFinalized, session.State)
	assert.Contains(t, msg.last(), "already finalized")
}

func TestSweepDeadlineFinalizesPendingThread(t *testing.T) {
	store := newMemoryThreadStore()
	awaitingSession(t, store)
	msg := &fakeMessenger{}
	svc := newTestService(&fakeAI{}, &fakeSchedulerService{}, store, msg, nil)

	require.NoError(t, svc.SweepDeadline(context.Background(), "111.222"))

	session, _ := store.Get(context.Background(), "111.222")
	assert.Equal(t, models.StateFinalized, session.State)
	assert.True(t, session.DeadlineSwept)
	assert.Equal(t, "2025-01-06 08:00", session.BestTime)
	assert.Contains(t, msg.last(), "deadline has passed")
}

func TestSweepDeadlineNoopOnFinalizedOrUnknownThread(t *testing.T) {
	store := newMemoryThreadStore()
	msg := &fakeMessenger{}
	svc := newTestService(&fakeAI{}, &fakeSchedulerService{}, store, msg, nil)

	require.NoError(t, svc.SweepDeadline(context.Background(), "missing"))
	assert.Empty(t, msg.posts)

	require.NoError(t, store.Set(context.Background(), &models.ThreadSession{
		ThreadID: "111.222", State: models.StateFinalized,
	}))
	require.NoError(t, svc.SweepDeadline(context.Background(), "111.222"))
	assert.Empty(t, msg.posts)
}
