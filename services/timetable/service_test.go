package timetable

import (
	"context"
	"errors"
	"testing"

	"huddle/models"
	ai "huddle/services/intelligence"
	"huddle/services/scheduler"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExtractor struct {
	schedule models.RawDayMap
	err      error
}

func (f *fakeExtractor) ExtractMeetingParams(ctx context.Context, conversation string) (*models.MeetingParams, error) {
	return nil, errors.New("not used")
}

func (f *fakeExtractor) ExtractTimetable(ctx context.Context, text string, image []byte, mimeType string) (models.RawDayMap, error) {
	return f.schedule, f.err
}

func (f *fakeExtractor) ExtractPreferences(ctx context.Context, conversation string, slots []string) (*models.MeetingPreferences, error) {
	return nil, errors.New("not used")
}

var _ ai.AIService = (*fakeExtractor)(nil)

type fakeRepo struct {
	stored map[string]*models.Timetable
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{stored: map[string]*models.Timetable{}}
}

func (f *fakeRepo) Get(personID string) (*models.Timetable, error) {
	return f.stored[personID], nil
}

func (f *fakeRepo) GetMany(personIDs []string) (map[string]models.RawDayMap, error) {
	out := map[string]models.RawDayMap{}
	for _, id := range personIDs {
		if t, ok := f.stored[id]; ok {
			out[id] = t.Schedule
		}
	}
	return out, nil
}

func (f *fakeRepo) Upsert(t *models.Timetable) error {
	f.stored[t.PersonID] = t
	return nil
}

func (f *fakeRepo) Delete(personID string) error {
	delete(f.stored, personID)
	return nil
}

func validSchedule() models.RawDayMap {
	return models.RawDayMap{
		"Monday": {{StartTime: "09:00", EndTime: "10:00", Name: "Machine Learning", Index: 1}},
	}
}

func TestImportFromMessageStoresSchedule(t *testing.T) {
	repo := newFakeRepo()
	svc := &DefaultImportService{AI: &fakeExtractor{schedule: validSchedule()}, Repo: repo}

	schedule, err := svc.ImportFromMessage(context.Background(), "U01AAA", "here is my timetable", nil, "")
	require.NoError(t, err)
	assert.Len(t, schedule["Monday"], 1)

	stored, err := repo.Get("U01AAA")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, "Machine Learning", stored.Schedule["Monday"][0].Name)
}

func TestImportFromMessageRejectsMalformedExtraction(t *testing.T) {
	repo := newFakeRepo()
	bad := models.RawDayMap{
		"Monday": {{StartTime: "10:00", EndTime: "08:20", Name: "Backwards"}},
	}
	svc := &DefaultImportService{AI: &fakeExtractor{schedule: bad}, Repo: repo}

	_, err := svc.ImportFromMessage(context.Background(), "U01AAA", "timetable", nil, "")
	require.Error(t, err)
	assert.True(t, scheduler.IsValidationError(err))

	stored, _ := repo.Get("U01AAA")
	assert.Nil(t, stored, "nothing should be stored on validation failure")
}

func TestImportFromMessagePropagatesExtractionError(t *testing.T) {
	svc := &DefaultImportService{
		AI:   &fakeExtractor{err: errors.New("model unreachable")},
		Repo: newFakeRepo(),
	}
	_, err := svc.ImportFromMessage(context.Background(), "U01AAA", "timetable", nil, "")
	assert.Error(t, err)
}

func TestPutRejectsWeekendKey(t *testing.T) {
	svc := &DefaultImportService{AI: &fakeExtractor{}, Repo: newFakeRepo()}
	err := svc.Put("U01AAA", models.RawDayMap{
		"Sunday": {{StartTime: "09:00", EndTime: "10:00", Name: "Brunch"}},
	})
	assert.True(t, scheduler.IsValidationError(err))
}
