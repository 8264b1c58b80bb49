package scheduler

import (
	"testing"

	"huddle/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalizeOrdersByWeekday(t *testing.T) {
	raw := models.RawDayMap{
		"Wednesday": {{StartTime: "13:00", EndTime: "15:00", Name: "Psychology", Index: 4}},
		"Monday": {
			{StartTime: "08:00", EndTime: "12:30", Name: "Network Science", Index: 1},
			{StartTime: "14:30", EndTime: "15:30", Name: "AI Fundamentals", Index: 2},
		},
	}
	intervals, err := Normalize(raw)
	require.NoError(t, err)
	require.Len(t, intervals, 3)

	assert.Equal(t, models.Interval{
		Weekday: "Monday", StartMinute: 480, EndMinute: 750, Label: "Network Science", Index: 1,
	}, intervals[0])
	assert.Equal(t, models.Interval{
		Weekday: "Monday", StartMinute: 870, EndMinute: 930, Label: "AI Fundamentals", Index: 2,
	}, intervals[1])
	assert.Equal(t, "Wednesday", intervals[2].Weekday)
}

func TestNormalizeEmptyMap(t *testing.T) {
	intervals, err := Normalize(models.RawDayMap{})
	require.NoError(t, err)
	assert.Empty(t, intervals)
}

func TestNormalizeRejectsWeekendKey(t *testing.T) {
	raw := models.RawDayMap{
		"Saturday": {{StartTime: "09:00", EndTime: "10:00", Name: "Brunch"}},
	}
	_, err := Normalize(raw)
	assert.True(t, IsValidationError(err))
}

func TestNormalizeRejectsNonChronologicalInterval(t *testing.T) {
	raw := models.RawDayMap{
		"Monday": {{StartTime: "10:00", EndTime: "08:20", Name: "Backwards"}},
	}
	_, err := Normalize(raw)
	assert.True(t, IsValidationError(err))
}

func TestNormalizeRejectsMalformedTime(t *testing.T) {
	raw := models.RawDayMap{
		"Monday": {{StartTime: "nine", EndTime: "10:00", Name: "Bad"}},
	}
	_, err := Normalize(raw)
	assert.True(t, IsValidationError(err))
}

func TestNormalizeAllMissingParticipantIsFullyAvailable(t *testing.T) {
	raw := map[string]models.RawDayMap{
		"A": {"Monday": {{StartTime: "09:00", EndTime: "10:00", Name: "Class"}}},
	}
	schedules, err := NormalizeAll([]string{"A", "B"}, raw)
	require.NoError(t, err)

	assert.Len(t, schedules["A"], 1)
	assert.Empty(t, schedules["B"])
}
