package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTimeOfDayForHour(t *testing.T) {
	cases := []struct {
		hour int
		want TimeOfDay
	}{
		{0, TimeOfDayNight},
		{4, TimeOfDayNight},
		{5, TimeOfDayMorning},
		{11, TimeOfDayMorning},
		{12, TimeOfDayAfternoon},
		{16, TimeOfDayAfternoon},
		{17, TimeOfDayEvening},
		{20, TimeOfDayEvening},
		{21, TimeOfDayNight},
		{23, TimeOfDayNight},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, TimeOfDayForHour(tc.hour), "hour %d", tc.hour)
	}
}

func TestMoodValid(t *testing.T) {
	assert.True(t, MoodHappy.Valid())
	assert.True(t, MoodMelancholic.Valid())
	assert.False(t, Mood("joyful").Valid())
	assert.False(t, Mood("").Valid())
}

func TestDetectionMethodValid(t *testing.T) {
	assert.True(t, DetectionCamera.Valid())
	assert.True(t, DetectionJournal.Valid())
	assert.False(t, DetectionMethod("telepathy").Valid())
}

func TestTriggerValid(t *testing.T) {
	assert.True(t, TriggerWork.Valid())
	assert.True(t, TriggerOther.Valid())
	assert.False(t, Trigger("traffic").Valid())
}
