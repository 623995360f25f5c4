package mooddetect

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodtunes/moodtunes-backend/domain"
)

func TestDetectMatchesKeywords(t *testing.T) {
	detector := NewKeywordDetector()

	cases := []struct {
		input string
		want  domain.Mood
	}{
		{"I feel so happy today, big smile on my face", domain.MoodHappy},
		{"worried and tense about the exam", domain.MoodAnxious},
		{"just want to chill and rest", domain.MoodRelaxed},
		{"MISS my childhood memories", domain.MoodNostalgic},
	}
	for _, tc := range cases {
		detection, err := detector.Detect(context.Background(), tc.input)
		require.NoError(t, err)
		assert.Equal(t, tc.want, detection.Mood, "input %q", tc.input)
		assert.True(t, detection.Confidence > 0.4)
		assert.GreaterOrEqual(t, detection.Intensity, 1)
		assert.LessOrEqual(t, detection.Intensity, 10)
	}
}

func TestDetectMoreMatchesRaiseConfidence(t *testing.T) {
	detector := NewKeywordDetector()

	one, err := detector.Detect(context.Background(), "happy")
	require.NoError(t, err)
	three, err := detector.Detect(context.Background(), "happy, full of joy, what a wonderful day")
	require.NoError(t, err)

	assert.Equal(t, domain.MoodHappy, one.Mood)
	assert.Equal(t, domain.MoodHappy, three.Mood)
	assert.Greater(t, three.Confidence, one.Confidence)
	assert.Greater(t, three.Intensity, one.Intensity)
}

func TestDetectNoMatchFallsBackToCalm(t *testing.T) {
	detector := NewKeywordDetector()

	detection, err := detector.Detect(context.Background(), "lorem ipsum dolor")
	require.NoError(t, err)
	assert.Equal(t, domain.MoodCalm, detection.Mood)
	assert.Equal(t, 5, detection.Intensity)
	assert.InDelta(t, 0.2, detection.Confidence, 0.001)
}
