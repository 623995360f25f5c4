// Package mooddetect implements text mood detection with a keyword table.
package mooddetect

import (
	"context"
	"strings"

	"github.com/moodtunes/moodtunes-backend/domain"
)

// moods fixes the evaluation order so ties resolve deterministically.
var moods = []domain.Mood{
	domain.MoodHappy, domain.MoodSad, domain.MoodEnergetic, domain.MoodCalm,
	domain.MoodAnxious, domain.MoodAngry, domain.MoodRomantic, domain.MoodNostalgic,
	domain.MoodFocused, domain.MoodRelaxed, domain.MoodExcited, domain.MoodMelancholic,
}

var keywords = map[domain.Mood][]string{
	domain.MoodHappy:       {"happy", "glad", "joy", "great", "wonderful", "smile", "good"},
	domain.MoodSad:         {"sad", "down", "cry", "unhappy", "miserable", "lonely"},
	domain.MoodEnergetic:   {"energetic", "pumped", "active", "alive", "workout"},
	domain.MoodCalm:        {"calm", "peaceful", "quiet", "serene", "still"},
	domain.MoodAnxious:     {"anxious", "nervous", "worried", "stress", "tense", "afraid"},
	domain.MoodAngry:       {"angry", "mad", "furious", "annoyed", "frustrated"},
	domain.MoodRomantic:    {"love", "romantic", "crush", "date", "heart"},
	domain.MoodNostalgic:   {"nostalgic", "memories", "remember", "miss", "childhood"},
	domain.MoodFocused:     {"focused", "concentrate", "productive", "deadline", "study"},
	domain.MoodRelaxed:     {"relaxed", "chill", "rest", "easy", "lazy"},
	domain.MoodExcited:     {"excited", "thrilled", "amazing", "awesome", "hyped"},
	domain.MoodMelancholic: {"melancholic", "wistful", "gloomy", "bittersweet", "rain"},
}

type keywordDetector struct{}

func NewKeywordDetector() domain.MoodDetector {
	return keywordDetector{}
}

// Detect scores each mood by matched keyword count. Input with no matches
// yields a low-confidence calm verdict rather than an error, so callers can
// always present a suggestion the user may override.
func (keywordDetector) Detect(_ context.Context, input string) (*domain.MoodDetection, error) {
	text := strings.ToLower(input)

	best := domain.MoodCalm
	bestMatches := 0
	for _, mood := range moods {
		matches := 0
		for _, kw := range keywords[mood] {
			if strings.Contains(text, kw) {
				matches++
			}
		}
		if matches > bestMatches {
			best, bestMatches = mood, matches
		}
	}

	if bestMatches == 0 {
		return &domain.MoodDetection{Mood: domain.MoodCalm, Intensity: 5, Confidence: 0.2}, nil
	}

	intensity := 5 + bestMatches
	if intensity > 10 {
		intensity = 10
	}
	confidence := 0.4 + 0.15*float64(bestMatches)
	if confidence > 0.95 {
		confidence = 0.95
	}
	return &domain.MoodDetection{Mood: best, Intensity: intensity, Confidence: confidence}, nil
}
