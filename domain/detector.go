package domain

import "context"

// MoodDetection is one detector verdict over a piece of input.
type MoodDetection struct {
	Mood       Mood    `json:"mood"`
	Intensity  int     `json:"intensity"`
	Confidence float64 `json:"confidence"`
}

// MoodDetector turns raw channel input (free text, a transcript) into a
// mood verdict. Camera and voice inference run in external services behind
// this same contract; the bundled implementation only handles text.
type MoodDetector interface {
	Detect(ctx context.Context, input string) (*MoodDetection, error)
}

type MoodDetectRequest struct {
	Input string `json:"input" binding:"required"`
}
