package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MoodSnapshot is the denormalized copy of a prior observation embedded in
// the next one, so transition analysis never needs a self-join.
type MoodSnapshot struct {
	Mood      Mood      `bson:"mood" json:"mood"`
	Intensity int       `bson:"intensity" json:"intensity"`
	Timestamp time.Time `bson:"timestamp" json:"timestamp"`
}

type MoodContext struct {
	Location  string    `bson:"location,omitempty" json:"location,omitempty"`
	Activity  string    `bson:"activity,omitempty" json:"activity,omitempty"`
	Weather   string    `bson:"weather,omitempty" json:"weather,omitempty"`
	TimeOfDay TimeOfDay `bson:"time_of_day,omitempty" json:"timeOfDay,omitempty"`
}

type MoodLog struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID          primitive.ObjectID `bson:"user_id" json:"userId"`
	Mood            Mood               `bson:"mood" json:"mood"`
	Intensity       int                `bson:"intensity" json:"intensity"`
	DetectionMethod DetectionMethod    `bson:"detection_method" json:"detectionMethod"`
	Confidence      float64            `bson:"confidence" json:"confidence"`
	Notes           string             `bson:"notes,omitempty" json:"notes,omitempty"`
	Context         MoodContext        `bson:"context" json:"context"`
	Triggers        []Trigger          `bson:"triggers,omitempty" json:"triggers,omitempty"`
	PreviousMood    *MoodSnapshot      `bson:"previous_mood,omitempty" json:"previousMood,omitempty"`
	SessionID       string             `bson:"session_id,omitempty" json:"sessionId,omitempty"`
	CreatedAt       time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updatedAt"`
}

type MoodLogFilter struct {
	UserID   primitive.ObjectID
	Mood     Mood
	Method   DetectionMethod
	From     time.Time
	To       time.Time
	Page     int
	Limit    int
	SortBy   string
	SortDesc bool
}

type MoodLogRepository interface {
	Create(ctx context.Context, log *MoodLog) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*MoodLog, error)
	// GetLatest returns the user's most recent log by creation time, ties
	// broken by insertion order, or nil when the user has none.
	GetLatest(ctx context.Context, userID primitive.ObjectID) (*MoodLog, error)
	Fetch(ctx context.Context, filter MoodLogFilter) ([]MoodLog, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, update interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type LogMoodRequest struct {
	Mood            Mood            `json:"mood"`
	Intensity       int             `json:"intensity"`
	DetectionMethod DetectionMethod `json:"detectionMethod"`
	Confidence      *float64        `json:"confidence,omitempty"`
	Notes           string          `json:"notes,omitempty"`
	Context         *MoodContext    `json:"context,omitempty"`
	Triggers        []Trigger       `json:"triggers,omitempty"`
	SessionID       string          `json:"sessionId,omitempty"`
}

// MoodLogUpdateRequest covers the only mutable fields; everything else is
// write-once.
type MoodLogUpdateRequest struct {
	Notes    *string      `json:"notes,omitempty"`
	Context  *MoodContext `json:"context,omitempty"`
	Triggers []Trigger    `json:"triggers,omitempty"`
}

type MoodLogUsecase interface {
	LogMood(ctx context.Context, userID string, req *LogMoodRequest) (*MoodLog, error)
	Fetch(ctx context.Context, userID string, filter MoodLogFilter) ([]MoodLog, int64, error)
	GetByID(ctx context.Context, userID, logID string) (*MoodLog, error)
	Update(ctx context.Context, userID, logID string, req *MoodLogUpdateRequest) (*MoodLog, error)
	Delete(ctx context.Context, userID, logID string) error
}
