package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type PlaybackSource string

const (
	SourceRecommendation PlaybackSource = "recommendation"
	SourceSearch         PlaybackSource = "search"
	SourcePlaylist       PlaybackSource = "playlist"
	SourceShuffle        PlaybackSource = "shuffle"
	SourceManual         PlaybackSource = "manual"
)

var validSources = map[PlaybackSource]bool{
	SourceRecommendation: true, SourceSearch: true, SourcePlaylist: true,
	SourceShuffle: true, SourceManual: true,
}

func (s PlaybackSource) Valid() bool { return validSources[s] }

// PlaybackLog is one immutable play event, with the listener's mood snapshot
// captured at play time for listening analytics.
type PlaybackLog struct {
	ID                   primitive.ObjectID  `bson:"_id,omitempty" json:"id"`
	UserID               primitive.ObjectID  `bson:"user_id" json:"userId"`
	SongID               primitive.ObjectID  `bson:"song_id" json:"songId"`
	PlaylistID           *primitive.ObjectID `bson:"playlist_id,omitempty" json:"playlistId,omitempty"`
	Mood                 Mood                `bson:"mood,omitempty" json:"mood,omitempty"`
	MoodIntensity        int                 `bson:"mood_intensity,omitempty" json:"moodIntensity,omitempty"`
	PlayDuration         int                 `bson:"play_duration" json:"playDuration"`
	CompletionPercentage float64             `bson:"completion_percentage" json:"completionPercentage"`
	Skipped              bool                `bson:"skipped" json:"skipped"`
	SkipReason           string              `bson:"skip_reason,omitempty" json:"skipReason,omitempty"`
	Liked                bool                `bson:"liked" json:"liked"`
	Source               PlaybackSource      `bson:"source" json:"source"`
	SessionID            string              `bson:"session_id,omitempty" json:"sessionId,omitempty"`
	CreatedAt            time.Time           `bson:"created_at" json:"createdAt"`
}

type PlaybackRequest struct {
	SongID               string         `json:"songId"`
	PlaylistID           string         `json:"playlistId,omitempty"`
	Mood                 Mood           `json:"mood,omitempty"`
	MoodIntensity        int            `json:"moodIntensity,omitempty"`
	PlayDuration         int            `json:"playDuration"`
	CompletionPercentage float64        `json:"completionPercentage"`
	Skipped              bool           `json:"skipped"`
	SkipReason           string         `json:"skipReason,omitempty"`
	Liked                bool           `json:"liked"`
	Source               PlaybackSource `json:"source"`
	SessionID            string         `json:"sessionId,omitempty"`
}

type PlaybackLogRepository interface {
	Create(ctx context.Context, log *PlaybackLog) error
}
