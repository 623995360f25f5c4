package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// GeneratedFor records the filters an auto-generated playlist was built from.
type GeneratedFor struct {
	Mood  Mood  `bson:"mood,omitempty" json:"mood,omitempty"`
	Tempo Tempo `bson:"tempo,omitempty" json:"tempo,omitempty"`
	Genre Genre `bson:"genre,omitempty" json:"genre,omitempty"`
	Limit int   `bson:"limit" json:"limit"`
}

type Playlist struct {
	ID              primitive.ObjectID   `bson:"_id,omitempty" json:"id"`
	Name            string               `bson:"name" json:"name"`
	Description     string               `bson:"description,omitempty" json:"description,omitempty"`
	SongIDs         []primitive.ObjectID `bson:"song_ids" json:"songIds"`
	OwnerID         primitive.ObjectID   `bson:"owner_id" json:"ownerId"`
	Mood            Mood                 `bson:"mood,omitempty" json:"mood,omitempty"`
	IsPublic        bool                 `bson:"is_public" json:"isPublic"`
	IsAutoGenerated bool                 `bson:"is_auto_generated" json:"isAutoGenerated"`
	GeneratedFor    *GeneratedFor        `bson:"generated_for,omitempty" json:"generatedFor,omitempty"`
	PlayCount       int64                `bson:"play_count" json:"playCount"`
	FollowerIDs     []primitive.ObjectID `bson:"follower_ids" json:"followerIds"`
	CreatedAt       time.Time            `bson:"created_at" json:"createdAt"`
	UpdatedAt       time.Time            `bson:"updated_at" json:"updatedAt"`
}

type PlaylistFilter struct {
	ViewerID primitive.ObjectID
	Mood     Mood
	OwnedBy  primitive.ObjectID
	Page     int
	Limit    int
}

type PlaylistRepository interface {
	Create(ctx context.Context, playlist *Playlist) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*Playlist, error)
	Fetch(ctx context.Context, filter PlaylistFilter) ([]Playlist, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, update interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	// AddSong and RemoveSong are idempotent: adding a present song and
	// removing an absent one are both no-ops.
	AddSong(ctx context.Context, id, songID primitive.ObjectID) error
	RemoveSong(ctx context.Context, id, songID primitive.ObjectID) error
	IncrementPlayCount(ctx context.Context, id primitive.ObjectID) error
	SetFollowing(ctx context.Context, id, userID primitive.ObjectID, following bool) error
}

type PlaylistCreateRequest struct {
	Name        string   `json:"name" binding:"required"`
	Description string   `json:"description"`
	Mood        Mood     `json:"mood"`
	IsPublic    bool     `json:"isPublic"`
	SongIDs     []string `json:"songIds"`
}

type PlaylistUpdateRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Mood        *Mood   `json:"mood,omitempty"`
	IsPublic    *bool   `json:"isPublic,omitempty"`
}

type AutoGenerateRequest struct {
	Mood  Mood  `json:"mood"`
	Tempo Tempo `json:"tempo"`
	Genre Genre `json:"genre"`
	Limit int   `json:"limit"`
}

type PlaylistUsecase interface {
	Create(ctx context.Context, userID string, req *PlaylistCreateRequest) (*Playlist, error)
	Fetch(ctx context.Context, userID string, filter PlaylistFilter) ([]Playlist, int64, error)
	GetByID(ctx context.Context, userID, playlistID string) (*Playlist, error)
	Update(ctx context.Context, userID, playlistID string, req *PlaylistUpdateRequest) (*Playlist, error)
	Delete(ctx context.Context, userID, playlistID string) error
	AutoGenerate(ctx context.Context, userID string, req *AutoGenerateRequest) (*Playlist, error)
	AddSong(ctx context.Context, userID, playlistID, songID string) (*Playlist, error)
	RemoveSong(ctx context.Context, userID, playlistID, songID string) (*Playlist, error)
	IncrementPlayCount(ctx context.Context, playlistID string) error
	SetFollowing(ctx context.Context, userID, playlistID string, following bool) error
}
