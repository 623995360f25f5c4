package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Genre string

const (
	GenrePop        Genre = "pop"
	GenreRock       Genre = "rock"
	GenreJazz       Genre = "jazz"
	GenreClassical  Genre = "classical"
	GenreElectronic Genre = "electronic"
	GenreHipHop     Genre = "hiphop"
	GenreFolk       Genre = "folk"
	GenreAmbient    Genre = "ambient"
	GenreMetal      Genre = "metal"
	GenreOther      Genre = "other"
)

var validGenres = map[Genre]bool{
	GenrePop: true, GenreRock: true, GenreJazz: true, GenreClassical: true,
	GenreElectronic: true, GenreHipHop: true, GenreFolk: true,
	GenreAmbient: true, GenreMetal: true, GenreOther: true,
}

func (g Genre) Valid() bool { return validGenres[g] }

type Tempo string

const (
	TempoSlow   Tempo = "slow"
	TempoMedium Tempo = "medium"
	TempoFast   Tempo = "fast"
)

var validTempos = map[Tempo]bool{TempoSlow: true, TempoMedium: true, TempoFast: true}

func (t Tempo) Valid() bool { return validTempos[t] }

type Song struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Title      string             `bson:"title" json:"title"`
	Artist     string             `bson:"artist" json:"artist"`
	Album      string             `bson:"album,omitempty" json:"album,omitempty"`
	Genre      Genre              `bson:"genre" json:"genre"`
	MoodTags   []Mood             `bson:"mood_tags" json:"moodTags"`
	Language   string             `bson:"language,omitempty" json:"language,omitempty"`
	Duration   int                `bson:"duration" json:"duration"`
	FilePath   string             `bson:"file_path" json:"filePath"`
	Energy     int                `bson:"energy" json:"energy"`
	Valence    int                `bson:"valence" json:"valence"`
	Tempo      Tempo              `bson:"tempo" json:"tempo"`
	PlayCount  int64              `bson:"play_count" json:"playCount"`
	Likes      int64              `bson:"likes" json:"likes"`
	IsPublic   bool               `bson:"is_public" json:"isPublic"`
	UploadedBy primitive.ObjectID `bson:"uploaded_by" json:"uploadedBy"`
	CreatedAt  time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt  time.Time          `bson:"updated_at" json:"updatedAt"`
}

// SongFilter narrows a listing to songs visible to ViewerID. Zero values
// mean "no constraint".
type SongFilter struct {
	ViewerID primitive.ObjectID
	Genre    Genre
	Mood     Mood
	Tempo    Tempo
	Language string
	Search   string
	Page     int
	Limit    int
	SortBy   string
	SortDesc bool
}

// RecommendFilter widens energy/valence to a tolerance band before ranking;
// exact matching on a 1-10 scale would starve results.
type RecommendFilter struct {
	ViewerID primitive.ObjectID
	Mood     Mood
	Energy   int
	Valence  int
	Limit    int
}

type SongRepository interface {
	Create(ctx context.Context, song *Song) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*Song, error)
	Fetch(ctx context.Context, filter SongFilter) ([]Song, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, update interface{}) error
	Delete(ctx context.Context, id primitive.ObjectID) error
	IncrementPlayCount(ctx context.Context, id primitive.ObjectID) error
	Recommend(ctx context.Context, filter RecommendFilter) ([]Song, error)
	// FindForPlaylist applies the auto-generate visibility and tag filter,
	// ranked by play count then likes.
	FindForPlaylist(ctx context.Context, viewerID primitive.ObjectID, mood Mood, tempo Tempo, genre Genre, limit int) ([]Song, error)
}

type SongUpdateRequest struct {
	Title    *string `json:"title,omitempty"`
	Artist   *string `json:"artist,omitempty"`
	Album    *string `json:"album,omitempty"`
	Genre    *Genre  `json:"genre,omitempty"`
	MoodTags []Mood  `json:"moodTags,omitempty"`
	Language *string `json:"language,omitempty"`
	Energy   *int    `json:"energy,omitempty"`
	Valence  *int    `json:"valence,omitempty"`
	Tempo    *Tempo  `json:"tempo,omitempty"`
	IsPublic *bool   `json:"isPublic,omitempty"`
}

type SongUsecase interface {
	Upload(ctx context.Context, userID string, req *SongUploadRequest) (*Song, error)
	Fetch(ctx context.Context, userID string, filter SongFilter) ([]Song, int64, error)
	GetByID(ctx context.Context, userID, songID string) (*Song, error)
	Update(ctx context.Context, userID, songID string, req *SongUpdateRequest) (*Song, error)
	Delete(ctx context.Context, userID, songID string) error
	IncrementPlayCount(ctx context.Context, songID string) error
	Recommend(ctx context.Context, userID string, mood Mood, energy, valence, limit int) ([]Song, error)
	RecordPlayback(ctx context.Context, userID string, req *PlaybackRequest) (*PlaybackLog, error)
}

// SongUploadRequest carries the already-persisted upload; FilePath points at
// the stored file so a failed validation can remove it.
type SongUploadRequest struct {
	Title    string
	Artist   string
	Album    string
	Genre    Genre
	MoodTags []Mood
	Language string
	Duration int
	Energy   int
	Valence  int
	Tempo    Tempo
	IsPublic bool
	FilePath string
}
