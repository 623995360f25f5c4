package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GameType string

const (
	GameBreathing GameType = "breathing"
	GameQuiz      GameType = "quiz"
	GameGratitude GameType = "gratitude"
	GameMemory    GameType = "memory"
	GameRhythm    GameType = "rhythm"
)

var validGameTypes = map[GameType]bool{
	GameBreathing: true, GameQuiz: true, GameGratitude: true,
	GameMemory: true, GameRhythm: true,
}

func (g GameType) Valid() bool { return validGameTypes[g] }

type Achievement string

const (
	AchievementFirstPlay    Achievement = "first_play"
	AchievementPerfectScore Achievement = "perfect_score"
	AchievementQuickFinish  Achievement = "quick_finish"
	AchievementMoodLifter   Achievement = "mood_lifter"
	AchievementHighScore    Achievement = "high_score"
)

// Recognized GameData keys. The bag is open but these are the ones the
// achievement rules read.
const (
	GameDataIsFirstPlay      = "isFirstPlay"
	GameDataExpectedDuration = "expectedDuration"
	GameDataAverageScore     = "averageScore"
)

// GameData is the schema-less per-session payload.
type GameData map[string]interface{}

type Game struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Name              string             `bson:"name" json:"name"`
	Type              GameType           `bson:"type" json:"type"`
	Difficulty        string             `bson:"difficulty" json:"difficulty"`
	TargetMoods       []Mood             `bson:"target_moods" json:"targetMoods"`
	EstimatedDuration int                `bson:"estimated_duration" json:"estimatedDuration"`
	Instructions      string             `bson:"instructions,omitempty" json:"instructions,omitempty"`
	IsActive          bool               `bson:"is_active" json:"isActive"`
	PlayCount         int64              `bson:"play_count" json:"playCount"`
	RatingAverage     float64            `bson:"rating_average" json:"ratingAverage"`
	RatingCount       int64              `bson:"rating_count" json:"ratingCount"`
	CreatedAt         time.Time          `bson:"created_at" json:"createdAt"`
}

type GameSession struct {
	ID                   primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	SessionID            string             `bson:"session_id" json:"sessionId"`
	UserID               primitive.ObjectID `bson:"user_id" json:"userId"`
	GameID               primitive.ObjectID `bson:"game_id" json:"gameId"`
	GameType             GameType           `bson:"game_type" json:"gameType"`
	Difficulty           string             `bson:"difficulty,omitempty" json:"difficulty,omitempty"`
	MoodBefore           MoodSnapshot       `bson:"mood_before" json:"moodBefore"`
	MoodAfter            *MoodSnapshot      `bson:"mood_after,omitempty" json:"moodAfter,omitempty"`
	Score                int                `bson:"score" json:"score"`
	MaxScore             int                `bson:"max_score,omitempty" json:"maxScore,omitempty"`
	Duration             int                `bson:"duration" json:"duration"`
	Completed            bool               `bson:"completed" json:"completed"`
	CompletionPercentage int                `bson:"completion_percentage" json:"completionPercentage"`
	// MoodImprovement is defined only once MoodAfter is set.
	MoodImprovement *int          `bson:"mood_improvement,omitempty" json:"moodImprovement,omitempty"`
	Achievements    []Achievement `bson:"achievements,omitempty" json:"achievements,omitempty"`
	GameData        GameData      `bson:"game_data,omitempty" json:"gameData,omitempty"`
	Rating          int           `bson:"rating,omitempty" json:"rating,omitempty"`
	Feedback        string        `bson:"feedback,omitempty" json:"feedback,omitempty"`
	StartedAt       time.Time     `bson:"started_at" json:"startedAt"`
	CompletedAt     *time.Time    `bson:"completed_at,omitempty" json:"completedAt,omitempty"`
	CreatedAt       time.Time     `bson:"created_at" json:"createdAt"`
}

type GameFilter struct {
	Type       GameType
	Difficulty string
	Mood       Mood
	Page       int
	Limit      int
}

type GameRepository interface {
	Create(ctx context.Context, game *Game) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*Game, error)
	Fetch(ctx context.Context, filter GameFilter) ([]Game, int64, error)
	RecommendByMood(ctx context.Context, mood Mood, limit int) ([]Game, error)
	IncrementPlayCount(ctx context.Context, id primitive.ObjectID) error
	UpdateRating(ctx context.Context, id primitive.ObjectID, average float64, count int64) error
}

type GameSessionRepository interface {
	Create(ctx context.Context, session *GameSession) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*GameSession, error)
	Fetch(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]GameSession, int64, error)
	Update(ctx context.Context, id primitive.ObjectID, update interface{}) error
	CountByUserAndGame(ctx context.Context, userID, gameID primitive.ObjectID) (int64, error)
	HasCompleted(ctx context.Context, userID, gameID primitive.ObjectID) (bool, error)
	// AverageScore is the user's historical mean over completed sessions of
	// one game, feeding the high_score rule.
	AverageScore(ctx context.Context, userID, gameID primitive.ObjectID) (float64, int64, error)
	UserStats(ctx context.Context, userID primitive.ObjectID) (*UserGameStats, error)
}

type StartSessionRequest struct {
	GameID     string       `json:"gameId"`
	Difficulty string       `json:"difficulty,omitempty"`
	MoodBefore MoodSnapshot `json:"moodBefore"`
}

type CompleteSessionRequest struct {
	MoodAfter MoodSnapshot `json:"moodAfter"`
	Score     int          `json:"score"`
	MaxScore  int          `json:"maxScore,omitempty"`
	GameData  GameData     `json:"gameData,omitempty"`
}

type RateGameRequest struct {
	Rating   int    `json:"rating"`
	Feedback string `json:"feedback,omitempty"`
}

// UserGameStats summarizes one user's history across all games.
type UserGameStats struct {
	TotalSessions      int64   `json:"totalSessions"`
	CompletedSessions  int64   `json:"completedSessions"`
	AvgScore           float64 `json:"avgScore"`
	AvgMoodImprovement float64 `json:"avgMoodImprovement"`
	TotalPlayTime      int64   `json:"totalPlayTime"`
}

type GameUsecase interface {
	Fetch(ctx context.Context, filter GameFilter) ([]Game, int64, error)
	GetByID(ctx context.Context, gameID string) (*Game, error)
	RecommendByMood(ctx context.Context, mood Mood, limit int) ([]Game, error)
	StartSession(ctx context.Context, userID string, req *StartSessionRequest) (*GameSession, error)
	CompleteSession(ctx context.Context, userID, sessionID string, req *CompleteSessionRequest) (*GameSession, error)
	GetSession(ctx context.Context, userID, sessionID string) (*GameSession, error)
	FetchSessions(ctx context.Context, userID string, page, limit int) ([]GameSession, int64, error)
	Rate(ctx context.Context, userID, gameID string, req *RateGameRequest) (*Game, error)
	UserStats(ctx context.Context, userID string) (*UserGameStats, error)
}
