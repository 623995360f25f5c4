package domain

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Zero-valued overview records are returned whenever a window holds no
// documents, so consumers never branch on absence.

type MoodOverview struct {
	TotalMoodLogs    int64             `bson:"total_mood_logs" json:"totalMoodLogs"`
	AvgMoodIntensity float64           `bson:"avg_mood_intensity" json:"avgMoodIntensity"`
	UniqueMoods      []Mood            `bson:"unique_moods" json:"uniqueMoods"`
	DetectionMethods []DetectionMethod `bson:"detection_methods" json:"detectionMethods"`
}

type ListeningOverview struct {
	TotalPlays         int64   `bson:"total_plays" json:"totalPlays"`
	TotalListeningTime int64   `bson:"total_listening_time" json:"totalListeningTime"`
	AvgCompletion      float64 `bson:"avg_completion" json:"avgCompletion"`
	UniqueSongs        int64   `bson:"unique_songs" json:"uniqueSongs"`
	LikedCount         int64   `bson:"liked_count" json:"likedCount"`
}

type PlaylistOverview struct {
	TotalPlaylists int64   `bson:"total_playlists" json:"totalPlaylists"`
	AutoGenerated  int64   `bson:"auto_generated" json:"autoGenerated"`
	AvgSongCount   float64 `bson:"avg_song_count" json:"avgSongCount"`
	TotalSongCount int64   `bson:"total_song_count" json:"totalSongCount"`
}

type GameOverview struct {
	TotalSessions      int64   `bson:"total_sessions" json:"totalSessions"`
	CompletedSessions  int64   `bson:"completed_sessions" json:"completedSessions"`
	AvgScore           float64 `bson:"avg_score" json:"avgScore"`
	AvgMoodImprovement float64 `bson:"avg_mood_improvement" json:"avgMoodImprovement"`
}

type RecentActivity struct {
	MoodLogs     []MoodLog     `json:"moodLogs"`
	Playbacks    []PlaybackLog `json:"playbacks"`
	GameSessions []GameSession `json:"gameSessions"`
}

type Dashboard struct {
	Moods          MoodOverview      `json:"moods"`
	Listening      ListeningOverview `json:"listening"`
	Playlists      PlaylistOverview  `json:"playlists"`
	Games          GameOverview      `json:"games"`
	RecentActivity RecentActivity    `json:"recentActivity"`
	WindowDays     int               `json:"windowDays"`
}

type TrendGranularity string

const (
	TrendDaily   TrendGranularity = "day"
	TrendWeekly  TrendGranularity = "week"
	TrendMonthly TrendGranularity = "month"
)

func (g TrendGranularity) Valid() bool {
	return g == TrendDaily || g == TrendWeekly || g == TrendMonthly
}

type TrendBucket struct {
	Bucket       string  `bson:"bucket" json:"bucket"`
	Mood         Mood    `bson:"mood" json:"mood"`
	Count        int64   `bson:"count" json:"count"`
	MinIntensity int     `bson:"min_intensity" json:"minIntensity"`
	AvgIntensity float64 `bson:"avg_intensity" json:"avgIntensity"`
	MaxIntensity int     `bson:"max_intensity" json:"maxIntensity"`
}

type MoodCount struct {
	Mood  Mood  `bson:"mood" json:"mood"`
	Count int64 `bson:"count" json:"count"`
}

type MoodDistributionEntry struct {
	Mood       Mood    `json:"mood"`
	Count      int64   `json:"count"`
	Percentage float64 `json:"percentage"`
}

type MoodTrends struct {
	Granularity  TrendGranularity        `json:"granularity"`
	Buckets      []TrendBucket           `json:"buckets"`
	Distribution []MoodDistributionEntry `json:"distribution"`
	TotalMoods   int64                   `json:"totalMoods"`
}

type MoodFrequency struct {
	Distribution []MoodDistributionEntry `json:"distribution"`
	TotalMoods   int64                   `json:"totalMoods"`
	WindowDays   int                     `json:"windowDays"`
}

type TriggerCount struct {
	Trigger Trigger `bson:"trigger" json:"trigger"`
	Count   int64   `bson:"count" json:"count"`
}

// MoodInsights summarizes when and why moods get logged. Peak is the
// hour/weekday cell with the highest average intensity, nil on an empty
// window.
type MoodInsights struct {
	Overview     MoodOverview   `json:"overview"`
	DominantMood Mood           `json:"dominantMood,omitempty"`
	TopTriggers  []TriggerCount `json:"topTriggers"`
	Peak         *HeatmapCell   `json:"peak,omitempty"`
	Heatmap      []HeatmapCell  `json:"heatmap"`
	WindowDays   int            `json:"windowDays"`
}

type TopSong struct {
	Song          Song    `bson:"song" json:"song"`
	PlayCount     int64   `bson:"play_count" json:"playCount"`
	TotalDuration int64   `bson:"total_duration" json:"totalDuration"`
	AvgCompletion float64 `bson:"avg_completion" json:"avgCompletion"`
}

type MoodGenrePlay struct {
	Mood      Mood  `bson:"mood" json:"mood"`
	Genre     Genre `bson:"genre" json:"genre"`
	PlayCount int64 `bson:"play_count" json:"playCount"`
}

type DailyListening struct {
	Date          string `bson:"date" json:"date"`
	PlayCount     int64  `bson:"play_count" json:"playCount"`
	TotalDuration int64  `bson:"total_duration" json:"totalDuration"`
}

type GenrePreference struct {
	Genre         Genre   `bson:"genre" json:"genre"`
	PlayCount     int64   `bson:"play_count" json:"playCount"`
	TotalDuration int64   `bson:"total_duration" json:"totalDuration"`
	AvgCompletion float64 `bson:"avg_completion" json:"avgCompletion"`
	LikeRate      float64 `bson:"like_rate" json:"likeRate"`
}

type HourHistogramEntry struct {
	Hour      int   `bson:"hour" json:"hour"`
	PlayCount int64 `bson:"play_count" json:"playCount"`
}

type ListeningPatterns struct {
	TopSongs         []TopSong            `json:"topSongs"`
	ByMood           []MoodGenrePlay      `json:"byMood"`
	Daily            []DailyListening     `json:"daily"`
	GenrePreferences []GenrePreference    `json:"genrePreferences"`
	HourHistogram    []HourHistogramEntry `json:"hourHistogram"`
}

type PlaylistPlay struct {
	Playlist  Playlist `bson:"playlist" json:"playlist"`
	PlayCount int64    `bson:"play_count" json:"playCount"`
}

type PlaylistCreationStats struct {
	Total          int64   `bson:"total" json:"total"`
	AutoGenerated  int64   `bson:"auto_generated" json:"autoGenerated"`
	Manual         int64   `bson:"manual" json:"manual"`
	AvgSongCount   float64 `bson:"avg_song_count" json:"avgSongCount"`
	TotalSongCount int64   `bson:"total_song_count" json:"totalSongCount"`
}

type PlaylistUsage struct {
	MostPlayed    []PlaylistPlay        `json:"mostPlayed"`
	CreationStats PlaylistCreationStats `json:"creationStats"`
	TopPlaylists  []Playlist            `json:"topPlaylists"`
}

type MoodImprovementSummary struct {
	CompletedSessions int64   `bson:"completed_sessions" json:"completedSessions"`
	AvgImprovement    float64 `bson:"avg_improvement" json:"avgImprovement"`
	PositiveCount     int64   `bson:"positive_count" json:"positiveCount"`
	MinImprovement    int     `bson:"min_improvement" json:"minImprovement"`
	MaxImprovement    int     `bson:"max_improvement" json:"maxImprovement"`
}

type GameTypePerformance struct {
	Type           GameType `bson:"game_type" json:"type"`
	Sessions       int64    `bson:"sessions" json:"sessions"`
	AvgScore       float64  `bson:"avg_score" json:"avgScore"`
	AvgDuration    float64  `bson:"avg_duration" json:"avgDuration"`
	CompletionRate float64  `bson:"completion_rate" json:"completionRate"`
}

type AchievementFrequency struct {
	Achievement Achievement `bson:"achievement" json:"achievement"`
	Count       int64       `bson:"count" json:"count"`
}

type GamePerformance struct {
	Improvement    MoodImprovementSummary `json:"improvement"`
	PerType        []GameTypePerformance  `json:"perType"`
	RecentSessions []GameSession          `json:"recentSessions"`
	Achievements   []AchievementFrequency `json:"achievements"`
}

type MoodGenreCorrelation struct {
	Mood          Mood    `bson:"mood" json:"mood"`
	Genre         Genre   `bson:"genre" json:"genre"`
	PlayCount     int64   `bson:"play_count" json:"playCount"`
	AvgCompletion float64 `bson:"avg_completion" json:"avgCompletion"`
}

// MoodGameCorrelation relates the pre-session mood to outcome: success is a
// positive mood delta.
type MoodGameCorrelation struct {
	Mood        Mood     `bson:"mood" json:"mood"`
	GameType    GameType `bson:"game_type" json:"gameType"`
	Sessions    int64    `bson:"sessions" json:"sessions"`
	SuccessRate float64  `bson:"success_rate" json:"successRate"`
}

type HeatmapCell struct {
	Hour         int     `bson:"hour" json:"hour"`
	Weekday      int     `bson:"weekday" json:"weekday"`
	AvgIntensity float64 `bson:"avg_intensity" json:"avgIntensity"`
	Count        int64   `bson:"count" json:"count"`
}

type Correlations struct {
	MoodGenre []MoodGenreCorrelation `json:"moodGenre"`
	MoodGame  []MoodGameCorrelation  `json:"moodGame"`
	Heatmap   []HeatmapCell          `json:"heatmap"`
}

// AnalyticsRepository methods are read-only aggregations scoped to one user
// and a trailing window starting at since.
type AnalyticsRepository interface {
	MoodOverview(ctx context.Context, userID primitive.ObjectID, since time.Time) (*MoodOverview, error)
	ListeningOverview(ctx context.Context, userID primitive.ObjectID, since time.Time) (*ListeningOverview, error)
	PlaylistOverview(ctx context.Context, userID primitive.ObjectID, since time.Time) (*PlaylistOverview, error)
	GameOverview(ctx context.Context, userID primitive.ObjectID, since time.Time) (*GameOverview, error)
	RecentActivity(ctx context.Context, userID primitive.ObjectID, limit int) (*RecentActivity, error)

	MoodTrendBuckets(ctx context.Context, userID primitive.ObjectID, since time.Time, granularity TrendGranularity) ([]TrendBucket, error)
	MoodCounts(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]MoodCount, error)
	TriggerFrequency(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]TriggerCount, error)

	TopSongs(ctx context.Context, userID primitive.ObjectID, since time.Time, limit int) ([]TopSong, error)
	ListeningByMood(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]MoodGenrePlay, error)
	DailyListening(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]DailyListening, error)
	GenrePreferences(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]GenrePreference, error)
	HourHistogram(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]HourHistogramEntry, error)

	MostPlayedPlaylists(ctx context.Context, userID primitive.ObjectID, since time.Time, limit int) ([]PlaylistPlay, error)
	PlaylistCreationStats(ctx context.Context, userID primitive.ObjectID, since time.Time) (*PlaylistCreationStats, error)
	TopPlaylists(ctx context.Context, userID primitive.ObjectID, limit int) ([]Playlist, error)

	MoodImprovementSummary(ctx context.Context, userID primitive.ObjectID, since time.Time) (*MoodImprovementSummary, error)
	GameTypePerformance(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]GameTypePerformance, error)
	AchievementFrequency(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]AchievementFrequency, error)
	RecentSessions(ctx context.Context, userID primitive.ObjectID, limit int) ([]GameSession, error)

	MoodGenreCorrelation(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]MoodGenreCorrelation, error)
	MoodGameCorrelation(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]MoodGameCorrelation, error)
	MoodHeatmap(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]HeatmapCell, error)
}

type AnalyticsUsecase interface {
	Dashboard(ctx context.Context, userID string, days int) (*Dashboard, error)
	MoodTrends(ctx context.Context, userID string, days int, granularity TrendGranularity) (*MoodTrends, error)
	MoodFrequency(ctx context.Context, userID string, days int) (*MoodFrequency, error)
	MoodStats(ctx context.Context, userID string, days int) (*MoodOverview, error)
	MoodInsights(ctx context.Context, userID string, days int) (*MoodInsights, error)
	ListeningPatterns(ctx context.Context, userID string, days int) (*ListeningPatterns, error)
	PlaylistUsage(ctx context.Context, userID string, days int) (*PlaylistUsage, error)
	GamePerformance(ctx context.Context, userID string, days int) (*GamePerformance, error)
	Correlations(ctx context.Context, userID string, days int) (*Correlations, error)
}
