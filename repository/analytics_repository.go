package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/moodtunes/moodtunes-backend/domain"
	"github.com/moodtunes/moodtunes-backend/mongo"
)

// analyticsRepository holds every read-only aggregation. Each pipeline
// matches on {user_id, created_at >= since} first so the compound index
// bounds the working set before any lookup or group stage.
type analyticsRepository struct {
	db mongo.Database
}

func NewAnalyticsRepository(db mongo.Database) domain.AnalyticsRepository {
	return &analyticsRepository{db: db}
}

func userWindowMatch(userID primitive.ObjectID, since time.Time) bson.D {
	return bson.D{{Key: "$match", Value: bson.D{
		{Key: "user_id", Value: userID},
		{Key: "created_at", Value: bson.D{{Key: "$gte", Value: since}}},
	}}}
}

func (r *analyticsRepository) aggregate(ctx context.Context, collection string, pipeline []bson.D, out interface{}) error {
	coll := r.db.Collection(collection)

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return fmt.Errorf("aggregate %s: %w", collection, err)
	}
	defer func(cursor mongo.Cursor, ctx context.Context) {
		if err := cursor.Close(ctx); err != nil {
			fmt.Printf("error closing cursor: %v\n", err)
		}
	}(cursor, ctx)

	if err := cursor.All(ctx, out); err != nil {
		return fmt.Errorf("decode %s aggregation: %w", collection, err)
	}
	return nil
}

func (r *analyticsRepository) MoodOverview(ctx context.Context, userID primitive.ObjectID, since time.Time) (*domain.MoodOverview, error) {
	pipeline := []bson.D{
		userWindowMatch(userID, since),
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total_mood_logs", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "avg_mood_intensity", Value: bson.D{{Key: "$avg", Value: "$intensity"}}},
			{Key: "unique_moods", Value: bson.D{{Key: "$addToSet", Value: "$mood"}}},
			{Key: "detection_methods", Value: bson.D{{Key: "$addToSet", Value: "$detection_method"}}},
		}}},
	}

	var results []domain.MoodOverview
	if err := r.aggregate(ctx, domain.CollectionMoodLog, pipeline, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return &domain.MoodOverview{
			UniqueMoods:      []domain.Mood{},
			DetectionMethods: []domain.DetectionMethod{},
		}, nil
	}
	return &results[0], nil
}

func (r *analyticsRepository) ListeningOverview(ctx context.Context, userID primitive.ObjectID, since time.Time) (*domain.ListeningOverview, error) {
	pipeline := []bson.D{
		userWindowMatch(userID, since),
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total_plays", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "total_listening_time", Value: bson.D{{Key: "$sum", Value: "$play_duration"}}},
			{Key: "avg_completion", Value: bson.D{{Key: "$avg", Value: "$completion_percentage"}}},
			{Key: "song_ids", Value: bson.D{{Key: "$addToSet", Value: "$song_id"}}},
			{Key: "liked_count", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$cond", Value: bson.A{"$liked", 1, 0}},
			}}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "total_plays", Value: 1},
			{Key: "total_listening_time", Value: 1},
			{Key: "avg_completion", Value: 1},
			{Key: "liked_count", Value: 1},
			{Key: "unique_songs", Value: bson.D{{Key: "$size", Value: "$song_ids"}}},
		}}},
	}

	var results []domain.ListeningOverview
	if err := r.aggregate(ctx, domain.CollectionPlaybackLog, pipeline, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return &domain.ListeningOverview{}, nil
	}
	return &results[0], nil
}

func (r *analyticsRepository) PlaylistOverview(ctx context.Context, userID primitive.ObjectID, since time.Time) (*domain.PlaylistOverview, error) {
	pipeline := []bson.D{
		{{Key: "$match", Value: bson.D{
			{Key: "owner_id", Value: userID},
			{Key: "created_at", Value: bson.D{{Key: "$gte", Value: since}}},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total_playlists", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "auto_generated", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$cond", Value: bson.A{"$is_auto_generated", 1, 0}},
			}}}},
			{Key: "avg_song_count", Value: bson.D{{Key: "$avg", Value: bson.D{{Key: "$size", Value: "$song_ids"}}}}},
			{Key: "total_song_count", Value: bson.D{{Key: "$sum", Value: bson.D{{Key: "$size", Value: "$song_ids"}}}}},
		}}},
	}

	var results []domain.PlaylistOverview
	if err := r.aggregate(ctx, domain.CollectionPlaylist, pipeline, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return &domain.PlaylistOverview{}, nil
	}
	return &results[0], nil
}

func (r *analyticsRepository) GameOverview(ctx context.Context, userID primitive.ObjectID, since time.Time) (*domain.GameOverview, error) {
	pipeline := []bson.D{
		userWindowMatch(userID, since),
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total_sessions", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "completed_sessions", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$cond", Value: bson.A{"$completed", 1, 0}},
			}}}},
			// $avg ignores nulls, so incomplete sessions drop out here.
			{Key: "avg_score", Value: bson.D{{Key: "$avg", Value: bson.D{
				{Key: "$cond", Value: bson.A{"$completed", "$score", nil}},
			}}}},
			{Key: "avg_mood_improvement", Value: bson.D{{Key: "$avg", Value: "$mood_improvement"}}},
		}}},
	}

	var results []domain.GameOverview
	if err := r.aggregate(ctx, domain.CollectionGameSession, pipeline, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return &domain.GameOverview{}, nil
	}
	return &results[0], nil
}

func (r *analyticsRepository) RecentActivity(ctx context.Context, userID primitive.ObjectID, limit int) (*domain.RecentActivity, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))
	filter := bson.M{"user_id": userID}

	activity := &domain.RecentActivity{
		MoodLogs:     []domain.MoodLog{},
		Playbacks:    []domain.PlaybackLog{},
		GameSessions: []domain.GameSession{},
	}

	cursor, err := r.db.Collection(domain.CollectionMoodLog).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("recent mood logs: %w", err)
	}
	if err := cursor.All(ctx, &activity.MoodLogs); err != nil {
		return nil, fmt.Errorf("decode recent mood logs: %w", err)
	}

	cursor, err = r.db.Collection(domain.CollectionPlaybackLog).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("recent playbacks: %w", err)
	}
	if err := cursor.All(ctx, &activity.Playbacks); err != nil {
		return nil, fmt.Errorf("decode recent playbacks: %w", err)
	}

	cursor, err = r.db.Collection(domain.CollectionGameSession).Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("recent game sessions: %w", err)
	}
	if err := cursor.All(ctx, &activity.GameSessions); err != nil {
		return nil, fmt.Errorf("decode recent game sessions: %w", err)
	}

	return activity, nil
}

// bucketFormat maps a granularity to its $dateToString format; the weekly
// bucket uses the ISO year/week pair.
func bucketFormat(granularity domain.TrendGranularity) string {
	switch granularity {
	case domain.TrendWeekly:
		return "%G-W%V"
	case domain.TrendMonthly:
		return "%Y-%m"
	default:
		return "%Y-%m-%d"
	}
}

func (r *analyticsRepository) MoodTrendBuckets(ctx context.Context, userID primitive.ObjectID, since time.Time, granularity domain.TrendGranularity) ([]domain.TrendBucket, error) {
	pipeline := []bson.D{
		userWindowMatch(userID, since),
		{{Key: "$addFields", Value: bson.D{
			{Key: "bucket", Value: bson.D{{Key: "$dateToString", Value: bson.D{
				{Key: "format", Value: bucketFormat(granularity)},
				{Key: "date", Value: "$created_at"},
			}}}},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "bucket", Value: "$bucket"},
				{Key: "mood", Value: "$mood"},
			}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "min_intensity", Value: bson.D{{Key: "$min", Value: "$intensity"}}},
			{Key: "avg_intensity", Value: bson.D{{Key: "$avg", Value: "$intensity"}}},
			{Key: "max_intensity", Value: bson.D{{Key: "$max", Value: "$intensity"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "bucket", Value: "$_id.bucket"},
			{Key: "mood", Value: "$_id.mood"},
			{Key: "count", Value: 1},
			{Key: "min_intensity", Value: 1},
			{Key: "avg_intensity", Value: 1},
			{Key: "max_intensity", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "bucket", Value: 1}, {Key: "mood", Value: 1}}}},
	}

	results := make([]domain.TrendBucket, 0)
	if err := r.aggregate(ctx, domain.CollectionMoodLog, pipeline, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *analyticsRepository) MoodCounts(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]domain.MoodCount, error) {
	pipeline := []bson.D{
		userWindowMatch(userID, since),
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$mood"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "mood", Value: "$_id"},
			{Key: "count", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "mood", Value: 1}}}},
	}

	results := make([]domain.MoodCount, 0)
	if err := r.aggregate(ctx, domain.CollectionMoodLog, pipeline, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *analyticsRepository) TriggerFrequency(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]domain.TriggerCount, error) {
	pipeline := []bson.D{
		userWindowMatch(userID, since),
		{{Key: "$unwind", Value: "$triggers"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$triggers"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "trigger", Value: "$_id"},
			{Key: "count", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}, {Key: "trigger", Value: 1}}}},
	}

	results := make([]domain.TriggerCount, 0)
	if err := r.aggregate(ctx, domain.CollectionMoodLog, pipeline, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *analyticsRepository) TopSongs(ctx context.Context, userID primitive.ObjectID, since time.Time, limit int) ([]domain.TopSong, error) {
	pipeline := []bson.D{
		userWindowMatch(userID, since),
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$song_id"},
			{Key: "play_count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "total_duration", Value: bson.D{{Key: "$sum", Value: "$play_duration"}}},
			{Key: "avg_completion", Value: bson.D{{Key: "$avg", Value: "$completion_percentage"}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "play_count", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: domain.CollectionSong},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "song"},
		}}},
		{{Key: "$unwind", Value: "$song"}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "song", Value: 1},
			{Key: "play_count", Value: 1},
			{Key: "total_duration", Value: 1},
			{Key: "avg_completion", Value: 1},
		}}},
	}

	results := make([]domain.TopSong, 0)
	if err := r.aggregate(ctx, domain.CollectionPlaybackLog, pipeline, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *analyticsRepository) ListeningByMood(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]domain.MoodGenrePlay, error) {
	pipeline := []bson.D{
		userWindowMatch(userID, since),
		{{Key: "$match", Value: bson.D{
			{Key: "mood", Value: bson.D{{Key: "$nin", Value: bson.A{nil, ""}}}},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: domain.CollectionSong},
			{Key: "localField", Value: "song_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "song"},
		}}},
		{{Key: "$unwind", Value: "$song"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "mood", Value: "$mood"},
				{Key: "genre", Value: "$song.genre"},
			}},
			{Key: "play_count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "mood", Value: "$_id.mood"},
			{Key: "genre", Value: "$_id.genre"},
			{Key: "play_count", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "play_count", Value: -1}}}},
	}

	results := make([]domain.MoodGenrePlay, 0)
	if err := r.aggregate(ctx, domain.CollectionPlaybackLog, pipeline, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *analyticsRepository) DailyListening(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]domain.DailyListening, error) {
	pipeline := []bson.D{
		userWindowMatch(userID, since),
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$dateToString", Value: bson.D{
				{Key: "format", Value: "%Y-%m-%d"},
				{Key: "date", Value: "$created_at"},
			}}}},
			{Key: "play_count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "total_duration", Value: bson.D{{Key: "$sum", Value: "$play_duration"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "date", Value: "$_id"},
			{Key: "play_count", Value: 1},
			{Key: "total_duration", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "date", Value: 1}}}},
	}

	results := make([]domain.DailyListening, 0)
	if err := r.aggregate(ctx, domain.CollectionPlaybackLog, pipeline, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *analyticsRepository) GenrePreferences(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]domain.GenrePreference, error) {
	pipeline := []bson.D{
		userWindowMatch(userID, since),
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: domain.CollectionSong},
			{Key: "localField", Value: "song_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "song"},
		}}},
		{{Key: "$unwind", Value: "$song"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$song.genre"},
			{Key: "play_count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "total_duration", Value: bson.D{{Key: "$sum", Value: "$play_duration"}}},
			{Key: "avg_completion", Value: bson.D{{Key: "$avg", Value: "$completion_percentage"}}},
			{Key: "liked_count", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$cond", Value: bson.A{"$liked", 1, 0}},
			}}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "genre", Value: "$_id"},
			{Key: "play_count", Value: 1},
			{Key: "total_duration", Value: 1},
			{Key: "avg_completion", Value: 1},
			{Key: "like_rate", Value: bson.D{{Key: "$cond", Value: bson.A{
				bson.D{{Key: "$gt", Value: bson.A{"$play_count", 0}}},
				bson.D{{Key: "$divide", Value: bson.A{"$liked_count", "$play_count"}}},
				0,
			}}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "play_count", Value: -1}}}},
	}

	results := make([]domain.GenrePreference, 0)
	if err := r.aggregate(ctx, domain.CollectionPlaybackLog, pipeline, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *analyticsRepository) HourHistogram(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]domain.HourHistogramEntry, error) {
	pipeline := []bson.D{
		userWindowMatch(userID, since),
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{{Key: "$hour", Value: "$created_at"}}},
			{Key: "play_count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "hour", Value: "$_id"},
			{Key: "play_count", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "hour", Value: 1}}}},
	}

	results := make([]domain.HourHistogramEntry, 0)
	if err := r.aggregate(ctx, domain.CollectionPlaybackLog, pipeline, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *analyticsRepository) MostPlayedPlaylists(ctx context.Context, userID primitive.ObjectID, since time.Time, limit int) ([]domain.PlaylistPlay, error) {
	pipeline := []bson.D{
		userWindowMatch(userID, since),
		{{Key: "$match", Value: bson.D{
			{Key: "playlist_id", Value: bson.D{{Key: "$ne", Value: nil}}},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$playlist_id"},
			{Key: "play_count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "play_count", Value: -1}}}},
		{{Key: "$limit", Value: limit}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: domain.CollectionPlaylist},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "playlist"},
		}}},
		{{Key: "$unwind", Value: "$playlist"}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "playlist", Value: 1},
			{Key: "play_count", Value: 1},
		}}},
	}

	results := make([]domain.PlaylistPlay, 0)
	if err := r.aggregate(ctx, domain.CollectionPlaybackLog, pipeline, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *analyticsRepository) PlaylistCreationStats(ctx context.Context, userID primitive.ObjectID, since time.Time) (*domain.PlaylistCreationStats, error) {
	pipeline := []bson.D{
		{{Key: "$match", Value: bson.D{
			{Key: "owner_id", Value: userID},
			{Key: "created_at", Value: bson.D{{Key: "$gte", Value: since}}},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "auto_generated", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$cond", Value: bson.A{"$is_auto_generated", 1, 0}},
			}}}},
			{Key: "avg_song_count", Value: bson.D{{Key: "$avg", Value: bson.D{{Key: "$size", Value: "$song_ids"}}}}},
			{Key: "total_song_count", Value: bson.D{{Key: "$sum", Value: bson.D{{Key: "$size", Value: "$song_ids"}}}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "total", Value: 1},
			{Key: "auto_generated", Value: 1},
			{Key: "manual", Value: bson.D{{Key: "$subtract", Value: bson.A{"$total", "$auto_generated"}}}},
			{Key: "avg_song_count", Value: 1},
			{Key: "total_song_count", Value: 1},
		}}},
	}

	var results []domain.PlaylistCreationStats
	if err := r.aggregate(ctx, domain.CollectionPlaylist, pipeline, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return &domain.PlaylistCreationStats{}, nil
	}
	return &results[0], nil
}

func (r *analyticsRepository) TopPlaylists(ctx context.Context, userID primitive.ObjectID, limit int) ([]domain.Playlist, error) {
	coll := r.db.Collection(domain.CollectionPlaylist)

	opts := options.Find().
		SetSort(bson.D{{Key: "play_count", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := coll.Find(ctx, bson.M{"owner_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("top playlists: %w", err)
	}
	playlists := make([]domain.Playlist, 0)
	if err := cursor.All(ctx, &playlists); err != nil {
		return nil, fmt.Errorf("decode top playlists: %w", err)
	}
	return playlists, nil
}

func (r *analyticsRepository) MoodImprovementSummary(ctx context.Context, userID primitive.ObjectID, since time.Time) (*domain.MoodImprovementSummary, error) {
	pipeline := []bson.D{
		userWindowMatch(userID, since),
		{{Key: "$match", Value: bson.D{{Key: "completed", Value: true}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "completed_sessions", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "avg_improvement", Value: bson.D{{Key: "$avg", Value: "$mood_improvement"}}},
			{Key: "positive_count", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$cond", Value: bson.A{
					bson.D{{Key: "$gt", Value: bson.A{"$mood_improvement", 0}}}, 1, 0,
				}},
			}}}},
			{Key: "min_improvement", Value: bson.D{{Key: "$min", Value: "$mood_improvement"}}},
			{Key: "max_improvement", Value: bson.D{{Key: "$max", Value: "$mood_improvement"}}},
		}}},
	}

	var results []domain.MoodImprovementSummary
	if err := r.aggregate(ctx, domain.CollectionGameSession, pipeline, &results); err != nil {
		return nil, err
	}
	if len(results) == 0 {
		return &domain.MoodImprovementSummary{}, nil
	}
	return &results[0], nil
}

func (r *analyticsRepository) GameTypePerformance(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]domain.GameTypePerformance, error) {
	pipeline := []bson.D{
		userWindowMatch(userID, since),
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$game_type"},
			{Key: "sessions", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "avg_score", Value: bson.D{{Key: "$avg", Value: bson.D{
				{Key: "$cond", Value: bson.A{"$completed", "$score", nil}},
			}}}},
			{Key: "avg_duration", Value: bson.D{{Key: "$avg", Value: bson.D{
				{Key: "$cond", Value: bson.A{"$completed", "$duration", nil}},
			}}}},
			{Key: "completed", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$cond", Value: bson.A{"$completed", 1, 0}},
			}}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "game_type", Value: "$_id"},
			{Key: "sessions", Value: 1},
			{Key: "avg_score", Value: 1},
			{Key: "avg_duration", Value: 1},
			{Key: "completion_rate", Value: bson.D{{Key: "$divide", Value: bson.A{"$completed", "$sessions"}}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "sessions", Value: -1}}}},
	}

	results := make([]domain.GameTypePerformance, 0)
	if err := r.aggregate(ctx, domain.CollectionGameSession, pipeline, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *analyticsRepository) AchievementFrequency(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]domain.AchievementFrequency, error) {
	pipeline := []bson.D{
		userWindowMatch(userID, since),
		{{Key: "$unwind", Value: "$achievements"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$achievements"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "achievement", Value: "$_id"},
			{Key: "count", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "count", Value: -1}}}},
	}

	results := make([]domain.AchievementFrequency, 0)
	if err := r.aggregate(ctx, domain.CollectionGameSession, pipeline, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *analyticsRepository) RecentSessions(ctx context.Context, userID primitive.ObjectID, limit int) ([]domain.GameSession, error) {
	coll := r.db.Collection(domain.CollectionGameSession)

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := coll.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("recent sessions: %w", err)
	}
	sessions := make([]domain.GameSession, 0)
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("decode recent sessions: %w", err)
	}
	return sessions, nil
}

func (r *analyticsRepository) MoodGenreCorrelation(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]domain.MoodGenreCorrelation, error) {
	pipeline := []bson.D{
		userWindowMatch(userID, since),
		{{Key: "$match", Value: bson.D{
			{Key: "mood", Value: bson.D{{Key: "$nin", Value: bson.A{nil, ""}}}},
		}}},
		{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: domain.CollectionSong},
			{Key: "localField", Value: "song_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "song"},
		}}},
		{{Key: "$unwind", Value: "$song"}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "mood", Value: "$mood"},
				{Key: "genre", Value: "$song.genre"},
			}},
			{Key: "play_count", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "avg_completion", Value: bson.D{{Key: "$avg", Value: "$completion_percentage"}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "mood", Value: "$_id.mood"},
			{Key: "genre", Value: "$_id.genre"},
			{Key: "play_count", Value: 1},
			{Key: "avg_completion", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "play_count", Value: -1}}}},
	}

	results := make([]domain.MoodGenreCorrelation, 0)
	if err := r.aggregate(ctx, domain.CollectionPlaybackLog, pipeline, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *analyticsRepository) MoodGameCorrelation(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]domain.MoodGameCorrelation, error) {
	pipeline := []bson.D{
		userWindowMatch(userID, since),
		{{Key: "$match", Value: bson.D{{Key: "completed", Value: true}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "mood", Value: "$mood_before.mood"},
				{Key: "game_type", Value: "$game_type"},
			}},
			{Key: "sessions", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "successes", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$cond", Value: bson.A{
					bson.D{{Key: "$gt", Value: bson.A{"$mood_improvement", 0}}}, 1, 0,
				}},
			}}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "mood", Value: "$_id.mood"},
			{Key: "game_type", Value: "$_id.game_type"},
			{Key: "sessions", Value: 1},
			{Key: "success_rate", Value: bson.D{{Key: "$divide", Value: bson.A{"$successes", "$sessions"}}}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "sessions", Value: -1}}}},
	}

	results := make([]domain.MoodGameCorrelation, 0)
	if err := r.aggregate(ctx, domain.CollectionGameSession, pipeline, &results); err != nil {
		return nil, err
	}
	return results, nil
}

func (r *analyticsRepository) MoodHeatmap(ctx context.Context, userID primitive.ObjectID, since time.Time) ([]domain.HeatmapCell, error) {
	pipeline := []bson.D{
		userWindowMatch(userID, since),
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: bson.D{
				{Key: "hour", Value: bson.D{{Key: "$hour", Value: "$created_at"}}},
				{Key: "weekday", Value: bson.D{{Key: "$dayOfWeek", Value: "$created_at"}}},
			}},
			{Key: "avg_intensity", Value: bson.D{{Key: "$avg", Value: "$intensity"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "hour", Value: "$_id.hour"},
			{Key: "weekday", Value: "$_id.weekday"},
			{Key: "avg_intensity", Value: 1},
			{Key: "count", Value: 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "weekday", Value: 1}, {Key: "hour", Value: 1}}}},
	}

	results := make([]domain.HeatmapCell, 0)
	if err := r.aggregate(ctx, domain.CollectionMoodLog, pipeline, &results); err != nil {
		return nil, err
	}
	return results, nil
}
