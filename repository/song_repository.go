package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	driver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/moodtunes/moodtunes-backend/domain"
	"github.com/moodtunes/moodtunes-backend/mongo"
)

type songRepository struct {
	db         mongo.Database
	collection string
}

func NewSongRepository(db mongo.Database, collection string) domain.SongRepository {
	return &songRepository{
		db:         db,
		collection: collection,
	}
}

func (r *songRepository) Create(ctx context.Context, song *domain.Song) error {
	now := time.Now().UTC()
	song.CreatedAt = now
	song.UpdatedAt = now

	coll := r.db.Collection(r.collection)
	id, err := coll.InsertOne(ctx, song)
	if err != nil {
		return fmt.Errorf("insert song: %w", err)
	}
	if oid, ok := id.(primitive.ObjectID); ok {
		song.ID = oid
	}
	return nil
}

func (r *songRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Song, error) {
	coll := r.db.Collection(r.collection)

	var song domain.Song
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&song); err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, domain.NewNotFoundError("song not found")
		}
		return nil, fmt.Errorf("get song: %w", err)
	}
	return &song, nil
}

// visibilityFilter restricts results to public songs or the viewer's own.
func visibilityFilter(viewerID primitive.ObjectID) bson.M {
	if viewerID.IsZero() {
		return bson.M{"is_public": true}
	}
	return bson.M{"$or": bson.A{
		bson.M{"is_public": true},
		bson.M{"uploaded_by": viewerID},
	}}
}

func buildSongFilter(f domain.SongFilter) bson.M {
	filter := visibilityFilter(f.ViewerID)
	if f.Genre != "" {
		filter["genre"] = f.Genre
	}
	if f.Mood != "" {
		filter["mood_tags"] = f.Mood
	}
	if f.Tempo != "" {
		filter["tempo"] = f.Tempo
	}
	if f.Language != "" {
		filter["language"] = f.Language
	}
	if f.Search != "" {
		pattern := primitive.Regex{Pattern: f.Search, Options: "i"}
		filter["$and"] = bson.A{bson.M{"$or": bson.A{
			bson.M{"title": pattern},
			bson.M{"artist": pattern},
			bson.M{"album": pattern},
		}}}
	}
	return filter
}

func (r *songRepository) Fetch(ctx context.Context, f domain.SongFilter) ([]domain.Song, int64, error) {
	coll := r.db.Collection(r.collection)
	filter := buildSongFilter(f)

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count songs: %w", err)
	}

	sortField := "created_at"
	if f.SortBy != "" {
		sortField = f.SortBy
	}
	sortDir := 1
	if f.SortDesc {
		sortDir = -1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortField, Value: sortDir}}).
		SetSkip(int64((f.Page - 1) * f.Limit)).
		SetLimit(int64(f.Limit))

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find songs: %w", err)
	}
	songs := make([]domain.Song, 0)
	if err := cursor.All(ctx, &songs); err != nil {
		return nil, 0, fmt.Errorf("decode songs: %w", err)
	}
	return songs, total, nil
}

func (r *songRepository) Update(ctx context.Context, id primitive.ObjectID, update interface{}) error {
	coll := r.db.Collection(r.collection)

	res, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return fmt.Errorf("update song: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFoundError("song not found")
	}
	return nil
}

func (r *songRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	coll := r.db.Collection(r.collection)

	deleted, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete song: %w", err)
	}
	if deleted == 0 {
		return domain.NewNotFoundError("song not found")
	}
	return nil
}

func (r *songRepository) IncrementPlayCount(ctx context.Context, id primitive.ObjectID) error {
	coll := r.db.Collection(r.collection)

	res, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$inc": bson.M{"play_count": 1},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("increment play count: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFoundError("song not found")
	}
	return nil
}

// toleranceBand widens an exact 1-10 value to ±2, clamped to the scale.
func toleranceBand(value int) bson.M {
	low, high := value-2, value+2
	if low < 1 {
		low = 1
	}
	if high > 10 {
		high = 10
	}
	return bson.M{"$gte": low, "$lte": high}
}

func (r *songRepository) Recommend(ctx context.Context, f domain.RecommendFilter) ([]domain.Song, error) {
	coll := r.db.Collection(r.collection)

	filter := visibilityFilter(f.ViewerID)
	if f.Mood != "" {
		filter["mood_tags"] = f.Mood
	}
	if f.Energy > 0 {
		filter["energy"] = toleranceBand(f.Energy)
	}
	if f.Valence > 0 {
		filter["valence"] = toleranceBand(f.Valence)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "play_count", Value: -1}, {Key: "likes", Value: -1}}).
		SetLimit(int64(f.Limit))

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("recommend songs: %w", err)
	}
	songs := make([]domain.Song, 0)
	if err := cursor.All(ctx, &songs); err != nil {
		return nil, fmt.Errorf("decode songs: %w", err)
	}
	return songs, nil
}

func (r *songRepository) FindForPlaylist(
	ctx context.Context,
	viewerID primitive.ObjectID,
	mood domain.Mood,
	tempo domain.Tempo,
	genre domain.Genre,
	limit int,
) ([]domain.Song, error) {
	coll := r.db.Collection(r.collection)

	filter := visibilityFilter(viewerID)
	if mood != "" {
		filter["mood_tags"] = mood
	}
	if tempo != "" {
		filter["tempo"] = tempo
	}
	if genre != "" {
		filter["genre"] = genre
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "play_count", Value: -1}, {Key: "likes", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("find songs for playlist: %w", err)
	}
	songs := make([]domain.Song, 0)
	if err := cursor.All(ctx, &songs); err != nil {
		return nil, fmt.Errorf("decode songs: %w", err)
	}
	return songs, nil
}
