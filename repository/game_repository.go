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

type gameRepository struct {
	db         mongo.Database
	collection string
}

func NewGameRepository(db mongo.Database, collection string) domain.GameRepository {
	return &gameRepository{
		db:         db,
		collection: collection,
	}
}

func (r *gameRepository) Create(ctx context.Context, game *domain.Game) error {
	game.CreatedAt = time.Now().UTC()

	coll := r.db.Collection(r.collection)
	id, err := coll.InsertOne(ctx, game)
	if err != nil {
		return fmt.Errorf("insert game: %w", err)
	}
	if oid, ok := id.(primitive.ObjectID); ok {
		game.ID = oid
	}
	return nil
}

func (r *gameRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Game, error) {
	coll := r.db.Collection(r.collection)

	var game domain.Game
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&game); err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, domain.NewNotFoundError("game not found")
		}
		return nil, fmt.Errorf("get game: %w", err)
	}
	return &game, nil
}

func (r *gameRepository) Fetch(ctx context.Context, f domain.GameFilter) ([]domain.Game, int64, error) {
	coll := r.db.Collection(r.collection)

	filter := bson.M{"is_active": true}
	if f.Type != "" {
		filter["type"] = f.Type
	}
	if f.Difficulty != "" {
		filter["difficulty"] = f.Difficulty
	}
	if f.Mood != "" {
		filter["target_moods"] = f.Mood
	}

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count games: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "rating_average", Value: -1}, {Key: "play_count", Value: -1}}).
		SetSkip(int64((f.Page - 1) * f.Limit)).
		SetLimit(int64(f.Limit))

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find games: %w", err)
	}
	games := make([]domain.Game, 0)
	if err := cursor.All(ctx, &games); err != nil {
		return nil, 0, fmt.Errorf("decode games: %w", err)
	}
	return games, total, nil
}

func (r *gameRepository) RecommendByMood(ctx context.Context, mood domain.Mood, limit int) ([]domain.Game, error) {
	coll := r.db.Collection(r.collection)

	opts := options.Find().
		SetSort(bson.D{{Key: "rating_average", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := coll.Find(ctx, bson.M{"is_active": true, "target_moods": mood}, opts)
	if err != nil {
		return nil, fmt.Errorf("recommend games: %w", err)
	}
	games := make([]domain.Game, 0)
	if err := cursor.All(ctx, &games); err != nil {
		return nil, fmt.Errorf("decode games: %w", err)
	}
	return games, nil
}

func (r *gameRepository) IncrementPlayCount(ctx context.Context, id primitive.ObjectID) error {
	coll := r.db.Collection(r.collection)

	res, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$inc": bson.M{"play_count": 1}})
	if err != nil {
		return fmt.Errorf("increment game play count: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFoundError("game not found")
	}
	return nil
}

func (r *gameRepository) UpdateRating(ctx context.Context, id primitive.ObjectID, average float64, count int64) error {
	coll := r.db.Collection(r.collection)

	res, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M{
		"rating_average": average,
		"rating_count":   count,
	}})
	if err != nil {
		return fmt.Errorf("update game rating: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFoundError("game not found")
	}
	return nil
}
