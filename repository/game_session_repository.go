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

type gameSessionRepository struct {
	db         mongo.Database
	collection string
}

func NewGameSessionRepository(db mongo.Database, collection string) domain.GameSessionRepository {
	return &gameSessionRepository{
		db:         db,
		collection: collection,
	}
}

func (r *gameSessionRepository) Create(ctx context.Context, session *domain.GameSession) error {
	session.CreatedAt = time.Now().UTC()

	coll := r.db.Collection(r.collection)
	id, err := coll.InsertOne(ctx, session)
	if err != nil {
		return fmt.Errorf("insert game session: %w", err)
	}
	if oid, ok := id.(primitive.ObjectID); ok {
		session.ID = oid
	}
	return nil
}

func (r *gameSessionRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.GameSession, error) {
	coll := r.db.Collection(r.collection)

	var session domain.GameSession
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&session); err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, domain.NewNotFoundError("game session not found")
		}
		return nil, fmt.Errorf("get game session: %w", err)
	}
	return &session, nil
}

func (r *gameSessionRepository) Fetch(ctx context.Context, userID primitive.ObjectID, page, limit int) ([]domain.GameSession, int64, error) {
	coll := r.db.Collection(r.collection)
	filter := bson.M{"user_id": userID}

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count game sessions: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((page - 1) * limit)).
		SetLimit(int64(limit))

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find game sessions: %w", err)
	}
	sessions := make([]domain.GameSession, 0)
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, 0, fmt.Errorf("decode game sessions: %w", err)
	}
	return sessions, total, nil
}

func (r *gameSessionRepository) Update(ctx context.Context, id primitive.ObjectID, update interface{}) error {
	coll := r.db.Collection(r.collection)

	res, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return fmt.Errorf("update game session: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFoundError("game session not found")
	}
	return nil
}

func (r *gameSessionRepository) CountByUserAndGame(ctx context.Context, userID, gameID primitive.ObjectID) (int64, error) {
	coll := r.db.Collection(r.collection)
	return coll.CountDocuments(ctx, bson.M{"user_id": userID, "game_id": gameID})
}

func (r *gameSessionRepository) HasCompleted(ctx context.Context, userID, gameID primitive.ObjectID) (bool, error) {
	coll := r.db.Collection(r.collection)
	count, err := coll.CountDocuments(ctx, bson.M{
		"user_id":   userID,
		"game_id":   gameID,
		"completed": true,
	})
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *gameSessionRepository) AverageScore(ctx context.Context, userID, gameID primitive.ObjectID) (float64, int64, error) {
	coll := r.db.Collection(r.collection)

	pipeline := []bson.D{
		{{Key: "$match", Value: bson.D{
			{Key: "user_id", Value: userID},
			{Key: "game_id", Value: gameID},
			{Key: "completed", Value: true},
		}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "avg_score", Value: bson.D{{Key: "$avg", Value: "$score"}}},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, fmt.Errorf("average score: %w", err)
	}
	defer func(cursor mongo.Cursor, ctx context.Context) {
		if err := cursor.Close(ctx); err != nil {
			fmt.Printf("error closing cursor: %v\n", err)
		}
	}(cursor, ctx)

	var result struct {
		AvgScore float64 `bson:"avg_score"`
		Count    int64   `bson:"count"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&result); err != nil {
			return 0, 0, fmt.Errorf("decode average score: %w", err)
		}
	}
	return result.AvgScore, result.Count, nil
}

func (r *gameSessionRepository) UserStats(ctx context.Context, userID primitive.ObjectID) (*domain.UserGameStats, error) {
	coll := r.db.Collection(r.collection)

	pipeline := []bson.D{
		{{Key: "$match", Value: bson.D{{Key: "user_id", Value: userID}}}},
		{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: nil},
			{Key: "total_sessions", Value: bson.D{{Key: "$sum", Value: 1}}},
			{Key: "completed_sessions", Value: bson.D{{Key: "$sum", Value: bson.D{
				{Key: "$cond", Value: bson.A{"$completed", 1, 0}},
			}}}},
			{Key: "avg_score", Value: bson.D{{Key: "$avg", Value: bson.D{
				{Key: "$cond", Value: bson.A{"$completed", "$score", nil}},
			}}}},
			{Key: "avg_mood_improvement", Value: bson.D{{Key: "$avg", Value: "$mood_improvement"}}},
			{Key: "total_play_time", Value: bson.D{{Key: "$sum", Value: "$duration"}}},
		}}},
	}

	cursor, err := coll.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, fmt.Errorf("user game stats: %w", err)
	}
	defer func(cursor mongo.Cursor, ctx context.Context) {
		if err := cursor.Close(ctx); err != nil {
			fmt.Printf("error closing cursor: %v\n", err)
		}
	}(cursor, ctx)

	var stats struct {
		TotalSessions      int64   `bson:"total_sessions"`
		CompletedSessions  int64   `bson:"completed_sessions"`
		AvgScore           float64 `bson:"avg_score"`
		AvgMoodImprovement float64 `bson:"avg_mood_improvement"`
		TotalPlayTime      int64   `bson:"total_play_time"`
	}
	if cursor.Next(ctx) {
		if err := cursor.Decode(&stats); err != nil {
			return nil, fmt.Errorf("decode user game stats: %w", err)
		}
	}
	return &domain.UserGameStats{
		TotalSessions:      stats.TotalSessions,
		CompletedSessions:  stats.CompletedSessions,
		AvgScore:           stats.AvgScore,
		AvgMoodImprovement: stats.AvgMoodImprovement,
		TotalPlayTime:      stats.TotalPlayTime,
	}, nil
}
