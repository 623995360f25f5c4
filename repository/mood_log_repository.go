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

type moodLogRepository struct {
	db         mongo.Database
	collection string
}

func NewMoodLogRepository(db mongo.Database, collection string) domain.MoodLogRepository {
	return &moodLogRepository{
		db:         db,
		collection: collection,
	}
}

func (r *moodLogRepository) Create(ctx context.Context, log *domain.MoodLog) error {
	now := time.Now().UTC()
	log.CreatedAt = now
	log.UpdatedAt = now

	coll := r.db.Collection(r.collection)
	id, err := coll.InsertOne(ctx, log)
	if err != nil {
		return fmt.Errorf("insert mood log: %w", err)
	}
	if oid, ok := id.(primitive.ObjectID); ok {
		log.ID = oid
	}
	return nil
}

func (r *moodLogRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.MoodLog, error) {
	coll := r.db.Collection(r.collection)

	var log domain.MoodLog
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&log); err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, domain.NewNotFoundError("mood log not found")
		}
		return nil, fmt.Errorf("get mood log: %w", err)
	}
	return &log, nil
}

// GetLatest orders by created_at descending with _id as tiebreaker, which
// matches insertion order on equal timestamps.
func (r *moodLogRepository) GetLatest(ctx context.Context, userID primitive.ObjectID) (*domain.MoodLog, error) {
	coll := r.db.Collection(r.collection)

	opts := options.FindOne().SetSort(bson.D{
		{Key: "created_at", Value: -1},
		{Key: "_id", Value: -1},
	})

	var log domain.MoodLog
	if err := coll.FindOne(ctx, bson.M{"user_id": userID}, opts).Decode(&log); err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, nil
		}
		return nil, fmt.Errorf("get latest mood log: %w", err)
	}
	return &log, nil
}

func (r *moodLogRepository) Fetch(ctx context.Context, f domain.MoodLogFilter) ([]domain.MoodLog, int64, error) {
	coll := r.db.Collection(r.collection)

	filter := bson.M{"user_id": f.UserID}
	if f.Mood != "" {
		filter["mood"] = f.Mood
	}
	if f.Method != "" {
		filter["detection_method"] = f.Method
	}
	dateRange := bson.M{}
	if !f.From.IsZero() {
		dateRange["$gte"] = f.From
	}
	if !f.To.IsZero() {
		dateRange["$lte"] = f.To
	}
	if len(dateRange) > 0 {
		filter["created_at"] = dateRange
	}

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count mood logs: %w", err)
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
		return nil, 0, fmt.Errorf("find mood logs: %w", err)
	}
	logs := make([]domain.MoodLog, 0)
	if err := cursor.All(ctx, &logs); err != nil {
		return nil, 0, fmt.Errorf("decode mood logs: %w", err)
	}
	return logs, total, nil
}

func (r *moodLogRepository) Update(ctx context.Context, id primitive.ObjectID, update interface{}) error {
	coll := r.db.Collection(r.collection)

	res, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return fmt.Errorf("update mood log: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFoundError("mood log not found")
	}
	return nil
}

func (r *moodLogRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	coll := r.db.Collection(r.collection)

	deleted, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete mood log: %w", err)
	}
	if deleted == 0 {
		return domain.NewNotFoundError("mood log not found")
	}
	return nil
}
