package repository

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/moodtunes/moodtunes-backend/domain"
	"github.com/moodtunes/moodtunes-backend/mongo"
)

type playbackLogRepository struct {
	db         mongo.Database
	collection string
}

func NewPlaybackLogRepository(db mongo.Database, collection string) domain.PlaybackLogRepository {
	return &playbackLogRepository{
		db:         db,
		collection: collection,
	}
}

func (r *playbackLogRepository) Create(ctx context.Context, log *domain.PlaybackLog) error {
	log.CreatedAt = time.Now().UTC()

	coll := r.db.Collection(r.collection)
	id, err := coll.InsertOne(ctx, log)
	if err != nil {
		return fmt.Errorf("insert playback log: %w", err)
	}
	if oid, ok := id.(primitive.ObjectID); ok {
		log.ID = oid
	}
	return nil
}
