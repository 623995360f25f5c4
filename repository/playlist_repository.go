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

type playlistRepository struct {
	db         mongo.Database
	collection string
}

func NewPlaylistRepository(db mongo.Database, collection string) domain.PlaylistRepository {
	return &playlistRepository{
		db:         db,
		collection: collection,
	}
}

func (r *playlistRepository) Create(ctx context.Context, playlist *domain.Playlist) error {
	now := time.Now().UTC()
	playlist.CreatedAt = now
	playlist.UpdatedAt = now
	if playlist.SongIDs == nil {
		playlist.SongIDs = []primitive.ObjectID{}
	}
	if playlist.FollowerIDs == nil {
		playlist.FollowerIDs = []primitive.ObjectID{}
	}

	coll := r.db.Collection(r.collection)
	id, err := coll.InsertOne(ctx, playlist)
	if err != nil {
		return fmt.Errorf("insert playlist: %w", err)
	}
	if oid, ok := id.(primitive.ObjectID); ok {
		playlist.ID = oid
	}
	return nil
}

func (r *playlistRepository) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.Playlist, error) {
	coll := r.db.Collection(r.collection)

	var playlist domain.Playlist
	if err := coll.FindOne(ctx, bson.M{"_id": id}).Decode(&playlist); err != nil {
		if errors.Is(err, driver.ErrNoDocuments) {
			return nil, domain.NewNotFoundError("playlist not found")
		}
		return nil, fmt.Errorf("get playlist: %w", err)
	}
	return &playlist, nil
}

func (r *playlistRepository) Fetch(ctx context.Context, f domain.PlaylistFilter) ([]domain.Playlist, int64, error) {
	coll := r.db.Collection(r.collection)

	filter := bson.M{"$or": bson.A{
		bson.M{"is_public": true},
		bson.M{"owner_id": f.ViewerID},
	}}
	if f.Mood != "" {
		filter["mood"] = f.Mood
	}
	if !f.OwnedBy.IsZero() {
		filter["owner_id"] = f.OwnedBy
	}

	total, err := coll.CountDocuments(ctx, filter)
	if err != nil {
		return nil, 0, fmt.Errorf("count playlists: %w", err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetSkip(int64((f.Page - 1) * f.Limit)).
		SetLimit(int64(f.Limit))

	cursor, err := coll.Find(ctx, filter, opts)
	if err != nil {
		return nil, 0, fmt.Errorf("find playlists: %w", err)
	}
	playlists := make([]domain.Playlist, 0)
	if err := cursor.All(ctx, &playlists); err != nil {
		return nil, 0, fmt.Errorf("decode playlists: %w", err)
	}
	return playlists, total, nil
}

func (r *playlistRepository) Update(ctx context.Context, id primitive.ObjectID, update interface{}) error {
	coll := r.db.Collection(r.collection)

	res, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": update})
	if err != nil {
		return fmt.Errorf("update playlist: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFoundError("playlist not found")
	}
	return nil
}

func (r *playlistRepository) Delete(ctx context.Context, id primitive.ObjectID) error {
	coll := r.db.Collection(r.collection)

	deleted, err := coll.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return fmt.Errorf("delete playlist: %w", err)
	}
	if deleted == 0 {
		return domain.NewNotFoundError("playlist not found")
	}
	return nil
}

// AddSong relies on $addToSet, so re-adding a present song is a no-op.
func (r *playlistRepository) AddSong(ctx context.Context, id, songID primitive.ObjectID) error {
	coll := r.db.Collection(r.collection)

	res, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$addToSet": bson.M{"song_ids": songID},
		"$set":      bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("add song to playlist: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFoundError("playlist not found")
	}
	return nil
}

// RemoveSong relies on $pull, so removing an absent song is a no-op.
func (r *playlistRepository) RemoveSong(ctx context.Context, id, songID primitive.ObjectID) error {
	coll := r.db.Collection(r.collection)

	res, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$pull": bson.M{"song_ids": songID},
		"$set":  bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("remove song from playlist: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFoundError("playlist not found")
	}
	return nil
}

func (r *playlistRepository) IncrementPlayCount(ctx context.Context, id primitive.ObjectID) error {
	coll := r.db.Collection(r.collection)

	res, err := coll.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$inc": bson.M{"play_count": 1},
		"$set": bson.M{"updated_at": time.Now().UTC()},
	})
	if err != nil {
		return fmt.Errorf("increment playlist play count: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFoundError("playlist not found")
	}
	return nil
}

func (r *playlistRepository) SetFollowing(ctx context.Context, id, userID primitive.ObjectID, following bool) error {
	coll := r.db.Collection(r.collection)

	update := bson.M{"$set": bson.M{"updated_at": time.Now().UTC()}}
	if following {
		update["$addToSet"] = bson.M{"follower_ids": userID}
	} else {
		update["$pull"] = bson.M{"follower_ids": userID}
	}

	res, err := coll.UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		return fmt.Errorf("set playlist following: %w", err)
	}
	if res.MatchedCount == 0 {
		return domain.NewNotFoundError("playlist not found")
	}
	return nil
}
