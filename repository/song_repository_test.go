package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/moodtunes/moodtunes-backend/domain"
)

func TestToleranceBandClampsToScale(t *testing.T) {
	cases := []struct {
		value, low, high int
	}{
		{1, 1, 3},
		{5, 3, 7},
		{8, 6, 10},
		{10, 8, 10},
	}
	for _, tc := range cases {
		band := toleranceBand(tc.value)
		assert.Equal(t, bson.M{"$gte": tc.low, "$lte": tc.high}, band, "value %d", tc.value)
	}
}

func TestBuildSongFilterKeepsVisibilityWithSearch(t *testing.T) {
	viewer := primitive.NewObjectID()

	filter := buildSongFilter(domain.SongFilter{ViewerID: viewer, Search: "night"})

	// The visibility clause and the search clause live under separate
	// top-level keys, so Mongo ANDs them.
	visibility, ok := filter["$or"].(bson.A)
	require.True(t, ok, "visibility $or missing")
	assert.Contains(t, visibility, bson.M{"is_public": true})
	assert.Contains(t, visibility, bson.M{"uploaded_by": viewer})
	assert.Contains(t, filter, "$and")
}

func TestBuildSongFilterAnonymousViewerSeesOnlyPublic(t *testing.T) {
	filter := buildSongFilter(domain.SongFilter{Search: "night"})

	assert.Equal(t, true, filter["is_public"])
	assert.NotContains(t, filter, "$or")
	assert.Contains(t, filter, "$and")
}
