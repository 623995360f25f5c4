package tokenutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/moodtunes/moodtunes-backend/domain"
)

func TestAccessTokenRoundTrip(t *testing.T) {
	user := &domain.User{ID: primitive.NewObjectID(), Name: "Ada"}

	token, err := CreateAccessToken(user, "secret", 2)
	require.NoError(t, err)

	ok, err := IsAuthorized(token, "secret")
	require.NoError(t, err)
	assert.True(t, ok)

	id, err := ExtractIDFromToken(token, "secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), id)
}

func TestWrongSecretRejected(t *testing.T) {
	user := &domain.User{ID: primitive.NewObjectID()}

	token, err := CreateAccessToken(user, "secret", 2)
	require.NoError(t, err)

	ok, err := IsAuthorized(token, "other-secret")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestExpiredTokenRejected(t *testing.T) {
	user := &domain.User{ID: primitive.NewObjectID()}

	token, err := CreateAccessToken(user, "secret", -1)
	require.NoError(t, err)

	ok, err := IsAuthorized(token, "secret")
	assert.Error(t, err)
	assert.False(t, ok)
}

func TestRefreshTokenCarriesID(t *testing.T) {
	user := &domain.User{ID: primitive.NewObjectID(), Name: "Ada"}

	token, err := CreateRefreshToken(user, "refresh-secret", 24)
	require.NoError(t, err)

	id, err := ExtractIDFromToken(token, "refresh-secret")
	require.NoError(t, err)
	assert.Equal(t, user.ID.Hex(), id)
}
