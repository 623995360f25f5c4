package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/moodtunes/moodtunes-backend/domain"
	"github.com/moodtunes/moodtunes-backend/domain/mocks"
)

func TestGeneratedName(t *testing.T) {
	cases := []struct {
		req  domain.AutoGenerateRequest
		want string
	}{
		{domain.AutoGenerateRequest{Mood: domain.MoodHappy}, "Happy Mix"},
		{domain.AutoGenerateRequest{Mood: domain.MoodCalm, Tempo: domain.TempoSlow}, "Calm Slow Mix"},
		{domain.AutoGenerateRequest{Genre: domain.GenreJazz}, "Jazz Mix"},
		{domain.AutoGenerateRequest{Mood: domain.MoodEnergetic, Tempo: domain.TempoFast, Genre: domain.GenreRock}, "Energetic Fast Rock Mix"},
		{domain.AutoGenerateRequest{}, "Fresh Mix"},
	}
	for _, tc := range cases {
		req := tc.req
		assert.Equal(t, tc.want, generatedName(&req))
	}
}

func TestAutoGenerateBuildsPlaylist(t *testing.T) {
	playlistRepo := new(mocks.PlaylistRepository)
	songRepo := new(mocks.SongRepository)
	uc := NewPlaylistUsecase(playlistRepo, songRepo, time.Second*2)

	userID := primitive.NewObjectID()
	songs := []domain.Song{
		{ID: primitive.NewObjectID(), Title: "One"},
		{ID: primitive.NewObjectID(), Title: "Two"},
	}
	songRepo.On("FindForPlaylist", mock.Anything, userID, domain.MoodHappy, domain.Tempo(""), domain.Genre(""), 20).
		Return(songs, nil)
	playlistRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	playlist, err := uc.AutoGenerate(context.Background(), userID.Hex(), &domain.AutoGenerateRequest{
		Mood: domain.MoodHappy,
	})

	require.NoError(t, err)
	assert.Equal(t, "Happy Mix", playlist.Name)
	assert.True(t, playlist.IsAutoGenerated)
	require.NotNil(t, playlist.GeneratedFor)
	assert.Equal(t, domain.MoodHappy, playlist.GeneratedFor.Mood)
	assert.Equal(t, 20, playlist.GeneratedFor.Limit)
	assert.Equal(t, []primitive.ObjectID{songs[0].ID, songs[1].ID}, playlist.SongIDs)
}

func TestAutoGenerateNoMatchesIs404(t *testing.T) {
	playlistRepo := new(mocks.PlaylistRepository)
	songRepo := new(mocks.SongRepository)
	uc := NewPlaylistUsecase(playlistRepo, songRepo, time.Second*2)

	userID := primitive.NewObjectID()
	songRepo.On("FindForPlaylist", mock.Anything, userID, domain.MoodMelancholic, domain.Tempo(""), domain.Genre(""), 20).
		Return([]domain.Song{}, nil)

	_, err := uc.AutoGenerate(context.Background(), userID.Hex(), &domain.AutoGenerateRequest{
		Mood: domain.MoodMelancholic,
	})

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
	playlistRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestAutoGenerateRejectsUnknownFilters(t *testing.T) {
	uc := NewPlaylistUsecase(new(mocks.PlaylistRepository), new(mocks.SongRepository), time.Second*2)

	_, err := uc.AutoGenerate(context.Background(), primitive.NewObjectID().Hex(), &domain.AutoGenerateRequest{
		Mood:  "joyful",
		Tempo: "sluggish",
		Genre: "noise",
	})

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Len(t, appErr.Fields, 3)
}

func TestAddSongRequiresOwnership(t *testing.T) {
	playlistRepo := new(mocks.PlaylistRepository)
	songRepo := new(mocks.SongRepository)
	uc := NewPlaylistUsecase(playlistRepo, songRepo, time.Second*2)

	playlistID := primitive.NewObjectID()
	playlistRepo.On("GetByID", mock.Anything, playlistID).Return(&domain.Playlist{
		ID:      playlistID,
		OwnerID: primitive.NewObjectID(),
	}, nil)

	_, err := uc.AddSong(context.Background(), primitive.NewObjectID().Hex(), playlistID.Hex(), primitive.NewObjectID().Hex())

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTHORIZATION_ERROR", appErr.Code)
	playlistRepo.AssertNotCalled(t, "AddSong", mock.Anything, mock.Anything, mock.Anything)
}

func TestAddSongVerifiesSongExists(t *testing.T) {
	playlistRepo := new(mocks.PlaylistRepository)
	songRepo := new(mocks.SongRepository)
	uc := NewPlaylistUsecase(playlistRepo, songRepo, time.Second*2)

	owner := primitive.NewObjectID()
	playlistID := primitive.NewObjectID()
	songID := primitive.NewObjectID()
	playlistRepo.On("GetByID", mock.Anything, playlistID).Return(&domain.Playlist{
		ID:      playlistID,
		OwnerID: owner,
	}, nil).Once()
	songRepo.On("GetByID", mock.Anything, songID).Return(nil, domain.NewNotFoundError("song not found"))

	_, err := uc.AddSong(context.Background(), owner.Hex(), playlistID.Hex(), songID.Hex())

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestGetByIDPrivatePlaylistHiddenFromOthers(t *testing.T) {
	playlistRepo := new(mocks.PlaylistRepository)
	uc := NewPlaylistUsecase(playlistRepo, new(mocks.SongRepository), time.Second*2)

	playlistID := primitive.NewObjectID()
	playlistRepo.On("GetByID", mock.Anything, playlistID).Return(&domain.Playlist{
		ID:       playlistID,
		OwnerID:  primitive.NewObjectID(),
		IsPublic: false,
	}, nil)

	_, err := uc.GetByID(context.Background(), primitive.NewObjectID().Hex(), playlistID.Hex())

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTHORIZATION_ERROR", appErr.Code)
}
