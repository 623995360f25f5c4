package usecase

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/moodtunes/moodtunes-backend/domain"
	"github.com/moodtunes/moodtunes-backend/domain/mocks"
)

func TestRecommendDefaultsLimit(t *testing.T) {
	songRepo := new(mocks.SongRepository)
	uc := NewSongUsecase(songRepo, new(mocks.PlaybackLogRepository), time.Second*2)

	userID := primitive.NewObjectID()
	songRepo.On("Recommend", mock.Anything, domain.RecommendFilter{
		ViewerID: userID,
		Mood:     domain.MoodHappy,
		Energy:   8,
		Valence:  6,
		Limit:    20,
	}).Return([]domain.Song{}, nil)

	_, err := uc.Recommend(context.Background(), userID.Hex(), domain.MoodHappy, 8, 6, 0)
	require.NoError(t, err)
	songRepo.AssertExpectations(t)
}

func TestRecommendRejectsBadInputs(t *testing.T) {
	uc := NewSongUsecase(new(mocks.SongRepository), new(mocks.PlaybackLogRepository), time.Second*2)

	_, err := uc.Recommend(context.Background(), primitive.NewObjectID().Hex(), "joyful", 15, -2, 10)

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Len(t, appErr.Fields, 3)
	for _, field := range appErr.Fields {
		if field.Field == "energy" || field.Field == "valence" {
			assert.Contains(t, field.Message, "when provided")
		}
	}
}

// writeUploadFile stores a minimal MP3 (ID3v2 header plus padding) where the
// controller would have saved the multipart upload.
func writeUploadFile(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "track.mp3")
	head := append([]byte("ID3\x03\x00\x00\x00\x00\x00\x00"), make([]byte, 512)...)
	require.NoError(t, os.WriteFile(path, head, 0o600))
	return path
}

func uploadRequest(path string) *domain.SongUploadRequest {
	return &domain.SongUploadRequest{
		Title:    "Night Drive",
		Artist:   "Mira",
		Genre:    domain.GenreElectronic,
		MoodTags: []domain.Mood{domain.MoodCalm},
		Duration: 212,
		Energy:   5,
		Valence:  6,
		Tempo:    domain.TempoMedium,
		FilePath: path,
	}
}

func TestUploadRemovesFileWhenCreateFails(t *testing.T) {
	songRepo := new(mocks.SongRepository)
	uc := NewSongUsecase(songRepo, new(mocks.PlaybackLogRepository), time.Second*2)

	path := writeUploadFile(t)
	songRepo.On("Create", mock.Anything, mock.Anything).
		Return(domain.NewServerError(assert.AnError))

	_, err := uc.Upload(context.Background(), primitive.NewObjectID().Hex(), uploadRequest(path))

	require.Error(t, err)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "orphaned upload should be removed")
}

func TestUploadRemovesFileWhenMetadataInvalid(t *testing.T) {
	songRepo := new(mocks.SongRepository)
	uc := NewSongUsecase(songRepo, new(mocks.PlaybackLogRepository), time.Second*2)

	path := writeUploadFile(t)
	req := uploadRequest(path)
	req.Energy = 42
	req.Tempo = "breakneck"

	_, err := uc.Upload(context.Background(), primitive.NewObjectID().Hex(), req)

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	_, statErr := os.Stat(path)
	assert.True(t, os.IsNotExist(statErr), "orphaned upload should be removed")
	songRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestGetByIDPrivateSongHiddenFromOthers(t *testing.T) {
	songRepo := new(mocks.SongRepository)
	uc := NewSongUsecase(songRepo, new(mocks.PlaybackLogRepository), time.Second*2)

	songID := primitive.NewObjectID()
	songRepo.On("GetByID", mock.Anything, songID).Return(&domain.Song{
		ID:         songID,
		IsPublic:   false,
		UploadedBy: primitive.NewObjectID(),
	}, nil)

	_, err := uc.GetByID(context.Background(), primitive.NewObjectID().Hex(), songID.Hex())

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTHORIZATION_ERROR", appErr.Code)
}

func TestGetByIDOwnerSeesPrivateSong(t *testing.T) {
	songRepo := new(mocks.SongRepository)
	uc := NewSongUsecase(songRepo, new(mocks.PlaybackLogRepository), time.Second*2)

	owner := primitive.NewObjectID()
	songID := primitive.NewObjectID()
	songRepo.On("GetByID", mock.Anything, songID).Return(&domain.Song{
		ID:         songID,
		IsPublic:   false,
		UploadedBy: owner,
	}, nil)

	song, err := uc.GetByID(context.Background(), owner.Hex(), songID.Hex())
	require.NoError(t, err)
	assert.Equal(t, songID, song.ID)
}

func TestRecordPlaybackCreatesLogAndBumpsCounter(t *testing.T) {
	songRepo := new(mocks.SongRepository)
	playbackRepo := new(mocks.PlaybackLogRepository)
	uc := NewSongUsecase(songRepo, playbackRepo, time.Second*2)

	userID := primitive.NewObjectID()
	songID := primitive.NewObjectID()
	songRepo.On("GetByID", mock.Anything, songID).Return(&domain.Song{ID: songID, IsPublic: true}, nil)
	playbackRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	songRepo.On("IncrementPlayCount", mock.Anything, songID).Return(nil)

	log, err := uc.RecordPlayback(context.Background(), userID.Hex(), &domain.PlaybackRequest{
		SongID:               songID.Hex(),
		Mood:                 domain.MoodRelaxed,
		MoodIntensity:        6,
		PlayDuration:         180,
		CompletionPercentage: 92.5,
		Source:               domain.SourceRecommendation,
	})

	require.NoError(t, err)
	assert.Equal(t, songID, log.SongID)
	assert.Equal(t, domain.MoodRelaxed, log.Mood)
	songRepo.AssertCalled(t, "IncrementPlayCount", mock.Anything, songID)
}

func TestRecordPlaybackUnknownSongIs404(t *testing.T) {
	songRepo := new(mocks.SongRepository)
	playbackRepo := new(mocks.PlaybackLogRepository)
	uc := NewSongUsecase(songRepo, playbackRepo, time.Second*2)

	songID := primitive.NewObjectID()
	songRepo.On("GetByID", mock.Anything, songID).Return(nil, domain.NewNotFoundError("song not found"))

	_, err := uc.RecordPlayback(context.Background(), primitive.NewObjectID().Hex(), &domain.PlaybackRequest{
		SongID: songID.Hex(),
		Source: domain.SourceManual,
	})

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
	playbackRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestRecordPlaybackRejectsBadSource(t *testing.T) {
	uc := NewSongUsecase(new(mocks.SongRepository), new(mocks.PlaybackLogRepository), time.Second*2)

	_, err := uc.RecordPlayback(context.Background(), primitive.NewObjectID().Hex(), &domain.PlaybackRequest{
		SongID: primitive.NewObjectID().Hex(),
		Source: "radio",
	})

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestUpdateCollectsFieldErrors(t *testing.T) {
	songRepo := new(mocks.SongRepository)
	uc := NewSongUsecase(songRepo, new(mocks.PlaybackLogRepository), time.Second*2)

	owner := primitive.NewObjectID()
	songID := primitive.NewObjectID()
	songRepo.On("GetByID", mock.Anything, songID).Return(&domain.Song{
		ID:         songID,
		UploadedBy: owner,
	}, nil)

	badEnergy := 12
	badTempo := domain.Tempo("sluggish")
	_, err := uc.Update(context.Background(), owner.Hex(), songID.Hex(), &domain.SongUpdateRequest{
		Energy: &badEnergy,
		Tempo:  &badTempo,
	})

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Len(t, appErr.Fields, 2)
	songRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}
