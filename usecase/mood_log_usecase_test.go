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

func newMoodLogUsecase(repo *mocks.MoodLogRepository, at time.Time) *moodLogUsecase {
	return &moodLogUsecase{
		moodLogRepository: repo,
		contextTimeout:    time.Second * 2,
		now:               func() time.Time { return at },
	}
}

func TestLogMoodCollectsAllFieldErrors(t *testing.T) {
	repo := new(mocks.MoodLogRepository)
	uc := newMoodLogUsecase(repo, time.Now().UTC())

	confidence := 1.5
	_, err := uc.LogMood(context.Background(), primitive.NewObjectID().Hex(), &domain.LogMoodRequest{
		Mood:            "joyful",
		Intensity:       0,
		DetectionMethod: "telepathy",
		Confidence:      &confidence,
	})

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
	assert.Len(t, appErr.Fields, 4)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLogMoodDerivesTimeOfDay(t *testing.T) {
	repo := new(mocks.MoodLogRepository)
	at := time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC)
	uc := newMoodLogUsecase(repo, at)

	userID := primitive.NewObjectID()
	repo.On("GetLatest", mock.Anything, userID).Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	log, err := uc.LogMood(context.Background(), userID.Hex(), &domain.LogMoodRequest{
		Mood:            domain.MoodHappy,
		Intensity:       7,
		DetectionMethod: domain.DetectionManual,
	})

	require.NoError(t, err)
	assert.Equal(t, domain.TimeOfDayAfternoon, log.Context.TimeOfDay)
	assert.Equal(t, 1.0, log.Confidence)
	assert.Nil(t, log.PreviousMood)
}

func TestLogMoodSnapshotsPreviousMood(t *testing.T) {
	repo := new(mocks.MoodLogRepository)
	uc := newMoodLogUsecase(repo, time.Now().UTC())

	userID := primitive.NewObjectID()
	previousAt := time.Date(2026, 3, 13, 9, 30, 0, 0, time.UTC)
	repo.On("GetLatest", mock.Anything, userID).Return(&domain.MoodLog{
		UserID:    userID,
		Mood:      domain.MoodSad,
		Intensity: 3,
		CreatedAt: previousAt,
	}, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	log, err := uc.LogMood(context.Background(), userID.Hex(), &domain.LogMoodRequest{
		Mood:            domain.MoodHappy,
		Intensity:       8,
		DetectionMethod: domain.DetectionText,
	})

	require.NoError(t, err)
	require.NotNil(t, log.PreviousMood)
	assert.Equal(t, domain.MoodSad, log.PreviousMood.Mood)
	assert.Equal(t, 3, log.PreviousMood.Intensity)
	assert.Equal(t, previousAt, log.PreviousMood.Timestamp)
}

func TestLogMoodKeepsExplicitTimeOfDay(t *testing.T) {
	repo := new(mocks.MoodLogRepository)
	uc := newMoodLogUsecase(repo, time.Date(2026, 3, 14, 14, 0, 0, 0, time.UTC))

	userID := primitive.NewObjectID()
	repo.On("GetLatest", mock.Anything, userID).Return(nil, nil)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	log, err := uc.LogMood(context.Background(), userID.Hex(), &domain.LogMoodRequest{
		Mood:            domain.MoodCalm,
		Intensity:       5,
		DetectionMethod: domain.DetectionManual,
		Context:         &domain.MoodContext{TimeOfDay: domain.TimeOfDayNight},
	})

	require.NoError(t, err)
	assert.Equal(t, domain.TimeOfDayNight, log.Context.TimeOfDay)
}

func TestGetByIDRejectsOtherUsers(t *testing.T) {
	repo := new(mocks.MoodLogRepository)
	uc := newMoodLogUsecase(repo, time.Now().UTC())

	logID := primitive.NewObjectID()
	repo.On("GetByID", mock.Anything, logID).Return(&domain.MoodLog{
		ID:     logID,
		UserID: primitive.NewObjectID(),
	}, nil)

	_, err := uc.GetByID(context.Background(), primitive.NewObjectID().Hex(), logID.Hex())

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTHORIZATION_ERROR", appErr.Code)
}

func TestGetByIDUnknownLogIs404(t *testing.T) {
	repo := new(mocks.MoodLogRepository)
	uc := newMoodLogUsecase(repo, time.Now().UTC())

	logID := primitive.NewObjectID()
	repo.On("GetByID", mock.Anything, logID).Return(nil, domain.NewNotFoundError("mood log not found"))

	// Missing document reports not-found even when the caller would not own it.
	_, err := uc.GetByID(context.Background(), primitive.NewObjectID().Hex(), logID.Hex())

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "NOT_FOUND", appErr.Code)
}

func TestDeleteChecksOwnership(t *testing.T) {
	repo := new(mocks.MoodLogRepository)
	uc := newMoodLogUsecase(repo, time.Now().UTC())

	owner := primitive.NewObjectID()
	logID := primitive.NewObjectID()
	repo.On("GetByID", mock.Anything, logID).Return(&domain.MoodLog{ID: logID, UserID: owner}, nil)
	repo.On("Delete", mock.Anything, logID).Return(nil)

	err := uc.Delete(context.Background(), owner.Hex(), logID.Hex())
	require.NoError(t, err)
	repo.AssertCalled(t, "Delete", mock.Anything, logID)
}
