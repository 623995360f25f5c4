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

func newGameUsecase(gameRepo *mocks.GameRepository, sessionRepo *mocks.GameSessionRepository, at time.Time) *gameUsecase {
	return &gameUsecase{
		gameRepository:    gameRepo,
		sessionRepository: sessionRepo,
		contextTimeout:    time.Second * 2,
		now:               func() time.Time { return at },
	}
}

func TestStartSessionFirstPlay(t *testing.T) {
	gameRepo := new(mocks.GameRepository)
	sessionRepo := new(mocks.GameSessionRepository)
	uc := newGameUsecase(gameRepo, sessionRepo, time.Now().UTC())

	userID := primitive.NewObjectID()
	gameID := primitive.NewObjectID()
	gameRepo.On("GetByID", mock.Anything, gameID).Return(&domain.Game{
		ID:                gameID,
		Type:              domain.GameBreathing,
		Difficulty:        "easy",
		EstimatedDuration: 300,
		IsActive:          true,
	}, nil)
	sessionRepo.On("CountByUserAndGame", mock.Anything, userID, gameID).Return(int64(0), nil)
	sessionRepo.On("AverageScore", mock.Anything, userID, gameID).Return(0.0, int64(0), nil)
	sessionRepo.On("Create", mock.Anything, mock.Anything).Return(nil)
	gameRepo.On("IncrementPlayCount", mock.Anything, gameID).Return(nil)

	session, err := uc.StartSession(context.Background(), userID.Hex(), &domain.StartSessionRequest{
		GameID:     gameID.Hex(),
		MoodBefore: domain.MoodSnapshot{Mood: domain.MoodAnxious, Intensity: 7},
	})

	require.NoError(t, err)
	assert.NotEmpty(t, session.SessionID)
	assert.Equal(t, domain.GameBreathing, session.GameType)
	assert.Equal(t, "easy", session.Difficulty)
	assert.Equal(t, true, session.GameData[domain.GameDataIsFirstPlay])
	assert.Equal(t, 300, session.GameData[domain.GameDataExpectedDuration])
	assert.NotContains(t, session.GameData, domain.GameDataAverageScore)
	gameRepo.AssertCalled(t, "IncrementPlayCount", mock.Anything, gameID)
}

func TestStartSessionInactiveGameConflicts(t *testing.T) {
	gameRepo := new(mocks.GameRepository)
	sessionRepo := new(mocks.GameSessionRepository)
	uc := newGameUsecase(gameRepo, sessionRepo, time.Now().UTC())

	gameID := primitive.NewObjectID()
	gameRepo.On("GetByID", mock.Anything, gameID).Return(&domain.Game{ID: gameID, IsActive: false}, nil)

	_, err := uc.StartSession(context.Background(), primitive.NewObjectID().Hex(), &domain.StartSessionRequest{
		GameID:     gameID.Hex(),
		MoodBefore: domain.MoodSnapshot{Mood: domain.MoodCalm, Intensity: 5},
	})

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFLICT", appErr.Code)
}

func TestCompleteSessionComputesImprovementAndAchievements(t *testing.T) {
	gameRepo := new(mocks.GameRepository)
	sessionRepo := new(mocks.GameSessionRepository)
	started := time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)
	uc := newGameUsecase(gameRepo, sessionRepo, started.Add(100*time.Second))

	userID := primitive.NewObjectID()
	sessionID := primitive.NewObjectID()
	sessionRepo.On("GetByID", mock.Anything, sessionID).Return(&domain.GameSession{
		ID:         sessionID,
		UserID:     userID,
		MoodBefore: domain.MoodSnapshot{Mood: domain.MoodSad, Intensity: 3},
		StartedAt:  started,
		GameData: domain.GameData{
			domain.GameDataIsFirstPlay:      true,
			domain.GameDataExpectedDuration: 300,
		},
	}, nil)
	sessionRepo.On("Update", mock.Anything, sessionID, mock.Anything).Return(nil)

	session, err := uc.CompleteSession(context.Background(), userID.Hex(), sessionID.Hex(), &domain.CompleteSessionRequest{
		MoodAfter: domain.MoodSnapshot{Mood: domain.MoodHappy, Intensity: 8},
		Score:     50,
		MaxScore:  50,
	})

	require.NoError(t, err)
	assert.True(t, session.Completed)
	assert.Equal(t, 100, session.Duration)
	assert.Equal(t, 100, session.CompletionPercentage)
	require.NotNil(t, session.MoodImprovement)
	assert.Equal(t, 5, *session.MoodImprovement)
	// 100s beats half of the expected 300s, the score is perfect, it is the
	// first play and the mood rose by 5.
	assert.ElementsMatch(t, []domain.Achievement{
		domain.AchievementFirstPlay,
		domain.AchievementPerfectScore,
		domain.AchievementQuickFinish,
		domain.AchievementMoodLifter,
	}, session.Achievements)
}

func TestCompleteSessionTwiceConflicts(t *testing.T) {
	gameRepo := new(mocks.GameRepository)
	sessionRepo := new(mocks.GameSessionRepository)
	uc := newGameUsecase(gameRepo, sessionRepo, time.Now().UTC())

	userID := primitive.NewObjectID()
	sessionID := primitive.NewObjectID()
	sessionRepo.On("GetByID", mock.Anything, sessionID).Return(&domain.GameSession{
		ID:        sessionID,
		UserID:    userID,
		Completed: true,
	}, nil)

	_, err := uc.CompleteSession(context.Background(), userID.Hex(), sessionID.Hex(), &domain.CompleteSessionRequest{
		MoodAfter: domain.MoodSnapshot{Mood: domain.MoodHappy, Intensity: 6},
	})

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFLICT", appErr.Code)
	sessionRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
}

func TestHighScoreAchievementBeatsHistoricalAverage(t *testing.T) {
	session := &domain.GameSession{
		Score: 80,
		GameData: domain.GameData{
			domain.GameDataAverageScore: 62.5,
		},
	}
	earned := achievementsFor(session, 0)
	assert.Contains(t, earned, domain.AchievementHighScore)

	session.Score = 60
	earned = achievementsFor(session, 0)
	assert.NotContains(t, earned, domain.AchievementHighScore)
}

func TestRateRequiresCompletedSession(t *testing.T) {
	gameRepo := new(mocks.GameRepository)
	sessionRepo := new(mocks.GameSessionRepository)
	uc := newGameUsecase(gameRepo, sessionRepo, time.Now().UTC())

	userID := primitive.NewObjectID()
	gameID := primitive.NewObjectID()
	gameRepo.On("GetByID", mock.Anything, gameID).Return(&domain.Game{ID: gameID}, nil)
	sessionRepo.On("HasCompleted", mock.Anything, userID, gameID).Return(false, nil)

	_, err := uc.Rate(context.Background(), userID.Hex(), gameID.Hex(), &domain.RateGameRequest{Rating: 4})

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTHORIZATION_ERROR", appErr.Code)
}

func TestRateUpdatesRunningAverage(t *testing.T) {
	gameRepo := new(mocks.GameRepository)
	sessionRepo := new(mocks.GameSessionRepository)
	uc := newGameUsecase(gameRepo, sessionRepo, time.Now().UTC())

	userID := primitive.NewObjectID()
	gameID := primitive.NewObjectID()
	gameRepo.On("GetByID", mock.Anything, gameID).Return(&domain.Game{
		ID:            gameID,
		RatingAverage: 4.0,
		RatingCount:   3,
	}, nil)
	sessionRepo.On("HasCompleted", mock.Anything, userID, gameID).Return(true, nil)
	gameRepo.On("UpdateRating", mock.Anything, gameID, 3.75, int64(4)).Return(nil)

	game, err := uc.Rate(context.Background(), userID.Hex(), gameID.Hex(), &domain.RateGameRequest{Rating: 3})

	require.NoError(t, err)
	assert.Equal(t, 3.75, game.RatingAverage)
	assert.Equal(t, int64(4), game.RatingCount)
}

func TestRateRejectsOutOfRangeRating(t *testing.T) {
	uc := newGameUsecase(new(mocks.GameRepository), new(mocks.GameSessionRepository), time.Now().UTC())

	_, err := uc.Rate(context.Background(), primitive.NewObjectID().Hex(), primitive.NewObjectID().Hex(), &domain.RateGameRequest{Rating: 6})

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}
