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

func newAnalyticsUsecase(repo *mocks.AnalyticsRepository, at time.Time) *analyticsUsecase {
	return &analyticsUsecase{
		analyticsRepository: repo,
		contextTimeout:      time.Second * 2,
		now:                 func() time.Time { return at },
	}
}

func TestDashboardDefaultsWindowTo30Days(t *testing.T) {
	repo := new(mocks.AnalyticsRepository)
	at := time.Date(2026, 3, 31, 12, 0, 0, 0, time.UTC)
	uc := newAnalyticsUsecase(repo, at)

	userID := primitive.NewObjectID()
	since := at.AddDate(0, 0, -30)
	repo.On("MoodOverview", mock.Anything, userID, since).Return(&domain.MoodOverview{TotalMoodLogs: 4}, nil)
	repo.On("ListeningOverview", mock.Anything, userID, since).Return(&domain.ListeningOverview{TotalPlays: 9}, nil)
	repo.On("PlaylistOverview", mock.Anything, userID, since).Return(&domain.PlaylistOverview{}, nil)
	repo.On("GameOverview", mock.Anything, userID, since).Return(&domain.GameOverview{}, nil)
	repo.On("RecentActivity", mock.Anything, userID, 5).Return(&domain.RecentActivity{}, nil)

	dashboard, err := uc.Dashboard(context.Background(), userID.Hex(), 0)

	require.NoError(t, err)
	assert.Equal(t, 30, dashboard.WindowDays)
	assert.Equal(t, int64(4), dashboard.Moods.TotalMoodLogs)
	assert.Equal(t, int64(9), dashboard.Listening.TotalPlays)
}

func TestDashboardPropagatesRepositoryError(t *testing.T) {
	repo := new(mocks.AnalyticsRepository)
	at := time.Now().UTC()
	uc := newAnalyticsUsecase(repo, at)

	userID := primitive.NewObjectID()
	since := at.AddDate(0, 0, -30)
	repoErr := domain.NewServerError(assert.AnError)
	repo.On("MoodOverview", mock.Anything, userID, since).Return(nil, repoErr)
	repo.On("ListeningOverview", mock.Anything, userID, since).Return(&domain.ListeningOverview{}, nil).Maybe()
	repo.On("PlaylistOverview", mock.Anything, userID, since).Return(&domain.PlaylistOverview{}, nil).Maybe()
	repo.On("GameOverview", mock.Anything, userID, since).Return(&domain.GameOverview{}, nil).Maybe()
	repo.On("RecentActivity", mock.Anything, userID, 5).Return(&domain.RecentActivity{}, nil).Maybe()

	_, err := uc.Dashboard(context.Background(), userID.Hex(), 0)
	assert.Error(t, err)
}

func TestMoodTrendsDistributionPercentages(t *testing.T) {
	repo := new(mocks.AnalyticsRepository)
	at := time.Now().UTC()
	uc := newAnalyticsUsecase(repo, at)

	userID := primitive.NewObjectID()
	since := at.AddDate(0, 0, -7)
	repo.On("MoodTrendBuckets", mock.Anything, userID, since, domain.TrendDaily).Return([]domain.TrendBucket{}, nil)
	repo.On("MoodCounts", mock.Anything, userID, since).Return([]domain.MoodCount{
		{Mood: domain.MoodHappy, Count: 6},
		{Mood: domain.MoodSad, Count: 3},
		{Mood: domain.MoodCalm, Count: 1},
	}, nil)

	trends, err := uc.MoodTrends(context.Background(), userID.Hex(), 7, "")

	require.NoError(t, err)
	assert.Equal(t, domain.TrendDaily, trends.Granularity)
	assert.Equal(t, int64(10), trends.TotalMoods)
	require.Len(t, trends.Distribution, 3)
	assert.Equal(t, 60.0, trends.Distribution[0].Percentage)
	assert.Equal(t, 30.0, trends.Distribution[1].Percentage)
	assert.Equal(t, 10.0, trends.Distribution[2].Percentage)

	var sum float64
	for _, entry := range trends.Distribution {
		sum += entry.Percentage
	}
	assert.InDelta(t, 100.0, sum, 1e-9)
}

func TestMoodTrendsEmptyWindow(t *testing.T) {
	repo := new(mocks.AnalyticsRepository)
	at := time.Now().UTC()
	uc := newAnalyticsUsecase(repo, at)

	userID := primitive.NewObjectID()
	since := at.AddDate(0, 0, -30)
	repo.On("MoodTrendBuckets", mock.Anything, userID, since, domain.TrendWeekly).Return([]domain.TrendBucket{}, nil)
	repo.On("MoodCounts", mock.Anything, userID, since).Return([]domain.MoodCount{}, nil)

	trends, err := uc.MoodTrends(context.Background(), userID.Hex(), 30, domain.TrendWeekly)

	require.NoError(t, err)
	assert.Equal(t, int64(0), trends.TotalMoods)
	assert.Empty(t, trends.Distribution)
}

func TestMoodTrendsRejectsUnknownGranularity(t *testing.T) {
	uc := newAnalyticsUsecase(new(mocks.AnalyticsRepository), time.Now().UTC())

	_, err := uc.MoodTrends(context.Background(), primitive.NewObjectID().Hex(), 30, "hourly")

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "VALIDATION_ERROR", appErr.Code)
}

func TestWindowClampsOutOfRangeDays(t *testing.T) {
	uc := newAnalyticsUsecase(new(mocks.AnalyticsRepository), time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC))

	userID := primitive.NewObjectID()
	_, since, days, err := uc.window(userID.Hex(), 5000)
	require.NoError(t, err)
	assert.Equal(t, 30, days)
	assert.Equal(t, time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC), since)

	_, _, days, err = uc.window(userID.Hex(), 365)
	require.NoError(t, err)
	assert.Equal(t, 365, days)
}

func TestMoodFrequencyEmptyWindow(t *testing.T) {
	repo := new(mocks.AnalyticsRepository)
	at := time.Now().UTC()
	uc := newAnalyticsUsecase(repo, at)

	userID := primitive.NewObjectID()
	repo.On("MoodCounts", mock.Anything, userID, at.AddDate(0, 0, -30)).
		Return([]domain.MoodCount{}, nil)

	frequency, err := uc.MoodFrequency(context.Background(), userID.Hex(), 30)

	require.NoError(t, err)
	assert.Zero(t, frequency.TotalMoods)
	assert.Empty(t, frequency.Distribution)
	assert.Equal(t, 30, frequency.WindowDays)
}

func TestMoodInsightsPicksDominantMoodAndPeak(t *testing.T) {
	repo := new(mocks.AnalyticsRepository)
	at := time.Now().UTC()
	uc := newAnalyticsUsecase(repo, at)

	userID := primitive.NewObjectID()
	since := at.AddDate(0, 0, -30)
	repo.On("MoodOverview", mock.Anything, userID, since).
		Return(&domain.MoodOverview{TotalMoodLogs: 12, AvgMoodIntensity: 6.5}, nil)
	repo.On("MoodCounts", mock.Anything, userID, since).Return([]domain.MoodCount{
		{Mood: domain.MoodHappy, Count: 8},
		{Mood: domain.MoodCalm, Count: 4},
	}, nil)
	repo.On("TriggerFrequency", mock.Anything, userID, since).Return([]domain.TriggerCount{
		{Trigger: domain.TriggerMusic, Count: 6},
		{Trigger: domain.TriggerWork, Count: 2},
	}, nil)
	repo.On("MoodHeatmap", mock.Anything, userID, since).Return([]domain.HeatmapCell{
		{Hour: 9, Weekday: 2, AvgIntensity: 5.0, Count: 3},
		{Hour: 21, Weekday: 6, AvgIntensity: 8.5, Count: 2},
	}, nil)

	insights, err := uc.MoodInsights(context.Background(), userID.Hex(), 30)

	require.NoError(t, err)
	assert.Equal(t, domain.MoodHappy, insights.DominantMood)
	require.NotNil(t, insights.Peak)
	assert.Equal(t, 21, insights.Peak.Hour)
	assert.Len(t, insights.TopTriggers, 2)
	assert.Equal(t, int64(12), insights.Overview.TotalMoodLogs)
}

func TestMoodInsightsEmptyWindow(t *testing.T) {
	repo := new(mocks.AnalyticsRepository)
	at := time.Now().UTC()
	uc := newAnalyticsUsecase(repo, at)

	userID := primitive.NewObjectID()
	since := at.AddDate(0, 0, -30)
	repo.On("MoodOverview", mock.Anything, userID, since).Return(&domain.MoodOverview{}, nil)
	repo.On("MoodCounts", mock.Anything, userID, since).Return([]domain.MoodCount{}, nil)
	repo.On("TriggerFrequency", mock.Anything, userID, since).Return([]domain.TriggerCount{}, nil)
	repo.On("MoodHeatmap", mock.Anything, userID, since).Return([]domain.HeatmapCell{}, nil)

	insights, err := uc.MoodInsights(context.Background(), userID.Hex(), 30)

	require.NoError(t, err)
	assert.Empty(t, insights.DominantMood)
	assert.Nil(t, insights.Peak)
	assert.Empty(t, insights.TopTriggers)
}
