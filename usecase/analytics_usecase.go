package usecase

import (
	"context"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/sync/errgroup"

	"github.com/moodtunes/moodtunes-backend/domain"
)

const (
	defaultWindowDays   = 30
	maxWindowDays       = 365
	recentActivityLimit = 5
	topSongsLimit       = 10
	topPlaylistsLimit   = 5
	recentSessionsLimit = 5
	insightTriggerLimit = 5
)

type analyticsUsecase struct {
	analyticsRepository domain.AnalyticsRepository
	contextTimeout      time.Duration
	now                 func() time.Time
}

func NewAnalyticsUsecase(analyticsRepository domain.AnalyticsRepository, timeout time.Duration) domain.AnalyticsUsecase {
	return &analyticsUsecase{
		analyticsRepository: analyticsRepository,
		contextTimeout:      timeout,
		now:                 func() time.Time { return time.Now().UTC() },
	}
}

// window resolves the user id and the trailing window start. days outside
// [1, 365] fall back to the 30-day default.
func (au *analyticsUsecase) window(userID string, days int) (primitive.ObjectID, time.Time, int, error) {
	oid, err := parseID(userID)
	if err != nil {
		return primitive.NilObjectID, time.Time{}, 0, err
	}
	if days < 1 || days > maxWindowDays {
		days = defaultWindowDays
	}
	since := au.now().AddDate(0, 0, -days)
	return oid, since, days, nil
}

func (au *analyticsUsecase) Dashboard(ctx context.Context, userID string, days int) (*domain.Dashboard, error) {
	ctx, cancel := context.WithTimeout(ctx, au.contextTimeout)
	defer cancel()

	oid, since, days, err := au.window(userID, days)
	if err != nil {
		return nil, err
	}

	dashboard := &domain.Dashboard{WindowDays: days}

	// The five aggregations touch separate collections, so run them in
	// parallel. Any one failure cancels the rest.
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		overview, err := au.analyticsRepository.MoodOverview(gctx, oid, since)
		if err != nil {
			return err
		}
		dashboard.Moods = *overview
		return nil
	})
	g.Go(func() error {
		overview, err := au.analyticsRepository.ListeningOverview(gctx, oid, since)
		if err != nil {
			return err
		}
		dashboard.Listening = *overview
		return nil
	})
	g.Go(func() error {
		overview, err := au.analyticsRepository.PlaylistOverview(gctx, oid, since)
		if err != nil {
			return err
		}
		dashboard.Playlists = *overview
		return nil
	})
	g.Go(func() error {
		overview, err := au.analyticsRepository.GameOverview(gctx, oid, since)
		if err != nil {
			return err
		}
		dashboard.Games = *overview
		return nil
	})
	g.Go(func() error {
		activity, err := au.analyticsRepository.RecentActivity(gctx, oid, recentActivityLimit)
		if err != nil {
			return err
		}
		dashboard.RecentActivity = *activity
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return dashboard, nil
}

func (au *analyticsUsecase) MoodTrends(ctx context.Context, userID string, days int, granularity domain.TrendGranularity) (*domain.MoodTrends, error) {
	ctx, cancel := context.WithTimeout(ctx, au.contextTimeout)
	defer cancel()

	oid, since, _, err := au.window(userID, days)
	if err != nil {
		return nil, err
	}
	if granularity == "" {
		granularity = domain.TrendDaily
	}
	if !granularity.Valid() {
		return nil, domain.NewValidationError([]domain.FieldError{
			{Field: "granularity", Message: "must be day, week or month"},
		})
	}

	buckets, err := au.analyticsRepository.MoodTrendBuckets(ctx, oid, since, granularity)
	if err != nil {
		return nil, err
	}
	counts, err := au.analyticsRepository.MoodCounts(ctx, oid, since)
	if err != nil {
		return nil, err
	}

	distribution, total := moodDistribution(counts)

	return &domain.MoodTrends{
		Granularity:  granularity,
		Buckets:      buckets,
		Distribution: distribution,
		TotalMoods:   total,
	}, nil
}

// moodDistribution turns raw per-mood counts into percentage shares. An
// empty window yields an empty slice and zero total, never a division by
// zero.
func moodDistribution(counts []domain.MoodCount) ([]domain.MoodDistributionEntry, int64) {
	var total int64
	for _, c := range counts {
		total += c.Count
	}
	distribution := make([]domain.MoodDistributionEntry, 0, len(counts))
	for _, c := range counts {
		entry := domain.MoodDistributionEntry{Mood: c.Mood, Count: c.Count}
		if total > 0 {
			entry.Percentage = float64(c.Count) / float64(total) * 100
		}
		distribution = append(distribution, entry)
	}
	return distribution, total
}

func (au *analyticsUsecase) MoodFrequency(ctx context.Context, userID string, days int) (*domain.MoodFrequency, error) {
	ctx, cancel := context.WithTimeout(ctx, au.contextTimeout)
	defer cancel()

	oid, since, days, err := au.window(userID, days)
	if err != nil {
		return nil, err
	}
	counts, err := au.analyticsRepository.MoodCounts(ctx, oid, since)
	if err != nil {
		return nil, err
	}
	distribution, total := moodDistribution(counts)
	return &domain.MoodFrequency{
		Distribution: distribution,
		TotalMoods:   total,
		WindowDays:   days,
	}, nil
}

func (au *analyticsUsecase) MoodStats(ctx context.Context, userID string, days int) (*domain.MoodOverview, error) {
	ctx, cancel := context.WithTimeout(ctx, au.contextTimeout)
	defer cancel()

	oid, since, _, err := au.window(userID, days)
	if err != nil {
		return nil, err
	}
	return au.analyticsRepository.MoodOverview(ctx, oid, since)
}

func (au *analyticsUsecase) MoodInsights(ctx context.Context, userID string, days int) (*domain.MoodInsights, error) {
	ctx, cancel := context.WithTimeout(ctx, au.contextTimeout)
	defer cancel()

	oid, since, days, err := au.window(userID, days)
	if err != nil {
		return nil, err
	}

	insights := &domain.MoodInsights{WindowDays: days}
	var counts []domain.MoodCount
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		overview, err := au.analyticsRepository.MoodOverview(gctx, oid, since)
		if err != nil {
			return err
		}
		insights.Overview = *overview
		return nil
	})
	g.Go(func() (err error) {
		counts, err = au.analyticsRepository.MoodCounts(gctx, oid, since)
		return err
	})
	g.Go(func() (err error) {
		insights.TopTriggers, err = au.analyticsRepository.TriggerFrequency(gctx, oid, since)
		return err
	})
	g.Go(func() (err error) {
		insights.Heatmap, err = au.analyticsRepository.MoodHeatmap(gctx, oid, since)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// MoodCounts comes back sorted by count descending.
	if len(counts) > 0 {
		insights.DominantMood = counts[0].Mood
	}
	if len(insights.TopTriggers) > insightTriggerLimit {
		insights.TopTriggers = insights.TopTriggers[:insightTriggerLimit]
	}
	for i := range insights.Heatmap {
		cell := &insights.Heatmap[i]
		if insights.Peak == nil || cell.AvgIntensity > insights.Peak.AvgIntensity {
			insights.Peak = cell
		}
	}
	return insights, nil
}

func (au *analyticsUsecase) ListeningPatterns(ctx context.Context, userID string, days int) (*domain.ListeningPatterns, error) {
	ctx, cancel := context.WithTimeout(ctx, au.contextTimeout)
	defer cancel()

	oid, since, _, err := au.window(userID, days)
	if err != nil {
		return nil, err
	}

	patterns := &domain.ListeningPatterns{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		patterns.TopSongs, err = au.analyticsRepository.TopSongs(gctx, oid, since, topSongsLimit)
		return err
	})
	g.Go(func() (err error) {
		patterns.ByMood, err = au.analyticsRepository.ListeningByMood(gctx, oid, since)
		return err
	})
	g.Go(func() (err error) {
		patterns.Daily, err = au.analyticsRepository.DailyListening(gctx, oid, since)
		return err
	})
	g.Go(func() (err error) {
		patterns.GenrePreferences, err = au.analyticsRepository.GenrePreferences(gctx, oid, since)
		return err
	})
	g.Go(func() (err error) {
		patterns.HourHistogram, err = au.analyticsRepository.HourHistogram(gctx, oid, since)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return patterns, nil
}

func (au *analyticsUsecase) PlaylistUsage(ctx context.Context, userID string, days int) (*domain.PlaylistUsage, error) {
	ctx, cancel := context.WithTimeout(ctx, au.contextTimeout)
	defer cancel()

	oid, since, _, err := au.window(userID, days)
	if err != nil {
		return nil, err
	}

	usage := &domain.PlaylistUsage{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		usage.MostPlayed, err = au.analyticsRepository.MostPlayedPlaylists(gctx, oid, since, topPlaylistsLimit)
		return err
	})
	g.Go(func() error {
		stats, err := au.analyticsRepository.PlaylistCreationStats(gctx, oid, since)
		if err != nil {
			return err
		}
		usage.CreationStats = *stats
		return nil
	})
	g.Go(func() (err error) {
		usage.TopPlaylists, err = au.analyticsRepository.TopPlaylists(gctx, oid, topPlaylistsLimit)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return usage, nil
}

func (au *analyticsUsecase) GamePerformance(ctx context.Context, userID string, days int) (*domain.GamePerformance, error) {
	ctx, cancel := context.WithTimeout(ctx, au.contextTimeout)
	defer cancel()

	oid, since, _, err := au.window(userID, days)
	if err != nil {
		return nil, err
	}

	performance := &domain.GamePerformance{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		summary, err := au.analyticsRepository.MoodImprovementSummary(gctx, oid, since)
		if err != nil {
			return err
		}
		performance.Improvement = *summary
		return nil
	})
	g.Go(func() (err error) {
		performance.PerType, err = au.analyticsRepository.GameTypePerformance(gctx, oid, since)
		return err
	})
	g.Go(func() (err error) {
		performance.RecentSessions, err = au.analyticsRepository.RecentSessions(gctx, oid, recentSessionsLimit)
		return err
	})
	g.Go(func() (err error) {
		performance.Achievements, err = au.analyticsRepository.AchievementFrequency(gctx, oid, since)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return performance, nil
}

func (au *analyticsUsecase) Correlations(ctx context.Context, userID string, days int) (*domain.Correlations, error) {
	ctx, cancel := context.WithTimeout(ctx, au.contextTimeout)
	defer cancel()

	oid, since, _, err := au.window(userID, days)
	if err != nil {
		return nil, err
	}

	correlations := &domain.Correlations{}
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() (err error) {
		correlations.MoodGenre, err = au.analyticsRepository.MoodGenreCorrelation(gctx, oid, since)
		return err
	})
	g.Go(func() (err error) {
		correlations.MoodGame, err = au.analyticsRepository.MoodGameCorrelation(gctx, oid, since)
		return err
	})
	g.Go(func() (err error) {
		correlations.Heatmap, err = au.analyticsRepository.MoodHeatmap(gctx, oid, since)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return correlations, nil
}
