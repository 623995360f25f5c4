package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moodtunes/moodtunes-backend/api/controller"
	"github.com/moodtunes/moodtunes-backend/mongo"
	"github.com/moodtunes/moodtunes-backend/repository"
	"github.com/moodtunes/moodtunes-backend/usecase"
)

func NewAnalyticsRouter(timeout time.Duration, db mongo.Database, protected *gin.RouterGroup) {
	analyticsRepo := repository.NewAnalyticsRepository(db)

	analyticsCtrl := &controller.AnalyticsController{
		AnalyticsUsecase: usecase.NewAnalyticsUsecase(analyticsRepo, timeout),
	}

	analyticsGroup := protected.Group("/analytics")
	{
		// GET /analytics/dashboard?days=
		analyticsGroup.GET("/dashboard", analyticsCtrl.Dashboard)
		// GET /analytics/moods?days=&granularity=
		analyticsGroup.GET("/moods", analyticsCtrl.MoodTrends)
		// GET /analytics/listening?days=
		analyticsGroup.GET("/listening", analyticsCtrl.ListeningPatterns)
		// GET /analytics/playlists?days=
		analyticsGroup.GET("/playlists", analyticsCtrl.PlaylistUsage)
		// GET /analytics/games?days=
		analyticsGroup.GET("/games", analyticsCtrl.GamePerformance)
		// GET /analytics/correlations?days=
		analyticsGroup.GET("/correlations", analyticsCtrl.Correlations)
	}
}
