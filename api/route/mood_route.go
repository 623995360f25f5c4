package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moodtunes/moodtunes-backend/api/controller"
	"github.com/moodtunes/moodtunes-backend/domain"
	"github.com/moodtunes/moodtunes-backend/internal/mooddetect"
	"github.com/moodtunes/moodtunes-backend/mongo"
	"github.com/moodtunes/moodtunes-backend/repository"
	"github.com/moodtunes/moodtunes-backend/usecase"
)

func NewMoodRouter(timeout time.Duration, db mongo.Database, protected *gin.RouterGroup) {
	moodLogRepo := repository.NewMoodLogRepository(db, domain.CollectionMoodLog)
	analyticsRepo := repository.NewAnalyticsRepository(db)

	moodCtrl := &controller.MoodController{
		MoodLogUsecase:   usecase.NewMoodLogUsecase(moodLogRepo, timeout),
		AnalyticsUsecase: usecase.NewAnalyticsUsecase(analyticsRepo, timeout),
		Detector:         mooddetect.NewKeywordDetector(),
	}

	moodGroup := protected.Group("/moods")
	{
		// POST /moods
		moodGroup.POST("", moodCtrl.LogMood)
		// POST /moods/detect
		moodGroup.POST("/detect", moodCtrl.Detect)
		// GET /moods?mood=&detectionMethod=&from=&to=&page=&limit=
		moodGroup.GET("", moodCtrl.Fetch)
		// GET /moods/trends?days=&granularity=
		moodGroup.GET("/trends", moodCtrl.Trends)
		// GET /moods/frequency?days=
		moodGroup.GET("/frequency", moodCtrl.Frequency)
		// GET /moods/stats?days=
		moodGroup.GET("/stats", moodCtrl.Stats)
		// GET /moods/insights?days=
		moodGroup.GET("/insights", moodCtrl.Insights)
		// GET /moods/:id
		moodGroup.GET("/:id", moodCtrl.GetByID)
		// PUT /moods/:id
		moodGroup.PUT("/:id", moodCtrl.Update)
		// DELETE /moods/:id
		moodGroup.DELETE("/:id", moodCtrl.Delete)
	}
}
