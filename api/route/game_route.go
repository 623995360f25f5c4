package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moodtunes/moodtunes-backend/api/controller"
	"github.com/moodtunes/moodtunes-backend/domain"
	"github.com/moodtunes/moodtunes-backend/mongo"
	"github.com/moodtunes/moodtunes-backend/repository"
	"github.com/moodtunes/moodtunes-backend/usecase"
)

func NewGameRouter(timeout time.Duration, db mongo.Database, protected *gin.RouterGroup) {
	gameRepo := repository.NewGameRepository(db, domain.CollectionGame)
	sessionRepo := repository.NewGameSessionRepository(db, domain.CollectionGameSession)

	gameCtrl := &controller.GameController{
		GameUsecase: usecase.NewGameUsecase(gameRepo, sessionRepo, timeout),
	}

	gameGroup := protected.Group("/games")
	{
		// GET /games?type=&difficulty=&mood=&page=&limit=
		gameGroup.GET("", gameCtrl.Fetch)
		// GET /games/recommendations?mood=&limit=
		gameGroup.GET("/recommendations", gameCtrl.Recommend)
		// GET /games/sessions?page=&limit=
		gameGroup.GET("/sessions", gameCtrl.FetchSessions)
		// GET /games/sessions/:id
		gameGroup.GET("/sessions/:id", gameCtrl.GetSession)
		// PUT /games/sessions/:id/complete
		gameGroup.PUT("/sessions/:id/complete", gameCtrl.CompleteSession)
		// GET /games/stats
		gameGroup.GET("/stats", gameCtrl.UserStats)
		// GET /games/:id
		gameGroup.GET("/:id", gameCtrl.GetByID)
		// POST /games/:id/sessions
		gameGroup.POST("/:id/sessions", gameCtrl.StartSession)
		// POST /games/:id/rate
		gameGroup.POST("/:id/rate", gameCtrl.Rate)
	}
}
