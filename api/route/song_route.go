package route

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moodtunes/moodtunes-backend/api/controller"
	"github.com/moodtunes/moodtunes-backend/bootstrap"
	"github.com/moodtunes/moodtunes-backend/domain"
	"github.com/moodtunes/moodtunes-backend/mongo"
	"github.com/moodtunes/moodtunes-backend/repository"
	"github.com/moodtunes/moodtunes-backend/usecase"
)

func NewSongRouter(env *bootstrap.Env, timeout time.Duration, db mongo.Database, optional, protected *gin.RouterGroup) {
	songRepo := repository.NewSongRepository(db, domain.CollectionSong)
	playbackRepo := repository.NewPlaybackLogRepository(db, domain.CollectionPlaybackLog)

	songCtrl := &controller.SongController{
		SongUsecase:    usecase.NewSongUsecase(songRepo, playbackRepo, timeout),
		UploadDir:      env.UploadDir,
		MaxUploadBytes: env.MaxUploadBytes,
	}

	// Reads over public songs work without a token; an anonymous viewer
	// just never matches the owner clause.
	readGroup := optional.Group("/songs")
	{
		// GET /songs?genre=&mood=&tempo=&search=&page=&limit=
		readGroup.GET("", songCtrl.Fetch)
		// GET /songs/:id
		readGroup.GET("/:id", songCtrl.GetByID)
	}

	songGroup := protected.Group("/songs")
	{
		// POST /songs (multipart: file + metadata fields)
		songGroup.POST("", songCtrl.Upload)
		// GET /songs/recommendations?mood=&energy=&valence=&limit=
		songGroup.GET("/recommendations", songCtrl.Recommend)
		// POST /songs/playback
		songGroup.POST("/playback", songCtrl.RecordPlayback)
		// PUT /songs/:id
		songGroup.PUT("/:id", songCtrl.Update)
		// DELETE /songs/:id
		songGroup.DELETE("/:id", songCtrl.Delete)
		// POST /songs/:id/play
		songGroup.POST("/:id/play", songCtrl.Play)
	}
}
