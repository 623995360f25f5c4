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

func NewPlaylistRouter(timeout time.Duration, db mongo.Database, optional, protected *gin.RouterGroup) {
	playlistRepo := repository.NewPlaylistRepository(db, domain.CollectionPlaylist)
	songRepo := repository.NewSongRepository(db, domain.CollectionSong)

	playlistCtrl := &controller.PlaylistController{
		PlaylistUsecase: usecase.NewPlaylistUsecase(playlistRepo, songRepo, timeout),
	}

	readGroup := optional.Group("/playlists")
	{
		// GET /playlists?mood=&owned=true&page=&limit=
		readGroup.GET("", playlistCtrl.Fetch)
		// GET /playlists/:id
		readGroup.GET("/:id", playlistCtrl.GetByID)
	}

	playlistGroup := protected.Group("/playlists")
	{
		// POST /playlists
		playlistGroup.POST("", playlistCtrl.Create)
		// POST /playlists/generate
		playlistGroup.POST("/generate", playlistCtrl.AutoGenerate)
		// PUT /playlists/:id
		playlistGroup.PUT("/:id", playlistCtrl.Update)
		// DELETE /playlists/:id
		playlistGroup.DELETE("/:id", playlistCtrl.Delete)
		// POST /playlists/:id/songs/:songId
		playlistGroup.POST("/:id/songs/:songId", playlistCtrl.AddSong)
		// DELETE /playlists/:id/songs/:songId
		playlistGroup.DELETE("/:id/songs/:songId", playlistCtrl.RemoveSong)
		// POST /playlists/:id/play
		playlistGroup.POST("/:id/play", playlistCtrl.Play)
		// POST /playlists/:id/follow
		playlistGroup.POST("/:id/follow", playlistCtrl.Follow)
		// DELETE /playlists/:id/follow
		playlistGroup.DELETE("/:id/follow", playlistCtrl.Unfollow)
	}
}
