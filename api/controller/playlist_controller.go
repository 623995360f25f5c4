package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/moodtunes/moodtunes-backend/domain"
)

type PlaylistController struct {
	PlaylistUsecase domain.PlaylistUsecase
}

func (pc *PlaylistController) Create(c *gin.Context) {
	var req domain.PlaylistCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	playlist, err := pc.PlaylistUsecase.Create(c.Request.Context(), UserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, "playlist created", playlist)
}

func (pc *PlaylistController) Fetch(c *gin.Context) {
	filter := domain.PlaylistFilter{
		Mood: domain.Mood(c.Query("mood")),
	}
	filter.Page, _ = strconv.Atoi(c.Query("page"))
	filter.Limit, _ = strconv.Atoi(c.Query("limit"))
	if c.Query("owned") == "true" {
		if oid, err := primitive.ObjectIDFromHex(UserID(c)); err == nil {
			filter.OwnedBy = oid
		}
	}

	playlists, total, err := pc.PlaylistUsecase.Fetch(c.Request.Context(), UserID(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", domain.NewPage(playlists, filter.Page, filter.Limit, total))
}

func (pc *PlaylistController) GetByID(c *gin.Context) {
	playlist, err := pc.PlaylistUsecase.GetByID(c.Request.Context(), UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", playlist)
}

func (pc *PlaylistController) Update(c *gin.Context) {
	var req domain.PlaylistUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	playlist, err := pc.PlaylistUsecase.Update(c.Request.Context(), UserID(c), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "playlist updated", playlist)
}

func (pc *PlaylistController) Delete(c *gin.Context) {
	if err := pc.PlaylistUsecase.Delete(c.Request.Context(), UserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "playlist deleted", nil)
}

func (pc *PlaylistController) AutoGenerate(c *gin.Context) {
	var req domain.AutoGenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	playlist, err := pc.PlaylistUsecase.AutoGenerate(c.Request.Context(), UserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, "playlist generated", playlist)
}

func (pc *PlaylistController) AddSong(c *gin.Context) {
	playlist, err := pc.PlaylistUsecase.AddSong(c.Request.Context(), UserID(c), c.Param("id"), c.Param("songId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "song added", playlist)
}

func (pc *PlaylistController) RemoveSong(c *gin.Context) {
	playlist, err := pc.PlaylistUsecase.RemoveSong(c.Request.Context(), UserID(c), c.Param("id"), c.Param("songId"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "song removed", playlist)
}

func (pc *PlaylistController) Play(c *gin.Context) {
	if err := pc.PlaylistUsecase.IncrementPlayCount(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "play counted", nil)
}

func (pc *PlaylistController) Follow(c *gin.Context) {
	if err := pc.PlaylistUsecase.SetFollowing(c.Request.Context(), UserID(c), c.Param("id"), true); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "playlist followed", nil)
}

func (pc *PlaylistController) Unfollow(c *gin.Context) {
	if err := pc.PlaylistUsecase.SetFollowing(c.Request.Context(), UserID(c), c.Param("id"), false); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "playlist unfollowed", nil)
}
