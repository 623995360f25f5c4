package controller

import (
	"fmt"
	"net/http"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moodtunes/moodtunes-backend/domain"
	"github.com/moodtunes/moodtunes-backend/internal/audiofile"
)

type SongController struct {
	SongUsecase    domain.SongUsecase
	UploadDir      string
	MaxUploadBytes int64
}

// splitMoods parses the comma-separated moodTags form field.
func splitMoods(raw string) []domain.Mood {
	if raw == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	moods := make([]domain.Mood, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			moods = append(moods, domain.Mood(p))
		}
	}
	return moods
}

func (sc *SongController) Upload(c *gin.Context) {
	file, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{
			Success: false,
			Message: "audio file is required",
		})
		return
	}
	if file.Size > sc.MaxUploadBytes {
		c.JSON(http.StatusBadRequest, domain.ErrorResponse{
			Success: false,
			Message: fmt.Sprintf("file exceeds the %d byte limit", sc.MaxUploadBytes),
		})
		return
	}
	if err := audiofile.ValidateExtension(file.Filename); err != nil {
		respondError(c, err)
		return
	}

	name := fmt.Sprintf("%d_%s", time.Now().UnixNano(), filepath.Base(file.Filename))
	dst := filepath.Join(sc.UploadDir, name)
	if err := c.SaveUploadedFile(file, dst); err != nil {
		respondError(c, err)
		return
	}

	duration, _ := strconv.Atoi(c.PostForm("duration"))
	energy, _ := strconv.Atoi(c.PostForm("energy"))
	valence, _ := strconv.Atoi(c.PostForm("valence"))
	req := domain.SongUploadRequest{
		Title:    c.PostForm("title"),
		Artist:   c.PostForm("artist"),
		Album:    c.PostForm("album"),
		Genre:    domain.Genre(c.PostForm("genre")),
		MoodTags: splitMoods(c.PostForm("moodTags")),
		Language: c.PostForm("language"),
		Duration: duration,
		Energy:   energy,
		Valence:  valence,
		Tempo:    domain.Tempo(c.PostForm("tempo")),
		IsPublic: c.PostForm("isPublic") == "true",
		FilePath: dst,
	}

	song, err := sc.SongUsecase.Upload(c.Request.Context(), UserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, "song uploaded", song)
}

func (sc *SongController) Fetch(c *gin.Context) {
	filter := domain.SongFilter{
		Genre:    domain.Genre(c.Query("genre")),
		Mood:     domain.Mood(c.Query("mood")),
		Tempo:    domain.Tempo(c.Query("tempo")),
		Language: c.Query("language"),
		Search:   c.Query("search"),
		SortBy:   c.Query("sortBy"),
	}
	filter.Page, _ = strconv.Atoi(c.Query("page"))
	filter.Limit, _ = strconv.Atoi(c.Query("limit"))
	filter.SortDesc = c.Query("order") != "asc"

	songs, total, err := sc.SongUsecase.Fetch(c.Request.Context(), UserID(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", domain.NewPage(songs, filter.Page, filter.Limit, total))
}

func (sc *SongController) GetByID(c *gin.Context) {
	song, err := sc.SongUsecase.GetByID(c.Request.Context(), UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", song)
}

func (sc *SongController) Update(c *gin.Context) {
	var req domain.SongUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	song, err := sc.SongUsecase.Update(c.Request.Context(), UserID(c), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "song updated", song)
}

func (sc *SongController) Delete(c *gin.Context) {
	if err := sc.SongUsecase.Delete(c.Request.Context(), UserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "song deleted", nil)
}

func (sc *SongController) Play(c *gin.Context) {
	if err := sc.SongUsecase.IncrementPlayCount(c.Request.Context(), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "play counted", nil)
}

func (sc *SongController) Recommend(c *gin.Context) {
	energy, _ := strconv.Atoi(c.Query("energy"))
	valence, _ := strconv.Atoi(c.Query("valence"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	songs, err := sc.SongUsecase.Recommend(
		c.Request.Context(),
		UserID(c),
		domain.Mood(c.Query("mood")),
		energy,
		valence,
		limit,
	)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", songs)
}

func (sc *SongController) RecordPlayback(c *gin.Context) {
	var req domain.PlaybackRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	playback, err := sc.SongUsecase.RecordPlayback(c.Request.Context(), UserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, "playback recorded", playback)
}
