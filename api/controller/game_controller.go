package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/moodtunes/moodtunes-backend/domain"
)

type GameController struct {
	GameUsecase domain.GameUsecase
}

func (gc *GameController) Fetch(c *gin.Context) {
	filter := domain.GameFilter{
		Type:       domain.GameType(c.Query("type")),
		Difficulty: c.Query("difficulty"),
		Mood:       domain.Mood(c.Query("mood")),
	}
	filter.Page, _ = strconv.Atoi(c.Query("page"))
	filter.Limit, _ = strconv.Atoi(c.Query("limit"))

	games, total, err := gc.GameUsecase.Fetch(c.Request.Context(), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", domain.NewPage(games, filter.Page, filter.Limit, total))
}

func (gc *GameController) GetByID(c *gin.Context) {
	game, err := gc.GameUsecase.GetByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", game)
}

func (gc *GameController) Recommend(c *gin.Context) {
	limit, _ := strconv.Atoi(c.Query("limit"))
	games, err := gc.GameUsecase.RecommendByMood(c.Request.Context(), domain.Mood(c.Query("mood")), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", games)
}

func (gc *GameController) StartSession(c *gin.Context) {
	var req domain.StartSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}
	if id := c.Param("id"); id != "" {
		req.GameID = id
	}

	session, err := gc.GameUsecase.StartSession(c.Request.Context(), UserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, "session started", session)
}

func (gc *GameController) CompleteSession(c *gin.Context) {
	var req domain.CompleteSessionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	session, err := gc.GameUsecase.CompleteSession(c.Request.Context(), UserID(c), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "session completed", session)
}

func (gc *GameController) GetSession(c *gin.Context) {
	session, err := gc.GameUsecase.GetSession(c.Request.Context(), UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", session)
}

func (gc *GameController) FetchSessions(c *gin.Context) {
	page, _ := strconv.Atoi(c.Query("page"))
	limit, _ := strconv.Atoi(c.Query("limit"))

	sessions, total, err := gc.GameUsecase.FetchSessions(c.Request.Context(), UserID(c), page, limit)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", domain.NewPage(sessions, page, limit, total))
}

func (gc *GameController) Rate(c *gin.Context) {
	var req domain.RateGameRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	game, err := gc.GameUsecase.Rate(c.Request.Context(), UserID(c), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "rating recorded", game)
}

func (gc *GameController) UserStats(c *gin.Context) {
	stats, err := gc.GameUsecase.UserStats(c.Request.Context(), UserID(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", stats)
}
