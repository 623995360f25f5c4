package controller

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/moodtunes/moodtunes-backend/domain"
)

type AnalyticsController struct {
	AnalyticsUsecase domain.AnalyticsUsecase
}

func days(c *gin.Context) int {
	d, _ := strconv.Atoi(c.Query("days"))
	return d
}

func (ac *AnalyticsController) Dashboard(c *gin.Context) {
	dashboard, err := ac.AnalyticsUsecase.Dashboard(c.Request.Context(), UserID(c), days(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", dashboard)
}

func (ac *AnalyticsController) MoodTrends(c *gin.Context) {
	trends, err := ac.AnalyticsUsecase.MoodTrends(
		c.Request.Context(),
		UserID(c),
		days(c),
		domain.TrendGranularity(c.Query("granularity")),
	)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", trends)
}

func (ac *AnalyticsController) ListeningPatterns(c *gin.Context) {
	patterns, err := ac.AnalyticsUsecase.ListeningPatterns(c.Request.Context(), UserID(c), days(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", patterns)
}

func (ac *AnalyticsController) PlaylistUsage(c *gin.Context) {
	usage, err := ac.AnalyticsUsecase.PlaylistUsage(c.Request.Context(), UserID(c), days(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", usage)
}

func (ac *AnalyticsController) GamePerformance(c *gin.Context) {
	performance, err := ac.AnalyticsUsecase.GamePerformance(c.Request.Context(), UserID(c), days(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", performance)
}

func (ac *AnalyticsController) Correlations(c *gin.Context) {
	correlations, err := ac.AnalyticsUsecase.Correlations(c.Request.Context(), UserID(c), days(c))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", correlations)
}
