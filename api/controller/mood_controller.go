package controller

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/moodtunes/moodtunes-backend/domain"
)

type MoodController struct {
	MoodLogUsecase   domain.MoodLogUsecase
	AnalyticsUsecase domain.AnalyticsUsecase
	Detector         domain.MoodDetector
}

// Detect suggests a mood for free-text input. Nothing is persisted; the
// client confirms the verdict through LogMood.
func (mc *MoodController) Detect(c *gin.Context) {
	var req domain.MoodDetectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	detection, err := mc.Detector.Detect(c.Request.Context(), req.Input)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", detection)
}

func (mc *MoodController) LogMood(c *gin.Context) {
	var req domain.LogMoodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	moodLog, err := mc.MoodLogUsecase.LogMood(c.Request.Context(), UserID(c), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondCreated(c, "mood logged", moodLog)
}

func (mc *MoodController) Fetch(c *gin.Context) {
	filter := domain.MoodLogFilter{
		Mood:   domain.Mood(c.Query("mood")),
		Method: domain.DetectionMethod(c.Query("detectionMethod")),
		SortBy: c.Query("sortBy"),
	}
	filter.Page, _ = strconv.Atoi(c.Query("page"))
	filter.Limit, _ = strconv.Atoi(c.Query("limit"))
	filter.SortDesc = c.Query("order") != "asc"
	if from := c.Query("from"); from != "" {
		if t, err := time.Parse(time.RFC3339, from); err == nil {
			filter.From = t
		}
	}
	if to := c.Query("to"); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			filter.To = t
		}
	}

	logs, total, err := mc.MoodLogUsecase.Fetch(c.Request.Context(), UserID(c), filter)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", domain.NewPage(logs, filter.Page, filter.Limit, total))
}

func (mc *MoodController) GetByID(c *gin.Context) {
	moodLog, err := mc.MoodLogUsecase.GetByID(c.Request.Context(), UserID(c), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", moodLog)
}

func (mc *MoodController) Update(c *gin.Context) {
	var req domain.MoodLogUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, err)
		return
	}

	moodLog, err := mc.MoodLogUsecase.Update(c.Request.Context(), UserID(c), c.Param("id"), &req)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "mood log updated", moodLog)
}

func (mc *MoodController) Delete(c *gin.Context) {
	if err := mc.MoodLogUsecase.Delete(c.Request.Context(), UserID(c), c.Param("id")); err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "mood log deleted", nil)
}

func (mc *MoodController) Trends(c *gin.Context) {
	days, _ := strconv.Atoi(c.Query("days"))
	granularity := domain.TrendGranularity(c.Query("granularity"))

	trends, err := mc.AnalyticsUsecase.MoodTrends(c.Request.Context(), UserID(c), days, granularity)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", trends)
}

func (mc *MoodController) Frequency(c *gin.Context) {
	days, _ := strconv.Atoi(c.Query("days"))

	frequency, err := mc.AnalyticsUsecase.MoodFrequency(c.Request.Context(), UserID(c), days)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", frequency)
}

func (mc *MoodController) Stats(c *gin.Context) {
	days, _ := strconv.Atoi(c.Query("days"))

	stats, err := mc.AnalyticsUsecase.MoodStats(c.Request.Context(), UserID(c), days)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", stats)
}

func (mc *MoodController) Insights(c *gin.Context) {
	days, _ := strconv.Atoi(c.Query("days"))

	insights, err := mc.AnalyticsUsecase.MoodInsights(c.Request.Context(), UserID(c), days)
	if err != nil {
		respondError(c, err)
		return
	}
	respondOK(c, "", insights)
}
