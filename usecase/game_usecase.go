package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"

	"github.com/moodtunes/moodtunes-backend/domain"
)

type gameUsecase struct {
	gameRepository    domain.GameRepository
	sessionRepository domain.GameSessionRepository
	contextTimeout    time.Duration
	now               func() time.Time
}

func NewGameUsecase(
	gameRepository domain.GameRepository,
	sessionRepository domain.GameSessionRepository,
	timeout time.Duration,
) domain.GameUsecase {
	return &gameUsecase{
		gameRepository:    gameRepository,
		sessionRepository: sessionRepository,
		contextTimeout:    timeout,
		now:               func() time.Time { return time.Now().UTC() },
	}
}

func (gu *gameUsecase) Fetch(ctx context.Context, filter domain.GameFilter) ([]domain.Game, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, gu.contextTimeout)
	defer cancel()

	var fields []domain.FieldError
	if filter.Type != "" && !filter.Type.Valid() {
		fields = append(fields, domain.FieldError{Field: "type", Message: "unknown game type"})
	}
	if filter.Mood != "" && !filter.Mood.Valid() {
		fields = append(fields, domain.FieldError{Field: "mood", Message: "unknown mood"})
	}
	if len(fields) > 0 {
		return nil, 0, domain.NewValidationError(fields)
	}
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	return gu.gameRepository.Fetch(ctx, filter)
}

func (gu *gameUsecase) GetByID(ctx context.Context, gameID string) (*domain.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, gu.contextTimeout)
	defer cancel()

	oid, err := parseID(gameID)
	if err != nil {
		return nil, err
	}
	return gu.gameRepository.GetByID(ctx, oid)
}

func (gu *gameUsecase) RecommendByMood(ctx context.Context, mood domain.Mood, limit int) ([]domain.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, gu.contextTimeout)
	defer cancel()

	if !mood.Valid() {
		return nil, domain.NewValidationError([]domain.FieldError{{Field: "mood", Message: "unknown mood"}})
	}
	if limit < 1 || limit > 50 {
		limit = 5
	}
	return gu.gameRepository.RecommendByMood(ctx, mood, limit)
}

func validateSnapshot(field string, snap domain.MoodSnapshot) []domain.FieldError {
	var fields []domain.FieldError
	if !snap.Mood.Valid() {
		fields = append(fields, domain.FieldError{Field: field + ".mood", Message: "unknown mood"})
	}
	if snap.Intensity < 1 || snap.Intensity > 10 {
		fields = append(fields, domain.FieldError{Field: field + ".intensity", Message: "must be between 1 and 10"})
	}
	return fields
}

func (gu *gameUsecase) StartSession(ctx context.Context, userID string, req *domain.StartSessionRequest) (*domain.GameSession, error) {
	ctx, cancel := context.WithTimeout(ctx, gu.contextTimeout)
	defer cancel()

	oid, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	gameOID, err := parseID(req.GameID)
	if err != nil {
		return nil, err
	}
	if fields := validateSnapshot("moodBefore", req.MoodBefore); len(fields) > 0 {
		return nil, domain.NewValidationError(fields)
	}

	game, err := gu.gameRepository.GetByID(ctx, gameOID)
	if err != nil {
		return nil, err
	}
	if !game.IsActive {
		return nil, domain.NewConflictError("game is not active")
	}

	played, err := gu.sessionRepository.CountByUserAndGame(ctx, oid, gameOID)
	if err != nil {
		return nil, err
	}
	avg, completed, err := gu.sessionRepository.AverageScore(ctx, oid, gameOID)
	if err != nil {
		return nil, err
	}

	gameData := domain.GameData{
		domain.GameDataExpectedDuration: game.EstimatedDuration,
	}
	if played == 0 {
		gameData[domain.GameDataIsFirstPlay] = true
	}
	if completed > 0 {
		gameData[domain.GameDataAverageScore] = avg
	}

	difficulty := req.Difficulty
	if difficulty == "" {
		difficulty = game.Difficulty
	}

	now := gu.now()
	snap := req.MoodBefore
	if snap.Timestamp.IsZero() {
		snap.Timestamp = now
	}
	session := &domain.GameSession{
		SessionID:  uuid.NewString(),
		UserID:     oid,
		GameID:     gameOID,
		GameType:   game.Type,
		Difficulty: difficulty,
		MoodBefore: snap,
		GameData:   gameData,
		StartedAt:  now,
	}
	if err := gu.sessionRepository.Create(ctx, session); err != nil {
		return nil, err
	}
	if err := gu.gameRepository.IncrementPlayCount(ctx, gameOID); err != nil {
		return nil, err
	}
	return session, nil
}

func (gu *gameUsecase) getOwnedSession(ctx context.Context, userID, sessionID string) (*domain.GameSession, error) {
	oid, err := parseID(sessionID)
	if err != nil {
		return nil, err
	}
	session, err := gu.sessionRepository.GetByID(ctx, oid)
	if err != nil {
		return nil, err
	}
	if session.UserID.Hex() != userID {
		return nil, domain.NewAuthorizationError("session belongs to another user")
	}
	return session, nil
}

// achievementsFor applies the unlock rules to a finished session.
func achievementsFor(session *domain.GameSession, improvement int) []domain.Achievement {
	var earned []domain.Achievement
	if first, ok := session.GameData[domain.GameDataIsFirstPlay].(bool); ok && first {
		earned = append(earned, domain.AchievementFirstPlay)
	}
	if session.MaxScore > 0 && session.Score == session.MaxScore {
		earned = append(earned, domain.AchievementPerfectScore)
	}
	if expected, ok := toInt(session.GameData[domain.GameDataExpectedDuration]); ok && expected > 0 {
		if session.Duration < expected/2 {
			earned = append(earned, domain.AchievementQuickFinish)
		}
	}
	if improvement >= 2 {
		earned = append(earned, domain.AchievementMoodLifter)
	}
	if avg, ok := toFloat(session.GameData[domain.GameDataAverageScore]); ok {
		if float64(session.Score) > avg {
			earned = append(earned, domain.AchievementHighScore)
		}
	}
	return earned
}

// toInt and toFloat tolerate the numeric widenings bson decoding produces
// for interface{} values.
func toInt(v interface{}) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int32:
		return int(n), true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}

func toFloat(v interface{}) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	}
	return 0, false
}

func (gu *gameUsecase) CompleteSession(ctx context.Context, userID, sessionID string, req *domain.CompleteSessionRequest) (*domain.GameSession, error) {
	ctx, cancel := context.WithTimeout(ctx, gu.contextTimeout)
	defer cancel()

	session, err := gu.getOwnedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if session.Completed {
		return nil, domain.NewConflictError("session is already completed")
	}

	var fields []domain.FieldError
	fields = append(fields, validateSnapshot("moodAfter", req.MoodAfter)...)
	if req.Score < 0 {
		fields = append(fields, domain.FieldError{Field: "score", Message: "must not be negative"})
	}
	if req.MaxScore < 0 {
		fields = append(fields, domain.FieldError{Field: "maxScore", Message: "must not be negative"})
	}
	if req.MaxScore > 0 && req.Score > req.MaxScore {
		fields = append(fields, domain.FieldError{Field: "score", Message: "must not exceed maxScore"})
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields)
	}

	now := gu.now()
	after := req.MoodAfter
	if after.Timestamp.IsZero() {
		after.Timestamp = now
	}

	session.Score = req.Score
	session.MaxScore = req.MaxScore
	session.Duration = int(now.Sub(session.StartedAt).Seconds())
	session.Completed = true
	session.CompletionPercentage = 100
	session.MoodAfter = &after
	session.CompletedAt = &now
	for k, v := range req.GameData {
		if session.GameData == nil {
			session.GameData = domain.GameData{}
		}
		session.GameData[k] = v
	}

	improvement := after.Intensity - session.MoodBefore.Intensity
	session.MoodImprovement = &improvement
	session.Achievements = achievementsFor(session, improvement)

	update := bson.M{
		"score":                 session.Score,
		"max_score":             session.MaxScore,
		"duration":              session.Duration,
		"completed":             true,
		"completion_percentage": session.CompletionPercentage,
		"mood_after":            session.MoodAfter,
		"mood_improvement":      session.MoodImprovement,
		"achievements":          session.Achievements,
		"game_data":             session.GameData,
		"completed_at":          session.CompletedAt,
	}
	if err := gu.sessionRepository.Update(ctx, session.ID, update); err != nil {
		return nil, err
	}
	return session, nil
}

func (gu *gameUsecase) GetSession(ctx context.Context, userID, sessionID string) (*domain.GameSession, error) {
	ctx, cancel := context.WithTimeout(ctx, gu.contextTimeout)
	defer cancel()

	return gu.getOwnedSession(ctx, userID, sessionID)
}

func (gu *gameUsecase) FetchSessions(ctx context.Context, userID string, page, limit int) ([]domain.GameSession, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, gu.contextTimeout)
	defer cancel()

	oid, err := parseID(userID)
	if err != nil {
		return nil, 0, err
	}
	page, limit = normalizePage(page, limit)
	return gu.sessionRepository.Fetch(ctx, oid, page, limit)
}

func (gu *gameUsecase) Rate(ctx context.Context, userID, gameID string, req *domain.RateGameRequest) (*domain.Game, error) {
	ctx, cancel := context.WithTimeout(ctx, gu.contextTimeout)
	defer cancel()

	oid, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	gameOID, err := parseID(gameID)
	if err != nil {
		return nil, err
	}
	if req.Rating < 1 || req.Rating > 5 {
		return nil, domain.NewValidationError([]domain.FieldError{{Field: "rating", Message: "must be between 1 and 5"}})
	}

	game, err := gu.gameRepository.GetByID(ctx, gameOID)
	if err != nil {
		return nil, err
	}
	done, err := gu.sessionRepository.HasCompleted(ctx, oid, gameOID)
	if err != nil {
		return nil, err
	}
	if !done {
		return nil, domain.NewAuthorizationError("complete a session before rating")
	}

	count := game.RatingCount + 1
	average := (game.RatingAverage*float64(game.RatingCount) + float64(req.Rating)) / float64(count)
	if err := gu.gameRepository.UpdateRating(ctx, gameOID, average, count); err != nil {
		return nil, err
	}
	game.RatingAverage = average
	game.RatingCount = count
	return game, nil
}

func (gu *gameUsecase) UserStats(ctx context.Context, userID string) (*domain.UserGameStats, error) {
	ctx, cancel := context.WithTimeout(ctx, gu.contextTimeout)
	defer cancel()

	oid, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	return gu.sessionRepository.UserStats(ctx, oid)
}
