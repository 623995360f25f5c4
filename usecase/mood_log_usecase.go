package usecase

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/moodtunes/moodtunes-backend/domain"
)

const maxNotesLength = 500

type moodLogUsecase struct {
	moodLogRepository domain.MoodLogRepository
	contextTimeout    time.Duration
	now               func() time.Time
}

func NewMoodLogUsecase(moodLogRepository domain.MoodLogRepository, timeout time.Duration) domain.MoodLogUsecase {
	return &moodLogUsecase{
		moodLogRepository: moodLogRepository,
		contextTimeout:    timeout,
		now:               func() time.Time { return time.Now().UTC() },
	}
}

func validateLogMood(req *domain.LogMoodRequest) []domain.FieldError {
	var fields []domain.FieldError
	if !req.Mood.Valid() {
		fields = append(fields, domain.FieldError{Field: "mood", Message: "unknown mood"})
	}
	if req.Intensity < 1 || req.Intensity > 10 {
		fields = append(fields, domain.FieldError{Field: "intensity", Message: "must be between 1 and 10"})
	}
	if !req.DetectionMethod.Valid() {
		fields = append(fields, domain.FieldError{Field: "detectionMethod", Message: "unknown detection method"})
	}
	if req.Confidence != nil && (*req.Confidence < 0 || *req.Confidence > 1) {
		fields = append(fields, domain.FieldError{Field: "confidence", Message: "must be between 0 and 1"})
	}
	if len(req.Notes) > maxNotesLength {
		fields = append(fields, domain.FieldError{
			Field:   "notes",
			Message: fmt.Sprintf("must not exceed %d characters", maxNotesLength),
		})
	}
	for _, trigger := range req.Triggers {
		if !trigger.Valid() {
			fields = append(fields, domain.FieldError{
				Field:   "triggers",
				Message: fmt.Sprintf("unknown trigger %q", trigger),
			})
		}
	}
	return fields
}

func (mu *moodLogUsecase) LogMood(ctx context.Context, userID string, req *domain.LogMoodRequest) (*domain.MoodLog, error) {
	ctx, cancel := context.WithTimeout(ctx, mu.contextTimeout)
	defer cancel()

	// Every violated field is reported, not just the first.
	if fields := validateLogMood(req); len(fields) > 0 {
		return nil, domain.NewValidationError(fields)
	}

	oid, err := parseID(userID)
	if err != nil {
		return nil, err
	}

	confidence := 1.0
	if req.Confidence != nil {
		confidence = *req.Confidence
	}

	moodContext := domain.MoodContext{}
	if req.Context != nil {
		moodContext = *req.Context
	}
	if moodContext.TimeOfDay == "" {
		moodContext.TimeOfDay = domain.TimeOfDayForHour(mu.now().Hour())
	}

	log := &domain.MoodLog{
		UserID:          oid,
		Mood:            req.Mood,
		Intensity:       req.Intensity,
		DetectionMethod: req.DetectionMethod,
		Confidence:      confidence,
		Notes:           req.Notes,
		Context:         moodContext,
		Triggers:        req.Triggers,
		SessionID:       req.SessionID,
	}

	// Embed the immediately preceding observation so transition analysis
	// never needs a self-join.
	previous, err := mu.moodLogRepository.GetLatest(ctx, oid)
	if err != nil {
		return nil, err
	}
	if previous != nil {
		log.PreviousMood = &domain.MoodSnapshot{
			Mood:      previous.Mood,
			Intensity: previous.Intensity,
			Timestamp: previous.CreatedAt,
		}
	}

	if err := mu.moodLogRepository.Create(ctx, log); err != nil {
		return nil, err
	}
	return log, nil
}

func (mu *moodLogUsecase) Fetch(ctx context.Context, userID string, filter domain.MoodLogFilter) ([]domain.MoodLog, int64, error) {
	ctx, cancel := context.WithTimeout(ctx, mu.contextTimeout)
	defer cancel()

	oid, err := parseID(userID)
	if err != nil {
		return nil, 0, err
	}
	filter.UserID = oid
	filter.Page, filter.Limit = normalizePage(filter.Page, filter.Limit)
	return mu.moodLogRepository.Fetch(ctx, filter)
}

func (mu *moodLogUsecase) getOwned(ctx context.Context, userID, logID string) (*domain.MoodLog, error) {
	logOID, err := parseID(logID)
	if err != nil {
		return nil, err
	}
	log, err := mu.moodLogRepository.GetByID(ctx, logOID)
	if err != nil {
		return nil, err
	}
	if log.UserID.Hex() != userID {
		return nil, domain.NewAuthorizationError("mood log belongs to another user")
	}
	return log, nil
}

func (mu *moodLogUsecase) GetByID(ctx context.Context, userID, logID string) (*domain.MoodLog, error) {
	ctx, cancel := context.WithTimeout(ctx, mu.contextTimeout)
	defer cancel()
	return mu.getOwned(ctx, userID, logID)
}

// Update touches only the mutable fields; mood, intensity, method and the
// previous-mood snapshot are write-once.
func (mu *moodLogUsecase) Update(ctx context.Context, userID, logID string, req *domain.MoodLogUpdateRequest) (*domain.MoodLog, error) {
	ctx, cancel := context.WithTimeout(ctx, mu.contextTimeout)
	defer cancel()

	log, err := mu.getOwned(ctx, userID, logID)
	if err != nil {
		return nil, err
	}

	update := bson.M{"updated_at": mu.now()}
	if req.Notes != nil {
		if len(*req.Notes) > maxNotesLength {
			return nil, domain.NewValidationError([]domain.FieldError{{
				Field:   "notes",
				Message: fmt.Sprintf("must not exceed %d characters", maxNotesLength),
			}})
		}
		update["notes"] = *req.Notes
	}
	if req.Context != nil {
		update["context"] = *req.Context
	}
	if req.Triggers != nil {
		for _, trigger := range req.Triggers {
			if !trigger.Valid() {
				return nil, domain.NewValidationError([]domain.FieldError{{
					Field:   "triggers",
					Message: fmt.Sprintf("unknown trigger %q", trigger),
				}})
			}
		}
		update["triggers"] = req.Triggers
	}

	if err := mu.moodLogRepository.Update(ctx, log.ID, update); err != nil {
		return nil, err
	}
	return mu.moodLogRepository.GetByID(ctx, log.ID)
}

func (mu *moodLogUsecase) Delete(ctx context.Context, userID, logID string) error {
	ctx, cancel := context.WithTimeout(ctx, mu.contextTimeout)
	defer cancel()

	log, err := mu.getOwned(ctx, userID, logID)
	if err != nil {
		return err
	}
	return mu.moodLogRepository.Delete(ctx, log.ID)
}
