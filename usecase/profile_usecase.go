package usecase

import (
	"context"
	"time"

	"github.com/moodtunes/moodtunes-backend/domain"
)

type profileUsecase struct {
	userRepository domain.UserRepository
	contextTimeout time.Duration
}

func NewProfileUsecase(userRepository domain.UserRepository, timeout time.Duration) domain.ProfileUsecase {
	return &profileUsecase{
		userRepository: userRepository,
		contextTimeout: timeout,
	}
}

func (pu *profileUsecase) GetProfile(ctx context.Context, userID string) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	oid, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	return pu.userRepository.GetByID(ctx, oid)
}

func (pu *profileUsecase) UpdatePreferences(ctx context.Context, userID string, prefs *domain.UserPreferences) (*domain.User, error) {
	ctx, cancel := context.WithTimeout(ctx, pu.contextTimeout)
	defer cancel()

	var fields []domain.FieldError
	if prefs.DefaultVolume < 0 || prefs.DefaultVolume > 100 {
		fields = append(fields, domain.FieldError{Field: "defaultVolume", Message: "must be between 0 and 100"})
	}
	if prefs.DetectionMode != "" && !prefs.DetectionMode.Valid() {
		fields = append(fields, domain.FieldError{Field: "detectionMode", Message: "unknown detection method"})
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields)
	}

	oid, err := parseID(userID)
	if err != nil {
		return nil, err
	}
	if err := pu.userRepository.UpdatePreferences(ctx, oid, *prefs); err != nil {
		return nil, err
	}
	return pu.userRepository.GetByID(ctx, oid)
}
