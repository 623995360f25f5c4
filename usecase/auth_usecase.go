package usecase

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/moodtunes/moodtunes-backend/domain"
	"github.com/moodtunes/moodtunes-backend/internal/tokenutil"
)

// TokenConfig carries the signing material the auth usecases need; it is
// filled from the environment at wiring time.
type TokenConfig struct {
	AccessSecret       string
	AccessExpiryHours  int
	RefreshSecret      string
	RefreshExpiryHours int
}

func (tc TokenConfig) issue(user *domain.User) (*domain.AuthResponse, error) {
	accessToken, err := tokenutil.CreateAccessToken(user, tc.AccessSecret, tc.AccessExpiryHours)
	if err != nil {
		return nil, domain.NewServerError(err)
	}
	refreshToken, err := tokenutil.CreateRefreshToken(user, tc.RefreshSecret, tc.RefreshExpiryHours)
	if err != nil {
		return nil, domain.NewServerError(err)
	}
	return &domain.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		User:         user,
	}, nil
}

type signupUsecase struct {
	userRepository domain.UserRepository
	tokens         TokenConfig
	contextTimeout time.Duration
}

func NewSignupUsecase(userRepository domain.UserRepository, tokens TokenConfig, timeout time.Duration) domain.SignupUsecase {
	return &signupUsecase{
		userRepository: userRepository,
		tokens:         tokens,
		contextTimeout: timeout,
	}
}

func (su *signupUsecase) Signup(ctx context.Context, req *domain.SignupRequest) (*domain.AuthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, su.contextTimeout)
	defer cancel()

	if _, err := su.userRepository.GetByEmail(ctx, req.Email); err == nil {
		return nil, domain.NewConflictError("user already exists with the given email")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.NewServerError(err)
	}

	user := &domain.User{
		Name:        req.Name,
		Email:       req.Email,
		Password:    string(hashed),
		Preferences: domain.DefaultPreferences(),
	}
	if err := su.userRepository.Create(ctx, user); err != nil {
		return nil, domain.NewServerError(err)
	}

	return su.tokens.issue(user)
}

type loginUsecase struct {
	userRepository domain.UserRepository
	tokens         TokenConfig
	contextTimeout time.Duration
}

func NewLoginUsecase(userRepository domain.UserRepository, tokens TokenConfig, timeout time.Duration) domain.LoginUsecase {
	return &loginUsecase{
		userRepository: userRepository,
		tokens:         tokens,
		contextTimeout: timeout,
	}
}

func (lu *loginUsecase) Login(ctx context.Context, req *domain.LoginRequest) (*domain.AuthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, lu.contextTimeout)
	defer cancel()

	// One generic message for both unknown email and bad password.
	user, err := lu.userRepository.GetByEmail(ctx, req.Email)
	if err != nil {
		return nil, domain.NewAuthenticationError("invalid credentials")
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(req.Password)) != nil {
		return nil, domain.NewAuthenticationError("invalid credentials")
	}

	return lu.tokens.issue(user)
}

func (lu *loginUsecase) RefreshToken(ctx context.Context, req *domain.RefreshTokenRequest) (*domain.AuthResponse, error) {
	ctx, cancel := context.WithTimeout(ctx, lu.contextTimeout)
	defer cancel()

	id, err := tokenutil.ExtractIDFromToken(req.RefreshToken, lu.tokens.RefreshSecret)
	if err != nil {
		return nil, domain.NewAuthenticationError("invalid refresh token")
	}
	oid, err := parseID(id)
	if err != nil {
		return nil, domain.NewAuthenticationError("invalid refresh token")
	}
	user, err := lu.userRepository.GetByID(ctx, oid)
	if err != nil {
		return nil, domain.NewAuthenticationError("invalid refresh token")
	}

	return lu.tokens.issue(user)
}
