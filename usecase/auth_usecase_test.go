package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"

	"github.com/moodtunes/moodtunes-backend/domain"
	"github.com/moodtunes/moodtunes-backend/domain/mocks"
	"github.com/moodtunes/moodtunes-backend/internal/tokenutil"
)

var testTokens = TokenConfig{
	AccessSecret:       "access-secret",
	AccessExpiryHours:  2,
	RefreshSecret:      "refresh-secret",
	RefreshExpiryHours: 168,
}

func TestSignupIssuesTokens(t *testing.T) {
	repo := new(mocks.UserRepository)
	uc := NewSignupUsecase(repo, testTokens, time.Second*2)

	repo.On("GetByEmail", mock.Anything, "ada@example.com").Return(nil, domain.NewNotFoundError("user not found"))
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	auth, err := uc.Signup(context.Background(), &domain.SignupRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "hunter2hunter2",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, auth.AccessToken)
	assert.NotEmpty(t, auth.RefreshToken)
	assert.Equal(t, "Ada", auth.User.Name)
	assert.Equal(t, domain.DefaultPreferences(), auth.User.Preferences)
	// The stored password is a bcrypt hash, never the plaintext.
	assert.NotEqual(t, "hunter2hunter2", auth.User.Password)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(auth.User.Password), []byte("hunter2hunter2")))
}

func TestSignupDuplicateEmailConflicts(t *testing.T) {
	repo := new(mocks.UserRepository)
	uc := NewSignupUsecase(repo, testTokens, time.Second*2)

	repo.On("GetByEmail", mock.Anything, "ada@example.com").Return(&domain.User{Email: "ada@example.com"}, nil)

	_, err := uc.Signup(context.Background(), &domain.SignupRequest{
		Name:     "Ada",
		Email:    "ada@example.com",
		Password: "hunter2hunter2",
	})

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "CONFLICT", appErr.Code)
	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestLoginWrongPassword(t *testing.T) {
	repo := new(mocks.UserRepository)
	uc := NewLoginUsecase(repo, testTokens, time.Second*2)

	hashed, err := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.MinCost)
	require.NoError(t, err)
	repo.On("GetByEmail", mock.Anything, "ada@example.com").Return(&domain.User{
		Email:    "ada@example.com",
		Password: string(hashed),
	}, nil)

	_, err = uc.Login(context.Background(), &domain.LoginRequest{
		Email:    "ada@example.com",
		Password: "wrong-password",
	})

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTHENTICATION_ERROR", appErr.Code)
	assert.Equal(t, "invalid credentials", appErr.Message)
}

func TestLoginUnknownEmailSameMessage(t *testing.T) {
	repo := new(mocks.UserRepository)
	uc := NewLoginUsecase(repo, testTokens, time.Second*2)

	repo.On("GetByEmail", mock.Anything, "ghost@example.com").Return(nil, domain.NewNotFoundError("user not found"))

	_, err := uc.Login(context.Background(), &domain.LoginRequest{
		Email:    "ghost@example.com",
		Password: "whatever",
	})

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	// Unknown email is indistinguishable from a bad password.
	assert.Equal(t, "invalid credentials", appErr.Message)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	repo := new(mocks.UserRepository)
	uc := NewLoginUsecase(repo, testTokens, time.Second*2)

	user := &domain.User{ID: primitive.NewObjectID(), Name: "Ada"}
	refresh, err := tokenutil.CreateRefreshToken(user, testTokens.RefreshSecret, testTokens.RefreshExpiryHours)
	require.NoError(t, err)

	repo.On("GetByID", mock.Anything, user.ID).Return(user, nil)

	auth, err := uc.RefreshToken(context.Background(), &domain.RefreshTokenRequest{RefreshToken: refresh})

	require.NoError(t, err)
	assert.NotEmpty(t, auth.AccessToken)
	assert.Equal(t, user.ID, auth.User.ID)
}

func TestRefreshTokenGarbageRejected(t *testing.T) {
	uc := NewLoginUsecase(new(mocks.UserRepository), testTokens, time.Second*2)

	_, err := uc.RefreshToken(context.Background(), &domain.RefreshTokenRequest{RefreshToken: "not-a-token"})

	var appErr *domain.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, "AUTHENTICATION_ERROR", appErr.Code)
}
