package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/moodtunes/moodtunes-backend/domain"
	"github.com/moodtunes/moodtunes-backend/internal/tokenutil"
)

const testSecret = "test-secret"

func newTestRouter() (*gin.Engine, *string) {
	gin.SetMode(gin.TestMode)
	var seenUserID string
	engine := gin.New()
	engine.GET("/protected", JwtAuthMiddleware(testSecret), func(c *gin.Context) {
		seenUserID = c.GetString("x-user-id")
		c.Status(http.StatusOK)
	})
	return engine, &seenUserID
}

func TestMiddlewareAcceptsValidToken(t *testing.T) {
	engine, seenUserID := newTestRouter()

	user := &domain.User{ID: primitive.NewObjectID(), Name: "Ada"}
	token, err := tokenutil.CreateAccessToken(user, testSecret, 1)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, user.ID.Hex(), *seenUserID)
}

func TestMiddlewareRejectsMissingHeader(t *testing.T) {
	engine, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareRejectsWrongSecret(t *testing.T) {
	engine, _ := newTestRouter()

	user := &domain.User{ID: primitive.NewObjectID()}
	token, err := tokenutil.CreateAccessToken(user, "other-secret", 1)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOptionalMiddlewareAllowsAnonymous(t *testing.T) {
	gin.SetMode(gin.TestMode)
	var seenUserID string
	engine := gin.New()
	engine.GET("/read", OptionalJwtAuthMiddleware(testSecret), func(c *gin.Context) {
		seenUserID = c.GetString("x-user-id")
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/read", nil)
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, seenUserID)
}

func TestOptionalMiddlewareStillRejectsBadToken(t *testing.T) {
	gin.SetMode(gin.TestMode)
	engine := gin.New()
	engine.GET("/read", OptionalJwtAuthMiddleware(testSecret), func(c *gin.Context) {
		c.Status(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/read", nil)
	req.Header.Set("Authorization", "Bearer garbage")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareRejectsMalformedHeader(t *testing.T) {
	engine, _ := newTestRouter()

	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	req.Header.Set("Authorization", "Token abc")
	rec := httptest.NewRecorder()
	engine.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
