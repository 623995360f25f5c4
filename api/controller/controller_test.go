package controller

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/moodtunes/moodtunes-backend/domain"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func testContext() (*gin.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c, _ := gin.CreateTestContext(rec)
	c.Request = httptest.NewRequest(http.MethodGet, "/test", nil)
	return c, rec
}

func TestRespondErrorMapsAppError(t *testing.T) {
	c, rec := testContext()

	respondError(c, domain.NewNotFoundError("song not found"))

	assert.Equal(t, http.StatusNotFound, rec.Code)
	var body domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.False(t, body.Success)
	assert.Equal(t, "song not found", body.Message)
}

func TestRespondErrorIncludesFieldErrors(t *testing.T) {
	c, rec := testContext()

	respondError(c, domain.NewValidationError([]domain.FieldError{
		{Field: "mood", Message: "unknown mood"},
		{Field: "intensity", Message: "must be between 1 and 10"},
	}))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	var body domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Errors, 2)
	assert.Equal(t, "mood", body.Errors[0].Field)
}

func TestRespondErrorHidesInternalDetail(t *testing.T) {
	c, rec := testContext()

	respondError(c, errors.New("mongo: connection reset"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	var body domain.ErrorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "internal server error", body.Message)
	assert.NotContains(t, rec.Body.String(), "mongo")
}

func TestRespondOKEnvelope(t *testing.T) {
	c, rec := testContext()

	respondOK(c, "done", map[string]int{"n": 1})

	assert.Equal(t, http.StatusOK, rec.Code)
	var body domain.SuccessResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, "done", body.Message)
}

func TestUserIDReadsMiddlewareValue(t *testing.T) {
	c, _ := testContext()
	c.Set("x-user-id", "abc123")
	assert.Equal(t, "abc123", UserID(c))
}
