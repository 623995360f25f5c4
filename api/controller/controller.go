// Package controller holds the gin handlers. Handlers bind input, call one
// usecase method and translate the result into the response envelope.
package controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/moodtunes/moodtunes-backend/domain"
)

const userIDKey = "x-user-id"

// UserID returns the authenticated user id set by the JWT middleware.
func UserID(c *gin.Context) string {
	return c.GetString(userIDKey)
}

func respondOK(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusOK, domain.SuccessResponse{Success: true, Message: message, Data: data})
}

func respondCreated(c *gin.Context, message string, data interface{}) {
	c.JSON(http.StatusCreated, domain.SuccessResponse{Success: true, Message: message, Data: data})
}

// respondError maps a usecase error onto the envelope. Anything that is not
// an AppError is logged server-side and surfaced as a generic 500.
func respondError(c *gin.Context, err error) {
	var appErr *domain.AppError
	if !errors.As(err, &appErr) {
		appErr = domain.NewServerError(err)
	}
	if appErr.Status == http.StatusInternalServerError {
		log.Printf("request failed: %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	}
	c.JSON(appErr.Status, domain.ErrorResponse{
		Success: false,
		Message: appErr.Message,
		Errors:  appErr.Fields,
	})
}

// respondBindError covers gin binding failures so malformed JSON gets the
// same envelope as domain validation.
func respondBindError(c *gin.Context, err error) {
	c.JSON(http.StatusBadRequest, domain.ErrorResponse{
		Success: false,
		Message: "invalid request body: " + err.Error(),
	})
}
