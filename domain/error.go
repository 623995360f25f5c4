package domain

import (
	"fmt"
	"net/http"
)

// FieldError reports one violated constraint on one input field. Validation
// collects every violation before failing, not just the first.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type AppError struct {
	Code    string       `json:"code"`
	Status  int          `json:"-"`
	Message string       `json:"message"`
	Fields  []FieldError `json:"errors,omitempty"`
	Err     error        `json:"-"`
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error { return e.Err }

func NewValidationError(fields []FieldError) *AppError {
	return &AppError{
		Code:    "VALIDATION_ERROR",
		Status:  http.StatusBadRequest,
		Message: "validation failed",
		Fields:  fields,
	}
}

func NewAuthenticationError(message string) *AppError {
	return &AppError{Code: "AUTHENTICATION_ERROR", Status: http.StatusUnauthorized, Message: message}
}

func NewAuthorizationError(message string) *AppError {
	return &AppError{Code: "AUTHORIZATION_ERROR", Status: http.StatusForbidden, Message: message}
}

func NewNotFoundError(message string) *AppError {
	return &AppError{Code: "NOT_FOUND", Status: http.StatusNotFound, Message: message}
}

func NewConflictError(message string) *AppError {
	return &AppError{Code: "CONFLICT", Status: http.StatusConflict, Message: message}
}

// NewServerError wraps an unexpected failure. The wrapped error stays
// server-side; clients only ever see the generic message.
func NewServerError(err error) *AppError {
	return &AppError{
		Code:    "SERVER_ERROR",
		Status:  http.StatusInternalServerError,
		Message: "internal server error",
		Err:     err,
	}
}
