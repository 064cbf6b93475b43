package utils

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AppError carries an HTTP status alongside a user-facing message so
// controllers can translate service failures without inspecting the
// store or filesystem layers.
type AppError struct {
	Status  int
	Message string
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func NotFoundError(message string) *AppError {
	return &AppError{Status: http.StatusNotFound, Message: message}
}

func BadRequestError(message string) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message}
}

func ConflictError(message string) *AppError {
	return &AppError{Status: http.StatusConflict, Message: message}
}

func UnauthorizedError(message string) *AppError {
	return &AppError{Status: http.StatusUnauthorized, Message: message}
}

// FormatError flags a corrupt or unreadable archive.
func FormatError(message string, err error) *AppError {
	return &AppError{Status: http.StatusBadRequest, Message: message, Err: err}
}

// IOFailure flags a disk read/write failure; the caller must not have
// left a dangling store record behind.
func IOFailure(message string, err error) *AppError {
	return &AppError{Status: http.StatusInternalServerError, Message: message, Err: err}
}

// ServiceUnavailableError flags an unreachable downstream pipeline.
func ServiceUnavailableError(message string, err error) *AppError {
	return &AppError{Status: http.StatusServiceUnavailable, Message: message, Err: err}
}

// HandleError writes the response for a service-layer error. Anything
// that is not an AppError is reported as a generic internal failure so
// store details never leak to clients.
func HandleError(c *gin.Context, err error) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		ErrorResponse(c, appErr.Status, appErr.Message, nil)
		return
	}
	LogError("unhandled error", err)
	InternalServerErrorResponse(c, "An unexpected error occurred")
}
