package error

import (
	"errors"
	"net/http"

	"github.com/auditra/auditra/application/port/outbound"
)

type AppError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"status"`
}

func (e *AppError) Error() string {
	return e.Message
}

var (
	ErrBadRequest     = &AppError{Code: "BAD_REQUEST", Message: "Bad request", Status: http.StatusBadRequest}
	ErrUnauthorized   = &AppError{Code: "UNAUTHORIZED", Message: "Unauthorized", Status: http.StatusUnauthorized}
	ErrNotFound       = &AppError{Code: "NOT_FOUND", Message: "Not found", Status: http.StatusNotFound}
	ErrInternalServer = &AppError{Code: "INTERNAL_ERROR", Message: "Internal server error", Status: http.StatusInternalServerError}
)

func NewBadRequest(message string) *AppError {
	return &AppError{Code: "BAD_REQUEST", Message: message, Status: http.StatusBadRequest}
}

func NewUnauthorized(message string) *AppError {
	return &AppError{Code: "UNAUTHORIZED", Message: message, Status: http.StatusUnauthorized}
}

func NewNotFound(message string) *AppError {
	return &AppError{Code: "NOT_FOUND", Message: message, Status: http.StatusNotFound}
}

func NewInternalServer(message string) *AppError {
	return &AppError{Code: "INTERNAL_ERROR", Message: message, Status: http.StatusInternalServerError}
}

// MapError translates store-layer failures into the HTTP error
// catalog. Corrupt payloads and rejected writes keep distinct codes so
// the admin UI can tell "the log is unreadable" from "the deletion did
// not take effect".
func MapError(err error) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}

	switch {
	case errors.Is(err, outbound.ErrCorruptPayload):
		return &AppError{Code: "LOG_CORRUPT", Message: "Activity log could not be read", Status: http.StatusInternalServerError}
	case errors.Is(err, outbound.ErrWriteFailed):
		return &AppError{Code: "WRITE_FAILED", Message: "Deletion did not take effect", Status: http.StatusBadGateway}
	case errors.Is(err, outbound.ErrNoRecords):
		return NewNotFound("No activity records found")
	default:
		return NewInternalServer("An unexpected error occurred")
	}
}
