package errors

import (
	"errors"
	"fmt"
	"net/http"
)

type AppError struct {
	Code    string
	Message string
	Status  int
	Err     error
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

func New(code string, message string, status int, err error) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
		Status:  status,
		Err:     err,
	}
}

func NotFound(resource string, err error) *AppError {
	return &AppError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
		Status:  http.StatusNotFound,
		Err:     err,
	}
}

func BadRequest(message string, err error) *AppError {
	return &AppError{
		Code:    "BAD_REQUEST",
		Message: message,
		Status:  http.StatusBadRequest,
		Err:     err,
	}
}

func Unauthorized(message string, err error) *AppError {
	return &AppError{
		Code:    "UNAUTHORIZED",
		Message: message,
		Status:  http.StatusUnauthorized,
		Err:     err,
	}
}

func Internal(message string, err error) *AppError {
	return &AppError{
		Code:    "INTERNAL_ERROR",
		Message: message,
		Status:  http.StatusInternalServerError,
		Err:     err,
	}
}

func Forbidden(message string, err error) *AppError {
	return &AppError{
		Code:    "FORBIDDEN",
		Message: message,
		Status:  http.StatusForbidden,
		Err:     err,
	}
}

// ConfigMissing marks a required environment value absent at startup.
// It is fatal: Load returns it before any remote client is constructed.
func ConfigMissing(name string) *AppError {
	return &AppError{
		Code:    "CONFIG_MISSING",
		Message: fmt.Sprintf("required configuration value %s is not set", name),
		Status:  http.StatusInternalServerError,
		Err:     nil,
	}
}

// GenerationFailed wraps a text-generation call that failed or returned
// empty content.
func GenerationFailed(message string, err error) *AppError {
	return &AppError{
		Code:    "GENERATION_FAILED",
		Message: message,
		Status:  http.StatusBadGateway,
		Err:     err,
	}
}

// AnalysisFailed wraps an image-analysis call that failed, a file read
// that failed, or an empty analysis result.
func AnalysisFailed(message string, err error) *AppError {
	return &AppError{
		Code:    "ANALYSIS_FAILED",
		Message: message,
		Status:  http.StatusBadGateway,
		Err:     err,
	}
}

// CapabilityUnavailable marks a speech capability absent on the caller's
// host. Surfaced immediately, before any session or timer is started.
func CapabilityUnavailable(capability string) *AppError {
	return &AppError{
		Code:    "CAPABILITY_UNAVAILABLE",
		Message: fmt.Sprintf("%s is not available in this environment", capability),
		Status:  http.StatusServiceUnavailable,
		Err:     nil,
	}
}

// SpeechError wraps an error event reported by a recognition or
// synthesis session.
func SpeechError(message string, err error) *AppError {
	return &AppError{
		Code:    "SPEECH_ERROR",
		Message: message,
		Status:  http.StatusBadGateway,
		Err:     err,
	}
}

func Is(err error, code string) bool {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Code == code
	}
	return false
}
