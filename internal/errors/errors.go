package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"

	"github.com/AlexandreDecan/pcorr/domain/core"
)

// AppError represents a structured application error
type AppError struct {
	Code    string
	Message string
	Cause   error
}

func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// New creates a new AppError
func New(code, message string) *AppError {
	return &AppError{
		Code:    code,
		Message: message,
	}
}

// Wrap wraps an error with additional context, keeping the code of an inner AppError
func Wrap(err error, message string) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return &AppError{
			Code:    appErr.Code,
			Message: message,
			Cause:   err,
		}
	}
	return &AppError{
		Code:    codeFor(err),
		Message: message,
		Cause:   err,
	}
}

// Wrapf wraps an error with formatted additional context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) bool {
	var appErr *AppError
	return stderrors.As(err, &appErr)
}

// GetCode returns the error code if it's an AppError, otherwise returns "UNKNOWN"
func GetCode(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return "UNKNOWN"
}

// HTTPStatus maps an error to the status code the API responds with
func HTTPStatus(err error) int {
	switch GetCode(err) {
	case CodeInvalidInput, CodeConfigInvalid:
		return http.StatusBadRequest
	case CodeNotFound:
		return http.StatusNotFound
	case CodeUnsupportedFormat:
		return http.StatusUnsupportedMediaType
	default:
		return http.StatusInternalServerError
	}
}

// codeFor classifies domain sentinel errors
func codeFor(err error) string {
	switch {
	case core.IsValidationError(err):
		return CodeInvalidInput
	case stderrors.Is(err, core.ErrUnknownMethod):
		return CodeNotFound
	case stderrors.Is(err, core.ErrUnknownFormat):
		return CodeUnsupportedFormat
	default:
		return CodeInternalError
	}
}

// Predefined error codes
const (
	CodeConfigInvalid     = "CONFIG_INVALID"
	CodeInvalidInput      = "INVALID_INPUT"
	CodeNotFound          = "NOT_FOUND"
	CodeUnsupportedFormat = "UNSUPPORTED_FORMAT"
	CodeInternalError     = "INTERNAL_ERROR"
)

// Common error constructors
func ConfigInvalid(message string) *AppError {
	return New(CodeConfigInvalid, message)
}

func InvalidInput(message string, cause error) *AppError {
	return &AppError{
		Code:    CodeInvalidInput,
		Message: message,
		Cause:   cause,
	}
}

func UnsupportedFormat(format string) *AppError {
	return &AppError{
		Code:    CodeUnsupportedFormat,
		Message: fmt.Sprintf("unsupported format %q", format),
		Cause:   core.ErrUnknownFormat,
	}
}

func InternalError(message string) *AppError {
	return New(CodeInternalError, message)
}
