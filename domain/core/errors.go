package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Validation errors
	ErrInvalidAlpha  = errors.New("alpha must be in (0, 1]")
	ErrInvalidPValue = errors.New("invalid p-value")
	ErrEmptyFamily   = errors.New("p-value family is empty")

	// Lookup errors
	ErrUnknownMethod = errors.New("unknown correction method")
	ErrUnknownFormat = errors.New("unknown report format")
)

// NewAlphaError reports the offending alpha value
func NewAlphaError(alpha float64) error {
	return fmt.Errorf("%w: got %v", ErrInvalidAlpha, alpha)
}

// NewPValueError reports a cell or argument that is not a number
func NewPValueError(location, raw string) error {
	return fmt.Errorf("%w at %s: %q", ErrInvalidPValue, location, raw)
}

// NewUnknownMethodError reports an unrecognised method name
func NewUnknownMethodError(name string) error {
	return fmt.Errorf("%w: %s", ErrUnknownMethod, name)
}

// IsValidationError reports whether err stems from bad caller input
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidAlpha) ||
		errors.Is(err, ErrInvalidPValue) ||
		errors.Is(err, ErrEmptyFamily)
}
