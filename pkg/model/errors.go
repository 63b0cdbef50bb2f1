package model

import (
	"errors"
	"fmt"
)

// Common model loading errors.
var (
	// ErrUnavailable is returned when a requested vendored model is not
	// bundled into the binary or the language tag is unknown.
	ErrUnavailable = errors.New("model unavailable")

	// ErrInvalidFormat is returned when model data does not match the
	// expected category -> feature -> integer weight structure.
	ErrInvalidFormat = errors.New("invalid model format")
)

// FormatError reports a structural problem in model data.
type FormatError struct {
	Category string
	Err      error
}

func (e *FormatError) Error() string {
	if e.Category != "" {
		return fmt.Sprintf("invalid model format in category %q: %v", e.Category, e.Err)
	}
	return fmt.Sprintf("invalid model format: %v", e.Err)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is lets FormatError match ErrInvalidFormat in errors.Is chains.
func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidFormat
}

// UnavailableError reports a vendored model that cannot be loaded.
type UnavailableError struct {
	Language string
}

func (e *UnavailableError) Error() string {
	return fmt.Sprintf("no vendored model for language %q", e.Language)
}

// Is lets UnavailableError match ErrUnavailable in errors.Is chains.
func (e *UnavailableError) Is(target error) bool {
	return target == ErrUnavailable
}
