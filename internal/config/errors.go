// Package config provides configuration management for the gosegment
// application.
package config

import (
	"errors"
	"fmt"
)

// Common configuration errors
var (
	// ErrConfigInvalid is returned when the configuration is invalid
	ErrConfigInvalid = errors.New("invalid configuration")

	// ErrConfigLoadFailed is returned when loading the configuration fails
	ErrConfigLoadFailed = errors.New("failed to load configuration")
)

// ValidationError represents an error in configuration validation
type ValidationError struct {
	Field  string
	Value  any
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid config: field %q with value %v: %s", e.Field, e.Value, e.Reason)
}

// Is lets ValidationError match ErrConfigInvalid in errors.Is chains.
func (e *ValidationError) Is(target error) bool {
	return target == ErrConfigInvalid
}

// LoadError represents an error loading configuration
type LoadError struct {
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("failed to load config: %v", e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Is lets LoadError match ErrConfigLoadFailed in errors.Is chains.
func (e *LoadError) Is(target error) bool {
	return target == ErrConfigLoadFailed
}
