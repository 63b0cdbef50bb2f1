package common

import "errors"

// Common command dependency errors.
var (
	// ErrLoggerRequired is returned when a command is built without a logger.
	ErrLoggerRequired = errors.New("logger is required")
	// ErrConfigRequired is returned when a command is built without configuration.
	ErrConfigRequired = errors.New("config is required")
	// ErrModelFlagConflict is returned when both --lang and --model are given.
	ErrModelFlagConflict = errors.New("specify either --lang or --model, not both")
	// ErrNoInput is returned when a command receives neither an argument nor stdin input.
	ErrNoInput = errors.New("no input text: pass an argument or pipe to stdin")
)
