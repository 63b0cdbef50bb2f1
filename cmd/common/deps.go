// Package common provides shared utilities for command implementations.
package common

import (
	"github.com/jonesrussell/gosegment/internal/config"
	"github.com/jonesrussell/gosegment/internal/logger"
)

// CommandDeps holds common dependencies for all commands.
// Use this instead of context.Value for type-safe dependency injection.
type CommandDeps struct {
	Logger logger.Interface
	Config *config.Config
}

// NewCommandDeps loads the effective configuration and builds the logger
// every command shares.
func NewCommandDeps() (CommandDeps, error) {
	cfg, err := config.Load()
	if err != nil {
		return CommandDeps{}, err
	}

	log, err := logger.New(&logger.Config{
		Level:       logger.Level(cfg.Logger.Level),
		Encoding:    cfg.Logger.Encoding,
		Development: cfg.App.Debug,
	})
	if err != nil {
		return CommandDeps{}, err
	}

	return CommandDeps{Logger: log, Config: cfg}, nil
}

// Validate ensures all required dependencies are present.
func (d CommandDeps) Validate() error {
	if d.Logger == nil {
		return ErrLoggerRequired
	}
	if d.Config == nil {
		return ErrConfigRequired
	}
	return nil
}
