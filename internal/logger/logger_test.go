package logger_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jonesrussell/gosegment/internal/logger"
)

func TestNewWithDefaults(t *testing.T) {
	t.Parallel()

	log, err := logger.New(&logger.Config{})
	require.NoError(t, err)
	require.NotNil(t, log)

	// Field helpers must chain without panicking.
	log.WithComponent("test").
		WithError(errors.New("boom")).
		WithDuration(time.Second).
		Debug("chained fields", "key", "value")
}

func TestNewWithJSONEncoding(t *testing.T) {
	t.Parallel()

	log, err := logger.New(&logger.Config{
		Level:    logger.DebugLevel,
		Encoding: "json",
	})
	require.NoError(t, err)
	log.Info("json encoded", "n", 1)
}

func TestNoOpImplementsInterface(t *testing.T) {
	t.Parallel()

	var log logger.Interface = logger.NewNoOp()
	log.Info("ignored")
	require.Same(t, log, log.With("a", 1))
}
