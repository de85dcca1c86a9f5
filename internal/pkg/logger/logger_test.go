package logger

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// resetLogger resets the global logger state for testing
func resetLogger() {
	logger = nil
	initOnce = sync.Once{}
}

func TestInit(t *testing.T) {
	t.Run("successful initialization with default options", func(t *testing.T) {
		resetLogger()
		err := Init()
		require.NoError(t, err)
		assert.NotNil(t, logger)
	})

	t.Run("successful initialization with explicit level", func(t *testing.T) {
		resetLogger()
		err := Init(WithLevel("debug"))
		require.NoError(t, err)
		assert.NotNil(t, logger)
	})

	t.Run("error with invalid level", func(t *testing.T) {
		resetLogger()
		err := Init(WithLevel("invalid"))
		assert.Error(t, err)
		assert.Nil(t, logger)
	})

	t.Run("init only once", func(t *testing.T) {
		resetLogger()

		err := Init(WithLevel("debug"))
		require.NoError(t, err)
		first := logger

		err = Init(WithLevel("error"))
		require.NoError(t, err)
		assert.Same(t, first, logger)
	})
}

func TestLoggingFunctions(t *testing.T) {
	resetLogger()
	require.NoError(t, Init(WithLevel("debug")))

	ctx := t.Context()

	t.Run("logging helpers do not panic", func(t *testing.T) {
		assert.NotPanics(t, func() {
			Debug(ctx, "debug message", "key", "value")
			Info(ctx, "info message", "key", "value")
			Warn(ctx, "warn message", "key", "value")
			Error(ctx, "error message", "key", "value")
		})
	})

	t.Run("panic helper panics", func(t *testing.T) {
		assert.Panics(t, func() {
			Panic(ctx, "panic message")
		})
	})
}
