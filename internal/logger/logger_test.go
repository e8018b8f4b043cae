package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNew(t *testing.T) {
	t.Run("development defaults to debug", func(t *testing.T) {
		l, err := New("development", "")
		require.NoError(t, err)
		assert.True(t, l.Core().Enabled(zapcore.DebugLevel))
	})

	t.Run("production defaults to info", func(t *testing.T) {
		l, err := New("production", "")
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zapcore.DebugLevel))
		assert.True(t, l.Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("explicit level wins", func(t *testing.T) {
		l, err := New("development", "warn")
		require.NoError(t, err)
		assert.False(t, l.Core().Enabled(zapcore.InfoLevel))
	})

	t.Run("rejects unknown level", func(t *testing.T) {
		_, err := New("development", "loud")
		assert.Error(t, err)
	})
}
