package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLogger(t *testing.T) {
	debug, err := NewLogger("debug")
	require.NoError(t, err)
	assert.True(t, debug.Core().Enabled(zapcore.DebugLevel))

	release, err := NewLogger("release")
	require.NoError(t, err)
	assert.False(t, release.Core().Enabled(zapcore.DebugLevel))
	assert.True(t, release.Core().Enabled(zapcore.InfoLevel))
}
