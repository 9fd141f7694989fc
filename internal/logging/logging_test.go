package logging

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zapcore"
)

func TestNewLevels(t *testing.T) {
	logger, err := New("debug", true)
	require.NoError(t, err)
	assert.True(t, logger.Core().Enabled(zapcore.DebugLevel))

	logger, err = New("warn", false)
	require.NoError(t, err)
	assert.False(t, logger.Core().Enabled(zapcore.InfoLevel))
	assert.True(t, logger.Core().Enabled(zapcore.ErrorLevel))
}

func TestNewRejectsUnknownLevel(t *testing.T) {
	_, err := New("chatty", false)
	assert.Error(t, err)
}

func TestConsoleUsesDevelopmentConfig(t *testing.T) {
	config, err := newConfig("info", false)
	require.NoError(t, err)
	assert.True(t, config.Development)
	assert.Equal(t, "console", config.Encoding)
	assert.Equal(t, []string{"stderr"}, config.OutputPaths)

	config, err = newConfig("info", true)
	require.NoError(t, err)
	assert.False(t, config.Development)
	assert.Equal(t, "json", config.Encoding)

	logger, err := New("warn", false)
	require.NoError(t, err)
	assert.Panics(t, func() { logger.DPanic("development loggers panic") })
}
