package common

import (
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input string
		want  slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"info", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
	}

	for _, tt := range tests {
		level, err := ParseLogLevel(tt.input)
		require.NoError(t, err)
		assert.Equal(t, tt.want, level)
	}
}

func TestParseLogLevelInvalid(t *testing.T) {
	_, err := ParseLogLevel("verbose")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestSetupLoggerFormats(t *testing.T) {
	assert.NoError(t, SetupLogger(slog.LevelInfo, "console"))
	assert.NoError(t, SetupLogger(slog.LevelInfo, "json"))
	assert.ErrorIs(t, SetupLogger(slog.LevelInfo, "xml"), ErrInvalidConfig)
}

func TestUserError(t *testing.T) {
	inner := errors.New("disk full")
	err := NewUserError("could not save the batch", inner)

	assert.Equal(t, "could not save the batch: disk full", err.Error())
	assert.ErrorIs(t, err, inner)

	bare := NewUserError("nothing to report", nil)
	assert.Equal(t, "nothing to report", bare.Error())
}
