package helpers_test

import (
	"context"
	"log/slog"
	"testing"

	"github.com/isometry/predict-app/internal/helpers"
	"github.com/stretchr/testify/assert"
)

func TestNewLogger(t *testing.T) {
	testCases := []struct {
		Name      string
		Verbosity int
		Enabled   slog.Level
		Disabled  slog.Level
	}{
		{Name: "default_warn", Verbosity: 0, Enabled: slog.LevelWarn, Disabled: slog.LevelInfo},
		{Name: "one_step_info", Verbosity: 1, Enabled: slog.LevelInfo, Disabled: slog.LevelDebug},
		{Name: "two_steps_debug", Verbosity: 2, Enabled: slog.LevelDebug, Disabled: slog.LevelDebug - 4},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			logger := helpers.NewLogger(tc.Verbosity, false)
			assert.True(t, logger.Enabled(context.Background(), tc.Enabled))
			assert.False(t, logger.Enabled(context.Background(), tc.Disabled))
		})
	}
}

func TestNewNoopLogger(t *testing.T) {
	assert.NotNil(t, helpers.NewNoopLogger())
}
