package config

import (
	"log/slog"
	"testing"

	"github.com/lk16/gomoku/internal/gomoku"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input   string
		want    slog.Level
		wantErr bool
	}{
		{input: "", want: slog.LevelInfo},
		{input: "debug", want: slog.LevelDebug},
		{input: "INFO", want: slog.LevelInfo},
		{input: "Warn", want: slog.LevelWarn},
		{input: "ERROR", want: slog.LevelError},
		{input: "verbose", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			level, err := ParseLogLevel(tt.input)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.want, level)
		})
	}
}

func TestLoadEngineConfig_Defaults(t *testing.T) {
	t.Setenv("GOMOKU_DEFAULT_DEPTH", "")
	t.Setenv("GOMOKU_MAX_DEPTH", "")
	t.Setenv("GOMOKU_DEFAULT_STRATEGY", "")

	require.Equal(t, DefaultEngineConfig(), LoadEngineConfig())
}

func TestLoadEngineConfig_FromEnv(t *testing.T) {
	t.Setenv("GOMOKU_DEFAULT_DEPTH", "3")
	t.Setenv("GOMOKU_MAX_DEPTH", "5")
	t.Setenv("GOMOKU_DEFAULT_STRATEGY", "alphabeta")

	cfg := LoadEngineConfig()

	require.Equal(t, 3, cfg.DefaultDepth)
	require.Equal(t, 5, cfg.MaxDepth)
	require.Equal(t, gomoku.AlphaBeta, cfg.DefaultStrategy)
}
