package logs

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"tiffin/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", slog.LevelDebug, false},
		{"", slog.LevelInfo, false},
		{"WARNING", slog.LevelWarn, false},
		{"error", slog.LevelError, false},
		{"verbose", slog.LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := parseLogLevel(tt.in)
			if tt.wantErr {
				assert.Error(t, err)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewLogger_JSONCarriesServiceAttrs(t *testing.T) {
	cfg := &config.Config{}
	cfg.Env.ServiceName = "tiffin"
	cfg.Env.Env = "develop"
	cfg.Env.Log.Level = "info"

	var buf bytes.Buffer
	logger, err := newLogger(&buf, cfg)
	require.NoError(t, err)

	logger.Debug("hidden")
	logger.Info("visible", slog.Int("n", 1))

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "visible", entry["msg"])
	assert.Equal(t, "tiffin", entry["service"])
	assert.Equal(t, "develop", entry["env"])
}
