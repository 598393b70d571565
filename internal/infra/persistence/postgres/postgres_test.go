package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLogPoolWait(t *testing.T) {
	tests := []struct {
		name    string
		current sql.DBStats
		want    string
	}{
		{"no new waits", sql.DBStats{WaitCount: 3, WaitDuration: time.Second}, ""},
		{"short wait", sql.DBStats{WaitCount: 5, WaitDuration: time.Second + 10*time.Millisecond}, `"level":"DEBUG"`},
		{"long wait", sql.DBStats{WaitCount: 4, WaitDuration: 2 * time.Second}, `"level":"WARN"`},
	}

	last := sql.DBStats{WaitCount: 3, WaitDuration: time.Second}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

			logPoolWait(context.Background(), logger, last, tt.current)

			if tt.want == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.want)
			assert.Contains(t, buf.String(), "Postgres pool wait")
		})
	}
}
