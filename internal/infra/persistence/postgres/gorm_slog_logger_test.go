package postgres

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"
	"time"

	"tiffin/config"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestGormLogger(t *testing.T, debug bool) (logger.Interface, *bytes.Buffer) {
	t.Helper()

	var buf bytes.Buffer
	base := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	cfg := &config.Config{Database: &config.DatabaseConfig{SlowQueryThreshold: 50 * time.Millisecond}}
	cfg.Env.Debug = debug

	return newGormSlogLogger(base, cfg), &buf
}

func lastLogLine(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.NotEmpty(t, lines)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[len(lines)-1]), &entry))

	return entry
}

func sqlFn(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestGormSlogLogger_Trace(t *testing.T) {
	ctx := context.Background()

	t.Run("unexpected error is logged as error", func(t *testing.T) {
		l, buf := newTestGormLogger(t, false)
		l.Trace(ctx, time.Now(), sqlFn("SELECT 1"), assert.AnError)

		entry := lastLogLine(t, buf)
		assert.Equal(t, "ERROR", entry["level"])
		assert.Equal(t, "GORM query failed", entry["msg"])
	})

	t.Run("unique violation is demoted to debug", func(t *testing.T) {
		l, buf := newTestGormLogger(t, false)
		l.Trace(ctx, time.Now(), sqlFn("INSERT"), &pgconn.PgError{Code: pgUniqueViolation})

		entry := lastLogLine(t, buf)
		assert.Equal(t, "DEBUG", entry["level"])
		assert.Equal(t, "GORM query rejected", entry["msg"])
	})

	t.Run("record not found is demoted to debug", func(t *testing.T) {
		l, buf := newTestGormLogger(t, false)
		l.Trace(ctx, time.Now(), sqlFn("SELECT"), gorm.ErrRecordNotFound)

		assert.Equal(t, "DEBUG", lastLogLine(t, buf)["level"])
	})

	t.Run("slow query warns", func(t *testing.T) {
		l, buf := newTestGormLogger(t, false)
		l.Trace(ctx, time.Now().Add(-time.Second), sqlFn("SELECT pg_sleep(1)"), nil)

		entry := lastLogLine(t, buf)
		assert.Equal(t, "WARN", entry["level"])
		assert.Equal(t, "SELECT pg_sleep(1)", entry["sql"])
	})

	t.Run("fast query is silent outside debug", func(t *testing.T) {
		l, buf := newTestGormLogger(t, false)
		l.Trace(ctx, time.Now(), sqlFn("SELECT 1"), nil)

		assert.Empty(t, buf.String())
	})

	t.Run("fast query is traced in debug", func(t *testing.T) {
		l, buf := newTestGormLogger(t, true)
		l.Trace(ctx, time.Now(), sqlFn("SELECT 1"), nil)

		assert.Equal(t, "GORM query", lastLogLine(t, buf)["msg"])
	})
}
