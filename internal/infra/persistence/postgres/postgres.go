package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"tiffin/config"
	"tiffin/internal/domain/lifecycle"
	"tiffin/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	poolStatsInterval = 5 * time.Second
	poolWaitWarnAfter = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the primary and replica connections. On start it pings the
// primary, applies migrations when enabled and begins watching pool waits.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}

	// Multi-step writes use explicit transactions through the transaction manager.
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	watchCtx, stopWatch := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if err := Migrate(ctx, db, params.Config, params.Logger); err != nil {
				return err
			}

			go watchPoolWaits(watchCtx, params.Logger, sqlDB, poolStatsInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopWatch()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// watchPoolWaits logs whenever callers had to wait for a free connection.
func watchPoolWaits(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	last := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			current := sqlDB.Stats()
			logPoolWait(ctx, logger, last, current)
			last = current
		}
	}
}

func logPoolWait(ctx context.Context, logger *slog.Logger, last, current sql.DBStats) {
	waits := current.WaitCount - last.WaitCount
	if waits <= 0 {
		return
	}

	waited := current.WaitDuration - last.WaitDuration
	level := slog.LevelDebug
	if waited >= poolWaitWarnAfter {
		level = slog.LevelWarn
	}

	logger.LogAttrs(ctx, level, "Postgres pool wait",
		slog.Int64("waits", waits),
		slog.Duration("waited", waited),
		slog.Duration("avg_wait", waited/time.Duration(waits)),
		slog.Int("open", current.OpenConnections),
		slog.Int("in_use", current.InUse),
		slog.Int("idle", current.Idle),
		slog.Int("max_open", current.MaxOpenConnections),
	)
}
