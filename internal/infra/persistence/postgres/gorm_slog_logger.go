package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"tiffin/config"
	deliverycontext "tiffin/internal/delivery/context"
	"tiffin/internal/errors"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// gormSlogLogger bridges GORM's logger onto slog. Statements are logged with
// the request-scoped logger when the context carries one.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	l := &gormSlogLogger{
		logger: baseLogger,
		level:  logger.Warn,
	}

	if cfg != nil {
		if cfg.Env.Debug {
			l.level = logger.Info
		}

		if cfg.Database != nil {
			l.slowThreshold = cfg.Database.SlowQueryThreshold
		}
	}

	return l
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.logf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) logf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold || l.logger == nil {
		return
	}

	l.from(ctx).LogAttrs(ctx, level, "GORM "+level.String(), slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) from(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}

// Trace logs failed, slow and (in debug) all statements. Missing rows and
// constraint violations are expected outcomes that repositories translate, so
// they only show up at debug level.
func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := sqlAndRowsFn()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	log := l.from(ctx)

	switch {
	case err != nil && isExpectedQueryError(err):
		log.LogAttrs(ctx, slog.LevelDebug, "GORM query rejected", append(attrs, slog.String("error", err.Error()))...)
	case err != nil && l.level >= logger.Error:
		log.LogAttrs(ctx, slog.LevelError, "GORM query failed", append(attrs, slog.String("error", err.Error()))...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn:
		log.LogAttrs(ctx, slog.LevelWarn, "GORM slow query", append(attrs, slog.Duration("slowThreshold", l.slowThreshold))...)
	case l.level >= logger.Info:
		log.LogAttrs(ctx, slog.LevelDebug, "GORM query", attrs...)
	}
}

func isExpectedQueryError(err error) bool {
	return errors.Is(err, gorm.ErrRecordNotFound) ||
		isUniqueConstraintViolation(err) ||
		isForeignKeyConstraintViolation(err)
}
