package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/errors"
	logs "storefront/internal/infra/log"

	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

// gormSlogLogger sends GORM output to the request-scoped slog logger when the query context carries one.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}
	if baseLogger != nil {
		baseLogger = baseLogger.With(slog.String("component", "gorm"))
	}

	return &gormSlogLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: defaultGormSlowThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) message(ctx context.Context, min logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.logger == nil || l.level < min {
		return
	}

	logs.FromContext(ctx, l.logger).LogAttrs(ctx, level, "GORM "+level.String(),
		slog.String("message", fmt.Sprintf(msg, args...)),
	)
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.logger == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	level, msg, ok := l.classify(elapsed, err)
	if !ok {
		return
	}

	sql, rows := sqlAndRowsFn()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
	}

	logs.FromContext(ctx, l.logger).LogAttrs(ctx, level, msg, attrs...)
}

// classify picks the level for a traced statement. Record-not-found counts as success and
// unique violations log as warnings.
func (l *gormSlogLogger) classify(elapsed time.Duration, err error) (slog.Level, string, bool) {
	switch {
	case err != nil && errors.Is(err, gorm.ErrRecordNotFound):
		return l.classify(elapsed, nil)
	case err != nil && isUniqueConstraintViolation(err):
		return slog.LevelWarn, "GORM constraint violation", l.level >= logger.Warn
	case err != nil:
		return slog.LevelError, "GORM query failed", l.level >= logger.Error
	case l.slowThreshold > 0 && elapsed > l.slowThreshold:
		return slog.LevelWarn, "GORM slow query", l.level >= logger.Warn
	default:
		return slog.LevelInfo, "GORM query", l.level >= logger.Info
	}
}
