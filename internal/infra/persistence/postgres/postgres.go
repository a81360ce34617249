package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"storefront/config"
	"storefront/internal/domain/lifecycle"
	"storefront/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New opens the GORM handle, pings it on start and applies migrations when storage.autoMigrate is set
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Multi-statement order writes go through txManager.Execute
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	monitorCtx, cancelMonitor := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if params.Config.Storage.AutoMigrate {
				if err := MigrateUp(db, params.Logger); err != nil {
					return err
				}
			}

			go monitorDBPool(monitorCtx, params.Logger, sqlDB, dbPoolMonitorInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelMonitor()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// poolWait is the pool contention seen between two stats samples.
type poolWait struct {
	count    int64
	duration time.Duration
	stats    sql.DBStats
}

// diffPoolStats reports contention since prev, ok is false when no caller waited for a connection.
func diffPoolStats(prev, cur sql.DBStats) (poolWait, bool) {
	wait := poolWait{
		count:    cur.WaitCount - prev.WaitCount,
		duration: cur.WaitDuration - prev.WaitDuration,
		stats:    cur,
	}

	return wait, wait.count > 0
}

func (w poolWait) level() slog.Level {
	if w.duration >= dbPoolWarnDurationThreshold {
		return slog.LevelWarn
	}

	return slog.LevelDebug
}

func (w poolWait) attrs() []slog.Attr {
	return []slog.Attr{
		slog.Int64("wait_count", w.count),
		slog.Duration("wait_duration", w.duration),
		slog.Duration("avg_wait", w.duration/time.Duration(w.count)),
		slog.Int("open_conns", w.stats.OpenConnections),
		slog.Int("in_use_conns", w.stats.InUse),
		slog.Int("idle_conns", w.stats.Idle),
		slog.Int("max_open_conns", w.stats.MaxOpenConnections),
	}
}

// monitorDBPool logs connection pool contention once per interval.
func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			if wait, ok := diffPoolStats(prev, cur); ok {
				logger.LogAttrs(ctx, wait.level(), "Postgres pool contention", wait.attrs()...)
			}
			prev = cur
		}
	}
}
