package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"wrench/config"
	"wrench/internal/domain/lifecycle"
	"wrench/internal/errors"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const poolStatsInterval = 30 * time.Second

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the PostgreSQL client and wires its lifecycle into fx.
func New(params Params) (*gorm.DB, error) {
	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		// Compare-and-set updates and the multi-step writes behind
		// TransactionManager.Execute manage transactions explicitly, so
		// GORM's per-statement implicit transaction is disabled.
		SkipDefaultTransaction: true,
		Logger:                 newGormLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	statsCtx, stopStats := context.WithCancel(context.Background())

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, lifecycle.DefaultTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			go reportPoolStats(statsCtx, params.Logger, sqlDB)

			return nil
		},
		OnStop: func(_ context.Context) error {
			stopStats()

			return sqlDB.Close()
		},
	})

	return db, nil
}

// reportPoolStats periodically logs connection pool saturation. A growing wait
// count means callers are blocking on the pool and MaxOpenConns is too low.
func reportPoolStats(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB) {
	ticker := time.NewTicker(poolStatsInterval)
	defer ticker.Stop()

	prevWaitCount := sqlDB.Stats().WaitCount
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			stats := sqlDB.Stats()
			level := slog.LevelDebug
			if stats.WaitCount > prevWaitCount {
				level = slog.LevelWarn
			}
			logger.LogAttrs(ctx, level, "Postgres pool stats",
				slog.Int("openConns", stats.OpenConnections),
				slog.Int("inUseConns", stats.InUse),
				slog.Int("idleConns", stats.Idle),
				slog.Int64("waitCount", stats.WaitCount),
				slog.Duration("waitDuration", stats.WaitDuration),
			)
			prevWaitCount = stats.WaitCount
		}
	}
}
