package postgres

import (
	"context"
	"database/sql"
	"log/slog"
	"time"

	"bazaar/config"
	"bazaar/internal/errors"
	"bazaar/internal/infra/persistence/model"

	pgLib "github.com/slighter12/go-lib/database/postgres"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

const (
	startTimeout                = 10 * time.Second
	dbPoolMonitorInterval       = 5 * time.Second
	dbPoolWarnDurationThreshold = 50 * time.Millisecond
	expiredSweepInterval        = time.Hour
)

// Params defines the required parameters
type Params struct {
	fx.In
	fx.Lifecycle

	Config *config.Config
	Logger *slog.Logger
}

// New creates the PostgreSQL client, migrates the session table and
// starts the pool monitor and the expired-row sweeper.
func New(params Params) (*gorm.DB, error) {
	if params.Config.Postgres == nil {
		return nil, errors.New("postgres config is required for the postgres provider")
	}

	db, err := pgLib.New(params.Config.Postgres)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create PostgreSQL client")
	}
	db = db.Session(&gorm.Session{
		SkipDefaultTransaction: true,
		Logger:                 newGormSlogLogger(params.Logger, params.Config),
	})

	sqlDB, err := db.DB()
	if err != nil {
		return nil, errors.Wrap(err, "failed to get PostgreSQL sql.DB")
	}

	bgCtx, cancelBg := context.WithCancel(context.Background())
	repo := &keyValueRepository{db: db, now: time.Now}

	params.Append(fx.Hook{
		OnStart: func(startCtx context.Context) error {
			ctx, cancel := context.WithTimeout(startCtx, startTimeout)
			defer cancel()

			if err := sqlDB.PingContext(ctx); err != nil {
				return errors.Wrap(err, "failed to ping PostgreSQL")
			}

			if err := db.WithContext(ctx).AutoMigrate(&model.SessionValueModel{}); err != nil {
				return errors.Wrap(err, "failed to migrate session_values")
			}

			go monitorDBPool(bgCtx, params.Logger, sqlDB, dbPoolMonitorInterval)
			go sweepExpired(bgCtx, params.Logger, repo, expiredSweepInterval)

			return nil
		},
		OnStop: func(_ context.Context) error {
			cancelBg()

			return sqlDB.Close()
		},
	})

	return db, nil
}

func sweepExpired(ctx context.Context, logger *slog.Logger, repo *keyValueRepository, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed, err := repo.DeleteExpired(ctx)
			if err != nil {
				logger.WarnContext(ctx, "Failed to sweep expired session values", slog.Any("error", err))

				continue
			}
			if removed > 0 {
				logger.DebugContext(ctx, "Swept expired session values", slog.Int64("removed", removed))
			}
		}
	}
}

func monitorDBPool(ctx context.Context, logger *slog.Logger, sqlDB *sql.DB, interval time.Duration) {
	if logger == nil || sqlDB == nil {
		return
	}

	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	prev := sqlDB.Stats()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			cur := sqlDB.Stats()
			waitDelta := cur.WaitCount - prev.WaitCount
			waitDurationDelta := cur.WaitDuration - prev.WaitDuration

			if waitDelta > 0 {
				attrs := []slog.Attr{
					slog.Int64("wait_count_delta", waitDelta),
					slog.Duration("wait_duration_delta", waitDurationDelta),
					slog.Int("open_conns", cur.OpenConnections),
					slog.Int("in_use_conns", cur.InUse),
				}
				if waitDurationDelta >= dbPoolWarnDurationThreshold {
					logger.LogAttrs(ctx, slog.LevelWarn, "Postgres pool wait detected", attrs...)
				} else {
					logger.LogAttrs(ctx, slog.LevelDebug, "Postgres pool wait observed", attrs...)
				}
			}

			prev = cur
		}
	}
}
