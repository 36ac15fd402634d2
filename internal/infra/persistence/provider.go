// Package persistence selects the key-value store behind the session cookies.
package persistence

import (
	"context"
	"log/slog"

	"bazaar/config"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/blob"
	"bazaar/internal/infra/persistence/postgres"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	ProviderBlob     = "blob"
	ProviderPostgres = "postgres"
)

// Params holds dependencies for the key-value repository, injected by Fx
type Params struct {
	fx.In

	Lc     fx.Lifecycle
	Config *config.Config
	Logger *slog.Logger
}

// NewKeyValueRepository creates the repository configured by persistence.provider
func NewKeyValueRepository(params Params) (repository.KeyValueRepository, error) {
	cfg := params.Config.Persistence
	logger := params.Logger

	switch cfg.Provider {
	case ProviderBlob:
		logger.Info("Using blob bucket for session persistence",
			slog.String("bucket_url", cfg.BucketURL),
		)

		bucket, err := blob.Open(context.Background(), cfg.BucketURL)
		if err != nil {
			return nil, err
		}

		params.Lc.Append(fx.Hook{
			OnStop: func(ctx context.Context) error {
				logger.Info("Closing session bucket")

				return bucket.Close()
			},
		})

		return blob.NewKeyValueRepository(bucket), nil

	case ProviderPostgres:
		logger.Info("Using PostgreSQL for session persistence")

		db, err := postgres.New(postgres.Params{
			Lifecycle: params.Lc,
			Config:    params.Config,
			Logger:    logger,
		})
		if err != nil {
			return nil, err
		}

		return postgres.NewKeyValueRepository(db), nil

	default:
		return nil, errors.Errorf("unknown persistence provider: %s", cfg.Provider)
	}
}

// Module provides the persistence FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(NewKeyValueRepository),
)
