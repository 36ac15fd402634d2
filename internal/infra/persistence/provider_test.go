package persistence

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"bazaar/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/fx/fxtest"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestNewKeyValueRepository_Blob(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Persistence: &config.PersistenceConfig{Provider: ProviderBlob, BucketURL: "mem://"}}

	repo, err := NewKeyValueRepository(Params{Lc: lc, Config: cfg, Logger: newDiscardLogger()})
	require.NoError(t, err)

	lc.RequireStart()
	defer lc.RequireStop()

	ctx := context.Background()
	require.NoError(t, repo.Put(ctx, "user", "42", time.Now().Add(time.Hour)))

	got, err := repo.Get(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, "42", got)
}

func TestNewKeyValueRepository_Unknown(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Persistence: &config.PersistenceConfig{Provider: "redis"}}

	_, err := NewKeyValueRepository(Params{Lc: lc, Config: cfg, Logger: newDiscardLogger()})
	assert.EqualError(t, err, "unknown persistence provider: redis")
}

func TestNewKeyValueRepository_PostgresWithoutConfig(t *testing.T) {
	lc := fxtest.NewLifecycle(t)
	cfg := &config.Config{Persistence: &config.PersistenceConfig{Provider: ProviderPostgres}}

	_, err := NewKeyValueRepository(Params{Lc: lc, Config: cfg, Logger: newDiscardLogger()})
	assert.Error(t, err)
}
