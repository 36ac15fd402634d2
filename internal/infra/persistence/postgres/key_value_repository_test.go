package postgres

import (
	"context"
	"io"
	"log/slog"
	"os"
	"testing"
	"time"

	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	pgLib "github.com/slighter12/go-lib/database/postgres"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"
)

// setupTestDB starts a PostgreSQL container and migrates session_values.
// Set TEST_INTEGRATION to run it.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	if os.Getenv("TEST_INTEGRATION") == "" {
		t.Skip("skipping integration test: TEST_INTEGRATION is not set")
	}

	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"docker.io/postgres:17-alpine",
		tcpostgres.WithDatabase("bazaar_test"),
		tcpostgres.WithUsername("bazaar"),
		tcpostgres.WithPassword("test-password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := container.Terminate(ctx); err != nil {
			t.Logf("failed to terminate container: %v", err)
		}
	})

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)

	db, err := pgLib.New(&pgLib.DBConn{
		Master: pgLib.ConnectionConfig{
			Host:     host,
			Port:     port.Port(),
			UserName: "bazaar",
			Password: "test-password",
		},
		Database: "bazaar_test",
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.WithContext(ctx).AutoMigrate(&model.SessionValueModel{}))

	return db
}

func countRows(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var n int64
	require.NoError(t, db.Model(&model.SessionValueModel{}).Count(&n).Error)

	return n
}

func TestKeyValueRepository_Upsert(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	repo := NewKeyValueRepository(db)
	expires := time.Now().Add(time.Hour)

	require.NoError(t, repo.Put(ctx, "user", "100", expires))
	require.NoError(t, repo.Put(ctx, "user", "200", expires.Add(time.Hour)))

	value, err := repo.Get(ctx, "user")
	require.NoError(t, err)
	assert.Equal(t, "200", value)
	assert.Equal(t, int64(1), countRows(t, db))

	require.NoError(t, repo.Delete(ctx, "user"))
	require.NoError(t, repo.Delete(ctx, "user"))

	_, err = repo.Get(ctx, "user")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)
}

func TestKeyValueRepository_Expiry(t *testing.T) {
	db := setupTestDB(t)
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := &keyValueRepository{db: db, now: func() time.Time { return now }}

	require.NoError(t, repo.Put(ctx, "stale", "1", now.Add(-time.Minute)))
	require.NoError(t, repo.Put(ctx, "fresh", "2", now.Add(time.Minute)))

	_, err := repo.Get(ctx, "stale")
	assert.ErrorIs(t, err, repository.ErrKeyNotFound)

	removed, err := repo.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	removed, err = repo.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Zero(t, removed)

	value, err := repo.Get(ctx, "fresh")
	require.NoError(t, err)
	assert.Equal(t, "2", value)
}

func TestSweepExpired(t *testing.T) {
	db := setupTestDB(t)
	now := time.Now()
	repo := &keyValueRepository{db: db, now: func() time.Time { return now }}

	require.NoError(t, repo.Put(context.Background(), "role", "{}", now.Add(-time.Second)))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go sweepExpired(ctx, slog.New(slog.NewTextHandler(io.Discard, nil)), repo, 10*time.Millisecond)

	assert.Eventually(t, func() bool {
		var n int64
		err := db.Model(&model.SessionValueModel{}).Count(&n).Error

		return err == nil && n == 0
	}, 5*time.Second, 20*time.Millisecond)
}

func TestIsNotNullConstraintViolation(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want bool
	}{
		{name: "gorm sentinel", err: errors.Wrap(gorm.ErrCheckConstraintViolated, "insert"), want: true},
		{name: "sqlstate", err: errors.New("ERROR: (SQLSTATE 23502)"), want: true},
		{name: "message", err: errors.New(`null value in column "value" violates not-null constraint`), want: true},
		{name: "unique violation", err: errors.New("duplicate key value violates unique constraint (SQLSTATE 23505)")},
		{name: "connection refused", err: errors.New("dial tcp: connection refused")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isNotNullConstraintViolation(tt.err))
		})
	}
}
