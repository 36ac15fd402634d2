// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"
	"strings"
	"time"

	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/repository"
	"bazaar/internal/infra/persistence/model"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// keyValueRepository implements repository.KeyValueRepository on the session_values table.
type keyValueRepository struct {
	db  *gorm.DB
	now func() time.Time
}

// NewKeyValueRepository is the constructor for keyValueRepository.
func NewKeyValueRepository(db *gorm.DB) repository.KeyValueRepository {
	return &keyValueRepository{
		db:  db,
		now: time.Now,
	}
}

// Put upserts the value and its expiry.
func (repo *keyValueRepository) Put(ctx context.Context, key, value string, expiresAt time.Time) error {
	row := &model.SessionValueModel{
		Key:       key,
		Value:     value,
		ExpiresAt: expiresAt.UTC(),
		UpdatedAt: repo.now().UTC(),
	}

	err := repo.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "expires_at", "updated_at"}),
		}).
		Create(row).Error
	if err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrCookieStoreFailed.WrapMessage("missing session value")
		}

		return domainerrors.NewStorageError(err, "put session value")
	}

	return nil
}

// Get returns the value if it has not expired yet.
func (repo *keyValueRepository) Get(ctx context.Context, key string) (string, error) {
	var row model.SessionValueModel

	err := repo.db.WithContext(ctx).
		Where("key = ? AND expires_at > ?", key, repo.now().UTC()).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", repository.ErrKeyNotFound
		}

		return "", errors.WithStack(err)
	}

	return row.Value, nil
}

// Delete removes the row; a missing row is not an error.
func (repo *keyValueRepository) Delete(ctx context.Context, key string) error {
	if err := repo.db.WithContext(ctx).Where("key = ?", key).Delete(&model.SessionValueModel{}).Error; err != nil {
		return domainerrors.NewStorageError(err, "delete session value")
	}

	return nil
}

// DeleteExpired removes expired rows and returns how many were removed.
func (repo *keyValueRepository) DeleteExpired(ctx context.Context) (int64, error) {
	result := repo.db.WithContext(ctx).
		Where("expires_at <= ?", repo.now().UTC()).
		Delete(&model.SessionValueModel{})
	if result.Error != nil {
		return 0, domainerrors.NewStorageError(result.Error, "delete expired session values")
	}

	return result.RowsAffected, nil
}

// isNotNullConstraintViolation recognises a NOT NULL failure by gorm sentinel or PostgreSQL code 23502.
func isNotNullConstraintViolation(err error) bool {
	if errors.Is(err, gorm.ErrCheckConstraintViolated) {
		return true
	}

	msg := strings.ToLower(err.Error())

	return strings.Contains(msg, "23502") || strings.Contains(msg, "not null") || strings.Contains(msg, "null value")
}
