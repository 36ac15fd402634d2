// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"time"

	"github.com/pkg/errors"
)

// ErrKeyNotFound is returned when a key is absent or has expired.
var ErrKeyNotFound = errors.New("key not found")

// KeyValueRepository persists small string values with an expiry.
// It backs the session cookies and the backend cookie jar.
type KeyValueRepository interface {
	// Put stores value under key until expiresAt, replacing any previous value.
	Put(ctx context.Context, key, value string, expiresAt time.Time) error

	// Get returns the value under key, or ErrKeyNotFound when it is absent or expired.
	Get(ctx context.Context, key string) (string, error)

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
