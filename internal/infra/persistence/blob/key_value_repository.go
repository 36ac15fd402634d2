// Package blob stores session values as small JSON objects in a gocloud bucket.
package blob

import (
	"context"
	"encoding/json"
	"time"

	"bazaar/internal/domain/repository"
	"bazaar/internal/errors"

	"gocloud.dev/blob"
	_ "gocloud.dev/blob/fileblob" // file:// buckets
	_ "gocloud.dev/blob/memblob"  // mem:// buckets
	"gocloud.dev/gcerrors"
)

const keyPrefix = "session/"

type storedValue struct {
	Value     string    `json:"value"`
	ExpiresAt time.Time `json:"expiresAt"`
}

type keyValueRepository struct {
	bucket *blob.Bucket
	now    func() time.Time
}

// Open opens the bucket at bucketURL, e.g. mem:// or file:///var/lib/bazaar.
func Open(ctx context.Context, bucketURL string) (*blob.Bucket, error) {
	bucket, err := blob.OpenBucket(ctx, bucketURL)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open bucket %s", bucketURL)
	}

	return bucket, nil
}

// NewKeyValueRepository wraps an open bucket.
func NewKeyValueRepository(bucket *blob.Bucket) repository.KeyValueRepository {
	return &keyValueRepository{
		bucket: bucket,
		now:    time.Now,
	}
}

func objectKey(key string) string {
	return keyPrefix + key
}

func (r *keyValueRepository) Put(ctx context.Context, key, value string, expiresAt time.Time) error {
	raw, err := json.Marshal(storedValue{Value: value, ExpiresAt: expiresAt.UTC()})
	if err != nil {
		return errors.Wrap(err, "failed to encode session value")
	}

	opts := &blob.WriterOptions{ContentType: "application/json"}
	if err := r.bucket.WriteAll(ctx, objectKey(key), raw, opts); err != nil {
		return errors.Wrapf(err, "failed to write session value %s", key)
	}

	return nil
}

func (r *keyValueRepository) Get(ctx context.Context, key string) (string, error) {
	raw, err := r.bucket.ReadAll(ctx, objectKey(key))
	if err != nil {
		if gcerrors.Code(err) == gcerrors.NotFound {
			return "", repository.ErrKeyNotFound
		}

		return "", errors.Wrapf(err, "failed to read session value %s", key)
	}

	var stored storedValue
	if err := json.Unmarshal(raw, &stored); err != nil {
		return "", errors.Wrapf(err, "failed to decode session value %s", key)
	}

	if !stored.ExpiresAt.After(r.now()) {
		// Expired values are dropped lazily.
		_ = r.Delete(ctx, key)

		return "", repository.ErrKeyNotFound
	}

	return stored.Value, nil
}

func (r *keyValueRepository) Delete(ctx context.Context, key string) error {
	err := r.bucket.Delete(ctx, objectKey(key))
	if err != nil && gcerrors.Code(err) != gcerrors.NotFound {
		return errors.Wrapf(err, "failed to delete session value %s", key)
	}

	return nil
}
