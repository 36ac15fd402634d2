package util

import (
	"context"
	"time"

	"bazaar/internal/domain/repository"

	"github.com/pkg/errors"
)

// Cookie names used by the session store.
const (
	CookieUser = "user"
	CookieRole = "role"
)

// DefaultCookieTTL keeps session cookies for one year.
const DefaultCookieTTL = 365 * 24 * time.Hour

// CookieJar reads and writes named session cookies through a key-value repository.
type CookieJar struct {
	repo repository.KeyValueRepository
	ttl  time.Duration
	now  func() time.Time
}

// NewCookieJar creates a jar whose cookies expire ttl after they are set.
func NewCookieJar(repo repository.KeyValueRepository, ttl time.Duration) *CookieJar {
	if ttl <= 0 {
		ttl = DefaultCookieTTL
	}

	return &CookieJar{repo: repo, ttl: ttl, now: time.Now}
}

// SetCookie stores value under name for the jar's lifetime.
func (j *CookieJar) SetCookie(ctx context.Context, name, value string) error {
	if err := j.repo.Put(ctx, name, value, j.now().Add(j.ttl)); err != nil {
		return errors.Wrapf(err, "failed to set cookie %s", name)
	}

	return nil
}

// GetCookie returns the cookie as "name=value", or "" when it is not set.
func (j *CookieJar) GetCookie(ctx context.Context, name string) (string, error) {
	value, found, err := j.CookieValue(ctx, name)
	if err != nil || !found {
		return "", err
	}

	return name + "=" + value, nil
}

// CookieValue returns only the value part of a cookie.
func (j *CookieJar) CookieValue(ctx context.Context, name string) (string, bool, error) {
	value, err := j.repo.Get(ctx, name)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return "", false, nil
		}

		return "", false, errors.Wrapf(err, "failed to read cookie %s", name)
	}

	return value, true, nil
}

// DeleteCookie removes the cookie. Missing cookies are ignored.
func (j *CookieJar) DeleteCookie(ctx context.Context, name string) error {
	if err := j.repo.Delete(ctx, name); err != nil {
		return errors.Wrapf(err, "failed to delete cookie %s", name)
	}

	return nil
}
