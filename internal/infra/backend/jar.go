package backend

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"sync"
	"time"

	"bazaar/internal/domain/repository"
	"bazaar/internal/util"

	"github.com/pkg/errors"
	"golang.org/x/net/publicsuffix"
)

// credentialsKey is where backend session cookies are mirrored.
const credentialsKey = "backend_cookies"

const persistTimeout = 2 * time.Second

type storedCookie struct {
	Name    string    `json:"name"`
	Value   string    `json:"value"`
	Path    string    `json:"path,omitempty"`
	Expires time.Time `json:"expires,omitempty"`
}

// persistentJar is an http.CookieJar whose cookies for the backend origin survive a
// restart. Every Set-Cookie from the backend is mirrored into the key-value store.
type persistentJar struct {
	jar    *cookiejar.Jar
	origin *url.URL
	repo   repository.KeyValueRepository
	logger *slog.Logger
	now    func() time.Time

	mu      sync.Mutex
	cookies map[string]storedCookie
}

func newPersistentJar(origin *url.URL, repo repository.KeyValueRepository, logger *slog.Logger) (*persistentJar, error) {
	jar, err := cookiejar.New(&cookiejar.Options{PublicSuffixList: publicsuffix.List})
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return &persistentJar{
		jar:     jar,
		origin:  origin,
		repo:    repo,
		logger:  logger,
		now:     time.Now,
		cookies: make(map[string]storedCookie),
	}, nil
}

// Cookies implements http.CookieJar
func (j *persistentJar) Cookies(u *url.URL) []*http.Cookie {
	return j.jar.Cookies(u)
}

// SetCookies implements http.CookieJar
func (j *persistentJar) SetCookies(u *url.URL, cookies []*http.Cookie) {
	j.jar.SetCookies(u, cookies)

	if u.Host != j.origin.Host {
		return
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.now()
	for _, c := range cookies {
		if c.MaxAge < 0 || (!c.Expires.IsZero() && !c.Expires.After(now)) {
			delete(j.cookies, c.Name)

			continue
		}

		stored := storedCookie{Name: c.Name, Value: c.Value, Path: c.Path, Expires: c.Expires}
		if c.MaxAge > 0 {
			stored.Expires = now.Add(time.Duration(c.MaxAge) * time.Second)
		}
		j.cookies[c.Name] = stored
	}

	ctx, cancel := context.WithTimeout(context.Background(), persistTimeout)
	defer cancel()

	if err := j.persistLocked(ctx); err != nil {
		j.logger.Warn("Failed to persist backend credentials", slog.Any("error", err))
	}
}

func (j *persistentJar) persistLocked(ctx context.Context) error {
	if len(j.cookies) == 0 {
		return j.repo.Delete(ctx, credentialsKey)
	}

	cookies := make([]storedCookie, 0, len(j.cookies))
	for _, c := range j.cookies {
		cookies = append(cookies, c)
	}

	data, err := json.Marshal(cookies)
	if err != nil {
		return errors.WithStack(err)
	}

	return j.repo.Put(ctx, credentialsKey, string(data), j.now().Add(util.DefaultCookieTTL))
}

// Restore loads previously mirrored cookies into the jar.
func (j *persistentJar) Restore(ctx context.Context) error {
	data, err := j.repo.Get(ctx, credentialsKey)
	if err != nil {
		if errors.Is(err, repository.ErrKeyNotFound) {
			return nil
		}

		return errors.Wrap(err, "failed to load backend credentials")
	}

	var stored []storedCookie
	if err := json.Unmarshal([]byte(data), &stored); err != nil {
		return errors.Wrap(err, "failed to decode backend credentials")
	}

	j.mu.Lock()
	defer j.mu.Unlock()

	now := j.now()
	cookies := make([]*http.Cookie, 0, len(stored))
	for _, c := range stored {
		if !c.Expires.IsZero() && !c.Expires.After(now) {
			continue
		}
		j.cookies[c.Name] = c
		cookies = append(cookies, &http.Cookie{Name: c.Name, Value: c.Value, Path: c.Path, Expires: c.Expires})
	}
	j.jar.SetCookies(j.origin, cookies)

	j.logger.Debug("Restored backend credentials", slog.Int("cookies", len(cookies)))

	return nil
}
