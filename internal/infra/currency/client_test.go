package currency

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const nzBody = `[{"currencies":[{"code":"NZD","name":"New Zealand dollar","symbol":"$"},{"code":"XXX","name":"Other","symbol":"?"}]}]`

func newTestClient(t *testing.T, handler http.HandlerFunc) (service *client, hits *atomic.Int32) {
	t.Helper()

	hits = &atomic.Int32{}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(server.Close)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	return NewClient(server.URL, time.Second, 8, time.Hour, logger).(*client), hits
}

func TestCurrencyFromCountry(t *testing.T) {
	var path, query string
	c, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		path, query = r.URL.Path, r.URL.RawQuery
		_, _ = io.WriteString(w, nzBody)
	})

	currency, err := c.CurrencyFromCountry(context.Background(), "New Zealand")

	require.NoError(t, err)
	assert.Equal(t, &entity.Currency{Code: "NZD", Name: "New Zealand dollar", Symbol: "$"}, currency)
	assert.Equal(t, "/name/New Zealand", path)
	assert.Equal(t, "fullText=true&fields=currencies", query)
}

func TestCurrencyFromCountry_Cached(t *testing.T) {
	c, hits := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, nzBody)
	})

	for range 3 {
		_, err := c.CurrencyFromCountry(context.Background(), "New Zealand")
		require.NoError(t, err)
	}

	assert.Equal(t, int32(1), hits.Load())
}

func TestCurrencyFromCountry_Errors(t *testing.T) {
	tests := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{name: "unknown country", status: http.StatusNotFound, want: "No currency for country with name Atlantis was found"},
		{name: "server error", status: http.StatusInternalServerError, want: "Request failed: 500"},
		{name: "empty list", status: http.StatusOK, body: `[]`, want: msgUnreadable},
		{name: "no currencies", status: http.StatusOK, body: `[{"currencies":[]}]`, want: msgUnreadable},
		{name: "missing symbol", status: http.StatusOK, body: `[{"currencies":[{"code":"NZD","name":"dollar"}]}]`, want: msgUnreadable},
		{name: "object", status: http.StatusOK, body: `{"currencies":[]}`, want: msgUnreadable},
		{name: "two countries", status: http.StatusOK, body: `[{"currencies":[{"code":"NZD","name":"dollar","symbol":"$"}]},{"currencies":[{"code":"AUD","name":"dollar","symbol":"$"}]}]`, want: msgUnreadable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, hits := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := c.CurrencyFromCountry(context.Background(), "Atlantis")
			require.Error(t, err)
			assert.Equal(t, tt.want, err.Error())

			// failures are not cached
			_, _ = c.CurrencyFromCountry(context.Background(), "Atlantis")
			assert.Equal(t, int32(2), hits.Load())
		})
	}
}

func TestCurrencyFromCountry_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	baseURL := server.URL
	server.Close()

	c := NewClient(baseURL, time.Second, 8, time.Hour, slog.New(slog.NewTextHandler(io.Discard, nil)))

	_, err := c.CurrencyFromCountry(context.Background(), "Chile")

	clientErr, ok := domainerrors.AsClientError(err)
	require.True(t, ok)
	assert.Equal(t, domainerrors.KindTransport, clientErr.Kind())
	assert.Equal(t, "Failed to reach "+baseURL+"/name/Chile?fullText=true&fields=currencies", err.Error())
}
