// Package currency resolves a country's currency through a REST countries service.
package currency

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	domainerrors "bazaar/internal/domain/errors"
	"bazaar/internal/domain/service"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/hashicorp/golang-lru/v2/expirable"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"go.uber.org/fx"
)

const msgUnreadable = "API response was not in readable format"

//nolint:gochecknoglobals
var (
	cacheHitsTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bazaar_currency_cache_hits_total",
		Help: "Total number of currency lookups served from the cache",
	})
	cacheMissesTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "bazaar_currency_cache_misses_total",
		Help: "Total number of currency lookups sent to the countries service",
	})

	// responseSchema accepts exactly one {currencies: [{code, name, symbol}, ...]}.
	responseSchema = openapi3.NewArraySchema().WithMinItems(1).WithMaxItems(1).WithItems(
		func() *openapi3.Schema {
			currency := openapi3.NewObjectSchema().
				WithProperty("code", openapi3.NewStringSchema()).
				WithProperty("name", openapi3.NewStringSchema()).
				WithProperty("symbol", openapi3.NewStringSchema())
			currency.Required = []string{"code", "name", "symbol"}

			container := openapi3.NewObjectSchema().
				WithProperty("currencies", openapi3.NewArraySchema().WithMinItems(1).WithItems(currency))
			container.Required = []string{"currencies"}

			return container
		}(),
	)
)

type countryCurrencies struct {
	Currencies []entity.Currency `json:"currencies"`
}

type client struct {
	baseURL    string
	httpClient *http.Client
	cache      *expirable.LRU[string, entity.Currency]
	logger     *slog.Logger
}

// Params holds dependencies for the currency client, injected by Fx
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// New creates the currency service from configuration.
func New(params Params) service.CurrencyService {
	cfg := params.Config.Currency

	return NewClient(cfg.BaseURL, cfg.Timeout, cfg.CacheSize, cfg.CacheTTL, params.Logger)
}

// NewClient creates a currency service that caches up to cacheSize lookups for ttl.
func NewClient(baseURL string, timeout time.Duration, cacheSize int, ttl time.Duration, logger *slog.Logger) service.CurrencyService {
	return &client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		cache:      expirable.NewLRU[string, entity.Currency](cacheSize, nil, ttl),
		logger:     logger.With(slog.String("component", "currency_client")),
	}
}

// CurrencyFromCountry implements service.CurrencyService
func (c *client) CurrencyFromCountry(ctx context.Context, country string) (*entity.Currency, error) {
	if cached, ok := c.cache.Get(country); ok {
		cacheHitsTotal.Inc()

		return &cached, nil
	}
	cacheMissesTotal.Inc()

	currency, err := c.query(ctx, country)
	if err != nil {
		c.logger.Warn("Currency lookup failed",
			slog.String("country", country),
			slog.String("error", err.Error()),
		)

		return nil, err
	}

	c.cache.Add(country, *currency)

	return currency, nil
}

func (c *client) query(ctx context.Context, country string) (*entity.Currency, error) {
	queryURL := fmt.Sprintf("%s/name/%s?fullText=true&fields=currencies", c.baseURL, url.PathEscape(country))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, queryURL, nil)
	if err != nil {
		return nil, domainerrors.NewTransportError("Failed to reach "+queryURL, errors.WithStack(err))
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, domainerrors.NewTransportError("Failed to reach "+queryURL, errors.WithStack(err))
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domainerrors.NewMappedStatusError(resp.StatusCode,
			fmt.Sprintf("No currency for country with name %s was found", country))
	case resp.StatusCode != http.StatusOK:
		return nil, domainerrors.NewUnmappedStatusError(resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, domainerrors.NewTransportError("Failed to reach "+queryURL, errors.WithStack(err))
	}

	var doc any
	if err := json.Unmarshal(body, &doc); err != nil {
		return nil, domainerrors.NewMalformedResponseError(msgUnreadable, errors.WithStack(err))
	}
	if err := responseSchema.VisitJSON(doc); err != nil {
		return nil, domainerrors.NewMalformedResponseError(msgUnreadable, errors.WithStack(err))
	}

	var containers []countryCurrencies
	if err := json.Unmarshal(body, &containers); err != nil {
		return nil, domainerrors.NewMalformedResponseError(msgUnreadable, errors.WithStack(err))
	}

	currency := containers[0].Currencies[0]

	return &currency, nil
}

// Module provides the currency FX module
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(New),
)
