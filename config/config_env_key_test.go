package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalizeEnvKey_UsesExistingCamelCaseKeys(t *testing.T) {
	existing := map[string]any{
		"postgres": map[string]any{
			"sslMode": "disable",
			"master": map[string]any{
				"userName": "user",
			},
		},
		"backend": map[string]any{
			"baseUrl": "",
		},
		"currency": map[string]any{
			"cacheTtl": "24h",
		},
	}

	tests := []struct {
		envKey string
		want   string
	}{
		{envKey: "POSTGRES_SSLMODE", want: "postgres.sslMode"},
		{envKey: "POSTGRES_MASTER_USERNAME", want: "postgres.master.userName"},
		{envKey: "BACKEND_BASEURL", want: "backend.baseUrl"},
		{envKey: "CURRENCY_CACHETTL", want: "currency.cacheTtl"},
		{envKey: "NEW_FEATURE_FLAG", want: "new.feature.flag"},
	}

	for _, tt := range tests {
		t.Run(tt.envKey, func(t *testing.T) {
			if got := canonicalizeEnvKey(tt.envKey, existing); got != tt.want {
				t.Fatalf("canonicalizeEnvKey(%q) = %q, want %q", tt.envKey, got, tt.want)
			}
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	t.Run("empty config gets every default", func(t *testing.T) {
		cfg := &Config{}
		applyDefaults(cfg)

		assert.Equal(t, 2*time.Second, cfg.Backend.Timeout)
		assert.Equal(t, defaultCurrencyBaseURL, cfg.Currency.BaseURL)
		assert.Equal(t, defaultCurrencyCache, cfg.Currency.CacheSize)
		assert.Equal(t, 365*24*time.Hour, cfg.Session.CookieTTL)
		assert.Equal(t, "blob", cfg.Persistence.Provider)
		assert.Equal(t, "mem://", cfg.Persistence.BucketURL)
		assert.Equal(t, 256, cfg.QRCode.Size)
		assert.Equal(t, "8M", cfg.HTTP.MaxRequestBodySize)
	})

	t.Run("explicit values are kept", func(t *testing.T) {
		cfg := &Config{
			Backend:     &BackendConfig{BaseURL: "http://localhost:9499", Timeout: 5 * time.Second},
			Persistence: &PersistenceConfig{Provider: "postgres"},
		}
		applyDefaults(cfg)

		assert.Equal(t, 5*time.Second, cfg.Backend.Timeout)
		assert.Equal(t, "postgres", cfg.Persistence.Provider)
		assert.Empty(t, cfg.Persistence.BucketURL)
	})
}
