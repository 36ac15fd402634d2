package config

import (
	"os"
	"path/filepath"
	"strings"
	"time"
	"unicode"

	"github.com/go-viper/mapstructure/v2"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"
	"github.com/pkg/errors"
	"github.com/slighter12/go-lib/database/postgres"
)

const (
	defaultPath = "."

	defaultBackendTimeout   = 2 * time.Second
	defaultCurrencyBaseURL  = "https://restcountries.eu/rest/v2"
	defaultCurrencyTimeout  = 2 * time.Second
	defaultCurrencyCache    = 256
	defaultCurrencyCacheTTL = 24 * time.Hour
	defaultCookieTTL        = 365 * 24 * time.Hour
	defaultBucketURL        = "mem://"
	defaultMaxBodySize      = "8M"
	defaultQRCodeSize       = 256
)

type Config struct {
	Env struct {
		Env         string `json:"env" yaml:"env"`
		ServiceName string `json:"serviceName" yaml:"serviceName"`
		Debug       bool   `json:"debug" yaml:"debug"`
		Log         Log    `json:"log" yaml:"log"`
	} `json:"env" yaml:"env"`

	HTTP struct {
		Port               int    `json:"port" yaml:"port"`
		MaxRequestBodySize string `json:"maxRequestBodySize" yaml:"maxRequestBodySize"`
		Timeouts struct {
			ReadTimeout       time.Duration `json:"readTimeout" yaml:"readTimeout"`
			ReadHeaderTimeout time.Duration `json:"readHeaderTimeout" yaml:"readHeaderTimeout"`
			WriteTimeout      time.Duration `json:"writeTimeout" yaml:"writeTimeout"`
			IdleTimeout       time.Duration `json:"idleTimeout" yaml:"idleTimeout"`
		} `json:"timeouts" yaml:"timeouts"`
	} `json:"http" yaml:"http"`

	// Backend is the marketplace REST API the client talks to
	Backend *BackendConfig `json:"backend" yaml:"backend"`

	// Currency configures the country to currency lookup
	Currency *CurrencyConfig `json:"currency" yaml:"currency"`

	// Session configures the persisted session cookies
	Session *SessionConfig `json:"session" yaml:"session"`

	// Persistence selects the key-value store behind the session cookies
	Persistence *PersistenceConfig `json:"persistence" yaml:"persistence"`

	Postgres *postgres.DBConn `json:"postgres" yaml:"postgres" mapstructure:"postgres"`

	// QRCode configuration for marketplace card share codes
	QRCode *QRCodeConfig `json:"qrcode" yaml:"qrcode"`
}

type Log struct {
	Pretty bool   `json:"pretty" yaml:"pretty"`
	Level  string `json:"level" yaml:"level"`
}

// BackendConfig defines how the typed API client reaches the backend
type BackendConfig struct {
	BaseURL string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout time.Duration `json:"timeout" yaml:"timeout"`
}

// CurrencyConfig defines the external country-data service and its cache
type CurrencyConfig struct {
	BaseURL   string        `json:"baseUrl" yaml:"baseUrl"`
	Timeout   time.Duration `json:"timeout" yaml:"timeout"`
	CacheSize int           `json:"cacheSize" yaml:"cacheSize"`
	CacheTTL  time.Duration `json:"cacheTtl" yaml:"cacheTtl"`
}

// SessionConfig defines cookie lifetimes
type SessionConfig struct {
	CookieTTL time.Duration `json:"cookieTtl" yaml:"cookieTtl"`
}

// PersistenceConfig defines the key-value store provider
type PersistenceConfig struct {
	// Provider type: "blob" for a gocloud bucket or "postgres"
	Provider string `json:"provider" yaml:"provider"`

	// Bucket URL for the blob provider, e.g. mem:// or file:///var/lib/bazaar
	BucketURL string `json:"bucketUrl" yaml:"bucketUrl"`
}

// QRCodeConfig defines QR code generation configuration
type QRCodeConfig struct {
	Size                 int    `json:"size" yaml:"size"`
	ErrorCorrectionLevel string `json:"errorCorrectionLevel" yaml:"errorCorrectionLevel"`
	BaseURL              string `json:"baseUrl" yaml:"baseUrl"`
}

// LoadWithEnv loads .yaml files through koanf.
func LoadWithEnv[T any](currEnv string, configPath ...string) (*T, error) {
	cfg := new(T)
	koanfInstance := koanf.New(".")

	// Build list of paths to search for config file
	searchPaths := []string{defaultPath}
	if len(configPath) != 0 {
		pwd, err := os.Getwd()
		if err != nil {
			return nil, errors.Wrap(err, "os.Getwd")
		}
		for _, path := range configPath {
			abs := filepath.Join(pwd, path)
			searchPaths = append(searchPaths, abs)
		}
	}

	var configFile string
	var found bool
	for _, path := range searchPaths {
		candidate := filepath.Join(path, currEnv+".yaml")
		if _, err := os.Stat(candidate); err == nil {
			configFile = candidate
			found = true

			break
		}
	}

	if !found {
		return nil, errors.Errorf("config file %s.yaml not found in any search path", currEnv)
	}

	if err := koanfInstance.Load(file.Provider(configFile), yaml.Parser()); err != nil {
		return nil, errors.Wrapf(err, "read %s config failed", currEnv)
	}

	existingConfigMap := koanfInstance.Raw()

	if err := koanfInstance.Load(env.Provider(".", env.Opt{
		TransformFunc: func(k, v string) (string, any) {
			// Example: BACKEND_BASEURL -> backend.baseUrl (not backend.baseurl)
			key := canonicalizeEnvKey(k, existingConfigMap)

			return key, v
		},
	}), nil); err != nil {
		return nil, errors.Wrap(err, "load env variables failed")
	}

	if err := koanfInstance.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{
		DecoderConfig: &mapstructure.DecoderConfig{
			Result:           cfg,
			WeaklyTypedInput: true,
			DecodeHook: mapstructure.ComposeDecodeHookFunc(
				mapstructure.StringToTimeDurationHookFunc(),
			),
			MatchName: func(mapKey, fieldName string) bool {
				return strings.EqualFold(mapKey, fieldName)
			},
		},
	}); err != nil {
		return nil, errors.Wrapf(err, "unmarshal %s config failed", currEnv)
	}

	return cfg, nil
}

func New() (*Config, error) {
	cfg, err := LoadWithEnv[Config]("config", "config", "../config", "../../config")
	if err != nil {
		return nil, err
	}

	applyDefaults(cfg)

	if strings.TrimSpace(cfg.Backend.BaseURL) == "" {
		return nil, errors.New("backend.baseUrl is required")
	}

	return cfg, nil
}

// applyDefaults fills the sections a minimal config file may omit.
func applyDefaults(cfg *Config) {
	if strings.TrimSpace(cfg.HTTP.MaxRequestBodySize) == "" {
		cfg.HTTP.MaxRequestBodySize = defaultMaxBodySize
	}

	if cfg.Backend == nil {
		cfg.Backend = &BackendConfig{}
	}
	if cfg.Backend.Timeout <= 0 {
		cfg.Backend.Timeout = defaultBackendTimeout
	}

	if cfg.Currency == nil {
		cfg.Currency = &CurrencyConfig{}
	}
	if strings.TrimSpace(cfg.Currency.BaseURL) == "" {
		cfg.Currency.BaseURL = defaultCurrencyBaseURL
	}
	if cfg.Currency.Timeout <= 0 {
		cfg.Currency.Timeout = defaultCurrencyTimeout
	}
	if cfg.Currency.CacheSize <= 0 {
		cfg.Currency.CacheSize = defaultCurrencyCache
	}
	if cfg.Currency.CacheTTL <= 0 {
		cfg.Currency.CacheTTL = defaultCurrencyCacheTTL
	}

	if cfg.Session == nil {
		cfg.Session = &SessionConfig{}
	}
	if cfg.Session.CookieTTL <= 0 {
		cfg.Session.CookieTTL = defaultCookieTTL
	}

	if cfg.Persistence == nil {
		cfg.Persistence = &PersistenceConfig{}
	}
	if strings.TrimSpace(cfg.Persistence.Provider) == "" {
		cfg.Persistence.Provider = "blob"
	}
	if cfg.Persistence.Provider == "blob" && strings.TrimSpace(cfg.Persistence.BucketURL) == "" {
		cfg.Persistence.BucketURL = defaultBucketURL
	}

	if cfg.QRCode == nil {
		cfg.QRCode = &QRCodeConfig{}
	}
	if cfg.QRCode.Size <= 0 {
		cfg.QRCode.Size = defaultQRCodeSize
	}
}

func canonicalizeEnvKey(rawKey string, existing map[string]any) string {
	segments := strings.Split(strings.ToLower(rawKey), "_")
	canonical := make([]string, 0, len(segments))
	current := existing

	for _, segment := range segments {
		if segment == "" {
			continue
		}

		if matched, next, ok := findExistingSegment(current, segment); ok {
			canonical = append(canonical, matched)
			current = next
		} else {
			canonical = append(canonical, segment)
			current = nil
		}
	}

	return strings.Join(canonical, ".")
}

func findExistingSegment(current map[string]any, segment string) (matched string, next map[string]any, ok bool) {
	if len(current) == 0 {
		return "", nil, false
	}

	needle := normalizeToken(segment)
	for key, value := range current {
		if normalizeToken(key) != needle {
			continue
		}

		child, _ := value.(map[string]any)

		return key, child, true
	}

	return "", nil, false
}

func normalizeToken(s string) string {
	var normalized strings.Builder
	normalized.Grow(len(s))

	for _, r := range s {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			continue
		}
		normalized.WriteRune(unicode.ToLower(r))
	}

	return normalized.String()
}
