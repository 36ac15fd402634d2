package logs

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"bazaar/config"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the parameters required for the logger
type Params struct {
	fx.In

	Config *config.Config
}

// New creates and initializes slog.Logger
func New(params Params) (*slog.Logger, error) {
	return build(os.Stdout, params.Config.Env.Log, params.Config.Env.ServiceName)
}

func build(w io.Writer, cfg config.Log, serviceName string) (*slog.Logger, error) {
	level, err := parseLogLevel(cfg.Level)
	if err != nil {
		return nil, err
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	if cfg.Pretty {
		handler = slog.NewTextHandler(w, opts)
	} else {
		handler = slog.NewJSONHandler(w, opts)
	}

	logger := slog.New(handler)
	if serviceName != "" {
		logger = logger.With(slog.String("service", serviceName))
	}

	return logger, nil
}

// parseLogLevel accepts slog level names, with offsets such as "warn+2". Empty means info.
func parseLogLevel(level string) (slog.Level, error) {
	if strings.TrimSpace(level) == "" {
		return slog.LevelInfo, nil
	}

	var parsed slog.Level
	if err := parsed.UnmarshalText([]byte(level)); err != nil {
		return slog.LevelInfo, errors.Errorf("unknown log level: %s", level)
	}

	return parsed, nil
}
