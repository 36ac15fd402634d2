package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"bazaar/config"
	"bazaar/internal/delivery"
	apimiddleware "bazaar/internal/delivery/api/middleware"
	"bazaar/internal/delivery/api/router"
	"bazaar/internal/delivery/api/validator"
	"bazaar/internal/delivery/middleware"
	"bazaar/internal/domain/lifecycle"
	"bazaar/internal/errors"

	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/fx"
	"golang.org/x/net/http2"
)

type apiServer struct {
	cfg    *config.Config
	logger *slog.Logger
	server *echo.Echo
}

// ServerParams holds dependencies for HTTP server, injected by Fx.
type ServerParams struct {
	fx.In

	Lc           fx.Lifecycle
	Cfg          *config.Config
	Logger       *slog.Logger
	RouterParams router.RouterParams
}

// NewServer builds the echo server for the marketplace companion API.
func NewServer(params ServerParams) (delivery.Delivery, error) {
	echoServer, err := newEcho(params.Cfg, params.Logger, params.RouterParams)
	if err != nil {
		return nil, err
	}

	srv := &apiServer{
		cfg:    params.Cfg,
		logger: params.Logger,
		server: echoServer,
	}

	params.Lc.Append(fx.Hook{
		OnStop: srv.stop,
	})

	return srv, nil
}

func newEcho(cfg *config.Config, logger *slog.Logger, routerParams router.RouterParams) (*echo.Echo, error) {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Server.ReadTimeout = cfg.HTTP.Timeouts.ReadTimeout
	echoServer.Server.ReadHeaderTimeout = cfg.HTTP.Timeouts.ReadHeaderTimeout
	echoServer.Server.WriteTimeout = cfg.HTTP.Timeouts.WriteTimeout
	echoServer.Server.IdleTimeout = cfg.HTTP.Timeouts.IdleTimeout

	// Set up middleware in correct order
	// 1. Recover middleware first (to catch panics early)
	echoServer.Use(echomiddleware.Recover())

	// 2. Request ID middleware (must be before logger to include in logs)
	echoServer.Use(middleware.RequestID(logger))

	// 3. Logger middleware
	echoServer.Use(middleware.AccessLog(logger, cfg))

	// 4. Request metrics
	echoServer.Use(middleware.Metrics)

	// 5. CORS middleware
	echoServer.Use(echomiddleware.CORS())

	// 6. Request body size limit
	echoServer.Use(echomiddleware.BodyLimit(cfg.HTTP.MaxRequestBodySize))

	// Set up centralized error handler
	errorMiddleware := apimiddleware.NewErrorMiddleware(logger)
	echoServer.HTTPErrorHandler = errorMiddleware.HandleHTTPError

	v, err := validator.New()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create validator")
	}
	echoServer.Validator = v

	r := router.NewRouter(routerParams)
	r.RegisterRoutes(echoServer)

	return echoServer, nil
}

func (s *apiServer) Serve(ctx context.Context) error {
	hostPort := net.JoinHostPort("0.0.0.0", strconv.Itoa(s.cfg.HTTP.Port))
	s.logger.Info("Starting API HTTP server", slog.String("host_port", hostPort))
	h2Server := &http2.Server{
		IdleTimeout: s.cfg.HTTP.Timeouts.IdleTimeout,
	}
	if err := s.server.StartH2CServer(hostPort, h2Server); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return errors.WithStack(err)
	}

	return nil
}

func (s *apiServer) stop(ctx context.Context) error {
	shutdownCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
	defer cancel()

	s.logger.Info("Shutting down API HTTP server")

	return errors.WithStack(s.server.Shutdown(shutdownCtx))
}
