package main

import (
	"context"
	"log/slog"
	"os"

	"bazaar/config"
	"bazaar/internal/delivery"
	"bazaar/internal/delivery/api"
	"bazaar/internal/delivery/api/router/handler"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/lifecycle"
	"bazaar/internal/domain/repository"
	"bazaar/internal/domain/service"
	"bazaar/internal/infra/backend"
	"bazaar/internal/infra/currency"
	logs "bazaar/internal/infra/log"
	"bazaar/internal/infra/persistence"
	"bazaar/internal/infra/qrcode"
	"bazaar/internal/usecase"
	"bazaar/internal/usecase/impl"
	"bazaar/internal/util"

	"go.uber.org/fx"
)

type startServerParams struct {
	fx.In
	fx.Lifecycle

	Deliveries []delivery.Delivery `group:"deliveries"`
}

func main() {
	fx.New(
		injectInfra(),
		injectRepo(),
		injectService(),
		injectUsecase(),
		injectHandler(),
		injectDelivery(),
		fx.Invoke(
			watchSession,
			restoreSession,
			startServer,
		),
	).Run()
}

func injectInfra() fx.Option {
	return fx.Provide(
		config.New,
		logs.New,
		context.Background,
	)
}

func injectRepo() fx.Option {
	return fx.Options(
		persistence.Module,
		fx.Provide(newCookieJar),
	)
}

// newCookieJar creates the session cookie jar over the configured key-value store
func newCookieJar(repo repository.KeyValueRepository, cfg *config.Config) *util.CookieJar {
	return util.NewCookieJar(repo, cfg.Session.CookieTTL)
}

func injectService() fx.Option {
	return fx.Options(
		backend.Module,
		currency.Module,
		fx.Provide(newQRCodeService),
	)
}

// newQRCodeService creates a QR code service with dependency injection
func newQRCodeService(cfg *config.Config) service.QRCodeService {
	return qrcode.NewQRCodeService(cfg.QRCode.Size, cfg.QRCode.ErrorCorrectionLevel, cfg.QRCode.BaseURL)
}

func injectUsecase() fx.Option {
	return fx.Options(
		fx.Provide(
			impl.NewSessionService,
		),
	)
}

func injectHandler() fx.Option {
	return fx.Options(
		fx.Provide(
			handler.NewSessionHandler,
			handler.NewCardHandler,
			handler.NewCurrencyHandler,
		),
	)
}

func injectDelivery() fx.Option {
	return fx.Options(
		fx.Provide(
			fx.Annotate(
				api.NewServer,
				fx.ResultTags(`group:"deliveries"`),
			),
		),
	)
}

// watchSession traces every session change at debug level
func watchSession(lc fx.Lifecycle, session usecase.SessionUsecase, logger *slog.Logger) {
	var unsubscribe func()

	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			unsubscribe = session.Subscribe(func(state entity.SessionState) {
				attrs := []any{slog.Bool("logged_in", state.User != nil)}
				if state.ActiveRole != nil {
					attrs = append(attrs,
						slog.String("role_type", string(state.ActiveRole.Type)),
						slog.Int64("role_id", state.ActiveRole.ID),
					)
				}
				if state.GlobalError != nil {
					attrs = append(attrs, slog.String("global_error", *state.GlobalError))
				}
				logger.Debug("Session changed", attrs...)
			})

			return nil
		},
		OnStop: func(context.Context) error {
			if unsubscribe != nil {
				unsubscribe()
			}

			return nil
		},
	})
}

// restoreSession logs the previous user back in once the stores are open
func restoreSession(lc fx.Lifecycle, session usecase.SessionUsecase, logger *slog.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			restoreCtx, cancel := context.WithTimeout(ctx, lifecycle.DefaultTimeout)
			defer cancel()

			session.Restore(restoreCtx)
			logger.Info("Session restored", slog.Bool("logged_in", session.IsLoggedIn()))

			return nil
		},
	})
}

func startServer(ctx context.Context, params startServerParams) {
	for _, delivery := range params.Deliveries {
		go func() {
			if err := delivery.Serve(ctx); err != nil {
				slog.Error("Failed to start server", slog.Any("error", err))
				os.Exit(1)
			}
		}()
	}
}
