// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/config"
	"bazaar/internal/delivery/api/router/handler"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	SessionHandler  *handler.SessionHandler
	CardHandler     *handler.CardHandler
	CurrencyHandler *handler.CurrencyHandler
	Config          *config.Config
}

// router holds all the handlers that need to be registered.
type router struct {
	sessionHandler  *handler.SessionHandler
	cardHandler     *handler.CardHandler
	currencyHandler *handler.CurrencyHandler
	config          *config.Config
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		sessionHandler:  params.SessionHandler,
		cardHandler:     params.CardHandler,
		currencyHandler: params.CurrencyHandler,
		config:          params.Config,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	sessionGroup := e.Group("/session")
	{
		sessionGroup.GET("", r.sessionHandler.GetSession)
		sessionGroup.POST("/login", r.sessionHandler.Login)
		sessionGroup.POST("/logout", r.sessionHandler.Logout)
		sessionGroup.PUT("/role", r.sessionHandler.SetRole)
		sessionGroup.PUT("/error", r.sessionHandler.SetError)
		sessionGroup.DELETE("/error", r.sessionHandler.ClearError)
		sessionGroup.PUT("/dialogs/:dialog", r.sessionHandler.ShowDialog)
		sessionGroup.DELETE("/dialogs/:dialog", r.sessionHandler.HideDialog)
	}

	cardsGroup := e.Group("/cards")
	{
		cardsGroup.GET("", r.cardHandler.ListCards)
		cardsGroup.GET("/count", r.cardHandler.CountCards)
		cardsGroup.POST("", r.cardHandler.CreateCard)
		cardsGroup.GET("/qrcode", r.cardHandler.CardQRCode)
	}

	e.GET("/keywords", r.cardHandler.ListKeywords)
	e.PUT("/demo/load", r.cardHandler.LoadDemoData)
	e.GET("/currency", r.currencyHandler.GetCurrency)
}
