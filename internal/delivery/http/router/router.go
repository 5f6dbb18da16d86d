// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"clientaccount/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ClientAccountHandler *handler.ClientAccountHandler
}

// router holds all the handlers that need to be registered.
type router struct {
	clientAccountHandler *handler.ClientAccountHandler
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		clientAccountHandler: params.ClientAccountHandler,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	accounts := e.Group("/client-accounts")
	{
		accounts.POST("", r.clientAccountHandler.CreateClientAccount)
		accounts.GET("/:id", r.clientAccountHandler.GetClientAccount)
	}
}
