// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"bazaar/internal/delivery/http/middleware"
	"bazaar/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler   *handler.AuthHandler
	ItemHandler   *handler.ItemHandler
	SellerHandler *handler.SellerHandler

	AuthMiddleware      *middleware.AuthMiddleware
	LoggerMiddleware    *middleware.LoggerMiddleware
	RequestIDMiddleware *middleware.RequestIDMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler   *handler.AuthHandler
	itemHandler   *handler.ItemHandler
	sellerHandler *handler.SellerHandler

	authMiddleware      *middleware.AuthMiddleware
	loggerMiddleware    *middleware.LoggerMiddleware
	requestIDMiddleware *middleware.RequestIDMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:         params.AuthHandler,
		itemHandler:         params.ItemHandler,
		sellerHandler:       params.SellerHandler,
		authMiddleware:      params.AuthMiddleware,
		loggerMiddleware:    params.LoggerMiddleware,
		requestIDMiddleware: params.RequestIDMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.Use(r.requestIDMiddleware.Process)
	e.Use(r.loggerMiddleware.Handle)

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.authHandler.Register)
		authGroup.POST("/login", r.authHandler.Login)
	}

	// Public seller directory
	e.GET("/sellers", r.sellerHandler.List)

	// Item routes. Reads are public, writes require a valid token.
	itemGroup := e.Group("/items")
	{
		itemGroup.GET("", r.itemHandler.List)
		itemGroup.GET("/:id", r.itemHandler.GetByID)

		itemGroup.POST("", r.itemHandler.Create, r.authMiddleware.Authenticate)
		itemGroup.PATCH("/:id", r.itemHandler.Update, r.authMiddleware.Authenticate)
		itemGroup.DELETE("/:id", r.itemHandler.Delete, r.authMiddleware.Authenticate)
	}
}
