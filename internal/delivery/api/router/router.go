// Package router contains the route table of the web front.
package router

import (
	"pabw/internal/delivery/api/middleware"
	"pabw/internal/delivery/api/router/handler"
	"pabw/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	ProductHandler  *handler.ProductHandler
	CartHandler     *handler.CartHandler
	OrderHandler    *handler.OrderHandler
	DeliveryHandler *handler.DeliveryHandler
	AccountHandler  *handler.AccountHandler
	GuardMiddleware *middleware.GuardMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler     *handler.AuthHandler
	productHandler  *handler.ProductHandler
	cartHandler     *handler.CartHandler
	orderHandler    *handler.OrderHandler
	deliveryHandler *handler.DeliveryHandler
	accountHandler  *handler.AccountHandler
	guard           *middleware.GuardMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:     params.AuthHandler,
		productHandler:  params.ProductHandler,
		cartHandler:     params.CartHandler,
		orderHandler:    params.OrderHandler,
		deliveryHandler: params.DeliveryHandler,
		accountHandler:  params.AccountHandler,
		guard:           params.GuardMiddleware,
	}
}

// RegisterRoutes sets up every page of the client.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	// Public pages
	e.GET("/", r.authHandler.Landing)
	e.GET("/session", r.authHandler.Session)
	e.GET("/:merchant_id/:product_id", r.productHandler.Show)
	e.GET("/:merchant_id/:product_id/qr", r.productHandler.QRCode)
	e.POST("/:merchant_id/:product_id/buy", r.productHandler.Buy, r.guard.RequireLogin(entity.RoleCustomer))
	e.POST("/:merchant_id/:product_id/cart", r.productHandler.AddToCart, r.guard.RequireLogin())

	// Pages only for visitors that are not logged in
	loginGroup := e.Group("/login", r.guard.RequireAnonymous())
	{
		loginGroup.GET("", r.authHandler.LoginPage)
		loginGroup.POST("", r.authHandler.Login)
	}
	registerGroup := e.Group("/register", r.guard.RequireAnonymous())
	{
		registerGroup.GET("", r.authHandler.RegisterPage)
		registerGroup.POST("", r.authHandler.Register)
	}

	e.POST("/logout", r.authHandler.Logout, r.guard.RequireLogin())

	// Customer orders
	orderGroup := e.Group("/user/order", r.guard.RequireLogin(entity.RoleCustomer))
	{
		orderGroup.GET("", r.orderHandler.Orders)
		orderGroup.GET("/:id", r.orderHandler.Order)
	}

	// Pages for any logged-in account
	userGroup := e.Group("/user", r.guard.RequireLogin())
	{
		userGroup.GET("/product", r.productHandler.List)
		userGroup.POST("/product", r.productHandler.Create)
		userGroup.GET("/product/create", r.productHandler.CreatePage)
		userGroup.GET("/product/:id", r.productHandler.Detail)
		userGroup.GET("/product/:id/edit", r.productHandler.Detail)
		userGroup.PUT("/product/:id", r.productHandler.Update)
		userGroup.DELETE("/product/:id", r.productHandler.Delete)

		userGroup.GET("/transaction", r.orderHandler.Transactions)
		userGroup.GET("/transaction/:id", r.orderHandler.Transaction)
		userGroup.POST("/transaction/:id/confirm", r.orderHandler.Confirm)

		userGroup.GET("/cart", r.cartHandler.List)
		userGroup.DELETE("/cart/:id", r.cartHandler.Remove)
		userGroup.POST("/cart/checkout", r.cartHandler.Checkout)
	}

	// Courier deliveries
	deliveryGroup := e.Group("/courier/delivery", r.guard.RequireLogin(entity.RoleCourier))
	{
		deliveryGroup.GET("", r.deliveryHandler.List)
		deliveryGroup.GET("/:id", r.deliveryHandler.Detail)
		deliveryGroup.POST("/:id/status", r.deliveryHandler.ChangeStatus)
	}

	// Admin account management, one route family per managed role
	for _, role := range []entity.Role{entity.RoleCustomer, entity.RoleCourier} {
		accountGroup := e.Group(handler.AccountPath(role), r.guard.RequireLogin(entity.RoleAdmin))
		accountGroup.GET("", r.accountHandler.List(role))
		accountGroup.POST("", r.accountHandler.Create(role))
		accountGroup.GET("/create", r.accountHandler.CreatePage(role))
		accountGroup.GET("/:id", r.accountHandler.Detail)
		accountGroup.GET("/:id/edit", r.accountHandler.Detail)
		accountGroup.PUT("/:id", r.accountHandler.Update)
		accountGroup.POST("/:id/balance", r.accountHandler.TopUp)
		accountGroup.DELETE("/:id", r.accountHandler.Delete(role))
	}
}
