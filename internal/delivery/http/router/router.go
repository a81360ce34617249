// Package router contains routing for the HTTP delivery.
package router

import (
	"storefront/config"
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"
	"storefront/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	Config         *config.Config
	OrderHandler   *handler.OrderHandler
	RoleHandler    *handler.RoleHandler
	TestHandler    *handler.TestHandler
	AuthMiddleware *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	cfg            *config.Config
	orderHandler   *handler.OrderHandler
	roleHandler    *handler.RoleHandler
	testHandler    *handler.TestHandler
	authMiddleware *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
func NewRouter(params RouterParams) *router {
	return &router{
		cfg:            params.Config,
		orderHandler:   params.OrderHandler,
		roleHandler:    params.RoleHandler,
		testHandler:    params.TestHandler,
		authMiddleware: params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	v1 := e.Group("/api/v1")

	// Storefront routes act on the caller's own orders
	customer := v1.Group("/orders", r.authMiddleware.Authenticate(entity.ActorKindCustomer))
	{
		customer.GET("", r.orderHandler.ListOrders)
		customer.GET("/:id", r.orderHandler.GetOrder)
		customer.PATCH("/:id/cancel", r.orderHandler.CancelOrder)
		customer.POST("/:id/return-exchange", r.orderHandler.RequestReturnExchange)
	}

	admin := v1.Group("/admin", r.authMiddleware.Authenticate(entity.ActorKindAdmin))
	{
		admin.GET("/orders", r.orderHandler.ListOrders, r.require(entity.ResourceOrders, entity.ActionView))
		admin.GET("/orders/:id", r.orderHandler.GetOrder, r.require(entity.ResourceOrders, entity.ActionView))
		admin.GET("/orders/:id/events", r.orderHandler.ListOrderEvents, r.require(entity.ResourceOrders, entity.ActionView))
		admin.PATCH("/orders/:id/status", r.orderHandler.UpdateOrderStatus, r.require(entity.ResourceOrders, entity.ActionUpdateStatus))
		admin.PATCH("/orders/:id/cancel", r.orderHandler.CancelOrder, r.require(entity.ResourceOrders, entity.ActionCancel))
		admin.PATCH("/orders/:id/return-exchange", r.orderHandler.ProcessReturnExchange, r.require(entity.ResourceOrders, entity.ActionManageReturns))
		admin.PATCH("/orders/:id/return-exchange/complete", r.orderHandler.CompleteReturnExchange, r.require(entity.ResourceOrders, entity.ActionManageReturns))

		admin.GET("/roles", r.roleHandler.ListRoles, r.require(entity.ResourceRolePermissions, entity.ActionView))
		admin.GET("/roles/:id", r.roleHandler.GetRole, r.require(entity.ResourceRolePermissions, entity.ActionView))
		admin.PATCH("/roles/:id/permissions", r.roleHandler.UpdateRolePermission, r.require(entity.ResourceRolePermissions, entity.ActionEdit))
	}
}

// RegisterTestRoutes mounts middleware diagnostic routes when enabled in config.
func (r *router) RegisterTestRoutes(e *echo.Echo) {
	if r.cfg.TestRoutes == nil || !r.cfg.TestRoutes.Enabled {
		return
	}

	test := e.Group("/test")
	test.GET("/public", r.testHandler.TestPublicEndpoint)
	test.GET("/auth", r.testHandler.TestAuthMiddleware, r.authMiddleware.Authenticate(entity.ActorKindCustomer))
}

func (r *router) require(resource entity.Resource, action entity.Action) echo.MiddlewareFunc {
	return r.authMiddleware.RequirePermission(resource, action)
}
