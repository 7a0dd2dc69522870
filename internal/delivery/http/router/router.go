// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"descya/internal/delivery/http/middleware"
	"descya/internal/delivery/http/router/handler"
	"descya/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler         *handler.AuthHandler
	DealHandler         *handler.DealHandler
	CouponHandler       *handler.CouponHandler
	BusinessHandler     *handler.BusinessHandler
	NotificationHandler *handler.NotificationHandler
	StatsHandler        *handler.StatsHandler
	AuthMiddleware      *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	auth          *handler.AuthHandler
	deals         *handler.DealHandler
	coupons       *handler.CouponHandler
	businesses    *handler.BusinessHandler
	notifications *handler.NotificationHandler
	stats         *handler.StatsHandler
	authMW        *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		auth:          params.AuthHandler,
		deals:         params.DealHandler,
		coupons:       params.CouponHandler,
		businesses:    params.BusinessHandler,
		notifications: params.NotificationHandler,
		stats:         params.StatsHandler,
		authMW:        params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	e.GET("/health", handler.HealthCheck)

	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.auth.Register)
		authGroup.POST("/login", r.auth.Login)
	}

	// Public catalog. Listing and detail need no account.
	dealsGroup := e.Group("/deals")
	{
		dealsGroup.GET("", r.deals.ListVisible)
		dealsGroup.GET("/:id", r.deals.Get)
	}

	// Claims and the coupon wallet require a logged-in user.
	userGroup := e.Group("", r.authMW.Authenticate)
	{
		userGroup.POST("/deals/:id/claim", r.coupons.Claim)
		userGroup.GET("/coupons", r.coupons.ListMine)
		userGroup.GET("/coupons/:id/qr", r.coupons.QR)
		userGroup.GET("/notifications", r.notifications.List)
		userGroup.PATCH("/notifications/:id/read", r.notifications.MarkRead)
		userGroup.PATCH("/notifications/read-all", r.notifications.MarkAllRead)
	}

	// Business console: submitting deals and redeeming coupons at the counter.
	businessGroup := e.Group("/business",
		r.authMW.Authenticate,
		r.authMW.RequireRole(entity.RoleBusiness.String()))
	{
		businessGroup.GET("/deals", r.deals.ListMine)
		businessGroup.POST("/deals", r.deals.Submit)
		businessGroup.PUT("/deals/:id", r.deals.Update)
		businessGroup.DELETE("/deals/:id", r.deals.Delete)
		businessGroup.POST("/deals/:id/pause", r.deals.TogglePause)
		businessGroup.GET("/coupons", r.coupons.ListForBusiness)
		businessGroup.POST("/redeem", r.coupons.Redeem)
		businessGroup.GET("/stats", r.stats.Business)
	}

	// Admin panel: approval queue, curation and platform management.
	adminGroup := e.Group("/admin",
		r.authMW.Authenticate,
		r.authMW.RequireRole(entity.RoleAdmin.String()))
	{
		adminGroup.GET("/deals/pending", r.deals.ListPending)
		adminGroup.POST("/deals", r.deals.AdminCreate)
		adminGroup.PUT("/deals/:id", r.deals.Update)
		adminGroup.DELETE("/deals/:id", r.deals.Delete)
		adminGroup.POST("/deals/:id/approve", r.deals.Approve)
		adminGroup.POST("/deals/:id/reject", r.deals.Reject)
		adminGroup.POST("/deals/:id/pause", r.deals.TogglePause)
		adminGroup.POST("/deals/:id/feature", r.deals.ToggleFeatured)
		adminGroup.POST("/coupons/:id/redeem", r.coupons.AdminRedeem)
		adminGroup.GET("/businesses", r.businesses.List)
		adminGroup.POST("/businesses", r.businesses.Create)
		adminGroup.GET("/businesses/:id", r.businesses.Get)
		adminGroup.PUT("/businesses/:id", r.businesses.Update)
		adminGroup.DELETE("/businesses/:id", r.businesses.Delete)
		adminGroup.POST("/businesses/:id/approve", r.businesses.Approve)
		adminGroup.POST("/businesses/:id/reject", r.businesses.Reject)
		adminGroup.GET("/stats", r.stats.Platform)
	}
}
