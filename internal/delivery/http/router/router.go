// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"matrimony/internal/delivery/http/middleware"
	"matrimony/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler     *handler.AuthHandler
	BiodataHandler  *handler.BiodataHandler
	FavoriteHandler *handler.FavoriteHandler
	UserHandler     *handler.UserHandler
	ReviewHandler   *handler.ReviewHandler
	PaymentHandler  *handler.PaymentHandler
	StatsHandler    *handler.StatsHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	params RouterParams
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{params: params}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	authenticate := r.params.AuthMiddleware.Authenticate

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Session routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/session", r.params.AuthHandler.CreateSession)
		authGroup.DELETE("/session", r.params.AuthHandler.DeleteSession)
	}

	// Listing routes; browsing is public, single-profile reads and writes
	// require a session because disclosure depends on the viewer.
	biodataGroup := e.Group("/biodatas")
	{
		biodataGroup.GET("", r.params.BiodataHandler.List)
		biodataGroup.GET("/premium", r.params.BiodataHandler.ListPremium)
		biodataGroup.GET("/self", r.params.BiodataHandler.GetOwn, authenticate)
		biodataGroup.PUT("", r.params.BiodataHandler.Save, authenticate)
		biodataGroup.GET("/:id", r.params.BiodataHandler.GetByID, authenticate)
	}

	// Bookmark routes
	favoriteGroup := e.Group("/favourites")
	favoriteGroup.Use(authenticate)
	{
		favoriteGroup.POST("", r.params.FavoriteHandler.Add)
		favoriteGroup.GET("", r.params.FavoriteHandler.List)
		favoriteGroup.DELETE("/:biodataId", r.params.FavoriteHandler.Remove)
	}

	// Account routes
	userGroup := e.Group("/users")
	userGroup.Use(authenticate)
	{
		userGroup.GET("/self", r.params.UserHandler.GetSelf)
		userGroup.POST("/self/premium", r.params.UserHandler.RequestPremium)
		userGroup.GET("", r.params.UserHandler.List)
		userGroup.PATCH("/:email/role", r.params.UserHandler.GrantRole)
		userGroup.PATCH("/:email/premium", r.params.UserHandler.ApprovePremium)
	}

	// Success story routes
	reviewGroup := e.Group("/reviews")
	{
		reviewGroup.GET("", r.params.ReviewHandler.List)
		reviewGroup.POST("", r.params.ReviewHandler.Submit, authenticate)
	}

	// Purchase routes. The gateway callback is unauthenticated because the
	// aggregator posts it server-to-server.
	paymentGroup := e.Group("/payments")
	{
		paymentGroup.POST("/callback/:outcome", r.params.PaymentHandler.GatewayCallback)
		paymentGroup.POST("/card/intent", r.params.PaymentHandler.CreateCardIntent, authenticate)
		paymentGroup.POST("/card/confirm", r.params.PaymentHandler.ConfirmCard, authenticate)
		paymentGroup.POST("/checkout", r.params.PaymentHandler.Checkout, authenticate)
		paymentGroup.GET("/checkout/:tranId/qr", r.params.PaymentHandler.CheckoutQR, authenticate)
		paymentGroup.GET("/contact-requests", r.params.PaymentHandler.ListOwn, authenticate)
		paymentGroup.GET("/unlocked/:biodataId", r.params.PaymentHandler.Unlocked, authenticate)
		paymentGroup.DELETE("/:tranId", r.params.PaymentHandler.Cancel, authenticate)
		paymentGroup.GET("", r.params.PaymentHandler.ListAll, authenticate)
		paymentGroup.PATCH("/:tranId/approve", r.params.PaymentHandler.Approve, authenticate)
	}

	// Statistics routes
	statsGroup := e.Group("/stats")
	{
		statsGroup.GET("/summary", r.params.StatsHandler.Summary)
		statsGroup.GET("", r.params.StatsHandler.AdminStats, authenticate)
	}
}
