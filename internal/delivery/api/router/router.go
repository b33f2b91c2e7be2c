// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"workbench/internal/delivery/api/middleware"
	"workbench/internal/delivery/api/router/handler"
	"workbench/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	AuthHandler       *handler.AuthHandler
	CommentHandler    *handler.CommentHandler
	EvaluationHandler *handler.EvaluationHandler
	WalletHandler     *handler.WalletHandler
	PinningHandler    *handler.PinningHandler
	AuthMiddleware    *middleware.AuthMiddleware
	Metrics           *metrics.Metrics
}

// router holds all the handlers that need to be registered.
type router struct {
	authHandler       *handler.AuthHandler
	commentHandler    *handler.CommentHandler
	evaluationHandler *handler.EvaluationHandler
	walletHandler     *handler.WalletHandler
	pinningHandler    *handler.PinningHandler
	authMiddleware    *middleware.AuthMiddleware
	metrics           *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		authHandler:       params.AuthHandler,
		commentHandler:    params.CommentHandler,
		evaluationHandler: params.EvaluationHandler,
		walletHandler:     params.WalletHandler,
		pinningHandler:    params.PinningHandler,
		authMiddleware:    params.AuthMiddleware,
		metrics:           params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check and metrics endpoints
	e.GET("/health", handler.HealthCheck)
	e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))

	api := e.Group("/api")

	// Auth routes
	api.POST("/auth/login", r.authHandler.Login)

	// Guestbook routes; mutations require an admin token
	commentsGroup := api.Group("/comments")
	{
		commentsGroup.GET("", r.commentHandler.ListComments)
		commentsGroup.POST("", r.commentHandler.CreateComment)
		commentsGroup.PUT("/:id", r.commentHandler.UpdateComment, r.authMiddleware.Authenticate)
		commentsGroup.DELETE("/:id", r.commentHandler.DeleteComment, r.authMiddleware.Authenticate)
	}

	// Idea evaluation
	api.POST("/evaluate", r.evaluationHandler.Evaluate)

	// Wallet signing routes
	xamanGroup := api.Group("/xaman")
	{
		xamanGroup.POST("/signin", r.walletHandler.SignIn)
		xamanGroup.POST("/payment", r.walletHandler.Payment)
		xamanGroup.POST("/mint", r.walletHandler.Mint)
		xamanGroup.GET("/status", r.walletHandler.Status)
	}

	// Pinning routes
	api.POST("/upload-ipfs", r.pinningHandler.Upload)
	api.GET("/pins/:hash", r.pinningHandler.GetPin)
}
