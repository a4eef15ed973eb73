// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"wrench/internal/delivery/http/middleware"
	"wrench/internal/delivery/http/router/handler"
	"wrench/internal/delivery/ws"
	"wrench/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler         *handler.UserHandler
	JobHandler          *handler.JobHandler
	QuoteHandler        *handler.QuoteHandler
	ReviewHandler       *handler.ReviewHandler
	NotificationHandler *handler.NotificationHandler
	PaymentHandler      *handler.PaymentHandler
	WSHandler           *ws.Handler
	AuthMiddleware      *middleware.AuthMiddleware
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
	auth := r.params.AuthMiddleware

	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/register", r.params.UserHandler.Register)
		authGroup.POST("/login", r.params.UserHandler.Login)
	}

	// Payment gateway callbacks authenticate via signature, not JWT.
	e.POST("/webhooks/payments", r.params.PaymentHandler.Webhook)

	// Real-time entrypoint; the token is verified during the handshake.
	e.GET("/ws", r.params.WSHandler.Handle)

	api := e.Group("/api")
	api.Use(auth.Authenticate)

	userGroup := api.Group("/users")
	{
		userGroup.GET("/me", r.params.UserHandler.GetProfile)
		userGroup.PUT("/me/device-token", r.params.UserHandler.RegisterDeviceToken)
	}

	jobGroup := api.Group("/jobs")
	{
		jobGroup.POST("", r.params.JobHandler.CreateJob, auth.RequireRole(entity.RoleCustomer))
		jobGroup.GET("", r.params.JobHandler.ListJobs)
		jobGroup.GET("/:id", r.params.JobHandler.GetJob)
		jobGroup.PATCH("/:id/status", r.params.JobHandler.UpdateStatus)
		jobGroup.PUT("/:id/location", r.params.JobHandler.UpdateLocation, auth.RequireRole(entity.RoleMechanic))
		jobGroup.POST("/:id/parts", r.params.JobHandler.AddPart, auth.RequireRole(entity.RoleMechanic))
		jobGroup.GET("/:id/parts", r.params.JobHandler.ListParts)
		jobGroup.PUT("/:id/totals", r.params.JobHandler.UpdateTotals, auth.RequireRole(entity.RoleMechanic))
		jobGroup.POST("/:id/timer", r.params.JobHandler.AddTimerEntry, auth.RequireRole(entity.RoleMechanic))
		jobGroup.GET("/:id/timer", r.params.JobHandler.GetTimerEntries)
		jobGroup.POST("/:id/photos", r.params.JobHandler.AddPhoto)
		jobGroup.GET("/:id/photos", r.params.JobHandler.ListPhotos)
		jobGroup.GET("/:id/timeline", r.params.JobHandler.GetTimeline)
		jobGroup.GET("/:id/checkin-qr", r.params.JobHandler.CheckInQR)
		jobGroup.GET("/:id/messages", r.params.JobHandler.ListMessages)
		jobGroup.POST("/:id/messages", r.params.JobHandler.SendMessage)
		jobGroup.POST("/:id/deposit-intent", r.params.PaymentHandler.CreateDepositIntent, auth.RequireRole(entity.RoleCustomer))
		jobGroup.POST("/:id/reviews", r.params.ReviewHandler.SubmitReview)
	}

	quoteGroup := api.Group("/quotes")
	{
		quoteGroup.POST("", r.params.QuoteHandler.CreateQuote, auth.RequireRole(entity.RoleMechanic))
		quoteGroup.GET("/:id", r.params.QuoteHandler.GetQuote)
		quoteGroup.POST("/:id/accept", r.params.QuoteHandler.AcceptQuote, auth.RequireRole(entity.RoleCustomer))
		quoteGroup.POST("/:id/reject", r.params.QuoteHandler.RejectQuote, auth.RequireRole(entity.RoleCustomer))
		quoteGroup.POST("/:id/approve", r.params.QuoteHandler.ApproveQuote, auth.RequireRole(entity.RoleAdmin))
	}

	api.GET("/mechanics/:id/reviews", r.params.ReviewHandler.ListMechanicReviews)

	reviewGroup := api.Group("/reviews")
	{
		reviewGroup.POST("/:id/report", r.params.ReviewHandler.ReportReview)
		reviewGroup.PATCH("/:id/moderation", r.params.ReviewHandler.ModerateReview, auth.RequireRole(entity.RoleAdmin))
	}

	notificationGroup := api.Group("/notifications")
	{
		notificationGroup.GET("", r.params.NotificationHandler.ListNotifications)
		notificationGroup.GET("/unread-count", r.params.NotificationHandler.UnreadCount)
		notificationGroup.POST("/:id/read", r.params.NotificationHandler.MarkRead)
		notificationGroup.POST("/read-all", r.params.NotificationHandler.MarkAllRead)
	}
}
