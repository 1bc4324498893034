// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"tracker/internal/delivery/api/router/handler"
	"tracker/internal/infra/metrics"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	UserHandler       *handler.UserHandler
	LogHandler        *handler.LogHandler
	ActivityHandler   *handler.ActivityHandler
	LearnerHandler    *handler.LearnerHandler
	EngagementHandler *handler.EngagementHandler
	Metrics           *metrics.Metrics `optional:"true"`
}

// router holds all the handlers that need to be registered.
type router struct {
	userHandler       *handler.UserHandler
	logHandler        *handler.LogHandler
	activityHandler   *handler.ActivityHandler
	learnerHandler    *handler.LearnerHandler
	engagementHandler *handler.EngagementHandler
	metrics           *metrics.Metrics
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		userHandler:       params.UserHandler,
		logHandler:        params.LogHandler,
		activityHandler:   params.ActivityHandler,
		learnerHandler:    params.LearnerHandler,
		engagementHandler: params.EngagementHandler,
		metrics:           params.Metrics,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	if r.metrics != nil {
		e.GET("/metrics", echo.WrapHandler(r.metrics.Handler()))
	}

	usersGroup := e.Group("/users")
	{
		usersGroup.POST("", r.userHandler.CreateUser)
		usersGroup.GET("/tg/:tg_id", r.userHandler.GetUserByTelegramID)
		usersGroup.DELETE("/tg/:tg_id", r.userHandler.DeleteUserByTelegramID)
		usersGroup.GET("/:id", r.userHandler.GetUser)
		usersGroup.PUT("/:id", r.userHandler.UpdateUser)
		usersGroup.DELETE("/:id", r.userHandler.DeleteUser)

		// Conversations are embedded in the user and addressed by position.
		usersGroup.POST("/:id/conversations", r.userHandler.AddConversation)
		usersGroup.GET("/:id/conversations/:idx", r.userHandler.GetConversation)
		usersGroup.POST("/:id/conversations/:idx/messages", r.userHandler.AddMessage)
		usersGroup.GET("/:id/messages", r.userHandler.ListMessages)
	}

	logsGroup := e.Group("/logs")
	{
		logsGroup.POST("", r.logHandler.CreateLog)
		logsGroup.GET("/user/:user_id", r.logHandler.ListLogsByUser)
		logsGroup.GET("/:id", r.logHandler.GetLog)
		logsGroup.PUT("/:id", r.logHandler.UpdateLog)
		logsGroup.DELETE("/:id", r.logHandler.DeleteLog)
	}

	r.activityHandler.Register(e.Group("/activities"))
	r.learnerHandler.Register(e.Group("/learners"))
	r.engagementHandler.Register(e.Group("/engagements"))
}
