package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/grindlog/grindlog-backend/internal/http/handlers"
	httpMW "github.com/grindlog/grindlog-backend/internal/http/middleware"
	"github.com/grindlog/grindlog-backend/internal/platform/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	AuthMiddleware *httpMW.AuthMiddleware

	HealthHandler   *httpH.HealthHandler
	AuthHandler     *httpH.AuthHandler
	UserHandler     *httpH.UserHandler
	ProblemHandler  *httpH.ProblemHandler
	GoalHandler     *httpH.GoalHandler
	LeetcodeHandler *httpH.LeetcodeHandler
	TodoHandler     *httpH.TodoHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	api := r.Group("/api")
	{
		if cfg.AuthHandler != nil {
			api.POST("/register", cfg.AuthHandler.Register)
			api.POST("/login", cfg.AuthHandler.Login)
		}
	}

	protected := api.Group("/")
	{
		if cfg.AuthMiddleware != nil {
			protected.Use(cfg.AuthMiddleware.RequireAuth())
		}

		if cfg.AuthHandler != nil {
			protected.POST("/refresh", cfg.AuthHandler.Refresh)
			protected.POST("/logout", cfg.AuthHandler.Logout)
			protected.PUT("/me/password", cfg.AuthHandler.ChangePassword)
		}

		if cfg.UserHandler != nil {
			protected.GET("/me", cfg.UserHandler.GetMe)
			protected.PUT("/me", cfg.UserHandler.UpdateProfile)
		}

		if cfg.ProblemHandler != nil {
			protected.POST("/problems", cfg.ProblemHandler.Save)
			protected.GET("/problems", cfg.ProblemHandler.List)
			protected.GET("/problems/ai-recap", cfg.ProblemHandler.AIRecap)
			protected.DELETE("/problems/:id", cfg.ProblemHandler.Delete)
		}

		if cfg.GoalHandler != nil {
			protected.POST("/goals", cfg.GoalHandler.Create)
			protected.GET("/goals", cfg.GoalHandler.List)
			protected.PUT("/goals/:id", cfg.GoalHandler.Update)
			protected.DELETE("/goals/:id", cfg.GoalHandler.Delete)
		}

		if cfg.LeetcodeHandler != nil {
			protected.GET("/leetcode/ai-help", cfg.LeetcodeHandler.AIHelp)
		}

		if cfg.TodoHandler != nil {
			protected.GET("/todos", cfg.TodoHandler.List)
			protected.POST("/todos", cfg.TodoHandler.Create)
			protected.PUT("/todos/:id", cfg.TodoHandler.Update)
		}
	}

	return r
}
