package app

import (
	"github.com/gin-gonic/gin"

	"github.com/grindlog/grindlog-backend/internal/http"
	httpH "github.com/grindlog/grindlog-backend/internal/http/handlers"
	httpMW "github.com/grindlog/grindlog-backend/internal/http/middleware"
	"github.com/grindlog/grindlog-backend/internal/platform/logger"
)

type Middleware struct {
	Auth *httpMW.AuthMiddleware
}

type Handlers struct {
	Health   *httpH.HealthHandler
	Auth     *httpH.AuthHandler
	User     *httpH.UserHandler
	Problem  *httpH.ProblemHandler
	Goal     *httpH.GoalHandler
	Leetcode *httpH.LeetcodeHandler
	Todo     *httpH.TodoHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:   httpH.NewHealthHandler(),
		Auth:     httpH.NewAuthHandler(services.Auth),
		User:     httpH.NewUserHandler(services.User),
		Problem:  httpH.NewProblemHandler(services.Problem),
		Goal:     httpH.NewGoalHandler(services.Goal),
		Leetcode: httpH.NewLeetcodeHandler(services.Leetcode),
		Todo:     httpH.NewTodoHandler(services.Todo),
	}
}

func wireMiddleware(log *logger.Logger, services Services) Middleware {
	log.Info("Wiring middleware...")
	return Middleware{
		Auth: httpMW.NewAuthMiddleware(log, services.Auth),
	}
}

func wireRouter(log *logger.Logger, handlers Handlers, middleware Middleware) *gin.Engine {
	return http.NewRouter(http.RouterConfig{
		Log:             log,
		AuthMiddleware:  middleware.Auth,
		HealthHandler:   handlers.Health,
		AuthHandler:     handlers.Auth,
		UserHandler:     handlers.User,
		ProblemHandler:  handlers.Problem,
		GoalHandler:     handlers.Goal,
		LeetcodeHandler: handlers.Leetcode,
		TodoHandler:     handlers.Todo,
	})
}
