package app

import (
	"gorm.io/gorm"

	"github.com/grindlog/grindlog-backend/internal/platform/cache"
	"github.com/grindlog/grindlog-backend/internal/platform/logger"
	"github.com/grindlog/grindlog-backend/internal/platform/togetherai"
	"github.com/grindlog/grindlog-backend/internal/recap"
	"github.com/grindlog/grindlog-backend/internal/roadmap"
	"github.com/grindlog/grindlog-backend/internal/services"
)

type Services struct {
	Auth     services.AuthService
	User     services.UserService
	Problem  services.ProblemService
	Goal     services.GoalService
	Leetcode services.LeetcodeService
	Todo     services.TodoService
}

// wireServices builds the service layer. The AI client and the redis cache
// are optional: when either is unavailable the dependent services fall back
// to their deterministic behavior instead of failing startup.
func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, r Repos) Services {
	log.Info("Wiring services...")

	aiClient, err := togetherai.NewClient(log)
	if err != nil {
		log.Warn("Together AI client unavailable, AI features will use fallbacks", "error", err)
		aiClient = nil
	}

	redisCache, err := cache.NewRedis(log)
	if err != nil {
		log.Warn("Redis cache unavailable, AI help responses will not be cached", "error", err)
		redisCache = nil
	}

	roadmapGen := roadmap.NewGenerator(log, aiClient)
	recapBuilder := recap.NewBuilder(log, aiClient)

	return Services{
		Auth: services.NewAuthService(
			db, log, r.User, r.UserToken,
			cfg.JWTSecretKey, cfg.AccessTokenTTL, cfg.RefreshTokenTTL,
		),
		User:     services.NewUserService(db, log, r.User),
		Problem:  services.NewProblemService(db, log, r.Problem, recapBuilder),
		Goal:     services.NewGoalService(db, log, r.Goal, roadmapGen),
		Leetcode: services.NewLeetcodeService(log, aiClient, redisCache),
		Todo:     services.NewTodoService(db, log, r.Todo),
	}
}
