package app

import (
	"gorm.io/gorm"

	"github.com/grindlog/grindlog-backend/internal/platform/logger"
	"github.com/grindlog/grindlog-backend/internal/repos"
)

type Repos struct {
	User      repos.UserRepo
	UserToken repos.UserTokenRepo
	Problem   repos.ProblemRepo
	Goal      repos.GoalRepo
	Todo      repos.TodoRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		User:      repos.NewUserRepo(db, log),
		UserToken: repos.NewUserTokenRepo(db, log),
		Problem:   repos.NewProblemRepo(db, log),
		Goal:      repos.NewGoalRepo(db, log),
		Todo:      repos.NewTodoRepo(db, log),
	}
}
