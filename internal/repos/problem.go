package repos

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/grindlog/grindlog-backend/internal/platform/logger"
	"github.com/grindlog/grindlog-backend/internal/types"
)

type ProblemRepo interface {
	Create(ctx context.Context, tx *gorm.DB, problem *types.Problem) (*types.Problem, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.Problem, error)
	GetByUserIDSince(ctx context.Context, tx *gorm.DB, userID uuid.UUID, since time.Time) ([]types.Problem, error)
	DeleteByID(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) (int64, error)
}

type problemRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewProblemRepo(db *gorm.DB, baseLog *logger.Logger) ProblemRepo {
	return &problemRepo{db: db, log: baseLog.With("repo", "ProblemRepo")}
}

func (r *problemRepo) Create(ctx context.Context, tx *gorm.DB, problem *types.Problem) (*types.Problem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(problem).Error; err != nil {
		return nil, err
	}
	return problem, nil
}

func (r *problemRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.Problem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []types.Problem
	if userID == uuid.Nil {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *problemRepo) GetByUserIDSince(ctx context.Context, tx *gorm.DB, userID uuid.UUID, since time.Time) ([]types.Problem, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []types.Problem
	if userID == uuid.Nil {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("user_id = ? AND created_at >= ?", userID, since).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *problemRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	res := transaction.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&types.Problem{})
	return res.RowsAffected, res.Error
}
