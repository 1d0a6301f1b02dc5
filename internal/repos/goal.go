package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/grindlog/grindlog-backend/internal/platform/logger"
	"github.com/grindlog/grindlog-backend/internal/types"
)

type GoalRepo interface {
	Create(ctx context.Context, tx *gorm.DB, goal *types.Goal) (*types.Goal, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.Goal, error)
	GetByID(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) (*types.Goal, error)
	Update(ctx context.Context, tx *gorm.DB, goal *types.Goal) error
	DeleteByID(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) (int64, error)
}

type goalRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewGoalRepo(db *gorm.DB, baseLog *logger.Logger) GoalRepo {
	return &goalRepo{db: db, log: baseLog.With("repo", "GoalRepo")}
}

func (r *goalRepo) Create(ctx context.Context, tx *gorm.DB, goal *types.Goal) (*types.Goal, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(goal).Error; err != nil {
		return nil, err
	}
	return goal, nil
}

func (r *goalRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.Goal, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []types.Goal
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

func (r *goalRepo) GetByID(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) (*types.Goal, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var goal types.Goal
	if err := transaction.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&goal).Error; err != nil {
		return nil, err
	}
	return &goal, nil
}

func (r *goalRepo) Update(ctx context.Context, tx *gorm.DB, goal *types.Goal) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Save(goal).Error
}

func (r *goalRepo) DeleteByID(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) (int64, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	res := transaction.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		Delete(&types.Goal{})
	return res.RowsAffected, res.Error
}
