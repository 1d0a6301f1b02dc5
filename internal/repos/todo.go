package repos

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/grindlog/grindlog-backend/internal/platform/logger"
	"github.com/grindlog/grindlog-backend/internal/types"
)

type TodoRepo interface {
	Create(ctx context.Context, tx *gorm.DB, todo *types.Todo) (*types.Todo, error)
	GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.Todo, error)
	GetByID(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) (*types.Todo, error)
	Update(ctx context.Context, tx *gorm.DB, todo *types.Todo) error
}

type todoRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewTodoRepo(db *gorm.DB, baseLog *logger.Logger) TodoRepo {
	return &todoRepo{db: db, log: baseLog.With("repo", "TodoRepo")}
}

func (r *todoRepo) Create(ctx context.Context, tx *gorm.DB, todo *types.Todo) (*types.Todo, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	if err := transaction.WithContext(ctx).Create(todo).Error; err != nil {
		return nil, err
	}
	return todo, nil
}

func (r *todoRepo) GetByUserID(ctx context.Context, tx *gorm.DB, userID uuid.UUID) ([]types.Todo, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var results []types.Todo
	if userID == uuid.Nil {
		return results, nil
	}
	if err := transaction.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at ASC").
		Find(&results).Error; err != nil {
		return nil, err
	}
	return results, nil
}

func (r *todoRepo) GetByID(ctx context.Context, tx *gorm.DB, id, userID uuid.UUID) (*types.Todo, error) {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	var todo types.Todo
	if err := transaction.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&todo).Error; err != nil {
		return nil, err
	}
	return &todo, nil
}

func (r *todoRepo) Update(ctx context.Context, tx *gorm.DB, todo *types.Todo) error {
	transaction := tx
	if transaction == nil {
		transaction = r.db
	}
	return transaction.WithContext(ctx).Save(todo).Error
}
