package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/grindlog/grindlog-backend/internal/platform/logger"
	"github.com/grindlog/grindlog-backend/internal/repos"
	"github.com/grindlog/grindlog-backend/internal/types"
)

var ErrTodoNotFound = errors.New("todo not found")

type TodoService interface {
	Create(ctx context.Context, userID uuid.UUID, description string) (*types.Todo, error)
	List(ctx context.Context, userID uuid.UUID) ([]types.Todo, error)
	SetCompleted(ctx context.Context, userID, todoID uuid.UUID, completed bool) (*types.Todo, error)
}

type todoService struct {
	db       *gorm.DB
	log      *logger.Logger
	todoRepo repos.TodoRepo
}

func NewTodoService(db *gorm.DB, log *logger.Logger, todoRepo repos.TodoRepo) TodoService {
	return &todoService{db: db, log: log.With("service", "TodoService"), todoRepo: todoRepo}
}

func (ts *todoService) Create(ctx context.Context, userID uuid.UUID, description string) (*types.Todo, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, fmt.Errorf("task description is required")
	}
	todo := &types.Todo{
		ID:          uuid.New(),
		UserID:      userID,
		Description: description,
	}
	if _, err := ts.todoRepo.Create(ctx, nil, todo); err != nil {
		return nil, fmt.Errorf("create todo: %w", err)
	}
	return todo, nil
}

func (ts *todoService) List(ctx context.Context, userID uuid.UUID) ([]types.Todo, error) {
	todos, err := ts.todoRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("list todos: %w", err)
	}
	return todos, nil
}

func (ts *todoService) SetCompleted(ctx context.Context, userID, todoID uuid.UUID, completed bool) (*types.Todo, error) {
	todo, err := ts.todoRepo.GetByID(ctx, nil, todoID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTodoNotFound
		}
		return nil, fmt.Errorf("fetch todo: %w", err)
	}
	todo.Completed = completed
	if err := ts.todoRepo.Update(ctx, nil, todo); err != nil {
		return nil, fmt.Errorf("update todo: %w", err)
	}
	return todo, nil
}
