package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/grindlog/grindlog-backend/internal/normalization"
	"github.com/grindlog/grindlog-backend/internal/platform/logger"
	"github.com/grindlog/grindlog-backend/internal/recap"
	"github.com/grindlog/grindlog-backend/internal/repos"
	"github.com/grindlog/grindlog-backend/internal/types"
)

const recapWindow = 7 * 24 * time.Hour

var (
	ErrProblemNotFound = errors.New("problem not found")
	ErrInvalidProblem  = errors.New("invalid problem")
)

// SaveProblemInput is one journal entry as submitted by the client. The
// slug is always recomputed server-side from the title.
type SaveProblemInput struct {
	Problem    string
	Difficulty types.Difficulty
	Mood       types.Mood
	Status     []string
	Patterns   []string
	Notes      string
	SolvedDate *time.Time
}

type ProblemService interface {
	Save(ctx context.Context, userID uuid.UUID, input SaveProblemInput) (*types.Problem, error)
	List(ctx context.Context, userID uuid.UUID) ([]types.Problem, error)
	Delete(ctx context.Context, userID, problemID uuid.UUID) error
	WeeklyRecap(ctx context.Context, userID uuid.UUID) (string, error)
}

type problemService struct {
	db           *gorm.DB
	log          *logger.Logger
	problemRepo  repos.ProblemRepo
	recapBuilder *recap.Builder
}

func NewProblemService(db *gorm.DB, log *logger.Logger, problemRepo repos.ProblemRepo, recapBuilder *recap.Builder) ProblemService {
	return &problemService{
		db:           db,
		log:          log.With("service", "ProblemService"),
		problemRepo:  problemRepo,
		recapBuilder: recapBuilder,
	}
}

func (ps *problemService) Save(ctx context.Context, userID uuid.UUID, input SaveProblemInput) (*types.Problem, error) {
	if input.Problem == "" {
		return nil, fmt.Errorf("%w: problem title is required", ErrInvalidProblem)
	}
	if !input.Difficulty.IsValid() {
		return nil, fmt.Errorf("%w: unknown difficulty %q", ErrInvalidProblem, input.Difficulty)
	}
	if !input.Mood.IsValid() {
		return nil, fmt.Errorf("%w: unknown mood %q", ErrInvalidProblem, input.Mood)
	}
	for _, s := range input.Status {
		if !types.StatusIsValid(s) {
			return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidProblem, s)
		}
	}
	status := input.Status
	if len(status) == 0 {
		status = []string{types.StatusNeedsRevision}
	}

	problem := &types.Problem{
		ID:         uuid.New(),
		UserID:     userID,
		Problem:    input.Problem,
		Slug:       normalization.Slug(input.Problem),
		Difficulty: input.Difficulty,
		Mood:       input.Mood,
		Status:     datatypes.NewJSONSlice(status),
		Patterns:   datatypes.NewJSONSlice(input.Patterns),
		Notes:      input.Notes,
		SolvedDate: input.SolvedDate,
	}
	if _, err := ps.problemRepo.Create(ctx, nil, problem); err != nil {
		return nil, fmt.Errorf("save problem: %w", err)
	}
	ps.log.Debug("Problem saved", "slug", problem.Slug)
	return problem, nil
}

func (ps *problemService) List(ctx context.Context, userID uuid.UUID) ([]types.Problem, error) {
	problems, err := ps.problemRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("list problems: %w", err)
	}
	return problems, nil
}

func (ps *problemService) Delete(ctx context.Context, userID, problemID uuid.UUID) error {
	affected, err := ps.problemRepo.DeleteByID(ctx, nil, problemID, userID)
	if err != nil {
		return fmt.Errorf("delete problem: %w", err)
	}
	if affected == 0 {
		return ErrProblemNotFound
	}
	return nil
}

// WeeklyRecap summarizes the caller's last seven days of entries. Only
// the persistence read can fail; recap building absorbs AI failures.
func (ps *problemService) WeeklyRecap(ctx context.Context, userID uuid.UUID) (string, error) {
	since := time.Now().Add(-recapWindow)
	problems, err := ps.problemRepo.GetByUserIDSince(ctx, nil, userID, since)
	if err != nil {
		return "", fmt.Errorf("failed to generate recap: %w", err)
	}
	return ps.recapBuilder.Build(ctx, problems), nil
}
