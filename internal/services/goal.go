package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/grindlog/grindlog-backend/internal/normalization"
	"github.com/grindlog/grindlog-backend/internal/platform/logger"
	"github.com/grindlog/grindlog-backend/internal/repos"
	"github.com/grindlog/grindlog-backend/internal/roadmap"
	"github.com/grindlog/grindlog-backend/internal/types"
)

var ErrGoalNotFound = errors.New("goal not found")

// ErrInvalidGoal wraps every validation failure so the handler can map
// it to a 400 without string matching.
var ErrInvalidGoal = errors.New("invalid goal")

// CreateGoalInput is the goal-creation payload after JSON binding.
type CreateGoalInput struct {
	Title         string
	TargetDate    string
	ProblemCount  int
	DailyTime     int
	LearningStyle types.LearningStyle
}

// GoalUpdate carries the only two fields a goal accepts after creation.
// Topics and roadmaps are immutable once generated.
type GoalUpdate struct {
	Progress         *int
	MissedGoalReason string
}

type GoalService interface {
	Create(ctx context.Context, userID uuid.UUID, input CreateGoalInput) (*types.Goal, error)
	List(ctx context.Context, userID uuid.UUID) ([]types.Goal, error)
	Update(ctx context.Context, userID, goalID uuid.UUID, update GoalUpdate) (*types.Goal, error)
	Delete(ctx context.Context, userID, goalID uuid.UUID) error
}

type goalService struct {
	db        *gorm.DB
	log       *logger.Logger
	goalRepo  repos.GoalRepo
	generator *roadmap.Generator
}

func NewGoalService(db *gorm.DB, log *logger.Logger, goalRepo repos.GoalRepo, generator *roadmap.Generator) GoalService {
	return &goalService{
		db:        db,
		log:       log.With("service", "GoalService"),
		goalRepo:  goalRepo,
		generator: generator,
	}
}

func (gs *goalService) Create(ctx context.Context, userID uuid.UUID, input CreateGoalInput) (*types.Goal, error) {
	targetDate, err := gs.validate(input)
	if err != nil {
		return nil, err
	}

	topics := normalization.ParseGoalTopics(input.Title)
	if len(topics) == 0 {
		return nil, fmt.Errorf("%w: at least one topic is required", ErrInvalidGoal)
	}

	perTopic := roadmap.SplitProblemCount(input.ProblemCount, len(topics))

	// Topic roadmaps are independent; generate them concurrently but
	// keep the order they were parsed from the title.
	goalTopics := make([]types.GoalTopic, len(topics))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(4)
	for i, topic := range topics {
		g.Go(func() error {
			text := gs.generator.Generate(gctx, roadmap.Input{
				DailyTimeMinutes: input.DailyTime,
				LearningStyle:    input.LearningStyle,
				ProblemCount:     perTopic,
				TargetDate:       targetDate,
				Topic:            topic,
			})
			goalTopics[i] = types.GoalTopic{Name: topic, Roadmap: text}
			return nil
		})
	}
	_ = g.Wait()

	goal := &types.Goal{
		ID:            uuid.New(),
		UserID:        userID,
		Title:         input.Title,
		TargetDate:    targetDate,
		ProblemCount:  input.ProblemCount,
		DailyTime:     input.DailyTime,
		LearningStyle: input.LearningStyle,
		Topics:        datatypes.NewJSONSlice(goalTopics),
	}
	if _, err := gs.goalRepo.Create(ctx, nil, goal); err != nil {
		return nil, fmt.Errorf("create goal: %w", err)
	}
	gs.log.Info("Goal created", "goal_id", goal.ID.String(), "topics", len(topics))
	return goal, nil
}

func (gs *goalService) validate(input CreateGoalInput) (time.Time, error) {
	if input.Title == "" {
		return time.Time{}, fmt.Errorf("%w: title is required", ErrInvalidGoal)
	}
	if input.TargetDate == "" {
		return time.Time{}, fmt.Errorf("%w: target date is required", ErrInvalidGoal)
	}
	targetDate, err := parseDate(input.TargetDate)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: target date is not a valid date", ErrInvalidGoal)
	}
	if input.ProblemCount < 1 {
		return time.Time{}, fmt.Errorf("%w: problem count must be at least 1", ErrInvalidGoal)
	}
	if input.DailyTime < 10 {
		return time.Time{}, fmt.Errorf("%w: daily time must be at least 10 minutes", ErrInvalidGoal)
	}
	if !input.LearningStyle.IsValid() {
		return time.Time{}, fmt.Errorf("%w: unknown learning style %q", ErrInvalidGoal, input.LearningStyle)
	}
	return targetDate, nil
}

func parseDate(raw string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02"} {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable date %q", raw)
}

func (gs *goalService) List(ctx context.Context, userID uuid.UUID) ([]types.Goal, error) {
	goals, err := gs.goalRepo.GetByUserID(ctx, nil, userID)
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return goals, nil
}

func (gs *goalService) Update(ctx context.Context, userID, goalID uuid.UUID, update GoalUpdate) (*types.Goal, error) {
	goal, err := gs.goalRepo.GetByID(ctx, nil, goalID, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrGoalNotFound
		}
		return nil, fmt.Errorf("fetch goal: %w", err)
	}
	if update.Progress != nil {
		if *update.Progress < 0 || *update.Progress > 100 {
			return nil, fmt.Errorf("%w: progress must be between 0 and 100", ErrInvalidGoal)
		}
		goal.Progress = *update.Progress
	}
	if update.MissedGoalReason != "" {
		goal.MissedGoalReason = update.MissedGoalReason
	}
	if err := gs.goalRepo.Update(ctx, nil, goal); err != nil {
		return nil, fmt.Errorf("update goal: %w", err)
	}
	return goal, nil
}

func (gs *goalService) Delete(ctx context.Context, userID, goalID uuid.UUID) error {
	affected, err := gs.goalRepo.DeleteByID(ctx, nil, goalID, userID)
	if err != nil {
		return fmt.Errorf("delete goal: %w", err)
	}
	if affected == 0 {
		return ErrGoalNotFound
	}
	return nil
}
