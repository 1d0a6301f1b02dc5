package services

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/grindlog/grindlog-backend/internal/platform/logger"
	"github.com/grindlog/grindlog-backend/internal/recap"
	"github.com/grindlog/grindlog-backend/internal/types"
)

type fakeProblemRepo struct {
	created []*types.Problem
	since   []types.Problem
	deleted int64
	err     error
}

func (f *fakeProblemRepo) Create(_ context.Context, _ *gorm.DB, p *types.Problem) (*types.Problem, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.created = append(f.created, p)
	return p, nil
}

func (f *fakeProblemRepo) GetByUserID(_ context.Context, _ *gorm.DB, _ uuid.UUID) ([]types.Problem, error) {
	if f.err != nil {
		return nil, f.err
	}
	var out []types.Problem
	for _, p := range f.created {
		out = append(out, *p)
	}
	return out, nil
}

func (f *fakeProblemRepo) GetByUserIDSince(_ context.Context, _ *gorm.DB, _ uuid.UUID, _ time.Time) ([]types.Problem, error) {
	if f.err != nil {
		return nil, f.err
	}
	return f.since, nil
}

func (f *fakeProblemRepo) DeleteByID(_ context.Context, _ *gorm.DB, _, _ uuid.UUID) (int64, error) {
	if f.err != nil {
		return 0, f.err
	}
	return f.deleted, nil
}

func newProblemTestService(t *testing.T, repo *fakeProblemRepo) ProblemService {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	t.Cleanup(func() { log.Sync() })
	return NewProblemService(nil, log, repo, recap.NewBuilder(log, nil))
}

func TestSaveProblemComputesSlugAndDefaultStatus(t *testing.T) {
	repo := &fakeProblemRepo{}
	svc := newProblemTestService(t, repo)

	p, err := svc.Save(context.Background(), uuid.New(), SaveProblemInput{
		Problem:    "Two Sum!",
		Difficulty: types.DifficultyEasy,
		Mood:       types.MoodEasy,
	})
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if p.Slug != "two-sum" {
		t.Fatalf("slug: want=%q got=%q", "two-sum", p.Slug)
	}
	if len(p.Status) != 1 || p.Status[0] != types.StatusNeedsRevision {
		t.Fatalf("default status: got %v", p.Status)
	}
}

func TestSaveProblemValidation(t *testing.T) {
	svc := newProblemTestService(t, &fakeProblemRepo{})
	cases := []struct {
		name  string
		input SaveProblemInput
	}{
		{"missing title", SaveProblemInput{Difficulty: types.DifficultyEasy, Mood: types.MoodEasy}},
		{"bad difficulty", SaveProblemInput{Problem: "Two Sum", Difficulty: "Impossible", Mood: types.MoodEasy}},
		{"bad mood", SaveProblemInput{Problem: "Two Sum", Difficulty: types.DifficultyEasy, Mood: "Euphoric"}},
		{"bad status", SaveProblemInput{Problem: "Two Sum", Difficulty: types.DifficultyEasy, Mood: types.MoodEasy, Status: []string{"Maybe"}}},
	}
	for _, c := range cases {
		if _, err := svc.Save(context.Background(), uuid.New(), c.input); !errors.Is(err, ErrInvalidProblem) {
			t.Fatalf("%s: want ErrInvalidProblem, got %v", c.name, err)
		}
	}
}

func TestDeleteProblemNotFound(t *testing.T) {
	svc := newProblemTestService(t, &fakeProblemRepo{deleted: 0})
	if err := svc.Delete(context.Background(), uuid.New(), uuid.New()); !errors.Is(err, ErrProblemNotFound) {
		t.Fatalf("want ErrProblemNotFound, got %v", err)
	}
}

func TestWeeklyRecapEmptyWeek(t *testing.T) {
	svc := newProblemTestService(t, &fakeProblemRepo{})
	out, err := svc.WeeklyRecap(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("WeeklyRecap: %v", err)
	}
	if out != recap.NoActivityRecap {
		t.Fatalf("empty week recap: got %q", out)
	}
}

func TestWeeklyRecapRepoError(t *testing.T) {
	svc := newProblemTestService(t, &fakeProblemRepo{err: errors.New("db down")})
	if _, err := svc.WeeklyRecap(context.Background(), uuid.New()); err == nil {
		t.Fatalf("expected error when persistence read fails")
	} else if !strings.Contains(err.Error(), "failed to generate recap") {
		t.Fatalf("error should describe the recap failure, got %v", err)
	}
}
