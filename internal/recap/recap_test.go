package recap

import (
	"context"
	"errors"
	"strings"
	"testing"

	"gorm.io/datatypes"

	"github.com/grindlog/grindlog-backend/internal/platform/logger"
	"github.com/grindlog/grindlog-backend/internal/types"
)

type fakeAI struct {
	response string
	err      error
	calls    int
}

func (f *fakeAI) Complete(_ context.Context, _ string, _ int) (string, error) {
	f.calls++
	return f.response, f.err
}

func newTestBuilder(t *testing.T, ai *fakeAI) *Builder {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	t.Cleanup(func() { log.Sync() })
	if ai == nil {
		return NewBuilder(log, nil)
	}
	return NewBuilder(log, ai)
}

func entry(difficulty types.Difficulty, mood types.Mood, statuses ...string) types.Problem {
	return types.Problem{
		Problem:    "Two Sum",
		Slug:       "two-sum",
		Difficulty: difficulty,
		Mood:       mood,
		Status:     datatypes.NewJSONSlice(statuses),
	}
}

func TestBuildEmptyWeekReturnsNoActivityRecap(t *testing.T) {
	ai := &fakeAI{response: "• should not be used"}
	b := newTestBuilder(t, ai)
	out := b.Build(context.Background(), nil)
	if out != NoActivityRecap {
		t.Fatalf("empty week recap:\nwant=%q\ngot=%q", NoActivityRecap, out)
	}
	if ai.calls != 0 {
		t.Fatalf("no completion call expected for an empty week, got %d", ai.calls)
	}
}

func TestComputeStatusCountsAreMultiValued(t *testing.T) {
	s := Compute([]types.Problem{
		entry(types.DifficultyEasy, types.MoodEasy, types.StatusSolved, types.StatusNeedsRevision),
		entry(types.DifficultyMedium, types.MoodModerate, types.StatusCouldntSolve),
	})
	if s.Total != 2 {
		t.Fatalf("total: want=2 got=%d", s.Total)
	}
	if s.SolvedCount != 1 || s.RevisionCount != 1 || s.CouldntSolve != 1 {
		t.Fatalf("status counts: solved=%d revision=%d couldnt=%d", s.SolvedCount, s.RevisionCount, s.CouldntSolve)
	}
}

func TestComputeLowConfidence(t *testing.T) {
	// 3 of 4 moods are Challenging/Frustrating.
	s := Compute([]types.Problem{
		entry(types.DifficultyEasy, types.MoodChallenging, types.StatusSolved),
		entry(types.DifficultyEasy, types.MoodFrustrating, types.StatusSolved),
		entry(types.DifficultyEasy, types.MoodChallenging, types.StatusSolved),
		entry(types.DifficultyEasy, types.MoodEasy, types.StatusSolved),
	})
	if !s.LowConfidence {
		t.Fatalf("expected low confidence for 3/4 hard moods")
	}

	// 1 of 4 hard moods, no failed solves.
	s = Compute([]types.Problem{
		entry(types.DifficultyEasy, types.MoodChallenging, types.StatusSolved),
		entry(types.DifficultyEasy, types.MoodEasy, types.StatusSolved),
		entry(types.DifficultyEasy, types.MoodEasy, types.StatusSolved),
		entry(types.DifficultyEasy, types.MoodModerate, types.StatusSolved),
	})
	if s.LowConfidence {
		t.Fatalf("did not expect low confidence for 1/4 hard moods")
	}

	// Couldn't-solve share above one third flips it regardless of moods.
	s = Compute([]types.Problem{
		entry(types.DifficultyEasy, types.MoodEasy, types.StatusCouldntSolve),
		entry(types.DifficultyEasy, types.MoodEasy, types.StatusSolved),
	})
	if !s.LowConfidence {
		t.Fatalf("expected low confidence when half the entries went unsolved")
	}
}

func TestComputeProgressTrend(t *testing.T) {
	s := Compute([]types.Problem{
		entry(types.DifficultyHard, types.MoodModerate, types.StatusSolved),
		entry(types.DifficultyHard, types.MoodModerate, types.StatusSolved),
		entry(types.DifficultyHard, types.MoodModerate, types.StatusSolved),
		entry(types.DifficultyEasy, types.MoodEasy, types.StatusSolved),
	})
	if s.ProgressTrend != "strong progress tackling tougher problems" {
		t.Fatalf("trend: got %q", s.ProgressTrend)
	}

	s = Compute([]types.Problem{
		entry(types.DifficultyEasy, types.MoodEasy, types.StatusSolved),
		entry(types.DifficultyEasy, types.MoodEasy, types.StatusSolved),
		entry(types.DifficultyEasy, types.MoodEasy, types.StatusNeedsRevision),
	})
	if s.ProgressTrend != "steady progress with consistent solves" {
		t.Fatalf("trend: got %q", s.ProgressTrend)
	}

	s = Compute([]types.Problem{
		entry(types.DifficultyEasy, types.MoodEasy, types.StatusNeedsRevision),
		entry(types.DifficultyEasy, types.MoodEasy, types.StatusCouldntSolve),
	})
	if s.ProgressTrend != "room to push into Medium/Hard problems" {
		t.Fatalf("trend: got %q", s.ProgressTrend)
	}
}

func TestBuildCombinesDeterministicAndAIBullets(t *testing.T) {
	ai := &fakeAI{response: "• Mistake: Forgot edge cases.\n" +
		"• Solution: Practice boundary conditions.\n" +
		"some non-bullet commentary\n" +
		"• Focus: Sliding window.\n" +
		"• Extra bullet that must be dropped."}
	b := newTestBuilder(t, ai)

	out := b.Build(context.Background(), []types.Problem{
		entry(types.DifficultyMedium, types.MoodModerate, types.StatusSolved),
		entry(types.DifficultyEasy, types.MoodEasy, types.StatusSolved),
	})
	lines := strings.Split(out, "\n")
	if len(lines) != 7 {
		t.Fatalf("expected 4 stat bullets + 3 ai bullets, got %d lines:\n%s", len(lines), out)
	}
	if lines[0] != "• Weekly Stats: 2 problems (Easy: 1, Medium: 1, Hard: 0)." {
		t.Fatalf("stats bullet: got %q", lines[0])
	}
	if lines[1] != "• Status: 2 solved, 0 need revision, 0 couldn't solve." {
		t.Fatalf("status bullet: got %q", lines[1])
	}
	if !strings.Contains(lines[2], "Keep challenging yourself!") {
		t.Fatalf("progress bullet should encourage, got %q", lines[2])
	}
	if lines[4] != "• Mistake: Forgot edge cases." {
		t.Fatalf("first ai bullet: got %q", lines[4])
	}
	if lines[6] != "• Focus: Sliding window." {
		t.Fatalf("third ai bullet: got %q", lines[6])
	}
	if ai.calls != 1 {
		t.Fatalf("expected exactly one completion call, got %d", ai.calls)
	}
}

func TestBuildUsesFallbackBulletsOnAIFailure(t *testing.T) {
	ai := &fakeAI{err: errors.New("upstream down")}
	b := newTestBuilder(t, ai)
	out := b.Build(context.Background(), []types.Problem{
		entry(types.DifficultyEasy, types.MoodEasy, types.StatusSolved),
	})
	for _, fb := range fallbackBullets {
		if !strings.Contains(out, fb) {
			t.Fatalf("missing fallback bullet %q in:\n%s", fb, out)
		}
	}
}

func TestBuildUsesFallbackBulletsWhenNoBulletsParsed(t *testing.T) {
	ai := &fakeAI{response: "I could not produce bullets today."}
	b := newTestBuilder(t, ai)
	out := b.Build(context.Background(), []types.Problem{
		entry(types.DifficultyEasy, types.MoodEasy, types.StatusSolved),
	})
	if !strings.Contains(out, fallbackBullets[0]) {
		t.Fatalf("expected fallback bullets, got:\n%s", out)
	}
}

func TestBuildWithoutClientUsesFallbackBullets(t *testing.T) {
	b := newTestBuilder(t, nil)
	out := b.Build(context.Background(), []types.Problem{
		entry(types.DifficultyEasy, types.MoodEasy, types.StatusSolved),
	})
	if !strings.Contains(out, fallbackBullets[1]) {
		t.Fatalf("expected fallback bullets without a client, got:\n%s", out)
	}
}
