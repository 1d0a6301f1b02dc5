package roadmap

import (
	"context"
	"fmt"
	"math"
	"regexp"
	"strings"
	"time"

	"github.com/grindlog/grindlog-backend/internal/normalization"
	"github.com/grindlog/grindlog-backend/internal/platform/logger"
	"github.com/grindlog/grindlog-backend/internal/platform/togetherai"
	"github.com/grindlog/grindlog-backend/internal/types"
)

const (
	promptMaxTokens = 200
	segmentCount    = 3
)

var markdownLink = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)

// Input describes the per-topic plan request.
type Input struct {
	DailyTimeMinutes int
	LearningStyle    types.LearningStyle
	ProblemCount     int
	TargetDate       time.Time
	Topic            string
}

// Generator produces day-by-day study plan text for one topic. The
// primary path asks the completion service; every failure mode collapses
// into the deterministic fallback, so Generate always returns a
// non-empty string and never an error.
type Generator struct {
	log *logger.Logger
	ai  togetherai.Client
	now func() time.Time
}

func NewGenerator(log *logger.Logger, ai togetherai.Client) *Generator {
	return &Generator{
		log: log.With("service", "RoadmapGenerator"),
		ai:  ai,
		now: time.Now,
	}
}

func (g *Generator) Generate(ctx context.Context, in Input) string {
	totalDays := g.totalDays(in.TargetDate)
	problemsPerDay := ceilDiv(in.ProblemCount, totalDays)
	topic := normalization.Topic(in.Topic)

	text := g.fromAI(ctx, in, totalDays, topic)
	if text == "" {
		text = fallback(in, totalDays, problemsPerDay, topic)
	}
	return stripMarkdownLinks(text)
}

// totalDays floors at 1: a target date in the past still yields a
// one-day plan rather than an error.
func (g *Generator) totalDays(target time.Time) int {
	days := int(math.Ceil(target.Sub(g.now()).Hours() / 24))
	if days < 1 {
		return 1
	}
	return days
}

func (g *Generator) fromAI(ctx context.Context, in Input, totalDays int, topic string) string {
	if g.ai == nil {
		return ""
	}
	prompt := buildPrompt(in, totalDays, topic)

	// One retry with the identical prompt, then give up and fall back.
	for attempt := 0; attempt < 2; attempt++ {
		text, err := g.ai.Complete(ctx, prompt, promptMaxTokens)
		if err != nil {
			g.log.Warn("Roadmap completion failed", "topic", topic, "attempt", attempt+1, "error", err)
			continue
		}
		if text = strings.TrimSpace(text); text != "" {
			return text
		}
	}
	return ""
}

func buildPrompt(in Input, totalDays int, topic string) string {
	return fmt.Sprintf(
		"You are an expert coding tutor specializing in LeetCode problems. "+
			"Create a concise, personalized learning roadmap for a student with a %s learning style "+
			"aiming to solve %d LeetCode %s problems in %d days, with %d minutes daily. "+
			"The roadmap should include specific daily tasks (e.g., \"Day 1-2: Solve 2 easy %s problems, watch a 10-minute video\") "+
			"with a clear progression from easy (days 1-10), medium (days 11-20), to hard (days 21+) problems, "+
			"and end with a review or quiz. Output as a single paragraph, max 150 words, in a motivational tone. "+
			"Do not include arrows, specific LeetCode problem titles, external links, or Markdown links (e.g., \"[text](url)\"). "+
			"Avoid repetitive tasks and ensure variety in daily activities (e.g., problem-solving, video tutorials, concept reviews).",
		strings.ToLower(string(in.LearningStyle)), in.ProblemCount, topic, totalDays, in.DailyTimeMinutes, topic,
	)
}

// fallback partitions the plan into three ceiling-sized day segments plus
// a closing review sentence. Day tiers decide difficulty regardless of
// how many days the plan actually spans.
func fallback(in Input, totalDays, problemsPerDay int, topic string) string {
	segmentDays := ceilDiv(totalDays, segmentCount)
	tasks := make([]string, 0, segmentCount+1)
	for i := 0; i < segmentCount; i++ {
		startDay := i*segmentDays + 1
		endDay := startDay + segmentDays - 1
		if endDay > totalDays {
			endDay = totalDays
		}
		difficulty := difficultyForDay(startDay)
		task := fmt.Sprintf("Day %d-%d: Solve %d %s %s problems daily, spending %d minutes.",
			startDay, endDay, problemsPerDay, difficulty, topic, in.DailyTimeMinutes)
		if in.LearningStyle == types.LearningStyleVideo {
			task += fmt.Sprintf(" Watch a 10-minute %s %s video tutorial.", difficulty, topic)
		}
		tasks = append(tasks, task)
	}
	tasks = append(tasks, fmt.Sprintf("Day %d: Review all %s problems with a quiz.", totalDays, topic))
	return strings.Join(tasks, ". ")
}

func difficultyForDay(day int) string {
	switch {
	case day <= 10:
		return "easy"
	case day <= 20:
		return "medium"
	default:
		return "hard"
	}
}

// SplitProblemCount budgets a goal's total problem count evenly across
// topics, rounding up.
func SplitProblemCount(total, topics int) int {
	if topics < 1 {
		return total
	}
	return ceilDiv(total, topics)
}

func stripMarkdownLinks(s string) string {
	return markdownLink.ReplaceAllString(s, "$1")
}

func ceilDiv(a, b int) int {
	if b == 0 {
		return a
	}
	return (a + b - 1) / b
}
