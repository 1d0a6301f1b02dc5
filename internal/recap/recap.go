package recap

import (
	"context"
	"fmt"
	"strings"

	"github.com/grindlog/grindlog-backend/internal/platform/logger"
	"github.com/grindlog/grindlog-backend/internal/platform/togetherai"
	"github.com/grindlog/grindlog-backend/internal/types"
)

const (
	aiMaxTokens  = 500
	maxAIBullets = 3
)

// NoActivityRecap is returned verbatim when the week holds no entries.
// No completion call is made in that case.
const NoActivityRecap = "• No problems logged this week.\n" +
	"• Start solving problems and add notes to get personalized insights!\n" +
	"• Try an Easy problem to build momentum."

var fallbackBullets = []string{
	"• Mistake Analysis Failed: Review notes manually for patterns.",
	"• Solution: Revisit problems marked \"Needs Revision\".",
	"• Focus: Strengthen core patterns like those in your recent problems.",
}

// Stats summarizes a week of problem entries. Status is multi-valued, so
// an entry can count toward several status buckets at once.
type Stats struct {
	Total           int
	SolvedCount     int
	RevisionCount   int
	CouldntSolve    int
	Difficulty      map[types.Difficulty]int
	Moods           map[types.Mood]int
	LowConfidence   bool
	ProgressTrend   string
	MediumHardCount int
}

func Compute(problems []types.Problem) Stats {
	s := Stats{
		Total:      len(problems),
		Difficulty: map[types.Difficulty]int{},
		Moods:      map[types.Mood]int{},
	}
	for i := range problems {
		p := &problems[i]
		if p.HasStatus(types.StatusSolved) {
			s.SolvedCount++
		}
		if p.HasStatus(types.StatusNeedsRevision) {
			s.RevisionCount++
		}
		if p.HasStatus(types.StatusCouldntSolve) {
			s.CouldntSolve++
		}
		s.Difficulty[p.Difficulty]++
		s.Moods[p.Mood]++
	}
	if s.Total == 0 {
		return s
	}

	total := float64(s.Total)
	s.LowConfidence = float64(s.Moods[types.MoodChallenging]+s.Moods[types.MoodFrustrating])/total > 0.5 ||
		float64(s.CouldntSolve)/total > 1.0/3.0

	s.MediumHardCount = s.Difficulty[types.DifficultyMedium] + s.Difficulty[types.DifficultyHard]
	switch {
	case float64(s.MediumHardCount) > total/2:
		s.ProgressTrend = "strong progress tackling tougher problems"
	case float64(s.SolvedCount) > total/2:
		s.ProgressTrend = "steady progress with consistent solves"
	default:
		s.ProgressTrend = "room to push into Medium/Hard problems"
	}
	return s
}

// Builder blends deterministic weekly statistics with up to three
// AI-generated observation bullets. Build never fails outward: a failed
// or unusable completion is replaced by fixed fallback bullets.
type Builder struct {
	log *logger.Logger
	ai  togetherai.Client
}

func NewBuilder(log *logger.Logger, ai togetherai.Client) *Builder {
	return &Builder{log: log.With("service", "RecapBuilder"), ai: ai}
}

func (b *Builder) Build(ctx context.Context, problems []types.Problem) string {
	if len(problems) == 0 {
		return NoActivityRecap
	}

	stats := Compute(problems)
	bullets := deterministicBullets(stats)
	bullets = append(bullets, b.aiBullets(ctx, problems, stats)...)
	return strings.Join(bullets, "\n")
}

func deterministicBullets(s Stats) []string {
	encouragement := "Try a Medium problem this week."
	if s.MediumHardCount > 0 {
		encouragement = "Keep challenging yourself!"
	}
	confidence := fmt.Sprintf(
		"Mood (%d Easy, %d Moderate) reflects confidence. Push into tougher problems to grow!",
		s.Moods[types.MoodEasy], s.Moods[types.MoodModerate])
	if s.LowConfidence {
		confidence = fmt.Sprintf(
			"Mood (%d Frustrating, %d Challenging) shows challenges. Small steps lead to big wins—try revisiting a familiar problem!",
			s.Moods[types.MoodFrustrating], s.Moods[types.MoodChallenging])
	}

	return []string{
		fmt.Sprintf("• Weekly Stats: %d problems (Easy: %d, Medium: %d, Hard: %d).",
			s.Total, s.Difficulty[types.DifficultyEasy], s.Difficulty[types.DifficultyMedium], s.Difficulty[types.DifficultyHard]),
		fmt.Sprintf("• Status: %d solved, %d need revision, %d couldn't solve.",
			s.SolvedCount, s.RevisionCount, s.CouldntSolve),
		fmt.Sprintf("• Progress: You're showing %s. %s", s.ProgressTrend, encouragement),
		fmt.Sprintf("• Confidence: %s", confidence),
	}
}

// aiBullets makes a single completion attempt (no retry at this layer)
// and keeps at most three well-formed bullet lines from the response.
func (b *Builder) aiBullets(ctx context.Context, problems []types.Problem, stats Stats) []string {
	if b.ai == nil {
		return fallbackBullets
	}

	resp, err := b.ai.Complete(ctx, buildPrompt(problems, stats), aiMaxTokens)
	if err != nil {
		b.log.Warn("Recap completion failed", "error", err)
		return fallbackBullets
	}

	var bullets []string
	for _, line := range strings.Split(resp, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "•") && len(line) > 2 {
			bullets = append(bullets, line)
			if len(bullets) == maxAIBullets {
				break
			}
		}
	}
	if len(bullets) == 0 {
		return fallbackBullets
	}
	return bullets
}

func buildPrompt(problems []types.Problem, s Stats) string {
	var sb strings.Builder
	sb.WriteString("Analyze the following user notes from their DSA problem journal for the past week. Focus on:\n")
	sb.WriteString("1. Specific mistakes in notes (e.g., \"forgot edge cases\", \"wrong time complexity\").\n")
	fmt.Fprintf(&sb, "2. Difficulty levels (Easy: %d, Medium: %d, Hard: %d) to assess strengths/weaknesses.\n",
		s.Difficulty[types.DifficultyEasy], s.Difficulty[types.DifficultyMedium], s.Difficulty[types.DifficultyHard])
	fmt.Fprintf(&sb, "3. Patterns (e.g., sliding window, greedy) and statuses (Solved: %d, Needs Revision: %d, Couldn't Solve: %d).\n",
		s.SolvedCount, s.RevisionCount, s.CouldntSolve)
	sb.WriteString("Return a concise recap as 2-3 bullet points, identifying mistakes, suggesting solutions (e.g., practice specific problems, review techniques), and recommending focus areas. Use \"•\" for bullets.\n\nData:\n")

	for i := range problems {
		p := &problems[i]
		notes := p.Notes
		if notes == "" {
			notes = "None"
		}
		patterns := strings.Join(p.Patterns, ", ")
		if patterns == "" {
			patterns = "None"
		}
		fmt.Fprintf(&sb, "Problem %d: %s\nDifficulty: %s\nStatus: %s\nNotes: %s\nPatterns: %s\nMood: %s\n\n",
			i+1, p.Problem, p.Difficulty, strings.Join(p.Status, ", "), notes, patterns, p.Mood)
	}

	sb.WriteString("Example:\n")
	sb.WriteString("• Mistake: Forgot edge cases in array problems.\n")
	sb.WriteString("• Solution: Practice \"Two Sum\" and review boundary conditions.\n")
	sb.WriteString("• Focus: Study sliding window for Medium problems.")
	return sb.String()
}
