package services

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/grindlog/grindlog-backend/internal/platform/cache"
	"github.com/grindlog/grindlog-backend/internal/platform/logger"
	"github.com/grindlog/grindlog-backend/internal/platform/togetherai"
)

const (
	helpMaxTokens = 1000
	helpCacheTTL  = 24 * time.Hour
)

// HelpResult is the structured solution guidance for one problem slug.
type HelpResult struct {
	Code          string `json:"code"`
	Explanation   string `json:"explanation"`
	Pattern       string `json:"pattern"`
	CommonMistake string `json:"commonMistake"`
	Motivation    string `json:"motivation"`
}

type LeetcodeService interface {
	GetHelp(ctx context.Context, slug, language string) (*HelpResult, error)
}

type leetcodeService struct {
	log   *logger.Logger
	ai    togetherai.Client
	cache cache.Cache
}

// NewLeetcodeService builds the AI-help service. The cache may be nil;
// every lookup then goes straight to the completion service.
func NewLeetcodeService(log *logger.Logger, ai togetherai.Client, c cache.Cache) LeetcodeService {
	return &leetcodeService{
		log:   log.With("service", "LeetcodeService"),
		ai:    ai,
		cache: c,
	}
}

func (ls *leetcodeService) GetHelp(ctx context.Context, slug, language string) (*HelpResult, error) {
	slug = strings.TrimSpace(slug)
	language = strings.TrimSpace(language)
	if slug == "" || language == "" {
		return nil, fmt.Errorf("slug and language are required")
	}
	if ls.ai == nil {
		return nil, fmt.Errorf("completion service unavailable")
	}

	// The slug is a pure function of the title, so it doubles as the
	// cache key without any lookup table.
	cacheKey := fmt.Sprintf("aihelp:%s:%s", slug, strings.ToLower(language))
	if ls.cache != nil {
		if raw, ok := ls.cache.Get(ctx, cacheKey); ok {
			var cached HelpResult
			if err := json.Unmarshal([]byte(raw), &cached); err == nil {
				ls.log.Debug("AI help cache hit", "slug", slug)
				return &cached, nil
			}
		}
	}

	content, err := ls.complete(ctx, buildHelpPrompt(slug, language))
	if err != nil {
		return nil, fmt.Errorf("fetch AI help: %w", err)
	}

	result, err := parseHelpResponse(content)
	if err != nil {
		return nil, err
	}

	if ls.cache != nil {
		if raw, err := json.Marshal(result); err == nil {
			ls.cache.Set(ctx, cacheKey, string(raw), helpCacheTTL)
		}
	}
	return result, nil
}

// complete retries once on failure, mirroring the roadmap policy.
func (ls *leetcodeService) complete(ctx context.Context, prompt string) (string, error) {
	var lastErr error
	for attempt := 0; attempt < 2; attempt++ {
		content, err := ls.ai.Complete(ctx, prompt, helpMaxTokens)
		if err == nil {
			return content, nil
		}
		lastErr = err
		ls.log.Warn("AI help completion failed", "attempt", attempt+1, "error", err)
	}
	return "", lastErr
}

func buildHelpPrompt(slug, language string) string {
	return fmt.Sprintf(`Provide a detailed solution for the LeetCode problem with slug %q in %s. Structure the response as a JSON object with the following fields:
- code: The complete solution code (string, properly escaped).
- explanation: A clear explanation of the solution (string).
- pattern: The algorithmic pattern used (e.g., "Two Pointers", string).
- commonMistake: A common mistake users make (string).
- motivation: A motivational message (string).

Ensure the code is properly escaped for JSON (e.g., use \n for newlines, \t for tabs). Respond with the JSON object only, no surrounding text.`, slug, language)
}

// parseHelpResponse defensively decodes the model output. Markdown
// fences are stripped first; code and explanation are mandatory, the
// rest get defaults.
func parseHelpResponse(content string) (*HelpResult, error) {
	cleaned := strings.TrimSpace(content)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var result HelpResult
	if err := json.Unmarshal([]byte(cleaned), &result); err != nil {
		return nil, fmt.Errorf("unparseable AI help response: %w", err)
	}
	if result.Code == "" || result.Explanation == "" {
		return nil, fmt.Errorf("AI help response missing required fields")
	}
	if result.Pattern == "" {
		result.Pattern = "Not specified"
	}
	if result.CommonMistake == "" {
		result.CommonMistake = "Not specified"
	}
	if result.Motivation == "" {
		result.Motivation = "Keep practicing!"
	}
	return &result, nil
}
