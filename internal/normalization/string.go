package normalization

import (
	"regexp"
	"strings"
)

var (
	slugSeparators = regexp.MustCompile(`[^a-z0-9]+`)
	singularList   = regexp.MustCompile(`\bList\b`)
	masterPrefix   = regexp.MustCompile(`(?i)master\s*`)
	andConnector   = regexp.MustCompile(`(?i)\s+and\s+`)
)

func ParseInputString(input string) string {
	return strings.ToLower(strings.TrimSpace(input))
}

// Slug derives the canonical identifier for a problem title: lowercase,
// runs of non-alphanumerics collapsed to a single hyphen, no leading or
// trailing hyphens. The same title always yields the same slug.
func Slug(title string) string {
	s := strings.ToLower(strings.TrimSpace(title))
	s = slugSeparators.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// Topic normalizes a study-subject token for display: hyphens become
// spaces, the singular "List" becomes "Lists" (so "linked-list" reads
// "Linked Lists"), and each word is title-cased.
func Topic(raw string) string {
	t := strings.ReplaceAll(strings.TrimSpace(raw), "-", " ")
	words := strings.Fields(t)
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return singularList.ReplaceAllString(strings.Join(words, " "), "Lists")
}

// ParseGoalTopics extracts topic names from a goal title such as
// "Master Array and Graph". Filler words are stripped, "and" acts as a
// comma, and each token is normalized via Topic. Order is preserved.
func ParseGoalTopics(title string) []string {
	s := masterPrefix.ReplaceAllString(title, "")
	s = andConnector.ReplaceAllString(s, ",")
	var topics []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		topics = append(topics, Topic(part))
	}
	return topics
}
