package normalization

import (
	"reflect"
	"testing"
)

func TestSlug(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Two Sum", "two-sum"},
		{"Two Sum!", "two-sum"},
		{"  Valid   Parentheses  ", "valid-parentheses"},
		{"3Sum", "3sum"},
		{"Best Time to Buy & Sell Stock", "best-time-to-buy-sell-stock"},
		{"---", ""},
	}
	for _, c := range cases {
		if got := Slug(c.in); got != c.want {
			t.Fatalf("Slug(%q): want=%q got=%q", c.in, c.want, got)
		}
	}
}

func TestSlugIsStable(t *testing.T) {
	first := Slug("Longest Substring Without Repeating Characters")
	second := Slug("Longest Substring Without Repeating Characters")
	if first != second {
		t.Fatalf("slug not stable: %q vs %q", first, second)
	}
}

func TestTopic(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"linked-list", "Linked Lists"},
		{"array", "Array"},
		{"dynamic programming", "Dynamic Programming"},
		{"  graph  ", "Graph"},
		{"two-pointers", "Two Pointers"},
	}
	for _, c := range cases {
		if got := Topic(c.in); got != c.want {
			t.Fatalf("Topic(%q): want=%q got=%q", c.in, c.want, got)
		}
	}
}

func TestParseGoalTopics(t *testing.T) {
	cases := []struct {
		in   string
		want []string
	}{
		{"Master Array and Graph", []string{"Array", "Graph"}},
		{"Master linked-list", []string{"Linked Lists"}},
		{"Array, Graph, Tree", []string{"Array", "Graph", "Tree"}},
		{"master Dynamic Programming", []string{"Dynamic Programming"}},
		{"Array and Graph and Tree", []string{"Array", "Graph", "Tree"}},
		{"  ", nil},
	}
	for _, c := range cases {
		if got := ParseGoalTopics(c.in); !reflect.DeepEqual(got, c.want) {
			t.Fatalf("ParseGoalTopics(%q): want=%v got=%v", c.in, c.want, got)
		}
	}
}

func TestParseInputString(t *testing.T) {
	if got := ParseInputString("  PyThOn  "); got != "python" {
		t.Fatalf("ParseInputString: want=%q got=%q", "python", got)
	}
}
