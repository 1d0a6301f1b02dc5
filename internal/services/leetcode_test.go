package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/grindlog/grindlog-backend/internal/platform/logger"
)

type fakeCompleter struct {
	responses []string
	errs      []error
	calls     int
}

func (f *fakeCompleter) Complete(_ context.Context, _ string, _ int) (string, error) {
	i := f.calls
	f.calls++
	var resp string
	var err error
	if i < len(f.responses) {
		resp = f.responses[i]
	}
	if i < len(f.errs) {
		err = f.errs[i]
	}
	return resp, err
}

type memCache struct {
	data map[string]string
	sets int
}

func (m *memCache) Get(_ context.Context, key string) (string, bool) {
	v, ok := m.data[key]
	return v, ok
}

func (m *memCache) Set(_ context.Context, key, val string, _ time.Duration) {
	if m.data == nil {
		m.data = map[string]string{}
	}
	m.data[key] = val
	m.sets++
}

func newLeetcodeTestService(t *testing.T, ai *fakeCompleter, c *memCache) LeetcodeService {
	t.Helper()
	log, err := logger.New("development")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	t.Cleanup(func() { log.Sync() })
	if c == nil {
		return NewLeetcodeService(log, ai, nil)
	}
	return NewLeetcodeService(log, ai, c)
}

const helpJSON = `{"code":"def two_sum(nums, target): ...","explanation":"Use a hash map.","pattern":"Hash Map","commonMistake":"Nested loops.","motivation":"You got this!"}`

func TestGetHelpParsesResponse(t *testing.T) {
	ai := &fakeCompleter{responses: []string{helpJSON}}
	svc := newLeetcodeTestService(t, ai, nil)

	res, err := svc.GetHelp(context.Background(), "two-sum", "Python")
	if err != nil {
		t.Fatalf("GetHelp: %v", err)
	}
	if res.Pattern != "Hash Map" || res.Motivation != "You got this!" {
		t.Fatalf("parsed result: %+v", res)
	}
}

func TestGetHelpStripsMarkdownFences(t *testing.T) {
	ai := &fakeCompleter{responses: []string{"```json\n" + helpJSON + "\n```"}}
	svc := newLeetcodeTestService(t, ai, nil)

	res, err := svc.GetHelp(context.Background(), "two-sum", "python")
	if err != nil {
		t.Fatalf("GetHelp: %v", err)
	}
	if res.Code == "" || res.Explanation == "" {
		t.Fatalf("fenced response not parsed: %+v", res)
	}
}

func TestGetHelpDefaultsOptionalFields(t *testing.T) {
	ai := &fakeCompleter{responses: []string{`{"code":"x","explanation":"y"}`}}
	svc := newLeetcodeTestService(t, ai, nil)

	res, err := svc.GetHelp(context.Background(), "two-sum", "go")
	if err != nil {
		t.Fatalf("GetHelp: %v", err)
	}
	if res.Pattern != "Not specified" || res.CommonMistake != "Not specified" {
		t.Fatalf("defaults not applied: %+v", res)
	}
	if res.Motivation != "Keep practicing!" {
		t.Fatalf("motivation default: got %q", res.Motivation)
	}
}

func TestGetHelpRejectsMissingRequiredFields(t *testing.T) {
	ai := &fakeCompleter{responses: []string{`{"pattern":"Two Pointers"}`}}
	svc := newLeetcodeTestService(t, ai, nil)
	if _, err := svc.GetHelp(context.Background(), "two-sum", "go"); err == nil {
		t.Fatalf("expected error when code and explanation are missing")
	}
}

func TestGetHelpRetriesOnce(t *testing.T) {
	ai := &fakeCompleter{
		responses: []string{"", helpJSON},
		errs:      []error{errors.New("timeout"), nil},
	}
	svc := newLeetcodeTestService(t, ai, nil)
	if _, err := svc.GetHelp(context.Background(), "two-sum", "go"); err != nil {
		t.Fatalf("GetHelp after retry: %v", err)
	}
	if ai.calls != 2 {
		t.Fatalf("expected 2 completion attempts, got %d", ai.calls)
	}
}

func TestGetHelpUsesCache(t *testing.T) {
	ai := &fakeCompleter{responses: []string{helpJSON}}
	c := &memCache{}
	svc := newLeetcodeTestService(t, ai, c)

	if _, err := svc.GetHelp(context.Background(), "two-sum", "Python"); err != nil {
		t.Fatalf("first GetHelp: %v", err)
	}
	if c.sets != 1 {
		t.Fatalf("expected one cache write, got %d", c.sets)
	}
	if _, ok := c.data["aihelp:two-sum:python"]; !ok {
		t.Fatalf("expected lowercase-language cache key, have %v", c.data)
	}

	if _, err := svc.GetHelp(context.Background(), "two-sum", "python"); err != nil {
		t.Fatalf("second GetHelp: %v", err)
	}
	if ai.calls != 1 {
		t.Fatalf("cache hit should skip the completion call, calls=%d", ai.calls)
	}
}

func TestGetHelpRequiresSlugAndLanguage(t *testing.T) {
	svc := newLeetcodeTestService(t, &fakeCompleter{}, nil)
	if _, err := svc.GetHelp(context.Background(), "", "go"); err == nil {
		t.Fatalf("expected error for empty slug")
	}
	if _, err := svc.GetHelp(context.Background(), "two-sum", " "); err == nil {
		t.Fatalf("expected error for blank language")
	}
}
