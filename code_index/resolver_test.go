package code_index

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubGateway records every prompt it receives and answers with canned text.
type stubGateway struct {
	prompts []string
	answer  string
}

func (s *stubGateway) Generate(ctx context.Context, prompt string) string {
	s.prompts = append(s.prompts, prompt)
	return s.answer
}

func (s *stubGateway) IsAvailable(ctx context.Context) bool {
	return true
}

// Test the exact-match path: one matched name, one call, only that
// snippet in the prompt
func TestResolve_ExactMatch(t *testing.T) {
	index := NewCodeIndex()
	index.Add("a.py", "foo", "def foo():\n    return 1\n")
	index.Add("b.py", "bar", "def bar():\n    return 2\n")

	gateway := &stubGateway{answer: "foo returns 1"}
	resolver := NewQueryResolver(index, gateway)

	answer := resolver.Resolve(context.Background(), "foo")

	assert.Equal(t, "foo returns 1", answer)
	require.Len(t, gateway.prompts, 1)
	assert.Contains(t, gateway.prompts[0], "def foo():")
	assert.Contains(t, gateway.prompts[0], `Answer the question: "foo"`)
	assert.NotContains(t, gateway.prompts[0], "def bar():")
}

// Test that the fuzzy stage kicks in when substring search finds nothing
func TestResolve_FuzzyFallback(t *testing.T) {
	index := NewCodeIndex()
	index.Add("db.py", "get_snippets", "def get_snippets(path):\n    return []\n")

	gateway := &stubGateway{answer: "ok"}
	resolver := NewQueryResolver(index, gateway)

	_ = resolver.Resolve(context.Background(), "get_snipets")

	require.Len(t, gateway.prompts, 1)
	assert.Contains(t, gateway.prompts[0], "def get_snippets")
	assert.Contains(t, gateway.prompts[0], "Based on the following code snippets:")
}

// Test the full-index fallback when neither stage matches anything
func TestResolve_FullIndexFallback(t *testing.T) {
	index := NewCodeIndex()
	index.Add("a.py", "alpha", "def alpha():\n    pass\n")
	index.Add("b.py", "beta", "def beta():\n    pass\n")

	gateway := &stubGateway{answer: "ok"}
	resolver := NewQueryResolver(index, gateway)

	_ = resolver.Resolve(context.Background(), "zzzzzzzz")

	require.Len(t, gateway.prompts, 1)
	prompt := gateway.prompts[0]
	assert.Contains(t, prompt, "The project contains the following indexed code:")
	assert.Contains(t, prompt, "File: a.py")
	assert.Contains(t, prompt, "File: b.py")
	assert.Contains(t, prompt, "def alpha():")
	assert.Contains(t, prompt, "def beta():")
	assert.Contains(t, prompt, `Answer the question: "zzzzzzzz"`)
}

// Test that a multi-match prompt lists snippets in match order
func TestResolve_AggregatesMatchesInOrder(t *testing.T) {
	index := NewCodeIndex()
	index.Add("first.py", "load_user", "def load_user():\n    pass\n")
	index.Add("second.py", "save_user", "def save_user():\n    pass\n")

	gateway := &stubGateway{answer: "ok"}
	resolver := NewQueryResolver(index, gateway)

	_ = resolver.Resolve(context.Background(), "user")

	require.Len(t, gateway.prompts, 1)
	prompt := gateway.prompts[0]
	assert.Less(t, strings.Index(prompt, "load_user"), strings.Index(prompt, "save_user"))
}

// Test that the gateway's answer passes through untouched, even when it
// is error text
func TestResolve_PassesAnswerThrough(t *testing.T) {
	index := NewCodeIndex()
	index.Add("a.py", "foo", "def foo(): pass")

	gateway := &stubGateway{answer: "Error during API request: connection refused"}
	resolver := NewQueryResolver(index, gateway)

	answer := resolver.Resolve(context.Background(), "foo")

	assert.Equal(t, "Error during API request: connection refused", answer)
}
