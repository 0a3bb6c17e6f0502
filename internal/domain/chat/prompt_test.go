package chat

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestBuildPrompt_WithContext(t *testing.T) {
	got := buildPrompt("AVAILABLE TOURS:\n• **Rome City Tour**", "what can I do in Rome?")

	require.True(t, strings.HasPrefix(got, "AVAILABLE TOURS:"))
	require.Contains(t, got, "\n\nUSER QUERY: what can I do in Rome?\n\n")
	require.True(t, strings.HasSuffix(got, groundingInstruction))
}

func TestBuildPrompt_EmptyContext(t *testing.T) {
	require.Equal(t, "hello", buildPrompt("", "hello"))
	require.Equal(t, "hello", buildPrompt("  \n ", "hello"))
}

func TestCountTokens(t *testing.T) {
	require.Zero(t, countTokens(""))
	require.Positive(t, countTokens("plan a trip to Venice"))
}

func TestTruncateToTokenBudget(t *testing.T) {
	text := strings.Repeat("tour ", 200)

	require.Equal(t, text, truncateToTokenBudget(text, 0))
	require.Equal(t, "short", truncateToTokenBudget("short", 1000))

	truncated := truncateToTokenBudget(text, 50)
	require.Less(t, len(truncated), len(text))
	require.LessOrEqual(t, countTokens(truncated), 50)
}
