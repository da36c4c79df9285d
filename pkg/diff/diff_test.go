package diff

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLinesIdenticalContent(t *testing.T) {
	t.Parallel()

	assert.Empty(t, Lines("line1\nline2", "line1\nline2", "before", "after"))
}

func TestLinesSingleLineChange(t *testing.T) {
	t.Parallel()

	got := Lines("{\n  \"size\": \"small\"\n}", "{\n  \"size\": \"large\"\n}", "initial", "current")

	assert.Equal(t, "--- initial\n+++ current\n {\n-  \"size\": \"small\"\n+  \"size\": \"large\"\n }\n", got)
	assert.True(t, Changed(got))
}

func TestLinesAddedAndRemovedLines(t *testing.T) {
	t.Parallel()

	got := Lines("a\nb\nc\n", "a\nc\nd\n", "x", "y")

	assert.Contains(t, got, " a\n")
	assert.Contains(t, got, "-b\n")
	assert.Contains(t, got, " c\n")
	assert.Contains(t, got, "+d\n")
}

func TestLinesTrailingNewlineOnlyDifference(t *testing.T) {
	t.Parallel()

	got := Lines("a\nb", "a\nb\n", "x", "y")

	assert.NotEmpty(t, got, "byte-level difference is reported")
	assert.False(t, Changed(got), "no line differs")
}

func TestLinesTruncation(t *testing.T) {
	t.Parallel()

	var before, after []string
	for i := 0; i < maxDiffLines+500; i++ {
		before = append(before, "before")
		after = append(after, "after")
	}

	got := Lines(strings.Join(before, "\n"), strings.Join(after, "\n"), "x", "y")

	assert.True(t, strings.HasSuffix(got, truncateMessage+"\n"))
	assert.LessOrEqual(t, strings.Count(got, "\n"), maxDiffLines+1)
}

func TestChangedIgnoresHeaders(t *testing.T) {
	t.Parallel()

	assert.False(t, Changed("--- a\n+++ b\n same\n"))
	assert.False(t, Changed(""))
}
