package diff

import (
	"fmt"
	"strings"

	"github.com/sergi/go-diff/diffmatchpatch"
)

const (
	maxDiffLines    = 2000
	truncateMessage = "... (diff truncated, exceeds 2,000 lines) ..."
)

// Lines returns a line-oriented diff of before and after with ---/+++ headers.
// Unchanged lines are prefixed with a space, removed lines with "-" and added
// lines with "+". Returns empty string if the content is identical.
func Lines(before, after, beforeLabel, afterLabel string) string {
	if before == after {
		return ""
	}

	dmp := diffmatchpatch.New()
	beforeChars, afterChars, lineArray := dmp.DiffLinesToChars(withTrailingNewline(before), withTrailingNewline(after))
	diffs := dmp.DiffCharsToLines(dmp.DiffMain(beforeChars, afterChars, false), lineArray)

	var b strings.Builder
	fmt.Fprintf(&b, "--- %s\n", beforeLabel)
	fmt.Fprintf(&b, "+++ %s\n", afterLabel)

	written := 2
	for _, d := range diffs {
		prefix := " "
		switch d.Type {
		case diffmatchpatch.DiffDelete:
			prefix = "-"
		case diffmatchpatch.DiffInsert:
			prefix = "+"
		}
		for _, line := range strings.SplitAfter(d.Text, "\n") {
			if line == "" {
				continue
			}
			if written >= maxDiffLines {
				b.WriteString(truncateMessage + "\n")
				return b.String()
			}
			b.WriteString(prefix)
			b.WriteString(line)
			written++
		}
	}
	return b.String()
}

// Changed reports whether a diff produced by Lines contains any edits.
func Changed(d string) bool {
	for _, line := range strings.Split(d, "\n") {
		if strings.HasPrefix(line, "---") || strings.HasPrefix(line, "+++") {
			continue
		}
		if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "+") {
			return true
		}
	}
	return false
}

func withTrailingNewline(s string) string {
	if s == "" || strings.HasSuffix(s, "\n") {
		return s
	}
	return s + "\n"
}
