package components

import (
	"fmt"
	"strings"
	"time"
)

// ClickEntry records one handler invocation.
type ClickEntry struct {
	Showcase string
	Source   string
	At       time.Time
}

// ClickLog keeps the most recent handler invocations, newest last.
type ClickLog struct {
	entries []ClickEntry
	limit   int
}

// NewClickLog creates a log holding at most limit entries. A non-positive
// limit keeps everything.
func NewClickLog(limit int) ClickLog {
	return ClickLog{limit: limit}
}

// Append returns a log with entry added, dropping the oldest entries past the
// limit.
func (l ClickLog) Append(entry ClickEntry) ClickLog {
	entries := make([]ClickEntry, 0, len(l.entries)+1)
	entries = append(entries, l.entries...)
	entries = append(entries, entry)
	if l.limit > 0 && len(entries) > l.limit {
		entries = entries[len(entries)-l.limit:]
	}
	return ClickLog{entries: entries, limit: l.limit}
}

// Entries returns the logged entries in order.
func (l ClickLog) Entries() []ClickEntry {
	clone := make([]ClickEntry, len(l.entries))
	copy(clone, l.entries)
	return clone
}

// Len reports the number of entries.
func (l ClickLog) Len() int {
	return len(l.entries)
}

// View renders one line per entry.
func (l ClickLog) View() string {
	lines := make([]string, 0, len(l.entries))
	for _, entry := range l.entries {
		line := fmt.Sprintf("%s  %s", entry.At.Format("15:04:05.000"), entry.Showcase)
		if entry.Source != "" {
			line = fmt.Sprintf("%s (%s)", line, entry.Source)
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}
