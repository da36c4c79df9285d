package components

import (
	"fmt"
	"strings"
)

// SummaryData aggregates what happened during a gallery session.
type SummaryData struct {
	Showcases int
	Visited   int
	Clicks    int
	Applied   int
	Rejected  int
	Locale    string
	Theme     string
}

// Summary renders a textual session summary.
type Summary struct {
	data SummaryData
}

// NewSummary creates a new Summary component.
func NewSummary(data SummaryData) Summary {
	return Summary{data: data}
}

// View renders the summary.
func (s Summary) View() string {
	var lines []string
	if s.data.Showcases > 0 {
		lines = append(lines, fmt.Sprintf("Showcases: %d/%d visited", s.data.Visited, s.data.Showcases))
	}
	if s.data.Clicks > 0 {
		lines = append(lines, fmt.Sprintf("Clicks handled: %d", s.data.Clicks))
	}
	if s.data.Applied > 0 || s.data.Rejected > 0 {
		lines = append(lines, fmt.Sprintf("Props applied: %d, rejected: %d", s.data.Applied, s.data.Rejected))
	}

	var settings []string
	if s.data.Locale != "" {
		settings = append(settings, "locale "+s.data.Locale)
	}
	if s.data.Theme != "" {
		settings = append(settings, "theme "+s.data.Theme)
	}
	if len(settings) > 0 {
		lines = append(lines, "Ended with "+strings.Join(settings, ", "))
	}

	return strings.Join(lines, "\n")
}
