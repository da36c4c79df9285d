package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// copyCmd writes text to the clipboard off the event loop.
func copyCmd(write func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return CopiedMsg{Err: write(text)}
	}
}

// clearStatusCmd dismisses status id after the timeout.
func clearStatusCmd(id int) tea.Cmd {
	return tea.Tick(statusTimeout, func(time.Time) tea.Msg {
		return clearStatusMsg{id: id}
	})
}
