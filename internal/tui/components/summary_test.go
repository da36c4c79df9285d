package components

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewSummary(t *testing.T) {
	t.Parallel()

	data := SummaryData{Showcases: 21, Visited: 4}
	require.Equal(t, data, NewSummary(data).data)
}

func TestSummaryView(t *testing.T) {
	t.Parallel()

	t.Run("renders empty summary", func(t *testing.T) {
		t.Parallel()
		require.Equal(t, "", NewSummary(SummaryData{}).View())
	})

	t.Run("renders visits", func(t *testing.T) {
		t.Parallel()
		view := NewSummary(SummaryData{Showcases: 21, Visited: 4}).View()
		require.Contains(t, view, "Showcases: 4/21 visited")
		require.NotContains(t, view, "Clicks")
	})

	t.Run("renders clicks and applies", func(t *testing.T) {
		t.Parallel()
		view := NewSummary(SummaryData{Clicks: 3, Applied: 2, Rejected: 1}).View()
		require.Contains(t, view, "Clicks handled: 3")
		require.Contains(t, view, "Props applied: 2, rejected: 1")
	})

	t.Run("renders final settings", func(t *testing.T) {
		t.Parallel()
		view := NewSummary(SummaryData{Locale: "tr", Theme: "dark"}).View()
		require.Equal(t, "Ended with locale tr, theme dark", view)
	})
}
