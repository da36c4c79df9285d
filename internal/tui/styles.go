package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/bookmeza/internal/components"
)

// styles are derived from the active theme so the chrome follows dark mode.
type styles struct {
	title    lipgloss.Style
	subtitle lipgloss.Style
	muted    lipgloss.Style
	panel    lipgloss.Style
	status   lipgloss.Style
	footer   lipgloss.Style
}

func newStyles(theme components.Theme) styles {
	muted := theme.Palette.Neutral.Muted
	return styles{
		title: components.Style(theme, lipgloss.NewStyle().Bold(true).PaddingRight(1),
			components.Foreground(components.PalettePrimary)),
		subtitle: components.Style(theme, lipgloss.NewStyle(),
			components.Typography(components.TypographyVariantSubtitle)),
		muted: lipgloss.NewStyle().Foreground(muted),
		panel: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(muted).
			Padding(0, 1),
		status: components.Style(theme, lipgloss.NewStyle().Bold(true),
			components.Foreground(components.PaletteInfo)),
		footer: lipgloss.NewStyle().
			Foreground(muted).
			BorderStyle(lipgloss.NormalBorder()).
			BorderTop(true).
			BorderForeground(muted).
			MarginTop(1),
	}
}
