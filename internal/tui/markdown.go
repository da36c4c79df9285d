package tui

import (
	"strings"

	"github.com/charmbracelet/glamour"
	"github.com/muesli/reflow/wordwrap"
)

// buildMarkdownRenderer returns a renderer for the code panel. "auto" follows
// the light theme, otherwise dark. Unknown styles and renderer failures fall
// back to plain word wrapping.
func buildMarkdownRenderer(style string, light bool, width int) func(string) string {
	fallback := func(input string) string {
		return wordwrap.String(input, width)
	}

	style = strings.ToLower(strings.TrimSpace(style))
	switch style {
	case "", "auto":
		style = "dark"
		if light {
			style = "light"
		}
	case "ascii", "notty", "dark", "light":
	default:
		return fallback
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return fallback
	}
	return func(input string) string {
		out, err := renderer.Render(input)
		if err != nil {
			return fallback(input)
		}
		return strings.TrimSpace(out)
	}
}

// markupBlock wraps generated markup in a fenced jsx block.
func markupBlock(markup string) string {
	return "```jsx\n" + markup + "\n```"
}
