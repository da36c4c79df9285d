package components

import (
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

// CardStyle defines the visual appearance of a Card component.
type CardStyle struct {
	// BorderStyle applies to the card's outer border
	BorderStyle lipgloss.Style
	// TitleStyle applies to the card's title text
	TitleStyle lipgloss.Style
	// ContentStyle applies to the card's description and metadata
	ContentStyle lipgloss.Style
	// IconStyle applies to the card's icon (if present)
	IconStyle lipgloss.Style
	// Width is the outer width of the card in cells; zero sizes to content
	Width int
}

// DefaultCardStyle returns a card style for theme.
func DefaultCardStyle(theme Theme) CardStyle {
	return CardStyle{
		BorderStyle: Style(theme, lipgloss.NewStyle(), CardBaseStyle()...),
		TitleStyle:  Style(theme, lipgloss.NewStyle(), Typography(TypographyVariantTitle)),
		ContentStyle: Style(theme, lipgloss.NewStyle(),
			Typography(TypographyVariantSubtitle)),
		IconStyle: Style(theme, lipgloss.NewStyle(), Foreground(PaletteInfo)),
	}
}

// CardData represents the content of a card.
type CardData struct {
	// Title is the main heading displayed in the card
	Title string
	// Icon is an optional glyph displayed before the title
	Icon string
	// Description is free text, word-wrapped to the card width
	Description string
	// Body is pre-rendered content placed under the description as-is
	Body string
	// Metadata contains additional key-value pairs to display
	Metadata map[string]string
	// Footer is pre-rendered content placed last
	Footer string
}

// Card represents a reusable card component with customizable styling.
type Card struct {
	data  CardData
	style *CardStyle
}

// NewCard creates a new card with the given data.
func NewCard(data CardData) *Card {
	return &Card{data: data}
}

// WithStyle sets a custom style for the card.
func (c *Card) WithStyle(style CardStyle) *Card {
	c.style = &style
	return c
}

// View renders the card. The context width is used when the style has none.
func (c *Card) View(ctx RenderContext) string {
	style := DefaultCardStyle(ctx.theme())
	if c.style != nil {
		style = *c.style
	}
	width := style.Width
	if width == 0 {
		width = ctx.Width
	}

	inner := 0
	border := style.BorderStyle
	if width > 0 {
		inner = width - border.GetHorizontalBorderSize() - border.GetHorizontalPadding()
		border = border.Width(width - border.GetHorizontalBorderSize())
	}

	var content []string
	if c.data.Title != "" {
		content = append(content, c.renderHeader(style))
	}
	if c.data.Description != "" {
		content = append(content, style.ContentStyle.Render(wrapText(c.data.Description, inner)))
	}
	if c.data.Body != "" {
		content = append(content, "", c.data.Body)
	}
	if len(c.data.Metadata) > 0 {
		content = append(content, "")
		keys := make([]string, 0, len(c.data.Metadata))
		for k := range c.data.Metadata {
			keys = append(keys, k)
		}
		sort.Strings(keys)

		for _, key := range keys {
			line := fmt.Sprintf("%s: %s", key, c.data.Metadata[key])
			content = append(content, style.ContentStyle.Render(wrapText(line, inner)))
		}
	}
	if c.data.Footer != "" {
		content = append(content, "", c.data.Footer)
	}

	return border.Render(strings.Join(content, "\n"))
}

func (c *Card) renderHeader(style CardStyle) string {
	var header strings.Builder
	if c.data.Icon != "" {
		header.WriteString(style.IconStyle.Render(c.data.Icon + " "))
	}
	header.WriteString(style.TitleStyle.Render(c.data.Title))
	return header.String()
}

// wrapText word-wraps text to width, hard-breaking words longer than a line.
func wrapText(text string, width int) string {
	if width <= 0 {
		return text
	}
	return wrap.String(wordwrap.String(text, width), width)
}
