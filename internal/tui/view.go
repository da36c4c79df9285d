package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/alexisbeaulieu97/bookmeza/internal/components"
	tuicomponents "github.com/alexisbeaulieu97/bookmeza/internal/tui/components"
)

// View renders the current state.
func (m Model) View() string {
	st := newStyles(m.theme)

	if m.quitting {
		return tuicomponents.NewSummary(m.Summary()).View() + "\n"
	}

	current := m.Current()
	if current == nil {
		return st.muted.Render("No showcases to display.") + "\n"
	}

	ctx := m.RenderContext()
	width := m.cardWidth()

	var sections []string
	sections = append(sections, m.renderHeader(st))
	sections = append(sections, tuicomponents.NewProgress(len(m.showcases)).
		WithWidth(width-8).
		View(m.index+1))

	body := current.Render(ctx)
	if err := current.RenderError(); err != nil {
		body = lipgloss.JoinVertical(lipgloss.Left,
			body,
			components.ErrorAlert("Render error", err.Error()).View(ctx),
		)
	}

	card := components.NewCard(components.CardData{
		Title:       current.Title(),
		Description: current.Notes(),
		Body:        body,
	})
	style := components.DefaultCardStyle(m.theme)
	style.Width = width
	sections = append(sections, card.WithStyle(style).View(ctx))

	if current.CodeVisible() {
		sections = append(sections, m.renderCode(st, ctx, width))
	}

	if entries := m.clicks.View(); entries != "" {
		sections = append(sections, st.subtitle.Render("Recent clicks"), entries)
	}

	if m.status != "" {
		sections = append(sections, st.status.Render(m.status))
	}

	sections = append(sections, st.footer.Render(m.renderHelp()))
	return lipgloss.JoinVertical(lipgloss.Left, sections...) + "\n"
}

func (m Model) renderHeader(st styles) string {
	title := st.title.Render(m.store.Translate("buttonShowcase"))
	language := st.muted.Render(m.store.Translate("currentLanguage"))
	return lipgloss.JoinHorizontal(lipgloss.Top, title, " ", language)
}

func (m Model) renderCode(st styles, ctx components.RenderContext, width int) string {
	current := m.Current()
	render := buildMarkdownRenderer(m.markdownStyle, m.theme.Name == components.ThemeLight, width-4)

	var parts []string
	parts = append(parts, render(markupBlock(current.Markup())))
	parts = append(parts, st.subtitle.Render("Props (JSON)"))
	if m.editing {
		parts = append(parts, m.editor.View())
	} else {
		parts = append(parts, current.RawJSON())
	}
	if changes := current.Diff(); changes != "" {
		parts = append(parts, st.subtitle.Render("Changes"), strings.TrimRight(changes, "\n"))
	}
	if msg := current.JSONError(); msg != "" {
		parts = append(parts, components.ErrorAlert("", msg).View(ctx))
	}
	return st.panel.Width(width - 2).Render(strings.Join(parts, "\n"))
}

func (m Model) renderHelp() string {
	if m.editing {
		return m.help.View(editorKeyMap{m.keys})
	}
	return m.help.View(m.keys)
}
