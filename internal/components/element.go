package components

import (
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// Event describes the user action that triggered a click.
type Event struct {
	Source string
	Key    string
	At     time.Time
}

// NewEvent stamps an event with the current time.
func NewEvent(source, key string) Event {
	return Event{Source: source, Key: key, At: time.Now()}
}

// ClickHandler receives click events.
type ClickHandler func(Event)

// Element is a structured render result: what a component would put on screen
// and the attributes describing it, before it is drawn.
type Element struct {
	Tag      string
	Classes  []string
	Attrs    map[string]string
	Disabled bool
	OnClick  ClickHandler

	Text      string
	TextClass string
	// Icon is the content of the icon slot; empty means no slot.
	Icon         string
	IconClass    string
	IconPosition IconPosition
	LeftSlot     string
	RightSlot    string
}

// Attr returns an attribute value and whether it is set.
func (e Element) Attr(name string) (string, bool) {
	value, ok := e.Attrs[name]
	return value, ok
}

// HasClass reports whether token is part of the class list.
func (e Element) HasClass(token string) bool {
	for _, class := range e.Classes {
		if class == token {
			return true
		}
	}
	return false
}

// ClassName returns the class list as a single space separated string.
func (e Element) ClassName() string {
	return strings.Join(e.Classes, " ")
}

// AttrNames lists the attribute names in sorted order.
func (e Element) AttrNames() []string {
	names := make([]string, 0, len(e.Attrs))
	for name := range e.Attrs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Click dispatches ev to the element's handler. Disabled elements and
// elements without a handler swallow the event.
func (e Element) Click(ev Event) bool {
	if e.Disabled || e.OnClick == nil {
		return false
	}
	e.OnClick(ev)
	return true
}

// View draws the element with the theme in ctx.
func (e Element) View(ctx RenderContext) string {
	theme := ctx.theme()
	state := ClassState{Disabled: e.Disabled, Focused: ctx.Focused}
	resolved := ResolveClasses(theme, e.Classes, state)

	var parts []string
	if e.LeftSlot != "" {
		parts = append(parts, e.LeftSlot)
	}

	label := e.label(theme, state)
	icon := ""
	if e.Icon != "" {
		icon = ResolveClasses(theme, SplitClasses(e.IconClass), state).Style.Render(e.Icon)
	}

	switch {
	case icon == "":
		parts = append(parts, label)
	case e.IconPosition == IconPositionRight:
		parts = append(parts, label, icon)
	default:
		parts = append(parts, icon, label)
	}

	if e.RightSlot != "" {
		parts = append(parts, e.RightSlot)
	}

	content := lipgloss.JoinHorizontal(lipgloss.Center, nonEmpty(parts)...)

	style := resolved.Style
	if resolved.FullWidth && ctx.Width > 0 {
		inner := ctx.Width - style.GetHorizontalBorderSize() - style.GetHorizontalMargins()
		if inner > 0 {
			style = style.Width(inner).Align(lipgloss.Center)
		}
	}
	return style.Render(content)
}

func (e Element) label(theme Theme, state ClassState) string {
	text := e.Text
	if href, ok := e.Attrs["href"]; ok && e.Tag == "a" && href != "" && text != "" {
		text = ansi.SetHyperlink(href) + text + ansi.ResetHyperlink()
	}
	if e.TextClass == "" {
		return text
	}
	return ResolveClasses(theme, SplitClasses(e.TextClass), state).Style.Render(text)
}

func nonEmpty(parts []string) []string {
	out := parts[:0]
	for _, part := range parts {
		if part != "" {
			out = append(out, part)
		}
	}
	if len(out) == 0 {
		return []string{""}
	}
	return out
}
