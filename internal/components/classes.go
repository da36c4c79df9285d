package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ClassState carries the interactive state that state-prefixed utility
// classes ("disabled:", "focus:", "dark:") are matched against.
type ClassState struct {
	Disabled bool
	Focused  bool
}

// Resolved is the outcome of resolving a utility class list.
type Resolved struct {
	Style     lipgloss.Style
	FullWidth bool
}

// JoinClasses concatenates class fragments, dropping empty ones and collapsing
// runs of whitespace to single spaces.
func JoinClasses(parts ...string) string {
	var tokens []string
	for _, part := range parts {
		tokens = append(tokens, strings.Fields(part)...)
	}
	return strings.Join(tokens, " ")
}

// SplitClasses splits a class string into tokens.
func SplitClasses(classes string) []string {
	return strings.Fields(classes)
}

// ResolveClasses turns utility class tokens into a lipgloss style. Unprefixed
// tokens apply first, in order; state-prefixed tokens then apply when their
// state holds. Unknown tokens and prefixes are ignored.
func ResolveClasses(theme Theme, classes []string, state ClassState) Resolved {
	res := Resolved{Style: lipgloss.NewStyle()}

	var stateful []string
	for _, token := range classes {
		if strings.Contains(token, ":") {
			stateful = append(stateful, token)
			continue
		}
		res = applyClass(theme, res, token)
	}

	for _, token := range stateful {
		parts := strings.Split(token, ":")
		if allPrefixesActive(theme, parts[:len(parts)-1], state) {
			res = applyClass(theme, res, parts[len(parts)-1])
		}
	}

	return res
}

// allPrefixesActive requires every prefix of a chain such as "dark:disabled:" to hold.
func allPrefixesActive(theme Theme, prefixes []string, state ClassState) bool {
	for _, prefix := range prefixes {
		if !prefixActive(theme, prefix, state) {
			return false
		}
	}
	return true
}

func prefixActive(theme Theme, prefix string, state ClassState) bool {
	switch prefix {
	case "disabled":
		return state.Disabled
	case "focus":
		return state.Focused
	case "dark":
		return theme.Dark
	default:
		return false
	}
}

func applyClass(theme Theme, res Resolved, token string) Resolved {
	style := res.Style

	switch token {
	case "w-full":
		res.FullWidth = true
		return res
	case "font-bold", "font-semibold", "font-medium":
		res.Style = style.Bold(true)
		return res
	case "italic":
		res.Style = style.Italic(true)
		return res
	case "underline":
		res.Style = style.Underline(true)
		return res
	case "faint":
		res.Style = style.Faint(true)
		return res
	case "reverse":
		res.Style = style.Reverse(true)
		return res
	case "bg-transparent":
		res.Style = style.UnsetBackground()
		return res
	case "text-white":
		res.Style = style.Foreground(lipgloss.Color("#ffffff"))
		return res
	case "text-xs":
		res.Style = Typography(TypographyVariantTextXs)(style, theme)
		return res
	case "text-sm":
		res.Style = Typography(TypographyVariantTextSm)(style, theme)
		return res
	case "text-base":
		res.Style = Typography(TypographyVariantTextBase)(style, theme)
		return res
	}

	name, value, ok := strings.Cut(token, "-")
	if !ok {
		return res
	}

	switch name {
	case "bg":
		if slot, ok := SlotByName(value); ok {
			res.Style = Background(slot)(style, theme)
		}
	case "text":
		if color, ok := slateColour(theme, value); ok {
			res.Style = style.Foreground(color)
		} else if slot, ok := SlotByName(value); ok {
			res.Style = Foreground(slot)(style, theme)
		}
	case "border":
		if variant, ok := borderNames[value]; ok {
			res.Style = Border(variant)(style, theme)
		} else if color, ok := slateColour(theme, value); ok {
			res.Style = style.BorderForeground(color)
		} else if slot, ok := SlotByName(value); ok {
			res.Style = BorderColour(slot)(style, theme)
		}
	case "p", "px", "py", "m", "mx", "my", "ms", "me":
		size, ok := ParseSpacing(value)
		if !ok {
			return res
		}
		res.Style = spacingApplier(name, size)(style, theme)
	}

	return res
}

func spacingApplier(name string, size SpacingSize) StyleFunc {
	switch name {
	case "p":
		return Padding(size)
	case "px":
		return PaddingX(size)
	case "py":
		return PaddingY(size)
	case "m":
		return Margin(size)
	case "mx":
		return MarginX(size)
	case "my":
		return MarginY(size)
	case "ms":
		return MarginStart(size)
	default:
		return MarginEnd(size)
	}
}

func slateColour(theme Theme, value string) (lipgloss.Color, bool) {
	shadeToken, ok := strings.CutPrefix(value, "slate-")
	if !ok {
		return "", false
	}
	shade, ok := ParseShade(shadeToken)
	if !ok {
		return "", false
	}
	color := theme.Slate.Color(shade)
	return color, color != ""
}
