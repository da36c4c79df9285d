package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// AlertOptions defines the configuration options for an alert
type AlertOptions struct {
	Variant     AlertVariant
	Title       string
	Dismissible bool
}

// Alert represents a message alert component
type Alert struct {
	message string
	options AlertOptions
}

// NewAlert creates a new alert with the given message and options
func NewAlert(message string, opts AlertOptions) *Alert {
	return &Alert{
		message: message,
		options: opts,
	}
}

// WithVariant sets the alert variant
func (a *Alert) WithVariant(variant AlertVariant) *Alert {
	a.options.Variant = variant
	return a
}

// WithTitle sets the alert title
func (a *Alert) WithTitle(title string) *Alert {
	a.options.Title = title
	return a
}

// WithDismissible sets whether the alert can be dismissed
func (a *Alert) WithDismissible(dismissible bool) *Alert {
	a.options.Dismissible = dismissible
	return a
}

// View renders the alert
func (a *Alert) View(ctx RenderContext) string {
	theme := ctx.theme()
	style := Style(theme, lipgloss.NewStyle(), alertVariantAppliers(a.options.Variant)...)
	if ctx.Width > 0 {
		style = style.Width(ctx.Width - style.GetHorizontalBorderSize())
	}

	var content []string
	if a.options.Title != "" {
		titleStyle := Style(theme, lipgloss.NewStyle(), Typography(TypographyVariantEmphasis))
		content = append(content, titleStyle.Render(a.options.Title))
	}

	if a.message != "" {
		content = append(content, a.message)
	}

	if a.options.Dismissible {
		indicator := Style(theme, lipgloss.NewStyle(), Typography(TypographyVariantSubtitle)).Render("[esc]")
		content = append(content, indicator)
	}

	return style.Render(strings.Join(content, "\n"))
}

func alertVariantAppliers(variant AlertVariant) []StyleApplier {
	switch variant {
	case AlertVariantSuccess:
		return AlertSuccessStyle()
	case AlertVariantError:
		return AlertErrorStyle()
	case AlertVariantWarning:
		return AlertWarningStyle()
	default:
		return AlertInfoStyle()
	}
}

// ErrorAlert creates an error alert
func ErrorAlert(title, message string) *Alert {
	return NewAlert(message, AlertOptions{Variant: AlertVariantError, Title: title})
}

// InfoAlert creates an info alert
func InfoAlert(title, message string) *Alert {
	return NewAlert(message, AlertOptions{Variant: AlertVariantInfo, Title: title})
}

// SuccessAlert creates a success alert
func SuccessAlert(title, message string) *Alert {
	return NewAlert(message, AlertOptions{Variant: AlertVariantSuccess, Title: title})
}
