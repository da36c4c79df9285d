package components

import (
	"github.com/alexisbeaulieu97/bookmeza/internal/i18n"
	"github.com/alexisbeaulieu97/bookmeza/internal/registry"
)

// Translator resolves localization keys. *i18n.Store satisfies it.
type Translator interface {
	Translate(key string) string
}

// ButtonTheme overrides the class strings a Button builds its class list from.
// A nil field or a missing map key falls back to the built-in classes; a
// present empty string is honoured.
type ButtonTheme struct {
	BaseClasses    *string                  `yaml:"baseClasses,omitempty"`
	VariantClasses map[ButtonVariant]string `yaml:"variantClasses,omitempty" validate:"omitempty,dive,keys,oneof=primary secondary ghost danger success warning info glass,endkeys"`
	SizeClasses    map[ButtonSize]string    `yaml:"sizeClasses,omitempty" validate:"omitempty,dive,keys,oneof=small medium large,endkeys"`
}

// ComponentThemes groups overrides per component kind.
type ComponentThemes struct {
	Button *ButtonTheme `yaml:"Button,omitempty" validate:"omitempty"`
}

// AppTheme is the externally supplied override structure. It is passed to
// components explicitly through RenderContext.
type AppTheme struct {
	Components ComponentThemes `yaml:"components"`
}

// ButtonOverrides returns the Button override, tolerating a nil AppTheme.
func (a *AppTheme) ButtonOverrides() *ButtonTheme {
	if a == nil {
		return nil
	}
	return a.Components.Button
}

// RenderContext carries everything a component needs to render: theme tokens,
// optional overrides, localization and icons.
type RenderContext struct {
	Theme      Theme
	Overrides  *AppTheme
	Translator Translator
	Icons      *registry.IconRegistry
	// Width is the available width in cells; zero means unconstrained.
	Width int
	// Focused marks the control that has keyboard focus.
	Focused bool
	// Frame is the animation tick used for animated icons.
	Frame int
}

// DefaultRenderContext uses the adaptive theme, the shared English store and
// the default icon registry.
func DefaultRenderContext() RenderContext {
	return RenderContext{
		Theme:      DefaultTheme(),
		Translator: i18n.Default(),
		Icons:      registry.Default(),
	}
}

func (ctx RenderContext) translate(key string) string {
	if ctx.Translator == nil {
		return key
	}
	return ctx.Translator.Translate(key)
}

func (ctx RenderContext) theme() Theme {
	if ctx.Theme.Name == "" {
		return DefaultTheme()
	}
	return ctx.Theme
}
