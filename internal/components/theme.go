package components

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const paletteShadeCount = 10

type PaletteShades struct {
	colors [paletteShadeCount]lipgloss.Color
}

func NewPaletteShades(colors ...lipgloss.Color) PaletteShades {
	var shades PaletteShades
	for i := 0; i < paletteShadeCount && i < len(colors); i++ {
		shades.colors[i] = colors[i]
	}
	return shades
}

func (ps PaletteShades) Color(shade PaletteShade) lipgloss.Color {
	index := int(shade)
	if index < 0 || index >= paletteShadeCount {
		return ""
	}
	return ps.colors[index]
}

type PaletteShade int

const (
	PaletteShade50 PaletteShade = iota
	PaletteShade100
	PaletteShade200
	PaletteShade300
	PaletteShade400
	PaletteShade500
	PaletteShade600
	PaletteShade700
	PaletteShade800
	PaletteShade900
)

var shadeNames = map[string]PaletteShade{
	"50":  PaletteShade50,
	"100": PaletteShade100,
	"200": PaletteShade200,
	"300": PaletteShade300,
	"400": PaletteShade400,
	"500": PaletteShade500,
	"600": PaletteShade600,
	"700": PaletteShade700,
	"800": PaletteShade800,
	"900": PaletteShade900,
}

// ParseShade maps a numeric shade token ("50", "400", ...) to a PaletteShade.
func ParseShade(token string) (PaletteShade, bool) {
	shade, ok := shadeNames[token]
	return shade, ok
}

// SpacingSize enumerates supported spacing size tokens.
type SpacingSize int

const (
	SpacingSizeNone SpacingSize = iota
	SpacingSizeExtraSmall
	SpacingSizeSmall
	SpacingSizeMedium
	SpacingSizeLarge
	SpacingSizeExtraLarge
)

const spacingSizeCount = int(SpacingSizeExtraLarge) + 1

type spacingTable [spacingSizeCount]int

// SpacingConfig stores distinct spacing scales for padding and margin.
type SpacingConfig struct {
	Margin  spacingTable
	Padding spacingTable
}

var spacingNames = map[string]SpacingSize{
	"none": SpacingSizeNone,
	"xs":   SpacingSizeExtraSmall,
	"sm":   SpacingSizeSmall,
	"md":   SpacingSizeMedium,
	"lg":   SpacingSizeLarge,
	"xl":   SpacingSizeExtraLarge,
}

// ParseSpacing maps a spacing token ("xs", "md", ...) to a SpacingSize.
func ParseSpacing(token string) (SpacingSize, bool) {
	size, ok := spacingNames[token]
	return size, ok
}

// TypographyVariant represents a strongly-typed typography token.
type TypographyVariant int

const (
	TypographyVariantBase TypographyVariant = iota
	TypographyVariantTitle
	TypographyVariantSubtitle
	TypographyVariantBody
	TypographyVariantCode
	TypographyVariantEmphasis

	TypographyVariantTextXs
	TypographyVariantTextSm
	TypographyVariantTextBase
)

type BorderVariant int

const (
	BorderVariantNone BorderVariant = iota
	BorderVariantNormal
	BorderVariantThick
	BorderVariantRounded
	BorderVariantDouble
)

var borderNames = map[string]BorderVariant{
	"none":    BorderVariantNone,
	"normal":  BorderVariantNormal,
	"thick":   BorderVariantThick,
	"rounded": BorderVariantRounded,
	"double":  BorderVariantDouble,
}

type AlertVariant int

const (
	AlertVariantSuccess AlertVariant = iota
	AlertVariantError
	AlertVariantWarning
	AlertVariantInfo
)

// Palette describes semantic colour slots used by components.
type Palette struct {
	Primary   ColourSet
	Secondary ColourSet
	Surface   ColourSet
	Success   ColourSet
	Warning   ColourSet
	Danger    ColourSet
	Info      ColourSet
	Glass     ColourSet
	Neutral   ColourSet
}

// BorderSet groups reusable border definitions.
type BorderSet struct {
	None    lipgloss.Border
	Normal  lipgloss.Border
	Rounded lipgloss.Border
	Thick   lipgloss.Border
	Double  lipgloss.Border
}

// TypographyScale contains semantic typography presets.
type TypographyScale struct {
	Base     lipgloss.Style
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Body     lipgloss.Style
	Code     lipgloss.Style
	Emphasis lipgloss.Style

	TextXs   lipgloss.Style
	TextSm   lipgloss.Style
	TextBase lipgloss.Style
}

// Theme holds the design tokens every component renders with. Themes are
// values passed through RenderContext; there is no process-wide theme.
type Theme struct {
	Name       string
	Dark       bool
	Palette    Palette
	Slate      PaletteShades
	Borders    BorderSet
	Spacing    SpacingConfig
	Typography TypographyScale
}

func normalizeTheme(theme Theme) Theme {
	if spacingTableIsZero(theme.Spacing.Padding) {
		theme.Spacing.Padding = defaultSpacingTable()
	}
	if spacingTableIsZero(theme.Spacing.Margin) {
		theme.Spacing.Margin = defaultSpacingTable()
	}
	return theme
}

func spacingTableIsZero(table spacingTable) bool {
	for _, value := range table {
		if value != 0 {
			return false
		}
	}
	return true
}

func defaultSpacingTable() spacingTable {
	return spacingTable{
		SpacingSizeNone:       0,
		SpacingSizeExtraSmall: 1,
		SpacingSizeSmall:      2,
		SpacingSizeMedium:     3,
		SpacingSizeLarge:      4,
		SpacingSizeExtraLarge: 6,
	}
}

// DefaultTheme returns the adaptive bookmeza theme. Colours follow the
// terminal background.
func DefaultTheme() Theme {
	ac := func(light, dark string) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: light, Dark: dark}
	}

	palette := Palette{
		Primary: ColourSet{
			Base:     ac("#6366f1", "#6366f1"),
			OnBase:   ac("#ffffff", "#ffffff"),
			Muted:    ac("#5855eb", "#5855eb"),
			Contrast: ac("#0f172a", "#f8fafc"),
		},
		Secondary: ColourSet{
			Base:     ac("#8b5cf6", "#8b5cf6"),
			OnBase:   ac("#ffffff", "#ffffff"),
			Muted:    ac("#7c3aed", "#7c3aed"),
			Contrast: ac("#0f172a", "#f8fafc"),
		},
		Surface: ColourSet{
			Base:     ac("#ffffff", "#0f172a"),
			OnBase:   ac("#0f172a", "#f8fafc"),
			Muted:    ac("#f1f5f9", "#334155"),
			Contrast: ac("#6366f1", "#6366f1"),
		},
		Success: ColourSet{
			Base:     ac("#10b981", "#10b981"),
			OnBase:   ac("#ffffff", "#ffffff"),
			Muted:    ac("#059669", "#059669"),
			Contrast: ac("#0f172a", "#f8fafc"),
		},
		Warning: ColourSet{
			Base:     ac("#f59e0b", "#f59e0b"),
			OnBase:   ac("#0f172a", "#0f172a"),
			Muted:    ac("#d97706", "#d97706"),
			Contrast: ac("#0f172a", "#f8fafc"),
		},
		Danger: ColourSet{
			Base:     ac("#ef4444", "#ef4444"),
			OnBase:   ac("#ffffff", "#ffffff"),
			Muted:    ac("#dc2626", "#dc2626"),
			Contrast: ac("#0f172a", "#f8fafc"),
		},
		Info: ColourSet{
			Base:     ac("#3b82f6", "#3b82f6"),
			OnBase:   ac("#ffffff", "#ffffff"),
			Muted:    ac("#2563eb", "#2563eb"),
			Contrast: ac("#0f172a", "#f8fafc"),
		},
		Glass: ColourSet{
			Base:     ac("#f8fafc", "#334155"),
			OnBase:   ac("#0f172a", "#ffffff"),
			Muted:    ac("#e2e8f0", "#475569"),
			Contrast: ac("#6366f1", "#6366f1"),
		},
		Neutral: ColourSet{
			Base:     ac("#cbd5e1", "#64748b"),
			OnBase:   ac("#0f172a", "#f1f5f9"),
			Muted:    ac("#94a3b8", "#475569"),
			Contrast: ac("#f8fafc", "#f8fafc"),
		},
	}

	slate := NewPaletteShades(
		lipgloss.Color("#f8fafc"),
		lipgloss.Color("#f1f5f9"),
		lipgloss.Color("#e2e8f0"),
		lipgloss.Color("#cbd5e1"),
		lipgloss.Color("#94a3b8"),
		lipgloss.Color("#64748b"),
		lipgloss.Color("#475569"),
		lipgloss.Color("#334155"),
		lipgloss.Color("#1e293b"),
		lipgloss.Color("#0f172a"),
	)

	theme := Theme{
		Name:    ThemeDefault,
		Palette: palette,
		Slate:   slate,
		Borders: BorderSet{
			None:    lipgloss.Border{},
			Normal:  lipgloss.NormalBorder(),
			Rounded: lipgloss.RoundedBorder(),
			Thick:   lipgloss.ThickBorder(),
			Double:  lipgloss.DoubleBorder(),
		},
		Spacing: SpacingConfig{
			Padding: defaultSpacingTable(),
			Margin:  defaultSpacingTable(),
		},
		Typography: defaultTypography(palette),
	}

	return normalizeTheme(theme)
}

func defaultTypography(p Palette) TypographyScale {
	base := lipgloss.NewStyle().Foreground(p.Surface.OnBase)

	return TypographyScale{
		Base:     base,
		Title:    base.Bold(true).Foreground(p.Primary.Base),
		Subtitle: base.Foreground(p.Secondary.Muted).Faint(true),
		Body:     base,
		Code:     base.Foreground(p.Secondary.Base).Background(p.Surface.Muted).Padding(0, 1),
		Emphasis: base.Bold(true),
		TextXs:   lipgloss.NewStyle().Faint(true),
		TextSm:   lipgloss.NewStyle(),
		TextBase: lipgloss.NewStyle().Bold(true),
	}
}

const (
	ThemeDefault = "default"
	ThemeLight   = "light"
	ThemeDark    = "dark"
)

// DarkTheme pins every colour to its dark tone regardless of the terminal
// background.
func DarkTheme() Theme {
	theme := DefaultTheme()
	theme.Name = ThemeDark
	theme.Dark = true
	theme.Palette = mapPalette(theme.Palette, func(c lipgloss.AdaptiveColor) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: c.Dark, Dark: c.Dark}
	})
	theme.Typography = defaultTypography(theme.Palette)
	return normalizeTheme(theme)
}

// LightTheme pins every colour to its light tone.
func LightTheme() Theme {
	theme := DefaultTheme()
	theme.Name = ThemeLight
	theme.Palette = mapPalette(theme.Palette, func(c lipgloss.AdaptiveColor) lipgloss.AdaptiveColor {
		return lipgloss.AdaptiveColor{Light: c.Light, Dark: c.Light}
	})
	theme.Typography = defaultTypography(theme.Palette)
	return normalizeTheme(theme)
}

// ThemeByName resolves "default", "light" or "dark".
func ThemeByName(name string) (Theme, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", ThemeDefault:
		return DefaultTheme(), nil
	case ThemeLight:
		return LightTheme(), nil
	case ThemeDark:
		return DarkTheme(), nil
	default:
		return Theme{}, fmt.Errorf("unknown theme %q", name)
	}
}

// Toggle switches between the light and dark variants.
func (t Theme) Toggle() Theme {
	if t.Dark {
		return LightTheme()
	}
	return DarkTheme()
}

func mapPalette(p Palette, fn func(lipgloss.AdaptiveColor) lipgloss.AdaptiveColor) Palette {
	set := func(cs ColourSet) ColourSet {
		return ColourSet{
			Base:     fn(cs.Base),
			OnBase:   fn(cs.OnBase),
			Muted:    fn(cs.Muted),
			Contrast: fn(cs.Contrast),
		}
	}
	return Palette{
		Primary:   set(p.Primary),
		Secondary: set(p.Secondary),
		Surface:   set(p.Surface),
		Success:   set(p.Success),
		Warning:   set(p.Warning),
		Danger:    set(p.Danger),
		Info:      set(p.Info),
		Glass:     set(p.Glass),
		Neutral:   set(p.Neutral),
	}
}

// Helpers resolving tokens against an explicit theme.

func (t Theme) BorderStyle(variant BorderVariant) lipgloss.Border {
	switch variant {
	case BorderVariantNormal:
		return t.Borders.Normal
	case BorderVariantThick:
		return t.Borders.Thick
	case BorderVariantDouble:
		return t.Borders.Double
	case BorderVariantRounded:
		return t.Borders.Rounded
	default:
		return t.Borders.None
	}
}

func (t Theme) PaddingValue(size SpacingSize) int {
	return spacingLookup(t.Spacing.Padding, size)
}

func (t Theme) MarginValue(size SpacingSize) int {
	return spacingLookup(t.Spacing.Margin, size)
}

func spacingLookup(table spacingTable, size SpacingSize) int {
	index := int(size)
	if index < 0 || index >= len(table) {
		index = int(SpacingSizeMedium)
	}
	return table[index]
}

// TypographyStyle returns the specified typography style.
func (t Theme) TypographyStyle(variant TypographyVariant) lipgloss.Style {
	typo := t.Typography
	switch variant {
	case TypographyVariantTitle:
		return typo.Title
	case TypographyVariantSubtitle:
		return typo.Subtitle
	case TypographyVariantBody:
		return typo.Body
	case TypographyVariantCode:
		return typo.Code
	case TypographyVariantEmphasis:
		return typo.Emphasis
	case TypographyVariantTextXs:
		return typo.TextXs
	case TypographyVariantTextSm:
		return typo.TextSm
	case TypographyVariantTextBase:
		return typo.TextBase
	default:
		return typo.Base
	}
}

// StyleApplier represents a function that can apply styling to a lipgloss.Style
type StyleApplier interface {
	Apply(base lipgloss.Style, theme Theme) lipgloss.Style
}

// StyleFunc implements StyleApplier for a function type
type StyleFunc func(lipgloss.Style, Theme) lipgloss.Style

func (fn StyleFunc) Apply(base lipgloss.Style, theme Theme) lipgloss.Style {
	return fn(base, theme)
}

// Style applies a series of modifiers to create a final style
func Style(theme Theme, base lipgloss.Style, appliers ...StyleApplier) lipgloss.Style {
	for _, applier := range appliers {
		base = applier.Apply(base, theme)
	}
	return base
}

// ColourSet represents a semantic color set with base, on-base, muted, and contrast colors.
type ColourSet struct {
	Base     lipgloss.AdaptiveColor
	OnBase   lipgloss.AdaptiveColor
	Muted    lipgloss.AdaptiveColor
	Contrast lipgloss.AdaptiveColor
}

// PaletteSlot provides access to a semantic colour slot.
type PaletteSlot func(Palette) ColourSet

var (
	PalettePrimary   PaletteSlot = func(p Palette) ColourSet { return p.Primary }
	PaletteSecondary PaletteSlot = func(p Palette) ColourSet { return p.Secondary }
	PaletteSurface   PaletteSlot = func(p Palette) ColourSet { return p.Surface }
	PaletteSuccess   PaletteSlot = func(p Palette) ColourSet { return p.Success }
	PaletteWarning   PaletteSlot = func(p Palette) ColourSet { return p.Warning }
	PaletteDanger    PaletteSlot = func(p Palette) ColourSet { return p.Danger }
	PaletteInfo      PaletteSlot = func(p Palette) ColourSet { return p.Info }
	PaletteGlass     PaletteSlot = func(p Palette) ColourSet { return p.Glass }
	PaletteNeutral   PaletteSlot = func(p Palette) ColourSet { return p.Neutral }
)

var slotNames = map[string]PaletteSlot{
	"primary":   PalettePrimary,
	"secondary": PaletteSecondary,
	"surface":   PaletteSurface,
	"success":   PaletteSuccess,
	"warning":   PaletteWarning,
	"danger":    PaletteDanger,
	"error":     PaletteDanger,
	"info":      PaletteInfo,
	"glass":     PaletteGlass,
	"neutral":   PaletteNeutral,
}

// SlotByName resolves a palette slot token such as "primary" or "danger".
func SlotByName(name string) (PaletteSlot, bool) {
	slot, ok := slotNames[name]
	return slot, ok
}

// Fluent modifier functions

// Background applies a semantic background colour and matching foreground.
func Background(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Background(cs.Base).Foreground(cs.OnBase)
	}
}

// Foreground applies a semantic foreground colour.
func Foreground(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		cs := slot(theme.Palette)
		return base.Foreground(cs.Base)
	}
}

// BorderColour tints the border with a semantic colour.
func BorderColour(slot PaletteSlot) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.BorderForeground(slot(theme.Palette).Base)
	}
}

func Border(variant BorderVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		if variant == BorderVariantNone {
			return base.UnsetBorderStyle().
				UnsetBorderTop().
				UnsetBorderRight().
				UnsetBorderBottom().
				UnsetBorderLeft()
		}
		return base.Border(theme.BorderStyle(variant))
	}
}

func Padding(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Padding(theme.PaddingValue(size))
	}
}

func PaddingX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := theme.PaddingValue(size)
		return base.PaddingLeft(value).PaddingRight(value)
	}
}

func PaddingY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := theme.PaddingValue(size)
		return base.PaddingTop(value).PaddingBottom(value)
	}
}

func Margin(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Margin(theme.MarginValue(size))
	}
}

func MarginX(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := theme.MarginValue(size)
		return base.MarginLeft(value).MarginRight(value)
	}
}

func MarginY(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		value := theme.MarginValue(size)
		return base.MarginTop(value).MarginBottom(value)
	}
}

func MarginStart(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.MarginLeft(theme.MarginValue(size))
	}
}

func MarginEnd(size SpacingSize) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.MarginRight(theme.MarginValue(size))
	}
}

// Typography applies typography styling
func Typography(variant TypographyVariant) StyleFunc {
	return func(base lipgloss.Style, theme Theme) lipgloss.Style {
		return base.Inherit(theme.TypographyStyle(variant))
	}
}

// Predefined style bundles for common component patterns

func CardBaseStyle() []StyleApplier {
	return []StyleApplier{
		Border(BorderVariantRounded),
		BorderColour(PaletteNeutral),
		PaddingX(SpacingSizeExtraSmall),
	}
}

func AlertSuccessStyle() []StyleApplier {
	return []StyleApplier{
		Foreground(PaletteSuccess),
		Border(BorderVariantNormal),
		BorderColour(PaletteSuccess),
		PaddingX(SpacingSizeExtraSmall),
	}
}

func AlertErrorStyle() []StyleApplier {
	return []StyleApplier{
		Foreground(PaletteDanger),
		Border(BorderVariantNormal),
		BorderColour(PaletteDanger),
		PaddingX(SpacingSizeExtraSmall),
	}
}

func AlertWarningStyle() []StyleApplier {
	return []StyleApplier{
		Foreground(PaletteWarning),
		Border(BorderVariantNormal),
		BorderColour(PaletteWarning),
		PaddingX(SpacingSizeExtraSmall),
	}
}

func AlertInfoStyle() []StyleApplier {
	return []StyleApplier{
		Foreground(PaletteInfo),
		Border(BorderVariantNormal),
		BorderColour(PaletteInfo),
		PaddingX(SpacingSizeExtraSmall),
	}
}
