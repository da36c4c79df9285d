package components

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTheme(t *testing.T) {
	theme := DefaultTheme()

	assert.Equal(t, ThemeDefault, theme.Name)
	assert.Equal(t, "#6366f1", theme.Palette.Primary.Base.Light)
	assert.Equal(t, "#5855eb", theme.Palette.Primary.Muted.Light)
	assert.Equal(t, "#0f172a", theme.Palette.Surface.OnBase.Light)

	assert.Equal(t, lipgloss.RoundedBorder(), theme.Borders.Rounded)
	assert.Equal(t, lipgloss.ThickBorder(), theme.Borders.Thick)

	assert.Equal(t, 3, theme.PaddingValue(SpacingSizeMedium))
	assert.Equal(t, 2, theme.MarginValue(SpacingSizeSmall))
	assert.Equal(t, lipgloss.Color("#334155"), theme.Slate.Color(PaletteShade700))

	assert.True(t, theme.TypographyStyle(TypographyVariantTitle).GetBold(), "title typography should be bold")
}

func TestDarkAndLightThemesPinTones(t *testing.T) {
	dark := DarkTheme()
	light := LightTheme()

	assert.True(t, dark.Dark)
	assert.False(t, light.Dark)
	assert.Equal(t, dark.Palette.Surface.Base.Dark, dark.Palette.Surface.Base.Light)
	assert.Equal(t, light.Palette.Surface.Base.Light, light.Palette.Surface.Base.Dark)
	assert.NotEqual(t, dark.Palette.Surface.Base.Light, light.Palette.Surface.Base.Light)
}

func TestThemeToggle(t *testing.T) {
	assert.Equal(t, ThemeDark, DefaultTheme().Toggle().Name)
	assert.Equal(t, ThemeLight, DarkTheme().Toggle().Name)
}

func TestThemeByName(t *testing.T) {
	for _, name := range []string{"", "default", "light", "DARK"} {
		_, err := ThemeByName(name)
		require.NoError(t, err, name)
	}

	_, err := ThemeByName("solarized")
	require.Error(t, err)
}

func TestPaletteShadeBounds(t *testing.T) {
	theme := DefaultTheme()
	assert.Equal(t, lipgloss.Color(""), theme.Slate.Color(PaletteShade(99)), "out-of-range shades should be empty")
}

func TestFluentModifierChain(t *testing.T) {
	style := Style(
		DefaultTheme(),
		lipgloss.NewStyle(),
		Background(PaletteSuccess),
		Border(BorderVariantRounded),
		PaddingX(SpacingSizeLarge),
		PaddingY(SpacingSizeSmall),
		Typography(TypographyVariantEmphasis),
	)

	assert.Equal(t, DefaultTheme().Palette.Success.Base, style.GetBackground())
	assert.Equal(t, 4, style.GetPaddingLeft())
	assert.Equal(t, 2, style.GetPaddingTop())
	assert.True(t, style.GetBold())
}

func TestBorderNoneClearsBorder(t *testing.T) {
	theme := DefaultTheme()
	style := Style(theme, lipgloss.NewStyle(), Border(BorderVariantRounded), Border(BorderVariantNone))
	assert.Equal(t, 0, style.GetHorizontalBorderSize())
}

func TestSlotByName(t *testing.T) {
	slot, ok := SlotByName("error")
	require.True(t, ok)
	assert.Equal(t, DefaultTheme().Palette.Danger, slot(DefaultTheme().Palette))

	_, ok = SlotByName("magenta")
	assert.False(t, ok)
}
