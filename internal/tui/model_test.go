package tui

import (
	"sync"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/bookmeza/internal/components"
	"github.com/alexisbeaulieu97/bookmeza/internal/i18n"
	"github.com/alexisbeaulieu97/bookmeza/internal/showcase"
)

type fakeClipboard struct {
	mu     sync.Mutex
	copied []string
	err    error
}

func (c *fakeClipboard) write(text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.copied = append(c.copied, text)
	return c.err
}

type harness struct {
	model     Model
	clipboard *fakeClipboard
	mu        sync.Mutex
	handled   []string
}

func (h *harness) titles() []string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return append([]string(nil), h.handled...)
}

func newHarness(t *testing.T) *harness {
	t.Helper()

	h := &harness{clipboard: &fakeClipboard{}}
	showcases, err := showcase.DefaultGallery(showcase.GalleryDeps{
		OnClick: func(title string, _ components.Event) {
			h.mu.Lock()
			h.handled = append(h.handled, title)
			h.mu.Unlock()
		},
	})
	require.NoError(t, err)
	t.Cleanup(func() { showcase.CloseAll(showcases) })

	store, err := i18n.New()
	require.NoError(t, err)

	h.model = NewModel(Options{
		Showcases:     showcases,
		Store:         store,
		Theme:         components.DefaultTheme(),
		MarkdownStyle: "ascii",
		Clipboard:     h.clipboard.write,
	})
	return h
}

// press feeds keys through Update and returns the last command.
func (h *harness) press(t *testing.T, keys ...tea.KeyMsg) tea.Cmd {
	t.Helper()
	var cmd tea.Cmd
	for _, k := range keys {
		var next tea.Model
		next, cmd = h.model.Update(k)
		model, ok := next.(Model)
		require.True(t, ok)
		h.model = model
	}
	return cmd
}

func (h *harness) send(t *testing.T, msg tea.Msg) tea.Cmd {
	t.Helper()
	next, cmd := h.model.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	h.model = model
	return cmd
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func TestNewModel(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	m := h.model

	require.NotNil(t, m.Current())
	assert.Equal(t, 0, m.Index())
	assert.Equal(t, "Variant: primary", m.Current().Title())
	assert.False(t, m.Editing())
	assert.False(t, m.Quitting())
	assert.Equal(t, m.Current().RawJSON(), m.editor.Value())
	assert.NotNil(t, m.Init())

	summary := m.Summary()
	assert.Equal(t, 21, summary.Showcases)
	assert.Equal(t, 1, summary.Visited)
	assert.Equal(t, "en", summary.Locale)
	assert.Equal(t, components.ThemeDefault, summary.Theme)
}

func TestNewModelDefaults(t *testing.T) {
	t.Parallel()

	m := NewModel(Options{})

	assert.Nil(t, m.Current())
	assert.Equal(t, components.ThemeDefault, m.Theme().Name)
	assert.NotNil(t, m.copy)
	assert.Contains(t, m.View(), "No showcases to display.")
}

func TestRenderContextFollowsModel(t *testing.T) {
	t.Parallel()

	h := newHarness(t)
	ctx := h.model.RenderContext()

	assert.Equal(t, components.ThemeDefault, ctx.Theme.Name)
	assert.True(t, ctx.Focused)
	assert.Equal(t, 0, ctx.Frame)
	assert.Equal(t, maxCardWidth-4, ctx.Width)
	assert.NotNil(t, ctx.Icons)

	h.press(t, tea.KeyMsg{Type: tea.KeyTab})
	assert.False(t, h.model.RenderContext().Focused, "editor owns focus")
}

func TestCardWidthBounds(t *testing.T) {
	t.Parallel()

	h := newHarness(t)

	h.send(t, tea.WindowSizeMsg{Width: 200, Height: 50})
	assert.Equal(t, maxCardWidth, h.model.cardWidth())

	h.send(t, tea.WindowSizeMsg{Width: 10, Height: 50})
	assert.Equal(t, 20, h.model.cardWidth())

	h.send(t, tea.WindowSizeMsg{Width: 50, Height: 30})
	assert.Equal(t, 48, h.model.cardWidth())
	assert.Equal(t, 30, h.model.height)
}
