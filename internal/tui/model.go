package tui

import (
	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/bookmeza/internal/components"
	"github.com/alexisbeaulieu97/bookmeza/internal/i18n"
	"github.com/alexisbeaulieu97/bookmeza/internal/logger"
	"github.com/alexisbeaulieu97/bookmeza/internal/registry"
	"github.com/alexisbeaulieu97/bookmeza/internal/showcase"
	tuicomponents "github.com/alexisbeaulieu97/bookmeza/internal/tui/components"
)

const (
	clickLogLimit = 5
	maxCardWidth  = 72
)

// Options wires a gallery Model.
type Options struct {
	Showcases     []*showcase.Showcase
	Store         *i18n.Store
	Theme         components.Theme
	Overrides     *components.AppTheme
	Icons         *registry.IconRegistry
	MarkdownStyle string
	Logger        *logger.Logger
	// Clipboard replaces clipboard.WriteAll.
	Clipboard func(string) error
}

// Model is the Bubbletea state of the showcase gallery. One showcase is
// visible at a time.
type Model struct {
	showcases []*showcase.Showcase
	index     int
	visited   map[int]bool

	store         *i18n.Store
	theme         components.Theme
	overrides     *components.AppTheme
	icons         *registry.IconRegistry
	markdownStyle string

	keys     KeyMap
	help     help.Model
	showHelp bool

	editor  textarea.Model
	editing bool

	spinner spinner.Model
	frame   int

	clicks   tuicomponents.ClickLog
	clickCnt int
	applied  int
	rejected int

	status   string
	statusID int

	width  int
	height int

	copy     func(string) error
	log      *logger.Logger
	quitting bool
}

// NewModel constructs the gallery model.
func NewModel(opts Options) Model {
	store := opts.Store
	if store == nil {
		store = i18n.Default()
	}
	icons := opts.Icons
	if icons == nil {
		icons = registry.Default()
	}
	theme := opts.Theme
	if theme.Name == "" {
		theme = components.DefaultTheme()
	}
	write := opts.Clipboard
	if write == nil {
		write = clipboard.WriteAll
	}

	loader := registry.LoaderIcon()
	s := spinner.New()
	s.Spinner = spinner.Spinner{Frames: loader.Frames, FPS: loader.Interval}

	editor := textarea.New()
	editor.ShowLineNumbers = true
	editor.CharLimit = 0
	editor.SetHeight(8)
	editor.SetWidth(maxCardWidth)
	editor.Blur()

	m := Model{
		showcases:     opts.Showcases,
		visited:       map[int]bool{},
		store:         store,
		theme:         theme,
		overrides:     opts.Overrides,
		icons:         icons,
		markdownStyle: opts.MarkdownStyle,
		keys:          DefaultKeyMap(),
		help:          help.New(),
		editor:        editor,
		spinner:       s,
		clicks:        tuicomponents.NewClickLog(clickLogLimit),
		width:         80,
		height:        24,
		copy:          write,
		log:           opts.Logger.WithField("component", "tui"),
	}
	m.show(0)
	return m
}

// Init starts the loader animation.
func (m Model) Init() tea.Cmd {
	return m.spinner.Tick
}

// Current returns the visible showcase, or nil for an empty gallery.
func (m Model) Current() *showcase.Showcase {
	if len(m.showcases) == 0 {
		return nil
	}
	return m.showcases[m.index]
}

// Index returns the position of the visible showcase.
func (m Model) Index() int {
	return m.index
}

// Editing reports whether the JSON editor has focus.
func (m Model) Editing() bool {
	return m.editing
}

// Status returns the transient status line.
func (m Model) Status() string {
	return m.status
}

// Clicks returns the recent handler invocations.
func (m Model) Clicks() tuicomponents.ClickLog {
	return m.clicks
}

// Theme returns the active theme.
func (m Model) Theme() components.Theme {
	return m.theme
}

// Quitting reports whether the gallery is shutting down.
func (m Model) Quitting() bool {
	return m.quitting
}

// RenderContext is the context the visible control is drawn with.
func (m Model) RenderContext() components.RenderContext {
	return components.RenderContext{
		Theme:      m.theme,
		Overrides:  m.overrides,
		Translator: m.store,
		Icons:      m.icons,
		Width:      m.cardWidth() - 4,
		Focused:    !m.editing,
		Frame:      m.frame,
	}
}

// Summary describes the session so far.
func (m Model) Summary() tuicomponents.SummaryData {
	return tuicomponents.SummaryData{
		Showcases: len(m.showcases),
		Visited:   len(m.visited),
		Clicks:    m.clickCnt,
		Applied:   m.applied,
		Rejected:  m.rejected,
		Locale:    m.store.Locale(),
		Theme:     m.theme.Name,
	}
}

func (m *Model) show(index int) {
	if len(m.showcases) == 0 {
		return
	}
	n := len(m.showcases)
	m.index = ((index % n) + n) % n
	m.visited[m.index] = true
	m.editor.SetValue(m.showcases[m.index].RawJSON())
}

func (m *Model) setStatus(text string) tea.Cmd {
	m.statusID++
	m.status = text
	return clearStatusCmd(m.statusID)
}

func (m Model) cardWidth() int {
	width := m.width - 2
	if width > maxCardWidth {
		width = maxCardWidth
	}
	if width < 20 {
		width = 20
	}
	return width
}
