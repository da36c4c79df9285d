// Package showcase hosts a component next to an editable JSON prop set and a
// generated markup preview.
//
// The live render and the markup preview are independent: both derive from
// the same merged props, and the markup is never fed back into the component.
package showcase

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/alexisbeaulieu97/bookmeza/internal/components"
	"github.com/alexisbeaulieu97/bookmeza/internal/logger"
	"github.com/alexisbeaulieu97/bookmeza/internal/validation"
	"github.com/alexisbeaulieu97/bookmeza/pkg/diff"
	bookmezaerrors "github.com/alexisbeaulieu97/bookmeza/pkg/errors"
)

// EditorSource names the editor buffer in parse errors.
const EditorSource = "editable props"

// Config describes one showcase.
type Config struct {
	Title         string    `validate:"required"`
	Component     Component `validate:"required"`
	ComponentName string    `validate:"required"`
	// FixedProps are always applied and never shown in the editor.
	FixedProps Props
	// EditablePropsInitial seeds the editor.
	EditablePropsInitial Props
	// FixedPropsDisplay maps prop names to the source fragment shown in the
	// markup, for values that have no JSON form such as handlers.
	FixedPropsDisplay map[string]string
	Notes             string
}

// Showcase is the state of one showcase: the editor text, the last good
// editable props and whether the code panel is open.
type Showcase struct {
	mu          sync.RWMutex
	cfg         Config
	codeVisible bool
	editable    Props
	rawJSON     string
	jsonError   string
	renderErr   error
	log         *logger.Logger
}

// Option customizes a Showcase.
type Option func(*Showcase)

// WithLogger attaches a logger.
func WithLogger(log *logger.Logger) Option {
	return func(s *Showcase) { s.log = log }
}

// New validates cfg and renders the component with the initial props.
func New(cfg Config, opts ...Option) (*Showcase, error) {
	if err := validation.Struct(cfg); err != nil {
		return nil, err
	}

	s := &Showcase{
		cfg:      cfg,
		editable: cfg.EditablePropsInitial.Clone(),
		rawJSON:  indentJSON(cfg.EditablePropsInitial),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.log = s.log.WithField("showcase", cfg.Title)

	s.applyLocked()
	return s, nil
}

// Title returns the showcase title.
func (s *Showcase) Title() string { return s.cfg.Title }

// ComponentName returns the name used in generated markup.
func (s *Showcase) ComponentName() string { return s.cfg.ComponentName }

// Notes returns the free-text notes.
func (s *Showcase) Notes() string { return s.cfg.Notes }

// Component returns the hosted component.
func (s *Showcase) Component() Component { return s.cfg.Component }

// CodeVisible reports whether the code panel is open.
func (s *Showcase) CodeVisible() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.codeVisible
}

// ToggleCodeVisible flips the code panel and returns the new state.
func (s *Showcase) ToggleCodeVisible() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.codeVisible = !s.codeVisible
	return s.codeVisible
}

// RawJSON returns the editor text.
func (s *Showcase) RawJSON() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.rawJSON
}

// SetRawJSON replaces the editor text without applying it.
func (s *Showcase) SetRawJSON(text string) {
	s.mu.Lock()
	s.rawJSON = text
	s.mu.Unlock()
}

// JSONError returns the message of the last failed apply, or "".
func (s *Showcase) JSONError() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.jsonError
}

// RenderError returns the component's last rejection of the merged props.
func (s *Showcase) RenderError() error {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.renderErr
}

// EditableProps returns a copy of the current editable props.
func (s *Showcase) EditableProps() Props {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.editable.Clone()
}

// MergedProps returns the props the component is rendered with.
func (s *Showcase) MergedProps() Props {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return MergeProps(s.cfg.FixedProps, s.editable)
}

// ApplyJSONText parses the editor text. On success the editable props are
// replaced wholesale and the error cleared; on failure they are left
// untouched, the error message is set and a *errors.ParseError is returned.
// The editor text is kept either way.
func (s *Showcase) ApplyJSONText() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	parsed, err := ParseProps(s.rawJSON)
	if err != nil {
		var perr *bookmezaerrors.ParseError
		msg := err.Error()
		if errors.As(err, &perr) {
			msg = perr.Message
		}
		s.jsonError = "Invalid JSON: " + msg
		s.log.WithField("error", msg).Debug("editable props rejected")
		return err
	}

	s.editable = parsed
	s.jsonError = ""
	s.applyLocked()
	s.log.WithField("props", len(parsed)).Debug("editable props applied")
	return nil
}

// Reset restores the initial editable props and editor text.
func (s *Showcase) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.editable = s.cfg.EditablePropsInitial.Clone()
	s.rawJSON = indentJSON(s.cfg.EditablePropsInitial)
	s.jsonError = ""
	s.applyLocked()
}

// Markup generates the markup preview for the current editable props.
func (s *Showcase) Markup() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return GenerateMarkup(s.cfg.ComponentName, s.editable, s.cfg.FixedPropsDisplay)
}

// Diff describes how the applied editable props differ from the initial
// ones. Empty when nothing changed.
func (s *Showcase) Diff() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return diff.Lines(indentJSON(s.cfg.EditablePropsInitial), indentJSON(s.editable), "initial", "current")
}

// Render draws the component. It is independent of the code panel.
func (s *Showcase) Render(ctx components.RenderContext) string {
	return s.cfg.Component.View(ctx)
}

// Element returns the component's element tree when it exposes one.
func (s *Showcase) Element(ctx components.RenderContext) (components.Element, bool) {
	inspector, ok := s.cfg.Component.(Inspector)
	if !ok {
		return components.Element{}, false
	}
	return inspector.Render(ctx), true
}

// Click forwards ev to the component when it accepts clicks.
func (s *Showcase) Click(ev components.Event) components.ClickResult {
	clicker, ok := s.cfg.Component.(Clicker)
	if !ok {
		return components.ClickIgnored
	}
	return clicker.Click(ev)
}

// Close releases the component's resources, cancelling pending clicks.
func (s *Showcase) Close() {
	if closer, ok := s.cfg.Component.(Closer); ok {
		closer.Close()
	}
}

func (s *Showcase) applyLocked() {
	merged := MergeProps(s.cfg.FixedProps, s.editable)
	if err := s.cfg.Component.Apply(merged); err != nil {
		s.renderErr = err
		s.log.Warn(err.Error())
		return
	}
	s.renderErr = nil
}

// ParseProps decodes text as a JSON object. Failures are *errors.ParseError
// values carrying the line and column.
func ParseProps(text string) (Props, error) {
	var decoded any
	if err := json.Unmarshal([]byte(text), &decoded); err != nil {
		line, col := position(text, errorOffset(err))
		return nil, bookmezaerrors.NewParseErrorAt(EditorSource, line, col, err)
	}

	object, ok := decoded.(map[string]any)
	if !ok {
		err := fmt.Errorf("props must be a JSON object, got %s", jsonKind(decoded))
		return nil, bookmezaerrors.NewParseErrorAt(EditorSource, 1, 1, err)
	}
	return Props(object), nil
}

func errorOffset(err error) int64 {
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return syntaxErr.Offset
	}
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) {
		return typeErr.Offset
	}
	return 0
}

// position converts a decoder offset, the number of bytes read up to and
// including the offending one, into a 1-based line and column.
func position(text string, offset int64) (int, int) {
	end := offset - 1
	if end > int64(len(text)) {
		end = int64(len(text))
	}
	line, col := 1, 1
	for i := int64(0); i < end; i++ {
		if text[i] == '\n' {
			line++
			col = 1
			continue
		}
		col++
	}
	return line, col
}

func jsonKind(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case []any:
		return "array"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64:
		return "number"
	default:
		return fmt.Sprintf("%T", v)
	}
}
