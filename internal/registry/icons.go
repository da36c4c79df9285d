package registry

import (
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
)

// IconName is the closed set of symbolic icon names callers may reference.
type IconName string

const (
	IconLoader   IconName = "loader"
	IconUser     IconName = "user"
	IconSettings IconName = "settings"
	IconCode     IconName = "code"
)

var knownIcons = map[IconName]struct{}{
	IconLoader:   {},
	IconUser:     {},
	IconSettings: {},
	IconCode:     {},
}

// Known reports whether name belongs to the enumerated icon set.
func (n IconName) Known() bool {
	_, ok := knownIcons[n]
	return ok
}

// Icon is a renderable glyph. Animated icons carry Frames and a frame interval.
type Icon struct {
	Name     IconName
	Glyph    string
	Frames   []string
	Interval time.Duration
}

// Frame returns the glyph to draw for the given animation tick.
func (i Icon) Frame(tick int) string {
	if len(i.Frames) == 0 {
		return i.Glyph
	}
	if tick < 0 {
		tick = -tick
	}
	return i.Frames[tick%len(i.Frames)]
}

// Animated reports whether the icon has more than one frame.
func (i Icon) Animated() bool {
	return len(i.Frames) > 1
}

// LoaderIcon is the spinner shown in place of a control's icon while loading.
func LoaderIcon() Icon {
	frames := append([]string(nil), spinner.MiniDot.Frames...)
	return Icon{
		Name:     IconLoader,
		Glyph:    frames[0],
		Frames:   frames,
		Interval: spinner.MiniDot.FPS,
	}
}

// DefaultIcons returns the standard icon definitions.
func DefaultIcons() []Icon {
	return []Icon{
		LoaderIcon(),
		{Name: IconUser, Glyph: "👤"},
		{Name: IconSettings, Glyph: "⚙"},
		{Name: IconCode, Glyph: "</>"},
	}
}

// IconRegistry maps symbolic names to icon definitions. It is built once at
// startup and every entry is checked against the enumerated names.
type IconRegistry struct {
	mu    sync.RWMutex
	icons map[IconName]Icon
}

// NewIconRegistry builds a registry, rejecting unknown names, empty glyphs
// and duplicates.
func NewIconRegistry(icons ...Icon) (*IconRegistry, error) {
	r := &IconRegistry{icons: make(map[IconName]Icon, len(icons))}
	for _, icon := range icons {
		if !icon.Name.Known() {
			return nil, fmt.Errorf("icon %q is not part of the icon set", icon.Name)
		}
		if icon.Glyph == "" && len(icon.Frames) == 0 {
			return nil, fmt.Errorf("icon %q has no glyph", icon.Name)
		}
		if _, exists := r.icons[icon.Name]; exists {
			return nil, fmt.Errorf("icon %q registered twice", icon.Name)
		}
		r.icons[icon.Name] = icon
	}
	return r, nil
}

var (
	defaultOnce     sync.Once
	defaultRegistry *IconRegistry
)

// Default returns the shared registry holding DefaultIcons.
func Default() *IconRegistry {
	defaultOnce.Do(func() {
		reg, err := NewIconRegistry(DefaultIcons()...)
		if err != nil {
			panic(fmt.Sprintf("registry: invalid default icons: %v", err))
		}
		defaultRegistry = reg
	})
	return defaultRegistry
}

// Lookup resolves an icon by name.
func (r *IconRegistry) Lookup(name IconName) (Icon, bool) {
	if r == nil {
		return Icon{}, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	icon, ok := r.icons[name]
	return icon, ok
}

// Validate checks that every name a caller intends to use is registered.
func (r *IconRegistry) Validate(names ...IconName) error {
	var missing []string
	for _, name := range names {
		if _, ok := r.Lookup(name); !ok {
			missing = append(missing, string(name))
		}
	}
	if len(missing) > 0 {
		sort.Strings(missing)
		return fmt.Errorf("unregistered icons: %v", missing)
	}
	return nil
}

// Names lists the registered icon names in sorted order.
func (r *IconRegistry) Names() []IconName {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]IconName, 0, len(r.icons))
	for name := range r.icons {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool { return names[i] < names[j] })
	return names
}
