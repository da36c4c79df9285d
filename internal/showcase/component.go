package showcase

import (
	"fmt"
	"reflect"
	"time"

	"github.com/go-viper/mapstructure/v2"

	"github.com/alexisbeaulieu97/bookmeza/internal/components"
	"github.com/alexisbeaulieu97/bookmeza/internal/registry"
	bookmezaerrors "github.com/alexisbeaulieu97/bookmeza/pkg/errors"
)

// Component is a control a showcase can host.
type Component interface {
	// Apply replaces the component's props. On error the previous props stay
	// in effect.
	Apply(props Props) error
	View(ctx components.RenderContext) string
}

// Clicker is implemented by components that accept clicks.
type Clicker interface {
	Click(ev components.Event) components.ClickResult
}

// Closer is implemented by components owning resources such as timers.
type Closer interface {
	Close()
}

// Inspector is implemented by components that expose their element tree.
type Inspector interface {
	Render(ctx components.RenderContext) components.Element
}

// ButtonComponent hosts a components.Button, decoding props from maps keyed
// like the markup ("variant", "isLoading", "debounceTime" in milliseconds).
type ButtonComponent struct {
	button *components.Button
}

// NewButtonComponent wraps a fresh Button built with opts.
func NewButtonComponent(opts ...components.ButtonOption) *ButtonComponent {
	return &ButtonComponent{button: components.NewButton(components.ButtonProps{}, opts...)}
}

// Button exposes the hosted control.
func (c *ButtonComponent) Button() *components.Button {
	return c.button
}

func (c *ButtonComponent) Apply(props Props) error {
	decoded, err := DecodeButtonProps(props)
	if err != nil {
		return bookmezaerrors.NewRenderError("Button", err)
	}
	c.button.SetProps(decoded)
	return nil
}

func (c *ButtonComponent) View(ctx components.RenderContext) string {
	return c.button.ViewWithContext(ctx)
}

func (c *ButtonComponent) Render(ctx components.RenderContext) components.Element {
	return c.button.Render(ctx)
}

func (c *ButtonComponent) Click(ev components.Event) components.ClickResult {
	return c.button.Click(ev)
}

func (c *ButtonComponent) Close() {
	c.button.Close()
}

// DecodeButtonProps converts a prop map into validated ButtonProps. Values
// that cannot come from JSON (handlers, icons, child elements) are taken from
// the "onClick", "icon" and "child" keys directly.
func DecodeButtonProps(props Props) (components.ButtonProps, error) {
	var out components.ButtonProps
	rest := make(map[string]any, len(props))

	for key, value := range props {
		if IsUndefined(value) {
			continue
		}
		switch key {
		case "onClick":
			handler, err := clickHandler(value)
			if err != nil {
				return components.ButtonProps{}, err
			}
			out.OnClick = handler
		case "icon":
			icon, err := iconValue(value)
			if err != nil {
				return components.ButtonProps{}, err
			}
			out.Icon = icon
		case "child":
			child, err := childValue(value)
			if err != nil {
				return components.ButtonProps{}, err
			}
			out.Child = child
		default:
			rest[key] = value
		}
	}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.ComposeDecodeHookFunc(
			millisecondsHook,
			mapstructure.StringToTimeDurationHookFunc(),
		),
		WeaklyTypedInput: true,
		Result:           &out,
	})
	if err != nil {
		return components.ButtonProps{}, fmt.Errorf("build props decoder: %w", err)
	}
	if err := decoder.Decode(rest); err != nil {
		return components.ButtonProps{}, err
	}

	if err := out.Validate(); err != nil {
		return components.ButtonProps{}, err
	}
	return out, nil
}

var durationType = reflect.TypeOf(time.Duration(0))

// millisecondsHook reads bare numbers destined for a time.Duration as
// milliseconds, the unit the JSON editor uses.
func millisecondsHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to != durationType {
		return data, nil
	}
	switch v := data.(type) {
	case float64:
		return time.Duration(v * float64(time.Millisecond)), nil
	case float32:
		return time.Duration(float64(v) * float64(time.Millisecond)), nil
	case int:
		return time.Duration(v) * time.Millisecond, nil
	case int64:
		return time.Duration(v) * time.Millisecond, nil
	}
	return data, nil
}

func clickHandler(value any) (components.ClickHandler, error) {
	switch fn := value.(type) {
	case nil:
		return nil, nil
	case components.ClickHandler:
		return fn, nil
	case func(components.Event):
		return fn, nil
	case func():
		return func(components.Event) { fn() }, nil
	default:
		return nil, fmt.Errorf("onClick: expected a click handler, got %T", value)
	}
}

func iconValue(value any) (*registry.Icon, error) {
	switch icon := value.(type) {
	case nil:
		return nil, nil
	case *registry.Icon:
		return icon, nil
	case registry.Icon:
		return &icon, nil
	default:
		return nil, fmt.Errorf("icon: expected an icon definition, got %T; use iconName for symbolic icons", value)
	}
}

func childValue(value any) (*components.Element, error) {
	switch child := value.(type) {
	case nil:
		return nil, nil
	case *components.Element:
		return child, nil
	case components.Element:
		return &child, nil
	default:
		return nil, fmt.Errorf("child: expected an element, got %T", value)
	}
}
