package components

import (
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/alexisbeaulieu97/bookmeza/internal/logger"
	"github.com/alexisbeaulieu97/bookmeza/internal/registry"
	"github.com/alexisbeaulieu97/bookmeza/internal/validation"
)

// ButtonVariant is the visual variant of a Button.
type ButtonVariant string

const (
	ButtonVariantPrimary   ButtonVariant = "primary"
	ButtonVariantSecondary ButtonVariant = "secondary"
	ButtonVariantGhost     ButtonVariant = "ghost"
	ButtonVariantDanger    ButtonVariant = "danger"
	ButtonVariantSuccess   ButtonVariant = "success"
	ButtonVariantWarning   ButtonVariant = "warning"
	ButtonVariantInfo      ButtonVariant = "info"
	ButtonVariantGlass     ButtonVariant = "glass"
)

// ButtonVariants lists every variant in display order.
func ButtonVariants() []ButtonVariant {
	return []ButtonVariant{
		ButtonVariantPrimary,
		ButtonVariantSecondary,
		ButtonVariantGhost,
		ButtonVariantDanger,
		ButtonVariantSuccess,
		ButtonVariantWarning,
		ButtonVariantInfo,
		ButtonVariantGlass,
	}
}

// ButtonSize represents different button sizes
type ButtonSize string

const (
	ButtonSizeSmall  ButtonSize = "small"
	ButtonSizeMedium ButtonSize = "medium"
	ButtonSizeLarge  ButtonSize = "large"
)

// IconPosition places the icon slot before or after the label.
type IconPosition string

const (
	IconPositionLeft  IconPosition = "left"
	IconPositionRight IconPosition = "right"
)

// ButtonProps configures a Button. Field tags name the keys used when props
// are decoded from JSON-like maps.
type ButtonProps struct {
	Variant      ButtonVariant     `mapstructure:"variant" validate:"omitempty,oneof=primary secondary ghost danger success warning info glass"`
	Size         ButtonSize        `mapstructure:"size" validate:"omitempty,oneof=small medium large"`
	FullWidth    bool              `mapstructure:"fullWidth"`
	IsLoading    bool              `mapstructure:"isLoading"`
	LoadingText  string            `mapstructure:"loadingText"`
	Disabled     bool              `mapstructure:"disabled"`
	Icon         *registry.Icon    `mapstructure:"-"`
	IconName     registry.IconName `mapstructure:"iconName" validate:"icon_name"`
	IconPosition IconPosition      `mapstructure:"iconPosition" validate:"omitempty,oneof=left right"`
	Children     string            `mapstructure:"children"`
	TextKey      string            `mapstructure:"textKey"`

	// AsChild merges the button's classes, handler and attributes into Child
	// instead of producing its own element. Disabled is OR-ed: a disabled
	// button disables the child even when the child is enabled, and a
	// disabled child stays disabled.
	AsChild bool     `mapstructure:"asChild"`
	Child   *Element `mapstructure:"-"`

	Href   string  `mapstructure:"href" validate:"href"`
	Target *string `mapstructure:"target"`
	Rel    *string `mapstructure:"rel"`

	OnClick            ClickHandler  `mapstructure:"-"`
	DebounceTime       time.Duration `mapstructure:"debounceTime" validate:"gte=0"`
	PreventDoubleClick bool          `mapstructure:"preventDoubleClick"`

	ClassName        string `mapstructure:"className"`
	IconClassName    string `mapstructure:"iconClassName"`
	LoadingClassName string `mapstructure:"loadingClassName"`
	LeftSlot         string `mapstructure:"leftSlot"`
	RightSlot        string `mapstructure:"rightSlot"`
	BeforeIcon       string `mapstructure:"beforeIcon"`
	AfterIcon        string `mapstructure:"afterIcon"`

	Type      string `mapstructure:"type" validate:"omitempty,oneof=button submit reset"`
	AutoFocus bool   `mapstructure:"autoFocus"`
	TabIndex  *int   `mapstructure:"tabIndex"`
	AriaLabel string `mapstructure:"aria-label"`

	// Attrs are passed through verbatim, e.g. data-testid.
	Attrs map[string]string `mapstructure:",remain"`
}

// Validate checks the enumerated fields.
func (p ButtonProps) Validate() error {
	return validation.Struct(p)
}

const defaultButtonBaseClasses = `
	border-rounded font-bold
	disabled:faint disabled:border-neutral
	focus:border-thick focus:border-info
`

var defaultButtonVariantClasses = map[ButtonVariant]string{
	ButtonVariantPrimary:   "bg-primary border-primary disabled:bg-neutral dark:disabled:bg-glass",
	ButtonVariantSecondary: "bg-secondary border-secondary disabled:bg-neutral dark:disabled:bg-glass",
	ButtonVariantDanger:    "bg-danger border-danger disabled:bg-neutral dark:disabled:bg-glass",
	ButtonVariantSuccess:   "bg-success border-success disabled:bg-neutral dark:disabled:bg-glass",
	ButtonVariantWarning:   "bg-warning border-warning text-slate-900 disabled:bg-neutral disabled:text-slate-500",
	ButtonVariantInfo:      "bg-info border-info disabled:bg-neutral dark:disabled:bg-glass",
	ButtonVariantGhost:     "text-primary border-none disabled:text-slate-400 dark:disabled:text-slate-500",
	ButtonVariantGlass:     "bg-glass border-slate-300 dark:border-slate-700",
}

var defaultButtonSizeClasses = map[ButtonSize]string{
	ButtonSizeSmall:  "px-xs text-xs",
	ButtonSizeMedium: "px-sm text-sm",
	ButtonSizeLarge:  "px-md py-xs text-base",
}

// Button represents a clickable button component
type Button struct {
	mu    sync.RWMutex
	props ButtonProps
	ctx   RenderContext
	guard *ClickGuard
	log   *logger.Logger
}

type buttonConfig struct {
	ctx       *RenderContext
	scheduler Scheduler
	log       *logger.Logger
	observer  func()
}

// ButtonOption customizes a Button at construction.
type ButtonOption func(*buttonConfig)

// WithRenderContext sets the context used by View.
func WithRenderContext(ctx RenderContext) ButtonOption {
	return func(c *buttonConfig) { c.ctx = &ctx }
}

// WithScheduler replaces the wall clock used for debounce timers.
func WithScheduler(s Scheduler) ButtonOption {
	return func(c *buttonConfig) { c.scheduler = s }
}

// WithLogger attaches a logger.
func WithLogger(log *logger.Logger) ButtonOption {
	return func(c *buttonConfig) { c.log = log }
}

// WithStateObserver is called when the button's submitting or pending state
// changes, possibly from a timer goroutine.
func WithStateObserver(fn func()) ButtonOption {
	return func(c *buttonConfig) { c.observer = fn }
}

// NewButton creates a button with the given props.
func NewButton(props ButtonProps, opts ...ButtonOption) *Button {
	cfg := buttonConfig{}
	for _, opt := range opts {
		opt(&cfg)
	}

	ctx := DefaultRenderContext()
	if cfg.ctx != nil {
		ctx = *cfg.ctx
	}

	log := cfg.log.WithField("component", "button")
	guard := NewClickGuard(cfg.scheduler, log)
	if cfg.observer != nil {
		guard.OnStateChange(cfg.observer)
	}

	return &Button{
		props: props,
		ctx:   ctx,
		guard: guard,
		log:   log,
	}
}

// SimpleButton creates a primary button with a literal label.
func SimpleButton(label string, onClick ClickHandler) *Button {
	return NewButton(ButtonProps{Children: label, OnClick: onClick})
}

// Props returns a copy of the current props.
func (b *Button) Props() ButtonProps {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return b.props
}

// SetProps replaces the props. The click guard, and with it any pending
// click, is kept.
func (b *Button) SetProps(props ButtonProps) {
	b.mu.Lock()
	b.props = props
	b.mu.Unlock()
}

// WithVariant sets the button variant
func (b *Button) WithVariant(variant ButtonVariant) *Button {
	b.mu.Lock()
	b.props.Variant = variant
	b.mu.Unlock()
	return b
}

// WithSize sets the button size
func (b *Button) WithSize(size ButtonSize) *Button {
	b.mu.Lock()
	b.props.Size = size
	b.mu.Unlock()
	return b
}

// WithDisabled sets the button disabled state
func (b *Button) WithDisabled(disabled bool) *Button {
	b.mu.Lock()
	b.props.Disabled = disabled
	b.mu.Unlock()
	return b
}

// WithLoading sets the button loading state
func (b *Button) WithLoading(loading bool) *Button {
	b.mu.Lock()
	b.props.IsLoading = loading
	b.mu.Unlock()
	return b
}

// IsSubmitting reports whether the double-click guard holds the button.
func (b *Button) IsSubmitting() bool {
	return b.guard.Submitting()
}

// IsPending reports whether a debounced click is waiting to fire.
func (b *Button) IsPending() bool {
	return b.guard.Pending()
}

// IsDisabled is the effective disabled state: explicit, loading or submitting.
func (b *Button) IsDisabled() bool {
	props := b.Props()
	return props.Disabled || props.IsLoading || b.guard.Submitting()
}

// Click routes ev through the click guard.
func (b *Button) Click(ev Event) ClickResult {
	props := b.Props()
	delay := registry.EffectiveDelay(props.DebounceTime, props.PreventDoubleClick)
	result := b.guard.Click(ev, props.Disabled || props.IsLoading, props.OnClick, delay, props.PreventDoubleClick)
	if result == ClickIgnored {
		b.log.WithField("source", ev.Source).Debug("click ignored")
	}
	return result
}

// Close cancels any pending click. The button ignores clicks afterwards.
func (b *Button) Close() {
	b.guard.Close()
}

// View renders the button with the context supplied at construction.
func (b *Button) View() string {
	return b.ViewWithContext(b.ctx)
}

// ViewWithContext renders the button with ctx.
func (b *Button) ViewWithContext(ctx RenderContext) string {
	return b.Render(ctx).View(ctx)
}

// Render computes the element the button presents. In pass-through mode the
// result is the supplied child with the button's classes, click handler,
// disabled state and attributes merged in.
func (b *Button) Render(ctx RenderContext) Element {
	props := b.Props()
	disabled := props.Disabled || props.IsLoading || b.guard.Submitting()

	className := b.className(props, ctx.Overrides.ButtonOverrides())
	label := b.label(props, ctx)

	if props.AsChild {
		return b.renderPassThrough(props, ctx, className, label, disabled)
	}

	tag := "button"
	if props.Href != "" {
		tag = "a"
	}

	el := Element{
		Tag:          tag,
		Classes:      SplitClasses(className),
		Attrs:        b.attributes(props, tag, label, disabled),
		Disabled:     disabled,
		OnClick:      b.handleClick,
		Text:         label,
		Icon:         b.iconSlot(props, ctx),
		IconPosition: props.IconPosition,
		IconClass:    props.IconClassName,
		LeftSlot:     props.LeftSlot,
		RightSlot:    props.RightSlot,
	}
	if el.Icon != "" {
		if props.IsLoading {
			el.IconClass = JoinClasses(el.IconClass, props.LoadingClassName)
		}
		if el.IconPosition == IconPositionRight {
			el.TextClass = "me-xs"
		} else {
			el.TextClass = "ms-xs"
		}
	}
	return el
}

func (b *Button) handleClick(ev Event) {
	b.Click(ev)
}

func (b *Button) renderPassThrough(props ButtonProps, ctx RenderContext, className, label string, disabled bool) Element {
	if props.Child == nil {
		return Element{
			Tag:      "span",
			Classes:  SplitClasses(className),
			Attrs:    map[string]string{},
			Disabled: disabled,
			Text:     label,
		}
	}

	child := *props.Child
	merged := b.attributes(props, child.Tag, label, disabled)
	for name, value := range child.Attrs {
		merged[name] = value
	}

	child.Classes = SplitClasses(JoinClasses(className, child.ClassName()))
	child.OnClick = b.handleClick
	child.Disabled = disabled || child.Disabled
	child.Attrs = merged
	return child
}

func (b *Button) label(props ButtonProps, ctx RenderContext) string {
	if props.IsLoading {
		if props.LoadingText != "" {
			return props.LoadingText
		}
		return ctx.translate("loading")
	}
	if props.TextKey != "" {
		return ctx.translate(props.TextKey)
	}
	return props.Children
}

// iconSlot returns the icon slot content, or "" when no icon is configured.
func (b *Button) iconSlot(props ButtonProps, ctx RenderContext) string {
	var icon registry.Icon
	switch {
	case props.Icon != nil:
		icon = *props.Icon
	case props.IconName != "":
		resolved, ok := ctx.Icons.Lookup(props.IconName)
		if !ok {
			return ""
		}
		icon = resolved
	default:
		return ""
	}

	if props.IsLoading {
		loader, ok := ctx.Icons.Lookup(registry.IconLoader)
		if !ok {
			loader = registry.LoaderIcon()
		}
		return loader.Frame(ctx.Frame)
	}
	return props.BeforeIcon + icon.Frame(ctx.Frame) + props.AfterIcon
}

func (b *Button) className(props ButtonProps, override *ButtonTheme) string {
	base := defaultButtonBaseClasses
	variant := defaultButtonVariantClasses[variantOrDefault(props.Variant)]
	size := defaultButtonSizeClasses[sizeOrDefault(props.Size)]

	if override != nil {
		if override.BaseClasses != nil {
			base = *override.BaseClasses
		}
		if classes, ok := override.VariantClasses[variantOrDefault(props.Variant)]; ok {
			variant = classes
		}
		if classes, ok := override.SizeClasses[sizeOrDefault(props.Size)]; ok {
			size = classes
		}
	}

	fullWidth := ""
	if props.FullWidth {
		fullWidth = "w-full"
	}
	return JoinClasses(base, variant, size, fullWidth, props.ClassName)
}

func (b *Button) attributes(props ButtonProps, tag, label string, disabled bool) map[string]string {
	attrs := map[string]string{}

	if tag == "button" || tag == "a" {
		attrs["role"] = "button"
	}
	if tag == "a" && props.Href != "" {
		attrs["href"] = props.Href
		external := strings.HasPrefix(props.Href, "http")
		if props.Target != nil {
			attrs["target"] = *props.Target
		} else if external {
			attrs["target"] = "_blank"
		}
		if props.Rel != nil {
			attrs["rel"] = *props.Rel
		} else if external {
			attrs["rel"] = "noopener noreferrer"
		}
	}

	switch {
	case props.AriaLabel != "":
		attrs["aria-label"] = props.AriaLabel
	case label != "":
		attrs["aria-label"] = label
	}
	attrs["aria-busy"] = strconv.FormatBool(props.IsLoading)
	attrs["aria-disabled"] = strconv.FormatBool(disabled)

	if disabled {
		attrs["tabindex"] = "-1"
	} else if props.TabIndex != nil {
		attrs["tabindex"] = strconv.Itoa(*props.TabIndex)
	}
	if props.AutoFocus {
		attrs["autofocus"] = "true"
	}
	if tag == "button" {
		attrs["type"] = typeOrDefault(props.Type)
	}

	for name, value := range props.Attrs {
		attrs[name] = value
	}
	return attrs
}

func variantOrDefault(v ButtonVariant) ButtonVariant {
	if _, ok := defaultButtonVariantClasses[v]; ok {
		return v
	}
	return ButtonVariantPrimary
}

func sizeOrDefault(s ButtonSize) ButtonSize {
	if _, ok := defaultButtonSizeClasses[s]; ok {
		return s
	}
	return ButtonSizeMedium
}

func typeOrDefault(t string) string {
	if t == "" {
		return "button"
	}
	return t
}
