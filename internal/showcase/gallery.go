package showcase

import (
	"fmt"

	"github.com/alexisbeaulieu97/bookmeza/internal/components"
	"github.com/alexisbeaulieu97/bookmeza/internal/logger"
	"github.com/alexisbeaulieu97/bookmeza/internal/registry"
)

// GalleryDeps wires the gallery's controls to their host.
type GalleryDeps struct {
	Scheduler components.Scheduler
	Logger    *logger.Logger
	// OnClick receives every handler invocation tagged with the showcase title.
	OnClick func(title string, ev components.Event)
	// OnStateChange is called when a control arms, fires or is cancelled.
	OnStateChange func()
}

type galleryEntry struct {
	title    string
	notes    string
	editable Props
	fixed    Props
	display  map[string]string
}

// DefaultGallery builds the button showcases: every variant and size, full
// width, icons, loading, disabled, links, debounced, double-submit guarded
// and pass-through rendering.
func DefaultGallery(deps GalleryDeps) ([]*Showcase, error) {
	entries := galleryEntries()
	out := make([]*Showcase, 0, len(entries))

	for _, entry := range entries {
		sc, err := buildShowcase(entry, deps)
		if err != nil {
			CloseAll(out)
			return nil, fmt.Errorf("showcase %q: %w", entry.title, err)
		}
		out = append(out, sc)
	}
	return out, nil
}

// CloseAll closes every showcase, cancelling pending clicks.
func CloseAll(showcases []*Showcase) {
	for _, sc := range showcases {
		sc.Close()
	}
}

func buildShowcase(entry galleryEntry, deps GalleryDeps) (*Showcase, error) {
	opts := []components.ButtonOption{components.WithLogger(deps.Logger)}
	if deps.Scheduler != nil {
		opts = append(opts, components.WithScheduler(deps.Scheduler))
	}
	if deps.OnStateChange != nil {
		opts = append(opts, components.WithStateObserver(deps.OnStateChange))
	}

	fixed := entry.fixed.Clone()
	display := map[string]string{"onClick": "handleClick"}
	for key, value := range entry.display {
		display[key] = value
	}
	title := entry.title
	fixed["onClick"] = components.ClickHandler(func(ev components.Event) {
		if deps.OnClick != nil {
			deps.OnClick(title, ev)
		}
	})

	return New(Config{
		Title:                entry.title,
		Component:            NewButtonComponent(opts...),
		ComponentName:        "Button",
		FixedProps:           fixed,
		EditablePropsInitial: entry.editable,
		FixedPropsDisplay:    display,
		Notes:                entry.notes,
	}, WithLogger(deps.Logger))
}

var variantLabelKeys = map[components.ButtonVariant]string{
	components.ButtonVariantPrimary:   "primaryButton",
	components.ButtonVariantSecondary: "secondaryButton",
	components.ButtonVariantGhost:     "ghostButton",
	components.ButtonVariantDanger:    "dangerButton",
	components.ButtonVariantSuccess:   "successButton",
	components.ButtonVariantWarning:   "warningButton",
	components.ButtonVariantInfo:      "infoButton",
	components.ButtonVariantGlass:     "glassButton",
}

var sizeLabelKeys = map[components.ButtonSize]string{
	components.ButtonSizeSmall:  "smallButton",
	components.ButtonSizeMedium: "mediumButton",
	components.ButtonSizeLarge:  "largeButton",
}

func galleryEntries() []galleryEntry {
	var entries []galleryEntry

	for _, variant := range components.ButtonVariants() {
		entries = append(entries, galleryEntry{
			title: "Variant: " + string(variant),
			notes: "Edit the variant to compare palettes. Disabled and dark states use their own classes.",
			editable: Props{
				"variant": string(variant),
				"textKey": variantLabelKeys[variant],
			},
		})
	}

	for _, size := range []components.ButtonSize{components.ButtonSizeSmall, components.ButtonSizeMedium, components.ButtonSizeLarge} {
		entries = append(entries, galleryEntry{
			title:    "Size: " + string(size),
			notes:    "Sizes change horizontal padding and text scale.",
			editable: Props{"size": string(size), "textKey": sizeLabelKeys[size]},
		})
	}

	entries = append(entries,
		galleryEntry{
			title:    "Full width",
			notes:    "fullWidth stretches the control across the available width.",
			editable: Props{"fullWidth": true, "textKey": "fullWidthButton"},
		},
		galleryEntry{
			title:    "Icon left",
			notes:    "iconName resolves through the icon registry.",
			editable: Props{"iconName": string(registry.IconUser), "textKey": "buttonWithIcon"},
		},
		galleryEntry{
			title: "Icon right",
			notes: "iconPosition right places the icon after the label.",
			editable: Props{
				"iconName":     string(registry.IconSettings),
				"iconPosition": string(components.IconPositionRight),
				"textKey":      "buttonWithIconRight",
				"variant":      string(components.ButtonVariantSecondary),
			},
		},
		galleryEntry{
			title:    "Loading",
			notes:    "While loading the control is disabled, busy and shows the animated loader in place of its icon.",
			editable: Props{"isLoading": true, "iconName": string(registry.IconUser), "textKey": "loadingButton"},
		},
		galleryEntry{
			title:    "Disabled",
			notes:    "Disabled controls ignore clicks and leave the tab order.",
			editable: Props{"disabled": true, "textKey": "disabledButton"},
		},
		galleryEntry{
			title:    "Link",
			notes:    "href renders an anchor. Relative links get no target.",
			editable: Props{"href": "/docs", "textKey": "learnMore", "variant": string(components.ButtonVariantGhost)},
		},
		galleryEntry{
			title:    "External link",
			notes:    "Absolute http(s) links open in a new tab with rel noopener noreferrer unless overridden.",
			editable: Props{"href": "https://github.com/alexisbeaulieu97/bookmeza", "children": "GitHub", "iconName": string(registry.IconCode)},
		},
		galleryEntry{
			title:    "Debounced",
			notes:    "Rapid clicks collapse into one invocation after the debounce window.",
			editable: Props{"debounceTime": int(registry.DefaultDebounceTime.Milliseconds()), "children": "Search", "variant": string(components.ButtonVariantInfo)},
		},
		galleryEntry{
			title:    "Double-submit guard",
			notes:    "preventDoubleClick ignores clicks while a submission is in flight.",
			editable: Props{"preventDoubleClick": true, "textKey": "submitApplication", "variant": string(components.ButtonVariantSuccess)},
		},
		galleryEntry{
			title: "Pass-through",
			notes: "asChild merges the control's classes, handler and attributes into the child element.",
			editable: Props{
				"asChild":   true,
				"variant":   string(components.ButtonVariantSecondary),
				"className": "underline",
			},
			fixed: Props{
				"child": components.Element{
					Tag:   "a",
					Attrs: map[string]string{"href": "/profile"},
					Text:  "Open Profile",
				},
			},
			display: map[string]string{"child": `<a href="/profile">Open Profile</a>`},
		},
	)
	return entries
}
