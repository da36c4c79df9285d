package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bookmeza/internal/components"
	"github.com/alexisbeaulieu97/bookmeza/internal/config"
	"github.com/alexisbeaulieu97/bookmeza/internal/i18n"
	"github.com/alexisbeaulieu97/bookmeza/internal/logger"
	"github.com/alexisbeaulieu97/bookmeza/internal/registry"
)

// AppContext bundles long-lived services created at startup.
type AppContext struct {
	Settings  *config.Settings
	Log       *logger.Logger
	Store     *i18n.Store
	Theme     components.Theme
	Overrides *components.AppTheme
	Icons     *registry.IconRegistry

	closers []io.Closer
}

// Close releases the log file, if any.
func (a *AppContext) Close() {
	for _, c := range a.closers {
		_ = c.Close()
	}
}

// RenderContext builds the context static renders use.
func (a *AppContext) RenderContext() components.RenderContext {
	width := a.Settings.Width
	if width == 0 {
		width = defaultRenderWidth
	}
	return components.RenderContext{
		Theme:      a.Theme,
		Overrides:  a.Overrides,
		Translator: a.Store,
		Icons:      a.Icons,
		Width:      width,
	}
}

const defaultRenderWidth = 80

// logTarget decides where a command's log goes.
type logTarget int

const (
	// logToStderr writes human-readable entries to the command's stderr.
	logToStderr logTarget = iota
	// logToFileOnly keeps the screen clean: entries go to --log-file or nowhere.
	logToFileOnly
)

// newAppContext resolves settings and builds the shared services.
func newAppContext(cmd *cobra.Command, flags *rootFlags, target logTarget) (*AppContext, error) {
	settings, err := config.Load(
		config.WithConfigFile(flags.configPath),
		config.WithOverrides(flags.overrides(cmd.Flags())),
	)
	if err != nil {
		return nil, fmt.Errorf("load settings: %w", err)
	}

	app := &AppContext{Settings: settings, Icons: registry.Default()}

	log, err := app.openLogger(cmd, target)
	if err != nil {
		return nil, err
	}
	app.Log = log

	store, err := i18n.New(i18n.WithLocale(settings.Locale), i18n.WithLogger(log.WithField("component", "i18n")))
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("load translations: %w", err)
	}
	app.Store = store

	theme, err := components.ThemeByName(settings.Theme)
	if err != nil {
		app.Close()
		return nil, err
	}
	app.Theme = theme

	if settings.ThemeFile != "" {
		overrides, err := config.LoadThemeFile(settings.ThemeFile)
		if err != nil {
			app.Close()
			return nil, fmt.Errorf("load theme file: %w", err)
		}
		app.Overrides = overrides
	}

	log.WithFields(map[string]any{
		"locale": settings.Locale,
		"theme":  theme.Name,
	}).Debug("settings resolved")
	return app, nil
}

func (a *AppContext) openLogger(cmd *cobra.Command, target logTarget) (*logger.Logger, error) {
	opts := logger.Options{Level: a.Settings.Log.Level, Component: "bookmeza"}

	switch {
	case a.Settings.Log.File != "":
		f, err := logger.OpenFile(a.Settings.Log.File)
		if err != nil {
			return nil, err
		}
		a.closers = append(a.closers, f)
		opts.Writer = f
	case target == logToFileOnly:
		return logger.Discard(), nil
	default:
		opts.Writer = cmd.ErrOrStderr()
		opts.HumanReadable = true
	}

	log, err := logger.New(opts)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("create logger: %w", err)
	}
	return log, nil
}
