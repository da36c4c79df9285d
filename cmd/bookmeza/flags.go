package main

import (
	"github.com/spf13/pflag"

	"github.com/alexisbeaulieu97/bookmeza/internal/config"
)

// rootFlags are the persistent flags shared by every command. Each one maps
// onto a config key and, when set, overrides every other layer.
type rootFlags struct {
	configPath    string
	locale        string
	theme         string
	themeFile     string
	logLevel      string
	logFile       string
	markdownStyle string
	width         int
}

func (f *rootFlags) register(fs *pflag.FlagSet) {
	fs.StringVar(&f.configPath, "config", "", "Path to a config file merged over the discovered ones")
	fs.StringVar(&f.locale, "locale", "", "Active locale (en, tr); detected from the environment when unset")
	fs.StringVar(&f.theme, "theme", "", "Theme: default, light or dark")
	fs.StringVar(&f.themeFile, "theme-file", "", "YAML file with component class overrides")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level: trace, debug, info, warn or error")
	fs.StringVar(&f.logFile, "log-file", "", "Write logs to this file (the gallery discards logs otherwise)")
	fs.StringVar(&f.markdownStyle, "markdown-style", "", "Markup preview style: auto, dark, light, notty or ascii")
	fs.IntVar(&f.width, "width", 0, "Render width in cells (0 uses the terminal width)")
}

// overrides returns the flag values for config.WithOverrides. Only flags the
// user changed are included.
func (f *rootFlags) overrides(fs *pflag.FlagSet) map[string]any {
	values := map[string]any{
		config.KeyLocale:        f.locale,
		config.KeyTheme:         f.theme,
		config.KeyThemeFile:     f.themeFile,
		config.KeyLogLevel:      f.logLevel,
		config.KeyLogFile:       f.logFile,
		config.KeyMarkdownStyle: f.markdownStyle,
	}
	if fs.Changed("width") {
		values[config.KeyWidth] = f.width
	}
	return values
}
