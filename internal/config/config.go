// Package config loads bookmeza settings with viper and the component theme
// override file with yaml.v3.
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/alexisbeaulieu97/bookmeza/internal/i18n"
	"github.com/alexisbeaulieu97/bookmeza/internal/validation"
)

const (
	KeyLocale        = "locale"
	KeyTheme         = "theme"
	KeyThemeFile     = "theme-file"
	KeyMarkdownStyle = "markdown-style"
	KeyWidth         = "width"
	KeyLogLevel      = "log.level"
	KeyLogFile       = "log.file"
)

const envPrefix = "BOOKMEZA"

// Settings is the resolved configuration.
type Settings struct {
	// Locale is normalized; when nothing sets it the environment's locale is
	// detected.
	Locale        string `mapstructure:"locale" validate:"locale"`
	Theme         string `mapstructure:"theme" validate:"oneof=default light dark"`
	ThemeFile     string `mapstructure:"theme-file"`
	MarkdownStyle string `mapstructure:"markdown-style" validate:"oneof=auto dark light notty ascii"`
	// Width caps the render width; zero uses the terminal width.
	Width int         `mapstructure:"width" validate:"gte=0"`
	Log   LogSettings `mapstructure:"log"`
}

// LogSettings configures the logger.
type LogSettings struct {
	Level string `mapstructure:"level" validate:"oneof=trace debug info warn error"`
	File  string `mapstructure:"file"`
}

type loadSettings struct {
	workingDir     string
	userConfigPath string
	configFile     string
	overrides      map[string]any
	lookupEnv      func(string) string
}

// Option configures Load. Useful for tests to override paths.
type Option func(*loadSettings)

// WithWorkingDir overrides the directory used for project config discovery.
func WithWorkingDir(dir string) Option {
	return func(s *loadSettings) { s.workingDir = dir }
}

// WithUserConfig overrides the default user config path.
func WithUserConfig(path string) Option {
	return func(s *loadSettings) { s.userConfigPath = path }
}

// WithConfigFile merges an explicit config file after the discovered ones.
// Unlike discovered files it must exist.
func WithConfigFile(path string) Option {
	return func(s *loadSettings) { s.configFile = path }
}

// WithOverrides injects values typically coming from CLI flags. Empty strings
// are skipped so unset flags do not mask lower layers.
func WithOverrides(overrides map[string]any) Option {
	return func(s *loadSettings) { s.overrides = overrides }
}

// WithEnvLookup replaces os.Getenv for locale detection.
func WithEnvLookup(lookup func(string) string) Option {
	return func(s *loadSettings) { s.lookupEnv = lookup }
}

// Load resolves settings using the precedence:
// defaults < user config < project config < --config file < BOOKMEZA_* environment < overrides.
func Load(opts ...Option) (*Settings, error) {
	ls := loadSettings{lookupEnv: os.Getenv}
	for _, opt := range opts {
		opt(&ls)
	}

	v, err := configure(&ls)
	if err != nil {
		return nil, err
	}

	var settings Settings
	if err := v.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("decode settings: %w", err)
	}

	if strings.TrimSpace(settings.Locale) == "" {
		settings.Locale = i18n.Detect(ls.lookupEnv)
	} else if normalized := i18n.Normalize(settings.Locale); normalized != "" {
		settings.Locale = normalized
	}
	settings.Log.Level = strings.ToLower(settings.Log.Level)

	if err := validation.Struct(settings); err != nil {
		return nil, err
	}
	return &settings, nil
}

func configure(ls *loadSettings) (*viper.Viper, error) {
	workingDir := strings.TrimSpace(ls.workingDir)
	if workingDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("determine working directory: %w", err)
		}
		workingDir = wd
	}

	userConfigPath := strings.TrimSpace(ls.userConfigPath)
	if userConfigPath == "" {
		path, err := defaultUserConfigPath()
		if err != nil {
			return nil, err
		}
		userConfigPath = path
	}

	projectConfigPath, err := findProjectConfig(workingDir)
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigType("yaml")
	setDefaults(v)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	if err := mergeConfigFile(v, userConfigPath); err != nil {
		return nil, fmt.Errorf("load user config: %w", err)
	}
	if projectConfigPath != userConfigPath {
		if err := mergeConfigFile(v, projectConfigPath); err != nil {
			return nil, fmt.Errorf("load project config: %w", err)
		}
	}
	if ls.configFile != "" {
		if _, err := os.Stat(ls.configFile); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
		if err := mergeConfigFile(v, ls.configFile); err != nil {
			return nil, fmt.Errorf("load config file: %w", err)
		}
	}

	for key, value := range ls.overrides {
		if s, ok := value.(string); ok && s == "" {
			continue
		}
		v.Set(key, value)
	}
	return v, nil
}

func mergeConfigFile(v *viper.Viper, path string) error {
	if strings.TrimSpace(path) == "" {
		return nil
	}
	info, err := os.Stat(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("config path %s is a directory", path)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read %s: %w", path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := v.MergeConfig(bytes.NewReader(data)); err != nil {
		return fmt.Errorf("parse %s: %w", path, err)
	}
	return nil
}

func defaultUserConfigPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("determine user home: %w", err)
	}
	return filepath.Join(home, ".bookmeza", "config.yaml"), nil
}

// findProjectConfig walks up from startDir looking for .bookmeza/config.yaml.
func findProjectConfig(startDir string) (string, error) {
	dir := startDir
	for {
		candidate := filepath.Join(dir, ".bookmeza", "config.yaml")
		info, err := os.Stat(candidate)
		if err == nil {
			if info.IsDir() {
				return "", fmt.Errorf("config path %s is a directory", candidate)
			}
			return candidate, nil
		}
		if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("stat %s: %w", candidate, err)
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyLocale, "")
	v.SetDefault(KeyTheme, "default")
	v.SetDefault(KeyThemeFile, "")
	v.SetDefault(KeyMarkdownStyle, "auto")
	v.SetDefault(KeyWidth, 0)
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyLogFile, "")
}
