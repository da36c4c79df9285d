package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	bookmezaerrors "github.com/alexisbeaulieu97/bookmeza/pkg/errors"
)

func noEnv(string) string { return "" }

func isolated(t *testing.T, opts ...Option) (*Settings, error) {
	t.Helper()
	tmp := t.TempDir()
	base := []Option{
		WithWorkingDir(tmp),
		WithUserConfig(filepath.Join(tmp, "user.yaml")),
		WithEnvLookup(noEnv),
	}
	return Load(append(base, opts...)...)
}

func writeFile(t *testing.T, path, contents string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o600))
}

func TestLoadDefaults(t *testing.T) {
	t.Parallel()

	settings, err := isolated(t)
	require.NoError(t, err)

	assert.Equal(t, "en", settings.Locale, "no locale anywhere falls back to English")
	assert.Equal(t, "default", settings.Theme)
	assert.Equal(t, "auto", settings.MarkdownStyle)
	assert.Equal(t, "info", settings.Log.Level)
	assert.Zero(t, settings.Width)
	assert.Empty(t, settings.ThemeFile)
}

func TestLoadDetectsLocaleFromEnvironment(t *testing.T) {
	t.Parallel()

	env := map[string]string{"LANG": "tr_TR.UTF-8"}
	settings, err := isolated(t, WithEnvLookup(func(key string) string { return env[key] }))
	require.NoError(t, err)
	assert.Equal(t, "tr", settings.Locale)
}

func TestProjectConfigOverridesUser(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	projectDir := filepath.Join(tmp, "repo")
	nested := filepath.Join(projectDir, "sub", "dir")
	require.NoError(t, os.MkdirAll(nested, 0o755))

	writeFile(t, filepath.Join(projectDir, ".bookmeza", "config.yaml"), `
theme: dark
log:
  level: debug
`)
	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, `
theme: light
locale: tr
width: 72
`)

	settings, err := Load(WithWorkingDir(nested), WithUserConfig(userCfg), WithEnvLookup(noEnv))
	require.NoError(t, err)

	assert.Equal(t, "dark", settings.Theme, "project config wins")
	assert.Equal(t, "debug", settings.Log.Level)
	assert.Equal(t, "tr", settings.Locale, "user values survive when the project does not set them")
	assert.Equal(t, 72, settings.Width)
}

func TestExplicitConfigFileAndOverrides(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	explicit := filepath.Join(tmp, "explicit.yaml")
	writeFile(t, explicit, `
theme: light
markdown-style: notty
`)

	settings, err := isolated(t,
		WithConfigFile(explicit),
		WithOverrides(map[string]any{KeyTheme: "dark", KeyLocale: "", KeyLogLevel: "WARN"}),
	)
	require.NoError(t, err)

	assert.Equal(t, "dark", settings.Theme, "overrides win over files")
	assert.Equal(t, "notty", settings.MarkdownStyle)
	assert.Equal(t, "warn", settings.Log.Level)
	assert.Equal(t, "en", settings.Locale, "empty overrides are skipped")
}

func TestExplicitConfigFileMustExist(t *testing.T) {
	t.Parallel()

	_, err := isolated(t, WithConfigFile(filepath.Join(t.TempDir(), "missing.yaml")))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load config file")
}

func TestEnvironmentOverridesFiles(t *testing.T) {
	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, "theme: light\nlocale: en\n")

	t.Setenv("BOOKMEZA_THEME", "dark")
	t.Setenv("BOOKMEZA_LOCALE", "tr-TR")
	t.Setenv("BOOKMEZA_LOG_LEVEL", "error")

	settings, err := Load(WithWorkingDir(tmp), WithUserConfig(userCfg), WithEnvLookup(noEnv))
	require.NoError(t, err)

	assert.Equal(t, "dark", settings.Theme)
	assert.Equal(t, "tr", settings.Locale)
	assert.Equal(t, "error", settings.Log.Level)
}

func TestLoadValidatesSettings(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name      string
		overrides map[string]any
		field     string
	}{
		{name: "unknown theme", overrides: map[string]any{KeyTheme: "neon"}, field: "theme"},
		{name: "unknown log level", overrides: map[string]any{KeyLogLevel: "loud"}, field: "log.level"},
		{name: "negative width", overrides: map[string]any{KeyWidth: -1}, field: "width"},
		{name: "unknown markdown style", overrides: map[string]any{KeyMarkdownStyle: "sepia"}, field: "markdown-style"},
	}

	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			_, err := isolated(t, WithOverrides(tc.overrides))
			var verr *bookmezaerrors.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tc.field, verr.Field)
		})
	}
}

func TestLoadRejectsBrokenConfig(t *testing.T) {
	t.Parallel()

	tmp := t.TempDir()
	userCfg := filepath.Join(tmp, "user.yaml")
	writeFile(t, userCfg, "theme: [dark\n")

	_, err := Load(WithWorkingDir(tmp), WithUserConfig(userCfg), WithEnvLookup(noEnv))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "load user config")
}
