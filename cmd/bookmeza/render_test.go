package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRenderCommandPrintsGallery(t *testing.T) {
	isolateEnv(t)

	output, _, err := executeCommand(t, "render", "--locale", "en")
	require.NoError(t, err)

	for _, title := range []string{"Variant: primary", "Size: large", "Loading", "External link", "Pass-through"} {
		require.Contains(t, output, title)
	}
	require.NotContains(t, output, "<Button", "markup is opt-in")
}

func TestRenderCommandFilterAndCode(t *testing.T) {
	isolateEnv(t)

	output, _, err := executeCommand(t, "render", "--filter", "variant: danger", "--code", "--width", "60")
	require.NoError(t, err)

	require.Contains(t, output, "Variant: danger")
	require.Contains(t, output, "Danger")
	require.Contains(t, output, `variant={"danger"}`)
	require.Contains(t, output, "onClick={handleClick}")
	require.NotContains(t, output, "Variant: primary")
}

func TestRenderCommandTranslatesLabels(t *testing.T) {
	isolateEnv(t)

	output, _, err := executeCommand(t, "render", "--filter", "variant: danger", "--locale", "tr")
	require.NoError(t, err)
	require.Contains(t, output, "Tehlike")
}

func TestRenderCommandNoMatch(t *testing.T) {
	isolateEnv(t)

	_, _, err := executeCommand(t, "render", "--filter", "nothing like this")
	require.Error(t, err)
	require.Contains(t, err.Error(), "no showcase matched")
}

func TestRenderCommandThemeFile(t *testing.T) {
	isolateEnv(t)

	dir := t.TempDir()
	themePath := filepath.Join(dir, "theme.yaml")
	require.NoError(t, os.WriteFile(themePath, []byte("components:\n  Button:\n    baseClasses: \"\"\n"), 0o600))

	_, _, err := executeCommand(t, "render", "--filter", "variant: primary", "--theme-file", themePath)
	require.NoError(t, err)

	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("components:\n  Button:\n    colour: red\n"), 0o600))

	_, _, err = executeCommand(t, "render", "--theme-file", bad)
	require.Error(t, err)
	require.Contains(t, err.Error(), "load theme file")
}

func TestRenderCommandConfigFile(t *testing.T) {
	isolateEnv(t)

	cfg := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(cfg, []byte("locale: tr\ntheme: dark\n"), 0o600))

	output, _, err := executeCommand(t, "render", "--config", cfg, "--filter", "variant: danger")
	require.NoError(t, err)
	require.Contains(t, output, "Tehlike")

	_, _, err = executeCommand(t, "render", "--config", filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}

func TestRenderCommandLogsToFile(t *testing.T) {
	isolateEnv(t)

	logPath := filepath.Join(t.TempDir(), "logs", "bookmeza.log")
	_, stderr, err := executeCommand(t, "render", "--filter", "variant: primary", "--log-level", "debug", "--log-file", logPath)
	require.NoError(t, err)
	require.Empty(t, stderr)

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	require.Contains(t, string(data), "gallery rendered")
}
