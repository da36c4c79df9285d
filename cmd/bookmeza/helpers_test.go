package main

import (
	"bytes"
	"testing"
)

// isolateEnv points HOME at a temp dir and clears the locale and BOOKMEZA_*
// variables so host settings do not leak into command tests.
func isolateEnv(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	for _, key := range []string{
		"LC_ALL", "LC_MESSAGES", "LANG",
		"BOOKMEZA_LOCALE", "BOOKMEZA_THEME", "BOOKMEZA_THEME_FILE",
		"BOOKMEZA_MARKDOWN_STYLE", "BOOKMEZA_WIDTH", "BOOKMEZA_LOG_LEVEL", "BOOKMEZA_LOG_FILE",
	} {
		t.Setenv(key, "")
	}
	return home
}

func executeCommand(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetArgs(args)

	err := root.Execute()
	return stdout.String(), stderr.String(), err
}
