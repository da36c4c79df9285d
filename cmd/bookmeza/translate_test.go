package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTranslateCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "english by default", args: []string{"translate", "saveChanges"}, want: "Save Changes\n"},
		{name: "turkish", args: []string{"translate", "saveChanges", "--locale", "tr"}, want: "Değişiklikleri Kaydet\n"},
		{name: "region and encoding are dropped", args: []string{"translate", "saveChanges", "--locale", "tr_TR.UTF-8"}, want: "Değişiklikleri Kaydet\n"},
		{name: "unconfigured locale falls back", args: []string{"translate", "saveChanges", "--locale", "fr"}, want: "Save Changes\n"},
		{name: "unknown key unchanged", args: []string{"translate", "noSuchKey"}, want: "noSuchKey\n"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			isolateEnv(t)

			output, _, err := executeCommand(t, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, output)
		})
	}
}

func TestTranslateCommandDetectsLocale(t *testing.T) {
	isolateEnv(t)
	t.Setenv("LANG", "tr_TR.UTF-8")

	output, _, err := executeCommand(t, "translate", "dangerButton")
	require.NoError(t, err)
	require.Equal(t, "Tehlike\n", output)
}

func TestTranslateCommandRequiresKey(t *testing.T) {
	isolateEnv(t)

	_, _, err := executeCommand(t, "translate")
	require.Error(t, err)
}

func TestTranslateCommandRejectsBadSettings(t *testing.T) {
	isolateEnv(t)

	_, _, err := executeCommand(t, "translate", "saveChanges", "--theme", "neon")
	require.Error(t, err)
	require.Contains(t, err.Error(), "loading settings")
}
