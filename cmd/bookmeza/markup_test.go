package main

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMarkupCommand(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{
			name: "sorted props",
			args: []string{"markup", "--props", `{"variant": "danger", "isLoading": true}`},
			want: "<Button\n  isLoading={true}\n  variant={\"danger\"}\n/>\n",
		},
		{
			name: "defaults to an empty tag",
			args: []string{"markup"},
			want: "<Button />\n",
		},
		{
			name: "fixed props shown verbatim",
			args: []string{"markup", "--name", "IconButton", "--props", `{"size": "small"}`, "--fixed", "onClick=handleClick"},
			want: "<IconButton\n  onClick={handleClick}\n  size={\"small\"}\n/>\n",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			output, _, err := executeCommand(t, tc.args...)
			require.NoError(t, err)
			require.Equal(t, tc.want, output)
		})
	}
}

func TestMarkupCommandRejectsInvalidProps(t *testing.T) {
	_, _, err := executeCommand(t, "markup", "--props", `{size: small}`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "parsing --props")
	require.Contains(t, err.Error(), "editable props:1:2")

	_, _, err = executeCommand(t, "markup", "--props", `["a"]`)
	require.Error(t, err)
	require.Contains(t, err.Error(), "props must be a JSON object")
}

func TestMarkupCommandRequiresName(t *testing.T) {
	_, _, err := executeCommand(t, "markup", "--name", " ")
	require.Error(t, err)
	require.Contains(t, err.Error(), "name cannot be empty")
}
