package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newTranslateCmd(rootFlags *rootFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "translate <key>",
		Short: "Resolve a translation key in the active locale",
		Long: `Resolve a translation key. Keys missing from the active locale fall back to
English; unknown keys are printed unchanged.`,
		Example: "  bookmeza translate saveChanges --locale tr",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := newAppContext(cmd, rootFlags, logToStderr)
			if err != nil {
				return newCommandError("translate", "loading settings", err, "Check your config files and flags.")
			}
			defer app.Close()

			fmt.Fprintln(cmd.OutOrStdout(), app.Store.Translate(args[0]))
			return nil
		},
	}

	return cmd
}
