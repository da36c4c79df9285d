package main

import (
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	flags := &rootFlags{}

	cmd := &cobra.Command{
		Use:           "bookmeza",
		Short:         "Bookmeza is a terminal design system with an interactive component gallery",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is provided, launch the gallery
			if len(args) == 0 {
				return runGallery(cmd, flags)
			}
			return cmd.Help()
		},
	}

	flags.register(cmd.PersistentFlags())

	cmd.AddCommand(newRenderCmd(flags))
	cmd.AddCommand(newMarkupCmd())
	cmd.AddCommand(newTranslateCmd(flags))
	cmd.AddCommand(newVersionCmd())

	return cmd
}
