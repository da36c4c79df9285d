package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bookmeza/internal/showcase"
)

type markupOptions struct {
	name  string
	props string
	fixed map[string]string
}

func newMarkupCmd() *cobra.Command {
	opts := &markupOptions{}

	cmd := &cobra.Command{
		Use:   "markup",
		Short: "Print the markup for a component and a JSON props object",
		Example: `  bookmeza markup --props '{"variant": "danger", "isLoading": true}'
  bookmeza markup --props '{"href": "/docs"}' --fixed onClick=handleClick`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runMarkup(cmd, opts)
		},
	}

	cmd.Flags().StringVar(&opts.name, "name", "Button", "Component name used as the tag")
	cmd.Flags().StringVar(&opts.props, "props", "{}", "Props as a JSON object")
	cmd.Flags().StringToStringVar(&opts.fixed, "fixed", nil, "Fixed props shown verbatim, as name=expression")

	return cmd
}

func runMarkup(cmd *cobra.Command, opts *markupOptions) error {
	name := strings.TrimSpace(opts.name)
	if name == "" {
		return newCommandError("generate markup", "validating component name", fmt.Errorf("name cannot be empty"), "Pass --name with a component name such as Button.")
	}

	props, err := showcase.ParseProps(opts.props)
	if err != nil {
		return newCommandError("generate markup", "parsing --props", err, "Pass a JSON object, for example '{\"variant\": \"primary\"}'.")
	}

	fmt.Fprintln(cmd.OutOrStdout(), showcase.GenerateMarkup(name, props, opts.fixed))
	return nil
}
