package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/bookmeza/internal/components"
	"github.com/alexisbeaulieu97/bookmeza/internal/showcase"
)

type renderOptions struct {
	code   bool
	filter string
}

func newRenderCmd(rootFlags *rootFlags) *cobra.Command {
	opts := &renderOptions{}

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the component gallery without the interactive UI",
		Long: `Render every showcase once and print it to stdout. No terminal is required,
so the output can be piped or captured.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, rootFlags, opts)
		},
	}

	cmd.Flags().BoolVar(&opts.code, "code", false, "Include the generated markup under each showcase")
	cmd.Flags().StringVar(&opts.filter, "filter", "", "Only render showcases whose title contains this text (case-insensitive)")

	return cmd
}

func runRender(cmd *cobra.Command, rootFlags *rootFlags, opts *renderOptions) error {
	app, err := newAppContext(cmd, rootFlags, logToStderr)
	if err != nil {
		return newCommandError("render", "loading settings", err, "Check your config files and flags.")
	}
	defer app.Close()

	showcases, err := showcase.DefaultGallery(showcase.GalleryDeps{Logger: app.Log})
	if err != nil {
		return newCommandError("render", "building the gallery", err, "Run with --log-level debug for details.")
	}
	defer showcase.CloseAll(showcases)

	ctx := app.RenderContext()
	filter := strings.ToLower(strings.TrimSpace(opts.filter))

	rendered := 0
	out := cmd.OutOrStdout()
	for _, sc := range showcases {
		if filter != "" && !strings.Contains(strings.ToLower(sc.Title()), filter) {
			continue
		}
		if rendered > 0 {
			fmt.Fprintln(out)
		}
		fmt.Fprintln(out, renderShowcase(sc, ctx, opts.code))
		rendered++
	}

	if rendered == 0 {
		return newCommandError("render", fmt.Sprintf("filtering by %q", opts.filter), errors.New("no showcase matched"), "Run 'bookmeza render' without --filter to list every title.")
	}
	app.Log.WithField("showcases", rendered).Debug("gallery rendered")
	return nil
}

func renderShowcase(sc *showcase.Showcase, ctx components.RenderContext, withCode bool) string {
	body := sc.Render(ctx)
	if err := sc.RenderError(); err != nil {
		body += "\n" + components.ErrorAlert("Render error", err.Error()).View(ctx)
	}

	data := components.CardData{
		Title:       sc.Title(),
		Description: sc.Notes(),
		Body:        body,
	}
	if withCode {
		data.Footer = sc.Markup()
	}
	return components.NewCard(data).View(ctx)
}
