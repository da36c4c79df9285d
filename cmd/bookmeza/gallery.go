package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/bookmeza/internal/showcase"
	"github.com/alexisbeaulieu97/bookmeza/internal/tui"
	bookmezaerrors "github.com/alexisbeaulieu97/bookmeza/pkg/errors"
)

// stdoutIsTerminal reports whether the gallery has a screen to mount to.
var stdoutIsTerminal = func() bool {
	return term.IsTerminal(int(os.Stdout.Fd()))
}

func runGallery(cmd *cobra.Command, flags *rootFlags) error {
	if !stdoutIsTerminal() {
		return bookmezaerrors.NewMountError("terminal", errors.New("stdout is not a terminal; use 'bookmeza render' for static output"))
	}

	app, err := newAppContext(cmd, flags, logToFileOnly)
	if err != nil {
		return err
	}
	defer app.Close()

	log := app.Log
	dispatcher := tui.NewDispatcher(tui.DefaultDispatchBuffer, log.WithField("component", "dispatcher"))

	showcases, err := showcase.DefaultGallery(dispatcher.GalleryDeps(log))
	if err != nil {
		log.Error(err, "gallery construction failed")
		return fmt.Errorf("failed to build gallery: %w", err)
	}
	defer showcase.CloseAll(showcases)

	model := tui.NewModel(tui.Options{
		Showcases:     showcases,
		Store:         app.Store,
		Theme:         app.Theme,
		Overrides:     app.Overrides,
		Icons:         app.Icons,
		MarkdownStyle: app.Settings.MarkdownStyle,
		Logger:        log,
	})

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	go dispatcher.Run(ctx, p.Send)

	log.WithField("showcases", len(showcases)).Info("launching gallery")
	final, err := p.Run()
	if err != nil {
		log.Error(err, "gallery execution failed")
		return fmt.Errorf("failed to run gallery: %w", err)
	}

	if m, ok := final.(tui.Model); ok {
		summary := m.Summary()
		log.WithFields(map[string]any{
			"visited":  summary.Visited,
			"clicks":   summary.Clicks,
			"applied":  summary.Applied,
			"rejected": summary.Rejected,
		}).Info("gallery closed")
	}
	return nil
}
