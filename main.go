package main

import (
	"errors"
	"fmt"
	"os"

	"shree/cmd"
	"shree/internal/content"
	"shree/internal/logging"
	"shree/internal/media"
	"shree/internal/ui"

	tea "github.com/charmbracelet/bubbletea"
)

// version is set at build time via -ldflags
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Parse CLI flags
	config, err := cmd.ParseFlags(version)
	if errors.Is(err, cmd.ErrVersionRequested) {
		return nil
	}
	if err != nil {
		return err
	}

	closeLog, err := logging.Init(config.LogFile, config.LogLevel)
	if err != nil {
		return fmt.Errorf("failed to open log file: %w", err)
	}
	defer closeLog()
	logging.Log.WithField("version", version).Info("starting")

	page, err := content.Load(config.ContentPath)
	if err != nil {
		return err
	}

	var art *media.ArtCache
	if config.Images {
		art = media.NewArtCache(media.NewHTTPSource(config.ImageTimeout))
	} else {
		fmt.Fprintln(os.Stderr, "ℹ  Gallery photos disabled, showing titles only")
	}

	m, err := ui.New(page, ui.Options{Art: art, ImageTimeout: config.ImageTimeout})
	if err != nil {
		return err
	}
	defer m.Shutdown()

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if config.Mouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}

	// Create and run Bubble Tea app
	p := tea.NewProgram(m, opts...)
	if _, err := p.Run(); err != nil {
		logging.Log.WithError(err).Error("program exited with error")
		return fmt.Errorf("running app: %w", err)
	}
	logging.Log.Info("exiting")
	return nil
}
