package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"

	tea "github.com/charmbracelet/bubbletea"

	"booq/internal/adapters/booklooker"
	"booq/internal/adapters/browser"
	"booq/internal/adapters/filesystem"
	"booq/internal/adapters/tui"
	"booq/internal/adapters/tui/views"
	"booq/internal/adapters/wordpress"
	"booq/internal/application"
	"booq/internal/application/commands"
	"booq/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	configFile := flag.String("config", "", "config file")
	galleryPath := flag.String("gallery", "", "folder with the image export")
	outputPath := flag.String("output", "", "folder for index.html and images/")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		return err
	}
	cfg.ApplyFlags(*galleryPath, *outputPath)
	if err := cfg.Validate(); err != nil {
		return err
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// The TUI owns the screen, so progress goes to the activity log
	log := views.NewActivityLog(100)
	for _, w := range cfg.Warnings() {
		log.Warn("%s", w)
	}

	sync := commands.NewSyncCommand(
		booklooker.NewClient(booklooker.DefaultBaseURL),
		wordpress.NewEnricher(),
		filesystem.NewImageStore(cfg.OutputPath),
		filesystem.NewOutputTree(),
		log,
		cfg.ToSyncOptions(),
	)

	app := tui.NewApp(ctx, sync, log, browser.NewOpener())
	p := tea.NewProgram(app, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		return err
	}

	switch {
	case app.Result() != nil:
		fmt.Printf("Published %s\n", app.Result().Publish.IndexPath)
	case app.Aborted():
		fmt.Println("Aborted, nothing changed.")
		return nil
	}
	if ctx.Err() != nil {
		return fmt.Errorf("%w: interrupted", application.ErrAborted)
	}
	return nil
}
