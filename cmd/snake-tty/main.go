package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"

	"snake/internal/app"
	"snake/internal/ui/terminal"

	"github.com/gdamore/tcell/v2"
)

func main() {
	cfg := app.DefaultConfig()

	logFile := setupLog(cfg.LogPath)
	if logFile != nil {
		defer logFile.Close()
	}

	if err := run(cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(cfg app.Config) error {
	player := terminal.NewSoundPlayer(cfg.SoundPaths())
	defer player.Close()

	application, err := app.NewApp(cfg, player)
	if err != nil {
		return fmt.Errorf("failed to create app: %w", err)
	}
	defer application.Stop()

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("failed to init screen: %w", err)
	}
	defer screen.Fini()

	ctx, stop := app.NotifyExit(context.Background())
	defer stop()

	err = terminal.NewRunner(application, screen).Run(ctx)
	// Persist before the deferred Fini, which can stall on a hung-up tty.
	application.Stop()
	return err
}

// setupLog sends the log to a file so it does not draw over the screen.
func setupLog(path string) *os.File {
	log.SetFlags(log.Ltime | log.Lshortfile)

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		log.SetOutput(io.Discard)
		return nil
	}
	log.SetOutput(f)
	return f
}
