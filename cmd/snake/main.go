package main

import (
	"context"
	"log"
	"os"

	"snake/internal/app"
	"snake/internal/ui/graphics"
	"snake/internal/ui/graphics/screens"
	"snake/internal/ui/graphics/sound"
)

func main() {
	log.SetFlags(log.Ltime | log.Lshortfile)

	cfg := app.DefaultConfig()

	application, err := app.NewApp(cfg, sound.NewPlayer(cfg.SoundPaths()))
	if err != nil {
		log.Fatalf("Failed to create app: %v", err)
	}

	engine := graphics.NewEngine(application)

	engine.RegisterScreens(
		screens.NewStartScreen(engine),
		screens.NewGameScreen(engine),
		screens.NewGameOverScreen(engine),
	)

	ctx, stop := app.NotifyExit(context.Background())
	defer stop()
	go func() {
		<-ctx.Done()
		log.Println("Shutting down...")
		application.Stop()
		os.Exit(0)
	}()

	if err := engine.Run(); err != nil {
		application.Stop()
		log.Fatalf("UI error: %v", err)
	}

	application.Stop()
}
