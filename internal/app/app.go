package app

import (
	"fmt"
	"log"
	"sync"

	"snake/internal/session"
	"snake/internal/storage"
)

// App is the one context object of the process. It owns the session and
// serialises every access to it, so the frame loop and a signal handler
// can both reach it safely.
type App struct {
	cfg     Config
	store   *storage.FileStore
	machine *session.StateMachine

	mu       sync.Mutex
	stopOnce sync.Once
}

func NewApp(cfg Config, audio session.AudioPlayer) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	store := storage.NewFileStore(cfg.HighScorePath)

	machine, err := session.NewStateMachine(session.Config{
		Game:  cfg.Game,
		Store: store,
		Audio: audio,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create state machine: %w", err)
	}

	log.Printf("App: started, high score %d from %s", machine.HighScore(), store.Path())

	return &App{
		cfg:     cfg,
		store:   store,
		machine: machine,
	}, nil
}

func (a *App) Config() Config {
	return a.cfg
}

// Update handles the inputs received since the last call and advances
// play by one tick. It returns false once the player has quit.
func (a *App) Update(src session.InputSource) bool {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, in := range src.Drain() {
		a.machine.Handle(in)
	}
	a.machine.Step()

	return a.machine.Phase() != session.PhaseQuit
}

func (a *App) Render(r session.Renderer) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.machine.Render(r)
}

func (a *App) TickRate() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.machine.TickRate()
}

func (a *App) Phase() session.Phase {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.machine.Phase()
}

func (a *App) HighScore() int32 {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.machine.HighScore()
}

// Stop persists the high score. Every exit path calls it; only the first
// call does anything.
func (a *App) Stop() {
	a.stopOnce.Do(func() {
		a.mu.Lock()
		defer a.mu.Unlock()
		a.machine.Quit()
		log.Println("App: stopped")
	})
}
