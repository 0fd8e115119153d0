package terminal

import (
	"context"
	"time"

	"snake/internal/app"
	"snake/internal/session"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"
)

// Runner drives the session on a tcell screen. Events are pumped on their
// own goroutine; only the frame loop touches the session.
type Runner struct {
	app      *app.App
	screen   tcell.Screen
	renderer *Renderer

	events chan tcell.Event
	queue  []session.Input
}

func NewRunner(application *app.App, screen tcell.Screen) *Runner {
	return &Runner{
		app:      application,
		screen:   screen,
		renderer: NewRenderer(screen),
		events:   make(chan tcell.Event, 100),
	}
}

// Run blocks until the player quits or ctx is cancelled.
func (r *Runner) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)
	quit := make(chan struct{})

	g.Go(func() error {
		r.screen.ChannelEvents(r.events, quit)
		return nil
	})
	g.Go(func() error {
		defer close(quit)
		return r.loop(ctx)
	})

	return g.Wait()
}

// Drain implements session.InputSource.
func (r *Runner) Drain() []session.Input {
	inputs := r.queue
	r.queue = nil
	return inputs
}

func (r *Runner) loop(ctx context.Context) error {
	timer := time.NewTimer(tickInterval(r.app.TickRate()))
	defer timer.Stop()

	r.draw()

	for {
		select {
		case <-ctx.Done():
			return nil

		case ev, ok := <-r.events:
			if !ok {
				return nil
			}
			r.handleEvent(ev)

		case <-timer.C:
			if !r.app.Update(r) {
				return nil
			}
			r.draw()
			timer.Reset(tickInterval(r.app.TickRate()))
		}
	}
}

func (r *Runner) handleEvent(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		if in := KeyToInput(ev.Key(), ev.Rune()); in != session.InputNone {
			r.queue = append(r.queue, in)
		}
	case *tcell.EventResize:
		r.screen.Sync()
		r.draw()
	}
}

func (r *Runner) draw() {
	r.app.Render(r.renderer)
	r.screen.Show()
}

func tickInterval(rate int) time.Duration {
	if rate < 1 {
		rate = 1
	}
	return time.Second / time.Duration(rate)
}
