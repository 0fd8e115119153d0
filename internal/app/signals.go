package app

import (
	"context"
	"os"
	"os/signal"
	"syscall"
)

// ExitSignals end the process. SIGHUP arrives when the terminal window
// running the game is closed.
var ExitSignals = []os.Signal{syscall.SIGINT, syscall.SIGTERM, syscall.SIGHUP}

// NotifyExit returns a context that is cancelled when one of ExitSignals
// arrives.
func NotifyExit(parent context.Context) (context.Context, context.CancelFunc) {
	return signal.NotifyContext(parent, ExitSignals...)
}
