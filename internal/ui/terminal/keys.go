package terminal

import (
	"snake/internal/session"

	"github.com/gdamore/tcell/v2"
)

// KeyToInput maps a key press to a session input. ch is only consulted
// for tcell.KeyRune.
func KeyToInput(key tcell.Key, ch rune) session.Input {
	switch key {
	case tcell.KeyUp:
		return session.InputUp
	case tcell.KeyDown:
		return session.InputDown
	case tcell.KeyLeft:
		return session.InputLeft
	case tcell.KeyRight:
		return session.InputRight
	case tcell.KeyEnter:
		return session.InputConfirm
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return session.InputQuit
	case tcell.KeyRune:
		switch ch {
		case 'w', 'k':
			return session.InputUp
		case 's', 'j':
			return session.InputDown
		case 'a', 'h':
			return session.InputLeft
		case 'd', 'l':
			return session.InputRight
		case ' ':
			return session.InputConfirm
		case 'q':
			return session.InputQuit
		}
	}
	return session.InputNone
}
