package input

import (
	"testing"

	"snake/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestBindingsCoverEveryInputOnce(t *testing.T) {
	seen := make(map[session.Input]int)
	keys := make(map[ebiten.Key]session.Input)
	for _, b := range bindings {
		seen[b.input]++
		for _, k := range b.keys {
			if prev, ok := keys[k]; ok {
				t.Errorf("key %v bound to both %v and %v", k, prev, b.input)
			}
			keys[k] = b.input
		}
	}

	for _, in := range []session.Input{
		session.InputUp, session.InputDown, session.InputLeft, session.InputRight,
		session.InputConfirm, session.InputQuit,
	} {
		if seen[in] != 1 {
			t.Errorf("%v bound %d times, want 1", in, seen[in])
		}
	}
}

