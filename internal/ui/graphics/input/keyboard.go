package input

import (
	"snake/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type binding struct {
	keys  []ebiten.Key
	input session.Input
}

var bindings = []binding{
	{[]ebiten.Key{ebiten.KeyArrowUp, ebiten.KeyW}, session.InputUp},
	{[]ebiten.Key{ebiten.KeyArrowDown, ebiten.KeyS}, session.InputDown},
	{[]ebiten.Key{ebiten.KeyArrowLeft, ebiten.KeyA}, session.InputLeft},
	{[]ebiten.Key{ebiten.KeyArrowRight, ebiten.KeyD}, session.InputRight},
	{[]ebiten.Key{ebiten.KeyEnter, ebiten.KeyNumpadEnter}, session.InputConfirm},
	{[]ebiten.Key{ebiten.KeyEscape}, session.InputQuit},
}

type KeyboardHandler struct{}

func NewKeyboardHandler() *KeyboardHandler {
	return &KeyboardHandler{}
}

// Update returns the inputs whose keys went down since the previous tick,
// in binding-table order. ebiten reports presses per tick without their
// order, so when two direction keys go down in the same tick the one listed
// later in bindings is the one the session keeps.
func (kh *KeyboardHandler) Update() []session.Input {
	var inputs []session.Input
	for _, b := range bindings {
		for _, key := range b.keys {
			if inpututil.IsKeyJustPressed(key) {
				inputs = append(inputs, b.input)
				break
			}
		}
	}
	return inputs
}
