package types

import (
	"snake/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

// Screen handles the mouse and keyboard of one phase. Drawing goes
// through the optional drawer interfaces below.
type Screen interface {
	Update() session.Input
	OnEnter()
	OnExit()
}

type StartDrawer interface {
	DrawStart(dst *ebiten.Image, highScore int32)
}

type FrameDrawer interface {
	DrawFrame(dst *ebiten.Image, frame session.Frame)
}

type GameOverDrawer interface {
	DrawGameOver(dst *ebiten.Image, score, highScore int32)
}

type ScreenContext interface {
	Size() (int, int)
	AssetPath(name string) string
	CellSize() int
}
