package screens

import (
	"fmt"

	"snake/internal/session"
	"snake/internal/ui/graphics/components"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

type StartScreen struct {
	ctx types.ScreenContext

	btnPlay *components.Button
	btnQuit *components.Button
}

func NewStartScreen(ctx types.ScreenContext) *StartScreen {
	return &StartScreen{
		ctx:     ctx,
		btnPlay: components.NewButton(200, 40, "Play", session.InputConfirm),
		btnQuit: components.NewButton(200, 40, "Quit", session.InputQuit),
	}
}

func (s *StartScreen) Update() session.Input {
	w, h := s.ctx.Size()
	s.btnPlay.SetPosition(w/2-100, h/2+90)
	s.btnQuit.SetPosition(w/2-100, h/2+140)

	if in := s.btnPlay.Update(); in != session.InputNone {
		return in
	}
	return s.btnQuit.Update()
}

func (s *StartScreen) DrawStart(screen *ebiten.Image, highScore int32) {
	screen.Fill(types.ColorBlack)

	fonts := types.GetFonts()
	w, h := s.ctx.Size()

	components.DrawTextCenter(screen, "SNAKE: Advanced Edition", fonts.Title, types.ColorTitle, w/2, h/3)
	components.DrawTextCenter(screen, "Press ENTER to Play", fonts.Normal, types.ColorText, w/2, h/2)
	components.DrawTextCenter(screen, "Press ESC to Quit", fonts.Normal, types.ColorTextDim, w/2, h/2+40)

	if highScore > 0 {
		components.DrawTextCenter(screen, fmt.Sprintf("Best: %d", highScore), fonts.Small, types.ColorHighScore, w/2, h-30)
	}

	s.btnPlay.Draw(screen)
	s.btnQuit.Draw(screen)
}

func (s *StartScreen) OnEnter() {}

func (s *StartScreen) OnExit() {}
