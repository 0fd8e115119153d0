package screens

import (
	"fmt"

	"snake/internal/session"
	"snake/internal/ui/graphics/components"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

type GameOverScreen struct {
	ctx types.ScreenContext

	btnAgain *components.Button
}

func NewGameOverScreen(ctx types.ScreenContext) *GameOverScreen {
	return &GameOverScreen{
		ctx:      ctx,
		btnAgain: components.NewButton(200, 40, "Play Again", session.InputConfirm),
	}
}

func (s *GameOverScreen) Update() session.Input {
	w, h := s.ctx.Size()
	s.btnAgain.SetPosition(w/2-100, h-150)
	return s.btnAgain.Update()
}

func (s *GameOverScreen) DrawGameOver(screen *ebiten.Image, score, highScore int32) {
	screen.Fill(types.ColorBlack)

	fonts := types.GetFonts()
	w, h := s.ctx.Size()

	components.DrawTextCenter(screen, "GAME OVER", fonts.Title, types.ColorGameOver, w/2, h/3)
	components.DrawTextCenter(screen, fmt.Sprintf("Your Score: %d", score), fonts.Normal, types.ColorText, w/2, h/2)
	components.DrawTextCenter(screen, fmt.Sprintf("High Score: %d", highScore), fonts.Normal, types.ColorHighScore, w/2, h/2+40)
	components.DrawTextCenter(screen, "Press ENTER to Play Again", fonts.Normal, types.ColorText, w/2, h-80)

	s.btnAgain.Draw(screen)
}

func (s *GameOverScreen) OnEnter() {}

func (s *GameOverScreen) OnExit() {}
