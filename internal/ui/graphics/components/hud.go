package components

import (
	"fmt"

	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
)

// HUD draws the running score and the best score at the top of the screen.
type HUD struct {
	ScoreY     int
	HighScoreY int
}

func NewHUD() *HUD {
	return &HUD{ScoreY: 20, HighScoreY: 50}
}

func (h *HUD) Draw(screen *ebiten.Image, width int, score, highScore int32) {
	fonts := types.GetFonts()
	DrawTextCenter(screen, fmt.Sprintf("Score: %d", score), fonts.Normal, types.ColorText, width/2, h.ScoreY)
	DrawTextCenter(screen, fmt.Sprintf("High Score: %d", highScore), fonts.Normal, types.ColorHighScore, width/2, h.HighScoreY)
}
