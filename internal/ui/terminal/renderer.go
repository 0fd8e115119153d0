package terminal

import (
	"fmt"

	"snake/internal/domain"
	"snake/internal/session"

	"github.com/gdamore/tcell/v2"
)

const (
	hudRows   = 2
	cellGlyph = '█'
)

var (
	styleBackground = tcell.StyleDefault.Background(tcell.NewRGBColor(10, 10, 30))
	styleBorder     = styleBackground.Foreground(tcell.NewRGBColor(90, 90, 100))
	styleSnake      = styleBackground.Foreground(tcell.NewRGBColor(0, 100, 0))
	styleHead       = styleBackground.Foreground(tcell.NewRGBColor(0, 140, 0))
	styleFood       = styleBackground.Foreground(tcell.NewRGBColor(200, 0, 0))
	styleBonus      = styleBackground.Foreground(tcell.NewRGBColor(255, 215, 0))
	styleHazard     = styleBackground.Foreground(tcell.NewRGBColor(128, 128, 128))
	styleText       = tcell.StyleDefault.Foreground(tcell.ColorWhite)
	styleTitle      = tcell.StyleDefault.Foreground(tcell.NewRGBColor(34, 177, 76)).Bold(true)
	styleGold       = tcell.StyleDefault.Foreground(tcell.NewRGBColor(255, 215, 0))
	styleDim        = tcell.StyleDefault.Foreground(tcell.ColorGray)
	styleGameOver   = tcell.StyleDefault.Foreground(tcell.NewRGBColor(200, 0, 0)).Bold(true)
)

// Renderer draws the session onto a tcell screen. A cell is two columns
// wide when the terminal has room for it, one otherwise.
type Renderer struct {
	screen tcell.Screen
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{screen: screen}
}

func (r *Renderer) DrawStart(highScore int32) {
	r.screen.Clear()
	w, h := r.screen.Size()

	r.centered(h/3, "SNAKE: Advanced Edition", styleTitle, w)
	r.centered(h/2, "Press ENTER to Play", styleText, w)
	r.centered(h/2+2, "Press ESC to Quit", styleDim, w)
	if highScore > 0 {
		r.centered(h-2, fmt.Sprintf("Best: %d", highScore), styleGold, w)
	}
}

func (r *Renderer) DrawFrame(frame session.Frame) {
	r.screen.Clear()
	w, _ := r.screen.Size()

	r.centered(0, fmt.Sprintf("Score: %d", frame.Score), styleText, w)
	r.centered(1, fmt.Sprintf("High Score: %d", frame.HighScore), styleGold, w)

	cellW := r.cellWidth(frame.Field)
	originX := max(1, (w-int(frame.Field.Width)*cellW)/2)
	originY := hudRows + 1

	r.drawBorder(originX-1, originY-1, int(frame.Field.Width)*cellW+1, int(frame.Field.Height)+1)
	for y := 0; y < int(frame.Field.Height); y++ {
		for x := 0; x < int(frame.Field.Width)*cellW; x++ {
			r.screen.SetContent(originX+x, originY+y, ' ', nil, styleBackground)
		}
	}

	put := func(c domain.Coord, style tcell.Style) {
		for i := 0; i < cellW; i++ {
			r.screen.SetContent(originX+int(c.X)*cellW+i, originY+int(c.Y), cellGlyph, nil, style)
		}
	}

	for i := len(frame.Snake) - 1; i >= 0; i-- {
		style := styleSnake
		if i == 0 {
			style = styleHead
		}
		put(frame.Snake[i], style)
	}
	put(frame.Food, styleFood)
	if frame.Bonus != nil {
		put(*frame.Bonus, styleBonus)
	}
	if frame.Hazard != nil {
		put(*frame.Hazard, styleHazard)
	}
}

func (r *Renderer) DrawGameOver(score, highScore int32) {
	r.screen.Clear()
	w, h := r.screen.Size()

	r.centered(h/3, "GAME OVER", styleGameOver, w)
	r.centered(h/2, fmt.Sprintf("Your Score: %d", score), styleText, w)
	r.centered(h/2+2, fmt.Sprintf("High Score: %d", highScore), styleGold, w)
	r.centered(h-4, "Press ENTER to Play Again", styleText, w)
}

func (r *Renderer) cellWidth(field domain.Field) int {
	w, _ := r.screen.Size()
	if w >= 2*int(field.Width)+2 {
		return 2
	}
	return 1
}

func (r *Renderer) drawBorder(x0, y0, x1, y1 int) {
	for x := x0; x <= x0+x1; x++ {
		r.screen.SetContent(x, y0, '─', nil, styleBorder)
		r.screen.SetContent(x, y0+y1, '─', nil, styleBorder)
	}
	for y := y0; y <= y0+y1; y++ {
		r.screen.SetContent(x0, y, '│', nil, styleBorder)
		r.screen.SetContent(x0+x1, y, '│', nil, styleBorder)
	}
	r.screen.SetContent(x0, y0, '┌', nil, styleBorder)
	r.screen.SetContent(x0+x1, y0, '┐', nil, styleBorder)
	r.screen.SetContent(x0, y0+y1, '└', nil, styleBorder)
	r.screen.SetContent(x0+x1, y0+y1, '┘', nil, styleBorder)
}

func (r *Renderer) centered(y int, s string, style tcell.Style, width int) {
	runes := []rune(s)
	x := max(0, (width-len(runes))/2)
	for i, ch := range runes {
		r.screen.SetContent(x+i, y, ch, nil, style)
	}
}
