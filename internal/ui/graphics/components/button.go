package components

import (
	"image/color"

	"snake/internal/session"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Button is a clickable label that emits an input when released over it.
type Button struct {
	X, Y          int
	Width, Height int
	Text          string
	Input         session.Input

	hovered bool
	pressed bool
}

func NewButton(width, height int, label string, in session.Input) *Button {
	return &Button{
		Width:  width,
		Height: height,
		Text:   label,
		Input:  in,
	}
}

func (b *Button) Contains(x, y int) bool {
	return x >= b.X && x < b.X+b.Width && y >= b.Y && y < b.Y+b.Height
}

// Update returns the button's input on the frame the mouse is released
// over it, and InputNone otherwise.
func (b *Button) Update() session.Input {
	b.hovered = b.Contains(ebiten.CursorPosition())

	wasPressed := b.pressed
	b.pressed = b.hovered && ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft)

	if wasPressed && !b.pressed && b.hovered {
		return b.Input
	}
	return session.InputNone
}

func (b *Button) Draw(screen *ebiten.Image) {
	var bgColor color.RGBA
	switch {
	case b.pressed:
		bgColor = types.Darken(types.ColorButtonHover, 0.8)
	case b.hovered:
		bgColor = types.ColorButtonHover
	default:
		bgColor = types.ColorButton
	}

	vector.DrawFilledRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		bgColor, false)

	vector.StrokeRect(screen,
		float32(b.X), float32(b.Y),
		float32(b.Width), float32(b.Height),
		1, types.ColorButtonBorder, false)

	DrawTextCenter(screen, b.Text, types.GetFonts().Small, types.ColorButtonText, b.X+b.Width/2, b.Y+b.Height/2)
}

func (b *Button) SetPosition(x, y int) {
	b.X = x
	b.Y = y
}
