package components

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// DrawTextCenter draws str so that its bounding box is centred on (cx, cy).
func DrawTextCenter(dst *ebiten.Image, str string, face font.Face, clr color.Color, cx, cy int) {
	bounds := text.BoundString(face, str)
	x := cx - bounds.Dx()/2 - bounds.Min.X
	y := cy - bounds.Dy()/2 - bounds.Min.Y
	text.Draw(dst, str, face, x, y, clr)
}
