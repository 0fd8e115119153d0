package components

import (
	"snake/internal/domain"
	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

type FieldRenderer struct {
	CellSize int
	OffsetX  int
	OffsetY  int
}

func NewFieldRenderer(cellSize int) *FieldRenderer {
	return &FieldRenderer{CellSize: cellSize}
}

// CalculateLayout centres the field in a screen of the given size.
func (fr *FieldRenderer) CalculateLayout(screenWidth, screenHeight int, field domain.Field) {
	fr.OffsetX = max(0, (screenWidth-fr.CellSize*int(field.Width))/2)
	fr.OffsetY = max(0, (screenHeight-fr.CellSize*int(field.Height))/2)
}

func (fr *FieldRenderer) CellOrigin(c domain.Coord) (float64, float64) {
	return float64(fr.OffsetX + int(c.X)*fr.CellSize), float64(fr.OffsetY + int(c.Y)*fr.CellSize)
}

func (fr *FieldRenderer) DrawField(screen *ebiten.Image, field domain.Field) {
	vector.DrawFilledRect(screen,
		float32(fr.OffsetX), float32(fr.OffsetY),
		float32(int(field.Width)*fr.CellSize), float32(int(field.Height)*fr.CellSize),
		types.ColorBackground, false)
}

func (fr *FieldRenderer) DrawSnake(screen *ebiten.Image, body []domain.Coord) {
	size := float32(fr.CellSize)

	for i, cell := range body {
		x, y := fr.CellOrigin(cell)

		cellColor := types.ColorSnake
		if i == 0 {
			cellColor = types.Lighten(types.ColorSnake, 1.4)
		}

		vector.DrawFilledRect(screen, float32(x), float32(y), size, size, cellColor, false)
	}
}

func (fr *FieldRenderer) DrawItem(screen *ebiten.Image, sprite *ebiten.Image, at domain.Coord) {
	x, y := fr.CellOrigin(at)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(x, y)
	screen.DrawImage(sprite, op)
}
