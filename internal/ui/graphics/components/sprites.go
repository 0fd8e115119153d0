package components

import (
	"fmt"
	"image/color"
	_ "image/png"
	"log"

	"snake/internal/ui/types"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

type Sprites struct {
	Food   *ebiten.Image
	Bonus  *ebiten.Image
	Hazard *ebiten.Image
}

// LoadSprites loads the item images, scaled to one cell. A missing or
// broken file is replaced by a solid square of the item's colour.
func LoadSprites(foodPath, bonusPath, hazardPath string, cellSize int) *Sprites {
	return &Sprites{
		Food:   spriteOrFill(foodPath, types.ColorFood, cellSize),
		Bonus:  spriteOrFill(bonusPath, types.ColorBonus, cellSize),
		Hazard: spriteOrFill(hazardPath, types.ColorHazard, cellSize),
	}
}

func spriteOrFill(path string, fallback color.Color, cellSize int) *ebiten.Image {
	img, err := loadSprite(path, cellSize)
	if err != nil {
		log.Printf("Sprites: %v, using solid colour", err)
		return solidSprite(fallback, cellSize)
	}
	return img
}

func loadSprite(path string, cellSize int) (*ebiten.Image, error) {
	src, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("load sprite %s: %w", path, err)
	}

	bounds := src.Bounds()
	if bounds.Dx() == 0 || bounds.Dy() == 0 {
		return nil, fmt.Errorf("load sprite %s: empty image", path)
	}

	dst := ebiten.NewImage(cellSize, cellSize)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(cellSize)/float64(bounds.Dx()), float64(cellSize)/float64(bounds.Dy()))
	op.Filter = ebiten.FilterLinear
	dst.DrawImage(src, op)
	return dst, nil
}

func solidSprite(c color.Color, cellSize int) *ebiten.Image {
	img := ebiten.NewImage(cellSize, cellSize)
	img.Fill(c)
	return img
}
