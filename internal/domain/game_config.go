package domain

import (
	"errors"
	"fmt"
)

var ErrInvalidConfig = errors.New("invalid game config")

// GameConfig holds the grid geometry and the scoring rules of a play.
// Window sizes are in pixels; the field is WindowWidth/CellSize cells wide.
type GameConfig struct {
	WindowWidth  int32
	WindowHeight int32
	CellSize     int32

	// BaseTickRate is the tick rate at score 0. The rate grows by one every
	// SpeedupEvery points.
	BaseTickRate int32
	SpeedupEvery int32

	Start          Coord
	StartDirection Direction

	FoodScore   int32
	BonusScore  int32
	BonusEvery  int32
	HazardEvery int32
}

func DefaultGameConfig() *GameConfig {
	return &GameConfig{
		WindowWidth:    800,
		WindowHeight:   600,
		CellSize:       20,
		BaseTickRate:   12,
		SpeedupEvery:   5,
		Start:          Coord{X: 5, Y: 5},
		StartDirection: DirectionRight,
		FoodScore:      1,
		BonusScore:     5,
		BonusEvery:     5,
		HazardEvery:    4,
	}
}

func (c *GameConfig) Validate() error {
	if c.CellSize <= 0 {
		return fmt.Errorf("%w: cell size %d", ErrInvalidConfig, c.CellSize)
	}
	if c.WindowWidth < c.CellSize || c.WindowHeight < c.CellSize {
		return fmt.Errorf("%w: window %dx%d smaller than one cell", ErrInvalidConfig, c.WindowWidth, c.WindowHeight)
	}
	if c.Field().Cells() < 2 {
		return fmt.Errorf("%w: field needs room for the snake and food", ErrInvalidConfig)
	}
	if c.BaseTickRate < 1 || c.BaseTickRate > 240 {
		return fmt.Errorf("%w: base tick rate %d", ErrInvalidConfig, c.BaseTickRate)
	}
	if c.SpeedupEvery < 1 || c.BonusEvery < 1 || c.HazardEvery < 1 {
		return fmt.Errorf("%w: thresholds must be positive", ErrInvalidConfig)
	}
	if c.FoodScore < 1 || c.BonusScore < 1 {
		return fmt.Errorf("%w: item scores must be positive", ErrInvalidConfig)
	}
	if !c.Field().InBounds(c.Start) {
		return fmt.Errorf("%w: start cell (%d,%d) outside the field", ErrInvalidConfig, c.Start.X, c.Start.Y)
	}
	if !c.StartDirection.IsValid() {
		return fmt.Errorf("%w: start direction %d", ErrInvalidConfig, c.StartDirection)
	}
	return nil
}

func (c *GameConfig) Copy() *GameConfig {
	cp := *c
	return &cp
}

func (c *GameConfig) Field() *Field {
	return NewField(c.WindowWidth/c.CellSize, c.WindowHeight/c.CellSize)
}

// TickRate is the number of ticks per second at the given score.
func (c *GameConfig) TickRate(score int32) int {
	return int(c.BaseTickRate + score/c.SpeedupEvery)
}
