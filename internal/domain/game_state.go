package domain

import (
	"errors"
	"fmt"
)

var ErrNoFreeCell = errors.New("no free cell on the field")

// GameState is everything that belongs to a single play: it is created
// fresh on every start and thrown away on game over.
type GameState struct {
	TickCount int32
	Field     *Field
	Config    *GameConfig
	Snake     *Snake
	Food      Coord
	Bonus     *Coord
	Hazard    *Coord
	Score     int32

	spawner Spawner
}

func NewGameState(config *GameConfig, spawner Spawner) (*GameState, error) {
	gs := &GameState{
		Field:   config.Field(),
		Config:  config.Copy(),
		Snake:   NewSnake(config.Start, config.StartDirection),
		spawner: spawner,
	}

	food, ok := gs.spawnExcluding()
	if !ok {
		return nil, fmt.Errorf("spawn food on %dx%d field: %w", gs.Field.Width, gs.Field.Height, ErrNoFreeCell)
	}
	gs.Food = food

	return gs, nil
}

// Copy returns a snapshot that shares nothing mutable with gs.
func (gs *GameState) Copy() *GameState {
	newState := &GameState{
		TickCount: gs.TickCount,
		Field:     NewField(gs.Field.Width, gs.Field.Height),
		Config:    gs.Config.Copy(),
		Snake:     gs.Snake.Copy(),
		Food:      gs.Food,
		Bonus:     copyCoord(gs.Bonus),
		Hazard:    copyCoord(gs.Hazard),
		Score:     gs.Score,
		spawner:   gs.spawner,
	}
	return newState
}

func (gs *GameState) TickRate() int {
	return gs.Config.TickRate(gs.Score)
}

// OccupiedCells returns the snake body plus the given items.
func (gs *GameState) OccupiedCells(items ...*Coord) map[Coord]bool {
	occupied := make(map[Coord]bool, gs.Snake.Len()+len(items))
	for _, cell := range gs.Snake.Points {
		occupied[cell] = true
	}
	for _, item := range items {
		if item != nil {
			occupied[*item] = true
		}
	}
	return occupied
}

func (gs *GameState) spawnExcluding(items ...*Coord) (Coord, bool) {
	return gs.spawner.Spawn(gs.Field, gs.OccupiedCells(items...))
}

func copyCoord(c *Coord) *Coord {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}
