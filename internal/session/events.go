package session

import (
	"snake/internal/domain"
)

type Phase int

const (
	PhaseStart Phase = iota
	PhasePlaying
	PhaseGameOver
	PhaseQuit
)

func (p Phase) String() string {
	switch p {
	case PhaseStart:
		return "start"
	case PhasePlaying:
		return "playing"
	case PhaseGameOver:
		return "game-over"
	case PhaseQuit:
		return "quit"
	}
	return "unknown"
}

// Input is a discrete event from the player.
type Input int

const (
	InputNone Input = iota
	InputUp
	InputDown
	InputLeft
	InputRight
	InputConfirm
	InputQuit
)

// Direction maps a directional input to its heading.
func (in Input) Direction() (domain.Direction, bool) {
	switch in {
	case InputUp:
		return domain.DirectionUp, true
	case InputDown:
		return domain.DirectionDown, true
	case InputLeft:
		return domain.DirectionLeft, true
	case InputRight:
		return domain.DirectionRight, true
	}
	return 0, false
}

type Sound int

const (
	SoundEat Sound = iota
	SoundGameOver
)

func (s Sound) String() string {
	switch s {
	case SoundEat:
		return "eat"
	case SoundGameOver:
		return "gameover"
	}
	return "unknown"
}

// Frame is what a renderer needs to draw one tick of play.
type Frame struct {
	Field     domain.Field
	Snake     []domain.Coord
	Food      domain.Coord
	Bonus     *domain.Coord
	Hazard    *domain.Coord
	Score     int32
	HighScore int32
}
