package domain

type MoveKind int

const (
	MoveNormal MoveKind = iota
	MoveGrow
	MoveBonus
	MoveDeath
)

type DeathCause int

const (
	CauseNone DeathCause = iota
	CauseSelf
	CauseWall
	CauseHazard
	// CauseBoardFull ends a play whose snake left no room for food.
	CauseBoardFull
)

func (c DeathCause) String() string {
	switch c {
	case CauseSelf:
		return "self-collision"
	case CauseWall:
		return "wall-collision"
	case CauseHazard:
		return "hazard-collision"
	case CauseBoardFull:
		return "board-full"
	}
	return "none"
}

type TickResult struct {
	Move       MoveKind
	Cause      DeathCause
	Terminal   bool
	Ate        bool
	ScoreDelta int32
	Score      int32
}

// Tick advances the play by one step. dir is the buffered input for this
// tick; zero or a reversal of the current heading keeps the heading.
// A terminal result leaves the snake untouched.
func (gs *GameState) Tick(dir Direction) *TickResult {
	gs.TickCount++

	gs.Snake.SetDirection(dir)
	newHead := gs.Field.Move(gs.Snake.Head(), gs.Snake.HeadDirection)

	if cause := gs.collision(newHead); cause != CauseNone {
		return &TickResult{
			Move:     MoveDeath,
			Cause:    cause,
			Terminal: true,
			Score:    gs.Score,
		}
	}

	switch {
	case newHead.Equals(gs.Food):
		return gs.eatFood(newHead)

	case gs.Bonus != nil && newHead.Equals(*gs.Bonus):
		gs.Snake.AdvanceGrow(newHead)
		gs.Score += gs.Config.BonusScore
		gs.Bonus = nil
		return &TickResult{
			Move:       MoveBonus,
			Ate:        true,
			ScoreDelta: gs.Config.BonusScore,
			Score:      gs.Score,
		}

	default:
		gs.Snake.AdvanceShrink(newHead)
		return &TickResult{Move: MoveNormal, Score: gs.Score}
	}
}

func (gs *GameState) collision(newHead Coord) DeathCause {
	if gs.Snake.Contains(newHead) {
		return CauseSelf
	}
	if !gs.Field.InBounds(newHead) {
		return CauseWall
	}
	if gs.Hazard != nil && newHead.Equals(*gs.Hazard) {
		return CauseHazard
	}
	return CauseNone
}

func (gs *GameState) eatFood(newHead Coord) *TickResult {
	gs.Snake.AdvanceGrow(newHead)
	gs.Score += gs.Config.FoodScore

	result := &TickResult{
		Move:       MoveGrow,
		Ate:        true,
		ScoreDelta: gs.Config.FoodScore,
		Score:      gs.Score,
	}

	food, ok := gs.spawnExcluding(gs.Bonus, gs.Hazard)
	if !ok {
		result.Cause = CauseBoardFull
		result.Terminal = true
		return result
	}
	gs.Food = food

	if gs.Score%gs.Config.BonusEvery == 0 && gs.Bonus == nil {
		if bonus, ok := gs.spawnExcluding(&gs.Food, gs.Hazard); ok {
			gs.Bonus = &bonus
		}
	}
	if gs.Score%gs.Config.HazardEvery == 0 && gs.Hazard == nil {
		if hazard, ok := gs.spawnExcluding(&gs.Food, gs.Bonus); ok {
			gs.Hazard = &hazard
		}
	}

	return result
}
