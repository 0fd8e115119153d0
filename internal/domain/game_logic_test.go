package domain

import (
	"testing"
)

// scriptedSpawner hands out queued cells and records what each call had
// to avoid. It falls back to random placement once the queue is empty.
type scriptedSpawner struct {
	queue    []Coord
	excluded []map[Coord]bool
	fallback *RandomSpawner
}

func newScriptedSpawner(cells ...Coord) *scriptedSpawner {
	return &scriptedSpawner{queue: cells, fallback: NewRandomSpawner(42)}
}

func (s *scriptedSpawner) Spawn(field *Field, excluded map[Coord]bool) (Coord, bool) {
	s.excluded = append(s.excluded, excluded)
	if len(s.queue) == 0 {
		return s.fallback.Spawn(field, excluded)
	}
	next := s.queue[0]
	s.queue = s.queue[1:]
	return next, true
}

func newTestState(t *testing.T, spawner Spawner) *GameState {
	t.Helper()
	gs, err := NewGameState(DefaultGameConfig(), spawner)
	if err != nil {
		t.Fatalf("NewGameState: %v", err)
	}
	return gs
}

func TestNewGameStateInitialSession(t *testing.T) {
	gs := newTestState(t, NewRandomSpawner(1))

	if gs.Snake.Len() != 1 || gs.Snake.Head() != (Coord{5, 5}) {
		t.Errorf("snake = %v, want [(5,5)]", gs.Snake.Points)
	}
	if gs.Snake.HeadDirection != DirectionRight {
		t.Errorf("heading = %v, want right", gs.Snake.HeadDirection)
	}
	if gs.Score != 0 || gs.Bonus != nil || gs.Hazard != nil {
		t.Errorf("unexpected initial items: score=%d bonus=%v hazard=%v", gs.Score, gs.Bonus, gs.Hazard)
	}
	if gs.Snake.Contains(gs.Food) || !gs.Field.InBounds(gs.Food) {
		t.Errorf("food spawned at invalid cell %+v", gs.Food)
	}
	if gs.Field.Width != 40 || gs.Field.Height != 30 {
		t.Errorf("field = %dx%d, want 40x30", gs.Field.Width, gs.Field.Height)
	}
}

func TestTickEatsFood(t *testing.T) {
	gs := newTestState(t, NewRandomSpawner(2))
	gs.Food = Coord{6, 5}

	result := gs.Tick(0)

	if result.Terminal || result.Move != MoveGrow || !result.Ate {
		t.Fatalf("unexpected result %+v", result)
	}
	if gs.Snake.Len() != 2 || gs.Snake.Head() != (Coord{6, 5}) {
		t.Errorf("snake = %v, want head (6,5) with length 2", gs.Snake.Points)
	}
	if gs.Score != 1 || result.ScoreDelta != 1 {
		t.Errorf("score = %d (delta %d), want 1", gs.Score, result.ScoreDelta)
	}
	if gs.Food == (Coord{6, 5}) || gs.Snake.Contains(gs.Food) {
		t.Errorf("food was not relocated off the snake: %+v", gs.Food)
	}
}

func TestTickNormalMoveKeepsLength(t *testing.T) {
	gs := newTestState(t, NewRandomSpawner(3))
	gs.Food = Coord{30, 20}
	gs.Snake.Points = []Coord{{5, 5}, {4, 5}, {3, 5}}

	result := gs.Tick(DirectionDown)

	if result.Move != MoveNormal || result.Ate {
		t.Fatalf("unexpected result %+v", result)
	}
	want := []Coord{{5, 6}, {5, 5}, {4, 5}}
	if gs.Snake.Len() != len(want) {
		t.Fatalf("len = %d, want %d", gs.Snake.Len(), len(want))
	}
	for i, c := range want {
		if gs.Snake.Points[i] != c {
			t.Errorf("Points[%d] = %+v, want %+v", i, gs.Snake.Points[i], c)
		}
	}
}

func TestTickIgnoresReversal(t *testing.T) {
	gs := newTestState(t, NewRandomSpawner(4))
	gs.Food = Coord{30, 20}

	gs.Tick(DirectionLeft)

	if gs.Snake.HeadDirection != DirectionRight {
		t.Errorf("heading = %v, want right", gs.Snake.HeadDirection)
	}
	if gs.Snake.Head() != (Coord{6, 5}) {
		t.Errorf("head = %+v, want (6,5)", gs.Snake.Head())
	}
}

func TestTickDeath(t *testing.T) {
	tests := []struct {
		name   string
		points []Coord
		dir    Direction
		hazard *Coord
		cause  DeathCause
	}{
		{
			name:   "left wall",
			points: []Coord{{0, 5}},
			dir:    DirectionLeft,
			cause:  CauseWall,
		},
		{
			name:   "bottom wall",
			points: []Coord{{10, 29}},
			dir:    DirectionDown,
			cause:  CauseWall,
		},
		{
			name:   "own body",
			points: []Coord{{5, 5}, {5, 6}, {6, 6}, {6, 5}, {7, 5}},
			dir:    DirectionRight,
			cause:  CauseSelf,
		},
		{
			name:   "hazard",
			points: []Coord{{5, 5}},
			dir:    DirectionUp,
			hazard: &Coord{5, 4},
			cause:  CauseHazard,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gs := newTestState(t, NewRandomSpawner(5))
			gs.Food = Coord{30, 20}
			gs.Score = 3
			gs.Hazard = tt.hazard
			gs.Snake.Points = append([]Coord(nil), tt.points...)
			gs.Snake.HeadDirection = tt.dir
			before := gs.Snake.Copy()

			result := gs.Tick(0)

			if !result.Terminal || result.Move != MoveDeath || result.Cause != tt.cause {
				t.Fatalf("result = %+v, want terminal %v", result, tt.cause)
			}
			if result.Score != 3 {
				t.Errorf("terminal score = %d, want 3", result.Score)
			}
			if gs.Snake.Len() != before.Len() {
				t.Fatalf("snake length changed from %d to %d", before.Len(), gs.Snake.Len())
			}
			for i := range before.Points {
				if gs.Snake.Points[i] != before.Points[i] {
					t.Errorf("snake mutated at %d: %+v -> %+v", i, before.Points[i], gs.Snake.Points[i])
				}
			}
		})
	}
}

func TestTickMovingIntoVacatedTailIsFatal(t *testing.T) {
	gs := newTestState(t, NewRandomSpawner(6))
	gs.Food = Coord{30, 20}
	gs.Snake.Points = []Coord{{5, 5}, {5, 6}, {6, 6}, {6, 5}}
	gs.Snake.HeadDirection = DirectionRight

	result := gs.Tick(0)

	if !result.Terminal || result.Cause != CauseSelf {
		t.Errorf("result = %+v, want self-collision against the pre-move body", result)
	}
}

func TestTickSpawnsBonusAtThreshold(t *testing.T) {
	spawner := newScriptedSpawner(Coord{20, 20}, Coord{21, 21}, Coord{22, 22})
	gs := newTestState(t, spawner)
	gs.Food = Coord{6, 5}
	gs.Score = 4
	hazard := Coord{9, 9}
	gs.Hazard = &hazard

	result := gs.Tick(0)

	if gs.Score != 5 || result.Terminal {
		t.Fatalf("score = %d, result = %+v", gs.Score, result)
	}
	if gs.Bonus == nil {
		t.Fatal("bonus was not spawned at score 5")
	}
	if *gs.Bonus == gs.Food || *gs.Bonus == hazard || gs.Snake.Contains(*gs.Bonus) {
		t.Errorf("bonus %+v overlaps another item or the snake", *gs.Bonus)
	}

	// calls: initial food, respawned food, bonus
	if len(spawner.excluded) != 3 {
		t.Fatalf("spawn calls = %d, want 3", len(spawner.excluded))
	}
	foodExcl := spawner.excluded[1]
	if !foodExcl[Coord{6, 5}] || !foodExcl[hazard] {
		t.Errorf("food respawn did not exclude snake and hazard: %v", foodExcl)
	}
	bonusExcl := spawner.excluded[2]
	if !bonusExcl[gs.Food] || !bonusExcl[hazard] || !bonusExcl[Coord{6, 5}] {
		t.Errorf("bonus spawn did not exclude snake, food and hazard: %v", bonusExcl)
	}
}

func TestTickSpawnsHazardAtThreshold(t *testing.T) {
	gs := newTestState(t, NewRandomSpawner(8))
	gs.Food = Coord{6, 5}
	gs.Score = 3

	gs.Tick(0)

	if gs.Hazard == nil {
		t.Fatal("hazard was not spawned at score 4")
	}
	if gs.Bonus != nil {
		t.Errorf("bonus spawned at score 4")
	}
	if *gs.Hazard == gs.Food || gs.Snake.Contains(*gs.Hazard) {
		t.Errorf("hazard %+v overlaps food or snake", *gs.Hazard)
	}
}

func TestTickNeverSpawnsSecondItem(t *testing.T) {
	gs := newTestState(t, NewRandomSpawner(9))
	gs.Food = Coord{6, 5}
	gs.Score = 19
	bonus := Coord{1, 1}
	hazard := Coord{2, 2}
	gs.Bonus = &bonus
	gs.Hazard = &hazard

	gs.Tick(0)

	if gs.Score != 20 {
		t.Fatalf("score = %d, want 20", gs.Score)
	}
	if gs.Bonus == nil || *gs.Bonus != bonus {
		t.Errorf("bonus replaced: %v", gs.Bonus)
	}
	if gs.Hazard == nil || *gs.Hazard != hazard {
		t.Errorf("hazard replaced: %v", gs.Hazard)
	}
}

func TestTickEatsBonus(t *testing.T) {
	gs := newTestState(t, NewRandomSpawner(10))
	gs.Food = Coord{30, 20}
	gs.Score = 5
	bonus := Coord{6, 5}
	gs.Bonus = &bonus

	result := gs.Tick(0)

	if result.Move != MoveBonus || !result.Ate || result.ScoreDelta != 5 {
		t.Fatalf("unexpected result %+v", result)
	}
	if gs.Score != 10 {
		t.Errorf("score = %d, want 10", gs.Score)
	}
	if gs.Bonus != nil {
		t.Errorf("bonus not cleared")
	}
	if gs.Snake.Len() != 2 {
		t.Errorf("len = %d, want 2", gs.Snake.Len())
	}
	if gs.Food != (Coord{30, 20}) {
		t.Errorf("food moved on bonus consumption")
	}
}

func TestTickFoodTakesPrecedenceOverBonus(t *testing.T) {
	gs := newTestState(t, NewRandomSpawner(12))
	gs.Food = Coord{6, 5}
	bonus := Coord{6, 5}
	gs.Bonus = &bonus

	result := gs.Tick(0)

	if result.Move != MoveGrow || gs.Score != 1 {
		t.Errorf("result = %+v score = %d, want food consumption", result, gs.Score)
	}
	if gs.Bonus == nil {
		t.Error("bonus was consumed together with food")
	}
}

func TestTickBoardFull(t *testing.T) {
	cfg := DefaultGameConfig()
	cfg.WindowWidth = 40
	cfg.WindowHeight = 20
	cfg.Start = Coord{0, 0}

	gs, err := NewGameState(cfg, NewRandomSpawner(13))
	if err != nil {
		t.Fatalf("NewGameState: %v", err)
	}
	if gs.Food != (Coord{1, 0}) {
		t.Fatalf("food = %+v, want the only free cell", gs.Food)
	}

	result := gs.Tick(0)

	if !result.Terminal || result.Cause != CauseBoardFull {
		t.Errorf("result = %+v, want board-full terminal", result)
	}
	if gs.Score != 1 {
		t.Errorf("score = %d, want 1", gs.Score)
	}
}

func TestGameConfigTickRate(t *testing.T) {
	cfg := DefaultGameConfig()
	tests := []struct {
		score int32
		want  int
	}{
		{0, 12},
		{4, 12},
		{5, 13},
		{14, 14},
		{50, 22},
	}
	for _, tt := range tests {
		if got := cfg.TickRate(tt.score); got != tt.want {
			t.Errorf("TickRate(%d) = %d, want %d", tt.score, got, tt.want)
		}
	}
}

func TestGameConfigValidate(t *testing.T) {
	if err := DefaultGameConfig().Validate(); err != nil {
		t.Fatalf("default config invalid: %v", err)
	}

	bad := DefaultGameConfig()
	bad.Start = Coord{40, 0}
	if err := bad.Validate(); err == nil {
		t.Error("start outside the field should be rejected")
	}

	bad = DefaultGameConfig()
	bad.CellSize = 0
	if err := bad.Validate(); err == nil {
		t.Error("zero cell size should be rejected")
	}
}
