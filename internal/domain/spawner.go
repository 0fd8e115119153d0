package domain

import (
	"math/rand"
)

const spawnAttempts = 100

// Spawner picks free cells for items.
type Spawner interface {
	// Spawn returns a cell of the field that is not in excluded. It
	// reports false only when every cell is excluded.
	Spawn(field *Field, excluded map[Coord]bool) (Coord, bool)
}

// RandomSpawner draws free cells uniformly at random.
type RandomSpawner struct {
	rng *rand.Rand
}

func NewRandomSpawner(seed int64) *RandomSpawner {
	return &RandomSpawner{rng: rand.New(rand.NewSource(seed))}
}

func (rs *RandomSpawner) Spawn(field *Field, excluded map[Coord]bool) (Coord, bool) {
	for attempts := 0; attempts < spawnAttempts; attempts++ {
		pos := Coord{
			X: rs.rng.Int31n(field.Width),
			Y: rs.rng.Int31n(field.Height),
		}
		if !excluded[pos] {
			return pos, true
		}
	}

	// Crowded field: pick among the remaining cells directly.
	free := make([]Coord, 0, max(0, field.Cells()-len(excluded)))
	for y := int32(0); y < field.Height; y++ {
		for x := int32(0); x < field.Width; x++ {
			pos := Coord{x, y}
			if !excluded[pos] {
				free = append(free, pos)
			}
		}
	}
	if len(free) == 0 {
		return Coord{}, false
	}
	return free[rs.rng.Intn(len(free))], true
}
