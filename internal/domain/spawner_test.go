package domain

import (
	"testing"
)

func TestRandomSpawnerAvoidsExcludedCells(t *testing.T) {
	field := NewField(6, 4)
	spawner := NewRandomSpawner(7)

	excluded := make(map[Coord]bool)
	for x := int32(0); x < field.Width; x++ {
		excluded[Coord{x, 0}] = true
		excluded[Coord{x, 1}] = true
	}

	for i := 0; i < 200; i++ {
		pos, ok := spawner.Spawn(field, excluded)
		if !ok {
			t.Fatalf("Spawn reported a full field with %d free cells", field.Cells()-len(excluded))
		}
		if excluded[pos] {
			t.Fatalf("Spawn returned excluded cell %+v", pos)
		}
		if !field.InBounds(pos) {
			t.Fatalf("Spawn returned out-of-bounds cell %+v", pos)
		}
	}
}

func TestRandomSpawnerFindsLastFreeCell(t *testing.T) {
	field := NewField(30, 30)
	spawner := NewRandomSpawner(1)

	last := Coord{17, 29}
	excluded := make(map[Coord]bool)
	for y := int32(0); y < field.Height; y++ {
		for x := int32(0); x < field.Width; x++ {
			if c := (Coord{x, y}); !c.Equals(last) {
				excluded[c] = true
			}
		}
	}

	pos, ok := spawner.Spawn(field, excluded)
	if !ok {
		t.Fatal("Spawn missed the only free cell")
	}
	if pos != last {
		t.Errorf("Spawn = %+v, want %+v", pos, last)
	}
}

func TestRandomSpawnerFullField(t *testing.T) {
	field := NewField(2, 2)
	excluded := map[Coord]bool{{0, 0}: true, {1, 0}: true, {0, 1}: true, {1, 1}: true}

	if _, ok := NewRandomSpawner(3).Spawn(field, excluded); ok {
		t.Error("Spawn on a full field should report false")
	}
}

func TestRandomSpawnerCoversFreeCells(t *testing.T) {
	field := NewField(3, 3)
	spawner := NewRandomSpawner(11)
	excluded := map[Coord]bool{{1, 1}: true}

	seen := make(map[Coord]bool)
	for i := 0; i < 2000; i++ {
		pos, _ := spawner.Spawn(field, excluded)
		seen[pos] = true
	}
	if len(seen) != field.Cells()-1 {
		t.Errorf("saw %d distinct cells, want %d", len(seen), field.Cells()-1)
	}
}
