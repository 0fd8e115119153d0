package domain

// Field is the playing grid. Cells outside it are walls.
type Field struct {
	Width  int32
	Height int32
}

func NewField(width, height int32) *Field {
	return &Field{
		Width:  width,
		Height: height,
	}
}

func (f *Field) InBounds(c Coord) bool {
	return c.X >= 0 && c.X < f.Width && c.Y >= 0 && c.Y < f.Height
}

// Move returns the neighbour of c in direction d. The result may lie
// outside the field.
func (f *Field) Move(c Coord, d Direction) Coord {
	return c.Add(d.Delta())
}

func (f *Field) Cells() int {
	return int(f.Width) * int(f.Height)
}
