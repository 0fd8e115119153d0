package domain

// Snake is the player's body, head first. It never validates the cells it
// is advanced onto; GameState.Tick does that before moving it.
type Snake struct {
	Points        []Coord
	HeadDirection Direction
}

func NewSnake(head Coord, direction Direction) *Snake {
	return &Snake{
		Points:        []Coord{head},
		HeadDirection: direction,
	}
}

func (s *Snake) Head() Coord {
	if len(s.Points) == 0 {
		return Coord{}
	}
	return s.Points[0]
}

func (s *Snake) Tail() Coord {
	if len(s.Points) == 0 {
		return Coord{}
	}
	return s.Points[len(s.Points)-1]
}

func (s *Snake) Len() int {
	return len(s.Points)
}

func (s *Snake) Contains(c Coord) bool {
	for _, p := range s.Points {
		if p.Equals(c) {
			return true
		}
	}
	return false
}

// SetDirection changes the heading unless dir is invalid or reverses it.
func (s *Snake) SetDirection(dir Direction) bool {
	if !dir.IsValid() || dir.IsOpposite(s.HeadDirection) {
		return false
	}
	s.HeadDirection = dir
	return true
}

func (s *Snake) AdvanceGrow(newHead Coord) {
	points := make([]Coord, 0, len(s.Points)+1)
	points = append(points, newHead)
	s.Points = append(points, s.Points...)
}

func (s *Snake) AdvanceShrink(newHead Coord) {
	if len(s.Points) == 0 {
		s.Points = []Coord{newHead}
		return
	}
	copy(s.Points[1:], s.Points[:len(s.Points)-1])
	s.Points[0] = newHead
}

func (s *Snake) Copy() *Snake {
	points := make([]Coord, len(s.Points))
	copy(points, s.Points)
	return &Snake{
		Points:        points,
		HeadDirection: s.HeadDirection,
	}
}
