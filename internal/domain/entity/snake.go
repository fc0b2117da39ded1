package entity

// Snake is the player entity. Body is ordered head first.
type Snake struct {
	Body          []Point
	Direction     Direction
	NextDirection Direction
	Alive         bool
	Growing       bool
}

// NewSnake creates the initial three-segment snake with its head at head,
// trailing to the left and moving right.
func NewSnake(head Point) *Snake {
	return &Snake{
		Body: []Point{
			head,
			{X: head.X - 1, Y: head.Y},
			{X: head.X - 2, Y: head.Y},
		},
		Direction:     DirRight,
		NextDirection: DirRight,
		Alive:         true,
	}
}

// Head returns the first segment
func (s *Snake) Head() Point {
	return s.Body[0]
}

// Len returns the number of segments
func (s *Snake) Len() int {
	return len(s.Body)
}

// SetNextDirection buffers d for the next step.
// A turn straight back into the neck is rejected and reported as false.
func (s *Snake) SetNextDirection(d Direction) bool {
	if d.IsReverseOf(s.Direction) {
		return false
	}
	s.NextDirection = d
	return true
}

// Step commits the buffered direction and moves one cell.
// The tail is kept when a growth is pending, otherwise dropped.
func (s *Snake) Step() {
	if !s.Alive {
		return
	}

	s.Direction = s.NextDirection
	head := s.Head().Add(s.Direction)

	s.Body = append(s.Body, Point{})
	copy(s.Body[1:], s.Body[:len(s.Body)-1])
	s.Body[0] = head

	if s.Growing {
		s.Growing = false
		return
	}
	s.Body = s.Body[:len(s.Body)-1]
}

// Grow marks the snake to keep its tail on the next step
func (s *Snake) Grow() {
	s.Growing = true
}

// Kill marks the snake dead; a dead snake no longer moves
func (s *Snake) Kill() {
	s.Alive = false
}

// Occupies reports whether any segment is on p
func (s *Snake) Occupies(p Point) bool {
	for _, seg := range s.Body {
		if seg == p {
			return true
		}
	}
	return false
}

// HitsSelf reports whether the head overlaps any other segment
func (s *Snake) HitsSelf() bool {
	head := s.Head()
	for _, seg := range s.Body[1:] {
		if seg == head {
			return true
		}
	}
	return false
}
