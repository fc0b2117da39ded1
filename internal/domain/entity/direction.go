package entity

// Direction is a unit vector along one grid axis
type Direction struct {
	X, Y int
}

var (
	DirUp    = Direction{X: 0, Y: -1}
	DirDown  = Direction{X: 0, Y: 1}
	DirLeft  = Direction{X: -1, Y: 0}
	DirRight = Direction{X: 1, Y: 0}
)

// Opposite returns the 180° turn of d
func (d Direction) Opposite() Direction {
	return Direction{X: -d.X, Y: -d.Y}
}

// IsReverseOf reports whether d points exactly against other
func (d Direction) IsReverseOf(other Direction) bool {
	return d == other.Opposite()
}

// IsZero reports whether d is the zero vector
func (d Direction) IsZero() bool {
	return d.X == 0 && d.Y == 0
}

// String returns the swipe name of the direction
func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "none"
	}
}

// ParseDirection maps a swipe name to its direction
func ParseDirection(name string) (Direction, bool) {
	switch name {
	case "up":
		return DirUp, true
	case "down":
		return DirDown, true
	case "left":
		return DirLeft, true
	case "right":
		return DirRight, true
	default:
		return Direction{}, false
	}
}
