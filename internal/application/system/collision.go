package system

import "github.com/younwookim/snake/internal/domain/entity"

// Collision is the outcome of a step
type Collision int

const (
	CollisionNone Collision = iota
	CollisionWall
	CollisionSelf
	CollisionFood
)

func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionWall:
		return "wall"
	case CollisionSelf:
		return "self"
	case CollisionFood:
		return "food"
	default:
		return "unknown"
	}
}

// Fatal reports whether the collision ends the session
func (c Collision) Fatal() bool {
	return c == CollisionWall || c == CollisionSelf
}

// CheckCollision inspects the head after a step, in order: wall, self, food.
func CheckCollision(grid entity.Grid, snake *entity.Snake, food entity.Food) Collision {
	head := snake.Head()

	if !grid.Contains(head) {
		return CollisionWall
	}
	if snake.HitsSelf() {
		return CollisionSelf
	}
	if head == food.Position {
		return CollisionFood
	}
	return CollisionNone
}
