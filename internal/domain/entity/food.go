package entity

import "math/rand"

// placeAttempts bounds rejection sampling before falling back to a scan of
// the free cells. Crowded boards would otherwise spin for a long time.
const placeAttempts = 64

// Food is the single pickup on the board
type Food struct {
	Position Point
}

// PlaceFood picks a cell not occupied by the snake, uniformly over the free
// cells. It returns false when the snake covers the whole grid.
func PlaceFood(grid Grid, snake *Snake, rng *rand.Rand) (Point, bool) {
	if grid.Cells() == 0 {
		return Point{}, false
	}

	for i := 0; i < placeAttempts; i++ {
		p := Point{X: rng.Intn(grid.Width), Y: rng.Intn(grid.Height)}
		if !snake.Occupies(p) {
			return p, true
		}
	}

	free := make([]Point, 0, grid.Cells())
	for y := 0; y < grid.Height; y++ {
		for x := 0; x < grid.Width; x++ {
			p := Point{X: x, Y: y}
			if !snake.Occupies(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return Point{}, false
	}
	return free[rng.Intn(len(free))], true
}
