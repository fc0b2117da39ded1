package input

import (
	"time"

	"github.com/younwookim/snake/internal/domain/entity"
)

// Classifier decides between tap and swipe for a start/end touch pair
type Classifier struct {
	// MinDistance is the straight-line displacement a swipe needs
	MinDistance int
	// MaxDuration is the exclusive upper bound on a swipe's duration
	MaxDuration time.Duration
}

// NewClassifier creates a classifier with the given thresholds
func NewClassifier(minDistance int, maxDuration time.Duration) Classifier {
	return Classifier{MinDistance: minDistance, MaxDuration: maxDuration}
}

// Classify returns a swipe when the gesture moved at least MinDistance in
// less than MaxDuration, pointing along the dominant axis (ties go vertical). Anything else is a tap at the
// release position.
func (c Classifier) Classify(start, end Touch) Event {
	dx := end.X - start.X
	dy := end.Y - start.Y
	adx, ady := abs(dx), abs(dy)
	elapsed := end.At.Sub(start.At)

	if dx*dx+dy*dy >= c.MinDistance*c.MinDistance && elapsed < c.MaxDuration {
		var dir entity.Direction
		switch {
		case adx > ady && dx > 0:
			dir = entity.DirRight
		case adx > ady:
			dir = entity.DirLeft
		case dy > 0:
			dir = entity.DirDown
		default:
			dir = entity.DirUp
		}
		return Event{Kind: KindSwipe, X: end.X, Y: end.Y, Direction: dir, DX: dx, DY: dy}
	}

	return Event{Kind: KindTap, X: end.X, Y: end.Y, DX: dx, DY: dy}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
