// Package input turns raw touches, mouse drags and keys into tap and swipe
// events and fans them out to subscribed listeners.
package input

import (
	"time"

	"github.com/younwookim/snake/internal/domain/entity"
)

// Kind names an event stream
type Kind int

const (
	KindTap Kind = iota
	KindSwipe
)

func (k Kind) String() string {
	switch k {
	case KindTap:
		return "tap"
	case KindSwipe:
		return "swipe"
	default:
		return "unknown"
	}
}

// Event is a classified gesture.
// Taps carry the release position; swipes carry direction and displacement.
type Event struct {
	Kind      Kind
	X, Y      int
	Direction entity.Direction
	DX, DY    int
}

// Touch is one end of a gesture
type Touch struct {
	X, Y int
	At   time.Time
}
