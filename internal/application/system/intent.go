package system

import (
	"fmt"
	"strings"

	"github.com/younwookim/snake/internal/domain/entity"
)

// Intent is a player action that reached the session after scene-level
// hit-testing. Intents are what replays record.
type Intent interface {
	isIntent()
	String() string
}

// TapIntent starts or restarts play
type TapIntent struct{}

func (TapIntent) isIntent() {}

func (TapIntent) String() string { return "tap" }

// PauseIntent toggles between playing and paused
type PauseIntent struct{}

func (PauseIntent) isIntent() {}

func (PauseIntent) String() string { return "pause" }

// SwipeIntent requests a turn
type SwipeIntent struct {
	Direction entity.Direction
}

func (SwipeIntent) isIntent() {}

func (i SwipeIntent) String() string { return "swipe:" + i.Direction.String() }

// ParseIntent decodes the String form of an intent
func ParseIntent(s string) (Intent, error) {
	switch {
	case s == "tap":
		return TapIntent{}, nil
	case s == "pause":
		return PauseIntent{}, nil
	case strings.HasPrefix(s, "swipe:"):
		dir, ok := entity.ParseDirection(strings.TrimPrefix(s, "swipe:"))
		if !ok {
			return nil, fmt.Errorf("unknown swipe direction in %q", s)
		}
		return SwipeIntent{Direction: dir}, nil
	default:
		return nil, fmt.Errorf("unknown intent %q", s)
	}
}
