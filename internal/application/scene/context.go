package scene

import (
	"time"

	"github.com/younwookim/snake/internal/application/input"
	"github.com/younwookim/snake/internal/application/session"
	"github.com/younwookim/snake/internal/domain/entity"
	"github.com/younwookim/snake/internal/infrastructure/audio"
	"github.com/younwookim/snake/internal/infrastructure/storage"
)

// Audio is the sound surface scenes use
type Audio interface {
	Music
	StopBackgroundMusic()
	PlaySound(effect audio.Effect)
	ToggleMusic() bool
	MusicEnabled() bool
}

// Context is the single per-process object shared by every scene.
// It is built once at startup and passed to scenes explicitly.
type Context struct {
	ScreenWidth  int
	ScreenHeight int
	CellSize     int
	Grid         entity.Grid
	Rules        session.Rules

	Bus    *input.Bus
	Scenes *Manager
	Audio  Audio
	Scores *storage.ScoreBook

	// Now returns wall-clock time
	Now func() time.Time
	// NewSeed returns the rng seed for the next game scene
	NewSeed func() int64
	// RecordPath enables input recording of game scenes when set
	RecordPath string
}

// Subscriptions collects a scene's listener handles for cancellation on exit
type Subscriptions []*input.Subscription

// Add registers fn on bus and keeps the handle
func (s *Subscriptions) Add(bus *input.Bus, kind input.Kind, fn input.Listener) {
	*s = append(*s, bus.Subscribe(kind, fn))
}

// CancelAll cancels every handle and empties the list
func (s *Subscriptions) CancelAll() {
	for _, sub := range *s {
		sub.Cancel()
	}
	*s = nil
}
