// Package scenetest provides a scene.Context backed by in-memory fakes.
package scenetest

import (
	"time"

	"github.com/younwookim/snake/internal/application/input"
	"github.com/younwookim/snake/internal/application/scene"
	"github.com/younwookim/snake/internal/application/session"
	"github.com/younwookim/snake/internal/domain/entity"
	"github.com/younwookim/snake/internal/infrastructure/audio"
	"github.com/younwookim/snake/internal/infrastructure/storage"
)

// Screen geometry of the test context: a 10x10 board of 40px cells
const (
	ScreenWidth  = 400
	ScreenHeight = 400
	CellSize     = 40
)

// Audio records every call
type Audio struct {
	Tracks  []audio.Track
	Sounds  []audio.Effect
	Stops   int
	Toggles int
	Music   bool
}

func (a *Audio) PlayBackgroundMusic(track audio.Track) { a.Tracks = append(a.Tracks, track) }

func (a *Audio) StopBackgroundMusic() { a.Stops++ }

func (a *Audio) PlaySound(effect audio.Effect) { a.Sounds = append(a.Sounds, effect) }

func (a *Audio) ToggleMusic() bool {
	a.Toggles++
	a.Music = !a.Music
	return a.Music
}

func (a *Audio) MusicEnabled() bool { return a.Music }

// Env bundles the context with handles to its fakes
type Env struct {
	Ctx   *scene.Context
	Audio *Audio
	Store *storage.MemoryStore
	Clock time.Time
}

// New returns a context with a fixed seed of 42 and a clock that only
// moves through Advance
func New() *Env {
	env := &Env{
		Audio: &Audio{Music: true},
		Store: storage.NewMemoryStore(),
		Clock: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
	env.Ctx = &scene.Context{
		ScreenWidth:  ScreenWidth,
		ScreenHeight: ScreenHeight,
		CellSize:     CellSize,
		Grid:         entity.NewGrid(ScreenWidth/CellSize, ScreenHeight/CellSize),
		Rules:        session.DefaultRules(),
		Bus:          input.NewBus(),
		Scenes:       scene.NewManager(env.Audio),
		Audio:        env.Audio,
		Scores:       storage.NewScoreBook(env.Store, storage.RecentLimit),
		Now:          func() time.Time { return env.Clock },
		NewSeed:      func() int64 { return 42 },
	}
	return env
}

// Advance moves the fake clock
func (e *Env) Advance(d time.Duration) {
	e.Clock = e.Clock.Add(d)
}

// Tap publishes a tap at (x, y)
func (e *Env) Tap(x, y int) {
	e.Ctx.Bus.Publish(input.Event{Kind: input.KindTap, X: x, Y: y})
}

// Swipe publishes a swipe in dir
func (e *Env) Swipe(dir entity.Direction) {
	e.Ctx.Bus.Publish(input.Event{Kind: input.KindSwipe, Direction: dir})
}

// Recorder is a minimal scene that remembers the data it was entered with
type Recorder struct {
	Inits []scene.Data
}

func (r *Recorder) Init(data scene.Data) { r.Inits = append(r.Inits, data) }
