// Package game provides the frame driver that implements ebiten.Game.
package game

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Scenes is what the frame driver advances and renders
type Scenes interface {
	Update(dt time.Duration)
	Draw(screen *ebiten.Image)
}

// Input is polled once per frame before the scenes update
type Input interface {
	Poll()
}

// Options configure a Game
type Options struct {
	ScreenWidth  int
	ScreenHeight int

	// Now returns wall-clock time; defaults to time.Now
	Now func() time.Time
	// Focused reports whether the app is in the foreground; defaults to ebiten.IsFocused
	Focused func() bool

	// OnHide runs when the app leaves the foreground
	OnHide func()
	// OnShow runs when the app returns to the foreground
	OnShow func()
}

// Game implements ebiten.Game. Each frame it measures the time since the
// previous frame, polls input and forwards the delta to the scenes.
type Game struct {
	scenes  Scenes
	input   Input
	opts    Options
	last    time.Time
	started bool
	hidden  bool
	frames  int
}

// New creates a frame driver over scenes. input may be nil.
func New(scenes Scenes, input Input, opts Options) *Game {
	if opts.Now == nil {
		opts.Now = time.Now
	}
	if opts.Focused == nil {
		opts.Focused = ebiten.IsFocused
	}
	return &Game{scenes: scenes, input: input, opts: opts}
}

// Update runs one frame.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	now := g.opts.Now()

	if !g.opts.Focused() {
		if !g.hidden {
			g.hidden = true
			if g.opts.OnHide != nil {
				g.opts.OnHide()
			}
		}
		// Time spent in the background is not simulated
		g.last = now
		return nil
	}
	if g.hidden {
		g.hidden = false
		if g.opts.OnShow != nil {
			g.opts.OnShow()
		}
	}

	var dt time.Duration
	if g.started {
		dt = max(now.Sub(g.last), 0)
	}
	g.last = now
	g.started = true
	g.frames++

	if g.input != nil {
		g.input.Poll()
	}
	g.scenes.Update(dt)
	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.scenes.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.opts.ScreenWidth, g.opts.ScreenHeight
}

// Frames returns the number of frames simulated so far
func (g *Game) Frames() int {
	return g.frames
}

// Hidden reports whether the app is currently in the background
func (g *Game) Hidden() bool {
	return g.hidden
}
