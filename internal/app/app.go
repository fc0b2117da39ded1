// Package app wires configuration, storage, audio, input and the scenes
// into a runnable ebiten.Game.
package app

import (
	"log"
	"time"

	"github.com/younwookim/snake/internal/application/game"
	"github.com/younwookim/snake/internal/application/input"
	"github.com/younwookim/snake/internal/application/scene"
	"github.com/younwookim/snake/internal/application/scene/menu"
	"github.com/younwookim/snake/internal/application/scene/playing"
	"github.com/younwookim/snake/internal/application/scene/results"
	"github.com/younwookim/snake/internal/application/session"
	"github.com/younwookim/snake/internal/domain/entity"
	"github.com/younwookim/snake/internal/infrastructure/config"
	"github.com/younwookim/snake/internal/infrastructure/storage"
)

// Options configure an App. Zero values select the live defaults.
type Options struct {
	// RecordPath enables input recording of every game scene
	RecordPath string
	// Seed fixes the food rng of every game; 0 seeds from the clock
	Seed int64

	Now     func() time.Time
	Focused func() bool
	// Source replaces ebiten as the input reader
	Source func() input.Frame
}

// App owns the long-lived objects of one process
type App struct {
	ctx    *scene.Context
	store  storage.Store
	audio  scene.Audio
	poller *input.Poller
	game   *game.Game
}

// Rules converts the movement and scoring config into session rules
func Rules(cfg *config.GameConfig) session.Rules {
	return session.Rules{
		FoodPoints:      cfg.Scoring.FoodPoints,
		InitialInterval: cfg.Movement.InitialInterval(),
		SpeedupStep:     cfg.Movement.SpeedupStep(),
		MinInterval:     cfg.Movement.MinInterval(),
	}
}

// New builds the scene graph and shows the menu
func New(cfg *config.GameConfig, store storage.Store, audio scene.Audio, opts Options) *App {
	if opts.Now == nil {
		opts.Now = time.Now
	}

	bus := input.NewBus()
	scenes := scene.NewManager(audio)
	w, h := cfg.GridSize()

	ctx := &scene.Context{
		ScreenWidth:  cfg.Display.ScreenWidth,
		ScreenHeight: cfg.Display.ScreenHeight,
		CellSize:     cfg.Grid.CellSize,
		Grid:         entity.NewGrid(w, h),
		Rules:        Rules(cfg),
		Bus:          bus,
		Scenes:       scenes,
		Audio:        audio,
		Scores:       storage.NewScoreBook(store, cfg.Scoring.RecentLimit),
		Now:          opts.Now,
		NewSeed:      seeder(opts.Seed, opts.Now),
		RecordPath:   opts.RecordPath,
	}

	classifier := input.NewClassifier(cfg.Gesture.SwipeMinDistance, cfg.Gesture.SwipeMaxDuration())
	poller := input.NewPoller(bus, classifier, opts.Now)
	if opts.Source != nil {
		poller.SetSource(opts.Source)
	}

	a := &App{ctx: ctx, store: store, audio: audio, poller: poller}
	a.game = game.New(scenes, poller, game.Options{
		ScreenWidth:  cfg.Display.ScreenWidth,
		ScreenHeight: cfg.Display.ScreenHeight,
		Now:          opts.Now,
		Focused:      opts.Focused,
		OnHide:       a.onHide,
		OnShow:       a.onShow,
	})

	scenes.Register(scene.NameMenu, menu.New(ctx))
	scenes.Register(scene.NameGame, playing.New(ctx))
	scenes.Register(scene.NameGameOver, results.New(ctx))
	scenes.Switch(scene.NameMenu, scene.Data{})

	log.Printf("[Scene] Grid %dx%d, %d games played, best %d", w, h, ctx.Scores.GamesPlayed(), ctx.Scores.HighScore())
	return a
}

// seeder returns the fixed seed when set, otherwise a fresh clock-based one
func seeder(fixed int64, now func() time.Time) func() int64 {
	if fixed != 0 {
		return func() int64 { return fixed }
	}
	return func() int64 { return now().UnixNano() }
}

func (a *App) onHide() {
	a.audio.StopBackgroundMusic()
	a.poller.Reset()
}

func (a *App) onShow() {
	a.ctx.Scenes.ResumeMusic()
}

// Game returns the ebiten.Game to run
func (a *App) Game() *game.Game {
	return a.game
}

// Context returns the shared scene context
func (a *App) Context() *scene.Context {
	return a.ctx
}

// Close releases audio and storage
func (a *App) Close() error {
	if c, ok := a.audio.(interface{ Close() }); ok {
		c.Close()
	}
	return a.store.Close()
}
