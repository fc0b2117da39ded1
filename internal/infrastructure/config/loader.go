package config

import (
	"encoding/json"
	"fmt"
	"io/fs"
	"os"
)

// Loader loads game configuration from JSON files using fs.FS interface
type Loader struct {
	fsys     fs.FS
	basePath string
}

// NewLoader creates a new config loader from filesystem path
func NewLoader(basePath string) *Loader {
	return &Loader{
		fsys:     os.DirFS(basePath),
		basePath: basePath,
	}
}

// NewFSLoader creates a new config loader from fs.FS
func NewFSLoader(fsys fs.FS, basePath string) *Loader {
	return &Loader{
		fsys:     fsys,
		basePath: basePath,
	}
}

// LoadGame loads game.json on top of the built-in defaults, so a file only
// needs to name the values it overrides.
func (l *Loader) LoadGame() (*GameConfig, error) {
	data, err := fs.ReadFile(l.fsys, "game.json")
	if err != nil {
		return nil, fmt.Errorf("failed to read game.json: %w", err)
	}

	cfg := Default()
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse game.json: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid game.json: %w", err)
	}

	return cfg, nil
}

// LoadAll loads all base configurations
func (l *Loader) LoadAll() (*GameConfig, error) {
	return l.LoadGame()
}

// Default returns the configuration the game ships with
func Default() *GameConfig {
	return &GameConfig{
		Display: DisplayConfig{
			ScreenWidth:  360,
			ScreenHeight: 640,
			Scale:        1,
			Title:        "Snake",
		},
		Grid: GridConfig{CellSize: 20},
		Movement: MovementConfig{
			InitialIntervalMs: 200,
			SpeedupStepMs:     2,
			MinIntervalMs:     100,
		},
		Scoring: ScoringConfig{
			FoodPoints:  10,
			RecentLimit: 10,
		},
		Gesture: GestureConfig{
			SwipeMinDistance:   30,
			SwipeMaxDurationMs: 500,
		},
		Audio: AudioConfig{
			SampleRate: 44100,
			Defaults: AudioDefaultsConfig{
				MusicEnabled: true,
				SoundEnabled: true,
				MusicVolume:  0.6,
				SoundVolume:  0.8,
			},
		},
		Haptics: HapticsConfig{ShortMs: 15, LongMs: 400},
		Storage: StorageConfig{Path: "data/snake.db"},
	}
}

// Validate rejects configurations the game cannot run with
func (c *GameConfig) Validate() error {
	if c.Grid.CellSize <= 0 {
		return fmt.Errorf("grid.cellSize must be positive, got %d", c.Grid.CellSize)
	}
	if c.Display.ScreenWidth < c.Grid.CellSize || c.Display.ScreenHeight < c.Grid.CellSize {
		return fmt.Errorf("screen %dx%d smaller than one cell", c.Display.ScreenWidth, c.Display.ScreenHeight)
	}
	if c.Movement.MinIntervalMs <= 0 || c.Movement.InitialIntervalMs < c.Movement.MinIntervalMs {
		return fmt.Errorf("movement intervals out of order: initial %d, min %d",
			c.Movement.InitialIntervalMs, c.Movement.MinIntervalMs)
	}
	if c.Gesture.SwipeMinDistance <= 0 || c.Gesture.SwipeMaxDurationMs <= 0 {
		return fmt.Errorf("gesture thresholds must be positive, got %dpx %dms",
			c.Gesture.SwipeMinDistance, c.Gesture.SwipeMaxDurationMs)
	}
	if c.Scoring.RecentLimit <= 0 {
		return fmt.Errorf("scoring.recentLimit must be positive, got %d", c.Scoring.RecentLimit)
	}
	if c.Audio.SampleRate <= 0 {
		return fmt.Errorf("audio.sampleRate must be positive, got %d", c.Audio.SampleRate)
	}
	return nil
}

// GridSize returns the grid dimensions that fit the configured screen
func (c *GameConfig) GridSize() (width, height int) {
	return c.Display.ScreenWidth / c.Grid.CellSize, c.Display.ScreenHeight / c.Grid.CellSize
}
