package config

import "time"

// GameConfig is the root config for game.json
type GameConfig struct {
	Display  DisplayConfig  `json:"display"`
	Grid     GridConfig     `json:"grid"`
	Movement MovementConfig `json:"movement"`
	Scoring  ScoringConfig  `json:"scoring"`
	Gesture  GestureConfig  `json:"gesture"`
	Audio    AudioConfig    `json:"audio"`
	Haptics  HapticsConfig  `json:"haptics"`
	Storage  StorageConfig  `json:"storage"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Title        string `json:"title"`
}

// GridConfig sizes the playfield. The grid spans floor(screen/cellSize) cells.
type GridConfig struct {
	CellSize int `json:"cellSize"`
}

// MovementConfig controls the discrete step pacing
type MovementConfig struct {
	InitialIntervalMs int `json:"initialIntervalMs"` // Step interval at the start of a session
	SpeedupStepMs     int `json:"speedupStepMs"`     // Interval reduction per food eaten
	MinIntervalMs     int `json:"minIntervalMs"`     // Interval floor
}

func (m MovementConfig) InitialInterval() time.Duration {
	return time.Duration(m.InitialIntervalMs) * time.Millisecond
}

func (m MovementConfig) SpeedupStep() time.Duration {
	return time.Duration(m.SpeedupStepMs) * time.Millisecond
}

func (m MovementConfig) MinInterval() time.Duration {
	return time.Duration(m.MinIntervalMs) * time.Millisecond
}

type ScoringConfig struct {
	FoodPoints  int `json:"foodPoints"`
	RecentLimit int `json:"recentLimit"`
}

// GestureConfig configures tap/swipe classification
type GestureConfig struct {
	SwipeMinDistance   int `json:"swipeMinDistance"`   // Whole pixels
	SwipeMaxDurationMs int `json:"swipeMaxDurationMs"` // Longer drags count as taps
}

func (g GestureConfig) SwipeMaxDuration() time.Duration {
	return time.Duration(g.SwipeMaxDurationMs) * time.Millisecond
}

type AudioConfig struct {
	SampleRate int                 `json:"sampleRate"`
	Defaults   AudioDefaultsConfig `json:"defaults"`
}

type AudioDefaultsConfig struct {
	MusicEnabled bool    `json:"musicEnabled"`
	SoundEnabled bool    `json:"soundEnabled"`
	MusicVolume  float64 `json:"musicVolume"`
	SoundVolume  float64 `json:"soundVolume"`
}

type HapticsConfig struct {
	ShortMs int `json:"shortMs"`
	LongMs  int `json:"longMs"`
}

func (h HapticsConfig) Short() time.Duration {
	return time.Duration(h.ShortMs) * time.Millisecond
}

func (h HapticsConfig) Long() time.Duration {
	return time.Duration(h.LongMs) * time.Millisecond
}

type StorageConfig struct {
	Path string `json:"path"`
}
