package config

import (
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoader_LoadGame(t *testing.T) {
	loader := NewLoader("../../../configs")

	cfg, err := loader.LoadGame()
	require.NoError(t, err)

	assert.Equal(t, 360, cfg.Display.ScreenWidth)
	assert.Equal(t, 640, cfg.Display.ScreenHeight)
	assert.Equal(t, 20, cfg.Grid.CellSize)
	assert.Equal(t, 200*time.Millisecond, cfg.Movement.InitialInterval())
	assert.Equal(t, 2*time.Millisecond, cfg.Movement.SpeedupStep())
	assert.Equal(t, 100*time.Millisecond, cfg.Movement.MinInterval())
	assert.Equal(t, 10, cfg.Scoring.FoodPoints)
	assert.Equal(t, 30, cfg.Gesture.SwipeMinDistance)
	assert.Equal(t, 500*time.Millisecond, cfg.Gesture.SwipeMaxDuration())
	assert.True(t, cfg.Audio.Defaults.MusicEnabled)
	assert.Equal(t, 0.6, cfg.Audio.Defaults.MusicVolume)
	assert.Equal(t, 15*time.Millisecond, cfg.Haptics.Short())
	assert.Equal(t, 400*time.Millisecond, cfg.Haptics.Long())
}

func TestLoader_PartialFileKeepsDefaults(t *testing.T) {
	fsys := fstest.MapFS{
		"game.json": {Data: []byte(`{"grid": {"cellSize": 30}}`)},
	}
	loader := NewFSLoader(fsys, "mem")

	cfg, err := loader.LoadAll()
	require.NoError(t, err)

	assert.Equal(t, 30, cfg.Grid.CellSize)
	assert.Equal(t, 360, cfg.Display.ScreenWidth, "unspecified values keep defaults")
	assert.Equal(t, 10, cfg.Scoring.RecentLimit)
}

func TestLoader_Errors(t *testing.T) {
	tests := []struct {
		name string
		fsys fstest.MapFS
	}{
		{"missing file", fstest.MapFS{}},
		{"malformed json", fstest.MapFS{"game.json": {Data: []byte(`{"grid":`)}}},
		{"zero cell size", fstest.MapFS{"game.json": {Data: []byte(`{"grid": {"cellSize": 0}}`)}}},
		{"fractional swipe distance", fstest.MapFS{"game.json": {Data: []byte(`{"gesture": {"swipeMinDistance": 30.5}}`)}}},
		{"zero swipe distance", fstest.MapFS{"game.json": {Data: []byte(`{"gesture": {"swipeMinDistance": 0}}`)}}},
		{"floor above initial", fstest.MapFS{"game.json": {Data: []byte(`{"movement": {"initialIntervalMs": 50, "minIntervalMs": 100}}`)}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewFSLoader(tt.fsys, "mem").LoadGame()
			assert.Error(t, err)
		})
	}
}

func TestGameConfig_GridSize(t *testing.T) {
	cfg := Default()

	w, h := cfg.GridSize()
	assert.Equal(t, 18, w)
	assert.Equal(t, 32, h)
}
