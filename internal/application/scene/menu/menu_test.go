package menu

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/snake/internal/application/input"
	"github.com/younwookim/snake/internal/application/scene"
	"github.com/younwookim/snake/internal/application/scene/scenetest"
	"github.com/younwookim/snake/internal/infrastructure/audio"
	"github.com/younwookim/snake/internal/infrastructure/storage"
)

func setup(t *testing.T) (*scenetest.Env, *Menu, *scenetest.Recorder) {
	t.Helper()
	env := scenetest.New()
	m := New(env.Ctx)
	game := &scenetest.Recorder{}
	env.Ctx.Scenes.Register(scene.NameMenu, m)
	env.Ctx.Scenes.Register(scene.NameGame, game)
	return env, m, game
}

func TestMenu_InitLoadsScores(t *testing.T) {
	env, m, _ := setup(t)
	now := time.Now()
	for _, score := range []int{30, 50} {
		_, err := env.Ctx.Scores.RecordGameOver(storage.NewSessionRecord(score, score/10, 3+score/10, "wall", now, now))
		require.NoError(t, err)
	}

	require.True(t, env.Ctx.Scenes.Switch(scene.NameMenu, scene.Data{}))

	assert.Equal(t, 50, m.best)
	assert.Equal(t, 2, m.games)
	assert.Equal(t, []int{50, 30}, m.recent)
	assert.Equal(t, []audio.Track{audio.TrackMenu}, env.Audio.Tracks)
}

func TestMenu_TapStartsGame(t *testing.T) {
	env, _, game := setup(t)
	require.True(t, env.Ctx.Scenes.Switch(scene.NameMenu, scene.Data{}))

	env.Tap(200, 300)

	_, name := env.Ctx.Scenes.Current()
	assert.Equal(t, scene.NameGame, name)
	assert.Len(t, game.Inits, 1)
	assert.Equal(t, []audio.Effect{audio.EffectClick}, env.Audio.Sounds)
	assert.Equal(t, 0, env.Ctx.Bus.Len(input.KindTap), "menu must unsubscribe on exit")
}

func TestMenu_AudioButtonStaysOnMenu(t *testing.T) {
	env, m, game := setup(t)
	require.True(t, env.Ctx.Scenes.Switch(scene.NameMenu, scene.Data{}))

	btn := m.audioButton
	env.Tap(btn.X, btn.Y)

	_, name := env.Ctx.Scenes.Current()
	assert.Equal(t, scene.NameMenu, name)
	assert.Empty(t, game.Inits)
	assert.Equal(t, 1, env.Audio.Toggles)
	assert.Equal(t, []audio.Effect{audio.EffectClick}, env.Audio.Sounds)
}

func TestFormatScores(t *testing.T) {
	assert.Equal(t, "", formatScores(nil, 5))
	assert.Equal(t, "10  20", formatScores([]int{10, 20}, 5))
	assert.Equal(t, "1  2", formatScores([]int{1, 2, 3}, 2))
}
