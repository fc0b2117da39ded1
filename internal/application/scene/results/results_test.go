package results

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/younwookim/snake/internal/application/input"
	"github.com/younwookim/snake/internal/application/scene"
	"github.com/younwookim/snake/internal/application/scene/scenetest"
	"github.com/younwookim/snake/internal/infrastructure/audio"
)

func TestResults_ShowsDataAndReturnsToMenu(t *testing.T) {
	env := scenetest.New()
	r := New(env.Ctx)
	menu := &scenetest.Recorder{}
	env.Ctx.Scenes.Register(scene.NameGameOver, r)
	env.Ctx.Scenes.Register(scene.NameMenu, menu)

	_, err := env.Ctx.Scores.SaveHighScore(120)
	require.NoError(t, err)

	require.True(t, env.Ctx.Scenes.Switch(scene.NameGameOver, scene.Data{Score: 40, FoodEaten: 4}))
	assert.Equal(t, 40, r.Score())
	assert.Equal(t, 120, r.best)
	assert.False(t, r.newHigh)

	env.Tap(10, 10)

	_, name := env.Ctx.Scenes.Current()
	assert.Equal(t, scene.NameMenu, name)
	assert.Len(t, menu.Inits, 1)
	assert.Equal(t, []audio.Effect{audio.EffectClick}, env.Audio.Sounds)
	assert.Equal(t, []audio.Track{audio.TrackGameOver, audio.TrackMenu}, env.Audio.Tracks)
	assert.Equal(t, 0, env.Ctx.Bus.Len(input.KindTap))
}
