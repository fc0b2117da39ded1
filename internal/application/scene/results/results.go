// Package results provides the game-over summary screen.
package results

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/snake/internal/application/input"
	"github.com/younwookim/snake/internal/application/scene"
	"github.com/younwookim/snake/internal/application/ui"
	"github.com/younwookim/snake/internal/infrastructure/audio"
)

// Results shows the final score; any tap returns to the menu
type Results struct {
	ctx  *scene.Context
	subs scene.Subscriptions

	score   int
	best    int
	newHigh bool
}

// New creates the results scene
func New(ctx *scene.Context) *Results {
	return &Results{ctx: ctx}
}

// Init takes the final score from data
func (r *Results) Init(data scene.Data) {
	r.score = data.Score
	r.newHigh = data.NewHighScore
	r.best = r.ctx.Scores.HighScore()
	r.subs.Add(r.ctx.Bus, input.KindTap, r.onTap)
}

// Destroy stops listening
func (r *Results) Destroy() {
	r.subs.CancelAll()
}

func (r *Results) onTap(input.Event) {
	r.ctx.Audio.PlaySound(audio.EffectClick)
	r.ctx.Scenes.Switch(scene.NameMenu, scene.Data{})
}

// Score returns the score being shown
func (r *Results) Score() int {
	return r.score
}

// Draw renders the summary
func (r *Results) Draw(screen *ebiten.Image) {
	cx, cy := float64(r.ctx.ScreenWidth)/2, float64(r.ctx.ScreenHeight)/2

	screen.Fill(ui.ColorBackground)

	ui.DrawText(screen, "Game Over", cx, cy-60, ui.SizeTitle, ui.ColorDanger, ui.AlignCenter)
	ui.DrawText(screen, fmt.Sprintf("Final Score: %d", r.score), cx, cy, ui.SizeLarge, ui.ColorScore, ui.AlignCenter)
	if r.newHigh {
		ui.DrawText(screen, "New Best!", cx, cy+28, ui.SizeNormal, ui.ColorSnakeHead, ui.AlignCenter)
	} else {
		ui.DrawText(screen, fmt.Sprintf("Best: %d", r.best), cx, cy+28, ui.SizeNormal, ui.ColorSoft, ui.AlignCenter)
	}
	ui.DrawText(screen, "Tap to return to menu", cx, cy+60, ui.SizeNormal, ui.ColorSoft, ui.AlignCenter)
}
