// Package menu provides the title screen.
package menu

import (
	"fmt"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/snake/internal/application/input"
	"github.com/younwookim/snake/internal/application/scene"
	"github.com/younwookim/snake/internal/application/ui"
	"github.com/younwookim/snake/internal/infrastructure/audio"
)

// recentShown is how many recent scores fit under the title
const recentShown = 5

// Menu is the title scene
type Menu struct {
	ctx         *scene.Context
	subs        scene.Subscriptions
	audioButton ui.Rect

	best   int
	games  int
	recent []int
}

// New creates the menu scene
func New(ctx *scene.Context) *Menu {
	return &Menu{
		ctx:         ctx,
		audioButton: ui.AudioButton(ctx.ScreenWidth),
	}
}

// Init refreshes the score summary and starts listening for taps
func (m *Menu) Init(scene.Data) {
	m.best = m.ctx.Scores.HighScore()
	m.games = m.ctx.Scores.GamesPlayed()
	m.recent = m.ctx.Scores.RecentScores()
	m.subs.Add(m.ctx.Bus, input.KindTap, m.onTap)
}

// Destroy stops listening
func (m *Menu) Destroy() {
	m.subs.CancelAll()
}

func (m *Menu) onTap(e input.Event) {
	if m.audioButton.Contains(e.X, e.Y) {
		m.ctx.Audio.ToggleMusic()
		m.ctx.Audio.PlaySound(audio.EffectClick)
		return
	}

	m.ctx.Audio.PlaySound(audio.EffectClick)
	m.ctx.Scenes.Switch(scene.NameGame, scene.Data{})
}

// Draw renders the title screen
func (m *Menu) Draw(screen *ebiten.Image) {
	w, h := float64(m.ctx.ScreenWidth), float64(m.ctx.ScreenHeight)
	cx, cy := w/2, h/2

	screen.Fill(ui.ColorBackground)

	m.drawLogo(screen, cx-80, cy-100)
	ui.DrawText(screen, "SNAKE", cx+30, cy-100, ui.SizeTitle, ui.ColorSnakeBody, ui.AlignCenter)

	ui.DrawText(screen, fmt.Sprintf("Best Score: %d", m.best), cx, cy-20, ui.SizeLarge, ui.ColorScore, ui.AlignCenter)
	ui.DrawText(screen, fmt.Sprintf("Games Played: %d", m.games), cx, cy+8, ui.SizeSmall, ui.ColorSoft, ui.AlignCenter)

	ui.DrawText(screen, "Swipe to control snake direction", cx, cy+60, ui.SizeSmall, ui.ColorSoft, ui.AlignCenter)
	ui.DrawText(screen, "Tap to start game", cx, cy+90, ui.SizeNormal, ui.ColorSoft, ui.AlignCenter)

	if len(m.recent) > 0 {
		ui.DrawText(screen, "Recent: "+formatScores(m.recent, recentShown), cx, cy+140, ui.SizeSmall, ui.ColorSoft, ui.AlignCenter)
	}

	ui.DrawAudioIcon(screen, m.audioButton, m.ctx.Audio.MusicEnabled())
}

// drawLogo draws a three-segment snake with a head
func (m *Menu) drawLogo(screen *ebiten.Image, x, y float64) {
	const cell = 14.0
	for i := 2; i >= 0; i-- {
		c := ui.ColorSnakeBody
		if i == 0 {
			c = ui.ColorSnakeHead
		}
		ui.FillRect(screen, x-float64(i)*cell, y-cell/2, cell-2, cell-2, c)
	}
	ui.FillRect(screen, x+cell/2, y-cell/2+3, 3, 3, ui.ColorWhite)
}

func formatScores(scores []int, limit int) string {
	if len(scores) > limit {
		scores = scores[:limit]
	}
	parts := make([]string, len(scores))
	for i, s := range scores {
		parts[i] = fmt.Sprint(s)
	}
	return strings.Join(parts, "  ")
}
