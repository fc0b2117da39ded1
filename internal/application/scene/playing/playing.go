// Package playing provides the main gameplay scene.
package playing

import (
	"fmt"
	"image/color"
	"log"
	"math"
	"math/rand"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/younwookim/snake/internal/application/input"
	"github.com/younwookim/snake/internal/application/replay"
	"github.com/younwookim/snake/internal/application/scene"
	"github.com/younwookim/snake/internal/application/session"
	"github.com/younwookim/snake/internal/application/state"
	"github.com/younwookim/snake/internal/application/system"
	"github.com/younwookim/snake/internal/application/ui"
	"github.com/younwookim/snake/internal/domain/entity"
	"github.com/younwookim/snake/internal/infrastructure/audio"
	"github.com/younwookim/snake/internal/infrastructure/storage"
)

// Body segments fade by bodyFadeStep per index, never below bodyMinAlpha
const (
	bodyFadeStep = 0.05
	bodyMinAlpha = 0.4
)

// Playing is the main gameplay scene
type Playing struct {
	ctx  *scene.Context
	subs scene.Subscriptions

	session *session.Session
	seed    int64

	pauseButton ui.Rect
	audioButton ui.Rect
	menuButton  ui.Rect

	// Intents applied since the last Update, recorded with its dt
	pending []system.Intent

	startedAt time.Time
	newHigh   bool

	// Input recording
	recorder       *replay.Recorder
	recordFilename string
}

// New creates the gameplay scene. The session is built on Init.
func New(ctx *scene.Context) *Playing {
	w, h := ctx.ScreenWidth, ctx.ScreenHeight
	return &Playing{
		ctx:            ctx,
		pauseButton:    ui.PauseButton(w),
		audioButton:    ui.AudioButton(w),
		menuButton:     ui.Rect{X: w/2 - 60, Y: h/2 + 90, W: 120, H: ui.ButtonSize},
		recordFilename: ctx.RecordPath,
	}
}

// Init starts a fresh session in the ready state
func (p *Playing) Init(scene.Data) {
	// Seeded RNG keeps food placement reproducible from the recording
	p.seed = p.ctx.NewSeed()
	rng := rand.New(rand.NewSource(p.seed))

	p.session = session.New(p.ctx.Grid, p.ctx.Rules, rng, session.Hooks{
		OnStart:    p.onStart,
		OnEat:      p.onEat,
		OnGameOver: p.onGameOver,
	})
	p.pending = p.pending[:0]
	p.newHigh = false

	if p.recordFilename != "" {
		p.recorder = replay.NewRecorder(p.seed, p.ctx.Grid, p.ctx.Rules)
		log.Printf("[Scene] Recording enabled: %s (seed: %d)", p.recordFilename, p.seed)
	}

	p.subs.Add(p.ctx.Bus, input.KindTap, p.onTap)
	p.subs.Add(p.ctx.Bus, input.KindSwipe, p.onSwipe)
}

// Destroy stops listening and flushes the recording
func (p *Playing) Destroy() {
	p.subs.CancelAll()
	p.saveRecording()
	p.recorder = nil
}

// Session returns the running session
func (p *Playing) Session() *session.Session {
	return p.session
}

// Update advances the session by dt
func (p *Playing) Update(dt time.Duration) {
	if p.recorder != nil {
		p.recorder.RecordFrame(dt, p.pending)
	}
	p.pending = p.pending[:0]

	p.session.Update(dt)
}

func (p *Playing) apply(in system.Intent) {
	p.pending = append(p.pending, in)
	p.session.Apply(in)
}

func (p *Playing) onTap(e input.Event) {
	if p.audioButton.Contains(e.X, e.Y) {
		p.ctx.Audio.ToggleMusic()
		p.ctx.Audio.PlaySound(audio.EffectClick)
		return
	}

	if p.pauseButton.Contains(e.X, e.Y) {
		p.ctx.Audio.PlaySound(audio.EffectClick)
		p.apply(system.PauseIntent{})
		return
	}

	if p.session.State() == state.StateGameOver && p.menuButton.Contains(e.X, e.Y) {
		p.ctx.Audio.PlaySound(audio.EffectClick)
		p.ctx.Scenes.Switch(scene.NameGameOver, scene.Data{
			Score:        p.session.Score(),
			FoodEaten:    p.session.FoodEaten(),
			NewHighScore: p.newHigh,
		})
		return
	}

	p.apply(system.TapIntent{})
}

func (p *Playing) onSwipe(e input.Event) {
	p.apply(system.SwipeIntent{Direction: e.Direction})
}

func (p *Playing) onStart() {
	p.startedAt = p.ctx.Now()
	p.newHigh = false
}

func (p *Playing) onEat(int) {
	p.ctx.Audio.PlaySound(audio.EffectEat)
}

func (p *Playing) onGameOver(res session.Result) {
	p.ctx.Audio.PlaySound(audio.EffectGameOver)

	rec := storage.NewSessionRecord(res.Score, res.FoodEaten, res.Length, res.Cause.String(), p.startedAt, p.ctx.Now())
	newHigh, err := p.ctx.Scores.RecordGameOver(rec)
	if err != nil {
		log.Printf("[Storage] Failed to record game over: %v", err)
	}
	p.newHigh = newHigh

	// Auto-save recording on game over
	if p.recorder != nil {
		p.recorder.SetOutcome(replay.Outcome{
			State:     state.StateGameOver.String(),
			Score:     res.Score,
			FoodEaten: res.FoodEaten,
			Length:    res.Length,
		})
		p.saveRecording()
	}
}

func (p *Playing) saveRecording() {
	if p.recorder == nil || p.recorder.FrameCount() == 0 {
		return
	}

	filename := p.recordFilename
	if filename == "" {
		filename = replay.GenerateFilename()
	}
	if err := p.recorder.Save(filename); err != nil {
		log.Printf("[Scene] Failed to save recording: %v", err)
	} else {
		log.Printf("[Scene] Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Draw renders the board, the HUD and the state overlay
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(ui.ColorBackground)

	st := p.session.State()
	if st == state.StateReady {
		p.drawGrid(screen)
	}
	p.drawFood(screen)
	p.drawSnake(screen)
	p.drawHUD(screen, st)

	switch st {
	case state.StateReady:
		p.drawOverlay(screen, "Ready to Play?", ui.ColorSnakeHead, "Tap to start")
	case state.StatePaused:
		p.drawOverlay(screen, "Game Paused", ui.ColorSoft, "Tap pause to resume")
	case state.StateGameOver:
		p.drawGameOver(screen)
	}
}

func (p *Playing) cellSize() float64 {
	return float64(p.ctx.CellSize)
}

func (p *Playing) drawGrid(screen *ebiten.Image) {
	cell := float32(p.cellSize())
	grid := p.session.Grid()
	w, h := float32(grid.Width)*cell, float32(grid.Height)*cell
	for x := 0; x <= grid.Width; x++ {
		vector.StrokeLine(screen, float32(x)*cell, 0, float32(x)*cell, h, 1, ui.ColorGrid, false)
	}
	for y := 0; y <= grid.Height; y++ {
		vector.StrokeLine(screen, 0, float32(y)*cell, w, float32(y)*cell, 1, ui.ColorGrid, false)
	}
}

func (p *Playing) drawSnake(screen *ebiten.Image) {
	cell := p.cellSize()
	snake := p.session.Snake()

	// Tail first so the head stays on top
	for i := len(snake.Body) - 1; i >= 0; i-- {
		seg := snake.Body[i]
		x, y := float64(seg.X)*cell, float64(seg.Y)*cell
		if i == 0 {
			ui.FillRect(screen, x+1, y+1, cell-2, cell-2, ui.ColorSnakeHead)
			p.drawEyes(screen, x, y, snake.Direction)
			continue
		}
		alpha := math.Max(1-float64(i)*bodyFadeStep, bodyMinAlpha)
		ui.FillRect(screen, x+1, y+1, cell-2, cell-2, ui.Fade(ui.ColorSnakeBody, alpha))
	}
}

// drawEyes places two eyes on the leading side of the head cell
func (p *Playing) drawEyes(screen *ebiten.Image, x, y float64, dir entity.Direction) {
	cell := p.cellSize()
	size := math.Max(cell/6, 2)
	near, far := cell*0.25, cell*0.75
	front := cell*0.5 + float64(dir.X)*cell*0.2
	frontY := cell*0.5 + float64(dir.Y)*cell*0.2

	var eyes [2][2]float64
	if dir.X != 0 {
		eyes = [2][2]float64{{front, near}, {front, far}}
	} else {
		eyes = [2][2]float64{{near, frontY}, {far, frontY}}
	}
	for _, e := range eyes {
		ui.FillRect(screen, x+e[0]-size/2, y+e[1]-size/2, size, size, ui.ColorEye)
	}
}

func (p *Playing) drawFood(screen *ebiten.Image) {
	food, ok := p.session.Food()
	if !ok {
		return
	}
	cell := p.cellSize()
	cx := float64(food.Position.X)*cell + cell/2
	cy := float64(food.Position.Y)*cell + cell/2
	ui.DrawGlow(screen, cx, cy, cell/2-2, ui.ColorFoodGlow)
	vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(cell/2-2), ui.ColorFood, true)
}

func (p *Playing) drawHUD(screen *ebiten.Image, st state.GameState) {
	ui.DrawText(screen, fmt.Sprintf("Score: %d", p.session.Score()), 20, 40, ui.SizeLarge, ui.ColorScore, ui.AlignStart)

	if st.Active() {
		ui.DrawPauseIcon(screen, p.pauseButton, st == state.StatePaused)
	}
	ui.DrawAudioIcon(screen, p.audioButton, p.ctx.Audio.MusicEnabled())
}

func (p *Playing) drawOverlay(screen *ebiten.Image, title string, titleColor color.Color, hint string) {
	cx, cy := float64(p.ctx.ScreenWidth)/2, float64(p.ctx.ScreenHeight)/2
	ui.FillScreen(screen, ui.ColorOverlay)
	ui.DrawText(screen, title, cx, cy-20, ui.SizeLarge, titleColor, ui.AlignCenter)
	ui.DrawText(screen, hint, cx, cy+20, ui.SizeNormal, ui.ColorSoft, ui.AlignCenter)
}

func (p *Playing) drawGameOver(screen *ebiten.Image) {
	cx, cy := float64(p.ctx.ScreenWidth)/2, float64(p.ctx.ScreenHeight)/2
	ui.FillScreen(screen, ui.ColorOverlay)

	ui.DrawText(screen, "Game Over", cx, cy-60, ui.SizeTitle, ui.ColorDanger, ui.AlignCenter)
	ui.DrawText(screen, fmt.Sprintf("Final Score: %d", p.session.Score()), cx, cy, ui.SizeLarge, ui.ColorScore, ui.AlignCenter)
	if p.newHigh {
		ui.DrawText(screen, "New Best!", cx, cy+28, ui.SizeNormal, ui.ColorSnakeHead, ui.AlignCenter)
	}
	ui.DrawText(screen, "Tap to play again", cx, cy+60, ui.SizeNormal, ui.ColorSoft, ui.AlignCenter)

	ui.DrawButton(screen, p.menuButton)
	bx, by := p.menuButton.Center()
	ui.DrawText(screen, "Menu", bx, by, ui.SizeNormal, ui.ColorWhite, ui.AlignCenter)
}
