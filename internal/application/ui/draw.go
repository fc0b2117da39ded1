package ui

import (
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// Face is the bitmap face every label is drawn with
var Face = text.NewGoXFace(basicfont.Face7x13)

// Text sizes as scale factors of the 13px face
const (
	SizeSmall  = 1.0
	SizeNormal = 1.5
	SizeLarge  = 2.0
	SizeTitle  = 4.0
)

// Align is horizontal text alignment relative to x
type Align = text.Align

const (
	AlignStart  = text.AlignStart
	AlignCenter = text.AlignCenter
	AlignEnd    = text.AlignEnd
)

// DrawText draws s with its line box vertically centered on y
func DrawText(screen *ebiten.Image, s string, x, y, scale float64, clr color.Color, align Align) {
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	op.PrimaryAlign = align
	op.SecondaryAlign = text.AlignCenter
	text.Draw(screen, s, Face, op)
}

// FillRect fills a rectangle
func FillRect(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.DrawFilledRect(screen, float32(x), float32(y), float32(w), float32(h), clr, false)
}

// FillScreen covers the whole screen with clr
func FillScreen(screen *ebiten.Image, clr color.Color) {
	b := screen.Bounds()
	FillRect(screen, float64(b.Min.X), float64(b.Min.Y), float64(b.Dx()), float64(b.Dy()), clr)
}

// DrawButton fills the button background
func DrawButton(screen *ebiten.Image, r Rect) {
	FillRect(screen, float64(r.X), float64(r.Y), float64(r.W), float64(r.H), ColorButton)
}

// DrawPauseIcon draws two bars while playing and a play triangle while paused
func DrawPauseIcon(screen *ebiten.Image, r Rect, paused bool) {
	DrawButton(screen, r)
	cx, cy := r.Center()
	if paused {
		// Stepped triangle pointing right
		for i := 0; i < 9; i++ {
			h := 18 - float64(i)*2
			FillRect(screen, cx-6+float64(i)*1.7, cy-h/2, 1.8, h, ColorWhite)
		}
		return
	}
	FillRect(screen, cx-8, cy-9, 5, 18, ColorWhite)
	FillRect(screen, cx+3, cy-9, 5, 18, ColorWhite)
}

// DrawAudioIcon draws a speaker with sound waves, crossed out when muted
func DrawAudioIcon(screen *ebiten.Image, r Rect, enabled bool) {
	DrawButton(screen, r)
	cx, cy := r.Center()

	FillRect(screen, cx-11, cy-4, 5, 8, ColorWhite)
	for i := 0; i < 6; i++ {
		h := 8 + float64(i)*2.4
		FillRect(screen, cx-6+float64(i), cy-h/2, 1.2, h, ColorWhite)
	}

	if !enabled {
		vector.StrokeLine(screen, float32(cx+3), float32(cy-6), float32(cx+12), float32(cy+6), 2, ColorDanger, true)
		vector.StrokeLine(screen, float32(cx+12), float32(cy-6), float32(cx+3), float32(cy+6), 2, ColorDanger, true)
		return
	}
	for i, radius := range []float64{5, 9} {
		strokeArc(screen, cx+1, cy, radius, math.Pi/4, 1.5+float32(i)*0.5, ColorWhite)
	}
}

// DrawGlow draws a soft round halo of concentric circles
func DrawGlow(screen *ebiten.Image, cx, cy, radius float64, clr color.RGBA) {
	for i := 3; i >= 1; i-- {
		r := radius * (1 + float64(i)*0.25)
		vector.DrawFilledCircle(screen, float32(cx), float32(cy), float32(r), Fade(clr, 0.35), true)
	}
}

// strokeArc approximates the arc of radius around (cx, cy) spanning
// [-half, half] radians with short line segments
func strokeArc(screen *ebiten.Image, cx, cy, radius, half float64, width float32, clr color.Color) {
	const segments = 6
	step := 2 * half / segments
	for i := 0; i < segments; i++ {
		a0 := -half + float64(i)*step
		a1 := a0 + step
		vector.StrokeLine(screen,
			float32(cx+radius*math.Cos(a0)), float32(cy+radius*math.Sin(a0)),
			float32(cx+radius*math.Cos(a1)), float32(cy+radius*math.Sin(a1)),
			width, clr, true)
	}
}
