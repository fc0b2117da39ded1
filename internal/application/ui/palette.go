package ui

import "image/color"

// Colors for rendering
var (
	ColorBackground = color.RGBA{0x1B, 0x43, 0x32, 0xFF}
	ColorGrid       = color.RGBA{0x2D, 0x6A, 0x4F, 0x66}
	ColorSnakeBody  = color.RGBA{0x40, 0x91, 0x6C, 0xFF}
	ColorSnakeHead  = color.RGBA{0x52, 0xB7, 0x88, 0xFF}
	ColorFood       = color.RGBA{0xFF, 0xD6, 0x0A, 0xFF}
	ColorFoodGlow   = color.RGBA{0xFF, 0xD6, 0x0A, 0x50}
	ColorScore      = color.RGBA{0xFF, 0xD6, 0x0A, 0xFF}
	ColorSoft       = color.RGBA{0xB7, 0xE4, 0xC7, 0xFF}
	ColorDanger     = color.RGBA{0xFF, 0x6B, 0x6B, 0xFF}
	ColorWhite      = color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}
	ColorEye        = color.RGBA{0x08, 0x1C, 0x15, 0xFF}
	ColorButton     = color.RGBA{0x40, 0x91, 0x6C, 0xCC}
	ColorOverlay    = color.RGBA{0x00, 0x00, 0x00, 0xB3}
)

// Fade returns c with its alpha multiplied by a in [0, 1]
func Fade(c color.RGBA, a float64) color.RGBA {
	if a < 0 {
		a = 0
	}
	if a > 1 {
		a = 1
	}
	// Premultiplied: scale every channel
	return color.RGBA{
		R: uint8(float64(c.R) * a),
		G: uint8(float64(c.G) * a),
		B: uint8(float64(c.B) * a),
		A: uint8(float64(c.A) * a),
	}
}
