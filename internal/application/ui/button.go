// Package ui holds the shared drawing helpers, palette and buttons.
package ui

// ButtonSize is the side of the square corner buttons
const ButtonSize = 40

// Rect is a screen-space rectangle
type Rect struct {
	X, Y, W, H int
}

// Contains reports whether (x, y) lies in the rectangle, edges included
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x <= r.X+r.W && y >= r.Y && y <= r.Y+r.H
}

// Center returns the rectangle's center point
func (r Rect) Center() (float64, float64) {
	return float64(r.X) + float64(r.W)/2, float64(r.Y) + float64(r.H)/2
}

// PauseButton is the top-right pause/resume control
func PauseButton(screenW int) Rect {
	return Rect{X: screenW - 60, Y: 20, W: ButtonSize, H: ButtonSize}
}

// AudioButton is the music toggle left of the pause button
func AudioButton(screenW int) Rect {
	return Rect{X: screenW - 120, Y: 20, W: ButtonSize, H: ButtonSize}
}
