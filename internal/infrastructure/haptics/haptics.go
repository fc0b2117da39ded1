// Package haptics drives the device vibrator.
package haptics

import (
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

// Default pulse lengths
const (
	DefaultShort = 15 * time.Millisecond
	DefaultLong  = 400 * time.Millisecond
)

// Vibrator emits short and long pulses
type Vibrator interface {
	Short()
	Long()
}

// EbitenVibrator vibrates through ebiten.Vibrate. It does nothing on
// platforms without a vibrator.
type EbitenVibrator struct {
	short     time.Duration
	long      time.Duration
	magnitude float64
	vibrate   func(*ebiten.VibrateOptions)
}

// NewEbitenVibrator creates a vibrator with the given pulse lengths.
// Non-positive lengths fall back to the defaults.
func NewEbitenVibrator(short, long time.Duration) *EbitenVibrator {
	if short <= 0 {
		short = DefaultShort
	}
	if long <= 0 {
		long = DefaultLong
	}
	return &EbitenVibrator{
		short:     short,
		long:      long,
		magnitude: 1,
		vibrate:   ebiten.Vibrate,
	}
}

// Short emits the short pulse
func (v *EbitenVibrator) Short() {
	v.pulse(v.short)
}

// Long emits the long pulse
func (v *EbitenVibrator) Long() {
	v.pulse(v.long)
}

func (v *EbitenVibrator) pulse(d time.Duration) {
	v.vibrate(&ebiten.VibrateOptions{Duration: d, Magnitude: v.magnitude})
}

// Nop is a Vibrator that does nothing
type Nop struct{}

func (Nop) Short() {}

func (Nop) Long() {}
