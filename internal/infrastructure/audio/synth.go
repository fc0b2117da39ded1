package audio

import (
	"encoding/binary"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// Track names a background music loop; tracks share scene names
type Track string

const (
	TrackMenu     Track = "menu"
	TrackGame     Track = "game"
	TrackGameOver Track = "gameOver"
)

// Effect names a one-shot sound cue
type Effect string

const (
	EffectEat      Effect = "eat"
	EffectGameOver Effect = "gameOver"
	EffectClick    Effect = "click"
)

// Tracks lists every music track
var Tracks = []Track{TrackMenu, TrackGame, TrackGameOver}

// Effects lists every sound cue
var Effects = []Effect{EffectEat, EffectGameOver, EffectClick}

// waveform selects an oscillator shape
type waveform int

const (
	waveSine waveform = iota
	waveSquare
	waveTriangle
)

// tone is a fixed-length oscillator
type tone struct {
	freq     float64
	phase    float64
	wave     waveform
	rate     beep.SampleRate
	position int
	length   int
}

func newTone(freq float64, d time.Duration, wave waveform, rate beep.SampleRate) *tone {
	return &tone{freq: freq, wave: wave, rate: rate, length: rate.N(d)}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.position >= t.length {
		return 0, false
	}
	n := 0
	for i := range samples {
		if t.position >= t.length {
			break
		}
		var v float64
		switch t.wave {
		case waveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case waveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case waveTriangle:
			v = 4*math.Abs(t.phase-0.5) - 1
		}
		samples[i][0] = v
		samples[i][1] = v

		t.phase += t.freq / float64(t.rate)
		t.phase -= math.Floor(t.phase)
		t.position++
		n++
	}
	return n, true
}

func (t *tone) Err() error { return nil }

// decay shapes a streamer with a linear attack and exponential release
type decay struct {
	s        beep.Streamer
	attack   int
	rate     float64
	position int
}

func withDecay(s beep.Streamer, attack time.Duration, halfLife time.Duration, sr beep.SampleRate) beep.Streamer {
	return &decay{
		s:      s,
		attack: sr.N(attack),
		rate:   math.Ln2 / float64(sr.N(halfLife)),
	}
}

func (d *decay) Stream(samples [][2]float64) (int, bool) {
	n, ok := d.s.Stream(samples)
	for i := 0; i < n; i++ {
		gain := math.Exp(-d.rate * float64(d.position))
		if d.position < d.attack {
			gain *= float64(d.position) / float64(d.attack)
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.s.Err() }

// note is one step of a melody; zero frequency is a rest
type note struct {
	freq float64
	beat float64
}

// melody joins notes into one streamer
func melody(notes []note, beat time.Duration, wave waveform, rate beep.SampleRate) beep.Streamer {
	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		d := time.Duration(float64(beat) * n.beat)
		if n.freq == 0 {
			parts = append(parts, beep.Silence(rate.N(d)))
			continue
		}
		parts = append(parts, withDecay(newTone(n.freq, d, wave, rate), 5*time.Millisecond, d/2, rate))
	}
	return beep.Seq(parts...)
}

// gain scales a streamer by a linear factor
func gain(s beep.Streamer, level float64) beep.Streamer {
	if level <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(level)}
}

// Note frequencies (Hz)
const (
	noteC4 = 261.63
	noteE4 = 329.63
	noteG4 = 392.00
	noteA4 = 440.00
	noteB4 = 493.88
	noteC5 = 523.25
	noteD5 = 587.33
	noteE5 = 659.25
	noteG5 = 783.99
	noteA5 = 880.00
	noteC3 = 130.81
	noteG3 = 196.00
	noteA3 = 220.00
	noteF3 = 174.61
)

func musicStreamer(track Track, rate beep.SampleRate) beep.Streamer {
	switch track {
	case TrackMenu:
		lead := melody([]note{
			{noteC5, 1}, {noteE5, 1}, {noteG5, 1}, {noteE5, 1},
			{noteD5, 1}, {noteC5, 1}, {noteA4, 2},
			{noteG4, 1}, {noteA4, 1}, {noteC5, 1}, {noteD5, 1},
			{noteE5, 2}, {0, 2},
		}, 250*time.Millisecond, waveTriangle, rate)
		bass := melody([]note{
			{noteC3, 4}, {noteA3, 4}, {noteF3, 4}, {noteG3, 4},
		}, 250*time.Millisecond, waveSine, rate)
		return beep.Mix(gain(lead, 0.35), gain(bass, 0.25))
	case TrackGame:
		return gain(melody([]note{
			{noteE4, 1}, {noteG4, 1}, {noteA4, 1}, {noteG4, 1},
			{noteE4, 1}, {noteG4, 1}, {noteB4, 1}, {noteA4, 1},
			{noteC4, 1}, {noteE4, 1}, {noteG4, 1}, {noteE4, 1},
			{noteA4, 2}, {0, 2},
		}, 160*time.Millisecond, waveSquare, rate), 0.15)
	case TrackGameOver:
		return gain(melody([]note{
			{noteG4, 1}, {noteE4, 1}, {noteC4, 1}, {noteG3, 3}, {0, 2},
		}, 300*time.Millisecond, waveTriangle, rate), 0.35)
	default:
		return beep.Silence(0)
	}
}

func effectStreamer(effect Effect, rate beep.SampleRate) beep.Streamer {
	switch effect {
	case EffectEat:
		return gain(beep.Seq(
			withDecay(newTone(noteA5, 50*time.Millisecond, waveSquare, rate), 2*time.Millisecond, 30*time.Millisecond, rate),
			withDecay(newTone(noteA5*1.5, 70*time.Millisecond, waveSquare, rate), 2*time.Millisecond, 40*time.Millisecond, rate),
		), 0.3)
	case EffectGameOver:
		return gain(melody([]note{
			{noteE4, 1}, {noteC4, 1}, {noteA3, 1}, {noteF3, 3},
		}, 120*time.Millisecond, waveSquare, rate), 0.35)
	case EffectClick:
		return gain(withDecay(newTone(1200, 25*time.Millisecond, waveSine, rate), time.Millisecond, 8*time.Millisecond, rate), 0.5)
	default:
		return beep.Silence(0)
	}
}

// MusicPCM renders track as 16-bit little-endian stereo PCM
func MusicPCM(track Track, sampleRate int) []byte {
	return Render(musicStreamer(track, beep.SampleRate(sampleRate)))
}

// EffectPCM renders effect as 16-bit little-endian stereo PCM
func EffectPCM(effect Effect, sampleRate int) []byte {
	return Render(effectStreamer(effect, beep.SampleRate(sampleRate)))
}

// Render drains s into 16-bit little-endian stereo PCM, clipping to [-1, 1]
func Render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][0])))
			out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(buf[i][1])))
		}
		if !ok || n == 0 {
			break
		}
	}
	return out
}

func toInt16(v float64) int16 {
	v = math.Max(-1, math.Min(1, v))
	return int16(v * math.MaxInt16)
}
