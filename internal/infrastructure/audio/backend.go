package audio

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// Channel is one playable sound
type Channel interface {
	// Play starts from the beginning
	Play() error
	// Stop halts playback and rewinds
	Stop() error
	SetVolume(v float64)
	Close() error
}

// Backend creates channels from 16-bit little-endian stereo PCM
type Backend interface {
	NewChannel(pcm []byte, loop bool) (Channel, error)
	SampleRate() int
}

// EbitenBackend plays through the ebiten audio context
type EbitenBackend struct {
	ctx *audio.Context
}

// NewEbitenBackend returns a backend over the process-wide audio context,
// creating it at sampleRate if none exists yet.
func NewEbitenBackend(sampleRate int) (*EbitenBackend, error) {
	ctx := audio.CurrentContext()
	if ctx == nil {
		ctx = audio.NewContext(sampleRate)
	}
	if ctx.SampleRate() != sampleRate {
		return nil, fmt.Errorf("audio context already running at %d Hz, want %d Hz", ctx.SampleRate(), sampleRate)
	}
	return &EbitenBackend{ctx: ctx}, nil
}

// SampleRate returns the context's sample rate
func (b *EbitenBackend) SampleRate() int {
	return b.ctx.SampleRate()
}

// NewChannel creates a player for pcm. Looping channels repeat forever.
func (b *EbitenBackend) NewChannel(pcm []byte, loop bool) (Channel, error) {
	if len(pcm) == 0 {
		return nil, errors.New("empty pcm")
	}

	var (
		player *audio.Player
		err    error
	)
	if loop {
		player, err = b.ctx.NewPlayer(audio.NewInfiniteLoop(bytes.NewReader(pcm), int64(len(pcm))))
	} else {
		player = b.ctx.NewPlayerFromBytes(pcm)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to create player: %w", err)
	}
	return &ebitenChannel{player: player}, nil
}

type ebitenChannel struct {
	player *audio.Player
}

func (c *ebitenChannel) Play() error {
	if err := c.player.Rewind(); err != nil {
		return fmt.Errorf("failed to rewind: %w", err)
	}
	c.player.Play()
	return nil
}

func (c *ebitenChannel) Stop() error {
	c.player.Pause()
	if err := c.player.Rewind(); err != nil {
		return fmt.Errorf("failed to rewind: %w", err)
	}
	return nil
}

func (c *ebitenChannel) SetVolume(v float64) {
	c.player.SetVolume(v)
}

func (c *ebitenChannel) Close() error {
	return c.player.Close()
}
