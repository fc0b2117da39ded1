package replay

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/younwookim/snake/internal/application/session"
	"github.com/younwookim/snake/internal/application/system"
	"github.com/younwookim/snake/internal/domain/entity"
)

// Frame is one decoded frame of a recording
type Frame struct {
	DT      time.Duration
	Intents []system.Intent
}

// Replayer handles input playback from recorded data
type Replayer struct {
	data   ReplayData
	frames []Frame
	frame  int
}

// NewReplayer decodes every frame of data up front
func NewReplayer(data ReplayData) (*Replayer, error) {
	frames := make([]Frame, len(data.Frames))
	for i, fi := range data.Frames {
		frames[i].DT = fi.Delta()
		for _, a := range fi.A {
			in, err := system.ParseIntent(a)
			if err != nil {
				return nil, fmt.Errorf("frame %d: %w", fi.F, err)
			}
			frames[i].Intents = append(frames[i].Intents, in)
		}
	}
	return &Replayer{data: data, frames: frames}, nil
}

// LoadReplay loads replay data from a file
func LoadReplay(filename string) (*ReplayData, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	var data ReplayData
	decoder := json.NewDecoder(file)
	if err := decoder.Decode(&data); err != nil {
		return nil, fmt.Errorf("failed to decode replay: %w", err)
	}
	if data.Version != FormatVersion {
		return nil, fmt.Errorf("unsupported replay version %q, want %q", data.Version, FormatVersion)
	}
	if data.GridW <= 0 || data.GridH <= 0 {
		return nil, fmt.Errorf("invalid grid %dx%d", data.GridW, data.GridH)
	}

	return &data, nil
}

// Next returns the current frame and advances
func (r *Replayer) Next() (Frame, bool) {
	if r.frame >= len(r.frames) {
		return Frame{}, false
	}
	f := r.frames[r.frame]
	r.frame++
	return f, true
}

// CurrentFrame returns the current frame number
func (r *Replayer) CurrentFrame() int {
	return r.frame
}

// TotalFrames returns the total number of frames
func (r *Replayer) TotalFrames() int {
	return len(r.frames)
}

// Seed returns the seed used for the replay
func (r *Replayer) Seed() int64 {
	return r.data.Seed
}

// Grid returns the recorded playfield
func (r *Replayer) Grid() entity.Grid {
	return entity.NewGrid(r.data.GridW, r.data.GridH)
}

// Expected returns the recorded outcome, if any
func (r *Replayer) Expected() (Outcome, bool) {
	if r.data.Final == nil {
		return Outcome{}, false
	}
	return *r.data.Final, true
}

// Reset resets the replayer to the beginning
func (r *Replayer) Reset() {
	r.frame = 0
}

// NewSession creates a session configured exactly like the recorded one
func (r *Replayer) NewSession(hooks session.Hooks) *session.Session {
	rng := rand.New(rand.NewSource(r.data.Seed))
	return session.New(r.Grid(), r.data.Rules.SessionRules(), rng, hooks)
}

// Run feeds every remaining frame to s and returns the outcome
func (r *Replayer) Run(s *session.Session) Outcome {
	for {
		f, ok := r.Next()
		if !ok {
			break
		}
		for _, in := range f.Intents {
			s.Apply(in)
		}
		s.Update(f.DT)
	}
	return OutcomeOf(s)
}

// Verify replays the recording on a fresh session and compares the result
// with the recorded outcome
func (r *Replayer) Verify() (Outcome, error) {
	r.Reset()
	got := r.Run(r.NewSession(session.Hooks{}))

	want, ok := r.Expected()
	if !ok {
		return got, nil
	}
	if got != want {
		return got, fmt.Errorf("replay diverged: got %+v, recorded %+v", got, want)
	}
	return got, nil
}

// CreateTestReplayData creates replay data for testing: frames of dt each
// with no input
func CreateTestReplayData(frames int, dt time.Duration) ReplayData {
	data := ReplayData{
		Version:   FormatVersion,
		Seed:      12345,
		GridW:     10,
		GridH:     10,
		Rules:     FromSessionRules(session.DefaultRules()),
		StartTime: time.Now().Format(time.RFC3339),
		Frames:    make([]FrameInput, frames),
	}

	for i := 0; i < frames; i++ {
		data.Frames[i] = FrameInput{F: i, DT: dt.Nanoseconds()}
	}

	return data
}
