package replay

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/younwookim/snake/internal/application/session"
	"github.com/younwookim/snake/internal/application/system"
	"github.com/younwookim/snake/internal/domain/entity"
)

// Recorder captures the intents and frame deltas of one game scene
type Recorder struct {
	data      ReplayData
	recording bool
	frame     int
}

// NewRecorder creates a new recorder for a session seeded with seed
func NewRecorder(seed int64, grid entity.Grid, rules session.Rules) *Recorder {
	return &Recorder{
		data: ReplayData{
			Version:   FormatVersion,
			Seed:      seed,
			GridW:     grid.Width,
			GridH:     grid.Height,
			Rules:     FromSessionRules(rules),
			StartTime: time.Now().Format(time.RFC3339),
			Frames:    make([]FrameInput, 0, 3600), // Pre-allocate for ~1 minute at 60fps
		},
		recording: true,
	}
}

// RecordFrame records one frame: the intents applied, then the update delta
func (r *Recorder) RecordFrame(dt time.Duration, intents []system.Intent) {
	if !r.recording {
		return
	}

	fi := FrameInput{F: r.frame, DT: dt.Nanoseconds()}
	for _, in := range intents {
		fi.A = append(fi.A, in.String())
	}

	r.data.Frames = append(r.data.Frames, fi)
	r.frame++
}

// SetOutcome stores the state reached so far for later verification
func (r *Recorder) SetOutcome(o Outcome) {
	r.data.Final = &o
}

// Save writes the replay to filename. The file is replaced in one rename so
// a game over mid-write never leaves a truncated recording behind.
func (r *Recorder) Save(filename string) error {
	if len(r.data.Frames) == 0 {
		return fmt.Errorf("no frames to save")
	}

	body, err := json.MarshalIndent(r.data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode replay: %w", err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(filename), ".replay-*")
	if err != nil {
		return fmt.Errorf("failed to create file: %w", err)
	}
	if _, err := tmp.Write(body); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write replay: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to write replay: %w", err)
	}
	if err := os.Rename(tmp.Name(), filename); err != nil {
		_ = os.Remove(tmp.Name())
		return fmt.Errorf("failed to replace %s: %w", filename, err)
	}
	return nil
}

// Stop ends recording; later frames are dropped
func (r *Recorder) Stop() {
	r.recording = false
}

// IsRecording reports whether frames are still being captured
func (r *Recorder) IsRecording() bool {
	return r.recording
}

// FrameCount returns how many frames were captured
func (r *Recorder) FrameCount() int {
	return len(r.data.Frames)
}

// Data returns the replay data recorded so far
func (r *Recorder) Data() ReplayData {
	return r.data
}

// GenerateFilename names a recording after the current local time
func GenerateFilename() string {
	return fmt.Sprintf("snake_%s.json", time.Now().Format("20060102_150405"))
}
