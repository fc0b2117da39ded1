// Package replay records and plays back the per-frame input of a play
// session. A session driven by the same seed, rules and frames reaches the
// same outcome, which makes recordings usable as regression checks.
package replay

import (
	"time"

	"github.com/younwookim/snake/internal/application/session"
)

// FormatVersion is written into every recording
const FormatVersion = "3.0"

// FrameInput records the input of a single frame
type FrameInput struct {
	F  int      `json:"f"`           // Frame number
	DT int64    `json:"dt"`          // Frame delta in nanoseconds
	A  []string `json:"a,omitempty"` // Intents applied before the update
}

// Delta returns the frame delta as a duration
func (f FrameInput) Delta() time.Duration {
	return time.Duration(f.DT)
}

// Rules mirrors session.Rules in milliseconds
type Rules struct {
	FoodPoints        int   `json:"foodPoints"`
	InitialIntervalMs int64 `json:"initialIntervalMs"`
	SpeedupStepMs     int64 `json:"speedupStepMs"`
	MinIntervalMs     int64 `json:"minIntervalMs"`
}

// FromSessionRules converts session rules for storage
func FromSessionRules(r session.Rules) Rules {
	return Rules{
		FoodPoints:        r.FoodPoints,
		InitialIntervalMs: r.InitialInterval.Milliseconds(),
		SpeedupStepMs:     r.SpeedupStep.Milliseconds(),
		MinIntervalMs:     r.MinInterval.Milliseconds(),
	}
}

// SessionRules converts back to session rules
func (r Rules) SessionRules() session.Rules {
	return session.Rules{
		FoodPoints:      r.FoodPoints,
		InitialInterval: time.Duration(r.InitialIntervalMs) * time.Millisecond,
		SpeedupStep:     time.Duration(r.SpeedupStepMs) * time.Millisecond,
		MinInterval:     time.Duration(r.MinIntervalMs) * time.Millisecond,
	}
}

// Outcome is the session state at the end of a recording
type Outcome struct {
	State     string `json:"state"`
	Score     int    `json:"score"`
	FoodEaten int    `json:"foodEaten"`
	Length    int    `json:"length"`
}

// OutcomeOf captures the current state of s
func OutcomeOf(s *session.Session) Outcome {
	return Outcome{
		State:     s.State().String(),
		Score:     s.Score(),
		FoodEaten: s.FoodEaten(),
		Length:    s.Snake().Len(),
	}
}

// ReplayData contains all data needed to replay a game session
type ReplayData struct {
	Version   string       `json:"version"`
	Seed      int64        `json:"seed"`
	GridW     int          `json:"gridW"`
	GridH     int          `json:"gridH"`
	Rules     Rules        `json:"rules"`
	StartTime string       `json:"startTime"`
	Frames    []FrameInput `json:"frames"`
	Final     *Outcome     `json:"final,omitempty"`
}
