// Package storage persists the high score, recent scores, audio settings and
// the history of finished sessions.
package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Record keys
const (
	KeyHighScore     = "highScore"
	KeyRecentScores  = "recentScores"
	KeyAudioSettings = "audioSettings"
)

// ErrNotFound is returned by KV.Get for an absent key
var ErrNotFound = errors.New("storage: key not found")

// KV is a synchronous key/value store
type KV interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte) error
}

// SessionLog keeps the history of finished sessions
type SessionLog interface {
	AppendSession(rec SessionRecord) error
	// Sessions returns up to limit records, newest first
	Sessions(limit int) ([]SessionRecord, error)
	CountSessions() (int, error)
}

// Store is the full persistence surface used by the app
type Store interface {
	KV
	SessionLog
	Close() error
}

// SessionRecord describes one finished session
type SessionRecord struct {
	ID        string
	Score     int
	FoodEaten int
	Length    int
	Cause     string
	StartedAt time.Time
	EndedAt   time.Time
}

// NewSessionRecord stamps a record with a fresh id
func NewSessionRecord(score, foodEaten, length int, cause string, startedAt, endedAt time.Time) SessionRecord {
	return SessionRecord{
		ID:        uuid.NewString(),
		Score:     score,
		FoodEaten: foodEaten,
		Length:    length,
		Cause:     cause,
		StartedAt: startedAt,
		EndedAt:   endedAt,
	}
}

// Duration returns how long the session lasted
func (r SessionRecord) Duration() time.Duration {
	return r.EndedAt.Sub(r.StartedAt)
}

// LoadJSON decodes the record stored under key into v.
// A missing key yields an error matching ErrNotFound.
func LoadJSON(kv KV, key string, v any) error {
	data, err := kv.Get(key)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return fmt.Errorf("failed to decode %s: %w", key, err)
	}
	return nil
}

// SaveJSON encodes v and stores it under key
func SaveJSON(kv KV, key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", key, err)
	}
	if err := kv.Set(key, data); err != nil {
		return fmt.Errorf("failed to save %s: %w", key, err)
	}
	return nil
}
