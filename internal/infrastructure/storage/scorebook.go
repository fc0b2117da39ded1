package storage

import (
	"errors"
	"fmt"
	"log"
)

// RecentLimit is the default number of recent scores kept
const RecentLimit = 10

// ScoreBook owns the high score and recent-score records.
// The high score is read once and cached; writes go through immediately.
type ScoreBook struct {
	store       Store
	recentLimit int
	highScore   int
}

// NewScoreBook loads the cached high score from store.
// An absent or unreadable record starts the book at zero.
func NewScoreBook(store Store, recentLimit int) *ScoreBook {
	if recentLimit <= 0 {
		recentLimit = RecentLimit
	}
	b := &ScoreBook{store: store, recentLimit: recentLimit}

	if err := LoadJSON(store, KeyHighScore, &b.highScore); err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("[Storage] Failed to load high score: %v", err)
		}
		b.highScore = 0
	}
	if b.highScore < 0 {
		b.highScore = 0
	}
	return b
}

// HighScore returns the best score seen
func (b *ScoreBook) HighScore() int {
	return b.highScore
}

// RecentScores returns the stored recent scores, most recent first.
// Absent or malformed records yield an empty list.
func (b *ScoreBook) RecentScores() []int {
	var scores []int
	if err := LoadJSON(b.store, KeyRecentScores, &scores); err != nil {
		if !errors.Is(err, ErrNotFound) {
			log.Printf("[Storage] Failed to load recent scores: %v", err)
		}
		return []int{}
	}
	if len(scores) > b.recentLimit {
		scores = scores[:b.recentLimit]
	}
	return scores
}

// GamesPlayed returns the number of sessions in the history
func (b *ScoreBook) GamesPlayed() int {
	n, err := b.store.CountSessions()
	if err != nil {
		log.Printf("[Storage] Failed to count sessions: %v", err)
		return 0
	}
	return n
}

// History returns up to limit finished sessions, newest first
func (b *ScoreBook) History(limit int) ([]SessionRecord, error) {
	return b.store.Sessions(limit)
}

// SaveHighScore raises the high score to score when strictly greater and
// reports whether it did. The cache follows even if the write fails.
func (b *ScoreBook) SaveHighScore(score int) (bool, error) {
	if score <= b.highScore {
		return false, nil
	}
	b.highScore = score
	if err := SaveJSON(b.store, KeyHighScore, score); err != nil {
		return true, err
	}
	return true, nil
}

// AddRecentScore prepends score to the recent list, trimming it to the limit
func (b *ScoreBook) AddRecentScore(score int) error {
	recent := append([]int{score}, b.RecentScores()...)
	if len(recent) > b.recentLimit {
		recent = recent[:b.recentLimit]
	}
	return SaveJSON(b.store, KeyRecentScores, recent)
}

// RecordGameOver persists everything a finished session produces. Every
// step is attempted; the returned error joins whatever failed.
func (b *ScoreBook) RecordGameOver(rec SessionRecord) (newHigh bool, err error) {
	var errs []error

	newHigh, herr := b.SaveHighScore(rec.Score)
	if herr != nil {
		errs = append(errs, herr)
	}
	if rerr := b.AddRecentScore(rec.Score); rerr != nil {
		errs = append(errs, rerr)
	}
	if serr := b.store.AppendSession(rec); serr != nil {
		errs = append(errs, fmt.Errorf("failed to record session %s: %w", rec.ID, serr))
	}

	return newHigh, errors.Join(errs...)
}
