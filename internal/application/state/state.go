package state

// GameState represents the current state of a play session
type GameState int

const (
	StateReady GameState = iota
	StatePlaying
	StatePaused
	StateGameOver
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateReady:
		return "Ready"
	case StatePlaying:
		return "Playing"
	case StatePaused:
		return "Paused"
	case StateGameOver:
		return "GameOver"
	default:
		return "Unknown"
	}
}

// Active reports whether the session is in play (running or paused)
func (s GameState) Active() bool {
	return s == StatePlaying || s == StatePaused
}
