package state

// GameState represents the current state of the game
type GameState int

const (
	StateTitleScreen GameState = iota
	StateInstructions
	StateCutscene
	StatePlay
	StatePause
	StateGameOver
	StateVictory
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateTitleScreen:
		return "TitleScreen"
	case StateInstructions:
		return "Instructions"
	case StateCutscene:
		return "Cutscene"
	case StatePlay:
		return "Play"
	case StatePause:
		return "Pause"
	case StateGameOver:
		return "GameOver"
	case StateVictory:
		return "Victory"
	default:
		return "Unknown"
	}
}

// Terminal reports whether the run has ended and waits for a restart
func (s GameState) Terminal() bool {
	return s == StateGameOver || s == StateVictory
}
