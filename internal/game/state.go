// Package game provides the turn loop and the per-room encounters.
package game

// State represents where the game session stands.
type State int

const (
	// StatePlaying is the normal exploration state.
	StatePlaying State = iota
	// StateVictory means the treasure room was reached.
	StateVictory
	// StateDefeat means the player's health reached 0.
	StateDefeat
	// StateQuit means the player gave up with 'exit' or input ended.
	StateQuit
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StatePlaying:
		return "playing"
	case StateVictory:
		return "victory"
	case StateDefeat:
		return "defeat"
	case StateQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Outcome is the result of handling one command inside a room.
type Outcome int

const (
	// Continue keeps the player in the room, reading more commands.
	Continue Outcome = iota
	// Consumed ends the turn; the next turn starts wherever the player is.
	Consumed
	// GameOver ends the session.
	GameOver
)

// String returns a human-readable outcome name.
func (o Outcome) String() string {
	switch o {
	case Continue:
		return "continue"
	case Consumed:
		return "consumed"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}
