package models

// SequenceState represents where the session sequencer currently is
type SequenceState string

const (
	// SequenceStateAwaitingStart indicates no session has been started yet
	SequenceStateAwaitingStart SequenceState = "awaiting_start"

	// SequenceStateRoundActive indicates a shooter is playing a game video
	SequenceStateRoundActive SequenceState = "round_active"

	// SequenceStateRoundBetween indicates the hand-over between two rounds
	SequenceStateRoundBetween SequenceState = "round_between"

	// SequenceStateComplete indicates every shooter has played every selected game
	SequenceStateComplete SequenceState = "complete"
)

// Cursor locates the active round and the next arrow slot within it
type Cursor struct {
	GameIndex    int `json:"game_index"`
	ShooterIndex int `json:"shooter_index"`

	// ArrowNumber is 1-based; ArrowsPerPlayer+1 means the shooter is saturated
	ArrowNumber int `json:"arrow_number"`
}
