package game

// GameError is a custom error type for sequencing errors
type GameError string

// Error implements the error interface
func (e GameError) Error() string {
	return string(e)
}

// Define errors
const (
	ErrInvalidState  GameError = "operation not allowed in current state"
	ErrNoShooters    GameError = "at least one shooter is required"
	ErrNoGames       GameError = "at least one game is required"
	ErrNilConfig     GameError = "config cannot be nil"
	ErrNilLedger     GameError = "ledger cannot be nil"
	ErrNilCapture    GameError = "capture service cannot be nil"
	ErrNilExtractor  GameError = "extractor cannot be nil"
	ErrNilPlayer     GameError = "player cannot be nil"
	ErrNilScorer     GameError = "scorer cannot be nil"
	ErrNilClock      GameError = "clock cannot be nil"
	ErrInvalidArrows GameError = "arrows per player must be at least 1"
)
