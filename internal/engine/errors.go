package engine

// EngineError is a custom error type for engine errors
type EngineError string

// Error implements the error interface
func (e EngineError) Error() string {
	return string(e)
}

const (
	ErrNilConfig       EngineError = "config cannot be nil"
	ErrNilSequencer    EngineError = "sequencer cannot be nil"
	ErrNilLedger       EngineError = "ledger cannot be nil"
	ErrSessionRunning  EngineError = "session is still running"
	ErrUnknownCommand  EngineError = "unknown command"
	ErrInvalidInterval EngineError = "tick interval must be positive"
	ErrNoDevices       EngineError = "device switching is not available"
)
