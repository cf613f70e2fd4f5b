package ledger

// LedgerError is a custom error type for ledger errors
type LedgerError string

// Error implements the error interface
func (e LedgerError) Error() string {
	return string(e)
}

const (
	ErrNoSession            LedgerError = "no session initialized"
	ErrInvalidSession       LedgerError = "session needs an id, shooters, games and at least one arrow"
	ErrDuplicateName        LedgerError = "duplicate shooter or game name"
	ErrUnknownShooter       LedgerError = "shooter not in session"
	ErrUnknownGame          LedgerError = "game not in session"
	ErrArrowOutOfRange      LedgerError = "arrow number out of range"
	ErrArrowIndexOutOfRange LedgerError = "arrow index out of range"
	ErrInvalidPoints        LedgerError = "points not on the point scale"
	ErrNilConfig            LedgerError = "config cannot be nil"
	ErrNilUUIDGenerator     LedgerError = "UUID generator cannot be nil"
	ErrNilClock             LedgerError = "clock cannot be nil"
	ErrNilScorer            LedgerError = "scorer cannot be nil"
)
