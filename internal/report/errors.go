package report

// ReportError is a custom error type for report errors
type ReportError string

// Error implements the error interface
func (e ReportError) Error() string {
	return string(e)
}

const (
	ErrNilSession ReportError = "session cannot be nil"
	ErrNoShooters ReportError = "session has no shooters"
)
