package capture

// CaptureError is a custom error type for capture errors
type CaptureError string

// Error implements the error interface
func (e CaptureError) Error() string {
	return string(e)
}

const (
	ErrCaptureFailed CaptureError = "camera capture failed"
	ErrInvalidInput  CaptureError = "capture input requires session, game and player"
	ErrNilConfig     CaptureError = "config cannot be nil"
	ErrNilCamera     CaptureError = "camera cannot be nil"
	ErrNilPlayer     CaptureError = "player cannot be nil"
	ErrNilStore      CaptureError = "frame store cannot be nil"
	ErrNilClock      CaptureError = "clock cannot be nil"
)
