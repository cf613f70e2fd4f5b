package audio

// AudioError is a custom error type for audio input errors
type AudioError string

// Error implements the error interface
func (e AudioError) Error() string {
	return string(e)
}

const (
	ErrNilSource       AudioError = "block source cannot be nil"
	ErrInvalidTuning   AudioError = "detector tuning requires a positive block time and threshold"
	ErrNoInputDevice   AudioError = "no such audio input device"
	ErrStreamNotOpen   AudioError = "audio stream is not open"
	ErrDeviceReadError AudioError = "audio device read failed"
	ErrNotReopenable   AudioError = "block source cannot switch devices"
)
