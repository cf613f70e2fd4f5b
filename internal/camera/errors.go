package camera

// CameraError is a custom error type for camera errors
type CameraError string

// Error implements the error interface
func (e CameraError) Error() string {
	return string(e)
}

const (
	ErrDeviceUnavailable CameraError = "camera device unavailable"
	ErrEmptyFrame        CameraError = "camera returned an empty frame"
	ErrClosed            CameraError = "camera is closed"
)
