package player

// PlayerError is a custom error type for playback errors
type PlayerError string

// Error implements the error interface
func (e PlayerError) Error() string {
	return string(e)
}

const (
	ErrGameNotFound PlayerError = "game directory not found"
	ErrNoVideos     PlayerError = "no videos for game"
	ErrOpenFailed   PlayerError = "video could not be opened"
)
