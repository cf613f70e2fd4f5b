package discord

// DiscordError is a custom error type for publisher errors
type DiscordError string

// Error implements the error interface
func (e DiscordError) Error() string {
	return string(e)
}

const (
	ErrNilConfig     DiscordError = "config cannot be nil"
	ErrEmptyToken    DiscordError = "token cannot be empty"
	ErrEmptyChannel  DiscordError = "channel ID cannot be empty"
	ErrNilSession    DiscordError = "session cannot be nil"
	ErrPublishFailed DiscordError = "failed to publish session"
)
