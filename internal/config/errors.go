package config

// ConfigError is returned when settings are missing or out of range
type ConfigError string

func (e ConfigError) Error() string {
	return string(e)
}

const (
	ErrInvalidConfig ConfigError = "invalid configuration"
)
