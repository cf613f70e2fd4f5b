package api

// APIError is a custom error type for handler construction errors
type APIError string

// Error implements the error interface
func (e APIError) Error() string {
	return string(e)
}

const (
	ErrNilConfig     APIError = "config cannot be nil"
	ErrNilController APIError = "controller cannot be nil"
)
