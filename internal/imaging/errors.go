package imaging

// ImagingError is a custom error type for image processing errors
type ImagingError string

// Error implements the error interface
func (e ImagingError) Error() string {
	return string(e)
}

const (
	ErrTemplateMissing   ImagingError = "template image missing or unreadable"
	ErrMaskMismatch      ImagingError = "mask size does not match template"
	ErrUnknownMethod     ImagingError = "unknown template match method"
	ErrDecodeFailed      ImagingError = "source image could not be decoded"
	ErrTemplateTooLarge  ImagingError = "template larger than source image"
	ErrWriteFailed       ImagingError = "image could not be written"
	ErrInvalidThumbScale ImagingError = "thumbnail scale must be in (0, 1]"
)
