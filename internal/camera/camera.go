// Package camera grabs still frames from the venue camera.
package camera

//go:generate mockgen -package=mocks -destination=mocks/mock_camera.go github.com/KirkDiggler/bowcinema/internal/camera Camera

import (
	"context"
	"image"
)

// Camera produces one still frame per call.
type Camera interface {
	// GrabFrame blocks until a frame is read or ctx is done
	GrabFrame(ctx context.Context) (image.Image, error)

	// Close releases the device
	Close() error
}
