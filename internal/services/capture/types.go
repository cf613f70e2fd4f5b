package capture

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/bowcinema/internal/camera"
	"github.com/KirkDiggler/bowcinema/internal/common/clock"
	"github.com/KirkDiggler/bowcinema/internal/imaging"
)

// Pauser is the part of the player the capture needs
type Pauser interface {
	Pause()
	Resume()
}

// Config holds the collaborators and settings of the capture service
type Config struct {
	Camera camera.Camera
	Player Pauser
	Store  imaging.FrameStore
	Clock  clock.Clock

	// Root is the camera image directory; frames go to Root/<session id>/
	Root string

	// Format is the image file extension without the dot
	Format string

	// SettleDelay is slept before and after the grab
	SettleDelay time.Duration

	// GrabTimeout bounds a single camera read; zero disables the guard
	GrabTimeout time.Duration

	Logger *slog.Logger
}

// CaptureInput identifies the round the frame belongs to
type CaptureInput struct {
	SessionID  string
	GameName   string
	PlayerName string
}

// CaptureOutput describes the stored frame
type CaptureOutput struct {
	// FileName is the base name, reused for the crop in the result directory
	FileName   string
	FramePath  string
	CapturedAt time.Time
}
