package capture

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/bowcinema/internal/services/capture Service

import "context"

// Service grabs the still frame for one bang
type Service interface {
	// Capture pauses playback, grabs and stores a frame, then resumes playback
	Capture(ctx context.Context, input *CaptureInput) (*CaptureOutput, error)
}
