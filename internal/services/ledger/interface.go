package ledger

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/bowcinema/internal/services/ledger Service

import (
	"context"

	"github.com/KirkDiggler/bowcinema/internal/models"
	"github.com/KirkDiggler/bowcinema/internal/services/scoring"
)

// Service holds the score grid of the live session
type Service interface {
	// InitSession allocates the full shooter x game x arrow grid
	InitSession(ctx context.Context, input *InitSessionInput) (*InitSessionOutput, error)

	// RecordCapture stores the frame, crop and automatic points of a 1-based arrow
	RecordCapture(ctx context.Context, input *RecordCaptureInput) error

	// SetManualOverride stores an override for a 0-based arrow and recomputes
	SetManualOverride(ctx context.Context, input *SetManualOverrideInput) (*SetManualOverrideOutput, error)

	// Recompute derives final points and totals from the current records
	Recompute(ctx context.Context) error

	// ApplyScores runs the scorer over every captured crop, then recomputes
	ApplyScores(ctx context.Context, scorer scoring.Scorer) error

	// Snapshot returns a deep copy of the session tree
	Snapshot(ctx context.Context) (*models.SessionRecord, error)

	// CloseSession writes the text report and clears the session
	CloseSession(ctx context.Context) (*CloseSessionOutput, error)

	// Clear drops the live session without writing anything
	Clear(ctx context.Context)
}
