package ledger

import (
	"log/slog"

	"github.com/KirkDiggler/bowcinema/internal/common/clock"
	"github.com/KirkDiggler/bowcinema/internal/common/uuid"
	"github.com/KirkDiggler/bowcinema/internal/models"
)

// Config holds the collaborators of the ledger
type Config struct {
	UUID  uuid.UUID
	Clock clock.Clock

	// Points is the allowed point scale for automatic and manual values
	Points models.PointScale

	// PlaceholderCrop is the no-hit image every arrow slot starts with
	PlaceholderCrop string

	Logger *slog.Logger
}

// InitSessionInput describes the grid to allocate
type InitSessionInput struct {
	SessionID       string
	Shooters        []string
	Games           []string
	ArrowsPerPlayer int
	ImageDir        string
	ResultDir       string
}

// InitSessionOutput is returned after the grid is allocated
type InitSessionOutput struct {
	Session *models.SessionRecord
}

// RecordCaptureInput stores one processed bang. ArrowNumber is 1-based.
type RecordCaptureInput struct {
	Shooter     string
	Game        string
	ArrowNumber int
	CamImage    string
	CropImage   string
	AutoPoints  int
}

// SetManualOverrideInput sets the human-entered points. ArrowIndex is 0-based.
type SetManualOverrideInput struct {
	Shooter    string
	Game       string
	ArrowIndex int
	Points     int
}

// SetManualOverrideOutput carries the recomputed values touched by the override
type SetManualOverrideOutput struct {
	FinalPoints  int
	GameTotal    int
	ShooterTotal int
}

// CloseSessionOutput is returned after the report was written
type CloseSessionOutput struct {
	ReportPath string
	Session    *models.SessionRecord
}
