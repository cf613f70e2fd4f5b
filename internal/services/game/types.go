package game

import (
	"log/slog"
	"time"

	"github.com/KirkDiggler/bowcinema/internal/common/clock"
	"github.com/KirkDiggler/bowcinema/internal/imaging"
	"github.com/KirkDiggler/bowcinema/internal/models"
	"github.com/KirkDiggler/bowcinema/internal/player"
	"github.com/KirkDiggler/bowcinema/internal/services/capture"
	"github.com/KirkDiggler/bowcinema/internal/services/ledger"
	"github.com/KirkDiggler/bowcinema/internal/services/scoring"
)

// Config holds the collaborators and rules of the sequencer
type Config struct {
	Ledger    ledger.Service
	Capture   capture.Service
	Extractor imaging.Extractor
	Player    player.Player
	Scorer    scoring.Scorer
	Clock     clock.Clock

	// ArrowsPerPlayer caps the recorded arrows per shooter per game
	ArrowsPerPlayer int

	// SessionPrefix starts every session id, e.g. BogenKino_2025-06-14_18-00
	SessionPrefix string

	// CamShotsDir and ResultsDir are the roots of the per-session directories
	CamShotsDir string
	ResultsDir  string

	// PlaceholderCrop is recorded when extraction fails
	PlaceholderCrop string

	Points models.PointScale
	Logger *slog.Logger
}

// StartInput selects the roster and the games of a session
type StartInput struct {
	Shooters []string
	Games    []string
}

// StartOutput identifies the new session
type StartOutput struct {
	SessionID string
	ImageDir  string
	ResultDir string
}

// RoundOutput reports where the sequencer is after a transition
type RoundOutput struct {
	// Advanced is false when CheckRound found the round still running
	Advanced bool
	State    models.SequenceState
	Cursor   models.Cursor
	Shooter  string
	Game     string
}

// BangOutcome says what happened to a bang
type BangOutcome string

const (
	// BangOutcomeRecorded means the frame and crop were stored for the arrow
	BangOutcomeRecorded BangOutcome = "recorded"

	// BangOutcomeCaptureFailed means the arrow slot was used without a frame
	BangOutcomeCaptureFailed BangOutcome = "capture_failed"

	// BangOutcomeExtractFailed means the frame was stored with the no-hit crop
	BangOutcomeExtractFailed BangOutcome = "extract_failed"

	// BangOutcomeIgnored means the shooter already used every arrow
	BangOutcomeIgnored BangOutcome = "ignored"
)

// BangOutput describes the processed bang
type BangOutput struct {
	Outcome     BangOutcome
	Shooter     string
	Game        string
	ArrowNumber int
	FramePath   string
	CropPath    string
	Duration    time.Duration
}

// StatusOutput is a read-only view of the sequencer
type StatusOutput struct {
	SessionID     string
	State         models.SequenceState
	Cursor        models.Cursor
	Shooter       string
	Game          string
	Shooters      []string
	Games         []string
	RemainingTime time.Duration
}
