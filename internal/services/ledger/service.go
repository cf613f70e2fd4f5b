package ledger

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"sync"

	"github.com/KirkDiggler/bowcinema/internal/common/clock"
	"github.com/KirkDiggler/bowcinema/internal/common/uuid"
	"github.com/KirkDiggler/bowcinema/internal/models"
	"github.com/KirkDiggler/bowcinema/internal/report"
	"github.com/KirkDiggler/bowcinema/internal/services/scoring"
)

// service implements the Service interface. One mutex guards the live
// session; overrides arrive from the HTTP goroutine while the tick loop
// records captures.
type service struct {
	uuid        uuid.UUID
	clock       clock.Clock
	points      models.PointScale
	placeholder string
	logger      *slog.Logger

	mu      sync.Mutex
	session *models.SessionRecord
}

// New creates a new ledger service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.UUID == nil {
		return nil, ErrNilUUIDGenerator
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &service{
		uuid:        cfg.UUID,
		clock:       cfg.Clock,
		points:      cfg.Points,
		placeholder: cfg.PlaceholderCrop,
		logger:      logger,
	}, nil
}

// InitSession replaces any live session with a freshly allocated grid
func (s *service) InitSession(ctx context.Context, input *InitSessionInput) (*InitSessionOutput, error) {
	if input == nil || input.SessionID == "" || len(input.Shooters) == 0 || len(input.Games) == 0 || input.ArrowsPerPlayer < 1 {
		return nil, ErrInvalidSession
	}
	if hasDuplicates(input.Shooters) || hasDuplicates(input.Games) {
		return nil, ErrDuplicateName
	}

	if err := os.MkdirAll(input.ResultDir, 0o755); err != nil {
		s.logger.Error("failed to create result directory",
			slog.String("session", input.SessionID),
			slog.String("dir", input.ResultDir),
			slog.Any("error", err),
		)
	}

	session := &models.SessionRecord{
		ID:              input.SessionID,
		ImageDir:        input.ImageDir,
		ResultDir:       input.ResultDir,
		ArrowsPerPlayer: input.ArrowsPerPlayer,
		TotalArrows:     len(input.Shooters) * len(input.Games) * input.ArrowsPerPlayer,
		Shooters:        make([]*models.ShooterRecord, 0, len(input.Shooters)),
		CreatedAt:       s.clock.Now(),
	}

	for _, shooterName := range input.Shooters {
		shooter := &models.ShooterRecord{
			Name:  shooterName,
			Games: make([]*models.GameRecord, 0, len(input.Games)),
		}
		for _, gameName := range input.Games {
			game := &models.GameRecord{
				Name:   gameName,
				Arrows: make([]*models.ArrowRecord, input.ArrowsPerPlayer),
			}
			for i := range game.Arrows {
				game.Arrows[i] = &models.ArrowRecord{
					ID:         s.uuid.NewUUID(),
					CropImage:  s.placeholder,
					AutoPoints: s.points.Miss,
				}
			}
			shooter.Games = append(shooter.Games, game)
		}
		session.Shooters = append(session.Shooters, shooter)
	}
	recompute(session)

	s.mu.Lock()
	s.session = session
	s.mu.Unlock()

	s.logger.Info("session initialized",
		slog.String("session", session.ID),
		slog.Int("shooters", len(input.Shooters)),
		slog.Int("games", len(input.Games)),
		slog.Int("total_arrows", session.TotalArrows),
	)

	return &InitSessionOutput{
		Session: session.Clone(),
	}, nil
}

// RecordCapture overwrites the slot in place; nothing is appended
func (s *service) RecordCapture(ctx context.Context, input *RecordCaptureInput) error {
	if input == nil {
		return fmt.Errorf("record capture input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return ErrNoSession
	}
	if input.ArrowNumber < 1 || input.ArrowNumber > s.session.ArrowsPerPlayer {
		s.logger.Warn("arrow number out of range",
			slog.String("shooter", input.Shooter),
			slog.String("game", input.Game),
			slog.Int("arrow", input.ArrowNumber),
		)
		return ErrArrowOutOfRange
	}
	if !s.points.Allows(input.AutoPoints) {
		return ErrInvalidPoints
	}

	game, err := s.lookup(input.Shooter, input.Game)
	if err != nil {
		s.logger.Warn("capture for unknown slot",
			slog.String("shooter", input.Shooter),
			slog.String("game", input.Game),
			slog.String("frame", input.CamImage),
			slog.Any("error", err),
		)
		return err
	}

	arrow := game.Arrows[input.ArrowNumber-1]
	arrow.CamImage = input.CamImage
	arrow.CropImage = input.CropImage
	arrow.AutoPoints = input.AutoPoints

	s.logger.Debug("capture recorded",
		slog.String("shooter", input.Shooter),
		slog.String("game", input.Game),
		slog.Int("arrow", input.ArrowNumber),
		slog.String("frame", input.CamImage),
	)
	return nil
}

// SetManualOverride stores the override and recomputes the whole session
func (s *service) SetManualOverride(ctx context.Context, input *SetManualOverrideInput) (*SetManualOverrideOutput, error) {
	if input == nil {
		return nil, fmt.Errorf("manual override input cannot be nil")
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, ErrNoSession
	}
	if input.ArrowIndex < 0 || input.ArrowIndex >= s.session.ArrowsPerPlayer {
		return nil, ErrArrowIndexOutOfRange
	}
	if !s.points.Allows(input.Points) {
		return nil, ErrInvalidPoints
	}

	game, err := s.lookup(input.Shooter, input.Game)
	if err != nil {
		return nil, err
	}

	points := input.Points
	arrow := game.Arrows[input.ArrowIndex]
	arrow.ManualPoints = &points
	recompute(s.session)

	s.logger.Info("manual override set",
		slog.String("shooter", input.Shooter),
		slog.String("game", input.Game),
		slog.Int("arrow_index", input.ArrowIndex),
		slog.Int("points", points),
		slog.Int("final", arrow.FinalPoints),
	)

	return &SetManualOverrideOutput{
		FinalPoints:  arrow.FinalPoints,
		GameTotal:    game.TotalPoints,
		ShooterTotal: s.session.Shooter(input.Shooter).TotalPoints,
	}, nil
}

// Recompute is idempotent; it only rewrites derived fields
func (s *service) Recompute(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return ErrNoSession
	}
	recompute(s.session)
	return nil
}

// ApplyScores scores every arrow that has a real crop. Scorer failures keep
// the previous automatic value.
func (s *service) ApplyScores(ctx context.Context, scorer scoring.Scorer) error {
	if scorer == nil {
		return ErrNilScorer
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return ErrNoSession
	}

	for _, shooter := range s.session.Shooters {
		for _, game := range shooter.Games {
			for i, arrow := range game.Arrows {
				if arrow.CamImage == "" || arrow.CropImage == s.placeholder {
					continue
				}
				points, err := scorer.Score(ctx, arrow.CropImage)
				if err == nil && !s.points.Allows(points) {
					err = fmt.Errorf("%w: %d", ErrInvalidPoints, points)
				}
				if err != nil {
					s.logger.Warn("automatic scoring failed",
						slog.String("shooter", shooter.Name),
						slog.String("game", game.Name),
						slog.Int("arrow", i+1),
						slog.Any("error", err),
					)
					continue
				}
				arrow.AutoPoints = points
			}
		}
	}
	recompute(s.session)
	return nil
}

// Snapshot returns a deep copy safe to hand to other goroutines
func (s *service) Snapshot(ctx context.Context) (*models.SessionRecord, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, ErrNoSession
	}
	return s.session.Clone(), nil
}

// CloseSession recomputes, writes {resultDir}/{sessionId}.txt and clears
func (s *service) CloseSession(ctx context.Context) (*CloseSessionOutput, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.session == nil {
		return nil, ErrNoSession
	}
	recompute(s.session)

	path, err := report.WriteText(s.session)
	if err != nil {
		return nil, fmt.Errorf("failed to write session report: %w", err)
	}

	closed := s.session
	s.session = nil

	s.logger.Info("session closed",
		slog.String("session", closed.ID),
		slog.String("report", path),
	)

	return &CloseSessionOutput{
		ReportPath: path,
		Session:    closed,
	}, nil
}

// Clear drops the live session
func (s *service) Clear(ctx context.Context) {
	s.mu.Lock()
	s.session = nil
	s.mu.Unlock()
}

func (s *service) lookup(shooterName, gameName string) (*models.GameRecord, error) {
	shooter := s.session.Shooter(shooterName)
	if shooter == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownShooter, shooterName)
	}
	game := shooter.Game(gameName)
	if game == nil {
		return nil, fmt.Errorf("%w: %s", ErrUnknownGame, gameName)
	}
	return game, nil
}

func recompute(session *models.SessionRecord) {
	for _, shooter := range session.Shooters {
		shooterTotal := 0
		for _, game := range shooter.Games {
			gameTotal := 0
			for _, arrow := range game.Arrows {
				arrow.FinalPoints = arrow.Reconcile()
				gameTotal += arrow.FinalPoints
			}
			game.TotalPoints = gameTotal
			shooterTotal += game.TotalPoints
		}
		shooter.TotalPoints = shooterTotal
	}
}

func hasDuplicates(names []string) bool {
	seen := make(map[string]struct{}, len(names))
	for _, n := range names {
		if _, ok := seen[n]; ok {
			return true
		}
		seen[n] = struct{}{}
	}
	return false
}
