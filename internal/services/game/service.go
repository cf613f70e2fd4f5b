package game

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"

	"github.com/KirkDiggler/bowcinema/internal/common/clock"
	"github.com/KirkDiggler/bowcinema/internal/imaging"
	"github.com/KirkDiggler/bowcinema/internal/models"
	"github.com/KirkDiggler/bowcinema/internal/player"
	"github.com/KirkDiggler/bowcinema/internal/services/capture"
	"github.com/KirkDiggler/bowcinema/internal/services/ledger"
	"github.com/KirkDiggler/bowcinema/internal/services/scoring"
)

// service implements the Service interface
type service struct {
	ledger    ledger.Service
	capture   capture.Service
	extractor imaging.Extractor
	player    player.Player
	scorer    scoring.Scorer
	clock     clock.Clock
	logger    *slog.Logger

	arrowsPerPlayer int
	sessionPrefix   string
	camShotsDir     string
	resultsDir      string
	placeholder     string
	points          models.PointScale

	state     models.SequenceState
	cursor    models.Cursor
	sessionID string
	resultDir string
	shooters  []string
	games     []string
}

// New creates a new sequencer in the awaiting-start state
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Ledger == nil {
		return nil, ErrNilLedger
	}
	if cfg.Capture == nil {
		return nil, ErrNilCapture
	}
	if cfg.Extractor == nil {
		return nil, ErrNilExtractor
	}
	if cfg.Player == nil {
		return nil, ErrNilPlayer
	}
	if cfg.Scorer == nil {
		return nil, ErrNilScorer
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}
	if cfg.ArrowsPerPlayer < 1 {
		return nil, ErrInvalidArrows
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	prefix := cfg.SessionPrefix
	if prefix == "" {
		prefix = "BogenKino"
	}

	return &service{
		ledger:          cfg.Ledger,
		capture:         cfg.Capture,
		extractor:       cfg.Extractor,
		player:          cfg.Player,
		scorer:          cfg.Scorer,
		clock:           cfg.Clock,
		logger:          logger,
		arrowsPerPlayer: cfg.ArrowsPerPlayer,
		sessionPrefix:   prefix,
		camShotsDir:     cfg.CamShotsDir,
		resultsDir:      cfg.ResultsDir,
		placeholder:     cfg.PlaceholderCrop,
		points:          cfg.Points,
		state:           models.SequenceStateAwaitingStart,
	}, nil
}

// Start initializes the ledger grid and plays the first round. A finished
// session may be replaced by a new one; a running one may not.
func (s *service) Start(ctx context.Context, input *StartInput) (*StartOutput, error) {
	if s.state == models.SequenceStateRoundActive || s.state == models.SequenceStateRoundBetween {
		return nil, ErrInvalidState
	}
	if input == nil || len(input.Shooters) == 0 {
		return nil, ErrNoShooters
	}
	if len(input.Games) == 0 {
		return nil, ErrNoGames
	}

	id := sessionID(s.sessionPrefix, s.clock.Now())
	imageDir, resultDir := s.sessionDirs(id)

	_, err := s.ledger.InitSession(ctx, &ledger.InitSessionInput{
		SessionID:       id,
		Shooters:        input.Shooters,
		Games:           input.Games,
		ArrowsPerPlayer: s.arrowsPerPlayer,
		ImageDir:        imageDir,
		ResultDir:       resultDir,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session: %w", err)
	}

	s.sessionID = id
	s.resultDir = resultDir
	s.shooters = append([]string(nil), input.Shooters...)
	s.games = append([]string(nil), input.Games...)
	s.cursor = models.Cursor{}

	s.logger.Info("session started",
		slog.String("session", id),
		slog.String("shooters", strings.Join(s.shooters, ",")),
		slog.String("games", strings.Join(s.games, ",")),
	)

	s.startRound()

	return &StartOutput{
		SessionID: id,
		ImageDir:  imageDir,
		ResultDir: resultDir,
	}, nil
}

// RoundFinished moves to the next shooter, wrapping to the next game, and
// completes the session after the last game.
func (s *service) RoundFinished(ctx context.Context) (*RoundOutput, error) {
	if s.state != models.SequenceStateRoundActive {
		return nil, ErrInvalidState
	}

	s.logger.Info("round finished",
		slog.String("shooter", s.currentShooter()),
		slog.String("game", s.currentGame()),
	)

	s.cursor.ShooterIndex++
	if s.cursor.ShooterIndex >= len(s.shooters) {
		s.cursor.ShooterIndex = 0
		s.cursor.GameIndex++
	}

	if s.cursor.GameIndex >= len(s.games) {
		s.complete(ctx)
		return s.roundOutput(true), nil
	}

	s.state = models.SequenceStateRoundBetween
	s.startRound()
	return s.roundOutput(true), nil
}

// CheckRound polls the player and advances when its video ended
func (s *service) CheckRound(ctx context.Context) (*RoundOutput, error) {
	if s.state != models.SequenceStateRoundActive {
		return nil, ErrInvalidState
	}
	if !s.player.IsFinished() {
		return s.roundOutput(false), nil
	}
	return s.RoundFinished(ctx)
}

// SkipRound ends the active round without waiting for the video
func (s *service) SkipRound(ctx context.Context) (*RoundOutput, error) {
	if s.state != models.SequenceStateRoundActive {
		return nil, ErrInvalidState
	}
	s.logger.Info("round skipped",
		slog.String("shooter", s.currentShooter()),
		slog.String("game", s.currentGame()),
	)
	return s.RoundFinished(ctx)
}

// Abort completes a running session early; recorded arrows are kept
func (s *service) Abort(ctx context.Context) (*RoundOutput, error) {
	if s.state != models.SequenceStateRoundActive && s.state != models.SequenceStateRoundBetween {
		return nil, ErrInvalidState
	}
	s.logger.Warn("session aborted",
		slog.String("session", s.sessionID),
		slog.String("shooter", s.currentShooter()),
		slog.String("game", s.currentGame()),
	)
	s.complete(ctx)
	return s.roundOutput(true), nil
}

// HandleBang runs capture, extraction and recording for the next arrow of
// the active round. Bangs beyond the arrow cap are ignored. Capture and
// extraction failures are logged and never returned: the arrow slot is
// still used so the shooter cannot retry past the cap.
func (s *service) HandleBang(ctx context.Context) (*BangOutput, error) {
	if s.state != models.SequenceStateRoundActive {
		return nil, ErrInvalidState
	}

	started := s.clock.Now()
	out := &BangOutput{
		Shooter:     s.currentShooter(),
		Game:        s.currentGame(),
		ArrowNumber: s.cursor.ArrowNumber,
	}

	if s.cursor.ArrowNumber > s.arrowsPerPlayer {
		out.Outcome = BangOutcomeIgnored
		s.logger.Debug("bang ignored, arrows used up",
			slog.String("shooter", out.Shooter),
			slog.String("game", out.Game),
		)
		return out, nil
	}
	s.cursor.ArrowNumber++

	shot, err := s.capture.Capture(ctx, &capture.CaptureInput{
		SessionID:  s.sessionID,
		GameName:   out.Game,
		PlayerName: out.Shooter,
	})
	if err != nil {
		out.Outcome = BangOutcomeCaptureFailed
		out.Duration = s.clock.Now().Sub(started)
		s.logger.Warn("arrow left unscored after capture failure",
			slog.String("shooter", out.Shooter),
			slog.String("game", out.Game),
			slog.Int("arrow", out.ArrowNumber),
			slog.Any("error", err),
		)
		return out, nil
	}

	out.Outcome = BangOutcomeRecorded
	out.FramePath = shot.FramePath
	out.CropPath = filepath.Join(s.resultDir, shot.FileName)

	_, err = s.extractor.Extract(ctx, &imaging.ExtractInput{
		SourcePath: shot.FramePath,
		CropPath:   out.CropPath,
	})
	if err != nil {
		out.Outcome = BangOutcomeExtractFailed
		out.CropPath = s.placeholder
		s.logger.Warn("target extraction failed, using no-hit crop",
			slog.String("shooter", out.Shooter),
			slog.String("game", out.Game),
			slog.String("frame", shot.FramePath),
			slog.Any("error", err),
		)
	}

	err = s.ledger.RecordCapture(ctx, &ledger.RecordCaptureInput{
		Shooter:     out.Shooter,
		Game:        out.Game,
		ArrowNumber: out.ArrowNumber,
		CamImage:    out.FramePath,
		CropImage:   out.CropPath,
		AutoPoints:  s.points.Miss,
	})
	if err != nil {
		s.logger.Error("failed to record arrow",
			slog.String("shooter", out.Shooter),
			slog.String("game", out.Game),
			slog.Int("arrow", out.ArrowNumber),
			slog.Any("error", err),
		)
	}

	out.Duration = s.clock.Now().Sub(started)
	return out, nil
}

// Status describes the current state and round
func (s *service) Status(ctx context.Context) *StatusOutput {
	status := &StatusOutput{
		SessionID: s.sessionID,
		State:     s.state,
		Cursor:    s.cursor,
		Shooter:   s.currentShooter(),
		Game:      s.currentGame(),
		Shooters:  append([]string(nil), s.shooters...),
		Games:     append([]string(nil), s.games...),
	}
	if s.state == models.SequenceStateRoundActive {
		status.RemainingTime = s.player.RemainingTime()
	}
	return status
}

func (s *service) startRound() {
	s.cursor.ArrowNumber = 1
	s.state = models.SequenceStateRoundActive

	shooter, game := s.currentShooter(), s.currentGame()
	if err := s.player.Play(shooter, game); err != nil {
		// The round stays active so the operator can skip it.
		s.logger.Error("failed to start round video",
			slog.String("shooter", shooter),
			slog.String("game", game),
			slog.Any("error", err),
		)
		return
	}
	s.logger.Info("round started",
		slog.String("shooter", shooter),
		slog.String("game", game),
	)
}

func (s *service) complete(ctx context.Context) {
	s.state = models.SequenceStateComplete
	s.player.Stop()

	if err := s.ledger.ApplyScores(ctx, s.scorer); err != nil {
		s.logger.Error("scoring pass failed", slog.Any("error", err))
	}
	if err := s.ledger.Recompute(ctx); err != nil && !errors.Is(err, ledger.ErrNoSession) {
		s.logger.Error("recompute failed", slog.Any("error", err))
	}

	s.logger.Info("session complete", slog.String("session", s.sessionID))
}

func (s *service) currentShooter() string {
	if s.cursor.ShooterIndex < len(s.shooters) {
		return s.shooters[s.cursor.ShooterIndex]
	}
	return ""
}

func (s *service) currentGame() string {
	if s.cursor.GameIndex < len(s.games) {
		return s.games[s.cursor.GameIndex]
	}
	return ""
}

func (s *service) roundOutput(advanced bool) *RoundOutput {
	return &RoundOutput{
		Advanced: advanced,
		State:    s.state,
		Cursor:   s.cursor,
		Shooter:  s.currentShooter(),
		Game:     s.currentGame(),
	}
}
