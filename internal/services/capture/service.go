package capture

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/KirkDiggler/bowcinema/internal/camera"
	"github.com/KirkDiggler/bowcinema/internal/common/clock"
	"github.com/KirkDiggler/bowcinema/internal/imaging"
)

const frameTimeLayout = "15-04-05"

type service struct {
	camera camera.Camera
	player Pauser
	store  imaging.FrameStore
	clock  clock.Clock
	logger *slog.Logger

	root        string
	format      string
	settleDelay time.Duration
	grabTimeout time.Duration
}

// New creates a new capture service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Camera == nil {
		return nil, ErrNilCamera
	}
	if cfg.Player == nil {
		return nil, ErrNilPlayer
	}
	if cfg.Store == nil {
		return nil, ErrNilStore
	}
	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	format := strings.TrimPrefix(cfg.Format, ".")
	if format == "" {
		format = "png"
	}

	return &service{
		camera:      cfg.Camera,
		player:      cfg.Player,
		store:       cfg.Store,
		clock:       cfg.Clock,
		logger:      logger,
		root:        cfg.Root,
		format:      format,
		settleDelay: cfg.SettleDelay,
		grabTimeout: cfg.GrabTimeout,
	}, nil
}

// Capture pauses the player, waits for the picture to settle, grabs and
// stores one frame and resumes the player. The player is resumed on every
// path.
func (s *service) Capture(ctx context.Context, input *CaptureInput) (*CaptureOutput, error) {
	if input == nil || input.SessionID == "" || input.GameName == "" || input.PlayerName == "" {
		return nil, ErrInvalidInput
	}

	s.player.Pause()
	defer s.player.Resume()

	s.clock.Sleep(s.settleDelay)

	now := s.clock.Now()
	fileName := fmt.Sprintf("%s_%s_%s.%s", now.Format(frameTimeLayout), input.GameName, input.PlayerName, s.format)
	framePath := filepath.Join(s.root, input.SessionID, fileName)

	err := s.grab(ctx, framePath)
	s.clock.Sleep(s.settleDelay)
	if err != nil {
		s.logger.Warn("camera capture failed",
			slog.String("session", input.SessionID),
			slog.String("game", input.GameName),
			slog.String("shooter", input.PlayerName),
			slog.Any("error", err),
		)
		return nil, fmt.Errorf("%w: %w", ErrCaptureFailed, err)
	}

	s.logger.Info("frame captured",
		slog.String("game", input.GameName),
		slog.String("shooter", input.PlayerName),
		slog.String("path", framePath),
	)

	return &CaptureOutput{
		FileName:   fileName,
		FramePath:  framePath,
		CapturedAt: now,
	}, nil
}

func (s *service) grab(ctx context.Context, framePath string) error {
	if s.grabTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.grabTimeout)
		defer cancel()
	}

	frame, err := s.camera.GrabFrame(ctx)
	if err != nil {
		return err
	}
	return s.store.Save(framePath, frame)
}
