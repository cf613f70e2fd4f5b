// Package engine runs the venue loop: one goroutine owns the sequencer,
// polls the bang detector while a round is active and applies operator
// commands between ticks.
package engine

//go:generate mockgen -package=mocks -destination=mocks/mock_engine.go github.com/KirkDiggler/bowcinema/internal/engine Publisher,BangDetector,DeviceSwitcher

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"golang.org/x/time/rate"

	"github.com/KirkDiggler/bowcinema/internal/metrics"
	"github.com/KirkDiggler/bowcinema/internal/models"
	"github.com/KirkDiggler/bowcinema/internal/player"
	"github.com/KirkDiggler/bowcinema/internal/report"
	sessionRepo "github.com/KirkDiggler/bowcinema/internal/repositories/session"
	"github.com/KirkDiggler/bowcinema/internal/services/game"
	"github.com/KirkDiggler/bowcinema/internal/services/ledger"
)

// Publisher announces closed sessions
type Publisher interface {
	PublishSession(ctx context.Context, session *models.SessionRecord, chartPNG []byte) error
}

// BangDetector is polled once per tick of an active round and reset when
// a round starts
type BangDetector interface {
	Poll() bool
	Reset()
	Threshold() float64
	ErrorCount() int
}

// DeviceSwitcher moves capture to other input devices
type DeviceSwitcher interface {
	SwitchCamera(index int) error
	SwitchMicrophone(index int) error
}

// Config holds the collaborators of the engine. Detector, Renderer,
// Repository, Publisher, Devices and Metrics are optional.
type Config struct {
	Sequencer game.Service
	Ledger    ledger.Service

	Detector   BangDetector
	Renderer   player.Renderer
	Repository sessionRepo.Repository
	Publisher  Publisher
	Devices    DeviceSwitcher
	Metrics    *metrics.Metrics

	TickInterval time.Duration

	// ManualDebounce is the minimum gap between two accepted manual bangs
	ManualDebounce time.Duration

	// Workbook enables the XLSX export on completion
	Workbook bool

	Logger *slog.Logger
}

// Engine serializes every sequencer and ledger mutation on one goroutine
type Engine struct {
	sequencer  game.Service
	ledger     ledger.Service
	detector   BangDetector
	renderer   player.Renderer
	repository sessionRepo.Repository
	publisher  Publisher
	devices    DeviceSwitcher
	metrics    *metrics.Metrics
	logger     *slog.Logger

	tickInterval    time.Duration
	roundCheckEvery int
	workbook        bool

	commands      chan *Command
	manualLimiter *rate.Limiter
	pendingManual bool
	ticks         int
}

// New creates an engine; call Run to start it
func New(cfg *Config) (*Engine, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Sequencer == nil {
		return nil, ErrNilSequencer
	}
	if cfg.Ledger == nil {
		return nil, ErrNilLedger
	}
	if cfg.TickInterval <= 0 {
		return nil, ErrInvalidInterval
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	limit := rate.Inf
	if cfg.ManualDebounce > 0 {
		limit = rate.Every(cfg.ManualDebounce)
	}

	return &Engine{
		sequencer:       cfg.Sequencer,
		ledger:          cfg.Ledger,
		detector:        cfg.Detector,
		renderer:        cfg.Renderer,
		repository:      cfg.Repository,
		publisher:       cfg.Publisher,
		devices:         cfg.Devices,
		metrics:         cfg.Metrics,
		logger:          logger,
		tickInterval:    cfg.TickInterval,
		roundCheckEvery: roundCheckEvery(cfg.TickInterval),
		workbook:        cfg.Workbook,
		commands:        make(chan *Command),
		manualLimiter:   rate.NewLimiter(limit, 1),
	}, nil
}

// roundCheckEvery is the tick count between two round-finished checks,
// roughly once a second
func roundCheckEvery(tick time.Duration) int {
	return max(1, int(time.Second/tick)-1)
}

// Run drives the loop until ctx is done. It must run on the goroutine that
// owns the player window.
func (e *Engine) Run(ctx context.Context) error {
	ticker := time.NewTicker(e.tickInterval)
	defer ticker.Stop()

	e.logger.Info("engine running", slog.Duration("tick", e.tickInterval))
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case cmd := <-e.commands:
			cmd.reply <- e.dispatch(ctx, cmd)
		case <-ticker.C:
			e.tick(ctx)
		}
	}
}

// tick processes at most one bang
func (e *Engine) tick(ctx context.Context) {
	if e.renderer != nil {
		e.renderer.Render()
	}

	active := e.sequencer.Status(ctx).State == models.SequenceStateRoundActive

	e.ticks++
	if active && e.ticks >= e.roundCheckEvery {
		e.ticks = 0
		out, err := e.sequencer.CheckRound(ctx)
		if err != nil {
			e.logger.Warn("round check failed", slog.Any("error", err))
		} else if out.Advanced {
			e.afterTransition(ctx, out.State)
			active = out.State == models.SequenceStateRoundActive
		}
	}

	if !active {
		e.pendingManual = false
		return
	}

	audioBang := false
	if e.detector != nil {
		audioBang = e.detector.Poll()
		if e.metrics != nil {
			e.metrics.Detector(e.detector.Threshold(), e.detector.ErrorCount())
		}
	}

	switch {
	case e.pendingManual:
		e.pendingManual = false
		e.bang(ctx, metrics.SourceManual)
	case audioBang:
		e.bang(ctx, metrics.SourceAudio)
	}
}

func (e *Engine) bang(ctx context.Context, source string) {
	if e.metrics != nil {
		e.metrics.Bang(source)
	}

	out, err := e.sequencer.HandleBang(ctx)
	if err != nil {
		e.logger.Warn("bang not handled", slog.String("source", source), slog.Any("error", err))
		return
	}
	if e.metrics != nil {
		e.metrics.BangOutcome(string(out.Outcome), out.Duration)
	}
	e.logger.Info("bang handled",
		slog.String("source", source),
		slog.String("outcome", string(out.Outcome)),
		slog.String("shooter", out.Shooter),
		slog.String("game", out.Game),
		slog.Int("arrow", out.ArrowNumber),
	)
}

func (e *Engine) afterTransition(ctx context.Context, state models.SequenceState) {
	switch state {
	case models.SequenceStateRoundActive:
		// Idle time and the previous round must not carry into this one
		if e.detector != nil {
			e.detector.Reset()
		}
		if e.metrics != nil {
			e.metrics.RoundStarted()
		}
	case models.SequenceStateComplete:
		e.onComplete(ctx)
	}
}

// onComplete persists the scored session and writes the chart and
// workbook. Failures only cost the artefact.
func (e *Engine) onComplete(ctx context.Context) {
	if e.metrics != nil {
		e.metrics.SessionCompleted()
	}

	session, err := e.ledger.Snapshot(ctx)
	if err != nil {
		e.logger.Error("no session to finalize", slog.Any("error", err))
		return
	}

	e.persist(ctx, session)

	if _, path, err := report.WriteChart(session); err != nil {
		e.logger.Warn("totals chart not written", slog.Any("error", err))
	} else {
		e.logger.Info("totals chart written", slog.String("path", path))
	}

	if e.workbook {
		path, err := report.WriteWorkbook(session, &report.WorkbookConfig{Logger: e.logger})
		if err != nil {
			e.logger.Warn("workbook not written", slog.Any("error", err))
		} else {
			e.logger.Info("workbook written", slog.String("path", path))
		}
	}
}

func (e *Engine) persist(ctx context.Context, session *models.SessionRecord) {
	if e.repository == nil {
		return
	}
	if err := e.repository.SaveSession(ctx, &sessionRepo.SaveSessionInput{Session: session}); err != nil {
		e.logger.Warn("session not persisted", slog.String("session", session.ID), slog.Any("error", err))
	}
}

// closeSession writes the text report, persists and publishes the final
// record and clears the ledger.
func (e *Engine) closeSession(ctx context.Context) (*ledger.CloseSessionOutput, error) {
	out, err := e.ledger.CloseSession(ctx)
	if err != nil {
		return nil, err
	}

	e.persist(ctx, out.Session)

	if e.publisher != nil {
		chart, err := report.TotalsChart(out.Session)
		if err != nil {
			e.logger.Warn("totals chart not rendered", slog.Any("error", err))
		}
		if err := e.publisher.PublishSession(ctx, out.Session, chart); err != nil {
			e.logger.Warn("session not published", slog.String("session", out.Session.ID), slog.Any("error", err))
		}
	}
	return out, nil
}

func (e *Engine) closeIfComplete(ctx context.Context) error {
	if e.sequencer.Status(ctx).State != models.SequenceStateComplete {
		return nil
	}
	if _, err := e.closeSession(ctx); err != nil && !errors.Is(err, ledger.ErrNoSession) {
		return err
	}
	return nil
}
