package engine

import (
	"context"
	"errors"
	"log/slog"

	"github.com/KirkDiggler/bowcinema/internal/models"
	"github.com/KirkDiggler/bowcinema/internal/services/game"
	"github.com/KirkDiggler/bowcinema/internal/services/ledger"
)

// CommandKind enumerates what an operator can ask of the engine
type CommandKind string

const (
	CommandStart        CommandKind = "start"
	CommandManualBang   CommandKind = "manual_bang"
	CommandSkipRound    CommandKind = "skip_round"
	CommandAbort        CommandKind = "abort"
	CommandSetOverride  CommandKind = "set_override"
	CommandCloseSession CommandKind = "close_session"
	CommandSnapshot     CommandKind = "snapshot"

	CommandSwitchCamera     CommandKind = "switch_camera"
	CommandSwitchMicrophone CommandKind = "switch_microphone"
)

// Command is one operator request. Only the field matching Kind is read.
type Command struct {
	Kind     CommandKind
	Start    *game.StartInput
	Override *ledger.SetManualOverrideInput

	// Device is the input device index for the switch commands
	Device int

	reply chan *Result
}

// Result carries the answer to a Command
type Result struct {
	// Accepted reports whether a manual bang was queued for the next tick
	Accepted bool

	Started  *game.StartOutput
	Round    *game.RoundOutput
	Override *ledger.SetManualOverrideOutput
	Closed   *ledger.CloseSessionOutput
	Status   *game.StatusOutput
	Session  *models.SessionRecord
	Err      error
}

// Do hands cmd to the loop and waits for its result
func (e *Engine) Do(ctx context.Context, cmd *Command) (*Result, error) {
	cmd.reply = make(chan *Result, 1)

	select {
	case e.commands <- cmd:
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	select {
	case res := <-cmd.reply:
		return res, res.Err
	case <-ctx.Done():
		return nil, ctx.Err()
	}
}

// dispatch is the single handler of every command kind
func (e *Engine) dispatch(ctx context.Context, cmd *Command) *Result {
	res := &Result{}

	switch cmd.Kind {
	case CommandStart:
		if res.Err = e.closeIfComplete(ctx); res.Err != nil {
			break
		}
		res.Started, res.Err = e.sequencer.Start(ctx, cmd.Start)
		if res.Err == nil {
			e.ticks = 0
			e.pendingManual = false
			e.afterTransition(ctx, models.SequenceStateRoundActive)
		}

	case CommandManualBang:
		if e.sequencer.Status(ctx).State != models.SequenceStateRoundActive {
			res.Err = game.ErrInvalidState
			break
		}
		res.Accepted = !e.pendingManual && e.manualLimiter.Allow()
		if res.Accepted {
			e.pendingManual = true
		} else {
			e.logger.Debug("manual bang debounced")
		}

	case CommandSkipRound:
		res.Round, res.Err = e.sequencer.SkipRound(ctx)
		if res.Err == nil {
			e.ticks = 0
			e.afterTransition(ctx, res.Round.State)
		}

	case CommandAbort:
		res.Round, res.Err = e.sequencer.Abort(ctx)
		if res.Err == nil {
			e.pendingManual = false
			e.afterTransition(ctx, res.Round.State)
		}

	case CommandSetOverride:
		res.Override, res.Err = e.ledger.SetManualOverride(ctx, cmd.Override)
		if res.Err == nil && e.sequencer.Status(ctx).State == models.SequenceStateComplete {
			if session, err := e.ledger.Snapshot(ctx); err == nil {
				e.persist(ctx, session)
			}
		}

	case CommandCloseSession:
		switch e.sequencer.Status(ctx).State {
		case models.SequenceStateRoundActive, models.SequenceStateRoundBetween:
			res.Err = ErrSessionRunning
		default:
			res.Closed, res.Err = e.closeSession(ctx)
		}

	case CommandSnapshot:
		res.Status = e.sequencer.Status(ctx)
		session, err := e.ledger.Snapshot(ctx)
		if err != nil && !errors.Is(err, ledger.ErrNoSession) {
			res.Err = err
		}
		res.Session = session

	case CommandSwitchCamera, CommandSwitchMicrophone:
		res.Err = e.switchDevice(cmd)

	default:
		res.Err = ErrUnknownCommand
	}

	if res.Err != nil {
		e.logger.Debug("command rejected",
			slog.String("command", string(cmd.Kind)),
			slog.Any("error", res.Err),
		)
	}
	return res
}

// switchDevice runs between ticks so no block read or frame grab of the
// engine is in flight
func (e *Engine) switchDevice(cmd *Command) error {
	if e.devices == nil {
		return ErrNoDevices
	}
	if cmd.Kind == CommandSwitchCamera {
		return e.devices.SwitchCamera(cmd.Device)
	}
	return e.devices.SwitchMicrophone(cmd.Device)
}

// Start begins a session, closing a finished one first
func (e *Engine) Start(ctx context.Context, input *game.StartInput) (*game.StartOutput, error) {
	res, err := e.Do(ctx, &Command{Kind: CommandStart, Start: input})
	if err != nil {
		return nil, err
	}
	return res.Started, nil
}

// ManualBang queues an operator-triggered bang for the next tick
func (e *Engine) ManualBang(ctx context.Context) (bool, error) {
	res, err := e.Do(ctx, &Command{Kind: CommandManualBang})
	if err != nil {
		return false, err
	}
	return res.Accepted, nil
}

// SkipRound ends the active round
func (e *Engine) SkipRound(ctx context.Context) (*game.RoundOutput, error) {
	res, err := e.Do(ctx, &Command{Kind: CommandSkipRound})
	if err != nil {
		return nil, err
	}
	return res.Round, nil
}

// Abort completes the running session early
func (e *Engine) Abort(ctx context.Context) (*game.RoundOutput, error) {
	res, err := e.Do(ctx, &Command{Kind: CommandAbort})
	if err != nil {
		return nil, err
	}
	return res.Round, nil
}

// SetOverride applies a manual score
func (e *Engine) SetOverride(ctx context.Context, input *ledger.SetManualOverrideInput) (*ledger.SetManualOverrideOutput, error) {
	res, err := e.Do(ctx, &Command{Kind: CommandSetOverride, Override: input})
	if err != nil {
		return nil, err
	}
	return res.Override, nil
}

// CloseSession writes the report and clears the finished session
func (e *Engine) CloseSession(ctx context.Context) (*ledger.CloseSessionOutput, error) {
	res, err := e.Do(ctx, &Command{Kind: CommandCloseSession})
	if err != nil {
		return nil, err
	}
	return res.Closed, nil
}

// Snapshot returns the sequencer status and, when a session exists, its record
func (e *Engine) Snapshot(ctx context.Context) (*game.StatusOutput, *models.SessionRecord, error) {
	res, err := e.Do(ctx, &Command{Kind: CommandSnapshot})
	if err != nil {
		return nil, nil, err
	}
	return res.Status, res.Session, nil
}

// SwitchCamera moves frame capture to another camera
func (e *Engine) SwitchCamera(ctx context.Context, index int) error {
	_, err := e.Do(ctx, &Command{Kind: CommandSwitchCamera, Device: index})
	return err
}

// SwitchMicrophone moves bang detection to another audio input
func (e *Engine) SwitchMicrophone(ctx context.Context, index int) error {
	_, err := e.Do(ctx, &Command{Kind: CommandSwitchMicrophone, Device: index})
	return err
}
