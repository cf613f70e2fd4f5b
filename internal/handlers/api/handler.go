// Package api exposes the operator controls of the engine over HTTP.
package api

//go:generate mockgen -package=mocks -destination=mocks/mock_controller.go github.com/KirkDiggler/bowcinema/internal/handlers/api Controller

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/KirkDiggler/bowcinema/internal/audio"
	"github.com/KirkDiggler/bowcinema/internal/camera"
	"github.com/KirkDiggler/bowcinema/internal/engine"
	"github.com/KirkDiggler/bowcinema/internal/metrics"
	"github.com/KirkDiggler/bowcinema/internal/services/game"
	"github.com/KirkDiggler/bowcinema/internal/services/ledger"
)

// Config holds the handler dependencies. Registry is optional; without it
// /metrics is not mounted.
type Config struct {
	Controller Controller
	Registry   *prometheus.Registry
	Logger     *slog.Logger
}

// Handler serves the control API
type Handler struct {
	controller Controller
	registry   *prometheus.Registry
	logger     *slog.Logger
}

// New creates a new handler
func New(cfg *Config) (*Handler, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}
	if cfg.Controller == nil {
		return nil, ErrNilController
	}
	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		controller: cfg.Controller,
		registry:   cfg.Registry,
		logger:     logger,
	}, nil
}

// Routes builds the router
func (h *Handler) Routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Post("/bang", h.ManualBang)
	r.Post("/rounds/skip", h.SkipRound)
	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", h.StartSession)
		r.Post("/abort", h.AbortSession)
		r.Get("/current", h.CurrentSession)
		r.Put("/current/scores", h.SetScore)
		r.Post("/current/close", h.CloseSession)
	})
	r.Put("/devices/camera", h.SwitchCamera)
	r.Put("/devices/microphone", h.SwitchMicrophone)
	if h.registry != nil {
		r.Handle("/metrics", metrics.Handler(h.registry))
	}
	return r
}

// StartSession starts a session for the posted shooters and games
func (h *Handler) StartSession(w http.ResponseWriter, r *http.Request) {
	var input StartRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	out, err := h.controller.Start(r.Context(), &game.StartInput{
		Shooters: input.Shooters,
		Games:    input.Games,
	})
	if err != nil {
		h.fail(w, err)
		return
	}

	h.writeJSON(w, http.StatusCreated, &StartResponse{
		SessionID: out.SessionID,
		ImageDir:  out.ImageDir,
		ResultDir: out.ResultDir,
	})
}

// ManualBang queues the operator's bang button
func (h *Handler) ManualBang(w http.ResponseWriter, r *http.Request) {
	accepted, err := h.controller.ManualBang(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	status := http.StatusAccepted
	if !accepted {
		status = http.StatusTooManyRequests
	}
	h.writeJSON(w, status, &BangResponse{Accepted: accepted})
}

// SkipRound ends the active round
func (h *Handler) SkipRound(w http.ResponseWriter, r *http.Request) {
	h.round(w, r, h.controller.SkipRound)
}

// AbortSession completes the running session early
func (h *Handler) AbortSession(w http.ResponseWriter, r *http.Request) {
	h.round(w, r, h.controller.Abort)
}

func (h *Handler) round(w http.ResponseWriter, r *http.Request, fn func(context.Context) (*game.RoundOutput, error)) {
	out, err := fn(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, &RoundResponse{
		State:   out.State,
		Cursor:  out.Cursor,
		Shooter: out.Shooter,
		Game:    out.Game,
	})
}

// CurrentSession returns the sequencer status and the score grid
func (h *Handler) CurrentSession(w http.ResponseWriter, r *http.Request) {
	status, session, err := h.controller.Snapshot(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, &CurrentResponse{
		State:            status.State,
		Cursor:           status.Cursor,
		Shooter:          status.Shooter,
		Game:             status.Game,
		RemainingSeconds: status.RemainingTime.Seconds(),
		Session:          session,
	})
}

// SetScore applies a manual override to one arrow
func (h *Handler) SetScore(w http.ResponseWriter, r *http.Request) {
	var input OverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}

	out, err := h.controller.SetOverride(r.Context(), &ledger.SetManualOverrideInput{
		Shooter:    input.Shooter,
		Game:       input.Game,
		ArrowIndex: input.ArrowIndex,
		Points:     input.Points,
	})
	if err != nil {
		h.fail(w, err)
		return
	}

	h.writeJSON(w, http.StatusOK, &OverrideResponse{
		FinalPoints:  out.FinalPoints,
		GameTotal:    out.GameTotal,
		ShooterTotal: out.ShooterTotal,
	})
}

// CloseSession writes the report of a completed session
func (h *Handler) CloseSession(w http.ResponseWriter, r *http.Request) {
	out, err := h.controller.CloseSession(r.Context())
	if err != nil {
		h.fail(w, err)
		return
	}
	h.writeJSON(w, http.StatusOK, &CloseResponse{
		ReportPath: out.ReportPath,
		SessionID:  out.Session.ID,
	})
}

// SwitchCamera moves frame capture to another camera
func (h *Handler) SwitchCamera(w http.ResponseWriter, r *http.Request) {
	h.switchDevice(w, r, h.controller.SwitchCamera)
}

// SwitchMicrophone moves bang detection to another audio input
func (h *Handler) SwitchMicrophone(w http.ResponseWriter, r *http.Request) {
	h.switchDevice(w, r, h.controller.SwitchMicrophone)
}

func (h *Handler) switchDevice(w http.ResponseWriter, r *http.Request, fn func(context.Context, int) error) {
	var input DeviceRequest
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		h.writeError(w, http.StatusBadRequest, err)
		return
	}
	if err := fn(r.Context(), input.Index); err != nil {
		h.fail(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// fail maps a controller error to a status code
func (h *Handler) fail(w http.ResponseWriter, err error) {
	h.writeError(w, statusFor(err), err)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, game.ErrNoShooters),
		errors.Is(err, game.ErrNoGames),
		errors.Is(err, ledger.ErrInvalidSession),
		errors.Is(err, ledger.ErrDuplicateName),
		errors.Is(err, ledger.ErrUnknownShooter),
		errors.Is(err, ledger.ErrUnknownGame),
		errors.Is(err, ledger.ErrArrowOutOfRange),
		errors.Is(err, ledger.ErrArrowIndexOutOfRange),
		errors.Is(err, ledger.ErrInvalidPoints),
		errors.Is(err, audio.ErrNoInputDevice),
		errors.Is(err, camera.ErrDeviceUnavailable):
		return http.StatusUnprocessableEntity
	case errors.Is(err, ledger.ErrNoSession),
		errors.Is(err, game.ErrInvalidState),
		errors.Is(err, engine.ErrSessionRunning):
		return http.StatusConflict
	case errors.Is(err, engine.ErrNoDevices),
		errors.Is(err, audio.ErrNotReopenable):
		return http.StatusNotImplemented
	case errors.Is(err, context.Canceled),
		errors.Is(err, context.DeadlineExceeded):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}

func (h *Handler) writeError(w http.ResponseWriter, status int, err error) {
	if status >= http.StatusInternalServerError {
		h.logger.Error("request failed", slog.Int("status", status), slog.Any("error", err))
	} else {
		h.logger.Debug("request rejected", slog.Int("status", status), slog.Any("error", err))
	}
	h.writeJSON(w, status, &ErrorResponse{Error: err.Error()})
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(body); err != nil {
		h.logger.Warn("failed to encode response", slog.Any("error", err))
	}
}
