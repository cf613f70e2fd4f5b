package api

import (
	"context"

	"github.com/KirkDiggler/bowcinema/internal/models"
	"github.com/KirkDiggler/bowcinema/internal/services/game"
	"github.com/KirkDiggler/bowcinema/internal/services/ledger"
)

// Controller is the command surface of the engine
type Controller interface {
	Start(ctx context.Context, input *game.StartInput) (*game.StartOutput, error)
	ManualBang(ctx context.Context) (bool, error)
	SkipRound(ctx context.Context) (*game.RoundOutput, error)
	Abort(ctx context.Context) (*game.RoundOutput, error)
	SetOverride(ctx context.Context, input *ledger.SetManualOverrideInput) (*ledger.SetManualOverrideOutput, error)
	CloseSession(ctx context.Context) (*ledger.CloseSessionOutput, error)
	Snapshot(ctx context.Context) (*game.StatusOutput, *models.SessionRecord, error)
	SwitchCamera(ctx context.Context, index int) error
	SwitchMicrophone(ctx context.Context, index int) error
}

// StartRequest is the body of POST /sessions
type StartRequest struct {
	Shooters []string `json:"shooters"`
	Games    []string `json:"games"`
}

// StartResponse identifies the started session
type StartResponse struct {
	SessionID string `json:"session_id"`
	ImageDir  string `json:"image_dir"`
	ResultDir string `json:"result_dir"`
}

// BangResponse says whether a manual bang was queued
type BangResponse struct {
	Accepted bool `json:"accepted"`
}

// RoundResponse reports the sequencer after a transition
type RoundResponse struct {
	State   models.SequenceState `json:"state"`
	Cursor  models.Cursor        `json:"cursor"`
	Shooter string               `json:"shooter,omitempty"`
	Game    string               `json:"game,omitempty"`
}

// OverrideRequest is the body of PUT /sessions/current/scores.
// ArrowIndex is 0-based.
type OverrideRequest struct {
	Shooter    string `json:"shooter"`
	Game       string `json:"game"`
	ArrowIndex int    `json:"arrow_index"`
	Points     int    `json:"points"`
}

// OverrideResponse carries the recomputed totals
type OverrideResponse struct {
	FinalPoints  int `json:"final_points"`
	GameTotal    int `json:"game_total"`
	ShooterTotal int `json:"shooter_total"`
}

// CloseResponse points at the written report
type CloseResponse struct {
	ReportPath string `json:"report_path"`
	SessionID  string `json:"session_id"`
}

// CurrentResponse is the live view of the venue
type CurrentResponse struct {
	State            models.SequenceState  `json:"state"`
	Cursor           models.Cursor         `json:"cursor"`
	Shooter          string                `json:"shooter,omitempty"`
	Game             string                `json:"game,omitempty"`
	RemainingSeconds float64               `json:"remaining_seconds"`
	Session          *models.SessionRecord `json:"session,omitempty"`
}

// DeviceRequest is the body of PUT /devices/camera and PUT /devices/microphone
type DeviceRequest struct {
	Index int `json:"index"`
}

// ErrorResponse is written for every failed request
type ErrorResponse struct {
	Error string `json:"error"`
}
