package game

//go:generate mockgen -package=mocks -destination=mocks/mock_service.go github.com/KirkDiggler/bowcinema/internal/services/game Service

import "context"

// Service sequences shooters through the selected games and turns bangs
// into recorded arrows. It is not safe for concurrent use; the engine owns it.
type Service interface {
	// Start begins a session with round (shooter 0, game 0)
	Start(ctx context.Context, input *StartInput) (*StartOutput, error)

	// RoundFinished advances to the next shooter/game pair or completes the session
	RoundFinished(ctx context.Context) (*RoundOutput, error)

	// CheckRound advances when the player reports the video finished
	CheckRound(ctx context.Context) (*RoundOutput, error)

	// SkipRound ends the active round early
	SkipRound(ctx context.Context) (*RoundOutput, error)

	// Abort stops playback and completes the session early
	Abort(ctx context.Context) (*RoundOutput, error)

	// HandleBang captures, extracts and records one arrow of the active round
	HandleBang(ctx context.Context) (*BangOutput, error)

	// Status describes the current state and round
	Status(ctx context.Context) *StatusOutput
}
