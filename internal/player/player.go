// Package player plays the game videos shooters aim at.
package player

//go:generate mockgen -package=mocks -destination=mocks/mock_player.go github.com/KirkDiggler/bowcinema/internal/player Player

import "time"

// Player drives playback of one round.
type Player interface {
	// Play starts a random video of game for shooter
	Play(shooter, game string) error

	Pause()
	Resume()
	Stop()

	// IsFinished reports whether a started video ran to its end
	IsFinished() bool

	RemainingTime() time.Duration
}

// Renderer is implemented by players that draw from the caller's loop
// instead of their own thread.
type Renderer interface {
	Render()
}
