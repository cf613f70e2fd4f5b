package clock

import "time"

//go:generate mockgen -package=mocks -destination=mocks/mock_clock.go github.com/KirkDiggler/bowcinema/internal/common/clock Clock
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

// DefaultClock implements the Clock interface using the system clock
type DefaultClock struct{}

// Now returns the current time
func (c *DefaultClock) Now() time.Time {
	return time.Now()
}

// Sleep blocks the calling goroutine for d
func (c *DefaultClock) Sleep(d time.Duration) {
	time.Sleep(d)
}
