// Package roster keeps the shooter names configured for the next session.
package roster

import (
	"fmt"
	"strings"
	"sync"
)

const firstShooterName = "Hawkeye"

// RosterError is a custom error type for roster errors
type RosterError string

// Error implements the error interface
func (e RosterError) Error() string {
	return string(e)
}

const (
	ErrInvalidMaxPlayers RosterError = "max players must be at least 1"
	ErrIndexOutOfRange   RosterError = "shooter index out of range"
	ErrEmptyName         RosterError = "shooter name cannot be empty"
	ErrDuplicateName     RosterError = "shooter name already taken"
)

// Config for the roster
type Config struct {
	MaxPlayers int

	// Names replaces the default names from the front
	Names []string
}

// Roster holds MaxPlayers name slots of which the first Count are active
type Roster struct {
	mu    sync.RWMutex
	names []string
	count int
}

// New creates a roster with one active shooter
func New(cfg *Config) (*Roster, error) {
	if cfg == nil || cfg.MaxPlayers < 1 {
		return nil, ErrInvalidMaxPlayers
	}

	names := make([]string, cfg.MaxPlayers)
	for i := range names {
		names[i] = DefaultName(i)
	}
	for i, n := range cfg.Names {
		if i >= len(names) {
			break
		}
		if n = strings.TrimSpace(n); n != "" {
			names[i] = n
		}
	}

	count := 1
	if len(cfg.Names) > 1 {
		count = min(len(cfg.Names), cfg.MaxPlayers)
	}

	return &Roster{
		names: names,
		count: count,
	}, nil
}

// DefaultName is the placeholder name of slot i
func DefaultName(i int) string {
	if i == 0 {
		return firstShooterName
	}
	return fmt.Sprintf("???-%02d", i+1)
}

// SetCount clamps n into [1, max] and returns the active count
func (r *Roster) SetCount(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.count = max(1, min(n, len(r.names)))
	return r.count
}

// Count returns the number of active shooters
func (r *Roster) Count() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.count
}

// Max returns the number of slots
func (r *Roster) Max() int {
	return len(r.names)
}

// Rename sets the name of slot index. Active names must stay unique since
// the ledger keys shooters by name.
func (r *Roster) Rename(index int, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return ErrEmptyName
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if index < 0 || index >= len(r.names) {
		return ErrIndexOutOfRange
	}
	for i, n := range r.names {
		if i != index && n == name {
			return ErrDuplicateName
		}
	}
	r.names[index] = name
	return nil
}

// Shooters returns the active names in slot order
func (r *Roster) Shooters() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return append([]string(nil), r.names[:r.count]...)
}
