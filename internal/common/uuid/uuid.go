// Package uuid hands out identifiers for arrow slots so persisted session
// records can be addressed without relying on slice positions.
package uuid

import "github.com/google/uuid"

//go:generate mockgen -package=mocks -destination=mocks/mock_uuid.go github.com/KirkDiggler/bowcinema/internal/common/uuid UUID

type UUID interface {
	NewUUID() string
}

// Generator produces random (v4) identifiers
type Generator struct{}

func New() *Generator {
	return &Generator{}
}

// NewUUID returns a new random identifier in canonical string form
func (g *Generator) NewUUID() string {
	return uuid.NewString()
}
