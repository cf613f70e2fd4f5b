package session

//go:generate mockgen -package=mocks -destination=mocks/mock_repository.go github.com/KirkDiggler/bowcinema/internal/repositories/session Repository

import (
	"context"

	"github.com/KirkDiggler/bowcinema/internal/models"
)

// Repository defines the interface for session record persistence
type Repository interface {
	// SaveSession persists a session record, replacing any earlier save
	SaveSession(ctx context.Context, input *SaveSessionInput) error

	// GetSession retrieves a session record by ID
	GetSession(ctx context.Context, input *GetSessionInput) (*models.SessionRecord, error)

	// ListSessions retrieves session records, newest first
	ListSessions(ctx context.Context, input *ListSessionsInput) (*ListSessionsOutput, error)

	// DeleteSession removes a session record
	DeleteSession(ctx context.Context, input *DeleteSessionInput) error
}
