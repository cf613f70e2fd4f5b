package session

import "github.com/KirkDiggler/bowcinema/internal/models"

type SaveSessionInput struct {
	Session *models.SessionRecord
}

type GetSessionInput struct {
	SessionID string
}

type ListSessionsInput struct {
	// Limit caps the result; zero returns every session
	Limit int
}

type ListSessionsOutput struct {
	Sessions []*models.SessionRecord
}

type DeleteSessionInput struct {
	SessionID string
}
