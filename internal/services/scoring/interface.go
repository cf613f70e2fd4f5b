// Package scoring turns crop images into automatic points.
package scoring

//go:generate mockgen -package=mocks -destination=mocks/mock_scorer.go github.com/KirkDiggler/bowcinema/internal/services/scoring Scorer

import "context"

// Scorer returns the automatic point value for a cropped target image
type Scorer interface {
	Score(ctx context.Context, cropPath string) (int, error)
}
