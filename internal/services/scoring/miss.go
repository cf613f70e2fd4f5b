package scoring

import (
	"context"

	"github.com/KirkDiggler/bowcinema/internal/models"
)

// MissScorer scores every crop as a miss. Real points come from manual
// overrides until an image classifier is plugged in.
type MissScorer struct {
	points models.PointScale
}

// NewMissScorer creates a scorer on the given point scale
func NewMissScorer(points models.PointScale) *MissScorer {
	return &MissScorer{points: points}
}

// Score always returns the miss value
func (s *MissScorer) Score(ctx context.Context, _ string) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	return s.points.Miss, nil
}
