package models

import (
	"time"
)

// ArrowRecord is one pre-allocated arrow slot of a shooter in a game
type ArrowRecord struct {
	// ID identifies the slot across persistence round trips
	ID string `json:"id"`

	// CamImage is the path of the captured (and annotated) camera frame
	CamImage string `json:"cam_image"`

	// CropImage is the path of the extracted target region, or the no-hit placeholder
	CropImage string `json:"crop_image"`

	// AutoPoints is the point value derived from the crop, 0 (miss) until scored
	AutoPoints int `json:"auto_points"`

	// ManualPoints is the human override, nil when never set
	ManualPoints *int `json:"manual_points,omitempty"`

	// FinalPoints is derived by reconciliation, never set directly
	FinalPoints int `json:"final_points"`
}

// Reconcile returns the final points for the arrow. An override equal to the
// automatic value cannot be told apart from no override at all.
func (a *ArrowRecord) Reconcile() int {
	if a.ManualPoints != nil && *a.ManualPoints != a.AutoPoints {
		return *a.ManualPoints
	}
	return a.AutoPoints
}

// ManualOrZero returns the override value, or 0 when none was set
func (a *ArrowRecord) ManualOrZero() int {
	if a.ManualPoints == nil {
		return 0
	}
	return *a.ManualPoints
}

// GameRecord holds one shooter's fixed-size arrow sequence for one game
type GameRecord struct {
	Name        string         `json:"name"`
	TotalPoints int            `json:"total_points"`
	Arrows      []*ArrowRecord `json:"arrows"`
}

// ShooterRecord holds a shooter's games in game-selection order
type ShooterRecord struct {
	Name        string        `json:"name"`
	TotalPoints int           `json:"total_points"`
	Games       []*GameRecord `json:"games"`
}

// Game returns the shooter's record for the named game, or nil
func (s *ShooterRecord) Game(name string) *GameRecord {
	for _, g := range s.Games {
		if g.Name == name {
			return g
		}
	}
	return nil
}

// SessionRecord is the full shooter -> game -> arrow grid of one session
type SessionRecord struct {
	// ID is derived from the session start time
	ID string `json:"id"`

	// ImageDir is where camera frames of this session are stored
	ImageDir string `json:"image_dir"`

	// ResultDir is where crops and reports of this session are stored
	ResultDir string `json:"result_dir"`

	// ArrowsPerPlayer is fixed at init and never changes within the session
	ArrowsPerPlayer int `json:"arrows_per_player"`

	// TotalArrows = shooters * games * arrows per player
	TotalArrows int `json:"total_arrows"`

	// Shooters in roster order
	Shooters []*ShooterRecord `json:"shooters"`

	CreatedAt time.Time `json:"created_at"`
}

// Shooter returns the named shooter record, or nil
func (s *SessionRecord) Shooter(name string) *ShooterRecord {
	for _, sh := range s.Shooters {
		if sh.Name == name {
			return sh
		}
	}
	return nil
}

// Clone returns a deep copy of the session tree
func (s *SessionRecord) Clone() *SessionRecord {
	if s == nil {
		return nil
	}
	out := *s
	out.Shooters = make([]*ShooterRecord, 0, len(s.Shooters))
	for _, sh := range s.Shooters {
		shCopy := &ShooterRecord{
			Name:        sh.Name,
			TotalPoints: sh.TotalPoints,
			Games:       make([]*GameRecord, 0, len(sh.Games)),
		}
		for _, g := range sh.Games {
			gCopy := &GameRecord{
				Name:        g.Name,
				TotalPoints: g.TotalPoints,
				Arrows:      make([]*ArrowRecord, 0, len(g.Arrows)),
			}
			for _, a := range g.Arrows {
				aCopy := *a
				if a.ManualPoints != nil {
					v := *a.ManualPoints
					aCopy.ManualPoints = &v
				}
				gCopy.Arrows = append(gCopy.Arrows, &aCopy)
			}
			shCopy.Games = append(shCopy.Games, gCopy)
		}
		out.Shooters = append(out.Shooters, shCopy)
	}
	return &out
}
