package models

// PointScale maps the coloured target zones to point values
type PointScale struct {
	Yellow int `yaml:"yellow"`
	Red    int `yaml:"red"`
	White  int `yaml:"white"`
	Miss   int `yaml:"miss"`
}

// DefaultPointScale is the venue's standard scoring
func DefaultPointScale() PointScale {
	return PointScale{
		Yellow: 5,
		Red:    3,
		White:  1,
		Miss:   0,
	}
}

// Values lists the allowed point values, highest zone first
func (p PointScale) Values() []int {
	return []int{p.Yellow, p.Red, p.White, p.Miss}
}

// Allows reports whether v is one of the scale's point values
func (p PointScale) Allows(v int) bool {
	for _, allowed := range p.Values() {
		if v == allowed {
			return true
		}
	}
	return false
}
