package regime

// Thresholds holds the named classification constants. They are global per
// deployment rather than tuned per instrument; varying them only requires
// a different config, not a code change.
type Thresholds struct {
	TrendWindow         int
	HeatedAbove         float64
	DepressedBelow      float64
	HighVolatilityAbove float64
}

// DefaultThresholds returns the standard 50-day / 70-30 / 2.5% rule set.
func DefaultThresholds() Thresholds {
	return Thresholds{
		TrendWindow:         50,
		HeatedAbove:         70,
		DepressedBelow:      30,
		HighVolatilityAbove: 2.5,
	}
}
