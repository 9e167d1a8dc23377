package metrics

import "github.com/san-kum/ballpit/internal/sim"

// Default returns the metric set reported by headless runs.
func Default() []sim.Metric {
	return []sim.Metric{
		NewKineticEnergy(),
		NewPairCollisions(),
		NewGroundContacts(),
		NewWallContacts(),
		NewResting(1.0),
	}
}
