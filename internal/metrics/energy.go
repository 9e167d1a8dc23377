package metrics

import (
	"github.com/san-kum/ballpit/internal/world"
)

// KineticEnergy is the mean total kinetic energy per frame, unit mass.
type KineticEnergy struct {
	name    string
	samples int
	total   float64
	last    float64
}

func NewKineticEnergy() *KineticEnergy {
	return &KineticEnergy{name: "kinetic_energy"}
}

func (e *KineticEnergy) Name() string { return e.name }

func (e *KineticEnergy) Observe(snap world.Snapshot, stats world.FrameStats) {
	e.last = snap.KineticEnergy()
	e.total += e.last
	e.samples++
}

func (e *KineticEnergy) Value() float64 {
	if e.samples == 0 {
		return 0
	}
	return e.total / float64(e.samples)
}

// Last returns the energy of the most recent frame.
func (e *KineticEnergy) Last() float64 { return e.last }

func (e *KineticEnergy) Reset() {
	e.samples = 0
	e.total = 0
	e.last = 0
}
