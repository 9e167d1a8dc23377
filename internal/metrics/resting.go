package metrics

import (
	"github.com/san-kum/ballpit/internal/world"
)

// Resting is the fraction of bodies slower than threshold on the latest
// frame. An empty scene counts as fully at rest.
type Resting struct {
	name      string
	threshold float64
	resting   int
	bodies    int
}

func NewResting(threshold float64) *Resting {
	return &Resting{
		name:      "resting",
		threshold: threshold,
	}
}

func (r *Resting) Name() string {
	return r.name
}

func (r *Resting) Observe(snap world.Snapshot, stats world.FrameStats) {
	r.bodies = len(snap.Bodies)
	r.resting = 0
	for _, b := range snap.Bodies {
		if b.Speed() < r.threshold {
			r.resting++
		}
	}
}

func (r *Resting) Value() float64 {
	if r.bodies == 0 {
		return 1.0
	}
	return float64(r.resting) / float64(r.bodies)
}

func (r *Resting) Reset() {
	r.resting = 0
	r.bodies = 0
}
