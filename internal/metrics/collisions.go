package metrics

import (
	"github.com/san-kum/ballpit/internal/world"
)

// Collisions counts contacts of one kind across a run.
type Collisions struct {
	name  string
	pick  func(world.FrameStats) int
	count int
}

func NewPairCollisions() *Collisions {
	return &Collisions{name: "pair_collisions", pick: func(s world.FrameStats) int { return s.Collisions }}
}

func NewGroundContacts() *Collisions {
	return &Collisions{name: "ground_contacts", pick: func(s world.FrameStats) int { return s.GroundContacts }}
}

func NewWallContacts() *Collisions {
	return &Collisions{name: "wall_contacts", pick: func(s world.FrameStats) int { return s.WallContacts }}
}

func (c *Collisions) Name() string { return c.name }

func (c *Collisions) Observe(snap world.Snapshot, stats world.FrameStats) {
	c.count += c.pick(stats)
}

func (c *Collisions) Value() float64 { return float64(c.count) }

func (c *Collisions) Reset() { c.count = 0 }
