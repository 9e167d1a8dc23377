package world

import (
	"fmt"
	"math/rand"
	"sync"
)

// World is the mutable simulation state: bodies, the optional ground and the
// viewport bounds.
type World struct {
	mu     sync.Mutex
	bodies []Body
	ground *Ground
	bounds Bounds
	params Params
	rng    *rand.Rand
	frame  uint64
}

// New returns an empty world with no ground. rng drives spawn velocities.
func New(bounds Bounds, params Params, rng *rand.Rand) *World {
	return &World{
		bounds: bounds,
		params: params,
		rng:    rng,
		bodies: make([]Body, 0),
	}
}

// Configure rebuilds the ground and replaces every body. A degenerate ground
// clears the ground, still spawns the bodies, and is reported as a
// *FrameError wrapping ErrDegenerateGround.
func (w *World) Configure(s Scene) error {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.bodies = Spawn(s.Count, s.Color, w.rng, w.params)

	g, err := NewGround(s.AngleDeg, w.bounds, w.params.GroundOffset)
	w.ground = g
	if err != nil {
		return &FrameError{Frame: w.frame, Wrapped: fmt.Errorf("ground at %.1f°: %w", s.AngleDeg, err)}
	}
	return nil
}

// Resize updates the viewport. The ground keeps the geometry it was built
// with until the next Configure.
func (w *World) Resize(width, height float64) error {
	b := Bounds{Width: width, Height: height}
	if !b.Valid() {
		return fmt.Errorf("resize to %.0fx%.0f: %w", width, height, ErrInvalidBounds)
	}
	w.mu.Lock()
	w.bounds = b
	w.mu.Unlock()
	return nil
}

// Frame runs one render/physics/draw pass under the world lock. A nil
// renderer steps the physics only.
func (w *World) Frame(r Renderer) FrameStats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.frameLocked(r)
}

// FrameSnapshot is Frame followed by Snapshot under the same lock, so the
// stats and the snapshot always describe the same bodies.
func (w *World) FrameSnapshot(r Renderer) (FrameStats, Snapshot) {
	w.mu.Lock()
	defer w.mu.Unlock()
	stats := w.frameLocked(r)
	return stats, w.snapshotLocked()
}

func (w *World) frameLocked(r Renderer) FrameStats {
	if r != nil {
		r.Clear()
		r.StrokeRect(0, 0, w.bounds.Width, w.bounds.Height)
		if w.ground != nil {
			r.StrokeLine(w.ground.A, w.ground.B)
		}
	}

	stats := w.step()

	if r != nil {
		for i := range w.bodies {
			b := &w.bodies[i]
			r.FillCircle(b.Pos, b.Radius, b.Color)
		}
	}

	return stats
}

func (w *World) step() FrameStats {
	w.frame++
	stats := FrameStats{Frame: w.frame, Bodies: len(w.bodies)}

	for i := range w.bodies {
		c := Integrate(&w.bodies[i], w.bounds, w.ground, w.params)
		if c.Has(ContactWall) {
			stats.WallContacts++
		}
		if c.Has(ContactGround) {
			stats.GroundContacts++
		}
	}

	// Single pass over all pairs; overlaps left behind by a later pair are
	// picked up next frame.
	for i := 0; i < len(w.bodies); i++ {
		for j := i + 1; j < len(w.bodies); j++ {
			if ResolvePair(&w.bodies[i], &w.bodies[j]) {
				stats.Collisions++
			}
		}
	}

	return stats
}

// Snapshot copies the current state.
func (w *World) Snapshot() Snapshot {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.snapshotLocked()
}

func (w *World) snapshotLocked() Snapshot {
	bodies := make([]Body, len(w.bodies))
	copy(bodies, w.bodies)
	return Snapshot{
		Frame:  w.frame,
		Bounds: w.bounds,
		Ground: w.ground.Clone(),
		Bodies: bodies,
	}
}

func (w *World) Bounds() Bounds {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.bounds
}

func (w *World) Params() Params {
	return w.params
}
