package world

import (
	"math"
)

// ResolvePair separates two overlapping bodies and applies an equal and
// opposite impulse along the contact normal. Both bodies count as unit mass.
// Touching exactly (distance == ra+rb) is not a collision. It reports
// whether the pair overlapped.
func ResolvePair(a, b *Body) bool {
	delta := b.Pos.Sub(a.Pos)
	dist := delta.Length()
	minDist := a.Radius + b.Radius

	if dist == 0 || dist >= minDist {
		return false
	}

	n := delta.Mult(1 / dist)

	half := (minDist - dist) * 0.5
	a.Pos = a.Pos.Sub(n.Mult(half))
	b.Pos = b.Pos.Add(n.Mult(half))

	velAlongNormal := b.Vel.Sub(a.Vel).Dot(n)
	if velAlongNormal > 0 {
		return true
	}

	restitution := math.Min(a.Bounce, b.Bounce)
	impulse := n.Mult(-(1 + restitution) * velAlongNormal / 2)

	a.Vel = a.Vel.Sub(impulse)
	b.Vel = b.Vel.Add(impulse)
	return true
}
