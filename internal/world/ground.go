package world

import (
	"math"

	"github.com/jakecoffman/cp/v2"
)

// Ground is a directed segment A->B with its unit normal. The normal is
// (-dy/len, dx/len), which points up the screen for a left-to-right segment.
type Ground struct {
	A      cp.Vector
	B      cp.Vector
	Normal cp.Vector
}

// NewGround builds a ground segment starting offset pixels above the bottom
// of the viewport and spanning the viewport width along angleDeg.
func NewGround(angleDeg float64, b Bounds, offset float64) (*Ground, error) {
	angle := angleDeg * math.Pi / 180
	a := cp.Vector{X: 0, Y: b.Height - offset}
	end := a.Add(cp.ForAngle(angle).Mult(b.Width))

	d := end.Sub(a)
	length := d.Length()
	if length == 0 {
		return nil, ErrDegenerateGround
	}

	return &Ground{
		A:      a,
		B:      end,
		Normal: cp.Vector{X: -d.Y / length, Y: d.X / length},
	}, nil
}

// YAt evaluates the ground line at x. A vertical segment has no height
// function and yields NaN, which fails every comparison downstream.
func (g *Ground) YAt(x float64) float64 {
	dx := g.B.X - g.A.X
	if dx == 0 {
		return math.NaN()
	}
	t := (x - g.A.X) / dx
	return g.A.Y + t*(g.B.Y-g.A.Y)
}

// Clone returns a copy, or nil for a nil ground.
func (g *Ground) Clone() *Ground {
	if g == nil {
		return nil
	}
	c := *g
	return &c
}
