package world

import (
	"math/rand"

	"github.com/jakecoffman/cp/v2"
)

// Spawn lays out count bodies in a row along the top of the viewport. Only
// the horizontal velocity is random, uniform in [-MaxSpawnSpeed, MaxSpawnSpeed].
func Spawn(count int, color string, rng *rand.Rand, p Params) []Body {
	if count < 0 {
		count = 0
	}
	bodies := make([]Body, count)
	for i := range bodies {
		bodies[i] = Body{
			Pos:    cp.Vector{X: p.SpawnX + p.SpawnSpacing*float64(i), Y: p.SpawnY},
			Vel:    cp.Vector{X: (rng.Float64()*2 - 1) * p.MaxSpawnSpeed, Y: 0},
			Radius: p.Radius,
			Bounce: p.Bounce,
			Color:  color,
		}
	}
	return bodies
}
