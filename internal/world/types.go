package world

import (
	"math"

	"github.com/jakecoffman/cp/v2"
)

// Body is a simulated ball. Radius is fixed for the body's lifetime.
type Body struct {
	Pos    cp.Vector
	Vel    cp.Vector
	Radius float64
	Bounce float64
	Color  string
}

// Speed returns the magnitude of the body's velocity.
func (b Body) Speed() float64 { return b.Vel.Length() }

// KineticEnergy assumes unit mass, matching the collision response.
func (b Body) KineticEnergy() float64 { return 0.5 * b.Vel.LengthSq() }

func (b Body) IsValid() bool {
	for _, v := range [...]float64{b.Pos.X, b.Pos.Y, b.Vel.X, b.Vel.Y} {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Bounds is the drawable viewport [0,Width] x [0,Height], y pointing down.
type Bounds struct {
	Width  float64
	Height float64
}

func (b Bounds) Valid() bool { return b.Width > 0 && b.Height > 0 }

// Params are the per-frame tuning constants.
type Params struct {
	Gravity       float64 `yaml:"gravity"`
	Friction      float64 `yaml:"friction"`
	WallBounce    float64 `yaml:"wall_bounce"`
	GroundOffset  float64 `yaml:"ground_offset"`
	SpawnX        float64 `yaml:"spawn_x"`
	SpawnSpacing  float64 `yaml:"spawn_spacing"`
	SpawnY        float64 `yaml:"spawn_y"`
	Radius        float64 `yaml:"radius"`
	Bounce        float64 `yaml:"bounce"`
	MaxSpawnSpeed float64 `yaml:"max_spawn_speed"`
}

const (
	DefaultGravity       = 0.5
	DefaultFriction      = 0.98
	DefaultWallBounce    = 0.8
	DefaultGroundOffset  = 200.0
	DefaultSpawnX        = 150.0
	DefaultSpawnSpacing  = 25.0
	DefaultSpawnY        = 50.0
	DefaultRadius        = 12.0
	DefaultBounce        = 0.6
	DefaultMaxSpawnSpeed = 1.0
)

func DefaultParams() Params {
	return Params{
		Gravity:       DefaultGravity,
		Friction:      DefaultFriction,
		WallBounce:    DefaultWallBounce,
		GroundOffset:  DefaultGroundOffset,
		SpawnX:        DefaultSpawnX,
		SpawnSpacing:  DefaultSpawnSpacing,
		SpawnY:        DefaultSpawnY,
		Radius:        DefaultRadius,
		Bounce:        DefaultBounce,
		MaxSpawnSpeed: DefaultMaxSpawnSpeed,
	}
}

// Contact records what a body touched during one integration step.
type Contact uint8

const (
	ContactWall Contact = 1 << iota
	ContactGround
)

func (c Contact) Has(flag Contact) bool { return c&flag != 0 }

// Scene is the configure action: a colour token, a body count and a ground
// angle in degrees.
type Scene struct {
	Color    string  `yaml:"color"`
	Count    int     `yaml:"count"`
	AngleDeg float64 `yaml:"angle"`
}

// FrameStats summarises one call to Frame.
type FrameStats struct {
	Frame          uint64
	Bodies         int
	Collisions     int
	WallContacts   int
	GroundContacts int
}

// Snapshot is a copy of the world state safe to read outside the lock.
type Snapshot struct {
	Frame  uint64
	Bounds Bounds
	Ground *Ground
	Bodies []Body
}

func (s Snapshot) KineticEnergy() float64 {
	total := 0.0
	for _, b := range s.Bodies {
		total += b.KineticEnergy()
	}
	return total
}
