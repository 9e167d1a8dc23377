package world

// Integrate advances one body by one frame: gravity, explicit Euler,
// left/right/top wall clamps, then ground correction. There is no bottom
// wall; without a ground a body falls forever.
func Integrate(b *Body, bounds Bounds, g *Ground, p Params) Contact {
	var contact Contact

	b.Vel.Y += p.Gravity
	b.Pos = b.Pos.Add(b.Vel)

	if b.Pos.X-b.Radius < 0 {
		b.Pos.X = b.Radius
		b.Vel.X *= -p.WallBounce
		contact |= ContactWall
	}
	if b.Pos.X+b.Radius > bounds.Width {
		b.Pos.X = bounds.Width - b.Radius
		b.Vel.X *= -p.WallBounce
		contact |= ContactWall
	}
	if b.Pos.Y-b.Radius < 0 {
		b.Pos.Y = b.Radius
		b.Vel.Y *= -p.WallBounce
		contact |= ContactWall
	}

	if g == nil {
		return contact
	}

	gy := g.YAt(b.Pos.X)
	if b.Pos.Y+b.Radius > gy {
		b.Pos.Y = gy - b.Radius

		// Reflect about the normal, then damp both components.
		vDotN := b.Vel.Dot(g.Normal)
		b.Vel = b.Vel.Sub(g.Normal.Mult((1 + b.Bounce) * vDotN))
		b.Vel = b.Vel.Mult(p.Friction)
		contact |= ContactGround
	}

	return contact
}
