// Package physics holds the host-side moving bodies that the particle
// pool collides against: square obstacles Euler-stepped each frame and
// bounced off the canvas bounds.
package physics

// Position is a body's top-left corner in canvas space.
type Position struct {
	X, Y float32
}

// Velocity in pixels per second.
type Velocity struct {
	X, Y float32
}

// Extent is a body's square side length.
type Extent struct {
	Size float32
}

// AABB is an axis-aligned box.
type AABB struct {
	X, Y, W, H float32
}

// Intersects reports whether two boxes overlap.
func (a AABB) Intersects(b AABB) bool {
	return a.X < b.X+b.W && a.X+a.W > b.X &&
		a.Y < b.Y+b.H && a.Y+a.H > b.Y
}

// Bounds is the legal region bodies bounce within.
type Bounds struct {
	Width, Height float32
}

// Step advances a body by simple Euler integration.
func Step(pos *Position, vel *Velocity, dt float32) {
	pos.X += vel.X * dt
	pos.Y += vel.Y * dt
}

// BounceWithin clamps a body of the given size into bounds and turns the
// offending velocity axis back inward. The sign flips, the magnitude does
// not; boundary bounce is undamped, unlike particle collision response.
func BounceWithin(pos *Position, vel *Velocity, size float32, b Bounds) {
	if pos.X < 0 {
		pos.X = 0
		if vel.X < 0 {
			vel.X = -vel.X
		}
	}
	if pos.X+size > b.Width {
		pos.X = b.Width - size
		if vel.X > 0 {
			vel.X = -vel.X
		}
	}
	if pos.Y < 0 {
		pos.Y = 0
		if vel.Y < 0 {
			vel.Y = -vel.Y
		}
	}
	if pos.Y+size > b.Height {
		pos.Y = b.Height - size
		if vel.Y > 0 {
			vel.Y = -vel.Y
		}
	}
}
