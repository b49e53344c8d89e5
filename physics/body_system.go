package physics

import (
	"github.com/mlange-42/ark/ecs"
)

// BodySystem steps every obstacle body and keeps it inside the bounds.
type BodySystem struct {
	filter ecs.Filter3[Position, Velocity, Extent]
	bounds Bounds
}

// NewBodySystem creates a body system over the given world.
func NewBodySystem(w *ecs.World, bounds Bounds) *BodySystem {
	return &BodySystem{
		filter: *ecs.NewFilter3[Position, Velocity, Extent](w),
		bounds: bounds,
	}
}

// Update Euler-steps all bodies by dt and bounces them off the bounds.
func (s *BodySystem) Update(dt float32) {
	query := s.filter.Query()
	for query.Next() {
		pos, vel, ext := query.Get()
		Step(pos, vel, dt)
		BounceWithin(pos, vel, ext.Size, s.bounds)
	}
}

// Boxes returns the current AABB of every body, in query order.
func (s *BodySystem) Boxes() []AABB {
	var out []AABB
	query := s.filter.Query()
	for query.Next() {
		pos, _, ext := query.Get()
		out = append(out, AABB{X: pos.X, Y: pos.Y, W: ext.Size, H: ext.Size})
	}
	return out
}
