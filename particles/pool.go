// Package particles implements the deterministic fixed-capacity particle
// engine: burst emission, global gravity, localized gravity wells, Euler
// integration, rectangle collision response, and lifetime-based color
// compositing.
package particles

import (
	"math"

	"github.com/pthm-cable/ember/canvas"
)

// additiveBoost scales RGB in DrawAdditive to fake additive blending on
// backends without a blend-mode framebuffer.
const additiveBoost = 1.5

// Particle is one pool slot. When Alive is false the remaining fields are
// stale leftovers from the previous occupant and mean nothing until the
// slot is re-emitted.
type Particle struct {
	X, Y       float32
	VelX, VelY float32
	Life       float32 // seconds remaining
	LifeTotal  float32 // Life at spawn; Life <= LifeTotal always
	Size       float32 // square side, pixels
	StartColor canvas.Color
	EndColor   canvas.Color
	Alive      bool
}

// Pool is a fixed-capacity particle store. Capacity is set once at
// construction and never changes; slots are recycled, never reallocated.
// The pool owns its RNG state, so independent pools evolve independently
// and deterministically.
type Pool struct {
	particles []Particle
	gravityX  float32
	gravityY  float32
	rng       lcg
}

// NewPool allocates a pool of inert slots. Gravity defaults to (0, 300),
// screen-down; the RNG always starts from the same fixed seed.
func NewPool(capacity int) *Pool {
	return &Pool{
		particles: make([]Particle, capacity),
		gravityX:  0,
		gravityY:  300,
		rng:       lcg{state: defaultSeed},
	}
}

// Capacity returns the fixed slot count.
func (p *Pool) Capacity() int {
	return len(p.particles)
}

// AliveCount returns the number of live particles.
func (p *Pool) AliveCount() int {
	n := 0
	for i := range p.particles {
		if p.particles[i].Alive {
			n++
		}
	}
	return n
}

// Snapshot copies the full particle field, stale slots included. Intended
// for tooling and tests; the copy shares nothing with the pool.
func (p *Pool) Snapshot() []Particle {
	out := make([]Particle, len(p.particles))
	copy(out, p.particles)
	return out
}

// SetGravity replaces the global force applied every Update step. Any
// float pair is accepted.
func (p *Pool) SetGravity(gx, gy float32) {
	p.gravityX = gx
	p.gravityY = gy
}

// EmitBurst spawns up to cfg.Count particles at (x, y). Slots are claimed
// first-fit from index 0. When the pool is full the remainder of the burst
// is dropped silently; truncation is policy, not an error.
//
// Per spawned particle exactly four random values are drawn, in this
// order: direction, speed, lifetime, size. Reordering the draws breaks
// reproducibility.
func (p *Pool) EmitBurst(x, y float32, cfg EmitterConfig) {
	for n := 0; n < cfg.Count; n++ {
		i := p.freeSlot()
		if i < 0 {
			return
		}

		dir := cfg.BaseDirection + p.rng.between(-cfg.SpreadRadians, cfg.SpreadRadians)
		spd := p.rng.between(cfg.SpeedMin, cfg.SpeedMax)
		life := p.rng.between(cfg.LifeMin, cfg.LifeMax)
		size := p.rng.between(cfg.SizeMin, cfg.SizeMax)

		p.particles[i] = Particle{
			X:          x,
			Y:          y,
			VelX:       float32(math.Cos(float64(dir))) * spd,
			VelY:       float32(math.Sin(float64(dir))) * spd,
			Life:       life,
			LifeTotal:  life,
			Size:       size,
			StartColor: cfg.StartColor,
			EndColor:   cfg.EndColor,
			Alive:      true,
		}
	}
}

func (p *Pool) freeSlot() int {
	for i := range p.particles {
		if !p.particles[i].Alive {
			return i
		}
	}
	return -1
}

// ApplyGravityWell pulls every live particle within radius of (cx, cy)
// toward it. Falloff is linear in squared distance: near-unit effect at
// the center, zero at the rim. A particle exactly on the center is skipped
// outright (no direction to pull along), and the normalization distance is
// floored at 1e-3 so near-center particles do not blow up.
//
// This is an optional, caller-invoked force, independent of the global
// gravity applied in Update.
func (p *Pool) ApplyGravityWell(cx, cy, strength, radius, dt float32) {
	if radius <= 0 {
		return
	}
	r2 := radius * radius
	for i := range p.particles {
		pt := &p.particles[i]
		if !pt.Alive {
			continue
		}
		dx := cx - pt.X
		dy := cy - pt.Y
		d2 := dx*dx + dy*dy
		if d2 > r2 || d2 == 0 {
			continue
		}

		falloff := 1 - d2/r2

		d := float32(math.Sqrt(float64(d2)))
		if d < 1e-3 {
			d = 1e-3
		}
		invD := 1 / d

		a := strength * falloff
		pt.VelX += dx * invD * a * dt
		pt.VelY += dy * invD * a * dt
	}
}

// Update advances every live particle by dt: gravity into velocity,
// velocity into position, dt off the lifetime. A particle whose lifetime
// reaches zero goes inert in place; its fields are left as they died.
func (p *Pool) Update(dt float32) {
	for i := range p.particles {
		pt := &p.particles[i]
		if !pt.Alive {
			continue
		}
		pt.VelX += p.gravityX * dt
		pt.VelY += p.gravityY * dt
		pt.X += pt.VelX * dt
		pt.Y += pt.VelY * dt

		pt.Life -= dt
		if pt.Life <= 0 {
			pt.Alive = false
		}
	}
}

// CollideRect reflects live particles out of the rectangle (rx, ry, rw,
// rh). A penetrating particle is pushed to the nearest edge on one axis
// and that axis's velocity is sign-flipped and scaled by restitution
// (0 = dead stop on that axis, 1 = elastic). Axis-aligned reflection only;
// no mass, no impulse.
func (p *Pool) CollideRect(rx, ry, rw, rh, restitution float32) {
	if rw <= 0 || rh <= 0 {
		return
	}
	for i := range p.particles {
		pt := &p.particles[i]
		if !pt.Alive {
			continue
		}
		if pt.X <= rx || pt.X >= rx+rw || pt.Y <= ry || pt.Y >= ry+rh {
			continue
		}

		// Penetration depth past each edge; resolve on the shallowest.
		left := pt.X - rx
		right := rx + rw - pt.X
		top := pt.Y - ry
		bottom := ry + rh - pt.Y

		minPen := left
		if right < minPen {
			minPen = right
		}
		if top < minPen {
			minPen = top
		}
		if bottom < minPen {
			minPen = bottom
		}

		switch minPen {
		case left:
			pt.X = rx
			pt.VelX = -pt.VelX * restitution
		case right:
			pt.X = rx + rw
			pt.VelX = -pt.VelX * restitution
		case top:
			pt.Y = ry
			pt.VelY = -pt.VelY * restitution
		default:
			pt.Y = ry + rh
			pt.VelY = -pt.VelY * restitution
		}
	}
}

// Draw rasterizes every live particle as a filled square anchored at its
// top-left corner. The color runs from StartColor at spawn to EndColor at
// death, interpolated on the lifetime fraction.
func (p *Pool) Draw(cv canvas.Canvas) {
	for i := range p.particles {
		pt := &p.particles[i]
		if !pt.Alive {
			continue
		}
		c := canvas.Lerp(pt.StartColor, pt.EndColor, pt.lifeFraction())
		canvas.FillRectF(cv, pt.X, pt.Y, pt.Size, pt.Size, c)
	}
}

// DrawAdditive is Draw with the RGB channels boosted and clamped, for a
// hot additive look. Alpha is unchanged.
func (p *Pool) DrawAdditive(cv canvas.Canvas) {
	for i := range p.particles {
		pt := &p.particles[i]
		if !pt.Alive {
			continue
		}
		c := canvas.Lerp(pt.StartColor, pt.EndColor, pt.lifeFraction())
		canvas.FillRectF(cv, pt.X, pt.Y, pt.Size, pt.Size, canvas.Boost(c, additiveBoost))
	}
}

// lifeFraction is the remaining share of the particle's life in [0, 1]:
// 1 at spawn, 0 at death.
func (pt *Particle) lifeFraction() float32 {
	t := pt.Life / pt.LifeTotal
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}
