package game

import (
	"math"
	"time"

	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ember/particles"
	"github.com/pthm-cable/ember/telemetry"
)

// Update advances the playground by one frame: input, then as many fixed
// DT steps as the elapsed frame time covers. The pool itself never reads a
// clock; fixed-step discipline lives here.
func (g *Game) Update() {
	g.handleInput()
	if g.paused {
		return
	}

	frame := rl.GetFrameTime()
	if frame > maxFrameTime {
		frame = maxFrameTime
	}
	g.accumulator += frame
	for g.accumulator >= DT {
		g.step(DT)
		g.accumulator -= DT
	}
}

// UpdateHeadless runs one fixed step driven by a scripted emitter: the
// fountain preset firing from bottom-center every tick. Used for soak and
// telemetry runs without a window.
func (g *Game) UpdateHeadless() {
	g.fountainOn = true
	g.mouseDown = false
	g.wellActive = false
	g.step(DT)
}

// step runs a single simulation tick: bodies, emission, optional well,
// integration, collision response, telemetry sample.
func (g *Game) step(dt float32) {
	start := time.Now()

	g.pool.SetGravity(float32(g.cfg.Pool.GravityX), g.params.GravityY)
	g.bodySystem.Update(dt)

	var emitted, dropped int
	if g.mouseDown {
		cfg := g.burst
		// x-based wiggle so a held emitter feels alive
		cfg.BaseDirection += 0.3 * float32(math.Sin(float64(g.mouseX/50)))
		e, d := g.emit(g.mouseX, g.mouseY, cfg)
		emitted += e
		dropped += d
	}
	if g.fountainOn {
		e, d := g.emit(g.width*0.5, g.height*0.9, g.fountain)
		emitted += e
		dropped += d
	}

	if g.wellActive {
		g.pool.ApplyGravityWell(g.mouseX, g.mouseY, g.params.WellStrength, g.params.WellRadius, dt)
	}

	g.pool.Update(dt)

	for _, box := range g.bodySystem.Boxes() {
		g.pool.CollideRect(box.X, box.Y, box.W, box.H, g.params.Restitution)
	}

	g.tick++

	if g.collector != nil {
		g.collector.Record(telemetry.Sample{
			Alive:      g.pool.AliveCount(),
			Emitted:    emitted,
			Dropped:    dropped,
			StepMillis: float64(time.Since(start).Microseconds()) / 1000,
		})
	}
}

// emit fires a burst and reports how many particles were actually created
// versus dropped to pool exhaustion. The pool itself is silent about
// truncation; the delta in alive count is the only signal.
func (g *Game) emit(x, y float32, cfg particles.EmitterConfig) (created, dropped int) {
	before := g.pool.AliveCount()
	g.pool.EmitBurst(x, y, cfg)
	created = g.pool.AliveCount() - before
	return created, cfg.Count - created
}
