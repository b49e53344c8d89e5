// Package game orchestrates the particle playground: input, fixed-step
// simulation, obstacle bodies, rendering, and telemetry hooks.
package game

import (
	"math/rand"

	"github.com/mlange-42/ark/ecs"

	"github.com/pthm-cable/ember/canvas"
	"github.com/pthm-cable/ember/config"
	"github.com/pthm-cable/ember/particles"
	"github.com/pthm-cable/ember/physics"
	"github.com/pthm-cable/ember/telemetry"
	"github.com/pthm-cable/ember/ui"
)

// Simulation timing
const (
	DT           = 1.0 / 60.0 // seconds per tick
	maxFrameTime = 0.25       // clamp for spiral-of-death protection
)

// Options configures a new game.
type Options struct {
	Seed      int64 // obstacle body placement
	Headless  bool  // software canvas, no raylib
	Collector *telemetry.Collector
}

// Game holds the complete playground state.
type Game struct {
	cfg  *config.Config
	pool *particles.Pool

	world      *ecs.World
	bodyMapper *ecs.Map3[physics.Position, physics.Velocity, physics.Extent]
	bodySystem *physics.BodySystem

	rng       *rand.Rand
	cv        canvas.Canvas
	panel     *ui.Panel
	params    ui.Params
	collector *telemetry.Collector

	burst    particles.EmitterConfig
	fountain particles.EmitterConfig

	// input state
	mouseX, mouseY float32
	mouseDown      bool
	fountainOn     bool
	wellActive     bool

	additive bool
	paused   bool

	accumulator   float32
	tick          int64
	width, height float32
}

// NewGame creates a playground from the loaded configuration.
func NewGame(cfg *config.Config, opts Options) *Game {
	world := ecs.NewWorld()

	g := &Game{
		cfg:        cfg,
		pool:       particles.NewPool(cfg.Pool.Capacity),
		world:      world,
		bodyMapper: ecs.NewMap3[physics.Position, physics.Velocity, physics.Extent](world),
		rng:        rand.New(rand.NewSource(opts.Seed)),
		collector:  opts.Collector,
		burst:      toEmitter(cfg.Emitters.Burst),
		fountain:   toEmitter(cfg.Emitters.Fountain),
		width:      cfg.Derived.ScreenW32,
		height:     cfg.Derived.ScreenH32,
		params: ui.Params{
			GravityY:     float32(cfg.Pool.GravityY),
			WellStrength: float32(cfg.Well.Strength),
			WellRadius:   float32(cfg.Well.Radius),
			Restitution:  float32(cfg.Collision.Restitution),
		},
	}
	g.pool.SetGravity(float32(cfg.Pool.GravityX), g.params.GravityY)

	g.bodySystem = physics.NewBodySystem(world, physics.Bounds{Width: g.width, Height: g.height})
	g.spawnBodies(cfg.Bodies)

	if opts.Headless {
		g.cv = canvas.NewBuffer(int32(cfg.Screen.Width), int32(cfg.Screen.Height))
	} else {
		g.cv = canvas.NewRaylibCanvas(int32(cfg.Screen.Width), int32(cfg.Screen.Height))
		g.panel = ui.NewPanel(int32(cfg.Screen.Width)-280, 40, 260)
	}

	return g
}

// spawnBodies creates the bouncing obstacle entities.
func (g *Game) spawnBodies(bc config.BodiesConfig) {
	size := float32(bc.Size)
	for i := 0; i < bc.Count; i++ {
		pos := physics.Position{
			X: g.rng.Float32() * (g.width - size),
			Y: g.rng.Float32() * (g.height - size),
		}
		vel := physics.Velocity{
			X: (g.rng.Float32()*2 - 1) * float32(bc.MaxSpeed),
			Y: (g.rng.Float32()*2 - 1) * float32(bc.MaxSpeed),
		}
		ext := physics.Extent{Size: size}
		g.bodyMapper.NewEntity(&pos, &vel, &ext)
	}
}

// toEmitter converts a config preset into the engine's emitter surface.
func toEmitter(p config.EmitterPreset) particles.EmitterConfig {
	return particles.EmitterConfig{
		Count:         p.Count,
		SpeedMin:      float32(p.SpeedMin),
		SpeedMax:      float32(p.SpeedMax),
		SpreadRadians: float32(p.SpreadRadians),
		BaseDirection: float32(p.BaseDirection),
		LifeMin:       float32(p.LifeMin),
		LifeMax:       float32(p.LifeMax),
		SizeMin:       float32(p.SizeMin),
		SizeMax:       float32(p.SizeMax),
		StartColor:    toColor(p.StartColor),
		EndColor:      toColor(p.EndColor),
	}
}

func toColor(c config.ColorConfig) canvas.Color {
	return canvas.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}

// Tick returns the number of simulation steps taken.
func (g *Game) Tick() int64 {
	return g.tick
}

// Pool exposes the particle pool for tooling.
func (g *Game) Pool() *particles.Pool {
	return g.pool
}

// Unload flushes any buffered telemetry.
func (g *Game) Unload() {
	if g.collector != nil {
		g.collector.Flush()
	}
}
