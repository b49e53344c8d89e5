package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ember/particles"
)

// handleInput polls raylib for this frame's input state.
func (g *Game) handleInput() {
	if rl.IsKeyPressed(rl.KeySpace) {
		g.paused = !g.paused
	}
	if rl.IsKeyPressed(rl.KeyA) {
		g.additive = !g.additive
	}
	if rl.IsKeyPressed(rl.KeyTab) {
		g.panel.Toggle()
	}
	if rl.IsKeyPressed(rl.KeyR) {
		// Fresh pool, same capacity; tuned parameters survive the reset.
		g.pool = particles.NewPool(g.cfg.Pool.Capacity)
		g.pool.SetGravity(float32(g.cfg.Pool.GravityX), g.params.GravityY)
	}

	m := rl.GetMousePosition()
	g.mouseX = m.X
	g.mouseY = m.Y
	g.mouseDown = rl.IsMouseButtonDown(rl.MouseButtonLeft)
	g.fountainOn = rl.IsKeyDown(rl.KeyF)
	g.wellActive = rl.IsKeyDown(rl.KeyW)
}
