package game

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"github.com/pthm-cable/ember/canvas"
	"github.com/pthm-cable/ember/ui"
)

var (
	backgroundColor = canvas.Color{R: 12, G: 12, B: 16, A: 255}
	bodyColor       = canvas.Color{R: 90, G: 95, B: 110, A: 255}
	cursorColor     = canvas.Color{R: 255, G: 255, B: 255, A: 160}
	wellRimColor    = canvas.Color{R: 120, G: 200, B: 255, A: 90}
)

// Draw renders one frame. The Present error is the one failure crossing
// the drawing boundary; the caller decides whether it ends the session.
func (g *Game) Draw() error {
	rl.BeginDrawing()

	g.cv.Clear(backgroundColor)

	for _, box := range g.bodySystem.Boxes() {
		canvas.FillRectF(g.cv, box.X, box.Y, box.W, box.H, bodyColor)
	}

	if g.additive {
		g.pool.DrawAdditive(g.cv)
	} else {
		g.pool.Draw(g.cv)
	}

	if g.wellActive {
		canvas.DrawCircleF(g.cv, g.mouseX, g.mouseY, 4, wellRimColor)
	}
	canvas.FillRectF(g.cv, g.mouseX-2, g.mouseY-2, 4, 4, cursorColor)

	g.panel.Draw(&g.params, ui.HUD{
		Alive:    g.pool.AliveCount(),
		Capacity: g.pool.Capacity(),
		Additive: g.additive,
		Paused:   g.paused,
	})

	err := g.cv.Present()
	rl.EndDrawing()
	return err
}
