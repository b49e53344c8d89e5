// Package ui renders the playground's control panel and HUD.
package ui

import (
	"fmt"

	gui "github.com/gen2brain/raylib-go/raygui"
	rl "github.com/gen2brain/raylib-go/raylib"
)

// Params are the live-tunable simulation parameters the panel edits in
// place. The game reads them every tick.
type Params struct {
	GravityY     float32
	WellStrength float32
	WellRadius   float32
	Restitution  float32
}

// HUD is the read-only status content drawn every frame.
type HUD struct {
	Alive    int
	Capacity int
	Additive bool
	Paused   bool
}

// Panel is the right-side control panel. Hidden by default.
type Panel struct {
	x, y    int32
	width   int32
	visible bool
}

// NewPanel creates a panel anchored at (x, y).
func NewPanel(x, y, width int32) *Panel {
	return &Panel{x: x, y: y, width: width}
}

// Toggle switches panel visibility and returns the new state.
func (p *Panel) Toggle() bool {
	p.visible = !p.visible
	return p.visible
}

// IsVisible returns whether the panel is shown.
func (p *Panel) IsVisible() bool {
	return p.visible
}

// Draw renders the HUD line and, when visible, the slider panel.
func (p *Panel) Draw(params *Params, hud HUD) {
	mode := "normal"
	if hud.Additive {
		mode = "additive"
	}
	status := fmt.Sprintf("particles %d/%d | %s | %d fps", hud.Alive, hud.Capacity, mode, rl.GetFPS())
	if hud.Paused {
		status += " | PAUSED"
	}
	rl.DrawText(status, 10, 10, 18, rl.RayWhite)

	if !p.visible {
		return
	}

	panelX := float32(p.x)
	panelY := float32(p.y)
	sliderW := float32(p.width - 80)

	rl.DrawRectangle(p.x-10, p.y-10, p.width+10, 250, rl.Color{R: 0, G: 0, B: 0, A: 160})
	rl.DrawText("Playground Parameters", int32(panelX), int32(panelY), 18, rl.LightGray)
	panelY += 30

	params.GravityY = p.slider(&panelY, panelX, sliderW, "Gravity Y", "%.0f",
		params.GravityY, -1000, 1000)
	params.WellStrength = p.slider(&panelY, panelX, sliderW, "Well strength", "%.0f",
		params.WellStrength, 0, 3000)
	params.WellRadius = p.slider(&panelY, panelX, sliderW, "Well radius", "%.0f",
		params.WellRadius, 10, 400)
	params.Restitution = p.slider(&panelY, panelX, sliderW, "Restitution", "%.2f",
		params.Restitution, 0, 1)
}

func (p *Panel) slider(panelY *float32, panelX, width float32, label, format string, value, minVal, maxVal float32) float32 {
	rl.DrawText(label, int32(panelX), int32(*panelY), 14, rl.Gray)
	*panelY += 18
	v := gui.SliderBar(
		rl.Rectangle{X: panelX, Y: *panelY, Width: width, Height: 20},
		fmt.Sprintf(format, minVal), fmt.Sprintf(format, maxVal),
		value, minVal, maxVal,
	)
	rl.DrawText(fmt.Sprintf(format, v), int32(panelX+width+10), int32(*panelY+2), 16, rl.LightGray)
	*panelY += 32
	return v
}
