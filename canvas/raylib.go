package canvas

import (
	rl "github.com/gen2brain/raylib-go/raylib"
)

// RaylibCanvas renders through an open raylib window. The caller owns the
// window lifecycle and the BeginDrawing/EndDrawing bracket; this type only
// issues draw calls inside it.
type RaylibCanvas struct {
	width  int32
	height int32
}

// NewRaylibCanvas wraps an already-initialized raylib window of the given
// logical size.
func NewRaylibCanvas(width, height int32) *RaylibCanvas {
	return &RaylibCanvas{width: width, height: height}
}

// Size returns the logical canvas size.
func (r *RaylibCanvas) Size() (int32, int32) {
	return r.width, r.height
}

// Clear fills the window background.
func (r *RaylibCanvas) Clear(c Color) {
	rl.ClearBackground(toRaylib(c))
}

// FillRect fills an axis-aligned rectangle.
func (r *RaylibCanvas) FillRect(x, y, w, h int32, c Color) {
	rl.DrawRectangle(x, y, w, h, toRaylib(c))
}

// DrawCircle draws a filled circle.
func (r *RaylibCanvas) DrawCircle(x, y, radius int32, c Color) {
	rl.DrawCircle(x, y, float32(radius), toRaylib(c))
}

// DrawLine draws a 1px line.
func (r *RaylibCanvas) DrawLine(x1, y1, x2, y2 int32, c Color) {
	rl.DrawLine(x1, y1, x2, y2, toRaylib(c))
}

// Present reports success; raylib presents the frame on EndDrawing.
func (r *RaylibCanvas) Present() error {
	return nil
}

func toRaylib(c Color) rl.Color {
	return rl.Color{R: c.R, G: c.G, B: c.B, A: c.A}
}
