// Package canvas defines the rasterization surface the simulation draws
// through, plus the concrete backends that implement it.
package canvas

import "math"

// Color is a plain 8-bit RGBA value. Channels are independent; nothing in
// this package premultiplies or converts colorspaces.
type Color struct {
	R, G, B, A uint8
}

// Canvas is the minimal drawing capability the simulation consumes. Any
// backend satisfying it is interchangeable: a window, an in-memory buffer,
// a test double.
type Canvas interface {
	// Size returns the drawable area in pixels.
	Size() (int32, int32)
	// Clear fills the whole surface with a color.
	Clear(c Color)
	// FillRect fills an axis-aligned rectangle at integer pixel coordinates.
	FillRect(x, y, w, h int32, c Color)
	// DrawCircle draws a filled circle centered at (x, y).
	DrawCircle(x, y, r int32, c Color)
	// DrawLine draws a 1px line between two points.
	DrawLine(x1, y1, x2, y2 int32, c Color)
	// Present flushes the frame to its destination. The only fallible
	// drawing operation; all others are fire-and-forget.
	Present() error
}

// FillRectF rounds float coordinates to the nearest pixel and clamps the
// rectangle to at least 1x1 before filling.
func FillRectF(cv Canvas, x, y, w, h float32, c Color) {
	xi := int32(math.Round(float64(x)))
	yi := int32(math.Round(float64(y)))
	wi := int32(math.Round(math.Max(float64(w), 1)))
	hi := int32(math.Round(math.Max(float64(h), 1)))
	cv.FillRect(xi, yi, wi, hi, c)
}

// DrawCircleF is the float convenience form of DrawCircle; the radius is
// clamped to at least 1.
func DrawCircleF(cv Canvas, x, y, r float32, c Color) {
	xi := int32(math.Round(float64(x)))
	yi := int32(math.Round(float64(y)))
	ri := int32(math.Round(math.Max(float64(r), 1)))
	cv.DrawCircle(xi, yi, ri, c)
}

// DrawLineF is the float convenience form of DrawLine.
func DrawLineF(cv Canvas, x1, y1, x2, y2 float32, c Color) {
	cv.DrawLine(
		int32(math.Round(float64(x1))), int32(math.Round(float64(y1))),
		int32(math.Round(float64(x2))), int32(math.Round(float64(y2))), c)
}

// Lerp interpolates between two colors per channel. t=1 yields a, t=0
// yields b; t outside [0,1] extrapolates.
func Lerp(a, b Color, t float32) Color {
	mix := func(ca, cb uint8) uint8 {
		return uint8(float32(cb) + (float32(ca)-float32(cb))*t)
	}
	return Color{
		R: mix(a.R, b.R),
		G: mix(a.G, b.G),
		B: mix(a.B, b.B),
		A: mix(a.A, b.A),
	}
}

// Boost multiplies the RGB channels by f, clamping each to 255. Alpha is
// left untouched. Approximates additive blending on backends without a
// blend-mode framebuffer.
func Boost(c Color, f float32) Color {
	scale := func(ch uint8) uint8 {
		v := float32(ch) * f
		if v > 255 {
			v = 255
		}
		return uint8(v)
	}
	return Color{R: scale(c.R), G: scale(c.G), B: scale(c.B), A: c.A}
}
