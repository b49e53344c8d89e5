package canvas

// Buffer is a software Canvas backed by an RGBA byte slice. It is the
// backend for headless runs and tests; pixels can be read back with At.
type Buffer struct {
	width  int32
	height int32
	data   []uint8 // RGBA, 4 bytes per pixel
}

// NewBuffer allocates a zeroed (transparent black) buffer canvas.
func NewBuffer(width, height int32) *Buffer {
	return &Buffer{
		width:  width,
		height: height,
		data:   make([]uint8, int(width)*int(height)*4),
	}
}

// Size returns the buffer dimensions.
func (b *Buffer) Size() (int32, int32) {
	return b.width, b.height
}

// Data returns the raw pixel bytes in RGBA order.
func (b *Buffer) Data() []uint8 {
	return b.data
}

// At returns the pixel at (x, y). Out-of-bounds reads return zero.
func (b *Buffer) At(x, y int32) Color {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return Color{}
	}
	i := (int(y)*int(b.width) + int(x)) * 4
	return Color{R: b.data[i], G: b.data[i+1], B: b.data[i+2], A: b.data[i+3]}
}

func (b *Buffer) set(x, y int32, c Color) {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return
	}
	i := (int(y)*int(b.width) + int(x)) * 4
	b.data[i] = c.R
	b.data[i+1] = c.G
	b.data[i+2] = c.B
	b.data[i+3] = c.A
}

// Clear fills the whole buffer with a color.
func (b *Buffer) Clear(c Color) {
	for i := 0; i < len(b.data); i += 4 {
		b.data[i] = c.R
		b.data[i+1] = c.G
		b.data[i+2] = c.B
		b.data[i+3] = c.A
	}
}

// FillRect fills a rectangle, clipped to the buffer bounds.
func (b *Buffer) FillRect(x, y, w, h int32, c Color) {
	x0 := max32(x, 0)
	y0 := max32(y, 0)
	x1 := min32(x+w, b.width)
	y1 := min32(y+h, b.height)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			b.set(px, py, c)
		}
	}
}

// DrawCircle fills a circle by scanning its bounding square.
func (b *Buffer) DrawCircle(x, y, r int32, c Color) {
	r2 := r * r
	for dy := -r; dy <= r; dy++ {
		for dx := -r; dx <= r; dx++ {
			if dx*dx+dy*dy <= r2 {
				b.set(x+dx, y+dy, c)
			}
		}
	}
}

// DrawLine draws a line with the integer Bresenham walk.
func (b *Buffer) DrawLine(x1, y1, x2, y2 int32, c Color) {
	dx := abs32(x2 - x1)
	dy := -abs32(y2 - y1)
	sx := int32(1)
	if x1 > x2 {
		sx = -1
	}
	sy := int32(1)
	if y1 > y2 {
		sy = -1
	}
	err := dx + dy
	for {
		b.set(x1, y1, c)
		if x1 == x2 && y1 == y2 {
			return
		}
		e2 := 2 * err
		if e2 >= dy {
			err += dy
			x1 += sx
		}
		if e2 <= dx {
			err += dx
			y1 += sy
		}
	}
}

// Present is a no-op for the in-memory backend.
func (b *Buffer) Present() error {
	return nil
}

func min32(a, b int32) int32 {
	if a < b {
		return a
	}
	return b
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}

func abs32(a int32) int32 {
	if a < 0 {
		return -a
	}
	return a
}
