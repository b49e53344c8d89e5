package canvas

import "testing"

func TestLerpBoundaries(t *testing.T) {
	start := Color{R: 255, G: 255, B: 0, A: 255}
	end := Color{R: 0, G: 10, B: 255, A: 128}

	if got := Lerp(start, end, 1); got != start {
		t.Errorf("Lerp(t=1) = %+v, want start %+v", got, start)
	}
	if got := Lerp(start, end, 0); got != end {
		t.Errorf("Lerp(t=0) = %+v, want end %+v", got, end)
	}
}

func TestLerpMidpoint(t *testing.T) {
	a := Color{R: 200, G: 0, B: 100, A: 255}
	b := Color{R: 0, G: 100, B: 100, A: 255}
	got := Lerp(a, b, 0.5)
	if got.R != 100 || got.G != 50 || got.B != 100 || got.A != 255 {
		t.Errorf("Lerp(t=0.5) = %+v", got)
	}
}

func TestBoostClamps(t *testing.T) {
	c := Color{R: 100, G: 200, B: 0, A: 77}
	got := Boost(c, 1.5)
	want := Color{R: 150, G: 255, B: 0, A: 77}
	if got != want {
		t.Errorf("Boost = %+v, want %+v", got, want)
	}
}

func TestFillRectFRoundsAndClampsSize(t *testing.T) {
	b := NewBuffer(16, 16)
	red := Color{R: 255, A: 255}

	// Sub-pixel rect still paints at least one pixel.
	FillRectF(b, 4.4, 4.6, 0.2, 0.1, red)
	if got := b.At(4, 5); got != red {
		t.Errorf("rounded sub-pixel rect: pixel (4,5) = %+v", got)
	}

	// 2.5 rounds up to 3 wide.
	b.Clear(Color{})
	FillRectF(b, 1, 1, 2.5, 1, red)
	if b.At(3, 1) != red {
		t.Error("width 2.5 did not round to 3 pixels")
	}
	if b.At(4, 1) == red {
		t.Error("rect painted past its rounded width")
	}
}

func TestBufferClipping(t *testing.T) {
	b := NewBuffer(8, 8)
	c := Color{G: 255, A: 255}

	// Partially off-canvas fills only the visible part and must not panic.
	b.FillRect(-4, -4, 8, 8, c)
	if b.At(0, 0) != c || b.At(3, 3) != c {
		t.Error("clipped rect missing visible pixels")
	}
	if b.At(4, 4) == c {
		t.Error("clipped rect painted outside its extent")
	}

	if got := b.At(-1, 99); got != (Color{}) {
		t.Errorf("out-of-bounds read = %+v, want zero", got)
	}
}

func TestBufferClear(t *testing.T) {
	b := NewBuffer(4, 4)
	c := Color{R: 1, G: 2, B: 3, A: 4}
	b.Clear(c)
	for y := int32(0); y < 4; y++ {
		for x := int32(0); x < 4; x++ {
			if b.At(x, y) != c {
				t.Fatalf("pixel (%d,%d) = %+v after clear", x, y, b.At(x, y))
			}
		}
	}
}

func TestBufferDrawLine(t *testing.T) {
	b := NewBuffer(8, 8)
	c := Color{B: 255, A: 255}
	b.DrawLine(0, 0, 7, 7, c)
	for i := int32(0); i < 8; i++ {
		if b.At(i, i) != c {
			t.Errorf("diagonal pixel (%d,%d) missing", i, i)
		}
	}
}

func TestBufferDrawCircle(t *testing.T) {
	b := NewBuffer(16, 16)
	c := Color{R: 9, A: 255}
	b.DrawCircle(8, 8, 3, c)
	if b.At(8, 8) != c {
		t.Error("circle center not painted")
	}
	if b.At(8, 5) != c || b.At(11, 8) != c {
		t.Error("circle rim not painted")
	}
	if b.At(12, 12) == c {
		t.Error("pixel outside the circle painted")
	}
}

func TestBufferPresentNeverFails(t *testing.T) {
	if err := NewBuffer(2, 2).Present(); err != nil {
		t.Errorf("Present() = %v", err)
	}
}
