package particles

import "testing"

// Reference values for the first five draws from the fixed seed. These pin
// the generator bit-for-bit; if they ever change, every reproducibility
// guarantee in this package is void.
var lcgReference = []uint32{
	0xEC945AC8,
	0x39AB3F87,
	0x999FF73A,
	0xEAB99D51,
	0x7973367C,
}

func TestLCGSequence(t *testing.T) {
	r := lcg{state: defaultSeed}
	for i, want := range lcgReference {
		got := r.nextU32()
		if got != want {
			t.Errorf("draw %d: got %#08x, want %#08x", i, got, want)
		}
	}
}

func TestLCGFloatRange(t *testing.T) {
	r := lcg{state: defaultSeed}
	for i := 0; i < 10000; i++ {
		v := r.next()
		if v < 0 || v >= 1 {
			t.Fatalf("draw %d: %v outside [0,1)", i, v)
		}
	}
}

func TestLCGBetween(t *testing.T) {
	r := lcg{state: defaultSeed}
	for i := 0; i < 10000; i++ {
		v := r.between(-3, 7)
		if v < -3 || v >= 7 {
			t.Fatalf("draw %d: %v outside [-3,7)", i, v)
		}
	}

	// Degenerate range collapses to the endpoint.
	if v := r.between(2, 2); v != 2 {
		t.Errorf("between(2,2) = %v, want 2", v)
	}
}

func TestLCGIndependentInstances(t *testing.T) {
	a := lcg{state: defaultSeed}
	b := lcg{state: defaultSeed}
	for i := 0; i < 100; i++ {
		if av, bv := a.nextU32(), b.nextU32(); av != bv {
			t.Fatalf("draw %d: instances diverged (%#x vs %#x)", i, av, bv)
		}
	}
}
