package particles

// defaultSeed is the fixed starting state for every pool. Reproducible runs
// depend on it never changing.
const defaultSeed uint32 = 0x1234ABCD

// lcg is a 32-bit linear congruential generator (Numerical Recipes
// constants). It is deliberately not math/rand: the particle field must be
// bit-reproducible given the same seed and draw sequence, across runs and
// across ports of the engine.
type lcg struct {
	state uint32
}

func (r *lcg) nextU32() uint32 {
	r.state = r.state*1664525 + 1013904223
	return r.state
}

// float32 in [0, 1).
func (r *lcg) next() float32 {
	return float32(r.nextU32()) / (1 << 32)
}

// float32 in [a, b).
func (r *lcg) between(a, b float32) float32 {
	return a + (b-a)*r.next()
}
