package arbor

import (
	"cogentcore.org/lab/base/randx"
)

// RandomSource is the only randomness the generator consumes. Every draw
// advances the same sequence, so the call order is part of the output.
type RandomSource interface {
	// Random returns a uniform value in [0,1).
	Random() float64
	// RandomRange returns a uniform value in [offset, offset+magnitude).
	RandomRange(magnitude, offset float64) float64
	// Reseed restarts the sequence.
	Reseed(seed int64)
}

// SeededRandom is a RandomSource backed by a seeded randx generator.
type SeededRandom struct {
	rand *randx.SysRand
}

func NewSeededRandom(seed int64) *SeededRandom {
	return &SeededRandom{rand: randx.NewSysRand(seed)}
}

func (r *SeededRandom) Random() float64 {
	return r.rand.Float64()
}

func (r *SeededRandom) RandomRange(magnitude, offset float64) float64 {
	return offset + magnitude*r.rand.Float64()
}

func (r *SeededRandom) Reseed(seed int64) {
	r.rand.Seed(seed)
}

// spread draws a value in [-amount, amount).
func spread(src RandomSource, amount float64) float64 {
	return src.RandomRange(2*amount, -amount)
}
