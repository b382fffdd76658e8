package random

import (
	"math/rand/v2"

	"github.com/sheikh-saqib/payments-test-data-generator/internal/interfaces"
)

// Source is a RandomSource backed by a PCG generator.
// It is not safe for concurrent use; the pipeline is single threaded.
type Source struct {
	rng *rand.Rand
}

// NewSource returns a Source seeded from the runtime's random state, so runs are not reproducible.
func NewSource() *Source {
	return NewSeededSource(rand.Uint64())
}

// NewSeededSource returns a Source whose sequence is fully determined by seed.
func NewSeededSource(seed uint64) *Source {
	return &Source{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (s *Source) Float64() float64 {
	return s.rng.Float64()
}

func (s *Source) IntRange(lo, hi int) int {
	if hi < lo {
		lo, hi = hi, lo
	}
	return lo + s.rng.IntN(hi-lo+1)
}

func (s *Source) Uniform(a, b float64) float64 {
	return a + (b-a)*s.rng.Float64()
}

func (s *Source) WeightedChoice(weights []float64) int {
	if len(weights) == 0 {
		panic("random: WeightedChoice called with no weights")
	}

	total := 0.0
	for _, w := range weights {
		if w > 0 {
			total += w
		}
	}
	if total == 0 {
		return s.rng.IntN(len(weights))
	}

	r := s.rng.Float64() * total
	for i, w := range weights {
		if w <= 0 {
			continue
		}
		if r < w {
			return i
		}
		r -= w
	}

	// float rounding can leave r just above the last positive weight
	for i := len(weights) - 1; i >= 0; i-- {
		if weights[i] > 0 {
			return i
		}
	}
	return len(weights) - 1
}

var _ interfaces.RandomSource = (*Source)(nil)
