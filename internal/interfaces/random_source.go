package interfaces

// RandomSource is the only source of randomness used by the generation stages.
// Injecting a seeded implementation makes a run reproducible.
type RandomSource interface {
	// Float64 returns a uniform value in [0, 1).
	Float64() float64
	// IntRange returns a uniform integer in [lo, hi], both inclusive.
	IntRange(lo, hi int) int
	// Uniform returns a uniform value in the span between a and b. The bounds may be given in either order.
	Uniform(a, b float64) float64
	// WeightedChoice returns an index into weights, chosen with probability proportional to its weight.
	WeightedChoice(weights []float64) int
}
