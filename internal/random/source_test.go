package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSeededSourceIsReproducible(t *testing.T) {
	a := NewSeededSource(42)
	b := NewSeededSource(42)

	for i := 0; i < 100; i++ {
		require.Equal(t, a.Float64(), b.Float64())
		require.Equal(t, a.IntRange(1, 10), b.IntRange(1, 10))
	}
}

func TestIntRangeIsInclusive(t *testing.T) {
	s := NewSeededSource(7)
	seen := map[int]bool{}

	for i := 0; i < 1000; i++ {
		n := s.IntRange(1, 3)
		require.GreaterOrEqual(t, n, 1)
		require.LessOrEqual(t, n, 3)
		seen[n] = true
	}

	assert.Len(t, seen, 3)
	assert.Equal(t, 5, s.IntRange(5, 5))
}

func TestUniformAcceptsBoundsInEitherOrder(t *testing.T) {
	s := NewSeededSource(1)

	for i := 0; i < 1000; i++ {
		v := s.Uniform(-1, -500)
		require.GreaterOrEqual(t, v, -500.0)
		require.LessOrEqual(t, v, -1.0)

		w := s.Uniform(100, 10000)
		require.GreaterOrEqual(t, w, 100.0)
		require.LessOrEqual(t, w, 10000.0)
	}
}

func TestWeightedChoice(t *testing.T) {
	s := NewSeededSource(3)

	t.Run("zero weight is never chosen", func(t *testing.T) {
		for i := 0; i < 500; i++ {
			assert.NotEqual(t, 1, s.WeightedChoice([]float64{1, 0, 1}))
		}
	})

	t.Run("all zero weights fall back to uniform", func(t *testing.T) {
		idx := s.WeightedChoice([]float64{0, 0})
		assert.Contains(t, []int{0, 1}, idx)
	})

	t.Run("empty weights panic", func(t *testing.T) {
		assert.Panics(t, func() { s.WeightedChoice(nil) })
	})
}
