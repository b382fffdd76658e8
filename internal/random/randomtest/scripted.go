// Package randomtest provides a scripted RandomSource for deterministic tests.
package randomtest

import "github.com/sheikh-saqib/payments-test-data-generator/internal/interfaces"

// Scripted replays queued values per method. Once a queue is drained it falls back to
// the lower end of whatever range is asked for: 0 for Float64, lo for IntRange, the
// smaller bound for Uniform and index 0 for WeightedChoice.
type Scripted struct {
	Floats   []float64
	Ints     []int
	Uniforms []float64
	Choices  []int
}

func (s *Scripted) Float64() float64 {
	if len(s.Floats) == 0 {
		return 0
	}
	v := s.Floats[0]
	s.Floats = s.Floats[1:]
	return v
}

func (s *Scripted) IntRange(lo, hi int) int {
	if len(s.Ints) == 0 {
		return min(lo, hi)
	}
	v := s.Ints[0]
	s.Ints = s.Ints[1:]
	return v
}

func (s *Scripted) Uniform(a, b float64) float64 {
	if len(s.Uniforms) == 0 {
		return min(a, b)
	}
	v := s.Uniforms[0]
	s.Uniforms = s.Uniforms[1:]
	return v
}

func (s *Scripted) WeightedChoice(weights []float64) int {
	if len(s.Choices) == 0 {
		return 0
	}
	v := s.Choices[0]
	s.Choices = s.Choices[1:]
	return v
}

var _ interfaces.RandomSource = (*Scripted)(nil)
