package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFakeProvider(t *testing.T) {
	a := NewFakeProvider(11)
	b := NewFakeProvider(11)

	for _, female := range []bool{true, false, true} {
		firstA, lastA := a.Name(female)
		firstB, lastB := b.Name(female)

		assert.NotEmpty(t, firstA)
		assert.NotEmpty(t, lastA)
		assert.Equal(t, firstA, firstB)
		assert.Equal(t, lastA, lastB)
	}
}
