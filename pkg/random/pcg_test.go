package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPCGKnownSequence(t *testing.T) {
	pcg := NewPCG(42, 54)
	assert.Equal(t, uint64(1753877967969059832), pcg.state)
	assert.Equal(t, uint64(109), pcg.inc)

	expected := []uint32{2707161783, 2068313097, 3122475824, 2211639955, 3215226955}
	for i, want := range expected {
		got := pcg.Random()
		assert.Equalf(t, want, got, "draw %d", i)
	}
}

func TestRandomFloatInUnitInterval(t *testing.T) {
	pcg := NewDefaultPCG()
	for i := 0; i < 1000; i++ {
		x := pcg.RandomFloat()
		assert.GreaterOrEqual(t, x, 0.0)
		assert.Less(t, x, 1.0)
	}
}

func TestRandomFloatIsUniform(t *testing.T) {
	pcg := NewDefaultPCG()
	const k = 16
	const draws = 1 << 20
	buckets := make([]int, k)
	for i := 0; i < draws; i++ {
		x := pcg.RandomFloat()
		bucket := int(x * k)
		if bucket >= k {
			bucket = k - 1
		}
		buckets[bucket]++
	}
	expected := float64(draws) / k
	for _, count := range buckets {
		assert.InDelta(t, expected, float64(count), expected*0.01)
	}
}

func TestRandomUnifHemisphereIsUpperHalf(t *testing.T) {
	pcg := NewDefaultPCG()
	for i := 0; i < 1000; i++ {
		theta, phi := pcg.RandomUnifHemisphere()
		assert.GreaterOrEqual(t, theta, 0.0)
		assert.LessOrEqual(t, theta, 1.5708)
		assert.GreaterOrEqual(t, phi, 0.0)
		assert.Less(t, phi, 6.2832)
	}
}

func TestDiscardAdvancesState(t *testing.T) {
	a := NewDefaultPCG()
	b := NewDefaultPCG()
	a.Random()
	a.Random()
	b.Discard(2)
	assert.Equal(t, a.Random(), b.Random())
}
