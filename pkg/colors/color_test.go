package colors

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestColorArithmetic(t *testing.T) {
	a := New(1, 2, 3)
	b := New(0.5, 0.5, 0.5)

	assert.Equal(t, New(1.5, 2.5, 3.5), a.Add(b))
	assert.Equal(t, New(0.5, 1, 1.5), a.Multiply(b))
	assert.Equal(t, New(2, 4, 6), a.Scale(2))
}

func TestColorLuminosity(t *testing.T) {
	c := New(1, 2, 3)
	assert.InDelta(t, 2.0, c.Luminosity(), 1e-12)
}

func TestColorIsClose(t *testing.T) {
	a := New(1, 1, 1)
	b := New(1.0000001, 1, 1)
	assert.True(t, a.IsClose(b, 1e-5))
	assert.False(t, a.IsClose(New(1.1, 1, 1), 1e-5))
}
