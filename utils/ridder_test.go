package utils

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRidder(t *testing.T) {
	{ // Simple polynomial root
		f := func(x float64) float64 { return x*x - 4 }
		x, err := Ridder(f, 0, 10, 1e-12, 100)
		assert.NoError(t, err)
		assert.InDelta(t, 2.0, x, 1e-10)
	}
	{ // Transcendental root, exp(-x) = x
		f := func(x float64) float64 { return math.Exp(-x) - x }
		x, err := Ridder(f, 0, 1, 1e-12, 100)
		assert.NoError(t, err)
		assert.InDelta(t, 0.5671432904097838, x, 1e-10)
	}
	{ // Endpoint roots return without iterating
		f := func(x float64) float64 { return x - 3 }
		x, err := Ridder(f, 3, 10, 1e-12, 100)
		assert.NoError(t, err)
		assert.Equal(t, 3.0, x)

		x, err = Ridder(f, -1, 3, 1e-12, 100)
		assert.NoError(t, err)
		assert.Equal(t, 3.0, x)
	}
	{ // No sign change across the bracket
		f := func(x float64) float64 { return x*x + 1 }
		_, err := Ridder(f, -5, 5, 1e-12, 100)
		assert.ErrorIs(t, err, ErrNoBracket)
	}
	{ // Wide bracket with the root far from the midpoint
		f := func(x float64) float64 { return math.Log(x) - 2 }
		x, err := Ridder(f, 1e-7, 1e5, 1e-12, 100)
		assert.NoError(t, err)
		assert.InDelta(t, math.Exp(2), x, 1e-8)
	}
	{ // Iteration cap
		f := func(x float64) float64 { return x*x - 4 }
		_, err := Ridder(f, 0, 10, 0, 1)
		assert.Error(t, err)
	}
}
