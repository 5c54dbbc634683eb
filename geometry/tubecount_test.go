package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNtubesPerrys(t *testing.T) {
	{ // Triangular layouts by pass count
		for i, want := range []int{1001, 973, 914, 886} {
			ntp := []int{1, 2, 4, 6}[i]
			n, err := NtubesPerrys(1.184, 0.028, ntp, 30)
			assert.NoError(t, err)
			assert.Equal(t, want, n)
		}
	}
	{ // Square layouts hold fewer tubes
		for i, want := range []int{819, 803, 784, 769} {
			ntp := []int{1, 2, 4, 6}[i]
			n, err := NtubesPerrys(1.184, 0.028, ntp, 45)
			assert.NoError(t, err)
			assert.Equal(t, want, n)
		}
	}
	{ // Unsupported inputs
		_, err := NtubesPerrys(1.184, 0.028, 3, 30)
		assert.ErrorIs(t, err, ErrTubePasses)
		_, err = NtubesPerrys(1.184, 0.028, 1, 50)
		assert.ErrorIs(t, err, ErrLayoutAngle)
	}
}

func TestNtubesVDI(t *testing.T) {
	{
		for i, want := range []int{983, 966, 929, 914, 903} {
			ntp := []int{1, 2, 4, 6, 8}[i]
			n, err := NtubesVDI(1.184, ntp, 0.028, 0.036, 30)
			assert.NoError(t, err)
			assert.Equal(t, want, n)
		}
		for i, want := range []int{832, 818, 790, 778, 769} {
			ntp := []int{1, 2, 4, 6, 8}[i]
			n, err := NtubesVDI(1.184, ntp, 0.028, 0.036, 45)
			assert.NoError(t, err)
			assert.Equal(t, want, n)
		}
	}
	{ // Unsupported inputs
		_, err := NtubesVDI(1.184, 3, 0.028, 0.036, 30)
		assert.ErrorIs(t, err, ErrTubePasses)
		_, err = NtubesVDI(1.184, 1, 0.028, 0.036, 10)
		assert.ErrorIs(t, err, ErrLayoutAngle)
	}
}

func TestNtubesHEDH(t *testing.T) {
	for _, tc := range []struct {
		angle int
		want  int
	}{
		{30, 928}, {60, 928}, {45, 804}, {90, 804},
	} {
		n, err := NtubesHEDH(1.184, 0.028, 0.036, tc.angle)
		assert.NoError(t, err)
		assert.Equal(t, tc.want, n)
	}
	_, err := NtubesHEDH(1.184, 0.028, 0.036, 50)
	assert.ErrorIs(t, err, ErrLayoutAngle)
}

func TestNtubes(t *testing.T) {
	{ // Default method is HEDH for a single pass, VDI otherwise
		n, err := Ntubes(1.184, 1, 0.028, 0.036, 30, 0, "")
		assert.NoError(t, err)
		assert.Equal(t, 928, n)

		n, err = Ntubes(1.184, 2, 0.028, 0.036, 30, 0, "")
		assert.NoError(t, err)
		assert.Equal(t, 966, n)
	}
	{ // Explicit method selection
		n, err := Ntubes(1.184, 1, 0.028, 0.036, 30, 0, "Perry's")
		assert.NoError(t, err)
		assert.Equal(t, 1001, n)
	}
	{ // Zero pitch falls back to the pitch ratio
		n, err := Ntubes(1.184, 1, 0.028, 0, 30, 0.036/0.028, "HEDH")
		assert.NoError(t, err)
		assert.Equal(t, 928, n)
	}
	{ // Unknown method
		_, err := Ntubes(1.184, 1, 0.028, 0.036, 30, 0, "guess")
		assert.Error(t, err)
	}
}

func TestDForNtubesVDI(t *testing.T) {
	{
		d, err := DForNtubesVDI(970, 2, 0.00735, 0.015, 30)
		assert.NoError(t, err)
		assert.True(t, near(d, 0.5003600119829544))
	}
	{ // Round trip: the diameter for a count holds at least that count
		n, err := NtubesVDI(1.184, 4, 0.028, 0.036, 30)
		assert.NoError(t, err)
		d, err := DForNtubesVDI(n, 4, 0.028, 0.036, 30)
		assert.NoError(t, err)
		n2, err := NtubesVDI(d, 4, 0.028, 0.036, 30)
		assert.NoError(t, err)
		assert.True(t, n2 >= n-1 && n2 <= n)
	}
	{ // Unsupported inputs
		_, err := DForNtubesVDI(970, 3, 0.00735, 0.015, 30)
		assert.ErrorIs(t, err, ErrTubePasses)
	}
}
