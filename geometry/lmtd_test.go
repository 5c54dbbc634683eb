package geometry

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func near(a, b float64) (l bool) {
	if math.Abs(a-b) < 1.e-08*math.Abs(b) {
		l = true
	}
	return
}

func TestFLMTDFakheri(t *testing.T) {
	{ // Single shell pass
		Ft := FLMTDFakheri(130, 110, 15, 85, 1)
		assert.True(t, near(Ft, 0.9438358829645933))
	}
	{ // More shell passes push Ft toward 1
		Ft1 := FLMTDFakheri(130, 110, 15, 85, 1)
		Ft2 := FLMTDFakheri(130, 110, 15, 85, 2)
		Ft4 := FLMTDFakheri(130, 110, 15, 85, 4)
		assert.True(t, Ft1 < Ft2)
		assert.True(t, Ft2 < Ft4)
		assert.True(t, Ft4 < 1)
	}
	{ // Symmetric in the two streams
		a := FLMTDFakheri(130, 110, 15, 85, 2)
		b := FLMTDFakheri(15, 85, 130, 110, 2)
		assert.InDelta(t, a, b, 1e-12)
	}
	{ // Balanced exchanger, R = 1, takes the limiting form
		Ft := FLMTDFakheri(130, 90, 50, 90, 1)
		assert.False(t, math.IsNaN(Ft))
		assert.True(t, Ft > 0 && Ft < 1)

		// continuous with the general expression
		FtNear := FLMTDFakheri(130, 90, 50, 90-1e-7, 1)
		assert.InDelta(t, Ft, FtNear, 1e-5)
	}
}
