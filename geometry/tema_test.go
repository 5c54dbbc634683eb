package geometry

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTEMATables(t *testing.T) {
	{ // Nomenclature covers the letter codes used elsewhere
		assert.Equal(t, "One-Pass Shell", TEMAShells["E"])
		assert.Equal(t, "Divided Flow", TEMAShells["J"])
		assert.Equal(t, "Double Split Flow", TEMAShells["H"])
		assert.Contains(t, TEMAHeads, "A")
		assert.Contains(t, TEMARears, "U")
		for _, svc := range []string{"R", "C", "B"} {
			assert.Contains(t, TEMAServices, svc)
		}
	}
	{ // Fouling factor conversion
		assert.InDelta(t, 0.00017611018, 0.001*TEMARToMetric, 1e-12)
	}
	{ // Length tables are ascending and metric
		prev := 0.0
		for _, l := range HTRILengths {
			assert.True(t, l > prev)
			prev = l
		}
		assert.Equal(t, 2.438, TEMALengths[0])
		assert.Equal(t, 6.096, TEMALengths[len(TEMALengths)-1])

		// HEDH shells run 12 in to 120 in
		assert.Equal(t, 0.3048, HEDHShells[0])
		assert.Equal(t, 3.048, HEDHShells[len(HEDHShells)-1])
		assert.Equal(t, 50, len(HEDHShells))
	}
	{ // Published pitch ratios stay in the sensible band
		for _, ratios := range HEDHPitches {
			assert.NotEmpty(t, ratios)
			for _, r := range ratios {
				assert.True(t, r >= 1.25 && r <= 1.5)
			}
		}
	}
}
