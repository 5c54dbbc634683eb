package entu

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNTUFromEffectiveness(t *testing.T) {
	NTU, Cr := 5.0, 0.7
	{ // Closed-form inverses recover NTU exactly
		for _, cfg := range []Configuration{
			CounterflowConfig, ParallelConfig,
			CrossflowMixedCminConfig, CrossflowMixedCmaxConfig,
			ShellAndTubeConfig(1), ShellAndTubeConfig(3),
			BoilerConfig, CondenserConfig,
		} {
			eff, err := EffectivenessFromNTU(NTU, Cr, cfg)
			assert.NoError(t, err)
			ntu, err := NTUFromEffectiveness(eff, Cr, cfg)
			assert.NoError(t, err)
			assert.InDelta(t, NTU, ntu, 1e-6*NTU)
		}
	}
	{ // Crossflow unmixed inverts through the root-find
		eff, err := EffectivenessFromNTU(NTU, Cr, CrossflowConfig)
		assert.NoError(t, err)
		ntu, err := NTUFromEffectiveness(eff, Cr, CrossflowConfig)
		assert.NoError(t, err)
		assert.InDelta(t, NTU, ntu, 1e-5*NTU)
	}
	{ // Counterflow at Cr = 1
		ntu, err := NTUFromEffectiveness(0.8, 1, CounterflowConfig)
		assert.NoError(t, err)
		assert.True(t, near(ntu, 4.0))
	}
	{ // Cr = 0 inverts to -log(1 - eff) regardless of arrangement
		for _, cfg := range []Configuration{CounterflowConfig, CrossflowConfig, ShellAndTubeConfig(2)} {
			ntu, err := NTUFromEffectiveness(0.75, 0, cfg)
			assert.NoError(t, err)
			assert.True(t, near(ntu, -math.Log(0.25)))
		}
	}
	{ // Requests above the shell-and-tube ceiling carry the analytic maximum
		var ue *UnattainableError
		_, err := NTUFromEffectiveness(0.99, Cr, ShellAndTubeConfig(5))
		assert.ErrorAs(t, err, &ue)
		assert.True(t, near(ue.Max, 0.9741229777550228))
		assert.Equal(t, 0.99, ue.Requested)

		// just below the ceiling still solves
		_, err = NTUFromEffectiveness(ue.Max*(1-1e-6), Cr, ShellAndTubeConfig(5))
		assert.NoError(t, err)

		// the ceiling is the infinite-exchanger limit of the forward map
		effInf, err := EffectivenessFromNTU(500, Cr, ShellAndTubeConfig(5))
		assert.NoError(t, err)
		assert.InDelta(t, ue.Max, effInf, 1e-6)
	}
	{ // Parallel ceiling is 1/(1+Cr)
		var ue *UnattainableError
		_, err := NTUFromEffectiveness(0.7, Cr, ParallelConfig)
		assert.ErrorAs(t, err, &ue)
		assert.True(t, near(ue.Max, 1/(1+Cr)))
	}
	{ // Mixed-stream crossflow ceilings
		var ue *UnattainableError
		_, err := NTUFromEffectiveness(0.8, Cr, CrossflowMixedCminConfig)
		assert.ErrorAs(t, err, &ue)
		assert.True(t, near(ue.Max, 1-math.Exp(-1/Cr)))

		_, err = NTUFromEffectiveness(0.8, Cr, CrossflowMixedCmaxConfig)
		assert.ErrorAs(t, err, &ue)
		assert.True(t, near(ue.Max, (math.Exp(Cr)-1)*math.Exp(-Cr)/Cr))
	}
	{ // Crossflow unmixed request beyond the bracketed range
		_, err := NTUFromEffectiveness(1-1e-9, Cr, CrossflowConfig)
		assert.ErrorIs(t, err, ErrRootBracket)
	}
	{ // Cr outside [0, 1] is rejected
		_, err := NTUFromEffectiveness(0.5, 1.5, CounterflowConfig)
		assert.ErrorIs(t, err, ErrInvalidInput)
	}
	{ // Unknown arrangement, rejected at any Cr
		_, err := NTUFromEffectiveness(0.5, Cr, Configuration{Arrangement: Arrangement(99)})
		assert.ErrorIs(t, err, ErrUnknownConfiguration)
		_, err = NTUFromEffectiveness(0.5, 0, Configuration{Arrangement: Arrangement(99)})
		assert.ErrorIs(t, err, ErrUnknownConfiguration)
	}
}

func TestCapacityRates(t *testing.T) {
	mh, mc, Cph, Cpc := 5.2, 0.725, 1860.0, 1900.0
	assert.Equal(t, 1377.5, Cmin(mh, mc, Cph, Cpc))
	assert.Equal(t, 9672.0, Cmax(mh, mc, Cph, Cpc))
	assert.True(t, near(Cr(mh, mc, Cph, Cpc), 0.14242142266335814))
	assert.True(t, near(NTUFromUA(2975.5, 1377.5), 2.160072595281307))
	assert.True(t, near(UAFromNTU(2.160072595281307, 1377.5), 2975.5))
}
