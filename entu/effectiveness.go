package entu

import (
	"fmt"
	"math"
)

// EffectivenessFromNTU returns the thermal effectiveness of an
// exchanger of the given configuration at capacity rate ratio Cr and
// size NTU.
//
// The crossflow (both streams unmixed) form is a closed-form
// approximation; no exact analytic expression exists for that
// arrangement. For Cr = 0, as with phase change on one side, the flow
// arrangement does not matter and every configuration collapses to
// 1 - exp(-NTU).
func EffectivenessFromNTU(NTU, Cr float64, cfg Configuration) (float64, error) {
	if !cfg.known() {
		return 0, fmt.Errorf("%s: %w", cfg, ErrUnknownConfiguration)
	}
	if Cr < 0 || Cr > 1 {
		return 0, fmt.Errorf("heat capacity rate ratio %g must be within [0, 1] by definition: %w", Cr, ErrInvalidInput)
	}
	if Cr == 0 {
		return 1 - math.Exp(-NTU), nil
	}

	switch cfg.Arrangement {
	case Counterflow:
		if Cr == 1 {
			// removable singularity in the general form
			return NTU / (1 + NTU), nil
		}
		e := math.Exp(-NTU * (1 - Cr))
		return (1 - e) / (1 - Cr*e), nil
	case Parallel:
		return (1 - math.Exp(-NTU*(1+Cr))) / (1 + Cr), nil
	case ShellAndTube:
		// One TEMA E shell closed form, then the equal-UA series
		// recursion for multiple shells.
		shells := cfg.shells()
		ntu1 := NTU / float64(shells)
		root := math.Sqrt(1 + Cr*Cr)
		top := 1 + math.Exp(-ntu1*root)
		bottom := 1 - math.Exp(-ntu1*root)
		eff := 2 / (1 + Cr + root*top/bottom)
		if shells > 1 {
			term := math.Pow((1-eff*Cr)/(1-eff), float64(shells))
			eff = (term - 1) / (term - Cr)
		}
		return eff, nil
	case CrossflowUnmixed:
		return 1 - math.Exp(1/Cr*math.Pow(NTU, 0.22)*(math.Exp(-Cr*math.Pow(NTU, 0.78))-1)), nil
	case CrossflowMixedCmin:
		return 1 - math.Exp(-1/Cr*(1-math.Exp(-Cr*NTU))), nil
	case CrossflowMixedCmax:
		return 1 / Cr * (1 - math.Exp(-Cr*(1-math.Exp(-NTU)))), nil
	case Boiler, Condenser:
		return 1 - math.Exp(-NTU), nil
	}
	return 0, fmt.Errorf("%s: %w", cfg, ErrUnknownConfiguration)
}
