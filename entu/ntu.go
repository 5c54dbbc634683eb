package entu

import (
	"errors"
	"fmt"
	"math"

	"github.com/JackJiang1989/ht/utils"
)

// Bracket for the crossflow-unmixed NTU root-find. The forward map is
// monotonic in NTU over this range; that is an empirical property of
// the correlation, not a proven one.
const (
	crossflowNTUMin = 1e-7
	crossflowNTUMax = 1e5
)

// NTUFromEffectiveness returns the number of transfer units required
// to reach the given effectiveness at capacity rate ratio Cr for the
// configuration.
//
// Every configuration except boiler/condenser and crossflow-unmixed
// has a maximum attainable effectiveness below 1 for Cr > 0; a request
// above it fails with an *UnattainableError carrying the analytic
// maximum. The crossflow-unmixed arrangement has no closed-form
// inverse and is solved by a bracketed root-find on the forward
// correlation.
func NTUFromEffectiveness(effectiveness, Cr float64, cfg Configuration) (float64, error) {
	if !cfg.known() {
		return 0, fmt.Errorf("%s: %w", cfg, ErrUnknownConfiguration)
	}
	if Cr < 0 || Cr > 1 {
		return 0, fmt.Errorf("heat capacity rate ratio %g must be within [0, 1] by definition: %w", Cr, ErrInvalidInput)
	}
	if Cr == 0 {
		return -math.Log(1 - effectiveness), nil
	}

	switch cfg.Arrangement {
	case Counterflow:
		if Cr == 1 {
			return effectiveness / (1 - effectiveness), nil
		}
		return 1 / (Cr - 1) * math.Log((effectiveness-1)/(effectiveness*Cr-1)), nil
	case Parallel:
		if effectiveness*(1+Cr) > 1 {
			return 0, &UnattainableError{Requested: effectiveness, Max: 1 / (1 + Cr), Config: cfg}
		}
		return -math.Log(1-effectiveness*(1+Cr)) / (1 + Cr), nil
	case ShellAndTube:
		shells := float64(cfg.shells())
		F := math.Pow((effectiveness*Cr-1)/(effectiveness-1), 1/shells)
		e1 := (F - 1) / (F - Cr)
		root := math.Sqrt(1 + Cr*Cr)
		E := (2/e1 - (1 + Cr)) / root
		if (E-1)/(E+1) <= 0 {
			term := math.Pow((-Cr+root+1)/(Cr+root-1), shells)
			max := (1 - term) / (Cr - term)
			return 0, &UnattainableError{Requested: effectiveness, Max: max, Config: cfg}
		}
		return shells * (-1 / root * math.Log((E-1)/(E+1))), nil
	case CrossflowUnmixed:
		resid := func(ntu float64) float64 {
			return 1 - math.Exp(1/Cr*math.Pow(ntu, 0.22)*(math.Exp(-Cr*math.Pow(ntu, 0.78))-1)) - effectiveness
		}
		ntu, err := utils.Ridder(resid, crossflowNTUMin, crossflowNTUMax, 1e-12, 100)
		if err != nil {
			if errors.Is(err, utils.ErrNoBracket) {
				return 0, fmt.Errorf("crossflow effectiveness %g: %w", effectiveness, ErrRootBracket)
			}
			return 0, err
		}
		return ntu, nil
	case CrossflowMixedCmin:
		if Cr*math.Log(1-effectiveness) < -1 {
			return 0, &UnattainableError{Requested: effectiveness, Max: 1 - math.Exp(-1/Cr), Config: cfg}
		}
		return -1 / Cr * math.Log(Cr*math.Log(1-effectiveness)+1), nil
	case CrossflowMixedCmax:
		if 1/Cr*math.Log(1-effectiveness*Cr) < -1 {
			return 0, &UnattainableError{Requested: effectiveness, Max: (math.Exp(Cr) - 1) * math.Exp(-Cr) / Cr, Config: cfg}
		}
		return -math.Log(1 + 1/Cr*math.Log(1-effectiveness*Cr)), nil
	case Boiler, Condenser:
		return -math.Log(1 - effectiveness), nil
	}
	return 0, fmt.Errorf("%s: %w", cfg, ErrUnknownConfiguration)
}
