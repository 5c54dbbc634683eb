package geometry

import (
	"errors"
	"fmt"
)

// ErrShellInput indicates a shell-side table lookup with no usable
// input.
var ErrShellInput = errors.New("insufficient shell-side geometry input")

// DBundleMin returns a rough good choice of shell diameter for a tube
// outer diameter, per the HEDH selection chart. Purely a lookup; the
// shell size must be revisited once the area requirement is known.
func DBundleMin(Do float64) float64 {
	switch {
	case Do <= 0.006:
		return 0.1
	case Do <= 0.01:
		return 0.1
	case Do <= 0.014:
		return 0.3
	case Do <= 0.02:
		return 0.5
	case Do <= 0.03:
		return 1
	default:
		return 1.5
	}
}

// ShellClearance returns the TEMA clearance between shell and tube
// bundle. Only one of the bundle or shell diameter is needed; shell
// diameter wins when both are given. Lower limits extend up to the
// next tabulated limit.
func ShellClearance(DBundle, DShell float64) (float64, error) {
	switch {
	case DShell > 0:
		switch {
		case DShell < 0.457:
			return 0.0032, nil
		case DShell < 1.016:
			return 0.0048, nil
		case DShell < 1.397:
			return 0.0064, nil
		case DShell < 1.778:
			return 0.0079, nil
		case DShell < 2.159:
			return 0.0095, nil
		default:
			return 0.011, nil
		}
	case DBundle > 0:
		switch {
		case DBundle < 0.457-0.0048:
			return 0.0032, nil
		case DBundle < 1.016-0.0064:
			return 0.0048, nil
		case DBundle < 1.397-0.0079:
			return 0.0064, nil
		case DBundle < 1.778-0.0095:
			return 0.0079, nil
		case DBundle < 2.159-0.011:
			return 0.0095, nil
		default:
			return 0.011, nil
		}
	}
	return 0, fmt.Errorf("DShell or DBundle must be specified: %w", ErrShellInput)
}

// TEMA baffle and support plate thickness tables, m; rows are shell
// diameter classes, columns unsupported length classes.
var (
	temaBafflesRefinery = [5][5]float64{
		{0.0032, 0.0048, 0.0064, 0.0095, 0.0095},
		{0.0048, 0.0064, 0.0095, 0.0095, 0.0127},
		{0.0064, 0.0075, 0.0095, 0.0127, 0.0159},
		{0.0064, 0.0095, 0.0127, 0.0159, 0.0159},
		{0.0095, 0.0127, 0.0159, 0.0191, 0.0191},
	}
	temaBafflesOther = [5][6]float64{
		{0.0016, 0.0032, 0.0048, 0.0064, 0.0095, 0.0095},
		{0.0032, 0.0048, 0.0064, 0.0095, 0.0095, 0.0127},
		{0.0048, 0.0064, 0.0075, 0.0095, 0.0127, 0.0159},
		{0.0064, 0.0064, 0.0095, 0.0127, 0.0159, 0.0159},
		{0.0064, 0.0095, 0.0127, 0.0127, 0.0191, 0.0191},
	}
)

// BaffleThickness returns the TEMA thickness of baffles and support
// plates (not longitudinal baffles) for a shell diameter, unsupported
// tube span, and service class "R" (refinery), "C" (general) or "B"
// (chemical).
func BaffleThickness(Dshell, LUnsupported float64, service string) (float64, error) {
	var j int
	switch {
	case Dshell < 0.381:
		j = 0
	case Dshell < 0.737:
		j = 1
	case Dshell < 0.991:
		j = 2
	case Dshell < 1.524:
		j = 3
	default:
		j = 4
	}

	switch service {
	case "R":
		var i int
		switch {
		case LUnsupported <= 0.61:
			i = 0
		case LUnsupported <= 0.914:
			i = 1
		case LUnsupported <= 1.219:
			i = 2
		case LUnsupported <= 1.524:
			i = 3
		default:
			i = 4
		}
		return temaBafflesRefinery[j][i], nil
	case "C", "B":
		var i int
		switch {
		case LUnsupported <= 0.305:
			i = 0
		case LUnsupported <= 0.610:
			i = 1
		case LUnsupported <= 0.914:
			i = 2
		case LUnsupported <= 1.219:
			i = 3
		case LUnsupported <= 1.524:
			i = 4
		default:
			i = 5
		}
		return temaBafflesOther[j][i], nil
	}
	return 0, fmt.Errorf("service %q is not one of R, C, B: %w", service, ErrShellInput)
}

// DBaffleHoles returns the TEMA baffle hole diameter for a tube outer
// diameter and unsupported span. Holes are drilled 0.8 mm over for
// large tubes or short spans, 0.4 mm over otherwise.
func DBaffleHoles(do, LUnsupported float64) float64 {
	if do > 0.0318 || LUnsupported <= 0.914 {
		return do + 0.0008
	}
	return do + 0.0004
}

// Maximum unsupported straight tube spans, m, per TEMA; temperature
// limits are ignored.
var (
	lUnsupportedNPS       = []float64{0.25, 0.375, 0.5, 0.628, 0.75, 0.875, 1, 1.25, 1.5, 2, 2.5, 3}
	lUnsupportedSteel     = []float64{0.66, 0.889, 1.118, 1.321, 1.524, 1.753, 1.88, 2.235, 2.54, 3.175, 3.175, 3.175}
	lUnsupportedAluminium = []float64{0.559, 0.762, 0.965, 1.143, 1.321, 1.524, 1.626, 1.93, 2.21, 2.794, 2.794, 2.794}
)

// LUnsupportedMax returns the TEMA maximum unsupported tube span for a
// nominal pipe size in inches. Material "CS" selects carbon steel;
// anything else selects the aluminium and alloy column.
func LUnsupportedMax(NPS float64, material string) (float64, error) {
	for i, nps := range lUnsupportedNPS {
		if nps == NPS {
			if material == "CS" {
				return lUnsupportedSteel[i], nil
			}
			return lUnsupportedAluminium[i], nil
		}
	}
	return 0, fmt.Errorf("NPS %g not in the unsupported span table: %w", NPS, ErrShellInput)
}
