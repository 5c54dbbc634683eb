package geometry

import (
	"errors"
	"fmt"
)

var (
	// ErrNotTEMA indicates an NPS/BWG pair outside the TEMA tube
	// schedule.
	ErrNotTEMA = errors.New("NPS and BWG specified are not listed in TEMA")

	// ErrTubeQuery indicates a tube query that under- or
	// over-determines the lookup.
	ErrTubeQuery = errors.New("tube query does not determine a unique TEMA size")
)

// Birmingham wire gauge wall thicknesses; the slice index is the gauge
// number.
var bwgInch = []float64{
	0.34, 0.3, 0.284, 0.259, 0.238, 0.22, 0.203, 0.18, 0.165, 0.148,
	0.134, 0.12, 0.109, 0.095, 0.083, 0.072, 0.065, 0.058, 0.049, 0.042,
	0.035, 0.032, 0.028, 0.025, 0.022, 0.02, 0.018, 0.016, 0.014, 0.013,
	0.012, 0.01, 0.009, 0.008, 0.007, 0.005, 0.004,
}

// BWGSI is the BWG wall thickness in metres per gauge number, rounded
// to the micrometre as tabulated.
var BWGSI = []float64{
	0.008636, 0.00762, 0.007214, 0.006579, 0.006045, 0.005588, 0.005156,
	0.004572, 0.004191, 0.003759, 0.003404, 0.003048, 0.002769, 0.002413,
	0.002108, 0.001829, 0.001651, 0.001473, 0.001245, 0.001067, 0.000889,
	0.000813, 0.000711, 0.000635, 0.000559, 0.000508, 0.000457, 0.000406,
	0.000356, 0.00033, 0.000305, 0.000254, 0.000229, 0.000203, 0.000178,
	0.000127, 0.000102,
}

// TEMATubing lists the BWG gauges TEMA publishes for each nominal pipe
// size in inches, thinner walls last.
var TEMATubing = map[float64][]int{
	0.25:  {22, 24},
	0.375: {18, 20, 22},
	0.5:   {18, 20},
	0.625: {16, 18, 20},
	0.75:  {12, 14, 16, 18, 20},
	0.875: {14, 16, 18, 20},
	1:     {12, 14, 16, 18},
	1.25:  {10, 12, 14, 16},
	2:     {12, 14},
}

// CheckTubingTEMA reports whether the NPS/BWG pair is a standard TEMA
// tube size.
func CheckTubingTEMA(NPS float64, BWG int) bool {
	for _, g := range TEMATubing[NPS] {
		if g == BWG {
			return true
		}
	}
	return false
}

// Tube is one TEMA standard tube size; a tube is fully defined by its
// outer diameter and wall thickness.
type Tube struct {
	NPS float64 // nominal pipe size, in
	BWG int     // Birmingham wire gauge
	Do  float64 // outer diameter, m
	Di  float64 // inner diameter, m
	T   float64 // wall thickness, m
}

// TubeQuery selects a TEMA tube by whichever fields are set; zero
// means unset. Do and Di, when given, must match a listed size
// exactly; Tmin performs a fuzzy match against the thinnest listed
// wall at least that thick.
type TubeQuery struct {
	NPS    float64 // nominal pipe size, in
	BWG    int     // Birmingham wire gauge
	Do, Di float64 // outer/inner diameter, m
	Tmin   float64 // minimum wall thickness, m
}

func bwgFromThickness(t float64) (int, bool) {
	for g, ti := range BWGSI {
		if ti == t {
			return g, true
		}
	}
	return 0, false
}

func tubeFromNPSBWG(NPS float64, BWG int) (Tube, error) {
	if !CheckTubingTEMA(NPS, BWG) {
		return Tube{}, fmt.Errorf("NPS %g BWG %d: %w", NPS, BWG, ErrNotTEMA)
	}
	do := 0.0254 * NPS
	t := BWGSI[BWG]
	return Tube{NPS: NPS, BWG: BWG, Do: do, Di: do - 2*t, T: t}, nil
}

// GetTubeTEMA resolves a tube query against the TEMA schedule,
// mirroring the multi-way lookup of the published tables.
func GetTubeTEMA(q TubeQuery) (Tube, error) {
	switch {
	case q.NPS != 0 && q.BWG != 0:
		return tubeFromNPSBWG(q.NPS, q.BWG)
	case q.Do != 0 && q.BWG != 0:
		return tubeFromNPSBWG(q.Do/0.0254, q.BWG)
	case q.BWG != 0 && q.Di != 0:
		if q.BWG < 0 || q.BWG >= len(BWGSI) {
			return Tube{}, fmt.Errorf("BWG %d out of range: %w", q.BWG, ErrNotTEMA)
		}
		t := BWGSI[q.BWG]
		do := q.Di + 2*t
		return tubeFromNPSBWG(do/0.0254, q.BWG)
	case q.NPS != 0 && q.Di != 0:
		do := 0.0254 * q.NPS
		t := (do - q.Di) / 2
		g, ok := bwgFromThickness(t)
		if !ok {
			return Tube{}, fmt.Errorf("wall thickness %g m: %w", t, ErrNotTEMA)
		}
		return tubeFromNPSBWG(q.NPS, g)
	case q.Di != 0 && q.Do != 0:
		t := (q.Do - q.Di) / 2
		g, ok := bwgFromThickness(t)
		if !ok {
			return Tube{}, fmt.Errorf("wall thickness %g m: %w", t, ErrNotTEMA)
		}
		return tubeFromNPSBWG(q.Do/0.0254, g)
	case q.NPS != 0 && q.Tmin != 0:
		gauges := TEMATubing[q.NPS]
		if len(gauges) == 0 {
			return Tube{}, fmt.Errorf("NPS %g: %w", q.NPS, ErrNotTEMA)
		}
		// Gauges are listed thick to thin; pick the thinnest wall
		// still at least Tmin.
		for i := len(gauges) - 1; i >= 0; i-- {
			if BWGSI[gauges[i]] >= q.Tmin {
				return tubeFromNPSBWG(q.NPS, gauges[i])
			}
		}
		return Tube{}, fmt.Errorf("minimum thickness %g m is larger than available in TEMA: %w", q.Tmin, ErrNotTEMA)
	case q.Do != 0 && q.Tmin != 0:
		return GetTubeTEMA(TubeQuery{NPS: q.Do / 0.0254, Tmin: q.Tmin})
	case q.Di != 0 && q.Tmin != 0:
		return Tube{}, fmt.Errorf("inner diameter with minimum thickness has multiple solutions: %w", ErrTubeQuery)
	case q.NPS != 0:
		gauges := TEMATubing[q.NPS]
		if len(gauges) == 0 {
			return Tube{}, fmt.Errorf("NPS %g: %w", q.NPS, ErrNotTEMA)
		}
		return tubeFromNPSBWG(q.NPS, gauges[0])
	}
	return Tube{}, fmt.Errorf("insufficient information provided: %w", ErrTubeQuery)
}
