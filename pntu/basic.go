// Package pntu implements the P-NTU (temperature effectiveness)
// parameterization of heat exchanger performance. Unlike the
// Cmin/Cmax-anchored effectiveness of package entu, every quantity
// here is taken with respect to a distinguished stream 1: R1 = C1/C2,
// NTU1 = UA/C1, and P1 is the temperature effectiveness of stream 1.
// P1 coincides with the Cmin/Cmax effectiveness only when stream 1 is
// the minimum-capacity stream.
//
// The basic single-pass arrangements and the TEMA J and H shell
// geometries are separate published correlation families; no closed
// unifying formula exists across them.
package pntu

import (
	"fmt"
	"math"
)

// BasicArrangement selects one of the idealized single-pass
// arrangements.
type BasicArrangement uint8

const (
	Counterflow BasicArrangement = iota
	Parallel
	CrossflowUnmixed
	CrossflowMixed1
	CrossflowMixed2
	CrossflowMixed12
)

func (a BasicArrangement) String() string {
	switch a {
	case Counterflow:
		return "counterflow"
	case Parallel:
		return "parallel"
	case CrossflowUnmixed:
		return "crossflow"
	case CrossflowMixed1:
		return "crossflow, mixed 1"
	case CrossflowMixed2:
		return "crossflow, mixed 2"
	case CrossflowMixed12:
		return "crossflow, mixed 1&2"
	}
	return fmt.Sprintf("arrangement(%d)", int(a))
}

// Basic returns the temperature effectiveness P1 of stream 1 for the
// idealized single-pass arrangements. The crossflow (both unmixed)
// form is the same closed-form approximation used in package entu; the
// exact solution is an infinite series.
func Basic(R1, NTU1 float64, arr BasicArrangement) (float64, error) {
	switch arr {
	case Counterflow:
		if R1 == 1 {
			// removable singularity, same limit as the
			// Cr=1 counterflow e-NTU form
			return NTU1 / (1 + NTU1), nil
		}
		e := math.Exp(-NTU1 * (1 - R1))
		return (1 - e) / (1 - R1*e), nil
	case Parallel:
		return (1 - math.Exp(-NTU1*(1+R1))) / (1 + R1), nil
	case CrossflowUnmixed:
		return 1 - math.Exp(math.Pow(NTU1, 0.22)/R1*(math.Exp(-R1*math.Pow(NTU1, 0.78))-1)), nil
	case CrossflowMixed1:
		K := 1 - math.Exp(-R1*NTU1)
		return 1 - math.Exp(-K/R1), nil
	case CrossflowMixed2:
		K := 1 - math.Exp(-NTU1)
		return (1 - math.Exp(-K*R1)) / R1, nil
	case CrossflowMixed12:
		K1 := 1 - math.Exp(-NTU1)
		K2 := 1 - math.Exp(-R1*NTU1)
		return 1 / (1/K1 + R1/K2 - 1/NTU1), nil
	}
	return 0, fmt.Errorf("%s: %w", arr, ErrUnknownArrangement)
}
