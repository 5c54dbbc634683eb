package pntu

import "math"

// TEMAH returns the temperature effectiveness P1 of a TEMA H
// (double split flow shell) exchanger with Ntp tube passes. Supported
// pass counts are 1 and 2. For two passes the optimal flag selects the
// tube-inlet orientation; the inefficient orientation is evaluated by
// swapping the roles of the two streams (NTU2 = NTU1*R1, R2 = 1/R1)
// and converting the resulting P2 back to P1. The singular cases are
// R1 = 2 for one pass and R1 = 4 (R2 = 1/4) for two passes.
func TEMAH(R1, NTU1 float64, Ntp int, optimal bool) (float64, error) {
	switch {
	case Ntp == 1:
		A := 1 / (1 + R1/2) * (1 - math.Exp(-NTU1*(1+R1/2)/2))
		D := math.Exp(-NTU1 * (1 - R1/2) / 2)
		var B float64
		if R1 == 2 {
			B = NTU1 / (2 + NTU1)
		} else {
			B = (1 - D) / (1 - R1*D/2)
		}
		E := (A + B - A*B*R1/2) / 2
		return E*(1+(1-B*R1/2)*(1-A*R1/2+A*B*R1)) - A*B*(1-B*R1/2), nil
	case Ntp == 2 && optimal:
		alpha := NTU1 * (4 + R1) / 8
		beta := NTU1 * (4 - R1) / 8
		D := (1 - math.Exp(-alpha)) / (4/R1 + 1)
		var E, H float64
		if R1 == 4 {
			E = NTU1 / 2
			H = NTU1
		} else {
			E = (1 - math.Exp(-beta)) / (4/R1 - 1)
			H = (1 - math.Exp(-2*beta)) / (4/R1 - 1)
		}
		G := (1-D)*(1-D)*(D*D+E*E) + D*D*(1+E)*(1+E)
		B := (1 + H) * (1 + E) * (1 + E)
		return 1 / R1 * (1 - math.Pow(1-D, 4)/(B-4*G/R1)), nil
	case Ntp == 2:
		r1 := 1 / R1
		ntu1 := NTU1 * R1
		beta := ntu1 * (4*r1 + 1) / 8
		alpha := ntu1 / 8 * (4*r1 - 1)
		H := (math.Exp(-2*beta) - 1) / (4*r1 + 1)
		E := (math.Exp(-beta) - 1) / (4*r1 + 1)
		B := (1 + H) * (1 + E) * (1 + E)
		var D float64
		if r1 == 0.25 {
			D = -ntu1 / 8
		} else {
			D = (1 - math.Exp(-alpha)) / (1 - 4*r1)
		}
		G := (1-D)*(1-D)*(D*D+E*E) + D*D*(1+E)*(1+E)
		P2 := 1 - (B+4*G*r1)/math.Pow(1-D, 4)
		return P2 / R1, nil
	}
	return 0, &PassCountError{Family: "H", Ntp: Ntp, Supported: []int{1, 2}}
}
