package pntu

import "math"

// TEMAJ returns the temperature effectiveness P1 of a TEMA J
// (divided-flow shell) exchanger with Ntp tube passes. Supported pass
// counts are 1, 2 and 4; the shell fluid is mixed in every case. The
// one-pass correlation has a removable singularity at R1 = 2 handled
// by its own limiting form.
func TEMAJ(R1, NTU1 float64, Ntp int) (float64, error) {
	switch Ntp {
	case 1:
		A := math.Exp(NTU1)
		if R1 == 2 {
			return 0.5 * (1 - (1+1/(A*A))/(2*(1+NTU1))), nil
		}
		B := math.Exp(-NTU1 * R1 / 2)
		return 1 / R1 * (1 - (2-R1)*(2*A+R1*B)/((2+R1)*(2*A-R1/B))), nil
	case 2:
		lambda := math.Sqrt(1 + R1*R1/4)
		A := math.Exp(NTU1)
		Al := math.Pow(A, lambda)
		D := 1 + lambda*math.Pow(A, (lambda-1)/2)/(Al-1)
		C := math.Pow(A, (1+lambda)/2) / (lambda - 1 + (1+lambda)*Al)
		B := (Al + 1) / (Al - 1)
		return 1 / (1 + R1/2 + lambda*B - 2*lambda*C*D), nil
	case 4:
		lambda := math.Sqrt(1 + R1*R1/16)
		E := math.Exp(R1 * NTU1 / 2)
		A := math.Exp(NTU1)
		Al := math.Pow(A, lambda)
		D := 1 + lambda*math.Pow(A, (lambda-1)/2)/(Al-1)
		C := math.Pow(A, (1+lambda)/2) / (lambda - 1 + (1+lambda)*Al)
		B := (Al + 1) / (Al - 1)
		return 1 / (1 + R1/4*(1+3*E)/(1+E) + lambda*B - 2*lambda*C*D), nil
	}
	return 0, &PassCountError{Family: "J", Ntp: Ntp, Supported: []int{1, 2, 4}}
}
