// Package geometry holds the shell-and-tube geometry utilities that
// feed UA-side inputs to the effectiveness solvers or consume their
// outputs: TEMA tube gauge tables, shell and baffle sizing tables,
// tube count correlations, and the LMTD correction factor. All are
// single-formula or table-lookup helpers with no iterative solving.
package geometry

import "math"

// FLMTDFakheri returns the log mean temperature difference correction
// factor Ft for a shell-and-tube exchanger with one or an even number
// of tube passes and the given number of shell passes, per Fakheri's
// general expression. The result is symmetric in the hot and cold
// sides and independent of the temperature unit. R = 1, where the
// general logarithms cannot be evaluated, uses its own limiting form.
func FLMTDFakheri(Thi, Tho, Tci, Tco float64, shells int) float64 {
	R := (Thi - Tho) / (Tco - Tci)
	P := (Tco - Tci) / (Thi - Tci)
	N := float64(shells)
	if R == 1 {
		W2 := (N - N*P) / (N - N*P + P)
		return (math.Sqrt2 * (1 - W2) / W2) /
			math.Log((W2/(1-W2) + 1/math.Sqrt2) / (W2/(1-W2) - 1/math.Sqrt2))
	}
	W := math.Pow((1-P*R)/(1-P), 1/N)
	S := math.Sqrt(R*R+1) / (R - 1)
	return S * math.Log(W) / math.Log((1+W-S+S*W)/(1+W+S-S*W))
}
