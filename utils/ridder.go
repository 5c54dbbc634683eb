package utils

import (
	"errors"
	"fmt"
	"math"
)

// ErrNoBracket indicates the residual does not change sign across the
// supplied bracket, so no root can be isolated.
var ErrNoBracket = errors.New("residual does not change sign across the bracket")

// Ridder finds a root of f within [a, b] using Ridder's method of
// bracketed exponential interpolation. The bracket must straddle a
// sign change of f. Convergence is declared when successive estimates
// agree within tol relative to the estimate's magnitude; maxIter bounds
// the bracket-narrowing loop.
func Ridder(f func(float64) float64, a, b, tol float64, maxIter int) (float64, error) {
	fa := f(a)
	if fa == 0 {
		return a, nil
	}
	fb := f(b)
	if fb == 0 {
		return b, nil
	}
	if fa*fb > 0 {
		return 0, fmt.Errorf("[%g, %g]: %w", a, b, ErrNoBracket)
	}

	x := a
	for i := 0; i < maxIter; i++ {
		m := 0.5 * (a + b)
		fm := f(m)
		s := math.Sqrt(fm*fm - fa*fb)
		if s == 0 {
			return x, nil
		}
		dx := (m - a) * fm / s
		if fa < fb {
			dx = -dx
		}
		xNew := m + dx
		if math.Abs(xNew-x) <= tol*math.Max(1, math.Abs(xNew)) {
			return xNew, nil
		}
		x = xNew
		fx := f(x)
		if fx == 0 {
			return x, nil
		}
		// Keep the sub-interval that still brackets the sign change.
		if math.Signbit(fm) != math.Signbit(fx) {
			a, fa = m, fm
			b, fb = x, fx
		} else if math.Signbit(fa) != math.Signbit(fx) {
			b, fb = x, fx
		} else {
			a, fa = x, fx
		}
		if math.Abs(b-a) <= tol*math.Max(1, math.Abs(b)) {
			return x, nil
		}
	}
	return x, fmt.Errorf("no convergence within %d iterations", maxIter)
}
