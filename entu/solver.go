package entu

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"
)

// DefaultQTolerance is the relative mismatch allowed between the hot
// and cold side duties when all four terminal temperatures are
// supplied independently.
const DefaultQTolerance = 0.01

// Case describes one heat exchanger rating or sizing problem. Terminal
// temperatures and UA are pointers so an unknown reads as nil rather
// than as a legitimate 0.0 value.
type Case struct {
	Mh, Mc   float64 // mass flow rates, kg/s
	Cph, Cpc float64 // averaged specific heats, J/(kg K)
	Config   Configuration

	Thi, Tho *float64 // hot stream inlet/outlet temperatures
	Tci, Tco *float64 // cold stream inlet/outlet temperatures
	UA       *float64 // overall heat transfer area term, W/K

	// QTolerance overrides DefaultQTolerance when non-zero.
	QTolerance float64
}

// Result is the fully determined state of a solved exchanger.
type Result struct {
	Q             float64 // transferred duty, W
	UA            float64 // W/K
	Cr            float64
	Cmin, Cmax    float64 // W/K
	Effectiveness float64
	NTU           float64
	Thi, Tho      float64
	Tci, Tco      float64
}

// Solve fills in all unknowns of a Case. With UA supplied it rates the
// exchanger: NTU and effectiveness follow from UA, the duty from
// whichever temperature pair anchors the balance, and the remaining
// temperatures from the duty. Without UA it sizes the exchanger: the
// duty comes from whichever side has both terminal temperatures, the
// missing temperature from the other side's balance, and UA from the
// inverted effectiveness correlation.
func Solve(c Case) (Result, error) {
	if c.Mh <= 0 || c.Mc <= 0 || c.Cph <= 0 || c.Cpc <= 0 {
		return Result{}, fmt.Errorf("mass flows and specific heats must be positive: %w", ErrInvalidInput)
	}
	ch := c.Mh * c.Cph
	cc := c.Mc * c.Cpc
	cmin := math.Min(ch, cc)
	cmax := math.Max(ch, cc)
	cr := cmin / cmax

	res := Result{Cr: cr, Cmin: cmin, Cmax: cmax}
	if c.UA != nil {
		return solveRating(c, res, ch, cc)
	}
	return solveSizing(c, res, ch, cc)
}

// solveRating handles the UA-known mode.
func solveRating(c Case, res Result, ch, cc float64) (Result, error) {
	cmin := res.Cmin
	ntu := NTUFromUA(*c.UA, cmin)
	eff, err := EffectivenessFromNTU(ntu, res.Cr, c.Config)
	if err != nil {
		return Result{}, err
	}

	// Q is expressed differently depending on which two temperatures
	// anchor the relation.
	var q float64
	switch {
	case c.Thi != nil && c.Tci != nil:
		q = eff * cmin * (*c.Thi - *c.Tci)
	case c.Tho != nil && c.Tco != nil:
		q = eff * cmin * cc * ch * (*c.Tco - *c.Tho) / (eff*cmin*(cc+ch) - ch*cc)
	case c.Thi != nil && c.Tco != nil:
		q = cmin * cc * eff * (*c.Tco - *c.Thi) / (eff*cmin - cc)
	case c.Tho != nil && c.Tci != nil:
		q = cmin * ch * eff * (*c.Tci - *c.Tho) / (eff*cmin - ch)
	default:
		return Result{}, fmt.Errorf("one pair of (Thi, Tci), (Thi, Tco), (Tho, Tci) or (Tho, Tco) is required along with UA: %w", ErrInsufficientInput)
	}

	res.Q = q
	res.UA = *c.UA
	res.NTU = ntu
	res.Effectiveness = eff

	// Back-compute only the missing temperatures, preferring the
	// inlet-anchored form when an inlet is known.
	switch {
	case c.Tci != nil && c.Tco != nil:
		res.Tci, res.Tco = *c.Tci, *c.Tco
	case c.Tci != nil:
		res.Tci, res.Tco = *c.Tci, *c.Tci+q/cc
	default:
		res.Tci, res.Tco = *c.Tco-q/cc, *c.Tco
	}
	switch {
	case c.Thi != nil && c.Tho != nil:
		res.Thi, res.Tho = *c.Thi, *c.Tho
	case c.Thi != nil:
		res.Thi, res.Tho = *c.Thi, *c.Thi-q/ch
	default:
		res.Thi, res.Tho = *c.Tho+q/ch, *c.Tho
	}
	return res, nil
}

// solveSizing handles the UA-unknown mode.
func solveSizing(c Case, res Result, ch, cc float64) (Result, error) {
	qtol := c.QTolerance
	if qtol == 0 {
		qtol = DefaultQTolerance
	}

	var q float64
	switch {
	case c.Thi != nil && c.Tho != nil:
		q = ch * (*c.Thi - *c.Tho)
		switch {
		case c.Tci != nil && c.Tco == nil:
			tco := *c.Tci + q/cc
			c.Tco = &tco
		case c.Tco != nil && c.Tci == nil:
			tci := *c.Tco - q/cc
			c.Tci = &tci
		case c.Tci != nil && c.Tco != nil:
			q2 := cc * (*c.Tco - *c.Tci)
			if !scalar.EqualWithinRel(q, q2, qtol) {
				return Result{}, &InconsistentError{QHot: q, QCold: q2, Tolerance: qtol}
			}
		default:
			return Result{}, fmt.Errorf("at least one cold side temperature is required: %w", ErrInsufficientInput)
		}
	case c.Tci != nil && c.Tco != nil:
		q = cc * (*c.Tco - *c.Tci)
		switch {
		case c.Thi != nil && c.Tho == nil:
			tho := *c.Thi - q/ch
			c.Tho = &tho
		case c.Tho != nil && c.Thi == nil:
			thi := *c.Tho + q/ch
			c.Thi = &thi
		default:
			return Result{}, fmt.Errorf("at least one hot side temperature is required: %w", ErrInsufficientInput)
		}
	default:
		return Result{}, fmt.Errorf("both temperatures of at least one side are required to compute the duty: %w", ErrInsufficientInput)
	}

	eff := q / res.Cmin / (*c.Thi - *c.Tci)
	ntu, err := NTUFromEffectiveness(eff, res.Cr, c.Config)
	if err != nil {
		return Result{}, err
	}

	res.Q = q
	res.Effectiveness = eff
	res.NTU = ntu
	res.UA = UAFromNTU(ntu, res.Cmin)
	res.Thi, res.Tho = *c.Thi, *c.Tho
	res.Tci, res.Tco = *c.Tci, *c.Tco
	return res, nil
}
