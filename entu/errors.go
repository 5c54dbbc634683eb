package entu

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidInput indicates a physical precondition was violated,
	// such as Cr above 1 or a non-positive flow or heat capacity.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownConfiguration indicates an unrecognized exchanger
	// configuration tag.
	ErrUnknownConfiguration = errors.New("heat exchanger configuration not recognized")

	// ErrInsufficientInput indicates the solver could not determine a
	// unique solution from the supplied temperature/UA subset.
	ErrInsufficientInput = errors.New("insufficient inputs for a unique solution")

	// ErrRootBracket indicates the crossflow-unmixed inverse could not
	// bracket an NTU root in [1e-7, 1e5].
	ErrRootBracket = errors.New("no NTU root bracketed in [1e-7, 1e5]")
)

// UnattainableError reports a requested effectiveness above the
// analytic maximum reachable by the configuration at the given Cr.
type UnattainableError struct {
	Requested float64
	Max       float64
	Config    Configuration
}

func (e *UnattainableError) Error() string {
	return fmt.Sprintf("effectiveness %g is not physically possible for %s; the maximum effectiveness possible is %.12g",
		e.Requested, e.Config, e.Max)
}

// InconsistentError reports hot and cold side duties that disagree by
// more than the allowed relative tolerance when all four terminal
// temperatures are supplied independently.
type InconsistentError struct {
	QHot      float64
	QCold     float64
	Tolerance float64
}

func (e *InconsistentError) Error() string {
	return fmt.Sprintf("hot side duty %.6g W and cold side duty %.6g W disagree by more than %g relative",
		e.QHot, e.QCold, e.Tolerance)
}
