package pntu

import (
	"errors"
	"fmt"
)

// ErrUnknownArrangement indicates an unrecognized basic P-NTU
// arrangement selector.
var ErrUnknownArrangement = errors.New("P-NTU arrangement not recognized")

// PassCountError reports a tube pass count with no published
// correlation for the shell geometry family.
type PassCountError struct {
	Family    string
	Ntp       int
	Supported []int
}

func (e *PassCountError) Error() string {
	return fmt.Sprintf("TEMA %s: no correlation for %d tube passes (supported: %v)", e.Family, e.Ntp, e.Supported)
}
