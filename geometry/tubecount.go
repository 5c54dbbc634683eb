package geometry

import (
	"errors"
	"fmt"
	"math"
)

var (
	// ErrLayoutAngle indicates a tube layout angle outside
	// {30, 45, 60, 90} degrees.
	ErrLayoutAngle = errors.New("only 30, 60, 45 and 90 degree layouts are supported")

	// ErrTubePasses indicates a pass count a correlation has no
	// constants for.
	ErrTubePasses = errors.New("number of tube passes not supported by this correlation")
)

// NtubesPerrys estimates the number of tubes fitting in a bundle of
// outer diameter DBundle with tube OD do, from the quartic fits in
// Perry's Handbook. The fits assume a pitch of 1.25 do and claim
// accuracy of roughly 24 tubes.
func NtubesPerrys(DBundle, do float64, Ntp, angle int) (int, error) {
	var c [5]float64
	var C float64
	switch angle {
	case 30, 60:
		C = 0.75*DBundle/do - 36
		switch Ntp {
		case 1:
			c = [5]float64{1298, 74.86, 1.283, -0.0078, -0.0006}
		case 2:
			c = [5]float64{1266, 73.58, 1.234, -0.0071, -0.0005}
		case 4:
			c = [5]float64{1196, 70.79, 1.180, -0.0059, -0.0004}
		case 6:
			c = [5]float64{1166, 70.72, 1.269, -0.0074, -0.0006}
		default:
			return 0, fmt.Errorf("Ntp %d (want 1, 2, 4 or 6): %w", Ntp, ErrTubePasses)
		}
	case 45, 90:
		C = DBundle/do - 36
		switch Ntp {
		case 1:
			c = [5]float64{593.6, 33.52, 0.3782, -0.0012, 0.0001}
		case 2:
			c = [5]float64{578.8, 33.36, 0.3847, -0.0013, 0.0001}
		case 4:
			c = [5]float64{562.0, 33.04, 0.3661, -0.0016, 0.0002}
		case 6:
			c = [5]float64{550.4, 32.49, 0.3873, -0.0013, 0.0001}
		default:
			return 0, fmt.Errorf("Ntp %d (want 1, 2, 4 or 6): %w", Ntp, ErrTubePasses)
		}
	default:
		return 0, fmt.Errorf("angle %d: %w", angle, ErrLayoutAngle)
	}
	nt := c[0] + c[1]*C + c[2]*C*C + c[3]*C*C*C + c[4]*C*C*C*C
	return int(nt), nil
}

// vdiPassConstant returns the f2 packing-loss constant of the VDI
// correlation. Six passes is not officially published; the constant
// is an estimate.
func vdiPassConstant(Ntp int) (float64, error) {
	switch Ntp {
	case 1:
		return 0, nil
	case 2:
		return 22, nil
	case 4:
		return 70, nil
	case 6:
		return 90, nil
	case 8:
		return 105, nil
	}
	return 0, fmt.Errorf("Ntp %d (want 1, 2, 4, 6 or 8): %w", Ntp, ErrTubePasses)
}

func vdiLayoutConstant(angle int) (float64, error) {
	switch angle {
	case 30, 60:
		return 1.1, nil
	case 45, 90:
		return 1.3, nil
	}
	return 0, fmt.Errorf("angle %d: %w", angle, ErrLayoutAngle)
}

// NtubesVDI estimates the tube count from the VDI Heat Atlas
// correlation, rearranged for the count. The underlying equation is
// dimensional in millimetres.
func NtubesVDI(DBundle float64, Ntp int, do, pitch float64, angle int) (int, error) {
	f2, err := vdiPassConstant(Ntp)
	if err != nil {
		return 0, err
	}
	f1, err := vdiLayoutConstant(angle)
	if err != nil {
		return 0, err
	}
	DBundle, do, pitch = DBundle*1000, do*1000, pitch*1000
	t := pitch
	t2 := t * t
	t4 := t2 * t2
	nt := (-math.Sqrt(-4*f1*t4*f2*f2*do+4*f1*t4*f2*f2*DBundle*DBundle+t4*f2*f2*f2*f2) -
		2*f1*t2*do + 2*f1*t2*DBundle*DBundle + t2*f2*f2) / (2 * f1 * f1 * t4)
	return int(nt), nil
}

// NtubesHEDH estimates the tube count from the HEDH correlation; only
// a single tube pass is supported.
func NtubesHEDH(DBundle, do, pitch float64, angle int) (int, error) {
	var c1 float64
	switch angle {
	case 30, 60:
		c1 = 13.0 / 15.0
	case 45, 90:
		c1 = 1
	default:
		return 0, fmt.Errorf("angle %d: %w", angle, ErrLayoutAngle)
	}
	dctl := DBundle - do
	return int(0.78 * dctl * dctl / c1 / (pitch * pitch)), nil
}

// Ntubes estimates how many tubes fit in a bundle, dispatching to a
// named correlation ("HEDH", "VDI" or "Perry's"). An empty method
// selects HEDH for a single pass and VDI otherwise. When pitch is
// zero it is taken as pitchRatio*do; a zero pitchRatio means 1.25.
func Ntubes(DBundle float64, Ntp int, do, pitch float64, angle int, pitchRatio float64, method string) (int, error) {
	if pitch == 0 {
		if pitchRatio == 0 {
			pitchRatio = 1.25
		}
		pitch = pitchRatio * do
	}
	if method == "" {
		if Ntp == 1 {
			method = "HEDH"
		} else {
			method = "VDI"
		}
	}
	switch method {
	case "HEDH":
		return NtubesHEDH(DBundle, do, pitch, angle)
	case "VDI":
		return NtubesVDI(DBundle, Ntp, do, pitch, angle)
	case "Perry's":
		return NtubesPerrys(DBundle, do, Ntp, angle)
	}
	return 0, fmt.Errorf("tube count method %q not recognized", method)
}

// DForNtubesVDI inverts the VDI correlation: the bundle outer diameter
// needed to hold Nt tubes. Dimensional in millimetres like the
// forward form.
func DForNtubesVDI(Nt, Ntp int, do, pitch float64, angle int) (float64, error) {
	f2, err := vdiPassConstant(Ntp)
	if err != nil {
		return 0, err
	}
	f1, err := vdiLayoutConstant(angle)
	if err != nil {
		return 0, err
	}
	do, pitch = do*1000, pitch*1000
	n := float64(Nt)
	return math.Sqrt(f1*n*pitch*pitch+f2*math.Sqrt(n)*pitch+do) / 1000, nil
}
