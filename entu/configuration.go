package entu

import (
	"fmt"
	"strconv"
	"strings"
)

// Arrangement selects the flow arrangement of a heat exchanger.
type Arrangement uint8

const (
	Counterflow Arrangement = iota
	Parallel
	CrossflowUnmixed
	CrossflowMixedCmin
	CrossflowMixedCmax
	Boiler
	Condenser
	ShellAndTube
)

// Configuration is an Arrangement plus, for shell-and-tube exchangers,
// the number of identical equal-UA shells in thermal series. Shells is
// ignored for every other arrangement; zero reads as one shell.
type Configuration struct {
	Arrangement Arrangement
	Shells      int
}

var (
	CounterflowConfig        = Configuration{Arrangement: Counterflow}
	ParallelConfig           = Configuration{Arrangement: Parallel}
	CrossflowConfig          = Configuration{Arrangement: CrossflowUnmixed}
	CrossflowMixedCminConfig = Configuration{Arrangement: CrossflowMixedCmin}
	CrossflowMixedCmaxConfig = Configuration{Arrangement: CrossflowMixedCmax}
	BoilerConfig             = Configuration{Arrangement: Boiler}
	CondenserConfig          = Configuration{Arrangement: Condenser}
)

// ShellAndTubeConfig returns the configuration for shells TEMA E
// one-pass-shell exchangers in series.
func ShellAndTubeConfig(shells int) Configuration {
	return Configuration{Arrangement: ShellAndTube, Shells: shells}
}

func (c Configuration) known() bool {
	return c.Arrangement <= ShellAndTube
}

func (c Configuration) shells() int {
	if c.Shells < 1 {
		return 1
	}
	return c.Shells
}

func (c Configuration) String() string {
	switch c.Arrangement {
	case Counterflow:
		return "counterflow"
	case Parallel:
		return "parallel"
	case CrossflowUnmixed:
		return "crossflow"
	case CrossflowMixedCmin:
		return "crossflow, mixed Cmin"
	case CrossflowMixedCmax:
		return "crossflow, mixed Cmax"
	case Boiler:
		return "boiler"
	case Condenser:
		return "condenser"
	case ShellAndTube:
		if c.shells() == 1 {
			return "S&T"
		}
		return fmt.Sprintf("%dS&T", c.shells())
	}
	return fmt.Sprintf("arrangement(%d)", int(c.Arrangement))
}

// ParseConfiguration maps the string tags used in input files onto the
// closed Configuration form. Shell-and-tube tags may carry a leading
// shell count, e.g. "3S&T"; a bare "S&T" means one shell.
func ParseConfiguration(tag string) (Configuration, error) {
	switch tag {
	case "counterflow":
		return CounterflowConfig, nil
	case "parallel":
		return ParallelConfig, nil
	case "crossflow":
		return CrossflowConfig, nil
	case "crossflow, mixed Cmin":
		return CrossflowMixedCminConfig, nil
	case "crossflow, mixed Cmax":
		return CrossflowMixedCmaxConfig, nil
	case "boiler":
		return BoilerConfig, nil
	case "condenser":
		return CondenserConfig, nil
	}
	if strings.Contains(tag, "S&T") {
		prefix := strings.SplitN(tag, "S&T", 2)[0]
		if prefix == "" {
			return ShellAndTubeConfig(1), nil
		}
		n, err := strconv.Atoi(prefix)
		if err != nil || n < 1 {
			return Configuration{}, fmt.Errorf("%q: %w", tag, ErrUnknownConfiguration)
		}
		return ShellAndTubeConfig(n), nil
	}
	return Configuration{}, fmt.Errorf("%q: %w", tag, ErrUnknownConfiguration)
}
