package entu

import "math"

// Cmin returns the heat capacity rate of the smaller stream, given the
// hot and cold mass flow rates [kg/s] and averaged specific heats
// [J/(kg K)].
func Cmin(mh, mc, Cph, Cpc float64) float64 {
	return math.Min(mh*Cph, mc*Cpc)
}

// Cmax returns the heat capacity rate of the larger stream.
func Cmax(mh, mc, Cph, Cpc float64) float64 {
	return math.Max(mh*Cph, mc*Cpc)
}

// Cr returns the heat capacity rate ratio Cmin/Cmax, in [0, 1].
func Cr(mh, mc, Cph, Cpc float64) float64 {
	ch := mh * Cph
	cc := mc * Cpc
	return math.Min(ch, cc) / math.Max(ch, cc)
}

// NTUFromUA returns the number of transfer units UA/Cmin.
func NTUFromUA(UA, Cmin float64) float64 {
	return UA / Cmin
}

// UAFromNTU returns the overall heat transfer area term NTU*Cmin.
func UAFromNTU(NTU, Cmin float64) float64 {
	return NTU * Cmin
}
