package geometry

// TEMARToMetric converts fouling factors from hr-ft2-F/BTU to m2-K/W.
const TEMARToMetric = 0.17611018

// TEMA nomenclature: front head, shell, and rear head letter codes,
// plus service classes.
var (
	TEMAHeads = map[string]string{
		"A": "Removable Channel and Cover",
		"B": "Bonnet (Integral Cover)",
		"C": "Integral With Tubesheet Removable Cover",
		"N": "Channel Integral With Tubesheet and Removable Cover",
		"D": "Special High-Pressure Closures",
	}
	TEMAShells = map[string]string{
		"E": "One-Pass Shell",
		"F": "Two-Pass Shell with Longitudinal Baffle",
		"G": "Split Flow",
		"H": "Double Split Flow",
		"J": "Divided Flow",
		"K": "Kettle-Type Reboiler",
		"X": "Cross Flow",
	}
	TEMARears = map[string]string{
		"L": `Fixed Tube Sheet; Like "A" Stationary Head`,
		"M": `Fixed Tube Sheet; Like "B" Stationary Head`,
		"N": `Fixed Tube Sheet; Like "C" Stationary Head`,
		"P": "Outside Packed Floating Head",
		"S": "Floating Head with Backing Device",
		"T": "Pull-Through Floating Head",
		"U": "U-Tube Bundle",
		"W": "Externally Sealed Floating Tubesheet",
	}
	TEMAServices = map[string]string{
		"B": "Chemical",
		"R": "Refinery",
		"C": "General",
	}
)

// BaffleTypes lists the baffle geometries in common use.
var BaffleTypes = []string{
	"segmental", "double segmental", "triple segmental",
	"disk and doughnut", "no tubes in window", "orifice", "rod",
}

// Standard straight tube lengths, m.
var (
	TEMALengths = []float64{2.438, 3.048, 3.658, 4.877, 6.096}
	HTRILengths = []float64{
		1.829, 2.438, 3.048, 3.658, 4.267, 4.877, 5.486, 6.096, 6.706,
		7.315, 8.534, 9.754, 10.973, 12.192, 13.411, 14.63, 15.85,
		17.069, 18.288,
	}
)

// HEDH standard plate shell inner diameters, m, 12 to 120 inches.
var HEDHShells = []float64{
	0.3048, 0.3302, 0.3556, 0.381, 0.4064, 0.4318, 0.4572, 0.4826,
	0.508, 0.5334, 0.5588, 0.6096, 0.6604, 0.7112, 0.762, 0.8128,
	0.8636, 0.9144, 0.9652, 1.016, 1.0668, 1.1176, 1.1684, 1.2192,
	1.27, 1.3208, 1.3716, 1.4224, 1.4732, 1.524, 1.6002, 1.6764,
	1.7526, 1.8288, 1.905, 1.9812, 2.0574, 2.1336, 2.2098, 2.286,
	2.3622, 2.4384, 2.5146, 2.5908, 2.667, 2.7432, 2.8194, 2.8956,
	2.9718, 3.048,
}

// HEDHPitches lists the published pitch ratios per tube NPS, in.
var HEDHPitches = map[float64][]float64{
	0.25:  {1.25, 1.5},
	0.375: {1.33, 1.42},
	0.5:   {1.25, 1.31, 1.38},
	0.625: {1.25, 1.3, 1.4},
	0.75:  {1.25, 1.33, 1.42, 1.5},
	1:     {1.25, 1.312, 1.375},
	1.25:  {1.25},
	1.5:   {1.25},
	2:     {1.25},
}
