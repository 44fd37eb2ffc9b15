package transition

import "math"

// Physical constants shared by every formula in this package.
const (
	ESquaredMeVfm    = 1.44        // e^2 in MeV fm
	MuNSquaredMeVfm3 = 0.015922    // nuclear magneton squared in MeV fm^3
	HbarMeVs         = 6.58212e-22 // reduced Planck constant in MeV s
	HbarCMeVfm       = 197.327     // hbar*c in MeV fm
	BarnFm2          = 100.0       // 1 barn in fm^2
	R0fm             = 1.2         // nuclear radius parameter in fm
)

// Unit conversions.
const (
	KeVToMeV  = 1.0e-3
	PsToS     = 1.0e-12
	NsToS     = 1.0e-9
	UsToS     = 1.0e-6
	HourToS   = 3600.0
	SecondToS = 1.0
)

// Bounds on the multipole order accepted anywhere in the package.
const (
	MinOrder = 0
	MaxOrder = 12
)

// ln2 is kept local so the formulas read like their textbook form.
const ln2 = math.Ln2
