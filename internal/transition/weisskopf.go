package transition

import "math"

// Radius returns the nuclear radius R = r0·A^(1/3) in fm.
func Radius(massNumber int) float64 {
	return R0fm * math.Cbrt(float64(massNumber))
}

// WeisskopfB returns the single-particle estimate of B(σL) in fm-based units:
//
//	B_W(EL) = 1/(4π) · (3/(L+3))² · R^(2L)     e² fm^(2L)
//	B_W(ML) = 10/π   · (3/(L+3))² · R^(2L-2)   μN² fm^(2L-2)
func WeisskopfB(m Multipole, massNumber int) float64 {
	l := float64(m.Order)
	shape := 3 / (l + 3)
	shape *= shape
	r := Radius(massNumber)
	if m.Kind == Magnetic {
		return 10 / math.Pi * shape * math.Pow(r, 2*l-2)
	}
	return 1 / (4 * math.Pi) * shape * math.Pow(r, 2*l)
}

// weisskopfRate returns the single-particle gamma decay constant in 1/s.
func weisskopfRate(m Multipole, massNumber int, energyKeV float64) float64 {
	l := float64(m.Order)
	df := DoubleFactorial(2*m.Order + 1)
	eMeV := energyKeV * KeVToMeV

	rate := 8 * math.Pi * (l + 1) / (l * df * df * HbarMeVs) * math.Pow(eMeV/HbarCMeVfm, 2*l+1)
	if m.Kind == Magnetic {
		rate *= MuNSquaredMeVfm3
	} else {
		rate *= ESquaredMeVfm
	}
	return rate * WeisskopfB(m, massNumber)
}

// WeisskopfHalfLife returns the single-particle half-life in seconds.
func WeisskopfHalfLife(m Multipole, massNumber int, energyKeV float64) float64 {
	return ln2 / weisskopfRate(m, massNumber, energyKeV)
}

// WeisskopfLifetime returns the single-particle mean lifetime in seconds.
// A measured partial lifetime τ corresponds to WeisskopfLifetime/τ W.u.
func WeisskopfLifetime(m Multipole, massNumber int, energyKeV float64) float64 {
	return WeisskopfHalfLife(m, massNumber, energyKeV) / ln2
}

// ToWeisskopfUnits expresses a partial lifetime in seconds as a strength in W.u.
func ToWeisskopfUnits(m Multipole, massNumber int, energyKeV, lifetimeS float64) float64 {
	return WeisskopfLifetime(m, massNumber, energyKeV) / lifetimeS
}

// FromWeisskopfUnits converts a strength in W.u. into a partial lifetime in seconds.
func FromWeisskopfUnits(m Multipole, massNumber int, energyKeV, bWu float64) float64 {
	return WeisskopfLifetime(m, massNumber, energyKeV) / bWu
}
