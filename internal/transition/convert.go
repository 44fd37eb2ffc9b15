package transition

import "math"

// RateFactor returns the multipole normalization fac(L, σ, E) linking a
// lifetime τ in seconds to B in fm-based units through B = 1/(fac·τ).
//
//	fac = 8π(L+1) / (L·ħ·((2L+1)!!)²·ln2) · (E/ħc)^(2L+1)
//
// Magnetic multipoles are rescaled by μN²/e² so B comes out in μN² fm^(2L-2).
// m.Order must be at least 1.
func RateFactor(m Multipole, energyKeV float64) float64 {
	l := float64(m.Order)
	df := DoubleFactorial(2*m.Order + 1)
	eMeV := energyKeV * KeVToMeV

	fac := 8 * math.Pi * (l + 1) / (l * HbarMeVs * df * df * ln2)
	fac *= math.Pow(eMeV/HbarCMeVfm, 2*l+1)
	if m.Kind == Magnetic {
		fac *= MuNSquaredMeVfm3 / ESquaredMeVfm
	}
	return fac
}

// BFromLifetime converts a partial mean lifetime in seconds into B(σL)
// in fm-based units (e² fm^2L or μN² fm^(2L-2)).
func BFromLifetime(m Multipole, energyKeV, lifetimeS float64) float64 {
	return 1 / (RateFactor(m, energyKeV) * lifetimeS)
}

// LifetimeFromB converts B(σL) in fm-based units into a partial mean
// lifetime in seconds.
func LifetimeFromB(m Multipole, energyKeV, bFm float64) float64 {
	return 1 / (RateFactor(m, energyKeV) * bFm)
}

// SpinFactor returns (2·ji+1)/(2·jf+1), the ratio B(up)/B(down) for a
// decay from spin ji to spin jf.
func SpinFactor(ji, jf float64) float64 {
	return (2*ji + 1) / (2*jf + 1)
}
