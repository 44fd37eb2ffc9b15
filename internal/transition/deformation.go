package transition

import "math"

// Beta2 returns the quadrupole deformation parameter from B(E2; 2→0) in e² fm⁴:
//
//	β₂ = sqrt(5·B) · 4π / (2·Z·e²·r0²·A^(2/3))
//
// The caller is responsible for the E2, 2→0, A and Z preconditions.
func Beta2(bE2Fm4 float64, massNumber, protonNumber int) float64 {
	a23 := math.Pow(float64(massNumber), 2.0/3.0)
	return math.Sqrt(5*bE2Fm4) * 4 * math.Pi / (2 * float64(protonNumber) * ESquaredMeVfm * R0fm * R0fm * a23)
}
