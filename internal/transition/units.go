package transition

import (
	"fmt"
	"math"
)

// BarnScale returns the number of fm^n in one b^(n/2) for the B units of m:
// 100^L for electric and 100^(L-1) for magnetic multipoles.
func BarnScale(m Multipole) float64 {
	return math.Pow(BarnFm2, float64(m.LengthPower()/2))
}

// FmToBarn rebases a B value from fm-based to barn-based units.
func FmToBarn(m Multipole, bFm float64) float64 {
	return bFm / BarnScale(m)
}

// BarnToFm rebases a B value from barn-based to fm-based units.
func BarnToFm(m Multipole, bBarn float64) float64 {
	return bBarn * BarnScale(m)
}

// UnitLabel returns the printable unit of a B value for m in the given system,
// e.g. "e^2 fm^4", "uN^2 b^2", "uN^2" or "W.u.".
func UnitLabel(m Multipole, u UnitSystem) string {
	if u == Weisskopf {
		return "W.u."
	}
	charge := "e^2"
	if m.Kind == Magnetic {
		charge = "uN^2"
	}
	power := m.LengthPower()
	if power == 0 {
		return charge
	}
	if u == Barn {
		return fmt.Sprintf("%s b^%d", charge, power/2)
	}
	return fmt.Sprintf("%s fm^%d", charge, power)
}
