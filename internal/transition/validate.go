package transition

import (
	"fmt"
	"math"
	"strings"
)

// Validate checks every rule on the raw parameters and returns a Spec.
//
// All rules are evaluated, so the returned ValidationErrors lists every
// problem at once rather than the first one found. Warnings are returned
// even when validation fails.
func Validate(p Params) (Spec, []Warning, error) {
	v := &validator{}
	s := Spec{Branching: 1}

	v.energy(p, &s)
	multipoleOK := v.multipole(p, &s)
	v.input(p, &s)
	v.spins(p, &s)
	v.branching(p, &s)
	v.conversion(p, &s)
	v.mixing(p, &s, multipoleOK)
	v.nucleus(p, &s)
	v.units(p, &s)
	v.deformation(p, &s, multipoleOK)

	if len(v.errs) > 0 {
		return Spec{}, v.warnings, v.errs
	}
	return s, v.warnings, nil
}

type validator struct {
	errs     ValidationErrors
	warnings []Warning
}

func (v *validator) fail(kind ErrorKind, code, field, format string, args ...any) {
	v.errs = append(v.errs, &ValidationError{
		Kind:    kind,
		Code:    code,
		Field:   field,
		Message: fmt.Sprintf(format, args...),
	})
}

func (v *validator) warn(code, format string, args ...any) {
	v.warnings = append(v.warnings, Warning{Code: code, Message: fmt.Sprintf(format, args...)})
}

func positiveFinite(x float64) bool {
	return x > 0 && !math.IsInf(x, 0)
}

func (v *validator) energy(p Params, s *Spec) {
	switch {
	case p.EnergyKeV == nil:
		v.fail(MissingParameter, CodeMissingEnergy, "energy", "transition energy in keV is required")
	case !positiveFinite(*p.EnergyKeV):
		v.fail(InvalidValue, CodeInvalidEnergy, "energy", "invalid transition energy (%g): value must be a positive number", *p.EnergyKeV)
	default:
		s.EnergyKeV = *p.EnergyKeV
	}
}

func (v *validator) multipole(p Params, s *Spec) bool {
	if p.Multipole == "" {
		v.fail(MissingParameter, CodeMissingMultipole, "multipole", "multipole (e.g. E1, M1, E2) is required")
		return false
	}
	m, err := ParseMultipole(p.Multipole)
	if err != nil {
		v.fail(InvalidValue, CodeInvalidMultipole, "multipole", "%v", err)
		return false
	}
	// The rate formula divides by L, so E0 has no single-photon decay rate.
	if m.Order == 0 {
		v.fail(InvalidValue, CodeNoGammaRate, "multipole", "E0 is accepted as a multipole but cannot be converted: the single-photon rate formula divides by L, so an E0 transition has no gamma-ray decay rate")
		return false
	}
	s.Multipole = m
	return true
}

func (v *validator) input(p Params, s *Spec) {
	var sources []string
	for _, t := range p.Times {
		sources = append(sources, t.Source())
	}
	if p.Probability != nil {
		sources = append(sources, "probability")
	}

	switch {
	case len(sources) == 0:
		v.fail(MissingParameter, CodeMissingInput, "lifetime", "one of lifetime, half-life or reduced transition probability is required")
		return
	case len(sources) > 1:
		v.fail(InvalidValue, CodeConflictingInput, "lifetime", "exactly one of lifetime, half-life or reduced transition probability may be given, got %s", strings.Join(sources, ", "))
		return
	}

	if p.Probability != nil {
		if !positiveFinite(*p.Probability) {
			v.fail(InvalidValue, CodeInvalidProbability, "probability", "invalid reduced transition probability (%g): value must be a positive number", *p.Probability)
			return
		}
		s.Mode = FromProbability
		s.Probability = *p.Probability
		return
	}

	t := p.Times[0]
	perUnit, ok := t.Unit.InSeconds()
	if !ok {
		v.fail(InvalidValue, CodeInvalidTimeUnit, t.Source(), "unknown time unit %q", t.Unit)
		return
	}
	if !positiveFinite(t.Value) {
		v.fail(InvalidValue, CodeInvalidLifetime, t.Source(), "invalid %s (%g): value must be a positive number", t.Source(), t.Value)
		return
	}
	lifetime := t.Value * perUnit
	if t.HalfLife {
		lifetime /= ln2
	}
	s.Mode = FromLifetime
	s.LifetimeS = lifetime
}

// halfInteger reports whether j is a non-negative multiple of 1/2.
func halfInteger(j float64) bool {
	if j < 0 || math.IsInf(j, 0) || math.IsNaN(j) {
		return false
	}
	return math.Abs(2*j-math.Round(2*j)) < 1e-9
}

func (v *validator) spins(p Params, s *Spec) {
	ji, jf := p.InitialSpin, p.FinalSpin

	if p.Reversed && (ji == nil || jf == nil) {
		switch {
		case ji != nil:
			v.warn(WarnDefaultSpins, "only the initial spin (ji = %g) was given for the reversed calculation; ignoring it and assuming 2 -> 0", *ji)
		case jf != nil:
			v.warn(WarnDefaultSpins, "only the final spin (jf = %g) was given for the reversed calculation; ignoring it and assuming 2 -> 0", *jf)
		default:
			v.warn(WarnDefaultSpins, "initial and final spin not given for the reversed calculation; assuming 2 -> 0")
		}
		s.HasSpins, s.InitialSpin, s.FinalSpin, s.Reversed = true, 2, 0, true
		return
	}
	s.Reversed = p.Reversed

	switch {
	case ji == nil && jf == nil:
		return
	case ji == nil:
		v.fail(MissingParameter, CodeMissingSpin, "ji", "initial spin is required when a final spin is given")
		return
	case jf == nil:
		v.fail(MissingParameter, CodeMissingSpin, "jf", "final spin is required when an initial spin is given")
		return
	}

	ok := true
	if !halfInteger(*ji) {
		v.fail(InvalidValue, CodeInvalidSpin, "ji", "invalid initial spin (%g): value must be a non-negative multiple of 1/2", *ji)
		ok = false
	}
	if !halfInteger(*jf) {
		v.fail(InvalidValue, CodeInvalidSpin, "jf", "invalid final spin (%g): value must be a non-negative multiple of 1/2", *jf)
		ok = false
	}
	if !ok {
		return
	}
	if int(math.Round(2*(*ji)))%2 != int(math.Round(2*(*jf)))%2 {
		v.fail(InvalidValue, CodeSpinParity, "jf", "spins %g and %g must both be integer or both be half-integer", *ji, *jf)
		return
	}
	s.HasSpins, s.InitialSpin, s.FinalSpin = true, *ji, *jf
}

func (v *validator) branching(p Params, s *Spec) {
	s.RelativeIntensity = p.RelativeIntensity
	if p.Branching == nil {
		return
	}
	b := *p.Branching
	if p.RelativeIntensity {
		if !positiveFinite(b) {
			v.fail(InvalidValue, CodeInvalidBranching, "branching", "invalid relative intensity (%g): value must be a positive number", b)
			return
		}
	} else if !(b > 0 && b <= 1) {
		v.fail(InvalidValue, CodeInvalidBranching, "branching", "invalid branching fraction (%g): value must lie in (0, 1]", b)
		return
	}
	s.Branching = b
}

func (v *validator) conversion(p Params, s *Spec) {
	if p.ICC == nil {
		return
	}
	icc := *p.ICC
	if !(icc >= 0) || math.IsInf(icc, 0) {
		v.fail(InvalidValue, CodeInvalidICC, "icc", "invalid internal conversion coefficient (%g): value must be zero or positive", icc)
		return
	}
	s.ICC = icc
	if icc > 0 && p.Probability != nil {
		v.warn(WarnICCIgnored, "internal conversion coefficient is ignored when converting from B")
	}
}

func (v *validator) mixing(p Params, s *Spec, multipoleOK bool) {
	if p.Mixing == nil {
		return
	}
	d := *p.Mixing
	if d == 0 || math.IsNaN(d) || math.IsInf(d, 0) {
		v.fail(InvalidValue, CodeInvalidMixing, "delta", "invalid mixing ratio (%g): value must be finite and non-zero; omit it for a pure transition", d)
		return
	}
	if multipoleOK && s.Multipole.Order+1 > MaxOrder {
		v.fail(InvalidValue, CodeInvalidMixing, "delta", "mixing with %s would need order %d, above the limit of %d", s.Multipole, s.Multipole.Order+1, MaxOrder)
		return
	}
	s.HasMixing, s.Mixing = true, d
	if p.Probability != nil {
		v.warn(WarnMixingIgnored, "mixing ratio is ignored when converting from B")
	}
}

func (v *validator) nucleus(p Params, s *Spec) {
	var massOK, chargeOK bool
	if p.MassNumber != nil {
		if *p.MassNumber <= 0 {
			v.fail(InvalidValue, CodeInvalidNucleus, "mass", "invalid mass number (%d): value must be a positive integer", *p.MassNumber)
		} else {
			massOK = true
			s.MassNumber = *p.MassNumber
		}
	}
	if p.ProtonNumber != nil {
		if *p.ProtonNumber <= 0 {
			v.fail(InvalidValue, CodeInvalidNucleus, "charge", "invalid proton number (%d): value must be a positive integer", *p.ProtonNumber)
		} else {
			chargeOK = true
			s.ProtonNumber = *p.ProtonNumber
		}
	}
	if massOK && chargeOK && s.MassNumber < s.ProtonNumber {
		v.fail(InvalidValue, CodeInvalidNucleus, "mass", "mass number %d is smaller than proton number %d", s.MassNumber, s.ProtonNumber)
	}
}

func (v *validator) units(p Params, s *Spec) {
	switch {
	case p.Barns && p.WeisskopfUnits:
		v.fail(InvalidValue, CodeConflictingUnits, "units", "barn and Weisskopf units cannot be requested together")
	case p.Barns:
		s.Units = Barn
	case p.WeisskopfUnits:
		s.Units = Weisskopf
		// A present but invalid is already reported by nucleus.
		if p.MassNumber == nil {
			v.fail(MissingDependency, CodeWeisskopfNeedsMass, "mass", "Weisskopf units require the mass number A")
		}
	}
}

func (v *validator) deformation(p Params, s *Spec, multipoleOK bool) {
	if !p.Deformation {
		return
	}
	s.Deformation = true
	if multipoleOK && (s.Multipole.Kind != Electric || s.Multipole.Order != 2) {
		v.fail(MissingDependency, CodeDeformationNeedsE2, "multipole", "the deformation parameter requires an E2 transition, got %s", s.Multipole)
	}
	if !s.HasSpins || s.InitialSpin != 2 || s.FinalSpin != 0 {
		v.fail(MissingDependency, CodeDeformationNeedsSpin, "ji", "the deformation parameter requires a 2 -> 0 transition (set ji=2 and jf=0)")
	}
	if p.MassNumber == nil || p.ProtonNumber == nil {
		v.fail(MissingDependency, CodeDeformationNeedsAZ, "mass", "the deformation parameter requires both mass number A and proton number Z")
	}
}
