package transition

// NormalizeBranching turns a relative intensity v into the branching
// fraction v/(v+1). A plain fraction is returned unchanged.
func NormalizeBranching(branching float64, relative bool) float64 {
	if relative {
		return branching / (branching + 1)
	}
	return branching
}

// PartialLifetime returns the partial lifetime of a branch carrying the
// given fraction of the total decay rate.
func PartialLifetime(lifetimeS, branching float64) float64 {
	return 1 / ((1 / lifetimeS) * branching)
}

// ApplyConversion removes the internal conversion contribution, giving
// the gamma-ray partial lifetime.
func ApplyConversion(lifetimeS, icc float64) float64 {
	return lifetimeS * (1 + icc)
}

// SplitMixing splits a gamma-ray partial lifetime between the L multipole
// and its paired L+1 multipole according to the mixing ratio δ.
// The partial decay rates add back up to 1/lifetimeS.
func SplitMixing(lifetimeS, delta float64) (lower, upper float64) {
	d2 := delta * delta
	lower = lifetimeS * (1 + d2)
	upper = lifetimeS * (1 + d2) / d2
	return lower, upper
}

// Partial is one multipole share of a transition with its partial lifetime.
type Partial struct {
	Multipole Multipole
	LifetimeS float64
}

// Adjust applies branching, internal conversion and mixing, in that order,
// to the measured lifetime of a FromLifetime spec.
func Adjust(s Spec) []Partial {
	lifetime := PartialLifetime(s.LifetimeS, NormalizeBranching(s.Branching, s.RelativeIntensity))
	lifetime = ApplyConversion(lifetime, s.ICC)

	if !s.HasMixing {
		return []Partial{{Multipole: s.Multipole, LifetimeS: lifetime}}
	}
	lower, upper := SplitMixing(lifetime, s.Mixing)
	return []Partial{
		{Multipole: s.Multipole, LifetimeS: lower},
		{Multipole: s.Multipole.Paired(), LifetimeS: upper},
	}
}
