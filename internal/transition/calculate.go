package transition

import (
	"errors"
	"fmt"
	"math"
)

// Component is the result for one multipole of a transition.
type Component struct {
	Multipole Multipole `json:"multipole"`
	Label     string    `json:"label"`

	// LifetimeS is the partial mean lifetime of this multipole in seconds.
	// In FromProbability mode it is the computed lifetime after branching.
	LifetimeS  float64 `json:"lifetime_s"`
	LifetimePs float64 `json:"lifetime_ps"`
	HalfLifePs float64 `json:"half_life_ps"`

	// B in each unit system. Reversed calculations carry B(up) here.
	BFm   float64  `json:"b_fm"`
	BBarn float64  `json:"b_barn"`
	BWu   *float64 `json:"b_wu,omitempty"`

	// Value and Unit are the primary output: B in the requested unit
	// system, or the lifetime in ps when converting from B.
	Value float64 `json:"value"`
	Unit  string  `json:"unit"`
}

// Result is the complete outcome of one calculation.
type Result struct {
	Spec       Spec        `json:"spec"`
	Components []Component `json:"components"`
	Beta2      *float64    `json:"beta2,omitempty"`
	Warnings   []Warning   `json:"warnings,omitempty"`
}

// Calculate validates p and evaluates it. On validation failure the error
// is a ValidationErrors and the warnings are still returned in a nil-spec
// Result so callers can report them.
func Calculate(p Params) (*Result, error) {
	spec, warnings, err := Validate(p)
	if err != nil {
		return &Result{Warnings: warnings}, err
	}
	res, err := Evaluate(spec)
	if err != nil {
		var ie *InvariantError
		if errors.As(err, &ie) {
			return &Result{Warnings: warnings}, outOfRange(ie)
		}
		return nil, err
	}
	res.Warnings = warnings
	return res, nil
}

// outOfRange reports inputs whose result cannot be represented as a
// finite double.
func outOfRange(ie *InvariantError) ValidationErrors {
	return ValidationErrors{{
		Kind:    InvalidValue,
		Code:    CodeOutOfRange,
		Field:   "energy",
		Message: fmt.Sprintf("result out of range: %s is not a finite number; the energy, multipole order and lifetime or B are too extreme together", ie.Stage),
	}}
}

// Evaluate runs the conversion pipeline on a validated spec. Identical
// specs always yield identical results.
func Evaluate(s Spec) (*Result, error) {
	var (
		res *Result
		err error
	)
	if s.Mode == FromProbability {
		res, err = fromProbability(s)
	} else {
		res, err = fromLifetime(s)
	}
	if err != nil {
		return nil, err
	}
	res.Spec = s
	return res, nil
}

func bLabel(m Multipole, reversed bool) string {
	if reversed {
		return fmt.Sprintf("B(%s) up", m)
	}
	return fmt.Sprintf("B(%s)", m)
}

func finite(stage string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return &InvariantError{Stage: stage, Value: v}
	}
	return nil
}

func fromLifetime(s Spec) (*Result, error) {
	res := &Result{}
	spin := 1.0
	if s.Reversed {
		spin = SpinFactor(s.InitialSpin, s.FinalSpin)
	}

	for i, part := range Adjust(s) {
		m := part.Multipole
		if err := finite("partial lifetime of "+m.String(), part.LifetimeS); err != nil {
			return nil, err
		}

		down := BFromLifetime(m, s.EnergyKeV, part.LifetimeS)
		c := Component{
			Multipole:  m,
			Label:      bLabel(m, s.Reversed),
			LifetimeS:  part.LifetimeS,
			LifetimePs: part.LifetimeS / PsToS,
			HalfLifePs: part.LifetimeS * ln2 / PsToS,
			BFm:        down * spin,
		}
		c.BBarn = FmToBarn(m, c.BFm)
		if s.MassNumber > 0 {
			wu := ToWeisskopfUnits(m, s.MassNumber, s.EnergyKeV, part.LifetimeS) * spin
			c.BWu = &wu
		}
		if err := c.primary(s.Units); err != nil {
			return nil, err
		}
		res.Components = append(res.Components, c)

		if i == 0 && s.Deformation {
			beta := Beta2(down, s.MassNumber, s.ProtonNumber)
			if err := finite("beta2", beta); err != nil {
				return nil, err
			}
			res.Beta2 = &beta
		}
	}
	return res, nil
}

func (c *Component) primary(u UnitSystem) error {
	switch u {
	case Barn:
		c.Value = c.BBarn
	case Weisskopf:
		if c.BWu == nil {
			return &InvariantError{Stage: "weisskopf units without mass number", Value: math.NaN()}
		}
		c.Value = *c.BWu
	default:
		c.Value = c.BFm
	}
	c.Unit = UnitLabel(c.Multipole, u)
	return finite(c.Label, c.Value)
}

func fromProbability(s Spec) (*Result, error) {
	m := s.Multipole
	input := s.Probability
	spin := 1.0
	if s.Reversed {
		spin = SpinFactor(s.InitialSpin, s.FinalSpin)
	}
	// B(down) in the caller's unit system
	down := input / spin

	var lifetime float64
	switch s.Units {
	case Weisskopf:
		lifetime = FromWeisskopfUnits(m, s.MassNumber, s.EnergyKeV, down)
	case Barn:
		lifetime = LifetimeFromB(m, s.EnergyKeV, BarnToFm(m, down))
	default:
		lifetime = LifetimeFromB(m, s.EnergyKeV, down)
	}
	if err := finite("lifetime of "+m.String(), lifetime); err != nil {
		return nil, err
	}

	downFm := BFromLifetime(m, s.EnergyKeV, lifetime)
	reported := PartialLifetime(lifetime, NormalizeBranching(s.Branching, s.RelativeIntensity))

	c := Component{
		Multipole:  m,
		Label:      bLabel(m, s.Reversed),
		LifetimeS:  reported,
		LifetimePs: reported / PsToS,
		HalfLifePs: reported * ln2 / PsToS,
		BFm:        downFm * spin,
		BBarn:      FmToBarn(m, downFm*spin),
		Value:      reported / PsToS,
		Unit:       "ps",
	}
	if s.MassNumber > 0 {
		wu := ToWeisskopfUnits(m, s.MassNumber, s.EnergyKeV, lifetime) * spin
		c.BWu = &wu
	}
	if err := finite("lifetime", c.Value); err != nil {
		return nil, err
	}
	res := &Result{Components: []Component{c}}

	if s.Deformation {
		beta := Beta2(downFm, s.MassNumber, s.ProtonNumber)
		if err := finite("beta2", beta); err != nil {
			return nil, err
		}
		res.Beta2 = &beta
	}
	return res, nil
}
