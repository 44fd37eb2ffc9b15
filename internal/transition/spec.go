package transition

import (
	"fmt"
	"strings"
)

// Mode selects the direction of the calculation.
type Mode int

const (
	// FromLifetime converts a measured lifetime into B(σL).
	FromLifetime Mode = iota
	// FromProbability converts a B(σL) value into a lifetime.
	FromProbability
)

func (m Mode) String() string {
	if m == FromProbability {
		return "from-probability"
	}
	return "from-lifetime"
}

// MarshalText encodes the mode by name.
func (m Mode) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnitSystem selects how B values are expressed.
type UnitSystem int

const (
	Fermi UnitSystem = iota
	Barn
	Weisskopf
)

func (u UnitSystem) String() string {
	switch u {
	case Barn:
		return "barn"
	case Weisskopf:
		return "wu"
	default:
		return "fm"
	}
}

// MarshalText encodes the unit system by name.
func (u UnitSystem) MarshalText() ([]byte, error) {
	return []byte(u.String()), nil
}

// TimeUnit is the unit a lifetime or half-life was given in.
type TimeUnit string

const (
	Picoseconds  TimeUnit = "ps"
	Nanoseconds  TimeUnit = "ns"
	Microseconds TimeUnit = "us"
	Seconds      TimeUnit = "s"
	Hours        TimeUnit = "hr"
)

// TimeUnits lists the accepted time units in display order.
var TimeUnits = []TimeUnit{Picoseconds, Nanoseconds, Microseconds, Seconds, Hours}

// InSeconds returns the length of one unit in seconds, and false for an unknown unit.
func (u TimeUnit) InSeconds() (float64, bool) {
	switch u {
	case Picoseconds, "":
		return PsToS, true
	case Nanoseconds:
		return NsToS, true
	case Microseconds, "μs", "µs":
		return UsToS, true
	case Seconds:
		return SecondToS, true
	case Hours:
		return HourToS, true
	default:
		return 0, false
	}
}

// TimeValue is one lifetime-like input as supplied by the caller.
type TimeValue struct {
	Value    float64  `json:"value"`
	Unit     TimeUnit `json:"unit"`
	HalfLife bool     `json:"half_life"`
}

// Source names the input the value came from, e.g. "half-life-ns".
func (t TimeValue) Source() string {
	name := "lifetime"
	if t.HalfLife {
		name = "half-life"
	}
	if t.Unit == "" || t.Unit == Picoseconds {
		return name
	}
	return name + "-" + string(t.Unit)
}

// Params is the raw, unvalidated input of one calculation.
// Nil pointers mean the parameter was not supplied.
type Params struct {
	EnergyKeV         *float64
	Multipole         string
	Times             []TimeValue
	Probability       *float64
	InitialSpin       *float64
	FinalSpin         *float64
	Reversed          bool
	Branching         *float64
	RelativeIntensity bool
	ICC               *float64
	Mixing            *float64
	MassNumber        *int
	ProtonNumber      *int
	Barns             bool
	WeisskopfUnits    bool
	Deformation       bool
}

// Spec is a validated calculation request. It is only produced by Validate
// and is passed by value through every later stage.
type Spec struct {
	EnergyKeV         float64    `json:"energy_kev"`
	Multipole         Multipole  `json:"multipole"`
	Mode              Mode       `json:"mode"`
	LifetimeS         float64    `json:"lifetime_s,omitempty"`
	Probability       float64    `json:"probability,omitempty"`
	HasSpins          bool       `json:"has_spins"`
	InitialSpin       float64    `json:"initial_spin"`
	FinalSpin         float64    `json:"final_spin"`
	Reversed          bool       `json:"reversed"`
	Branching         float64    `json:"branching"`
	RelativeIntensity bool       `json:"relative_intensity"`
	ICC               float64    `json:"icc"`
	HasMixing         bool       `json:"has_mixing"`
	Mixing            float64    `json:"mixing,omitempty"`
	MassNumber        int        `json:"mass_number,omitempty"`
	ProtonNumber      int        `json:"proton_number,omitempty"`
	Units             UnitSystem `json:"units"`
	Deformation       bool       `json:"deformation"`
}

// Request is the flat, file-friendly form of Params used by batch and
// scenario files.
type Request struct {
	EnergyKeV         *float64 `json:"energy_kev,omitempty" yaml:"energy_kev,omitempty"`
	Multipole         string   `json:"multipole,omitempty" yaml:"multipole,omitempty"`
	Lifetime          *float64 `json:"lifetime,omitempty" yaml:"lifetime,omitempty"`
	HalfLife          *float64 `json:"half_life,omitempty" yaml:"half_life,omitempty"`
	TimeUnit          string   `json:"time_unit,omitempty" yaml:"time_unit,omitempty"`
	Probability       *float64 `json:"probability,omitempty" yaml:"probability,omitempty"`
	InitialSpin       *float64 `json:"ji,omitempty" yaml:"ji,omitempty"`
	FinalSpin         *float64 `json:"jf,omitempty" yaml:"jf,omitempty"`
	Up                bool     `json:"up,omitempty" yaml:"up,omitempty"`
	Branching         *float64 `json:"branching,omitempty" yaml:"branching,omitempty"`
	RelativeIntensity bool     `json:"relative_intensity,omitempty" yaml:"relative_intensity,omitempty"`
	ICC               *float64 `json:"icc,omitempty" yaml:"icc,omitempty"`
	Delta             *float64 `json:"delta,omitempty" yaml:"delta,omitempty"`
	A                 *int     `json:"a,omitempty" yaml:"a,omitempty"`
	Z                 *int     `json:"z,omitempty" yaml:"z,omitempty"`
	Units             string   `json:"units,omitempty" yaml:"units,omitempty"`
	Beta2             bool     `json:"beta2,omitempty" yaml:"beta2,omitempty"`
}

// Params converts the request into raw parameters.
// Only the units name is checked here; everything else is left to Validate.
func (r Request) Params() (Params, error) {
	p := Params{
		EnergyKeV:         r.EnergyKeV,
		Multipole:         r.Multipole,
		Probability:       r.Probability,
		InitialSpin:       r.InitialSpin,
		FinalSpin:         r.FinalSpin,
		Reversed:          r.Up,
		Branching:         r.Branching,
		RelativeIntensity: r.RelativeIntensity,
		ICC:               r.ICC,
		Mixing:            r.Delta,
		MassNumber:        r.A,
		ProtonNumber:      r.Z,
		Deformation:       r.Beta2,
	}

	unit := TimeUnit(r.TimeUnit)
	if r.Lifetime != nil {
		p.Times = append(p.Times, TimeValue{Value: *r.Lifetime, Unit: unit})
	}
	if r.HalfLife != nil {
		p.Times = append(p.Times, TimeValue{Value: *r.HalfLife, Unit: unit, HalfLife: true})
	}

	switch strings.ToLower(r.Units) {
	case "", "fm":
	case "barn", "b":
		p.Barns = true
	case "wu", "w.u.":
		p.WeisskopfUnits = true
	default:
		return Params{}, fmt.Errorf("unknown units %q: must be one of fm, barn, wu", r.Units)
	}
	return p, nil
}
