package transition

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func baseParams() Params {
	return Params{
		EnergyKeV: f64(1000),
		Multipole: "E2",
		Times:     []TimeValue{{Value: 1, Unit: Picoseconds}},
	}
}

func TestValidate_Minimal(t *testing.T) {
	s, warnings, err := Validate(baseParams())
	require.NoError(t, err)
	assert.Empty(t, warnings)

	assert.Equal(t, 1000.0, s.EnergyKeV)
	assert.Equal(t, mp("E2"), s.Multipole)
	assert.Equal(t, FromLifetime, s.Mode)
	assert.Equal(t, 1e-12, s.LifetimeS)
	assert.Equal(t, 1.0, s.Branching)
	assert.Equal(t, 0.0, s.ICC)
	assert.Equal(t, Fermi, s.Units)
	assert.False(t, s.HasSpins)
	assert.False(t, s.HasMixing)
}

func TestValidate_TimeUnits(t *testing.T) {
	tests := []struct {
		name string
		in   TimeValue
		want float64
	}{
		{"default unit is ps", TimeValue{Value: 3}, 3e-12},
		{"ns", TimeValue{Value: 3, Unit: Nanoseconds}, 3e-9},
		{"us", TimeValue{Value: 3, Unit: Microseconds}, 3e-6},
		{"s", TimeValue{Value: 3, Unit: Seconds}, 3},
		{"hr", TimeValue{Value: 3, Unit: Hours}, 3 * 3600},
		{"half-life ps", TimeValue{Value: 1, Unit: Picoseconds, HalfLife: true}, 1e-12 / math.Ln2},
		{"half-life hr", TimeValue{Value: 2, Unit: Hours, HalfLife: true}, 7200 / math.Ln2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := baseParams()
			p.Times = []TimeValue{tt.in}
			s, _, err := Validate(p)
			require.NoError(t, err)
			assert.InEpsilon(t, tt.want, s.LifetimeS, 1e-15)
		})
	}
}

func TestValidate_ReportsEveryFailure(t *testing.T) {
	_, _, err := Validate(Params{})
	require.Error(t, err)

	var errs ValidationErrors
	require.True(t, errors.As(err, &errs))
	assert.Equal(t, []string{CodeMissingEnergy, CodeMissingMultipole, CodeMissingInput}, errs.Codes())
	for _, e := range errs {
		assert.Equal(t, MissingParameter, e.Kind)
	}
}

func TestValidate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		modify func(p *Params)
		code   string
		kind   ErrorKind
	}{
		{"zero energy", func(p *Params) { p.EnergyKeV = f64(0) }, CodeInvalidEnergy, InvalidValue},
		{"negative energy", func(p *Params) { p.EnergyKeV = f64(-5) }, CodeInvalidEnergy, InvalidValue},
		{"NaN energy", func(p *Params) { p.EnergyKeV = f64(math.NaN()) }, CodeInvalidEnergy, InvalidValue},
		{"magnetic monopole", func(p *Params) { p.Multipole = "M0" }, CodeInvalidMultipole, InvalidValue},
		{"order above limit", func(p *Params) { p.Multipole = "E13" }, CodeInvalidMultipole, InvalidValue},
		{"bad multipole letter", func(p *Params) { p.Multipole = "Q2" }, CodeInvalidMultipole, InvalidValue},
		{"electric monopole", func(p *Params) { p.Multipole = "E0" }, CodeNoGammaRate, InvalidValue},
		{"lifetime and probability", func(p *Params) { p.Probability = f64(1) }, CodeConflictingInput, InvalidValue},
		{"lifetime and half-life", func(p *Params) {
			p.Times = append(p.Times, TimeValue{Value: 1, HalfLife: true})
		}, CodeConflictingInput, InvalidValue},
		{"negative lifetime", func(p *Params) { p.Times[0].Value = -1 }, CodeInvalidLifetime, InvalidValue},
		{"unknown time unit", func(p *Params) { p.Times[0].Unit = "fortnight" }, CodeInvalidTimeUnit, InvalidValue},
		{"zero probability", func(p *Params) {
			p.Times = nil
			p.Probability = f64(0)
		}, CodeInvalidProbability, InvalidValue},
		{"negative spin", func(p *Params) {
			p.InitialSpin, p.FinalSpin = f64(-1), f64(0)
		}, CodeInvalidSpin, InvalidValue},
		{"spin not a multiple of one half", func(p *Params) {
			p.InitialSpin, p.FinalSpin = f64(1.3), f64(0)
		}, CodeInvalidSpin, InvalidValue},
		{"half-integer with integer partner", func(p *Params) {
			p.InitialSpin, p.FinalSpin = f64(2.5), f64(0)
		}, CodeSpinParity, InvalidValue},
		{"final spin without initial", func(p *Params) { p.FinalSpin = f64(0) }, CodeMissingSpin, MissingParameter},
		{"branching above one", func(p *Params) { p.Branching = f64(1.5) }, CodeInvalidBranching, InvalidValue},
		{"zero branching", func(p *Params) { p.Branching = f64(0) }, CodeInvalidBranching, InvalidValue},
		{"negative relative intensity", func(p *Params) {
			p.Branching = f64(-2)
			p.RelativeIntensity = true
		}, CodeInvalidBranching, InvalidValue},
		{"negative ICC", func(p *Params) { p.ICC = f64(-0.1) }, CodeInvalidICC, InvalidValue},
		{"barn and Weisskopf", func(p *Params) {
			p.Barns, p.WeisskopfUnits = true, true
			p.MassNumber = intp(100)
		}, CodeConflictingUnits, InvalidValue},
		{"zero mixing ratio", func(p *Params) { p.Mixing = f64(0) }, CodeInvalidMixing, InvalidValue},
		{"mixing above order limit", func(p *Params) {
			p.Multipole = "E12"
			p.Mixing = f64(0.1)
		}, CodeInvalidMixing, InvalidValue},
		{"A smaller than Z", func(p *Params) {
			p.MassNumber, p.ProtonNumber = intp(50), intp(92)
		}, CodeInvalidNucleus, InvalidValue},
		{"zero A", func(p *Params) { p.MassNumber = intp(0) }, CodeInvalidNucleus, InvalidValue},
		{"Weisskopf without A", func(p *Params) { p.WeisskopfUnits = true }, CodeWeisskopfNeedsMass, MissingDependency},
		{"beta2 on M1", func(p *Params) {
			p.Multipole = "M1"
			p.Deformation = true
			p.InitialSpin, p.FinalSpin = f64(2), f64(0)
			p.MassNumber, p.ProtonNumber = intp(152), intp(62)
		}, CodeDeformationNeedsE2, MissingDependency},
		{"beta2 on 4->2", func(p *Params) {
			p.Deformation = true
			p.InitialSpin, p.FinalSpin = f64(4), f64(2)
			p.MassNumber, p.ProtonNumber = intp(152), intp(62)
		}, CodeDeformationNeedsSpin, MissingDependency},
		{"beta2 without spins", func(p *Params) {
			p.Deformation = true
			p.MassNumber, p.ProtonNumber = intp(152), intp(62)
		}, CodeDeformationNeedsSpin, MissingDependency},
		{"beta2 without Z", func(p *Params) {
			p.Deformation = true
			p.InitialSpin, p.FinalSpin = f64(2), f64(0)
			p.MassNumber = intp(152)
		}, CodeDeformationNeedsAZ, MissingDependency},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := baseParams()
			tt.modify(&p)

			_, _, err := Validate(p)
			require.Error(t, err)
			assert.True(t, HasCode(err, tt.code), "codes: %v", err)

			var errs ValidationErrors
			require.True(t, errors.As(err, &errs))
			for _, e := range errs {
				if e.Code == tt.code {
					assert.Equal(t, tt.kind, e.Kind)
					assert.NotEmpty(t, e.Field)
					assert.NotEmpty(t, e.Message)
				}
			}
		})
	}
}

func TestValidate_ReversedWithoutSpinsWarns(t *testing.T) {
	tests := []struct {
		name    string
		ji, jf  *float64
		message string
	}{
		{"no spins", nil, nil, "not given"},
		{"only initial", f64(7), nil, "ji = 7"},
		{"only final", nil, f64(1.5), "jf = 1.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := baseParams()
			p.Reversed = true
			p.InitialSpin, p.FinalSpin = tt.ji, tt.jf

			s, warnings, err := Validate(p)
			require.NoError(t, err)
			require.Len(t, warnings, 1)
			assert.Equal(t, WarnDefaultSpins, warnings[0].Code)
			assert.Contains(t, warnings[0].Message, tt.message)
			assert.Contains(t, warnings[0].Message, "assuming 2 -> 0")
			assert.True(t, s.Reversed)
			assert.True(t, s.HasSpins)
			assert.Equal(t, 2.0, s.InitialSpin)
			assert.Equal(t, 0.0, s.FinalSpin)
		})
	}
}

func TestValidate_HalfIntegerSpins(t *testing.T) {
	p := baseParams()
	p.InitialSpin, p.FinalSpin = f64(3.5), f64(1.5)
	s, _, err := Validate(p)
	require.NoError(t, err)
	assert.Equal(t, 3.5, s.InitialSpin)
	assert.Equal(t, 1.5, s.FinalSpin)
}

func TestValidate_RelativeIntensityAboveOne(t *testing.T) {
	p := baseParams()
	p.Branching = f64(4)
	p.RelativeIntensity = true
	s, _, err := Validate(p)
	require.NoError(t, err)
	assert.Equal(t, 4.0, s.Branching)
	assert.True(t, s.RelativeIntensity)
}

func TestValidate_ProbabilityModeWarnings(t *testing.T) {
	p := baseParams()
	p.Times = nil
	p.Probability = f64(10)
	p.ICC = f64(0.2)
	p.Mixing = f64(0.3)

	s, warnings, err := Validate(p)
	require.NoError(t, err)
	assert.Equal(t, FromProbability, s.Mode)
	require.Len(t, warnings, 2)
	assert.Equal(t, WarnICCIgnored, warnings[0].Code)
	assert.Equal(t, WarnMixingIgnored, warnings[1].Code)
}

func TestValidate_Deformation(t *testing.T) {
	p := baseParams()
	p.Deformation = true
	p.InitialSpin, p.FinalSpin = f64(2), f64(0)
	p.MassNumber, p.ProtonNumber = intp(238), intp(92)

	s, _, err := Validate(p)
	require.NoError(t, err)
	assert.True(t, s.Deformation)
	assert.Equal(t, 238, s.MassNumber)
	assert.Equal(t, 92, s.ProtonNumber)
}

func TestValidate_WarningsSurviveFailure(t *testing.T) {
	p := baseParams()
	p.Reversed = true
	p.EnergyKeV = f64(-1)

	_, warnings, err := Validate(p)
	require.Error(t, err)
	require.Len(t, warnings, 1)
	assert.Equal(t, WarnDefaultSpins, warnings[0].Code)
}

func TestRequest_Params(t *testing.T) {
	r := Request{
		EnergyKeV: f64(500),
		Multipole: "M1",
		HalfLife:  f64(2),
		TimeUnit:  "ns",
		Units:     "barn",
	}
	p, err := r.Params()
	require.NoError(t, err)
	require.Len(t, p.Times, 1)
	assert.Equal(t, TimeValue{Value: 2, Unit: Nanoseconds, HalfLife: true}, p.Times[0])
	assert.True(t, p.Barns)
	assert.False(t, p.WeisskopfUnits)

	_, err = Request{Units: "parsec"}.Params()
	require.Error(t, err)
}

func TestValidate_ElectricMonopoleExplainsRejection(t *testing.T) {
	p := baseParams()
	p.Multipole = "E0"

	_, _, err := Validate(p)
	require.Error(t, err)

	var errs ValidationErrors
	require.True(t, errors.As(err, &errs))
	require.Len(t, errs, 1)
	assert.Equal(t, CodeNoGammaRate, errs[0].Code)
	assert.Contains(t, errs[0].Message, "divides by L")
}
