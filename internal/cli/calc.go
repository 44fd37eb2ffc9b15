package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/bcalc/internal/transition"
)

// timeFlag is one lifetime-like flag, e.g. --half-life-ns.
type timeFlag struct {
	name     string
	unit     transition.TimeUnit
	halfLife bool
	value    float64
}

// CalcOptions holds the flags of a single calculation.
type CalcOptions struct {
	*RootOptions

	Energy            float64
	Multipole         string
	Probability       float64
	InitialSpin       float64
	FinalSpin         float64
	Up                bool
	Branching         float64
	RelativeIntensity bool
	ICC               float64
	Delta             float64
	Mass              int
	Charge            int
	Barns             bool
	Weisskopf         bool
	Beta2             bool

	times []*timeFlag
}

// calcFlagNames lists the flags that count as calculation input.
func (o *CalcOptions) calcFlagNames() []string {
	names := []string{
		"energy", "multipole", "probability", "ji", "jf", "up", "branching",
		"relative-intensity", "icc", "delta", "mass", "charge", "barns", "wu", "beta2",
	}
	for _, t := range o.times {
		names = append(names, t.name)
	}
	return names
}

func (o *CalcOptions) bindFlags(cmd *cobra.Command) {
	f := cmd.Flags()
	f.Float64VarP(&o.Energy, "energy", "E", 0, "transition energy in keV (required)")
	f.StringVarP(&o.Multipole, "multipole", "M", "", "multipole, e.g. E1, M1, E2 (required)")

	for _, base := range []struct {
		name     string
		halfLife bool
		what     string
	}{{"lifetime", false, "mean lifetime"}, {"half-life", true, "half-life"}} {
		for _, unit := range transition.TimeUnits {
			t := &timeFlag{name: base.name, unit: unit, halfLife: base.halfLife}
			if unit != transition.Picoseconds {
				t.name += "-" + string(unit)
			}
			f.Float64Var(&t.value, t.name, 0, fmt.Sprintf("%s in %s", base.what, unit))
			o.times = append(o.times, t)
		}
	}

	f.Float64VarP(&o.Probability, "probability", "B", 0, "reduced transition probability in the selected units")
	f.Float64Var(&o.InitialSpin, "ji", 0, "initial state spin")
	f.Float64Var(&o.FinalSpin, "jf", 0, "final state spin")
	f.BoolVar(&o.Up, "up", false, "calculate B(up) instead of B(down)")
	f.Float64Var(&o.Branching, "branching", 0, "branching fraction of the transition, in (0, 1]")
	f.BoolVar(&o.RelativeIntensity, "relative-intensity", false, "treat --branching as a relative intensity v, i.e. fraction v/(v+1)")
	f.Float64Var(&o.ICC, "icc", 0, "internal conversion coefficient")
	f.Float64Var(&o.Delta, "delta", 0, "multipole mixing ratio")
	f.IntVarP(&o.Mass, "mass", "A", 0, "mass number A")
	f.IntVarP(&o.Charge, "charge", "Z", 0, "proton number Z")
	f.BoolVar(&o.Barns, "barns", false, "express B in barn units")
	f.BoolVar(&o.Weisskopf, "wu", false, "express B in Weisskopf units (needs -A)")
	f.BoolVar(&o.Beta2, "beta2", false, "calculate the quadrupole deformation beta2 (E2, 2 -> 0, needs -A and -Z)")
}

// params maps the flags that were actually given onto transition.Params.
// Flags left at their defaults stay nil so the validator can tell
// "absent" from "zero".
func (o *CalcOptions) params(cmd *cobra.Command) transition.Params {
	changed := cmd.Flags().Changed
	floatp := func(name string, v float64) *float64 {
		if !changed(name) {
			return nil
		}
		return &v
	}
	intp := func(name string, v int) *int {
		if !changed(name) {
			return nil
		}
		return &v
	}

	p := transition.Params{
		EnergyKeV:         floatp("energy", o.Energy),
		Multipole:         o.Multipole,
		Probability:       floatp("probability", o.Probability),
		InitialSpin:       floatp("ji", o.InitialSpin),
		FinalSpin:         floatp("jf", o.FinalSpin),
		Reversed:          o.Up,
		Branching:         floatp("branching", o.Branching),
		RelativeIntensity: o.RelativeIntensity,
		ICC:               floatp("icc", o.ICC),
		Mixing:            floatp("delta", o.Delta),
		MassNumber:        intp("mass", o.Mass),
		ProtonNumber:      intp("charge", o.Charge),
		Barns:             o.Barns,
		WeisskopfUnits:    o.Weisskopf,
		Deformation:       o.Beta2,
	}
	for _, t := range o.times {
		if changed(t.name) {
			p.Times = append(p.Times, transition.TimeValue{Value: t.value, Unit: t.unit, HalfLife: t.halfLife})
		}
	}
	return p
}

func (o *CalcOptions) anyCalcFlag(cmd *cobra.Command) bool {
	for _, name := range o.calcFlagNames() {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

func runCalc(opts *CalcOptions, cmd *cobra.Command) error {
	if !opts.anyCalcFlag(cmd) {
		_ = cmd.Help()
		return NewExitError(ExitCommandError, "no calculation parameters given")
	}

	log := opts.log()
	params := opts.params(cmd)
	log.Debug("calculating", "multipole", params.Multipole, "inputs", len(params.Times))

	res, err := transition.Calculate(params)
	if res != nil {
		for _, w := range res.Warnings {
			log.Warn(w.Message, "code", w.Code)
		}
	}

	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}
	if err != nil {
		var verrs transition.ValidationErrors
		if errors.As(err, &verrs) {
			return outputValidationErrors(formatter, verrs)
		}
		log.Error("calculation failed", "err", err)
		return WrapExitError(ExitFailure, "calculation failed", err)
	}

	log.Debug("calculated", "mode", res.Spec.Mode, "components", len(res.Components))
	if formatter.IsJSON() {
		return formatter.Success(res)
	}
	WriteReport(formatter.Writer, res, opts.verbosity())
	return nil
}

// ValidationResult is the JSON payload of a rejected calculation.
type ValidationResult struct {
	Valid  bool                        `json:"valid"`
	Errors transition.ValidationErrors `json:"errors"`
}

// outputValidationErrors reports every validation failure.
func outputValidationErrors(formatter *OutputFormatter, errs transition.ValidationErrors) error {
	if formatter.IsJSON() {
		response := CLIResponse{
			Status: "error",
			Data:   ValidationResult{Valid: false, Errors: errs},
			Error: &CLIError{
				Code:    errs[0].Code,
				Message: errs[0].Message,
			},
		}
		if err := formatter.Encode(response); err != nil {
			return err
		}
		return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
	}

	fmt.Fprintln(formatter.Writer, "✗ Validation failed")
	fmt.Fprintln(formatter.Writer)
	writeValidationErrors(formatter, errs, "  ")

	return NewExitError(ExitFailure, fmt.Sprintf("validation failed with %d error(s)", len(errs)))
}

func writeValidationErrors(formatter *OutputFormatter, errs transition.ValidationErrors, indent string) {
	for _, e := range errs {
		fmt.Fprintf(formatter.Writer, "%s%s %s: %s\n", indent, e.Code, e.Field, e.Message)
	}
}
