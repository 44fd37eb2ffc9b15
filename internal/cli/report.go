package cli

import (
	"fmt"
	"io"

	"github.com/roach88/bcalc/internal/transition"
)

// Verbosity selects how much of a result the text report shows.
type Verbosity int

const (
	// VerbosityQuiet prints bare "value unit" lines.
	VerbosityQuiet Verbosity = iota
	// VerbosityNormal prints one labelled line per result.
	VerbosityNormal
	// VerbosityVerbose adds the input echo and every unit view.
	VerbosityVerbose
)

// verbosity maps the global flags to a report verbosity.
func (o *RootOptions) verbosity() Verbosity {
	switch {
	case o.Quiet:
		return VerbosityQuiet
	case o.Verbose:
		return VerbosityVerbose
	default:
		return VerbosityNormal
	}
}

const numFmt = "%0.4E"

func num(v float64) string {
	return fmt.Sprintf(numFmt, v)
}

// WriteReport writes the text form of a calculation result.
func WriteReport(w io.Writer, res *transition.Result, v Verbosity) {
	switch v {
	case VerbosityQuiet:
		writeQuiet(w, res)
	case VerbosityVerbose:
		writeInput(w, res.Spec)
		fmt.Fprintln(w)
		writeVerboseResults(w, res)
	default:
		writeNormal(w, res, "")
	}
}

func writeQuiet(w io.Writer, res *transition.Result) {
	for _, c := range res.Components {
		fmt.Fprintf(w, "%s %s\n", num(c.Value), c.Unit)
	}
	if res.Beta2 != nil {
		fmt.Fprintf(w, "%s\n", num(*res.Beta2))
	}
}

// writeNormal prints one labelled line per result, each prefixed by indent.
func writeNormal(w io.Writer, res *transition.Result, indent string) {
	if res.Spec.Mode == transition.FromProbability {
		for _, c := range res.Components {
			fmt.Fprintf(w, "%sLifetime: %s ps\n", indent, num(c.LifetimePs))
			fmt.Fprintf(w, "%sHalf-life: %s ps\n", indent, num(c.HalfLifePs))
		}
	} else {
		for _, c := range res.Components {
			fmt.Fprintf(w, "%s%s: %s %s\n", indent, c.Label, num(c.Value), c.Unit)
		}
	}
	if res.Beta2 != nil {
		fmt.Fprintf(w, "%sbeta2: %s\n", indent, num(*res.Beta2))
	}
}

func field(w io.Writer, indent, label, value string) {
	fmt.Fprintf(w, "%s%-22s%s\n", indent, label+":", value)
}

func writeInput(w io.Writer, s transition.Spec) {
	m := s.Multipole
	fmt.Fprintln(w, "INPUT PARAMETERS")
	field(w, "  ", "Multipolarity", fmt.Sprintf("%s (%s %s)", m, m.Kind.Name(), m.OrderName()))
	field(w, "  ", "Energy", num(s.EnergyKeV)+" keV")

	if s.Mode == transition.FromProbability {
		label := "B(" + m.String() + ")"
		if s.Reversed {
			label += " up"
		}
		field(w, "  ", label, num(s.Probability)+" "+transition.UnitLabel(m, s.Units))
	} else {
		field(w, "  ", "Mean lifetime", num(s.LifetimeS/transition.PsToS)+" ps")
	}

	if s.HasSpins {
		field(w, "  ", "Spins", fmt.Sprintf("%g -> %g", s.InitialSpin, s.FinalSpin))
	}
	if s.Reversed {
		field(w, "  ", "Direction", "up (absorption)")
	}
	if s.RelativeIntensity {
		field(w, "  ", "Relative intensity", num(s.Branching))
		field(w, "  ", "Branching", num(transition.NormalizeBranching(s.Branching, true)))
	} else if s.Branching != 1 {
		field(w, "  ", "Branching", num(s.Branching))
	}
	if s.ICC > 0 {
		field(w, "  ", "Conversion coeff.", num(s.ICC))
	}
	if s.HasMixing {
		field(w, "  ", "Mixing ratio", num(s.Mixing))
	}
	if s.MassNumber > 0 {
		field(w, "  ", "Mass number A", fmt.Sprintf("%d", s.MassNumber))
	}
	if s.ProtonNumber > 0 {
		field(w, "  ", "Proton number Z", fmt.Sprintf("%d", s.ProtonNumber))
	}
	field(w, "  ", "Output units", s.Units.String())
}

func writeVerboseResults(w io.Writer, res *transition.Result) {
	fmt.Fprintln(w, "RESULTS")
	for _, c := range res.Components {
		if res.Spec.Mode == transition.FromProbability {
			field(w, "  ", "Lifetime", num(c.LifetimePs)+" ps")
			field(w, "  ", "Half-life", num(c.HalfLifePs)+" ps")
		} else {
			field(w, "  ", c.Label, num(c.Value)+" "+c.Unit)
		}

		m := c.Multipole
		field(w, "    ", transition.UnitLabel(m, transition.Fermi), num(c.BFm))
		field(w, "    ", transition.UnitLabel(m, transition.Barn), num(c.BBarn))
		if c.BWu != nil {
			field(w, "    ", "W.u.", num(*c.BWu))
		}
		if res.Spec.Mode == transition.FromLifetime {
			field(w, "    ", "Partial lifetime", num(c.LifetimePs)+" ps")
			field(w, "    ", "Partial half-life", num(c.HalfLifePs)+" ps")
		}
	}
	if res.Beta2 != nil {
		field(w, "  ", "beta2", num(*res.Beta2))
	}
}
