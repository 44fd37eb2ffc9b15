package harness

import (
	"errors"
	"fmt"
	"testing"

	"github.com/sebdah/goldie/v2"

	"github.com/roach88/bcalc/internal/transition"
)

// FormatFloat renders a float the way snapshots store it.
func FormatFloat(v float64) string {
	return fmt.Sprintf("%.6E", v)
}

// Snapshot renders a scenario result as canonical JSON.
// Floats are stored as FormatFloat strings since canonical JSON forbids them.
func Snapshot(scenarioName string, result *Result) ([]byte, error) {
	cases := make([]any, len(result.Cases))
	for i, c := range result.Cases {
		cases[i] = caseSnapshot(c)
	}
	return MarshalCanonical(map[string]any{
		"scenario": scenarioName,
		"pass":     result.Pass,
		"cases":    cases,
	})
}

func caseSnapshot(c CaseResult) map[string]any {
	m := map[string]any{
		"name": c.Name,
		"pass": c.Pass,
	}
	if len(c.Errors) > 0 {
		m["failures"] = c.Errors
	}
	if c.Err != nil {
		m["error_codes"] = errorCodes(c.Err)
	}
	if c.Calc == nil {
		return m
	}

	if codes := warningCodes(c.Calc); len(codes) > 0 {
		m["warnings"] = codes
	}
	if c.Calc.Beta2 != nil {
		m["beta2"] = FormatFloat(*c.Calc.Beta2)
	}
	if len(c.Calc.Components) > 0 {
		comps := make([]any, len(c.Calc.Components))
		for i, comp := range c.Calc.Components {
			comps[i] = componentSnapshot(comp)
		}
		m["components"] = comps
	}
	return m
}

func componentSnapshot(c transition.Component) map[string]any {
	m := map[string]any{
		"multipole":    c.Multipole.String(),
		"label":        c.Label,
		"lifetime_ps":  FormatFloat(c.LifetimePs),
		"half_life_ps": FormatFloat(c.HalfLifePs),
		"b_fm":         FormatFloat(c.BFm),
		"b_barn":       FormatFloat(c.BBarn),
		"value":        FormatFloat(c.Value),
		"unit":         c.Unit,
	}
	if c.BWu != nil {
		m["b_wu"] = FormatFloat(*c.BWu)
	}
	return m
}

func errorCodes(err error) []string {
	var es transition.ValidationErrors
	if errors.As(err, &es) {
		return es.Codes()
	}
	return []string{err.Error()}
}

// RunWithGolden runs a scenario and compares its snapshot against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
//
// Returns error if the scenario cannot be run. A snapshot mismatch fails t.
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	if err := AssertGolden(t, scenario.Name, result); err != nil {
		return nil, err
	}
	return result, nil
}

// AssertGolden compares an existing result against its golden file
// without re-running the scenario.
func AssertGolden(t *testing.T, scenarioName string, result *Result) error {
	t.Helper()

	snapshot, err := Snapshot(scenarioName, result)
	if err != nil {
		return err
	}

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, scenarioName, snapshot)
	return nil
}
