package harness

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats/scalar"

	"github.com/roach88/bcalc/internal/transition"
)

// AssertionError is one expectation a case did not meet.
type AssertionError struct {
	Field    string
	Expected string
	Actual   string
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	return fmt.Sprintf("%s: expected %s, got %s", e.Field, e.Expected, e.Actual)
}

// checkExpect compares one calculation outcome with its expectations and
// returns every mismatch.
func checkExpect(exp Expect, res *transition.Result, calcErr error, tol float64) []error {
	var failures []error

	if exp.ErrorCode != "" {
		if !transition.HasCode(calcErr, exp.ErrorCode) {
			failures = append(failures, &AssertionError{
				Field:    "error_code",
				Expected: exp.ErrorCode,
				Actual:   describeErr(calcErr),
			})
		}
	} else if calcErr != nil {
		return append(failures, &AssertionError{
			Field:    "error",
			Expected: "success",
			Actual:   calcErr.Error(),
		})
	}

	if exp.Warning != "" && !hasWarning(res, exp.Warning) {
		failures = append(failures, &AssertionError{
			Field:    "warning",
			Expected: exp.Warning,
			Actual:   fmt.Sprintf("%v", warningCodes(res)),
		})
	}

	if calcErr != nil || !exp.hasNumeric() {
		return failures
	}

	if exp.Beta2 != nil {
		if res.Beta2 == nil {
			failures = append(failures, missing("beta2", *exp.Beta2))
		} else if err := within("beta2", *exp.Beta2, *res.Beta2, tol); err != nil {
			failures = append(failures, err)
		}
	}

	if exp.Component >= len(res.Components) {
		return append(failures, &AssertionError{
			Field:    "component",
			Expected: fmt.Sprintf("index %d", exp.Component),
			Actual:   fmt.Sprintf("%d component(s)", len(res.Components)),
		})
	}
	c := res.Components[exp.Component]

	checks := []struct {
		field string
		want  *float64
		got   float64
	}{
		{"b_fm", exp.BFm, c.BFm},
		{"b_barn", exp.BBarn, c.BBarn},
		{"lifetime_ps", exp.LifetimePs, c.LifetimePs},
		{"half_life_ps", exp.HalfLifePs, c.HalfLifePs},
		{"value", exp.Value, c.Value},
	}
	for _, chk := range checks {
		if chk.want == nil {
			continue
		}
		if err := within(chk.field, *chk.want, chk.got, tol); err != nil {
			failures = append(failures, err)
		}
	}

	if exp.BWu != nil {
		if c.BWu == nil {
			failures = append(failures, missing("b_wu", *exp.BWu))
		} else if err := within("b_wu", *exp.BWu, *c.BWu, tol); err != nil {
			failures = append(failures, err)
		}
	}

	if exp.Unit != "" && exp.Unit != c.Unit {
		failures = append(failures, &AssertionError{Field: "unit", Expected: exp.Unit, Actual: c.Unit})
	}
	return failures
}

// within checks got against want using a relative tolerance.
func within(field string, want, got, tol float64) error {
	if math.IsNaN(got) || !scalar.EqualWithinRel(got, want, tol) {
		return &AssertionError{
			Field:    field,
			Expected: fmt.Sprintf("%.9E (rel tol %g)", want, tol),
			Actual:   fmt.Sprintf("%.9E", got),
		}
	}
	return nil
}

func missing(field string, want float64) error {
	return &AssertionError{Field: field, Expected: fmt.Sprintf("%.9E", want), Actual: "not computed"}
}

func describeErr(err error) string {
	if err == nil {
		return "success"
	}
	var es transition.ValidationErrors
	if errors.As(err, &es) {
		return fmt.Sprintf("%v", es.Codes())
	}
	return err.Error()
}

func hasWarning(res *transition.Result, code string) bool {
	for _, c := range warningCodes(res) {
		if c == code {
			return true
		}
	}
	return false
}

func warningCodes(res *transition.Result) []string {
	if res == nil {
		return nil
	}
	codes := make([]string, len(res.Warnings))
	for i, w := range res.Warnings {
		codes[i] = w.Code
	}
	return codes
}
