package harness

import (
	"fmt"

	"github.com/roach88/bcalc/internal/transition"
)

// Result is the outcome of running a scenario.
type Result struct {
	// Pass is true when every case met its expectations.
	Pass bool `json:"pass"`

	Cases []CaseResult `json:"cases"`

	// Errors holds one message per failed expectation, prefixed by case name.
	Errors []string `json:"errors,omitempty"`
}

// CaseResult is the outcome of a single case.
type CaseResult struct {
	Name   string             `json:"name"`
	Pass   bool               `json:"pass"`
	Calc   *transition.Result `json:"calc,omitempty"`
	Err    error              `json:"-"`
	Errors []string           `json:"errors,omitempty"`
}

// addError records a failed expectation on both the case and the scenario.
func (r *Result) addError(c *CaseResult, err error) {
	c.Pass = false
	c.Errors = append(c.Errors, err.Error())
	r.Pass = false
	r.Errors = append(r.Errors, fmt.Sprintf("%s: %v", c.Name, err))
}

// Run executes every case of a scenario and checks its expectations.
//
// Cases are independent; a failing case never stops the others. The
// returned error is reserved for scenarios that cannot be run at all.
func Run(scenario *Scenario) (*Result, error) {
	if scenario == nil {
		return nil, fmt.Errorf("scenario is nil")
	}
	if err := validateScenario(scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}

	tol := scenario.tolerance()
	result := &Result{Pass: true, Cases: make([]CaseResult, 0, len(scenario.Cases))}

	for _, c := range scenario.Cases {
		cr := CaseResult{Name: c.Name, Pass: true}

		params, err := c.Params.Params()
		if err != nil {
			cr.Err = err
			result.addError(&cr, fmt.Errorf("params: %w", err))
			result.Cases = append(result.Cases, cr)
			continue
		}

		cr.Calc, cr.Err = transition.Calculate(params)
		for _, failure := range checkExpect(c.Expect, cr.Calc, cr.Err, tol) {
			result.addError(&cr, failure)
		}
		result.Cases = append(result.Cases, cr)
	}
	return result, nil
}
