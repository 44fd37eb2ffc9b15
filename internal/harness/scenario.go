package harness

import (
	"bytes"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/roach88/bcalc/internal/transition"
)

// DefaultTolerance is the relative tolerance used when a scenario sets none.
const DefaultTolerance = 1e-6

// Scenario is a named set of calculation cases with expected results.
type Scenario struct {
	// Name uniquely identifies this scenario and names its golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario checks.
	Description string `yaml:"description"`

	// Tolerance is the relative tolerance for numeric expectations.
	// Zero means DefaultTolerance.
	Tolerance float64 `yaml:"tolerance,omitempty"`

	Cases []Case `yaml:"cases"`
}

// Case is one calculation request and what it must produce.
type Case struct {
	Name   string             `yaml:"name"`
	Params transition.Request `yaml:"params"`
	Expect Expect             `yaml:"expect"`
}

// Expect lists the checks applied to one case. Nil fields are not checked.
type Expect struct {
	// Component indexes Result.Components for the numeric checks.
	Component int `yaml:"component,omitempty"`

	BFm        *float64 `yaml:"b_fm,omitempty"`
	BBarn      *float64 `yaml:"b_barn,omitempty"`
	BWu        *float64 `yaml:"b_wu,omitempty"`
	LifetimePs *float64 `yaml:"lifetime_ps,omitempty"`
	HalfLifePs *float64 `yaml:"half_life_ps,omitempty"`
	Value      *float64 `yaml:"value,omitempty"`
	Unit       string   `yaml:"unit,omitempty"`
	Beta2      *float64 `yaml:"beta2,omitempty"`

	// ErrorCode expects validation to fail with this code (e.g. "E202").
	ErrorCode string `yaml:"error_code,omitempty"`

	// Warning expects this warning code (e.g. "W001") on the result.
	Warning string `yaml:"warning,omitempty"`
}

// tolerance returns the effective relative tolerance.
func (s *Scenario) tolerance() float64 {
	if s.Tolerance == 0 {
		return DefaultTolerance
	}
	return s.Tolerance
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}
	return ParseScenario(data)
}

// ParseScenario parses scenario YAML from memory.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict decoding catches typos like "b_fn:" vs "b_fm:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if s.Tolerance < 0 {
		return fmt.Errorf("tolerance must not be negative, got %g", s.Tolerance)
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	seen := make(map[string]bool, len(s.Cases))
	for i, c := range s.Cases {
		if c.Name == "" {
			return fmt.Errorf("cases[%d]: name is required", i)
		}
		if seen[c.Name] {
			return fmt.Errorf("cases[%d]: duplicate case name %q", i, c.Name)
		}
		seen[c.Name] = true
		if c.Expect.Component < 0 {
			return fmt.Errorf("cases[%d] (%s): component must not be negative", i, c.Name)
		}
		if c.Expect.ErrorCode != "" && c.Expect.hasNumeric() {
			return fmt.Errorf("cases[%d] (%s): error_code cannot be combined with numeric expectations", i, c.Name)
		}
	}
	return nil
}

func (e Expect) hasNumeric() bool {
	return e.BFm != nil || e.BBarn != nil || e.BWu != nil || e.LifetimePs != nil ||
		e.HalfLifePs != nil || e.Value != nil || e.Unit != "" || e.Beta2 != nil
}
