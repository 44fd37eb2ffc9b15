package transition

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorKind categorizes validation failures.
type ErrorKind string

const (
	// MissingParameter indicates a required field is absent.
	MissingParameter ErrorKind = "MISSING_PARAMETER"

	// InvalidValue indicates a field is present but out of domain.
	InvalidValue ErrorKind = "INVALID_VALUE"

	// MissingDependency indicates a flag whose prerequisites are not satisfied.
	MissingDependency ErrorKind = "MISSING_DEPENDENCY"
)

// Validation error codes. E1xx are missing parameters, E2xx invalid values,
// E3xx missing dependencies.
const (
	CodeMissingEnergy    = "E101"
	CodeMissingMultipole = "E102"
	CodeMissingInput     = "E103"
	CodeMissingSpin      = "E104"

	CodeInvalidEnergy      = "E201"
	CodeInvalidMultipole   = "E202"
	CodeConflictingInput   = "E203"
	CodeInvalidLifetime    = "E204"
	CodeInvalidProbability = "E205"
	CodeInvalidSpin        = "E206"
	CodeSpinParity         = "E207"
	CodeInvalidBranching   = "E208"
	CodeInvalidICC         = "E209"
	CodeConflictingUnits   = "E210"
	CodeInvalidMixing      = "E211"
	CodeInvalidNucleus     = "E212"
	CodeNoGammaRate        = "E213"
	CodeInvalidTimeUnit    = "E214"
	CodeOutOfRange         = "E215"

	CodeWeisskopfNeedsMass   = "E301"
	CodeDeformationNeedsE2   = "E302"
	CodeDeformationNeedsSpin = "E303"
	CodeDeformationNeedsAZ   = "E304"
)

// ValidationError describes one rejected input field.
type ValidationError struct {
	Kind    ErrorKind `json:"kind"`
	Code    string    `json:"code"`
	Field   string    `json:"field"`
	Message string    `json:"message"`
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates every failure found by Validate.
type ValidationErrors []*ValidationError

// Error joins the individual messages, one per line.
func (es ValidationErrors) Error() string {
	msgs := make([]string, len(es))
	for i, e := range es {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "\n")
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (es ValidationErrors) Unwrap() []error {
	errs := make([]error, len(es))
	for i, e := range es {
		errs[i] = e
	}
	return errs
}

// Codes returns the error codes in the order they were found.
func (es ValidationErrors) Codes() []string {
	codes := make([]string, len(es))
	for i, e := range es {
		codes[i] = e.Code
	}
	return codes
}

// HasCode reports whether err contains a validation error with the given code.
// Uses errors.As to handle wrapped errors.
func HasCode(err error, code string) bool {
	var es ValidationErrors
	if errors.As(err, &es) {
		for _, e := range es {
			if e.Code == code {
				return true
			}
		}
		return false
	}
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Code == code
	}
	return false
}

// InvariantError reports a non-finite intermediate value. Evaluate returns
// it when valid but extreme inputs leave double precision; Calculate turns
// it into a CodeOutOfRange validation error.
type InvariantError struct {
	Stage string
	Value float64
}

// Error implements the error interface.
func (e *InvariantError) Error() string {
	return fmt.Sprintf("internal invariant violated: %s produced non-finite value %v", e.Stage, e.Value)
}

// Warning is a non-fatal condition noticed during validation.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// Warning codes.
const (
	WarnDefaultSpins  = "W001"
	WarnICCIgnored    = "W002"
	WarnMixingIgnored = "W003"
)
