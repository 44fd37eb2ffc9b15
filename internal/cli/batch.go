package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/roach88/bcalc/internal/batch"
	"github.com/roach88/bcalc/internal/transition"
)

// BatchOptions holds flags for the batch command.
type BatchOptions struct {
	*RootOptions

	// RunIDs allows overriding the run ID generator (for testing).
	// If nil, defaults to UUIDv7Generator.
	RunIDs RunIDGenerator
}

// BatchEntryResult is the outcome of one batch entry in JSON output.
type BatchEntryResult struct {
	Index  int                         `json:"index"`
	Name   string                      `json:"name"`
	OK     bool                        `json:"ok"`
	Result *transition.Result          `json:"result,omitempty"`
	Errors transition.ValidationErrors `json:"errors,omitempty"`
	Error  string                      `json:"error,omitempty"`
}

// BatchResult holds the overall batch outcome.
type BatchResult struct {
	File      string             `json:"file"`
	Entries   []BatchEntryResult `json:"entries"`
	Succeeded int                `json:"succeeded"`
	Failed    int                `json:"failed"`
	Total     int                `json:"total"`
}

// NewBatchCommand creates the batch command.
func NewBatchCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &BatchOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "batch <file.cue>",
		Short: "Calculate every transition listed in a CUE file",
		Long: `Calculate many transitions from one CUE file.

The file declares a list of requests:

  transitions: [
    {name: "152Sm 2+", energy_kev: 121.78, multipole: "E2", half_life: 1.4, time_unit: "ns", a: 152},
    {energy_kev: 500, multipole: "M1", probability: 0.05},
  ]

The file is checked against the built-in schema first. Each entry is then
validated and calculated on its own; one bad entry does not stop the rest.

Exit codes:
  0 - Every entry succeeded
  1 - Schema errors or one or more entries failed
  2 - Command error (file not found, etc.)

Examples:
  bcalc batch transitions.cue
  bcalc batch transitions.cue --format json`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBatch(opts, args[0], cmd)
		},
	}

	return cmd
}

func runBatch(opts *BatchOptions, path string, cmd *cobra.Command) error {
	gen := opts.RunIDs
	if gen == nil {
		gen = UUIDv7Generator{}
	}
	runID := gen.Generate()
	log := opts.log().With("run_id", runID)
	formatter := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), TraceID: runID}

	log.Debug("loading batch file", "path", path)
	b, loadErrs := batch.LoadFile(path)
	if len(loadErrs) > 0 {
		return outputLoadErrors(formatter, loadErrs)
	}
	log.Debug("batch loaded", "entries", len(b.Entries))

	outcomes := batch.Calculate(b)
	result := BatchResult{
		File:    path,
		Entries: make([]BatchEntryResult, 0, len(outcomes)),
		Failed:  batch.CountFailed(outcomes),
		Total:   len(outcomes),
	}
	result.Succeeded = result.Total - result.Failed
	for _, o := range outcomes {
		entry := BatchEntryResult{Index: o.Entry.Index, Name: o.Entry.Label(), OK: !o.Failed()}
		if o.Result != nil {
			for _, w := range o.Result.Warnings {
				log.Warn(w.Message, "entry", entry.Name, "code", w.Code)
			}
		}
		if o.Failed() {
			var verrs transition.ValidationErrors
			if errors.As(o.Err, &verrs) {
				entry.Errors = verrs
			} else {
				entry.Error = o.Err.Error()
			}
		} else {
			entry.Result = o.Result
		}
		result.Entries = append(result.Entries, entry)
	}

	if formatter.IsJSON() {
		return outputBatchJSON(formatter, result)
	}
	return outputBatchText(formatter, result, opts.verbosity())
}

// outputLoadErrors reports why a batch file could not be loaded.
// A missing file is a command error; anything else is invalid input.
func outputLoadErrors(formatter *OutputFormatter, errs []error) error {
	code := ExitFailure
	first := &batch.LoadError{Code: batch.ErrCodeGeneric, Message: errs[0].Error()}
	var le *batch.LoadError
	if errors.As(errs[0], &le) {
		first = le
		if le.Code == batch.ErrCodeNotFound {
			code = ExitCommandError
		}
	}

	if formatter.IsJSON() {
		details := make([]string, len(errs))
		for i, e := range errs {
			details[i] = e.Error()
		}
		if err := formatter.Error(first.Code, first.Message, details); err != nil {
			return err
		}
		return NewExitError(code, fmt.Sprintf("batch file invalid with %d error(s)", len(errs)))
	}
	if code == ExitCommandError {
		if err := formatter.Error(first.Code, first.Message, nil); err != nil {
			return err
		}
		return NewExitError(code, first.Message)
	}

	fmt.Fprintln(formatter.Writer, "✗ Batch file invalid")
	fmt.Fprintln(formatter.Writer)
	for _, e := range errs {
		fmt.Fprintf(formatter.Writer, "  %v\n", e)
	}
	return NewExitError(code, fmt.Sprintf("batch file invalid with %d error(s)", len(errs)))
}

func outputBatchJSON(formatter *OutputFormatter, result BatchResult) error {
	status := "ok"
	if result.Failed > 0 {
		status = "error"
	}
	response := CLIResponse{
		Status: status,
		Data:   result,
	}
	if result.Failed > 0 {
		response.Error = &CLIError{
			Code:    "E_BATCH_FAILED",
			Message: fmt.Sprintf("%d entr(ies) failed", result.Failed),
		}
	}
	if err := formatter.Encode(response); err != nil {
		return err
	}
	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d batch entr(ies) failed", result.Failed))
	}
	return nil
}

func outputBatchText(formatter *OutputFormatter, result BatchResult, v Verbosity) error {
	w := formatter.Writer
	for _, e := range result.Entries {
		if !e.OK {
			fmt.Fprintf(w, "✗ %s\n", e.Name)
			if len(e.Errors) > 0 {
				writeValidationErrors(formatter, e.Errors, "  ")
			} else {
				fmt.Fprintf(w, "  %s\n", e.Error)
			}
			continue
		}
		fmt.Fprintf(w, "✓ %s\n", e.Name)
		if v == VerbosityQuiet {
			writeQuiet(w, e.Result)
		} else {
			writeNormal(w, e.Result, "  ")
		}
	}

	fmt.Fprintln(w)
	fmt.Fprintf(w, "Batch Summary: %d succeeded, %d failed, %d total\n", result.Succeeded, result.Failed, result.Total)
	if result.Failed > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d batch entr(ies) failed", result.Failed))
	}
	return nil
}
