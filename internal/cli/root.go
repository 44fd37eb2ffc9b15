package cli

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Quiet   bool
	Format  string // "json" | "text"

	// Logger writes diagnostics to stderr. Set before any command runs.
	Logger *slog.Logger
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// log returns the configured logger, or the default one when a command
// runs without the root pre-run (tests calling run functions directly).
func (o *RootOptions) log() *slog.Logger {
	if o.Logger == nil {
		return slog.Default()
	}
	return o.Logger
}

// NewRootCommand creates the bcalc command. Run without a subcommand it
// performs a single calculation from its flags.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}
	calc := &CalcOptions{RootOptions: opts}

	cmd := &cobra.Command{
		Use:   "bcalc",
		Short: "Convert gamma-ray transition lifetimes to reduced transition probabilities and back",
		Long: `bcalc converts between the mean lifetime (or half-life) of a nuclear
gamma-ray transition and its reduced transition probability B(σL).

Give the transition energy, the multipole and exactly one of a lifetime,
a half-life or a B value. Branching, internal conversion and E2/M1-style
mixing are applied to the lifetime before conversion. Results can be given
in fm-based units, barns or Weisskopf units.

Exit codes:
  0 - Calculation succeeded
  1 - Invalid input
  2 - Command error

Examples:
  bcalc -E 1000 -M E2 --half-life 1
  bcalc -E 500 -M M1 -B 0.05
  bcalc -E 121.78 -M E2 --half-life-ns 1.4 -A 152 --wu
  bcalc -E 44.9 -M E2 -B 0.3 --barns --ji 2 --jf 0 -A 238 -Z 92 --beta2`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !isValidFormat(opts.Format) {
				return NewExitError(ExitCommandError, fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if opts.Verbose && opts.Quiet {
				return NewExitError(ExitCommandError, "--verbose and --quiet cannot be used together")
			}
			opts.Logger = newLogger(cmd.ErrOrStderr(), logLevel(opts))
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCalc(calc, cmd)
		},
	}

	// Global flags
	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose report and debug logging")
	cmd.PersistentFlags().BoolVarP(&opts.Quiet, "quiet", "q", false, "print bare values only")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	calc.bindFlags(cmd)

	cmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "invalid flags", err)
	})

	cmd.AddCommand(NewBatchCommand(opts))
	cmd.AddCommand(NewTestCommand(opts))

	return cmd
}

// isValidFormat checks if the format is one of the allowed values.
func isValidFormat(format string) bool {
	for _, f := range ValidFormats {
		if f == format {
			return true
		}
	}
	return false
}
