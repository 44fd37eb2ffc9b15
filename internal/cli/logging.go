package cli

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
	"golang.org/x/term"
)

// logLevel maps the verbosity flags to a log level. Quiet only trims the
// report; warnings such as assumed spins still reach stderr.
func logLevel(opts *RootOptions) slog.Level {
	if opts.Verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// newLogger builds the diagnostic logger. Color is only used when w is a
// terminal.
func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	noColor := true
	if f, ok := w.(*os.File); ok {
		noColor = !term.IsTerminal(int(f.Fd()))
	}
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      level,
		TimeFormat: "15:04:05",
		NoColor:    noColor,
	}))
}
