// Package selectlog is a thin zerolog wrapper used by the CLI to report
// failures and per-query debug events without ever affecting a search's
// result set. The selector and state packages do not log.
// zerolog is grounded on the full pack repo smilemakc-mbflow, which uses
// it throughout its backend for exactly this kind of structured,
// low-allocation event logging (see DESIGN.md).
package selectlog

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

// Logger is the package-wide structured logger, writing to stderr. New
// builds one over any other io.Writer.
var Logger = New(os.Stderr)

// New builds a zerolog.Logger writing to w with the fields this module
// always wants present (component name).
func New(w io.Writer) zerolog.Logger {
	return zerolog.New(w).With().Timestamp().Str("component", "selectcore").Logger()
}
