package listkit

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
)

// A TUI owns the terminal, so diagnostics never go to stdout. Tracing is
// off by default and opt-in to a writer or file, the usual arrangement
// for terminal applications.

var tracer = zerolog.Nop()

// EnableTrace routes trace logging to the given writer.
func EnableTrace(w io.Writer) {
	tracer = zerolog.New(w).With().Timestamp().Logger().Level(zerolog.TraceLevel)
}

// DisableTrace turns trace logging back off.
func DisableTrace() {
	tracer = zerolog.Nop()
}

// TraceToFile appends trace logging to the named file and returns a
// close function to be called on shutdown.
func TraceToFile(path string) (func() error, error) {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open trace file: %w", err)
	}
	EnableTrace(f)
	return func() error {
		DisableTrace()
		return f.Close()
	}, nil
}
