// Package logx builds the diagnostic logger. Diagnostics go to stderr through
// a tint handler and stay out of the way of game output unless --verbose is
// set.
package logx

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
)

// Log attribute keys.
const (
	FieldDurationMs     = "duration-ms"
	FieldError          = "error"
	FieldHTTPRequest    = "http-request"
	FieldHTTPResponse   = "http-response"
	FieldRequestBody    = "request-body"
	FieldRequestID      = "request-id"
	FieldResponseBody   = "response-body"
	FieldResponseStatus = "response-status"
	FieldURL            = "url"
)

// Error returns an attribute for err that tint renders in red.
func Error(err error) slog.Attr {
	return tint.Err(err)
}

// Stringer returns a string attribute from a fmt.Stringer.
func Stringer(name string, value fmt.Stringer) slog.Attr {
	return slog.String(name, value.String())
}

// Level maps the verbose flag to a minimum level.
func Level(verbose bool) slog.Level {
	if verbose {
		return slog.LevelDebug
	}
	return slog.LevelWarn
}

// New returns a logger writing to w. Colour is disabled unless w is a
// terminal.
func New(w io.Writer, verbose bool) *slog.Logger {
	return slog.New(tint.NewHandler(w, &tint.Options{
		Level:      Level(verbose),
		TimeFormat: time.Kitchen,
		NoColor:    !isTerminal(w),
	}))
}

// Init installs a stderr logger as the slog default and returns it.
func Init(verbose bool) *slog.Logger {
	l := New(os.Stderr, verbose)
	slog.SetDefault(l)
	return l
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && isatty.IsTerminal(f.Fd())
}
