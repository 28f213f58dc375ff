// Package logutil provides three-severity diagnostics annotated with the
// call site (file, line, enclosing function). Info goes to stdout, warn
// and error to stderr.
package logutil

import (
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
)

var (
	infoLog = newLogger(os.Stdout)
	errLog  = newLogger(os.Stderr)
)

func newLogger(w io.Writer) zerolog.Logger {
	// No timestamp field is ever set, so the default parts order would
	// render a literal <nil> time column; lines start at the severity tag.
	return zerolog.New(zerolog.ConsoleWriter{
		Out:        w,
		PartsOrder: []string{zerolog.LevelFieldName, zerolog.MessageFieldName},
	})
}

// SetWriters redirects the two diagnostic streams, mainly for tests.
func SetWriters(out, err io.Writer) {
	infoLog = newLogger(out)
	errLog = newLogger(err)
}

// Infof logs an informational message to the standard output stream.
func Infof(format string, args ...any) {
	emit(infoLog.Info(), format, args)
}

// Warnf logs a warning to the standard error stream.
func Warnf(format string, args ...any) {
	emit(errLog.Warn(), format, args)
}

// Errorf logs an error to the standard error stream.
func Errorf(format string, args ...any) {
	emit(errLog.Error(), format, args)
}

func emit(ev *zerolog.Event, format string, args []any) {
	// Caller(2) skips emit and the exported wrapper.
	if pc, file, line, ok := runtime.Caller(2); ok {
		ev = ev.
			Str("file", filepath.Base(file)).
			Int("line", line).
			Str("func", funcBase(pc))
	}
	ev.Msgf(format, args...)
}

// funcBase strips the package path from a fully qualified function name.
func funcBase(pc uintptr) string {
	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return "?"
	}
	name := fn.Name()
	if i := strings.LastIndexByte(name, '.'); i >= 0 {
		name = name[i+1:]
	}
	return name
}
