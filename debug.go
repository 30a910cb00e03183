package chartview

import (
	"os"

	"github.com/charmbracelet/log"
)

// defaultLogger is shared by instances created without an explicit logger.
// It only reports warnings unless debug output is requested.
var defaultLogger = log.NewWithOptions(os.Stderr, log.Options{
	Prefix: "chartview",
	Level:  log.WarnLevel,
})

// DefaultLogger returns the package logger used when Options.Logger is nil.
func DefaultLogger() *log.Logger {
	return defaultLogger
}

// newLogger returns a child of the package logger. Debug output is enabled
// per instance so that one chart can be traced without the others.
func newLogger(base *log.Logger, debug bool) *log.Logger {
	if base == nil {
		base = defaultLogger
	}
	l := base.With()
	if debug {
		l.SetLevel(log.DebugLevel)
	}
	return l
}
