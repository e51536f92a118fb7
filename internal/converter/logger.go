// =============================================================================
// PDF to CSV Converter - Logging
// =============================================================================
//
// Small leveled logging interface used across the conversion pipeline. The
// default implementation prints formatted lines to stdout; debug lines are
// emitted only in verbose mode. Commands keep their own user-facing progress
// output separate from this log.
//
// =============================================================================

package converter

import "fmt"

// Logger is the logging interface the pipeline writes to.
type Logger interface {
	Debug(msg string, args ...interface{})
	Info(msg string, args ...interface{})
	Warn(msg string, args ...interface{})
	Error(msg string, args ...interface{})
}

// NewLogger returns the default stdout logger. Debug output is suppressed
// unless verbose is set.
func NewLogger(verbose bool) Logger {
	return &defaultLogger{verbose: verbose}
}

// defaultLogger prints leveled lines to stdout.
type defaultLogger struct {
	verbose bool
}

func (l *defaultLogger) Debug(msg string, args ...interface{}) {
	if l.verbose {
		fmt.Printf("[DEBUG] "+msg+"\n", args...)
	}
}

func (l *defaultLogger) Info(msg string, args ...interface{}) {
	fmt.Printf("[INFO] "+msg+"\n", args...)
}

func (l *defaultLogger) Warn(msg string, args ...interface{}) {
	fmt.Printf("[WARN] "+msg+"\n", args...)
}

func (l *defaultLogger) Error(msg string, args ...interface{}) {
	fmt.Printf("[ERROR] "+msg+"\n", args...)
}
