// Package telemetry wraps github.com/charmbracelet/log so every package in
// this module logs through the same structured, leveled logger instead of
// reaching for the standard library's log package directly.
package telemetry

import (
	"os"

	"github.com/charmbracelet/log"
)

var logger = log.NewWithOptions(os.Stderr, log.Options{
	ReportTimestamp: true,
})

// SetLevel adjusts the package-wide log level (log.DebugLevel ... log.FatalLevel).
func SetLevel(level log.Level) {
	logger.SetLevel(level)
}

// Named returns a child logger tagged with a "component" key, so a round
// loop, a chunked robot phase, and a CSV writer can all log through one
// logger while staying distinguishable in output.
func Named(component string) *log.Logger {
	return logger.With("component", component)
}

// Debug logs at debug level through the package-wide logger.
func Debug(msg string, kv ...interface{}) { logger.Debug(msg, kv...) }

// Info logs at info level through the package-wide logger.
func Info(msg string, kv ...interface{}) { logger.Info(msg, kv...) }

// Warn logs at warn level through the package-wide logger.
func Warn(msg string, kv ...interface{}) { logger.Warn(msg, kv...) }

// Error logs at error level through the package-wide logger.
func Error(msg string, kv ...interface{}) { logger.Error(msg, kv...) }
