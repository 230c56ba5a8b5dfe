// Package logging wraps charmbracelet/log with the leveled, structured
// logger the CLI uses; the core parser packages never log.
package logging

import (
	"os"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
)

// Field name constants for structured logging, kept consistent across
// subcommands so log lines stay greppable.
const (
	FieldFile     = "file"
	FieldReused   = "reused_length"
	FieldTotal    = "total_length"
	FieldEdits    = "edits"
	FieldError    = "error"
	FieldCategory = "category"
	FieldOldLines = "old_lines"
	FieldNewLines = "new_lines"
)

var (
	defaultLogger     *log.Logger
	defaultLoggerOnce sync.Once
)

func getDefaultLogger() *log.Logger {
	defaultLoggerOnce.Do(func() {
		defaultLogger = New("info")
	})
	return defaultLogger
}

// New creates a logger at the given level ("debug", "info", "warn", "error").
func New(level string) *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: false,
		ReportCaller:    false,
	})
	setLevel(logger, level)
	return logger
}

func setLevel(logger *log.Logger, level string) {
	switch strings.ToLower(level) {
	case "debug":
		logger.SetLevel(log.DebugLevel)
	case "warn", "warning":
		logger.SetLevel(log.WarnLevel)
	case "error":
		logger.SetLevel(log.ErrorLevel)
	default:
		logger.SetLevel(log.InfoLevel)
	}
}

// Default returns the package-level default logger.
func Default() *log.Logger {
	return getDefaultLogger()
}

// SetDefault replaces the package-level default logger.
func SetDefault(logger *log.Logger) {
	defaultLogger = logger
}

// SetLevel updates the default logger's level.
func SetLevel(level string) {
	setLevel(getDefaultLogger(), level)
}
