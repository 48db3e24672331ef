package logger

import (
	"github.com/fatih/color" // Colored console output for the different log levels
)

// Colorized printing functions for each log level, built on fatih/color.
// These are package-level variables holding functions that behave like
// fmt.Printf but render the text in a level-appropriate color.

// Info logs informational messages in green color.
// Green signals success or normal progress without alarming the user.
var Info = color.New(color.FgGreen).PrintfFunc()

// Warn logs warning messages in bright magenta color.
// Warnings annotate a chosen path (e.g. an unsupported runtime combination)
// but never abort the run.
var Warn = color.New(color.FgHiMagenta).PrintfFunc()

// Error logs error messages in red color.
// Every error printed through this function is fatal for the run; the caller
// exits with a non-zero status right after.
var Error = color.New(color.FgRed).PrintfFunc()

// Step logs the banner line announcing a setup step, in bold cyan, so the
// operator can follow which part of the sequence is currently running.
var Step = color.New(color.FgCyan, color.Bold).PrintfFunc()

// Debug logs debug messages in cyan color if enabled, otherwise is a no-op.
// It is assigned dynamically during Init based on the --debug flag.
var Debug func(format string, a ...any)

// Init initializes the logger package, specifically enabling or disabling
// debug logging. When disabled, Debug is a no-op that silently drops logs.
func Init(enableDebug bool) {
	if enableDebug {
		Debug = color.New(color.FgCyan).PrintfFunc()
	} else {
		Debug = func(format string, a ...any) {}
	}
}
