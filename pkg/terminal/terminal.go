// Package terminal provides terminal output helpers.
package terminal

import (
	"fmt"
	"os"
)

// ANSI codes used for user-facing output.
const (
	Reset  = "\033[0m"
	Bold   = "\033[1m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Cyan   = "\033[36m"
)

// IsTerminal reports whether stdout is attached to a terminal.
func IsTerminal() bool {
	fi, err := os.Stdout.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}

// Colorize wraps text in the given color when the terminal supports it.
// NO_COLOR disables coloring entirely.
func Colorize(color, text string) string {
	if !IsTerminal() || os.Getenv("NO_COLOR") != "" {
		return text
	}
	return fmt.Sprintf("%s%s%s", color, text, Reset)
}

// Success returns text styled for success messages.
func Success(text string) string { return Colorize(Green, text) }

// Error returns text styled for error messages.
func Error(text string) string { return Colorize(Red, text) }

// Warning returns text styled for warnings.
func Warning(text string) string { return Colorize(Yellow, text) }

// Info returns text styled for informational messages.
func Info(text string) string { return Colorize(Cyan, text) }

// BoldText returns bold text when supported.
func BoldText(text string) string { return Colorize(Bold, text) }
