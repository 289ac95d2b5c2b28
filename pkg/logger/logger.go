// Package logger provides leveled logging for dotnetctl. Verbosity is
// controlled by the -v/--verbose and --debug global flags. In debug mode
// messages are mirrored to $HOME/.dotnetctl/logs/dotnetctl-YYYY-MM-DD.log.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"
)

// Level represents log severity.
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelVerbose
	LevelDebug
)

var levelNames = map[Level]string{
	LevelError:   "ERROR",
	LevelWarn:    "WARN",
	LevelInfo:    "INFO",
	LevelVerbose: "VERBOSE",
	LevelDebug:   "DEBUG",
}

var levelColors = map[Level]string{
	LevelError:   "\033[31m",
	LevelWarn:    "\033[33m",
	LevelInfo:    "\033[32m",
	LevelVerbose: "\033[36m",
	LevelDebug:   "\033[35m",
}

// Logger writes leveled log lines to stderr and, in debug mode, to a file.
type Logger struct {
	mu     sync.Mutex
	level  Level
	out    io.Writer
	file   *os.File
	colors bool
}

var (
	global *Logger
	once   sync.Once
)

// Initialize configures the global logger. Safe to call more than once;
// only the first call wins.
func Initialize(verbose, debug bool) {
	once.Do(func() {
		level := LevelInfo
		if verbose {
			level = LevelVerbose
		}
		if debug {
			level = LevelDebug
		}
		global = &Logger{
			level:  level,
			out:    os.Stderr,
			colors: stderrIsTerminal(),
		}
		if debug {
			global.file = openDebugFile()
		}
	})
}

// IsVerbose reports whether the global logger runs at verbose level or above.
func IsVerbose() bool {
	return global != nil && global.level >= LevelVerbose
}

// Close releases the debug log file, if any.
func Close() {
	if global != nil && global.file != nil {
		_ = global.file.Close()
	}
}

func openDebugFile() *os.File {
	dir := filepath.Join(os.Getenv("HOME"), ".dotnetctl", "logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil
	}
	name := fmt.Sprintf("dotnetctl-%s.log", time.Now().Format("2006-01-02"))
	f, err := os.OpenFile(filepath.Join(dir, name), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil
	}
	return f
}

// Info logs at info level.
func Info(msg string) { emit(LevelInfo, msg) }

// Infof logs a formatted message at info level.
func Infof(format string, args ...interface{}) { Info(fmt.Sprintf(format, args...)) }

// Verbose logs at verbose level (shown with -v).
func Verbose(msg string) { emit(LevelVerbose, msg) }

// Verbosef logs a formatted message at verbose level.
func Verbosef(format string, args ...interface{}) { Verbose(fmt.Sprintf(format, args...)) }

// Debug logs at debug level (shown with --debug).
func Debug(msg string) { emit(LevelDebug, msg) }

// Debugf logs a formatted message at debug level.
func Debugf(format string, args ...interface{}) { Debug(fmt.Sprintf(format, args...)) }

// Warn logs a warning.
func Warn(msg string) { emit(LevelWarn, msg) }

// Warnf logs a formatted warning.
func Warnf(format string, args ...interface{}) { Warn(fmt.Sprintf(format, args...)) }

// Error logs an error message.
func Error(msg string) { emit(LevelError, msg) }

// Errorf logs a formatted error message.
func Errorf(format string, args ...interface{}) { Error(fmt.Sprintf(format, args...)) }

func emit(level Level, msg string) {
	if global == nil {
		return
	}
	global.log(level, msg)
}

func (l *Logger) log(level Level, msg string) {
	if level > l.level {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	msg = strings.TrimRight(msg, "\n")
	ts := time.Now().Format("15:04:05")
	name := levelNames[level]

	var line string
	if l.colors {
		line = fmt.Sprintf("[%s] %s%s\033[0m: %s\n", ts, levelColors[level], name, msg)
	} else {
		line = fmt.Sprintf("[%s] %s: %s\n", ts, name, msg)
	}
	fmt.Fprint(l.out, line)
	if l.file != nil {
		fmt.Fprintf(l.file, "[%s] %s: %s\n", ts, name, msg)
	}
}

func stderrIsTerminal() bool {
	fi, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
