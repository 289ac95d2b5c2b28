// Package errors provides coded error types with context and suggestions
// for dotnetctl. Errors carry a category code, an optional fix suggestion,
// a context map, and a lightweight stack trace for --debug output.
package errors

import (
	"runtime"
	"strings"
)

// ErrorCode categorizes errors for handling and presentation.
type ErrorCode string

const (
	// SDK resolution errors
	ErrSDKNotFound       ErrorCode = "SDK_NOT_FOUND"
	ErrSDKVersionUnknown ErrorCode = "SDK_VERSION_UNKNOWN"

	// Toolchain invocation errors
	ErrExecFailed  ErrorCode = "EXEC_FAILED"
	ErrToolMissing ErrorCode = "TOOL_MISSING"

	// Output parsing errors
	ErrTemplateParse ErrorCode = "TEMPLATE_PARSE"

	// Workspace errors
	ErrProjectNotFound ErrorCode = "PROJECT_NOT_FOUND"
	ErrDigestFailed    ErrorCode = "DIGEST_FAILED"

	// Configuration errors
	ErrInvalidConfig ErrorCode = "INVALID_CONFIG"

	// Usage errors
	ErrUsage ErrorCode = "USAGE"

	// Everything else
	ErrUnknown ErrorCode = "UNKNOWN"
)

// StackFrame records one call site captured at error creation.
type StackFrame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

// CtlError is the error type used throughout dotnetctl.
type CtlError struct {
	Code       ErrorCode         `json:"code"`
	Message    string            `json:"message"`
	Details    string            `json:"details,omitempty"`
	Suggestion string            `json:"suggestion,omitempty"`
	Cause      error             `json:"-"`
	Context    map[string]string `json:"context,omitempty"`
	Stack      []StackFrame      `json:"stack,omitempty"`
}

// Error implements the error interface.
func (e *CtlError) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)
	if e.Details != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Details)
	}
	if e.Cause != nil {
		sb.WriteString("\nCaused by: ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

// Unwrap exposes the cause to errors.Is/As.
func (e *CtlError) Unwrap() error { return e.Cause }

// WithSuggestion attaches a fix suggestion.
func (e *CtlError) WithSuggestion(suggestion string) *CtlError {
	e.Suggestion = suggestion
	return e
}

// WithContext attaches a key/value pair of contextual information.
func (e *CtlError) WithContext(key, value string) *CtlError {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// WithCause wraps another error.
func (e *CtlError) WithCause(cause error) *CtlError {
	e.Cause = cause
	return e
}

// WithDetails attaches detailed information.
func (e *CtlError) WithDetails(details string) *CtlError {
	e.Details = details
	return e
}

// New creates a CtlError with a captured stack and a default suggestion.
func New(code ErrorCode, message string) *CtlError {
	err := &CtlError{
		Code:    code,
		Message: message,
		Context: make(map[string]string),
	}
	err.captureStack()
	err.Suggestion = defaultSuggestion(code)
	return err
}

// Wrap converts an arbitrary error into a CtlError. Wrapping an existing
// CtlError prepends the message instead of nesting.
func Wrap(err error, code ErrorCode, message string) *CtlError {
	if err == nil {
		return nil
	}
	if ce, ok := err.(*CtlError); ok {
		if message != "" {
			ce.Message = message + ": " + ce.Message
		}
		return ce
	}
	return New(code, message).WithCause(err)
}

func (e *CtlError) captureStack() {
	const maxFrames = 10
	pc := make([]uintptr, maxFrames)
	n := runtime.Callers(3, pc)
	frames := runtime.CallersFrames(pc[:n])
	for {
		frame, more := frames.Next()
		if strings.Contains(frame.File, "runtime/") || strings.Contains(frame.File, "testing/") {
			if !more {
				break
			}
			continue
		}
		e.Stack = append(e.Stack, StackFrame{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		})
		if !more {
			break
		}
	}
}

func defaultSuggestion(code ErrorCode) string {
	suggestions := map[ErrorCode]string{
		ErrSDKNotFound:       "Install the .NET SDK from https://dotnet.microsoft.com/download or set DOTNETCTL_DOTNET",
		ErrSDKVersionUnknown: "Run 'dotnet --version' manually to verify the installation",
		ErrToolMissing:       "Install the tool: dotnet tool install -g <tool>",
		ErrTemplateParse:     "Run 'dotnet new list' manually and report the output format",
		ErrProjectNotFound:   "Check the project path; it should point to a .csproj/.fsproj or its directory",
		ErrInvalidConfig:     "Fix or remove ~/.dotnetctl.json",
	}
	if s, ok := suggestions[code]; ok {
		return s
	}
	return "Run 'dotnetctl doctor' for diagnostics"
}
