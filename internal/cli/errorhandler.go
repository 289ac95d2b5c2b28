// Package cli: central error handling. Presents coded errors with their
// suggestions and context; execution failures keep their toolchain exit code.
package cli

import (
	"errors"
	"fmt"
	"os"
	"strings"

	e "github.com/joaompneves/nx-dotnet/pkg/errors"
	"github.com/joaompneves/nx-dotnet/pkg/exec"
	"github.com/joaompneves/nx-dotnet/pkg/terminal"
)

// ErrorHandler renders errors consistently across the CLI.
type ErrorHandler struct {
	verbose bool
	debug   bool
}

// NewErrorHandler creates an error handler.
func NewErrorHandler(verbose, debug bool) *ErrorHandler {
	return &ErrorHandler{verbose: verbose, debug: debug}
}

// Handle displays err and exits non-zero. Toolchain failures propagate the
// external process's exit code so shell scripting against dotnetctl behaves
// like scripting against dotnet itself.
func (h *ErrorHandler) Handle(err error) {
	if err == nil {
		return
	}

	var execErr *exec.ExecutionError
	if errors.As(err, &execErr) {
		// The toolchain already printed its own diagnostics in inherited
		// mode; only surface captured stderr.
		if execErr.Stderr != "" {
			fmt.Fprintln(os.Stderr, strings.TrimRight(execErr.Stderr, "\n"))
		}
		fmt.Fprintf(os.Stderr, "%s\n", terminal.Error(fmt.Sprintf("%s exited with code %d", execErr.Command, execErr.ExitCode)))
		os.Exit(execErr.ExitCode)
	}

	if ctlErr, ok := err.(*e.CtlError); ok {
		h.display(ctlErr)
	} else {
		h.display(e.Wrap(err, e.ErrUnknown, "An unexpected error occurred"))
	}
	os.Exit(1)
}

func (h *ErrorHandler) display(err *e.CtlError) {
	fmt.Println()
	fmt.Printf("%s %s\n", h.icon(err.Code), terminal.BoldText(err.Message))

	if err.Details != "" && h.verbose {
		fmt.Printf("\n%s\n", terminal.Colorize(terminal.Dim, err.Details))
	}
	if len(err.Context) > 0 && h.verbose {
		fmt.Println("\nContext:")
		for k, v := range err.Context {
			fmt.Printf("  %s: %s\n", k, v)
		}
	}
	if err.Suggestion != "" {
		fmt.Printf("\n💡 %s\n", terminal.Warning(err.Suggestion))
	}
	if err.Cause != nil && h.verbose {
		fmt.Printf("\n%s\n", terminal.Colorize(terminal.Dim, "Caused by:"))
		h.displayCauseChain(err.Cause, 1)
	}
	if h.debug && len(err.Stack) > 0 {
		fmt.Printf("\n%s\n", terminal.Colorize(terminal.Dim, "Stack trace:"))
		for _, f := range err.Stack {
			fmt.Printf("  %s\n", formatStackFrame(f))
		}
	}

	fmt.Println()
	if !h.verbose {
		fmt.Println(terminal.Colorize(terminal.Dim, "Run with --verbose for more details"))
	}
}

func (h *ErrorHandler) displayCauseChain(err error, depth int) {
	indent := strings.Repeat("  ", depth)
	if ctlErr, ok := err.(*e.CtlError); ok {
		fmt.Printf("%s• %s\n", indent, ctlErr.Message)
		if ctlErr.Cause != nil {
			h.displayCauseChain(ctlErr.Cause, depth+1)
		}
		return
	}
	fmt.Printf("%s• %s\n", indent, err.Error())
}

func formatStackFrame(frame e.StackFrame) string {
	file := frame.File
	if idx := strings.LastIndex(file, "/nx-dotnet/"); idx >= 0 {
		file = "..." + file[idx:]
	}
	fn := frame.Function
	if idx := strings.LastIndex(fn, "."); idx >= 0 {
		fn = fn[idx+1:]
	}
	return fmt.Sprintf("%s:%d %s()", file, frame.Line, fn)
}

func (h *ErrorHandler) icon(code e.ErrorCode) string {
	icons := map[e.ErrorCode]string{
		e.ErrSDKNotFound:       "🔍",
		e.ErrSDKVersionUnknown: "❓",
		e.ErrExecFailed:        "❌",
		e.ErrToolMissing:       "🧰",
		e.ErrTemplateParse:     "📄",
		e.ErrProjectNotFound:   "🔍",
		e.ErrInvalidConfig:     "⚙️",
		e.ErrUsage:             "ℹ️",
	}
	if ic, ok := icons[code]; ok {
		return ic
	}
	return "❌"
}
