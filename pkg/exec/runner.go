package exec

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/joaompneves/nx-dotnet/pkg/logger"
)

// ExecutionError reports a toolchain process that exited with a non-zero
// status. Stderr is populated only in captured mode.
type ExecutionError struct {
	Command  string
	ExitCode int
	Stderr   string
}

// Error implements the error interface.
func (e *ExecutionError) Error() string {
	msg := fmt.Sprintf("%s exited with code %d", e.Command, e.ExitCode)
	if e.Stderr != "" {
		msg += "\n" + strings.TrimRight(e.Stderr, "\n")
	}
	return msg
}

// Run executes bin synchronously with inherited stdio so toolchain output is
// visible live. A non-zero exit status yields an *ExecutionError.
func Run(dir, bin string, args []string) error {
	args = ExpandEnv(args)
	logger.Infof("Executing: %s", Display(bin, args))

	cmd := Command(bin, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Run(); err != nil {
		return asExecutionError(bin, err, "")
	}
	return nil
}

// RunOutput executes bin synchronously with stdout and stderr captured.
// On success it returns stdout as text; on non-zero exit the returned
// *ExecutionError carries the exit code and captured stderr.
func RunOutput(dir, bin string, args []string) (string, error) {
	args = ExpandEnv(args)
	logger.Infof("Executing: %s", Display(bin, args))

	var stdout, stderr bytes.Buffer
	cmd := Command(bin, args...)
	cmd.Dir = dir
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return "", asExecutionError(bin, err, stderr.String())
	}
	return stdout.String(), nil
}

// Spawn starts bin asynchronously with inherited stdio and returns the live
// process immediately. The exit status is never inspected here; the caller
// owns the handle (Wait, Kill, signal).
func Spawn(dir, bin string, args []string) (*exec.Cmd, error) {
	args = ExpandEnv(args)
	logger.Infof("Spawning: %s", Display(bin, args))

	cmd := Command(bin, args...)
	cmd.Dir = dir
	cmd.Stdin = os.Stdin
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return nil, err
	}
	return cmd, nil
}

// Display renders a command line for logging.
func Display(bin string, args []string) string {
	if len(args) == 0 {
		return bin
	}
	return bin + " " + strings.Join(args, " ")
}

func asExecutionError(bin string, err error, stderr string) error {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return &ExecutionError{Command: bin, ExitCode: exitErr.ExitCode(), Stderr: stderr}
	}
	// Process never started (binary missing, permission); pass through.
	return err
}
