// Package exec runs the external toolchain binary. It provides three
// execution modes: blocking with inherited stdio, blocking with captured
// output, and a non-blocking spawn that hands the live process back to the
// caller. Argument tokens get environment-variable substitution before
// dispatch.
package exec

import (
	"os/exec"
)

// Commander creates exec.Cmd instances. The indirection exists so tests can
// substitute mock process creation.
type Commander interface {
	Command(name string, args ...string) *exec.Cmd
}

// DefaultCommander builds commands with the standard library.
type DefaultCommander struct{}

// Command creates an exec.Cmd via exec.Command.
func (DefaultCommander) Command(name string, args ...string) *exec.Cmd {
	return exec.Command(name, args...)
}

// Default is the Commander used by Run, RunOutput and Spawn. Tests may
// override it.
var Default Commander = DefaultCommander{}

// Command delegates to the Default commander.
func Command(name string, args ...string) *exec.Cmd {
	return Default.Command(name, args...)
}
