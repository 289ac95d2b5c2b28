// Package sdk locates the installed .NET SDK binary and probes its version.
// Resolution order: DOTNETCTL_DOTNET environment override, configured path,
// then PATH lookup of "dotnet". The version is probed once per load and
// assumed stable for the process lifetime.
package sdk

import (
	"os"
	"os/exec"
	"strings"

	"github.com/joaompneves/nx-dotnet/internal/config"
	e "github.com/joaompneves/nx-dotnet/pkg/errors"
	"github.com/joaompneves/nx-dotnet/pkg/logger"
)

// testable exec command wrapper
var execCommand = exec.Command

// Info describes the loaded SDK installation.
type Info struct {
	Version string `json:"version"`
	Global  bool   `json:"global"`
}

// LoadedCLI is the resolved toolchain entry point: the binary to invoke and
// what we know about it.
type LoadedCLI struct {
	Command string `json:"command"`
	Info    Info   `json:"info"`
}

// Load resolves the dotnet binary and probes its version.
func Load(cfg *config.Config) (LoadedCLI, error) {
	// Environment variable takes highest priority
	if env := os.Getenv("DOTNETCTL_DOTNET"); env != "" {
		if path, err := exec.LookPath(env); err == nil {
			return load(path, false), nil
		}
		logger.Warnf("DOTNETCTL_DOTNET=%s does not resolve to an executable; falling back", env)
	}

	// Configured preference next
	if cfg != nil && cfg.DotnetPath != "" {
		if path, err := exec.LookPath(cfg.DotnetPath); err == nil {
			return load(path, false), nil
		}
		logger.Warnf("configured dotnet path %s does not resolve; falling back to PATH", cfg.DotnetPath)
	}

	path, err := exec.LookPath("dotnet")
	if err != nil {
		return LoadedCLI{}, e.New(e.ErrSDKNotFound, "No .NET SDK found on PATH").WithCause(err)
	}
	return load(path, true), nil
}

func load(path string, global bool) LoadedCLI {
	return LoadedCLI{
		Command: path,
		Info: Info{
			Version: probeVersion(path),
			Global:  global,
		},
	}
}

// probeVersion runs `dotnet --version` and returns the trimmed output.
func probeVersion(path string) string {
	out, err := execCommand(path, "--version").Output()
	if err != nil {
		return ""
	}
	return strings.TrimSpace(string(out))
}
