package sdk

import (
	"os/exec"
	"testing"

	"github.com/joaompneves/nx-dotnet/internal/config"
)

func stubVersion(t *testing.T, version string) {
	t.Helper()
	original := execCommand
	execCommand = func(name string, args ...string) *exec.Cmd {
		return exec.Command("sh", "-c", "echo "+version)
	}
	t.Cleanup(func() { execCommand = original })
}

func TestLoad_EnvOverrideWins(t *testing.T) {
	stubVersion(t, "8.0.100")
	t.Setenv("DOTNETCTL_DOTNET", "sh")

	cli, err := Load(&config.Config{DotnetPath: "also-ignored"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cli.Info.Global {
		t.Fatal("env override must not be marked global")
	}
	if cli.Info.Version != "8.0.100" {
		t.Fatalf("Version = %q, want %q", cli.Info.Version, "8.0.100")
	}
}

func TestLoad_ConfiguredPath(t *testing.T) {
	stubVersion(t, "6.0.402")
	t.Setenv("DOTNETCTL_DOTNET", "")

	cli, err := Load(&config.Config{DotnetPath: "sh"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cli.Info.Global {
		t.Fatal("configured path must not be marked global")
	}
	if cli.Info.Version != "6.0.402" {
		t.Fatalf("Version = %q, want %q", cli.Info.Version, "6.0.402")
	}
}

func TestLoad_BadEnvFallsThrough(t *testing.T) {
	stubVersion(t, "7.0.100")
	t.Setenv("DOTNETCTL_DOTNET", "no-such-binary-anywhere-xyz")

	cli, err := Load(&config.Config{DotnetPath: "sh"})
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cli.Info.Version != "7.0.100" {
		t.Fatalf("Version = %q, want %q", cli.Info.Version, "7.0.100")
	}
}

func TestProbeVersion_FailureYieldsEmpty(t *testing.T) {
	original := execCommand
	execCommand = func(name string, args ...string) *exec.Cmd {
		return exec.Command("sh", "-c", "exit 1")
	}
	t.Cleanup(func() { execCommand = original })

	if got := probeVersion("dotnet"); got != "" {
		t.Fatalf("probeVersion() = %q, want empty", got)
	}
}
