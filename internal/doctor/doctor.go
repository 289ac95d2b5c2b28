// Package doctor provides environment health checks for dotnetctl.
package doctor

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/joaompneves/nx-dotnet/internal/config"
	"github.com/joaompneves/nx-dotnet/internal/sdk"
)

// execCommand enables test stubbing.
var execCommand = exec.Command

// Doctor runs the diagnostic checks and prints a report.
type Doctor struct {
	checks  []HealthCheck
	verbose bool
}

// HealthCheck is a single diagnostic.
type HealthCheck interface {
	Name() string
	Run() CheckResult
}

// CheckResult is the outcome of one check.
type CheckResult struct {
	Status     Status
	Message    string
	Details    string
	FixCommand string
}

// Status classifies a check outcome.
type Status int

const (
	StatusOK Status = iota
	StatusWarning
	StatusError
)

// Report summarizes a doctor run.
type Report struct {
	TotalChecks int
	Passed      int
	Warnings    int
	Errors      int
}

// New creates a Doctor.
func New(verbose bool) *Doctor {
	return &Doctor{verbose: verbose}
}

// Run executes all checks and prints a concise report.
func (d *Doctor) Run() Report {
	d.checks = []HealthCheck{
		&SDKCheck{},
		&VersionGrammarCheck{},
		&FormatToolCheck{},
		&StateDirCheck{},
	}
	var rpt Report
	fmt.Println("\ndotnetctl doctor - environment check")
	fmt.Println(strings.Repeat("=", 44))
	for _, c := range d.checks {
		res := c.Run()
		d.printResult(res)
		rpt.TotalChecks++
		switch res.Status {
		case StatusOK:
			rpt.Passed++
		case StatusWarning:
			rpt.Warnings++
		case StatusError:
			rpt.Errors++
		}
	}
	fmt.Printf("\n%d checks: %d ok, %d warnings, %d errors\n",
		rpt.TotalChecks, rpt.Passed, rpt.Warnings, rpt.Errors)
	return rpt
}

func (d *Doctor) printResult(r CheckResult) {
	icon := "✅"
	switch r.Status {
	case StatusOK:
	case StatusWarning:
		icon = "⚠️ "
	case StatusError:
		icon = "❌"
	}
	fmt.Printf("%s %s\n", icon, r.Message)
	if r.Details != "" && d.verbose {
		fmt.Printf("   %s\n", r.Details)
	}
	if r.FixCommand != "" && r.Status != StatusOK {
		fmt.Printf("   💡 Fix: %s\n", r.FixCommand)
	}
}

// SDKCheck verifies the dotnet binary is present and responding.
type SDKCheck struct{}

func (s *SDKCheck) Name() string { return ".NET SDK" }

func (s *SDKCheck) Run() CheckResult {
	path, err := exec.LookPath("dotnet")
	if err != nil {
		if env := os.Getenv("DOTNETCTL_DOTNET"); env != "" {
			if p, lookErr := exec.LookPath(env); lookErr == nil {
				path = p
			}
		}
		if path == "" {
			return CheckResult{
				Status:     StatusError,
				Message:    "No .NET SDK found",
				Details:    "dotnet is not on PATH and DOTNETCTL_DOTNET is not set",
				FixCommand: "Install from https://dotnet.microsoft.com/download",
			}
		}
	}
	if err := execCommand(path, "--version").Run(); err != nil {
		return CheckResult{
			Status:     StatusError,
			Message:    "dotnet is installed but not responding",
			Details:    fmt.Sprintf("%s --version failed: %v", path, err),
			FixCommand: "dotnet --info",
		}
	}
	return CheckResult{Status: StatusOK, Message: fmt.Sprintf("dotnet found at %s", path)}
}

// VersionGrammarCheck reports which template-listing grammar the installed
// SDK uses. An unparseable version means every version-gated verb falls back
// to the legacy grammar.
type VersionGrammarCheck struct{}

func (v *VersionGrammarCheck) Name() string { return "SDK version" }

func (v *VersionGrammarCheck) Run() CheckResult {
	out, err := execCommand("dotnet", "--version").Output()
	if err != nil {
		return CheckResult{Status: StatusWarning, Message: "Could not probe SDK version"}
	}
	version := strings.TrimSpace(string(out))

	var grammar string
	switch {
	case sdk.Compare(version, "6.0.100") < 0:
		grammar = "legacy (new <term> --list)"
	case sdk.Compare(version, "7.0.100") < 0:
		grammar = "transitional (new --list <term>)"
	default:
		grammar = "current (new list <term>)"
	}
	if sdk.Major(version) == 0 {
		return CheckResult{
			Status:  StatusWarning,
			Message: fmt.Sprintf("SDK version %q is not semantic; using legacy CLI grammar", version),
		}
	}
	return CheckResult{Status: StatusOK, Message: fmt.Sprintf("SDK %s, template listing grammar: %s", version, grammar)}
}

// FormatToolCheck warns when a pre-6.0 SDK has no dotnet-format tool, since
// `dotnet format` only became a bundled verb in 6.0.
type FormatToolCheck struct{}

func (f *FormatToolCheck) Name() string { return "Format tool" }

func (f *FormatToolCheck) Run() CheckResult {
	out, err := execCommand("dotnet", "--version").Output()
	if err == nil && sdk.Major(strings.TrimSpace(string(out))) >= 6 {
		return CheckResult{Status: StatusOK, Message: "dotnet format is bundled with this SDK"}
	}
	if _, err := exec.LookPath("dotnet-format"); err == nil {
		return CheckResult{Status: StatusOK, Message: "dotnet-format tool installed"}
	}
	return CheckResult{
		Status:     StatusWarning,
		Message:    "dotnet-format tool not found",
		Details:    "Formatting on pre-6.0 SDKs needs the standalone tool",
		FixCommand: "dotnet tool install -g dotnet-format",
	}
}

// StateDirCheck verifies the state directory is usable.
type StateDirCheck struct{}

func (s *StateDirCheck) Name() string { return "State directory" }

func (s *StateDirCheck) Run() CheckResult {
	dir := config.StateDir()
	probe := filepath.Join(dir, fmt.Sprintf(".probe-%d", time.Now().UnixNano()))
	if err := os.WriteFile(probe, []byte("ok"), 0o644); err != nil {
		return CheckResult{
			Status:     StatusError,
			Message:    fmt.Sprintf("State directory %s is not writable", dir),
			FixCommand: fmt.Sprintf("chmod u+rwx %s", dir),
		}
	}
	_ = os.Remove(probe)
	return CheckResult{Status: StatusOK, Message: fmt.Sprintf("State directory %s is writable", dir)}
}
