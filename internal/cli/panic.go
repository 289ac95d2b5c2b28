package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/joaompneves/nx-dotnet/pkg/terminal"
	"github.com/joaompneves/nx-dotnet/pkg/version"
)

// PanicHandler converts panics into a crash report and a friendly message.
type PanicHandler struct{}

// Recover catches a panic in the surrounding scope.
func (p *PanicHandler) Recover() {
	if r := recover(); r != nil {
		p.handlePanic(r)
	}
}

func (p *PanicHandler) handlePanic(r interface{}) {
	var message string
	switch v := r.(type) {
	case string:
		message = v
	case error:
		message = v.Error()
	default:
		message = fmt.Sprintf("%v", r)
	}

	report := p.saveCrashReport(message, string(debug.Stack()))

	fmt.Println()
	fmt.Printf("💥 %s\n", terminal.Error(terminal.BoldText("dotnetctl crashed unexpectedly")))
	fmt.Println()
	fmt.Printf("Error: %s\n", message)
	if report != "" {
		fmt.Printf("\nA crash report has been saved to:\n%s\n", report)
	}
	fmt.Println("\nPlease report this issue at:")
	fmt.Println(terminal.Info("https://github.com/joaompneves/nx-dotnet/issues"))

	os.Exit(2)
}

func (p *PanicHandler) saveCrashReport(message, stack string) string {
	dir := filepath.Join(os.Getenv("HOME"), ".dotnetctl", "crashes")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return ""
	}
	fp := filepath.Join(dir, fmt.Sprintf("crash-%s.txt", time.Now().Format("2006-01-02-15-04-05")))
	report := fmt.Sprintf(`dotnetctl Crash Report
======================
Time: %s
Version: %s
OS: %s
Arch: %s

Error:
%s

Stack Trace:
%s

Environment:
%s
`, time.Now().Format(time.RFC3339), version.Version, runtime.GOOS, runtime.GOARCH, message, stack, environmentInfo())
	if err := os.WriteFile(fp, []byte(report), 0o644); err != nil {
		return ""
	}
	return fp
}

func environmentInfo() string {
	var info []string
	for _, key := range []string{"DOTNETCTL_DOTNET", "DOTNETCTL_DEBUG", "DOTNET_ROOT", "PATH"} {
		if v := os.Getenv(key); v != "" {
			info = append(info, fmt.Sprintf("%s=%s", key, v))
		}
	}
	return strings.Join(info, "\n")
}
