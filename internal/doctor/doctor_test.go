package doctor

import (
	"os/exec"
	"strings"
	"testing"
)

func stubDotnetVersion(t *testing.T, version string) {
	t.Helper()
	original := execCommand
	execCommand = func(name string, args ...string) *exec.Cmd {
		return exec.Command("sh", "-c", "echo "+version)
	}
	t.Cleanup(func() { execCommand = original })
}

func TestVersionGrammarCheck(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"5.0.400", "legacy"},
		{"6.0.402", "transitional"},
		{"7.0.100", "current"},
		{"8.0.100", "current"},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			stubDotnetVersion(t, tt.version)
			res := (&VersionGrammarCheck{}).Run()
			if res.Status != StatusOK {
				t.Fatalf("status = %v, want OK", res.Status)
			}
			if !strings.Contains(res.Message, tt.want) {
				t.Fatalf("message %q does not mention %q grammar", res.Message, tt.want)
			}
		})
	}
}

func TestVersionGrammarCheck_UnparseableWarns(t *testing.T) {
	stubDotnetVersion(t, "weird-build-string")
	res := (&VersionGrammarCheck{}).Run()
	if res.Status != StatusWarning {
		t.Fatalf("status = %v, want warning for unparseable version", res.Status)
	}
}

func TestFormatToolCheck_BundledOnModernSDK(t *testing.T) {
	stubDotnetVersion(t, "6.0.100")
	res := (&FormatToolCheck{}).Run()
	if res.Status != StatusOK || !strings.Contains(res.Message, "bundled") {
		t.Fatalf("result = %+v, want bundled OK", res)
	}
}

func TestStateDirCheck(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	res := (&StateDirCheck{}).Run()
	if res.Status != StatusOK {
		t.Fatalf("result = %+v, want OK for fresh state dir", res)
	}
}

func TestDoctorRun_CountsResults(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	stubDotnetVersion(t, "8.0.100")

	rpt := New(false).Run()
	if rpt.TotalChecks != 4 {
		t.Fatalf("TotalChecks = %d, want 4", rpt.TotalChecks)
	}
	if rpt.Passed+rpt.Warnings+rpt.Errors != rpt.TotalChecks {
		t.Fatalf("report does not add up: %+v", rpt)
	}
}
