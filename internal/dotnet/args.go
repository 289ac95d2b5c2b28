package dotnet

import (
	"fmt"

	"github.com/joaompneves/nx-dotnet/internal/sdk"
)

// Argument assembly for each toolchain verb. Every assembler produces
// [verb-specific positionals] + [mapped options] + [extra tokens], in that
// fixed order.

func newArgs(template string, opts Options, extra string) []string {
	args := []string{"new", template}
	args = append(args, Flatten(opts, NewKeyMap)...)
	return append(args, TokenizeExtraParams(extra)...)
}

// listTemplatesArgs reproduces the toolchain's own grammar change for
// template listing across SDK releases:
//
//	< 6.0.100           new [term] --list
//	6.0.100 .. 7.0.100  new --list [term]
//	>= 7.0.100          new list [term]
func listTemplatesArgs(version, search string) []string {
	switch {
	case sdk.Compare(version, "6.0.100") < 0:
		args := []string{"new"}
		if search != "" {
			args = append(args, search)
		}
		return append(args, "--list")
	case sdk.Compare(version, "7.0.100") < 0:
		args := []string{"new", "--list"}
		if search != "" {
			args = append(args, search)
		}
		return args
	default:
		args := []string{"new", "list"}
		if search != "" {
			args = append(args, search)
		}
		return args
	}
}

func buildArgs(project string, opts Options, extra string) []string {
	args := []string{"build", project}
	args = append(args, Flatten(opts, BuildKeyMap)...)
	return append(args, TokenizeExtraParams(extra)...)
}

// runArgs and testArgs share the watch rewrite: under watch mode the verb
// moves behind `watch --project <project>`.
func runArgs(project string, watch bool, opts Options, extra string) []string {
	var args []string
	if watch {
		args = []string{"watch", "--project", project, "run"}
	} else {
		args = []string{"run", "--project", project}
	}
	args = append(args, Flatten(opts, RunKeyMap)...)
	return append(args, TokenizeExtraParams(extra)...)
}

func testArgs(project string, watch bool, opts Options, extra string) []string {
	var args []string
	if watch {
		args = []string{"watch", "--project", project, "test"}
	} else {
		args = []string{"test", project}
	}
	args = append(args, Flatten(opts, TestKeyMap)...)
	return append(args, TokenizeExtraParams(extra)...)
}

// publishArgs always quotes the project path; a publish profile is appended
// as a raw MSBuild property after the mapped options, before extra tokens.
func publishArgs(project string, opts Options, publishProfile, extra string) []string {
	args := []string{"publish", fmt.Sprintf("%q", project)}
	args = append(args, Flatten(opts, PublishKeyMap)...)
	if publishProfile != "" {
		args = append(args, "-p:PublishProfile="+publishProfile)
	}
	return append(args, TokenizeExtraParams(extra)...)
}

func addPackageArgs(project, pkg string, opts Options) []string {
	args := []string{"add", project, "package", pkg}
	return append(args, Flatten(opts, AddPackageKeyMap)...)
}

func addReferenceArgs(host, target string) []string {
	return []string{"add", host, "reference", target}
}

func installToolArgs(tool, version, source string) []string {
	args := []string{"tool", "install", tool}
	if version != "" {
		args = append(args, "--version", version)
	}
	if source != "" {
		args = append(args, "--add-source", source)
	}
	return args
}

func runToolArgs(tool string, toolArgs []string) []string {
	args := []string{"tool", "run", tool}
	return append(args, toolArgs...)
}

func restoreArgs(project string) []string {
	if project == "" {
		return []string{"restore"}
	}
	return []string{"restore", project}
}

func restoreToolsArgs() []string {
	return []string{"tool", "restore"}
}

func slnAddArgs(solution, project string) []string {
	return []string{"sln", solution, "add", project}
}
