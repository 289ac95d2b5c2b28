package dotnet

import (
	"reflect"
	"testing"
)

func TestListTemplatesArgs_VersionBands(t *testing.T) {
	tests := []struct {
		name    string
		version string
		search  string
		want    []string
	}{
		{"pre 6.0 with search", "5.0.100", "web", []string{"new", "web", "--list"}},
		{"pre 6.0 without search", "5.0.100", "", []string{"new", "--list"}},
		{"6.0 band start", "6.0.100", "web", []string{"new", "--list", "web"}},
		{"6.0 band middle", "6.0.402", "web", []string{"new", "--list", "web"}},
		{"7.0 band start", "7.0.100", "web", []string{"new", "list", "web"}},
		{"8.0", "8.0.204", "web", []string{"new", "list", "web"}},
		{"7.0 without search", "7.0.100", "", []string{"new", "list"}},
		{"unparseable falls back to legacy", "not-a-version", "web", []string{"new", "web", "--list"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := listTemplatesArgs(tt.version, tt.search)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("listTemplatesArgs(%q, %q) = %v, want %v", tt.version, tt.search, got, tt.want)
			}
		})
	}
}

func TestRunArgs_WatchRewrite(t *testing.T) {
	got := runArgs("api.csproj", false, Options{"configuration": "Debug"}, "")
	want := []string{"run", "--project", "api.csproj", "--configuration", "Debug"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("runArgs() = %v, want %v", got, want)
	}

	got = runArgs("api.csproj", true, nil, "")
	want = []string{"watch", "--project", "api.csproj", "run"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("runArgs(watch) = %v, want %v", got, want)
	}
}

func TestTestArgs_WatchRewrite(t *testing.T) {
	got := testArgs("tests.csproj", false, nil, "")
	want := []string{"test", "tests.csproj"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("testArgs() = %v, want %v", got, want)
	}

	got = testArgs("tests.csproj", true, Options{"filter": "Category=unit"}, "")
	want = []string{"watch", "--project", "tests.csproj", "test", "--filter", "Category=unit"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("testArgs(watch) = %v, want %v", got, want)
	}
}

func TestPublishArgs(t *testing.T) {
	got := publishArgs("api/api.csproj", Options{"configuration": "Release"}, "Production", `-p:Extra="a b"`)
	want := []string{
		"publish", `"api/api.csproj"`,
		"--configuration", "Release",
		"-p:PublishProfile=Production",
		`-p:Extra="a b"`,
	}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("publishArgs() = %v, want %v", got, want)
	}
}

func TestPublishArgs_NoProfile(t *testing.T) {
	got := publishArgs("api.csproj", nil, "", "")
	want := []string{"publish", `"api.csproj"`}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("publishArgs() = %v, want %v", got, want)
	}
}

func TestAddPackageArgs(t *testing.T) {
	got := addPackageArgs("api.csproj", "Newtonsoft.Json", Options{"version": "13.0.3", "noRestore": true})
	want := []string{"add", "api.csproj", "package", "Newtonsoft.Json", "--version", "13.0.3", "--no-restore"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("addPackageArgs() = %v, want %v", got, want)
	}
}

func TestAddReferenceArgs(t *testing.T) {
	got := addReferenceArgs("host.csproj", "lib.csproj")
	want := []string{"add", "host.csproj", "reference", "lib.csproj"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("addReferenceArgs() = %v, want %v", got, want)
	}
}

func TestInstallToolArgs(t *testing.T) {
	tests := []struct {
		name            string
		version, source string
		want            []string
	}{
		{"bare", "", "", []string{"tool", "install", "dotnet-ef"}},
		{"with version", "7.0.1", "", []string{"tool", "install", "dotnet-ef", "--version", "7.0.1"}},
		{"with source", "", "https://nuget.local", []string{"tool", "install", "dotnet-ef", "--add-source", "https://nuget.local"}},
		{"both", "7.0.1", "https://nuget.local", []string{"tool", "install", "dotnet-ef", "--version", "7.0.1", "--add-source", "https://nuget.local"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := installToolArgs("dotnet-ef", tt.version, tt.source)
			if !reflect.DeepEqual(got, tt.want) {
				t.Fatalf("installToolArgs() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestRestoreAndSlnArgs(t *testing.T) {
	if got := restoreArgs(""); !reflect.DeepEqual(got, []string{"restore"}) {
		t.Fatalf("restoreArgs(\"\") = %v", got)
	}
	if got := restoreArgs("api.csproj"); !reflect.DeepEqual(got, []string{"restore", "api.csproj"}) {
		t.Fatalf("restoreArgs(project) = %v", got)
	}
	if got := restoreToolsArgs(); !reflect.DeepEqual(got, []string{"tool", "restore"}) {
		t.Fatalf("restoreToolsArgs() = %v", got)
	}
	if got := slnAddArgs("app.sln", "api.csproj"); !reflect.DeepEqual(got, []string{"sln", "app.sln", "add", "api.csproj"}) {
		t.Fatalf("slnAddArgs() = %v", got)
	}
	if got := runToolArgs("dotnet-ef", []string{"migrations", "list"}); !reflect.DeepEqual(got, []string{"tool", "run", "dotnet-ef", "migrations", "list"}) {
		t.Fatalf("runToolArgs() = %v", got)
	}
}

func TestNewArgs_FixedOrder(t *testing.T) {
	got := newArgs("webapi", Options{"name": "Api", "dryRun": true}, "--framework net8.0")
	want := []string{"new", "webapi", "--name", "Api", "--dry-run", "--framework", "net8.0"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("newArgs() = %v, want %v", got, want)
	}
}
