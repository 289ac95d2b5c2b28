package commands

import (
	"reflect"
	"testing"

	"github.com/joaompneves/nx-dotnet/internal/config"
	"github.com/joaompneves/nx-dotnet/internal/dotnet"
)

func TestParseArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want parsed
	}{
		{
			name: "positionals and value flag",
			args: []string{"api.csproj", "--configuration", "Release"},
			want: parsed{
				positionals: []string{"api.csproj"},
				opts:        dotnet.Options{"configuration": "Release"},
			},
		},
		{
			name: "boolean flag does not swallow positional",
			args: []string{"--no-restore", "api.csproj"},
			want: parsed{
				positionals: []string{"api.csproj"},
				opts:        dotnet.Options{"noRestore": true},
			},
		},
		{
			name: "equals form with kebab conversion",
			args: []string{"--fix-whitespace=false", "--output=dist"},
			want: parsed{
				opts: dotnet.Options{"fixWhitespace": false, "output": "dist"},
			},
		},
		{
			name: "literal true coerced",
			args: []string{"--self-contained=true"},
			want: parsed{
				opts: dotnet.Options{"selfContained": true},
			},
		},
		{
			name: "double dash collects extra params verbatim",
			args: []string{"api.csproj", "--", "-p:Version=1.2.3", `--msg="a b"`},
			want: parsed{
				positionals: []string{"api.csproj"},
				opts:        dotnet.Options{},
				extra:       `-p:Version=1.2.3 --msg="a b"`,
			},
		},
		{
			name: "trailing bare flag is boolean",
			args: []string{"--watch"},
			want: parsed{
				opts: dotnet.Options{"watch": true},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := parseArgs(tt.args)
			if !reflect.DeepEqual(got.positionals, tt.want.positionals) {
				t.Errorf("positionals = %v, want %v", got.positionals, tt.want.positionals)
			}
			wantOpts := tt.want.opts
			if wantOpts == nil {
				wantOpts = dotnet.Options{}
			}
			if !reflect.DeepEqual(got.opts, wantOpts) {
				t.Errorf("opts = %v, want %v", got.opts, wantOpts)
			}
			if got.extra != tt.want.extra {
				t.Errorf("extra = %q, want %q", got.extra, tt.want.extra)
			}
		})
	}
}

func TestParsedPopHelpers(t *testing.T) {
	p := parseArgs([]string{"--watch", "--profile", "Production"})
	if !p.popBool("watch") {
		t.Fatal("popBool(watch) = false")
	}
	if p.popBool("watch") {
		t.Fatal("popBool(watch) did not remove the option")
	}
	if got := p.popString("profile"); got != "Production" {
		t.Fatalf("popString(profile) = %q", got)
	}
	if len(p.opts) != 0 {
		t.Fatalf("leftover opts: %v", p.opts)
	}
}

func TestCamelCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"no-restore", "noRestore"},
		{"fix-whitespace", "fixWhitespace"},
		{"configuration", "configuration"},
		{"self-contained", "selfContained"},
	}
	for _, tt := range tests {
		if got := camelCase(tt.in); got != tt.want {
			t.Errorf("camelCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestApplyVerbosity(t *testing.T) {
	cfg := &config.Config{Verbosity: "minimal"}

	opts := dotnet.Options{}
	applyVerbosity(cfg, opts)
	if opts["verbosity"] != "minimal" {
		t.Fatalf("default verbosity not applied: %v", opts)
	}

	opts = dotnet.Options{"verbosity": "diag"}
	applyVerbosity(cfg, opts)
	if opts["verbosity"] != "diag" {
		t.Fatal("explicit verbosity overridden")
	}

	opts = dotnet.Options{}
	applyVerbosity(&config.Config{}, opts)
	if _, ok := opts["verbosity"]; ok {
		t.Fatal("verbosity applied without configured default")
	}
}
