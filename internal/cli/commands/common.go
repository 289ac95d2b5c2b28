// Package commands implements the dotnetctl command handlers. Each handler
// turns argv into a typed request against the dotnet client.
package commands

import (
	"strings"

	"github.com/joaompneves/nx-dotnet/internal/config"
	"github.com/joaompneves/nx-dotnet/internal/dotnet"
	"github.com/joaompneves/nx-dotnet/internal/sdk"
	e "github.com/joaompneves/nx-dotnet/pkg/errors"
)

// loadClient resolves the SDK and wraps it in a client.
func loadClient(cfg *config.Config) (*dotnet.Client, error) {
	cli, err := sdk.Load(cfg)
	if err != nil {
		return nil, err
	}
	return dotnet.NewClient(cli), nil
}

// parsed is the uniform decomposition of a handler's argv.
type parsed struct {
	positionals []string
	opts        dotnet.Options
	extra       string // raw string following "--", tokenized later
}

// booleanFlags are long options that never consume a following value, so a
// positional after them is not swallowed. Value-taking spellings still work
// via --flag=value.
var booleanFlags = map[string]bool{
	"watch":             true,
	"background":        true,
	"force":             true,
	"force-tool":        true,
	"dry-run":           true,
	"check":             true,
	"blame":             true,
	"list-tests":        true,
	"prerelease":        true,
	"self-contained":    true,
	"include-generated": true,
	"no-build":          true,
	"no-restore":        true,
	"no-incremental":    true,
	"no-dependencies":   true,
	"no-launch-profile": true,
	"no-update-check":   true,
	"nologo":            true,
}

// parseArgs splits argv into positionals, generic long options, and the raw
// extra-parameter string following "--". Long options become logical names:
// `--no-restore` -> noRestore, `--name=Foo` -> name: "Foo". A flag with no
// value is boolean true; literal true/false values become booleans so
// explicit negation (e.g. --fix-whitespace=false) survives.
func parseArgs(args []string) parsed {
	p := parsed{opts: dotnet.Options{}}
	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			p.extra = strings.Join(args[i+1:], " ")
			break
		}
		if !strings.HasPrefix(arg, "--") {
			p.positionals = append(p.positionals, arg)
			continue
		}
		name := strings.TrimPrefix(arg, "--")
		if eq := strings.Index(name, "="); eq >= 0 {
			p.opts[camelCase(name[:eq])] = coerce(name[eq+1:])
			continue
		}
		// Bare flag; a following non-flag token is its value unless the
		// flag is known to be boolean.
		if !booleanFlags[name] && i+1 < len(args) && args[i+1] != "--" && !strings.HasPrefix(args[i+1], "-") {
			p.opts[camelCase(name)] = coerce(args[i+1])
			i++
			continue
		}
		p.opts[camelCase(name)] = true
	}
	return p
}

// popString removes a handler-specific option and returns its string value.
func (p *parsed) popString(key string) string {
	v, ok := p.opts[key]
	if !ok {
		return ""
	}
	delete(p.opts, key)
	s, _ := v.(string)
	return s
}

// popBool removes a handler-specific option and returns its truthiness.
func (p *parsed) popBool(key string) bool {
	v, ok := p.opts[key]
	if !ok {
		return false
	}
	delete(p.opts, key)
	b, _ := v.(bool)
	return b
}

func coerce(value string) interface{} {
	switch value {
	case "true":
		return true
	case "false":
		return false
	default:
		return value
	}
}

// camelCase converts kebab-case flag names to the logical option names the
// key maps use: no-restore -> noRestore.
func camelCase(kebab string) string {
	parts := strings.Split(kebab, "-")
	for i := 1; i < len(parts); i++ {
		if parts[i] != "" {
			parts[i] = strings.ToUpper(parts[i][:1]) + parts[i][1:]
		}
	}
	return strings.Join(parts, "")
}

// applyVerbosity fills in the configured default verbosity when the caller
// did not pass one.
func applyVerbosity(cfg *config.Config, opts dotnet.Options) {
	if cfg == nil || cfg.Verbosity == "" {
		return
	}
	if _, ok := opts["verbosity"]; !ok {
		opts["verbosity"] = cfg.Verbosity
	}
}

func usageError(message, usage string) error {
	return e.New(e.ErrUsage, message).WithSuggestion("Usage: " + usage)
}
