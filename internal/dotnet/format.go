package dotnet

import (
	"github.com/joaompneves/nx-dotnet/internal/sdk"
)

// dotnet format 6.0 dropped the --fix-whitespace/--fix-style/--fix-analyzers
// flags in favor of the whitespace/style/analyzers sub-verbs. When the
// installed SDK is 6.0+ and the caller still passes the legacy flags, the
// single call is split into one invocation per selected sub-verb; otherwise
// the unified pre-6.0 grammar is used.

var legacyFixFlags = []struct {
	key  string
	verb string
}{
	{"fixWhitespace", "whitespace"},
	{"fixStyle", "style"},
	{"fixAnalyzers", "analyzers"},
}

// severity flags only exist on the style and analyzers sub-verbs
var severityVerbs = map[string]bool{"style": true, "analyzers": true}

// formatInvocations assembles the argument vectors for a format request.
// It returns one or more complete invocations to run in order.
func formatInvocations(version, project string, opts Options, extra string, forceToolUsage bool) [][]string {
	prefix := []string{"format"}
	if forceToolUsage {
		prefix = []string{"tool", "run", "dotnet-format", "--"}
	}

	if sdk.Major(version) >= 6 && anyLegacyFixFlagSet(opts) {
		return splitFormatInvocations(prefix, project, opts, extra)
	}

	args := append(append([]string{}, prefix...), project)
	args = append(args, Flatten(opts, FormatKeyMap)...)
	args = append(args, TokenizeExtraParams(extra)...)
	return [][]string{args}
}

func anyLegacyFixFlagSet(opts Options) bool {
	for _, f := range legacyFixFlags {
		if _, ok := opts[f.key]; ok {
			return true
		}
	}
	return false
}

func splitFormatInvocations(prefix []string, project string, opts Options, extra string) [][]string {
	shared := make(Options, len(opts))
	for k, v := range opts {
		shared[k] = v
	}
	for _, f := range legacyFixFlags {
		delete(shared, f.key)
	}

	var invocations [][]string
	for _, f := range legacyFixFlags {
		v, ok := opts[f.key]
		if !ok || v == false {
			continue
		}
		args := append(append([]string{}, prefix...), f.verb, project)
		args = append(args, Flatten(shared, FormatKeyMap)...)
		// A string value on the legacy flag selects the fix severity.
		if s, isString := v.(string); isString && severityVerbs[f.verb] {
			args = append(args, "--severity", s)
		}
		args = append(args, TokenizeExtraParams(extra)...)
		invocations = append(invocations, args)
	}
	return invocations
}
