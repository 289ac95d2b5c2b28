// Package dotnet assembles and dispatches .NET CLI invocations. Logical
// option names are renamed to the toolchain's flag spellings through static
// per-verb key maps, flattened into an argument vector, and executed through
// pkg/exec. The only version-sensitive grammar (template listing, format
// splitting) is gated on the SDK version probed at client construction.
package dotnet

import (
	"fmt"
	"sort"
	"strings"
)

// Options maps logical option names to values. Supported value kinds are
// string, bool and int; nil entries are ignored. An Options value is built
// per call and never mutated by this package.
type Options map[string]interface{}

type keyMapping struct {
	Key  string // logical option name
	Flag string // toolchain flag token
}

// KeyMap is an ordered, immutable rename table from logical option names to
// toolchain flag spellings. Declaration order is the flag emission order.
type KeyMap []keyMapping

// RenameKeys returns a copy of opts with every key present in km renamed to
// its flag token. Keys absent from km pass through unchanged.
func RenameKeys(opts Options, km KeyMap) Options {
	out := make(Options, len(opts))
	for k, v := range opts {
		out[mappedFlag(k, km)] = v
	}
	return out
}

func mappedFlag(key string, km KeyMap) string {
	for _, m := range km {
		if m.Key == key {
			return m.Flag
		}
	}
	return key
}

// Flatten serializes opts into command-line tokens. Keys covered by km are
// emitted in km declaration order; remaining keys follow in sorted order.
// Boolean true emits the flag alone, boolean false and nil emit nothing,
// and other values emit the flag followed by the value as a separate token.
func Flatten(opts Options, km KeyMap) []string {
	var args []string
	emitted := make(map[string]bool, len(opts))
	for _, m := range km {
		if v, ok := opts[m.Key]; ok {
			args = append(args, optionTokens(m.Flag, v)...)
			emitted[m.Key] = true
		}
	}

	rest := make([]string, 0, len(opts))
	for k := range opts {
		if !emitted[k] {
			rest = append(rest, k)
		}
	}
	sort.Strings(rest)
	for _, k := range rest {
		args = append(args, optionTokens(flagToken(k), opts[k])...)
	}
	return args
}

// flagToken turns a bare logical name into a long flag; tokens already
// flag-shaped pass through.
func flagToken(key string) string {
	if strings.HasPrefix(key, "-") {
		return key
	}
	return "--" + key
}

func optionTokens(flag string, value interface{}) []string {
	switch v := value.(type) {
	case nil:
		return nil
	case bool:
		if v {
			return []string{flag}
		}
		return nil
	case string:
		return []string{flag, v}
	default:
		return []string{flag, fmt.Sprint(v)}
	}
}
