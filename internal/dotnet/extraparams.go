package dotnet

import (
	"regexp"
	"strings"
)

// extraParamPattern matches either a non-space run ending in a double-quoted
// group (--flag="quoted value") or a maximal non-space run. Embedded-quote
// escaping is unsupported; a malformed string tokenizes silently wrong and
// is the caller's responsibility.
var extraParamPattern = regexp.MustCompile(`\S+"[^"]*"|\S+`)

// TokenizeExtraParams splits a free-form argument string into tokens.
// Quoted segments keep their quotes and their flag prefix:
//
//	--flag="a b c" --other=x  ->  [--flag="a b c", --other=x]
func TokenizeExtraParams(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	return extraParamPattern.FindAllString(raw, -1)
}
