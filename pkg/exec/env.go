package exec

import (
	"os"
	"regexp"
)

var envVarPattern = regexp.MustCompile(`\$([A-Za-z_][A-Za-z0-9_]*)`)

// ExpandEnv substitutes environment variables into argument tokens. Only the
// first $NAME occurrence per token is replaced; an unset variable becomes the
// empty string. Tokens without a reference pass through untouched.
func ExpandEnv(args []string) []string {
	out := make([]string, len(args))
	for i, arg := range args {
		out[i] = expandFirst(arg)
	}
	return out
}

func expandFirst(token string) string {
	loc := envVarPattern.FindStringSubmatchIndex(token)
	if loc == nil {
		return token
	}
	name := token[loc[2]:loc[3]]
	return token[:loc[0]] + os.Getenv(name) + token[loc[1]:]
}
