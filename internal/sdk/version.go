package sdk

import (
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// Compare orders two SDK version strings semantically. It returns -1, 0 or
// +1 like semver.Compare. Unparseable versions order lowest so version-gated
// grammar falls through to the oldest (legacy) branch.
func Compare(a, b string) int {
	return semver.Compare(canonical(a), canonical(b))
}

// Major returns the major component of an SDK version, or 0 when it cannot
// be parsed.
func Major(v string) int {
	c := canonical(v)
	n, err := strconv.Atoi(strings.TrimPrefix(semver.Major(c), "v"))
	if err != nil {
		return 0
	}
	return n
}

// canonical normalizes an SDK version string ("6.0.402", "7.0.100-rc.1") to
// the "v"-prefixed form x/mod/semver expects. Invalid input maps to v0.0.0.
func canonical(v string) string {
	v = strings.TrimSpace(v)
	if v != "" && !strings.HasPrefix(v, "v") {
		v = "v" + v
	}
	if !semver.IsValid(v) {
		return "v0.0.0"
	}
	return v
}
