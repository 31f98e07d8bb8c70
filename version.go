// Package syllable is the root of the phonetic composition engine.
//
// The engine lives in subpackages: tokenlist holds the text being composed,
// candidate narrows and pages dictionary candidates, dict defines the
// dictionary contract and composer ties them into an editing session.
package syllable

import (
	_ "embed"
	"regexp"
	"strconv"
	"strings"
)

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-([0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*))?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Semver is a parsed SemVer 2.0.0 version. Build metadata is dropped.
type Semver struct {
	Major, Minor, Patch int
	Pre                 string
}

// Version returns the embedded version string (without `v`).
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version in git tag form.
func VersionTag() string {
	return "v" + Version()
}

// ParseSemver parses v, reporting false when it is not valid SemVer.
func ParseSemver(v string) (Semver, bool) {
	m := semverRE.FindStringSubmatch(strings.TrimSpace(v))
	if m == nil {
		return Semver{}, false
	}
	// The regexp guarantees decimal digits without leading zeros.
	major, _ := strconv.Atoi(m[1])
	minor, _ := strconv.Atoi(m[2])
	patch, _ := strconv.Atoi(m[3])
	return Semver{Major: major, Minor: minor, Patch: patch, Pre: m[4]}, true
}

// Info returns the parsed embedded version.
func Info() Semver {
	s, _ := ParseSemver(Version())
	return s
}
