// Package hintline is the module root; the overlay engine lives in package
// hint and a reference buffer in package buffer.
package hintline

import (
	_ "embed"
	"regexp"
	"strings"
)

// Name is the library name used in banners and logs.
const Name = "hintline"

var semverRE = regexp.MustCompile(`^(0|[1-9]\d*)\.(0|[1-9]\d*)\.(0|[1-9]\d*)(?:-[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?(?:\+[0-9A-Za-z-]+(?:\.[0-9A-Za-z-]+)*)?$`)

//go:embed VERSION
var embeddedVersion string

// Version returns the library version in SemVer form, without a leading "v".
func Version() string {
	return strings.TrimSpace(embeddedVersion)
}

// VersionTag returns Version as a git tag ("v" + Version).
func VersionTag() string {
	return "v" + Version()
}

// Banner returns "hintline vX.Y.Z".
func Banner() string {
	return Name + " " + VersionTag()
}

// IsSemver reports whether v is a SemVer 2.0.0 version without a "v" prefix.
func IsSemver(v string) bool {
	return semverRE.MatchString(strings.TrimSpace(v))
}
