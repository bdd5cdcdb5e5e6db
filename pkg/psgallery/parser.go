// pkg/psgallery/parser.go
package psgallery

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// ParseVersions extracts the installed-module version strings from the
// one-version-per-line probe output.
func ParseVersions(output string) []string {
	var versions []string
	for _, line := range strings.Split(output, "\n") {
		line = strings.TrimSpace(line)
		if line != "" {
			versions = append(versions, line)
		}
	}
	return versions
}

// Satisfies reports whether any installed version satisfies the
// requested one. "latest" (or empty) is satisfied by any installed
// build. Concrete versions compare semantically where possible, with an
// installed version at or above the requested one counting as
// satisfied; versions that do not parse as semver fall back to exact
// string comparison.
func Satisfies(installed []string, requested string) bool {
	if len(installed) == 0 {
		return false
	}
	if requested == "" || requested == "latest" {
		return true
	}

	want, err := semver.NewVersion(requested)
	if err != nil {
		for _, have := range installed {
			if have == requested {
				return true
			}
		}
		return false
	}

	for _, have := range installed {
		v, err := semver.NewVersion(have)
		if err != nil {
			continue
		}
		if !v.LessThan(want) {
			return true
		}
	}
	return false
}
