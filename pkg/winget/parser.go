// pkg/winget/parser.go
package winget

import "strings"

// matchesAlreadySatisfied scans winget output for the phrases that mean
// the package is already present at an acceptable version.
func matchesAlreadySatisfied(output string) bool {
	lowered := strings.ToLower(output)
	for _, phrase := range alreadySatisfiedPhrases {
		if strings.Contains(lowered, phrase) {
			return true
		}
	}
	return false
}
