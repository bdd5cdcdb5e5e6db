// pkg/winget/constants.go
package winget

// Executable is the winget CLI entry point.
const Executable = "winget"

// Output phrases that mean the declared state already holds. winget
// reports these conditions with a non-zero exit status (for example
// APPINSTALLER_CLI_ERROR_UPDATE_NOT_APPLICABLE), so classification goes
// by output text rather than exit code.
var alreadySatisfiedPhrases = []string{
	"already installed",
	"no applicable update",
	"no available upgrade",
}
