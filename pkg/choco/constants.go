// pkg/choco/constants.go
package choco

// Executable is the Chocolatey CLI entry point.
const Executable = "choco"

// InstallScriptURL is the official Chocolatey bootstrap script.
const InstallScriptURL = "https://community.chocolatey.org/install.ps1"

// bootstrapCommand is the PowerShell one-liner that installs the
// Chocolatey runtime itself. It needs an elevated session.
const bootstrapCommand = "Set-ExecutionPolicy Bypass -Scope Process -Force; " +
	"[System.Net.ServicePointManager]::SecurityProtocol = [System.Net.ServicePointManager]::SecurityProtocol -bor 3072; " +
	"iex ((New-Object System.Net.WebClient).DownloadString('" + InstallScriptURL + "'))"

// Exit codes Chocolatey documents as successful installs. 1641 and 3010
// are MSI codes for "success, reboot initiated/required".
var successExitCodes = []int{0, 1641, 3010}
