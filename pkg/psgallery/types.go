// pkg/psgallery/types.go
package psgallery

import (
	"github.com/rigstack/rig/pkg/execrun"
	"github.com/rs/zerolog"
)

// Executable is the PowerShell host used for gallery operations.
const Executable = "powershell"

// Config holds configuration for the PowerShell Gallery manager.
type Config struct {
	// Runner executes the powershell process. Required.
	Runner execrun.Runner

	// Logger for manager-level log events.
	Logger zerolog.Logger
}

// Result is the outcome of one Install-Module invocation.
type Result struct {
	ExitCode int
	Output   string // combined stdout and stderr
}

// Succeeded reports whether the install completed cleanly.
func (r *Result) Succeeded() bool {
	return r.ExitCode == 0
}
