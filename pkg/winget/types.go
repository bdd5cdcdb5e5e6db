// pkg/winget/types.go
package winget

import (
	"github.com/rigstack/rig/pkg/execrun"
	"github.com/rs/zerolog"
)

// Config holds configuration for the winget package manager.
type Config struct {
	// Runner executes the winget process. Required.
	Runner execrun.Runner

	// Logger for manager-level log events.
	Logger zerolog.Logger
}

// Result is the outcome of one winget invocation.
type Result struct {
	ExitCode int
	Output   string // combined stdout and stderr
}

// Succeeded reports whether winget exited cleanly.
func (r *Result) Succeeded() bool {
	return r.ExitCode == 0
}

// AlreadySatisfied reports whether the output indicates the package was
// already installed with no applicable update.
func (r *Result) AlreadySatisfied() bool {
	return matchesAlreadySatisfied(r.Output)
}
