// pkg/choco/types.go
package choco

import (
	"errors"

	"github.com/rigstack/rig/pkg/execrun"
	"github.com/rs/zerolog"
)

// ErrBootstrapFailed indicates the Chocolatey runtime could not be
// installed.
var ErrBootstrapFailed = errors.New("chocolatey bootstrap failed")

// Config holds configuration for the Chocolatey package manager.
type Config struct {
	// Runner executes the choco and powershell processes. Required.
	Runner execrun.Runner

	// Logger for manager-level log events.
	Logger zerolog.Logger
}

// Result is the outcome of one choco invocation.
type Result struct {
	ExitCode int
	Output   string // combined stdout and stderr
}

// Succeeded reports whether the exit code is one Chocolatey documents
// as a successful install.
func (r *Result) Succeeded() bool {
	for _, code := range successExitCodes {
		if r.ExitCode == code {
			return true
		}
	}
	return false
}
