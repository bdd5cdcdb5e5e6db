// pkg/vscodeext/manager.go

// Package vscodeext installs Visual Studio Code extensions through the
// editor's command-line entry point.
package vscodeext

import (
	"context"
	"fmt"

	"github.com/rigstack/rig/pkg/execrun"
	"github.com/rs/zerolog"
)

// Executable is the VS Code command-line entry point.
const Executable = "code"

// Config holds configuration for the extension installer.
type Config struct {
	// Runner executes the code process. Required.
	Runner execrun.Runner

	// Logger for manager-level log events.
	Logger zerolog.Logger
}

// Result is the outcome of one extension install.
type Result struct {
	ExitCode int
	Output   string // combined stdout and stderr
}

// Succeeded reports whether the install completed cleanly.
func (r *Result) Succeeded() bool {
	return r.ExitCode == 0
}

// Manager drives the code CLI.
type Manager struct {
	runner execrun.Runner
	logger zerolog.Logger
}

// NewManager creates a new extension installer.
func NewManager(cfg *Config) *Manager {
	if cfg == nil {
		cfg = &Config{}
	}
	runner := cfg.Runner
	if runner == nil {
		runner = execrun.New(cfg.Logger)
	}
	return &Manager{runner: runner, logger: cfg.Logger}
}

// InstallArgs builds the code argument list for one extension. The code
// CLI has no version pinning; it always installs the newest build, and
// force re-triggers installation of an extension already present.
func (m *Manager) InstallArgs(id string, force bool) []string {
	args := []string{"--install-extension", id}
	if force {
		args = append(args, "--force")
	}
	return args
}

// Command renders the full install command line without executing it.
func (m *Manager) Command(id string, force bool) string {
	return execrun.CommandLine(Executable, m.InstallArgs(id, force)...)
}

// Install runs the code CLI for one extension. The returned error is
// reserved for failures to start the process.
func (m *Manager) Install(ctx context.Context, id string, force bool) (*Result, error) {
	m.logger.Debug().Str("extension", id).Msg("invoking code --install-extension")

	res, err := m.runner.Run(ctx, Executable, m.InstallArgs(id, force)...)
	if err != nil {
		return nil, fmt.Errorf("running code: %w", err)
	}
	return &Result{ExitCode: res.ExitCode, Output: res.Output()}, nil
}
