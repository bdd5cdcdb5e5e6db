// pkg/apt/manager.go

// Package apt installs Debian packages through apt-get. It only runs on
// a Linux host (in practice a WSL distribution); on any other host its
// declarations are skipped rather than failed.
package apt

import (
	"context"
	"fmt"
	"runtime"

	"github.com/rigstack/rig/pkg/execrun"
	"github.com/rs/zerolog"
)

// Executable is the apt-get CLI entry point.
const Executable = "apt-get"

// Config holds configuration for the apt package manager.
type Config struct {
	// Runner executes the apt-get process. Required.
	Runner execrun.Runner

	// Logger for manager-level log events.
	Logger zerolog.Logger
}

// Result is the outcome of one apt-get invocation.
type Result struct {
	ExitCode int
	Output   string // combined stdout and stderr
}

// Succeeded reports whether apt-get exited cleanly. An apt-get install
// of a package already at its newest version exits 0, so idempotent
// re-runs land here too.
func (r *Result) Succeeded() bool {
	return r.ExitCode == 0
}

// Manager drives apt-get.
type Manager struct {
	runner execrun.Runner
	logger zerolog.Logger
	goos   string
}

// NewManager creates a new apt package manager.
func NewManager(cfg *Config) *Manager {
	if cfg == nil {
		cfg = &Config{}
	}
	runner := cfg.Runner
	if runner == nil {
		runner = execrun.New(cfg.Logger)
	}
	return &Manager{runner: runner, logger: cfg.Logger, goos: runtime.GOOS}
}

// Supported reports whether this host can run apt at all.
func (m *Manager) Supported() bool {
	return m.goos == "linux"
}

// InstallArgs builds the apt-get argument list for one package. A
// concrete version is pinned with the name=version form.
func (m *Manager) InstallArgs(name, version string) []string {
	pkg := name
	if version != "" && version != "latest" {
		pkg = fmt.Sprintf("%s=%s", name, version)
	}
	return []string{"install", "--yes", pkg}
}

// Command renders the full install command line without executing it.
func (m *Manager) Command(name, version string) string {
	return execrun.CommandLine(Executable, m.InstallArgs(name, version)...)
}

// Install runs apt-get for one package. The returned error is reserved
// for failures to start the process.
func (m *Manager) Install(ctx context.Context, name, version string) (*Result, error) {
	m.logger.Debug().Str("package", name).Str("version", version).Msg("invoking apt-get")

	res, err := m.runner.Run(ctx, Executable, m.InstallArgs(name, version)...)
	if err != nil {
		return nil, fmt.Errorf("running apt-get: %w", err)
	}
	return &Result{ExitCode: res.ExitCode, Output: res.Output()}, nil
}
