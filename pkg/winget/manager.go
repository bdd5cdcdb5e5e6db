// pkg/winget/manager.go
package winget

import (
	"context"
	"fmt"

	"github.com/rigstack/rig/pkg/execrun"
	"github.com/rs/zerolog"
)

// Manager drives the winget CLI.
type Manager struct {
	runner execrun.Runner
	logger zerolog.Logger
}

// NewManager creates a new winget package manager.
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

// InstallArgs builds the winget argument list for one package. An empty
// or "latest" version installs the newest available build.
func (m *Manager) InstallArgs(name, version string, force bool) []string {
	args := []string{
		"install",
		"--id", name,
		"--exact",
		"--silent",
		"--accept-package-agreements",
		"--accept-source-agreements",
	}
	if version != "" && version != "latest" {
		args = append(args, "--version", version)
	}
	if force {
		args = append(args, "--force")
	}
	return args
}

// Command renders the full install command line without executing it.
func (m *Manager) Command(name, version string, force bool) string {
	return execrun.CommandLine(Executable, m.InstallArgs(name, version, force)...)
}

// Install runs winget for one package and returns the classified result.
// The returned error is reserved for failures to start the process.
func (m *Manager) Install(ctx context.Context, name, version string, force bool) (*Result, error) {
	args := m.InstallArgs(name, version, force)
	m.logger.Debug().Str("package", name).Str("version", version).Msg("invoking winget")

	res, err := m.runner.Run(ctx, Executable, args...)
	if err != nil {
		return nil, fmt.Errorf("running winget: %w", err)
	}

	return &Result{ExitCode: res.ExitCode, Output: res.Output()}, nil
}
