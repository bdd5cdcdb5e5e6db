// pkg/choco/manager.go
package choco

import (
	"context"
	"fmt"

	"github.com/rigstack/rig/pkg/execrun"
	"github.com/rs/zerolog"
)

// Manager drives the Chocolatey CLI.
type Manager struct {
	runner execrun.Runner
	logger zerolog.Logger
}

// NewManager creates a new Chocolatey package manager.
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

// RuntimePresent reports whether the choco executable is on the path.
func (m *Manager) RuntimePresent() bool {
	_, err := m.runner.LookPath(Executable)
	return err == nil
}

// Bootstrap installs the Chocolatey runtime via the official install
// script. The caller is responsible for verifying the session is
// elevated first; without elevation the script fails partway through.
func (m *Manager) Bootstrap(ctx context.Context) error {
	m.logger.Info().Str("url", InstallScriptURL).Msg("bootstrapping chocolatey runtime")

	res, err := m.runner.Run(ctx, "powershell", "-NoProfile", "-ExecutionPolicy", "Bypass",
		"-Command", bootstrapCommand)
	if err != nil {
		return fmt.Errorf("running bootstrap script: %w", err)
	}
	if res.ExitCode != 0 {
		return fmt.Errorf("%w: exit code %d: %s", ErrBootstrapFailed, res.ExitCode, res.Output())
	}
	return nil
}

// InstallArgs builds the choco argument list for one package.
func (m *Manager) InstallArgs(name, version string, force bool) []string {
	args := []string{"install", name, "--yes", "--no-progress"}
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

// Install runs choco for one package and returns the classified result.
// The returned error is reserved for failures to start the process.
func (m *Manager) Install(ctx context.Context, name, version string, force bool) (*Result, error) {
	args := m.InstallArgs(name, version, force)
	m.logger.Debug().Str("package", name).Str("version", version).Msg("invoking choco")

	res, err := m.runner.Run(ctx, Executable, args...)
	if err != nil {
		return nil, fmt.Errorf("running choco: %w", err)
	}

	return &Result{ExitCode: res.ExitCode, Output: res.Output()}, nil
}
