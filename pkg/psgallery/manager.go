// pkg/psgallery/manager.go
package psgallery

import (
	"context"
	"fmt"
	"strings"

	"github.com/rigstack/rig/pkg/execrun"
	"github.com/rs/zerolog"
)

// Manager installs PowerShell modules from the gallery.
type Manager struct {
	runner execrun.Runner
	logger zerolog.Logger
}

// NewManager creates a new PowerShell Gallery manager.
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

// InstalledVersions queries the versions of a module already available
// on the host, newest first as PowerShell reports them.
func (m *Manager) InstalledVersions(ctx context.Context, name string) ([]string, error) {
	cmd := fmt.Sprintf(
		"Get-Module -ListAvailable -Name '%s' | ForEach-Object { $_.Version.ToString() }",
		escapeSingleQuotes(name))

	res, err := m.runner.Run(ctx, Executable, "-NoProfile", "-NonInteractive", "-Command", cmd)
	if err != nil {
		return nil, fmt.Errorf("querying installed modules: %w", err)
	}
	if res.ExitCode != 0 {
		return nil, fmt.Errorf("querying installed modules: exit code %d: %s", res.ExitCode, res.Output())
	}
	return ParseVersions(res.Stdout), nil
}

// installCommand builds the Install-Module invocation for one module.
func (m *Manager) installCommand(name, version string) string {
	cmd := fmt.Sprintf("Install-Module -Name '%s' -Force -Scope CurrentUser -AllowClobber",
		escapeSingleQuotes(name))
	if version != "" && version != "latest" {
		cmd += fmt.Sprintf(" -RequiredVersion '%s'", escapeSingleQuotes(version))
	}
	return cmd
}

// Command renders the full install command line without executing it.
func (m *Manager) Command(name, version string) string {
	return execrun.CommandLine(Executable, "-NoProfile", "-NonInteractive", "-Command",
		m.installCommand(name, version))
}

// Install runs Install-Module for one module. The returned error is
// reserved for failures to start the process.
func (m *Manager) Install(ctx context.Context, name, version string) (*Result, error) {
	m.logger.Debug().Str("module", name).Str("version", version).Msg("invoking Install-Module")

	res, err := m.runner.Run(ctx, Executable, "-NoProfile", "-NonInteractive", "-Command",
		m.installCommand(name, version))
	if err != nil {
		return nil, fmt.Errorf("running Install-Module: %w", err)
	}
	return &Result{ExitCode: res.ExitCode, Output: res.Output()}, nil
}

func escapeSingleQuotes(s string) string {
	return strings.ReplaceAll(s, "'", "''")
}
