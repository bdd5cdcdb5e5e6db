// pkg/probe/probe.go

// Package probe answers boolean questions about the host environment.
// Every query degrades to false on error; callers treat false as
// "requirement not met", never as a crash.
package probe

import (
	"context"
	"os"
	"runtime"
	"strconv"
	"strings"

	"github.com/rigstack/rig/pkg/execrun"
	"github.com/rs/zerolog"
)

// Minimum Windows version: 10 2004 (build 19041) or later, which also
// admits any Windows 11 build.
const (
	minOSMajor = 10
	minOSBuild = 19041
)

// Execution policies considered permissive enough to run install scripts.
var acceptablePolicies = []string{"unrestricted", "remotesigned", "bypass"}

const powershellExe = "powershell"

// Config configures a Probe.
type Config struct {
	Runner execrun.Runner
	Logger zerolog.Logger
}

// Probe performs host-capability queries. All methods are pure queries
// with no side effects beyond log events.
type Probe struct {
	runner execrun.Runner
	logger zerolog.Logger
	goos   string
}

// New creates a Probe. A nil cfg or nil cfg.Runner falls back to the
// real process runner.
func New(cfg *Config) *Probe {
	if cfg == nil {
		cfg = &Config{}
	}
	runner := cfg.Runner
	if runner == nil {
		runner = execrun.New(cfg.Logger)
	}
	return &Probe{
		runner: runner,
		logger: cfg.Logger,
		goos:   runtime.GOOS,
	}
}

// CommandAvailable reports whether an executable resolvable by name
// exists on the search path.
func (p *Probe) CommandAvailable(name string) bool {
	_, err := p.runner.LookPath(name)
	available := err == nil
	p.logger.Debug().Str("command", name).Bool("available", available).Msg("probed command")
	return available
}

// PrivilegedSession reports whether the calling process holds elevated
// (administrator-equivalent) rights.
func (p *Probe) PrivilegedSession(ctx context.Context) bool {
	if p.goos != "windows" {
		return os.Geteuid() == 0
	}

	res, err := p.runner.Run(ctx, powershellExe, "-NoProfile", "-NonInteractive", "-Command",
		"([Security.Principal.WindowsPrincipal][Security.Principal.WindowsIdentity]::GetCurrent()).IsInRole([Security.Principal.WindowsBuiltInRole]::Administrator)")
	if err != nil || res.ExitCode != 0 {
		p.logger.Debug().Err(err).Msg("elevation probe failed, assuming not elevated")
		return false
	}
	return strings.EqualFold(strings.TrimSpace(res.Stdout), "True")
}

// PolicyAcceptable reports whether the host's script execution policy is
// one of the allow-listed permissive levels. Hosts without an execution
// policy concept pass by definition.
func (p *Probe) PolicyAcceptable(ctx context.Context) bool {
	if p.goos != "windows" {
		return true
	}

	res, err := p.runner.Run(ctx, powershellExe, "-NoProfile", "-NonInteractive", "-Command",
		"Get-ExecutionPolicy")
	if err != nil || res.ExitCode != 0 {
		p.logger.Debug().Err(err).Msg("execution policy probe failed")
		return false
	}

	policy := strings.ToLower(strings.TrimSpace(res.Stdout))
	for _, ok := range acceptablePolicies {
		if policy == ok {
			return true
		}
	}
	p.logger.Debug().Str("policy", policy).Msg("execution policy too restrictive")
	return false
}

// OSSupported reports whether the OS version meets the minimum supported
// Windows release.
func (p *Probe) OSSupported(ctx context.Context) bool {
	if p.goos != "windows" {
		return false
	}

	res, err := p.runner.Run(ctx, powershellExe, "-NoProfile", "-NonInteractive", "-Command",
		"$v = [System.Environment]::OSVersion.Version; Write-Output $v.Major; Write-Output $v.Build")
	if err != nil || res.ExitCode != 0 {
		p.logger.Debug().Err(err).Msg("OS version probe failed")
		return false
	}

	major, build, ok := parseVersionLines(res.Stdout)
	if !ok {
		p.logger.Debug().Str("output", res.Stdout).Msg("unparsable OS version output")
		return false
	}
	return major >= minOSMajor && build >= minOSBuild
}

// parseVersionLines extracts the major and build numbers from the
// two-line version probe output.
func parseVersionLines(out string) (major, build int, ok bool) {
	var nums []int
	for _, line := range strings.Split(out, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			return 0, 0, false
		}
		nums = append(nums, n)
	}
	if len(nums) != 2 {
		return 0, 0, false
	}
	return nums[0], nums[1], true
}
