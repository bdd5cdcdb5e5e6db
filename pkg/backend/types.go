// pkg/backend/types.go
package backend

import (
	"context"
	"fmt"

	"github.com/rigstack/rig/pkg/execrun"
	"github.com/rs/zerolog"
)

// Type identifies one package-manager backend.
type Type string

const (
	// TypeWinget installs through the Windows Package Manager.
	TypeWinget Type = "winget"
	// TypeChoco installs through Chocolatey, and is also the fallback
	// target when a winget install fails.
	TypeChoco Type = "choco"
	// TypeGallery installs PowerShell modules from the PSGallery.
	TypeGallery Type = "pwsh"
	// TypeVSCode installs Visual Studio Code extensions.
	TypeVSCode Type = "vscode"
	// TypeApt installs through apt inside a WSL distribution.
	TypeApt Type = "apt"
)

// Types lists every recognized backend, in dispatch registration order.
var Types = []Type{TypeWinget, TypeChoco, TypeGallery, TypeVSCode, TypeApt}

// ParseType converts a stack-file pkgmgr value into a Type.
func ParseType(s string) (Type, error) {
	t := Type(s)
	for _, known := range Types {
		if t == known {
			return t, nil
		}
	}
	return "", fmt.Errorf("unknown backend %q", s)
}

// Status is the terminal disposition of one install attempt.
type Status string

const (
	// StatusInstalled means the backend installed the package.
	StatusInstalled Status = "installed"
	// StatusAlreadySatisfied means the desired state already held.
	StatusAlreadySatisfied Status = "already-satisfied"
	// StatusFailed means the backend could not satisfy the declaration.
	StatusFailed Status = "failed"
	// StatusSkipped means the backend cannot run in this host context.
	StatusSkipped Status = "skipped"
	// StatusWouldInstall is the dry-run preview disposition.
	StatusWouldInstall Status = "would-install"
)

// Succeeded reports whether the status counts as success in a run summary.
func (s Status) Succeeded() bool {
	return s == StatusInstalled || s == StatusAlreadySatisfied || s == StatusWouldInstall
}

// VersionLatest is the version token meaning "newest available".
const VersionLatest = "latest"

// InstallRequest describes one package a backend should reconcile.
type InstallRequest struct {
	Name    string // identifier meaningful to the backend
	Version string // concrete version or VersionLatest
	Force   bool   // reinstall even if already satisfied
}

// InstallResult is what a backend reports for one InstallRequest.
// Process-level failures are folded into StatusFailed with the cause in
// Detail; backends do not return errors past this boundary.
type InstallResult struct {
	Status Status
	Detail string
}

// Backend is the interface every package-manager integration implements.
type Backend interface {
	// Name returns the backend's type tag.
	Name() Type

	// Install reconciles one package toward its declared state.
	Install(ctx context.Context, req *InstallRequest) *InstallResult

	// Preview returns the exact command line Install would run, without
	// invoking anything. Used for dry-run reporting.
	Preview(req *InstallRequest) string
}

// Prober answers the host-capability questions that gate some
// backends. *probe.Probe satisfies it.
type Prober interface {
	// CommandAvailable reports whether an executable resolvable by
	// name exists on the search path.
	CommandAvailable(name string) bool

	// PrivilegedSession reports whether the calling process holds
	// elevated rights.
	PrivilegedSession(ctx context.Context) bool
}

// Config carries the collaborators shared by all backend constructors.
type Config struct {
	// Runner executes external package-manager processes.
	Runner execrun.Runner

	// Probe answers host-capability questions (command presence,
	// elevation) that gate some backends.
	Probe Prober

	// Logger receives backend-level log events.
	Logger zerolog.Logger
}

func failedf(format string, args ...interface{}) *InstallResult {
	return &InstallResult{Status: StatusFailed, Detail: fmt.Sprintf(format, args...)}
}
