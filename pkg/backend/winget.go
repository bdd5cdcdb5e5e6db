// pkg/backend/winget.go
package backend

import (
	"context"

	"github.com/rigstack/rig/pkg/winget"
)

// WingetBackend is the primary manager. Failed installs are eligible for
// a single fallback hop to Chocolatey, orchestrated by the dispatcher.
type WingetBackend struct {
	manager *winget.Manager
}

// NewWingetBackend creates the winget backend.
func NewWingetBackend(cfg *Config) *WingetBackend {
	return &WingetBackend{
		manager: winget.NewManager(&winget.Config{
			Runner: cfg.Runner,
			Logger: cfg.Logger,
		}),
	}
}

func (b *WingetBackend) Name() Type {
	return TypeWinget
}

func (b *WingetBackend) Preview(req *InstallRequest) string {
	return b.manager.Command(req.Name, req.Version, req.Force)
}

// Install runs winget. A nonzero exit whose output says the package is
// already installed, or that no applicable update exists, counts as
// already satisfied rather than failed.
func (b *WingetBackend) Install(ctx context.Context, req *InstallRequest) *InstallResult {
	res, err := b.manager.Install(ctx, req.Name, req.Version, req.Force)
	if err != nil {
		return failedf("winget could not be started: %v", err)
	}

	switch {
	case res.AlreadySatisfied():
		return &InstallResult{Status: StatusAlreadySatisfied, Detail: "already installed, no applicable update"}
	case res.Succeeded():
		return &InstallResult{Status: StatusInstalled}
	default:
		return failedf("winget exited with code %d: %s", res.ExitCode, res.Output)
	}
}
