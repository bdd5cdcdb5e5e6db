// pkg/backend/apt.go
package backend

import (
	"context"

	"github.com/rigstack/rig/pkg/apt"
)

// AptBackend installs Debian packages inside a WSL distribution.
// Outside that host context it deliberately skips rather than fails.
type AptBackend struct {
	manager *apt.Manager
}

// NewAptBackend creates the apt backend.
func NewAptBackend(cfg *Config) *AptBackend {
	return &AptBackend{
		manager: apt.NewManager(&apt.Config{
			Runner: cfg.Runner,
			Logger: cfg.Logger,
		}),
	}
}

func (b *AptBackend) Name() Type {
	return TypeApt
}

func (b *AptBackend) Preview(req *InstallRequest) string {
	return b.manager.Command(req.Name, req.Version)
}

func (b *AptBackend) Install(ctx context.Context, req *InstallRequest) *InstallResult {
	if !b.manager.Supported() {
		return &InstallResult{
			Status: StatusSkipped,
			Detail: "apt packages install inside WSL; re-run rig from the WSL distribution",
		}
	}

	res, err := b.manager.Install(ctx, req.Name, req.Version)
	if err != nil {
		return failedf("apt-get could not be started: %v", err)
	}
	if !res.Succeeded() {
		return failedf("apt-get exited with code %d: %s", res.ExitCode, res.Output)
	}
	return &InstallResult{Status: StatusInstalled}
}
