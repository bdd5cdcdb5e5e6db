// pkg/backend/choco.go
package backend

import (
	"context"

	"github.com/rigstack/rig/pkg/choco"
)

// ChocoBackend is the secondary manager. If the Chocolatey runtime is
// missing it attempts a one-time bootstrap, which needs an elevated
// session.
type ChocoBackend struct {
	manager *choco.Manager
	probe   Prober
}

// NewChocoBackend creates the Chocolatey backend.
func NewChocoBackend(cfg *Config) *ChocoBackend {
	return &ChocoBackend{
		manager: choco.NewManager(&choco.Config{
			Runner: cfg.Runner,
			Logger: cfg.Logger,
		}),
		probe: cfg.Probe,
	}
}

func (b *ChocoBackend) Name() Type {
	return TypeChoco
}

func (b *ChocoBackend) Preview(req *InstallRequest) string {
	return b.manager.Command(req.Name, req.Version, req.Force)
}

func (b *ChocoBackend) Install(ctx context.Context, req *InstallRequest) *InstallResult {
	if !b.manager.RuntimePresent() {
		if !b.probe.PrivilegedSession(ctx) {
			return failedf("chocolatey is not installed and bootstrapping it requires an elevated session")
		}
		if err := b.manager.Bootstrap(ctx); err != nil {
			return failedf("bootstrapping chocolatey: %v", err)
		}
	}

	res, err := b.manager.Install(ctx, req.Name, req.Version, req.Force)
	if err != nil {
		return failedf("choco could not be started: %v", err)
	}
	if !res.Succeeded() {
		return failedf("choco exited with code %d: %s", res.ExitCode, res.Output)
	}
	return &InstallResult{Status: StatusInstalled}
}
