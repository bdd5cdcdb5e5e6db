// pkg/backend/vscode.go
package backend

import (
	"context"

	"github.com/rigstack/rig/pkg/vscodeext"
)

// VSCodeBackend installs editor extensions. It has no fallback: the
// editor CLI missing from the path is an immediate failure. Declared
// versions are ignored; the CLI always installs the newest build.
type VSCodeBackend struct {
	manager *vscodeext.Manager
	probe   Prober
}

// NewVSCodeBackend creates the VS Code extension backend.
func NewVSCodeBackend(cfg *Config) *VSCodeBackend {
	return &VSCodeBackend{
		manager: vscodeext.NewManager(&vscodeext.Config{
			Runner: cfg.Runner,
			Logger: cfg.Logger,
		}),
		probe: cfg.Probe,
	}
}

func (b *VSCodeBackend) Name() Type {
	return TypeVSCode
}

func (b *VSCodeBackend) Preview(req *InstallRequest) string {
	return b.manager.Command(req.Name, req.Force)
}

func (b *VSCodeBackend) Install(ctx context.Context, req *InstallRequest) *InstallResult {
	if !b.probe.CommandAvailable(vscodeext.Executable) {
		return failedf("the %q command-line entry point is not on the path", vscodeext.Executable)
	}

	res, err := b.manager.Install(ctx, req.Name, req.Force)
	if err != nil {
		return failedf("code could not be started: %v", err)
	}
	if !res.Succeeded() {
		return failedf("code exited with code %d: %s", res.ExitCode, res.Output)
	}
	return &InstallResult{Status: StatusInstalled}
}
