// pkg/backend/gallery.go
package backend

import (
	"context"
	"fmt"

	"github.com/rigstack/rig/pkg/psgallery"
)

// GalleryBackend installs PowerShell modules. It is the only backend
// that checks installed state before invoking its installer: a module
// already present at a satisfying version short-circuits to
// already-satisfied without any install attempt.
type GalleryBackend struct {
	manager *psgallery.Manager
}

// NewGalleryBackend creates the PowerShell Gallery backend.
func NewGalleryBackend(cfg *Config) *GalleryBackend {
	return &GalleryBackend{
		manager: psgallery.NewManager(&psgallery.Config{
			Runner: cfg.Runner,
			Logger: cfg.Logger,
		}),
	}
}

func (b *GalleryBackend) Name() Type {
	return TypeGallery
}

func (b *GalleryBackend) Preview(req *InstallRequest) string {
	return b.manager.Command(req.Name, req.Version)
}

func (b *GalleryBackend) Install(ctx context.Context, req *InstallRequest) *InstallResult {
	if !req.Force {
		installed, err := b.manager.InstalledVersions(ctx, req.Name)
		if err == nil && psgallery.Satisfies(installed, req.Version) {
			return &InstallResult{
				Status: StatusAlreadySatisfied,
				Detail: fmt.Sprintf("module present at version(s) %v", installed),
			}
		}
		// A failed query falls through to the install attempt.
	}

	res, err := b.manager.Install(ctx, req.Name, req.Version)
	if err != nil {
		return failedf("powershell could not be started: %v", err)
	}
	if !res.Succeeded() {
		return failedf("Install-Module exited with code %d: %s", res.ExitCode, res.Output)
	}
	return &InstallResult{Status: StatusInstalled}
}
