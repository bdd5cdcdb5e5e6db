// pkg/dispatch/dispatcher.go

// Package dispatch routes validated package declarations to their
// backends, applies the single winget-to-chocolatey fallback hop, and
// aggregates per-package outcomes into a run summary.
package dispatch

import (
	"context"
	"fmt"

	"github.com/rigstack/rig/pkg/backend"
	"github.com/rigstack/rig/pkg/registry"
	"github.com/rigstack/rig/pkg/stack"
	"github.com/rs/zerolog"
)

// Options controls one provisioning run.
type Options struct {
	// Force reinstalls packages even when already satisfied.
	Force bool

	// DryRun previews the commands without mutating anything.
	DryRun bool

	// ForceLatest overrides every declared version with "latest".
	ForceLatest bool
}

// Outcome is the immutable result of dispatching one declaration. The
// dispatcher is its only creator and the aggregator its only consumer.
type Outcome struct {
	PackageName string
	BackendUsed backend.Type // actual producer; differs from the declared backend after a fallback hop
	Status      backend.Status
	Detail      string
}

// Config configures a Dispatcher.
type Config struct {
	// Backends maps each backend type to its implementation.
	Backends map[backend.Type]backend.Backend

	// Aliases resolves fallback package names; may be nil.
	Aliases *registry.Registry

	// Logger receives per-dispatch log events.
	Logger zerolog.Logger
}

// Dispatcher resolves and executes one declaration at a time. It holds
// no per-run state; all accumulation happens in the Summary.
type Dispatcher struct {
	backends map[backend.Type]backend.Backend
	aliases  *registry.Registry
	logger   zerolog.Logger
}

// New creates a Dispatcher.
func New(cfg *Config) *Dispatcher {
	aliases := cfg.Aliases
	if aliases == nil {
		aliases, _ = registry.Load("")
	}
	return &Dispatcher{
		backends: cfg.Backends,
		aliases:  aliases,
		logger:   cfg.Logger,
	}
}

// Dispatch resolves one declaration to a terminal outcome. There are no
// retries beyond the single fallback hop and no timeout handling: a
// hung package-manager process blocks the dispatcher until the external
// environment intervenes.
func (d *Dispatcher) Dispatch(ctx context.Context, decl stack.Declaration, opts Options) Outcome {
	version := decl.Version
	if opts.ForceLatest || version == "" {
		version = backend.VersionLatest
	}

	b, ok := d.backends[decl.Backend]
	if !ok {
		return Outcome{
			PackageName: decl.Name,
			BackendUsed: decl.Backend,
			Status:      backend.StatusFailed,
			Detail:      fmt.Sprintf("no backend registered for %q", decl.Backend),
		}
	}

	req := &backend.InstallRequest{Name: decl.Name, Version: version, Force: opts.Force}

	// Dry run short-circuits before any backend can mutate state.
	if opts.DryRun {
		return Outcome{
			PackageName: decl.Name,
			BackendUsed: decl.Backend,
			Status:      backend.StatusWouldInstall,
			Detail:      "would run: " + b.Preview(req),
		}
	}

	res := b.Install(ctx, req)

	if res.Status == backend.StatusFailed && decl.Backend == backend.TypeWinget {
		return d.fallback(ctx, decl, req, res)
	}

	return Outcome{
		PackageName: decl.Name,
		BackendUsed: decl.Backend,
		Status:      res.Status,
		Detail:      res.Detail,
	}
}

// fallback retries a failed winget install once through Chocolatey. The
// alternate package name comes from the declaration's choco_name, then
// the alias registry, then the declared name unchanged.
func (d *Dispatcher) fallback(ctx context.Context, decl stack.Declaration, req *backend.InstallRequest, primary *backend.InstallResult) Outcome {
	failed := Outcome{
		PackageName: decl.Name,
		BackendUsed: backend.TypeWinget,
		Status:      backend.StatusFailed,
		Detail:      primary.Detail,
	}

	cb, ok := d.backends[backend.TypeChoco]
	if !ok {
		return failed
	}

	name := decl.FallbackName
	if name == "" {
		if alias, ok := d.aliases.Resolve(decl.Name, string(backend.TypeChoco)); ok {
			name = alias
		}
	}
	if name == "" {
		name = decl.Name
	}

	d.logger.Warn().
		Str("package", decl.Name).
		Str("fallback_name", name).
		Str("detail", primary.Detail).
		Msg("winget install failed, retrying via chocolatey")

	res := cb.Install(ctx, &backend.InstallRequest{
		Name:    name,
		Version: req.Version,
		Force:   req.Force,
	})

	out := Outcome{
		PackageName: decl.Name,
		BackendUsed: backend.TypeChoco,
		Status:      res.Status,
		Detail:      res.Detail,
	}
	if res.Status == backend.StatusFailed {
		out.Detail = fmt.Sprintf("winget: %s; choco: %s", primary.Detail, res.Detail)
	}
	return out
}
