// rig.go
package rig

import (
	"context"
	"fmt"

	"github.com/rigstack/rig/pkg/backend"
	"github.com/rigstack/rig/pkg/config"
	"github.com/rigstack/rig/pkg/dispatch"
	"github.com/rigstack/rig/pkg/execrun"
	"github.com/rigstack/rig/pkg/probe"
	"github.com/rigstack/rig/pkg/registry"
	"github.com/rigstack/rig/pkg/stack"
	"github.com/rs/zerolog"
)

// Re-export the types callers need for a provisioning run.
type (
	Options     = dispatch.Options
	Outcome     = dispatch.Outcome
	Summary     = dispatch.Summary
	Declaration = stack.Declaration
	BackendType = backend.Type
	Status      = backend.Status
)

// Re-export backend constants
const (
	BackendWinget  = backend.TypeWinget
	BackendChoco   = backend.TypeChoco
	BackendGallery = backend.TypeGallery
	BackendVSCode  = backend.TypeVSCode
	BackendApt     = backend.TypeApt
)

// Re-export status constants
const (
	StatusInstalled        = backend.StatusInstalled
	StatusAlreadySatisfied = backend.StatusAlreadySatisfied
	StatusFailed           = backend.StatusFailed
	StatusSkipped          = backend.StatusSkipped
	StatusWouldInstall     = backend.StatusWouldInstall
)

// Manager wires the stack source, validator, dispatcher and probes into
// one provisioning engine.
type Manager struct {
	cfg        *config.Config
	source     *stack.Source
	dispatcher *dispatch.Dispatcher
	probe      *probe.Probe
	logger     zerolog.Logger
}

// NewManager creates a Manager from the effective configuration.
func NewManager(cfg *config.Config, logger zerolog.Logger) (*Manager, error) {
	if cfg == nil {
		cfg = config.Default()
	}

	runner := execrun.New(logger)
	pr := probe.New(&probe.Config{Runner: runner, Logger: logger})

	aliases, err := registry.Load(cfg.AliasFile)
	if err != nil {
		return nil, fmt.Errorf("loading alias registry: %w", err)
	}

	bcfg := &backend.Config{Runner: runner, Probe: pr, Logger: logger}
	backends := map[backend.Type]backend.Backend{
		backend.TypeWinget:  backend.NewWingetBackend(bcfg),
		backend.TypeChoco:   backend.NewChocoBackend(bcfg),
		backend.TypeGallery: backend.NewGalleryBackend(bcfg),
		backend.TypeVSCode:  backend.NewVSCodeBackend(bcfg),
		backend.TypeApt:     backend.NewAptBackend(bcfg),
	}

	return &Manager{
		cfg:    cfg,
		source: stack.NewSource(cfg.StackDir, logger),
		dispatcher: dispatch.New(&dispatch.Config{
			Backends: backends,
			Aliases:  aliases,
			Logger:   logger,
		}),
		probe:  pr,
		logger: logger,
	}, nil
}

// Up reconciles the selected stacks (all stacks when the selector is
// empty) and returns the run summary plus one outcome per dispatched
// package. Only a total failure to load any stack aborts before
// dispatch; everything below that granularity degrades per-item.
func (m *Manager) Up(ctx context.Context, stacks []string, opts Options) (*Summary, []Outcome, error) {
	raws, err := m.source.Merge(stacks)
	if err != nil {
		return nil, nil, &Error{Op: "merge", Err: err}
	}

	decls := stack.ValidateAll(raws, m.logger)
	enabled := stack.FilterEnabled(decls, m.logger)

	m.logger.Info().
		Int("declared", len(raws)).
		Int("valid", len(decls)).
		Int("enabled", len(enabled)).
		Msg("starting reconciliation")

	summary, outcomes := m.dispatcher.RunAll(ctx, enabled, opts)
	return summary, outcomes, nil
}

// Stacks lists the stack ids available to this manager.
func (m *Manager) Stacks() ([]string, error) {
	return m.source.List()
}

// Declarations loads and validates one stack without dispatching it.
func (m *Manager) Declarations(id string) ([]Declaration, error) {
	raws, err := m.source.Load(id)
	if err != nil {
		return nil, &Error{Op: "load", Package: id, Err: err}
	}
	return stack.ValidateAll(raws, m.logger), nil
}

// Probe exposes the host-capability probe, for diagnostics.
func (m *Manager) Probe() *probe.Probe {
	return m.probe
}
