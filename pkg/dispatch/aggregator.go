// pkg/dispatch/aggregator.go
package dispatch

import (
	"context"

	"github.com/rigstack/rig/pkg/backend"
	"github.com/rigstack/rig/pkg/stack"
)

// Summary aggregates the outcomes of one run. Total always equals
// Succeeded + Failed + Skipped, and equals the number of enabled valid
// declarations dispatched.
type Summary struct {
	Total     int
	Succeeded int
	Failed    int
	Skipped   int
}

// record folds one outcome into the totals. The dispatcher's run loop
// is the only writer.
func (s *Summary) record(o Outcome) {
	s.Total++
	switch {
	case o.Status == backend.StatusFailed:
		s.Failed++
	case o.Status == backend.StatusSkipped:
		s.Skipped++
	case o.Status.Succeeded():
		s.Succeeded++
	}
}

// AllSucceeded reports whether no package failed.
func (s *Summary) AllSucceeded() bool {
	return s.Failed == 0
}

// RunAll dispatches every declaration strictly in input order, one at a
// time, and never short-circuits on an individual failure. It returns
// one outcome per declaration alongside the aggregated summary.
func (d *Dispatcher) RunAll(ctx context.Context, decls []stack.Declaration, opts Options) (*Summary, []Outcome) {
	summary := &Summary{}
	outcomes := make([]Outcome, 0, len(decls))

	for i, decl := range decls {
		d.logger.Info().
			Str("package", decl.Name).
			Str("backend", string(decl.Backend)).
			Int("position", i+1).
			Int("of", len(decls)).
			Msg("reconciling package")

		outcome := d.Dispatch(ctx, decl, opts)
		summary.record(outcome)
		outcomes = append(outcomes, outcome)

		d.logger.Info().
			Str("package", outcome.PackageName).
			Str("backend", string(outcome.BackendUsed)).
			Str("status", string(outcome.Status)).
			Msg("package reconciled")
	}

	return summary, outcomes
}
