// internal/cli/render.go
package cli

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/rigstack/rig"
	"github.com/rigstack/rig/pkg/backend"
)

var (
	okMark   = color.New(color.FgGreen).SprintFunc()
	warnMark = color.New(color.FgYellow).SprintFunc()
	failMark = color.New(color.FgRed).SprintFunc()
)

// statusGlyph maps a terminal status to its console marker.
func statusGlyph(s rig.Status) string {
	switch s {
	case backend.StatusInstalled, backend.StatusAlreadySatisfied:
		return okMark("✓")
	case backend.StatusWouldInstall:
		return warnMark("~")
	case backend.StatusSkipped:
		return warnMark("-")
	default:
		return failMark("✗")
	}
}

// renderOutcomes prints one line per dispatched package.
func renderOutcomes(w io.Writer, outcomes []rig.Outcome) {
	for _, o := range outcomes {
		fmt.Fprintf(w, "%s %-30s %-8s %s", statusGlyph(o.Status), o.PackageName, o.BackendUsed, o.Status)
		if o.Detail != "" {
			fmt.Fprintf(w, "  (%s)", o.Detail)
		}
		fmt.Fprintln(w)
	}
}

// renderSummary prints the aggregate counts for the run.
func renderSummary(w io.Writer, s *rig.Summary, dryRun bool) {
	label := "reconciled"
	if dryRun {
		label = "previewed"
	}
	fmt.Fprintf(w, "\n%d package(s) %s: %s succeeded, %s failed, %d skipped\n",
		s.Total, label, okMark(s.Succeeded), failMark(s.Failed), s.Skipped)
}
