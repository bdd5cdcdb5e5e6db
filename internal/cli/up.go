// internal/cli/up.go
package cli

import (
	"fmt"
	"os"

	"github.com/rigstack/rig"
	"github.com/spf13/cobra"
)

var (
	upSource string
	upForce  bool
	upLatest bool
	upDryRun bool
)

var upCmd = &cobra.Command{
	Use:   "up [stack...]",
	Short: "Reconcile the machine toward the declared stacks",
	Long: `Reconcile installed software toward the selected stacks.

With no arguments every stack in the stack directory is applied, in
lexical order. Naming stacks restricts the run to those stacks.

Examples:
  rig up
  rig up devbox
  rig up devbox media --dry-run
  rig up --latest --force`,
	RunE: runUp,
}

func init() {
	upCmd.Flags().StringVar(&upSource, "source", "", "stack directory override")
	upCmd.Flags().BoolVar(&upForce, "force", false, "reinstall packages even when already satisfied")
	upCmd.Flags().BoolVar(&upLatest, "latest", false, "override every declared version with latest")
	upCmd.Flags().BoolVar(&upDryRun, "dry-run", false, "preview the commands without installing anything")
}

func runUp(cmd *cobra.Command, args []string) error {
	if upSource != "" {
		cfg.StackDir = upSource
	}

	mgr, err := rig.NewManager(cfg, logger)
	if err != nil {
		return err
	}

	summary, outcomes, err := mgr.Up(cmd.Context(), args, rig.Options{
		Force:       upForce,
		DryRun:      upDryRun,
		ForceLatest: upLatest,
	})
	if err != nil {
		return err
	}

	if !cfg.Quiet {
		renderOutcomes(os.Stdout, outcomes)
	}
	renderSummary(os.Stdout, summary, upDryRun)

	// The exit code is the only binary success signal at run level:
	// non-zero when anything failed, unless this was just a preview.
	if summary.Failed > 0 && !upDryRun {
		return fmt.Errorf("%d of %d package(s) failed", summary.Failed, summary.Total)
	}
	return nil
}
