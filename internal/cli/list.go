// internal/cli/list.go
package cli

import (
	"fmt"

	"github.com/rigstack/rig"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [stack...]",
	Short: "List stacks and their declarations",
	Long:  `List the stacks in the stack directory and the packages each one declares.`,
	RunE:  runList,
}

func runList(cmd *cobra.Command, args []string) error {
	mgr, err := rig.NewManager(cfg, logger)
	if err != nil {
		return err
	}

	ids := args
	if len(ids) == 0 {
		ids, err = mgr.Stacks()
		if err != nil {
			return fmt.Errorf("listing stacks: %w", err)
		}
	}
	if len(ids) == 0 {
		fmt.Printf("no stacks in %s\n", cfg.StackDir)
		return nil
	}

	for _, id := range ids {
		decls, err := mgr.Declarations(id)
		if err != nil {
			fmt.Printf("%s: %v\n", id, err)
			continue
		}

		fmt.Printf("%s (%d packages)\n", id, len(decls))
		for _, d := range decls {
			marker := " "
			if !d.Enabled {
				marker = "-"
			}
			fmt.Printf("  %s %-30s %-8s %s\n", marker, d.Name, d.Backend, d.Version)
		}
	}
	return nil
}
