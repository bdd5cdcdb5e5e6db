// internal/cli/doctor.go
package cli

import (
	"fmt"

	"github.com/rigstack/rig"
	"github.com/rigstack/rig/pkg/vscodeext"
	"github.com/rigstack/rig/pkg/winget"
	"github.com/spf13/cobra"

	chocopkg "github.com/rigstack/rig/pkg/choco"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check host prerequisites",
	Long:  `Probe the host for the capabilities the backends depend on and report each result.`,
	RunE:  runDoctor,
}

func runDoctor(cmd *cobra.Command, args []string) error {
	mgr, err := rig.NewManager(cfg, logger)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	p := mgr.Probe()

	checks := []struct {
		name string
		ok   bool
	}{
		{"OS version supported", p.OSSupported(ctx)},
		{"execution policy acceptable", p.PolicyAcceptable(ctx)},
		{"elevated session", p.PrivilegedSession(ctx)},
		{"winget on path", p.CommandAvailable(winget.Executable)},
		{"choco on path", p.CommandAvailable(chocopkg.Executable)},
		{"code on path", p.CommandAvailable(vscodeext.Executable)},
	}

	for _, c := range checks {
		mark := okMark("ok")
		if !c.ok {
			mark = failMark("missing")
		}
		fmt.Printf("%-30s %s\n", c.name, mark)
	}
	return nil
}
