// internal/cli/version.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("rig version " + version)
		fmt.Println("Declarative machine provisioning")
		fmt.Println("https://github.com/rigstack/rig")
	},
}
