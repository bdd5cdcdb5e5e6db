// internal/cli/root.go
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/rigstack/rig/pkg/config"
	"github.com/rigstack/rig/pkg/logging"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

const version = "0.1.0"

var (
	cfgFile   string
	verbosity int
	quiet     bool

	cfg      *config.Config
	logger   zerolog.Logger
	logClose io.Closer
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "rig",
	Short: "Declarative machine provisioning",
	Long: `rig - declarative machine provisioning

Reconciles this machine's installed software toward the state declared
in your stack files, dispatching each package to winget, chocolatey,
the PowerShell Gallery, VS Code or apt.`,
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: initialize,
}

// Execute executes the root command and releases the log file handle
// when the run ends.
func Execute() error {
	err := rootCmd.Execute()
	if logClose != nil {
		logClose.Close()
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $XDG_CONFIG_HOME/rig/rig.yaml)")
	rootCmd.PersistentFlags().CountVarP(&verbosity, "verbose", "v", "raise log detail (repeatable)")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only log warnings and errors")

	rootCmd.AddCommand(upCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(doctorCmd)
	rootCmd.AddCommand(versionCmd)
}

func initialize(cmd *cobra.Command, args []string) error {
	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	// Flags override file and environment.
	if quiet {
		cfg.Quiet = true
	}
	if verbosity > 0 {
		cfg.Verbosity = verbosity
	}

	noColor := !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd())
	color.NoColor = noColor

	logger, logClose, err = logging.Setup(logging.Options{
		Verbosity: cfg.Verbosity,
		Quiet:     cfg.Quiet,
		NoColor:   noColor,
		LogFile:   cfg.LogFile,
	})
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	return nil
}
