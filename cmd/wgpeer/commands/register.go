package commands

import (
	"wgpeer/internal/logger"
	"wgpeer/internal/provisioner"

	"github.com/spf13/cobra"
)

var (
	provisionerService *provisioner.Service

	verbose bool
)

// RegisterCommands turns rootCmd into the provisioning command and attaches the
// render and status subcommands. Errors are returned to the caller, which maps
// them to an exit code with ExitCode.
func RegisterCommands(rootCmd *cobra.Command, service *provisioner.Service) {
	provisionerService = service

	rootCmd.SilenceUsage = true
	rootCmd.SilenceErrors = true

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log every external command before it runs")
	rootCmd.PersistentPreRun = func(_ *cobra.Command, _ []string) {
		if verbose {
			logger.SetLevel(logger.DEBUG)
		}
	}

	registerProvisionCommand(rootCmd)

	rootCmd.AddCommand(newRenderCmd())
	rootCmd.AddCommand(newStatusCmd())
}
