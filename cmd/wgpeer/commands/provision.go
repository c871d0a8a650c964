package commands

import (
	"fmt"

	"wgpeer/internal/peers/types"
	"wgpeer/internal/provisioner"

	"github.com/spf13/cobra"
)

var (
	provisionRequest types.ProvisioningRequest
	transactional    bool
	lock             bool
)

func registerProvisionCommand(rootCmd *cobra.Command) {
	addProvisioningFlags(rootCmd, &provisionRequest)

	rootCmd.Flags().BoolVar(&transactional, "transactional", false, "Restore the previous files if a later step fails")
	rootCmd.Flags().BoolVar(&lock, "lock", false, "Refuse to run while another run holds the lock for the same interface")

	// Positional arguments are rejected in PreRunE rather than by cobra, and PreRunE
	// runs before cobra checks required flags, so a non-root caller is turned away
	// before any argument or flag is looked at.
	rootCmd.Args = cobra.ArbitraryArgs
	rootCmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		if err := provisionerService.CheckPrivileges(); err != nil {
			return err
		}

		if len(args) > 0 {
			return fmt.Errorf("unknown command %q for %q", args[0], cmd.CommandPath())
		}

		return nil
	}

	rootCmd.SetFlagErrorFunc(func(c *cobra.Command, err error) error {
		if c == rootCmd {
			if privErr := provisionerService.CheckPrivileges(); privErr != nil {
				return privErr
			}
		}

		return err
	})

	rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
		return provisionerService.Provision(provisionRequest, provisioner.Options{
			Transactional: transactional,
			Lock:          lock,
		})
	}
}
