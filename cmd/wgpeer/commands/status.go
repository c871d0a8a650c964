package commands

import (
	"fmt"

	"wgpeer/internal/peers/types"

	"github.com/spf13/cobra"
)

var statusInterface string

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show whether the peer service is running",
		Long:  `Show the systemd state of the peer service unit and, when it is active, the live WireGuard state of its interface.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			status, err := provisionerService.Status(statusInterface)

			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "%s: %s\n", status.Unit, status.ActiveState)

			if status.WireGuard != "" {
				fmt.Fprintln(out, status.WireGuard)
			}

			return nil
		},
	}

	cmd.Flags().StringVar(&statusInterface, "interface", types.DefaultInterface, "Name of the local WireGuard interface")

	return cmd
}
