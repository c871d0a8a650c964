package commands

import (
	"fmt"

	"wgpeer/internal/peers/types"

	"github.com/spf13/cobra"
)

var renderRequest types.ProvisioningRequest

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print the tunnel config and service unit without writing them",
		Long:  `Print the tunnel config and the systemd service unit that provisioning would write, each preceded by its target path. Nothing is written and no root privileges are needed.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			rendered, err := provisionerService.Render(renderRequest)

			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()

			fmt.Fprintf(out, "# %s\n%s\n", rendered.TunnelConfigPath, rendered.TunnelConfig)
			fmt.Fprintf(out, "# %s\n%s", rendered.ServiceUnitPath, rendered.ServiceUnit)

			return nil
		},
	}

	addProvisioningFlags(cmd, &renderRequest)

	return cmd
}
