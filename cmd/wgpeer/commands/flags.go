package commands

import (
	"wgpeer/internal/peers/types"

	"github.com/spf13/cobra"
)

var requiredProvisioningFlags = []string{
	"server-ip",
	"server-pubkey",
	"interface-ip",
	"private-key",
	"default-gw-ip",
	"default-gw-interface",
}

func addProvisioningFlags(cmd *cobra.Command, r *types.ProvisioningRequest) {
	flags := cmd.Flags()

	flags.StringVar(&r.ServerIP, "server-ip", "", "WireGuard server IPv4 address or hostname (e.g. 203.0.113.9)")
	flags.IntVar(&r.ServerPort, "server-port", types.DefaultServerPort, "WireGuard server UDP port")
	flags.StringVar(&r.ServerPublicKey, "server-pubkey", "", "WireGuard server public key (base64)")
	flags.StringVar(&r.InterfaceName, "interface", types.DefaultInterface, "Name of the local WireGuard interface")
	flags.StringVar(&r.InterfaceIP, "interface-ip", "", "IPv4 address of the local interface inside the tunnel (e.g. 10.8.0.2)")
	flags.IntVar(&r.InterfaceMTU, "interface-mtu", types.DefaultInterfaceMTU, "MTU of the local interface")
	flags.StringVar(&r.PrivateKey, "private-key", "", "Private key of this peer (base64)")
	flags.StringVar(&r.DefaultGatewayIP, "default-gw-ip", "", "IPv4 address of the current default gateway")
	flags.StringVar(&r.DefaultGatewayInterface, "default-gw-interface", "", "Interface of the current default gateway (e.g. eth0)")
	flags.BoolVar(&r.EnableOnStartup, "enable-on-startup", false, "Enable the service unit at boot")
	flags.BoolVar(&r.StartNow, "start-now", false, "Start the service unit right away")

	for _, name := range requiredProvisioningFlags {
		_ = cmd.MarkFlagRequired(name)
	}
}
