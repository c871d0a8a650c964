package main

import (
	"os"

	"wgpeer/cmd/wgpeer/commands"
	"wgpeer/cmd/wgpeer/config"
	"wgpeer/internal/provisioner"
	"wgpeer/internal/terminal"

	"github.com/spf13/cobra"
)

// Set with -ldflags "-X main.version=..." at build time.
var version = "dev"

var rootCmd = &cobra.Command{
	Use:   "wgpeer",
	Short: "Provision a WireGuard peer as a systemd service",
	Long: `wgpeer provisions this machine as a WireGuard peer of a remote server.

It writes the tunnel config to /etc/wireguard/<interface>.conf and a oneshot
systemd unit to /etc/systemd/system/wireguard-peer-<interface>.service, then
reloads systemd. The unit brings the interface up, keeps a host route to the
server through the current default gateway and sends all other traffic
through the tunnel. Stopping the unit undoes the routes and removes the
interface.

Example:

sudo wgpeer \
  --server-ip 203.0.113.9 \
  --server-pubkey ABC= \
  --interface-ip 10.8.0.2 \
  --private-key XYZ= \
  --default-gw-ip 192.168.1.1 \
  --default-gw-interface eth0 \
  --start-now --enable-on-startup

Paths and binaries can be overridden through WGPEER_* environment variables,
also read from /etc/default/wgpeer and .env.
`,
	Version: version,
}

func main() {
	commands.RegisterCommands(rootCmd, provisioner.NewService(config.Config, terminal.LocalRunner{}))

	if code := commands.Report(rootCmd, rootCmd.Execute()); code != 0 {
		os.Exit(code)
	}
}
