package types

import (
	"strconv"
	"strings"
)

// hostPrefix is the prefix length assigned to the tunnel address.
const hostPrefix = 24

// Step is one ExecStart/ExecStop line of the peer's unit.
type Step struct {
	Comment string
	Args    []string
	// IgnoreFailure renders with systemd's "-" prefix so a non-zero exit does not fail the unit.
	IgnoreFailure bool
}

func (s Step) CommandLine() string {
	return strings.Join(s.Args, " ")
}

// ExecLine is the value of the ExecStart=/ExecStop= directive.
func (s Step) ExecLine() string {
	if s.IgnoreFailure {
		return "-" + s.CommandLine()
	}

	return s.CommandLine()
}

// ActivationSteps brings the tunnel up and moves the default route onto it, keeping a host
// route to the server through the original gateway so tunnel traffic does not loop.
// Stale state from a previous run is removed first, so the sequence is safe to start again
// without stopping the unit.
func (p *Peer) ActivationSteps() []Step {
	r := p.Request
	ip := p.IPCommand
	iface := r.InterfaceName
	gwIface := r.DefaultGatewayInterface
	serverRoute := p.serverHostRoute()

	return []Step{
		{
			Comment:       "Delete the interface if already present, but do not fail if it does not exist",
			Args:          []string{ip, "link", "del", "dev", iface},
			IgnoreFailure: true,
		},
		{
			Comment: "Create the WireGuard interface",
			Args:    []string{ip, "link", "add", "dev", iface, "type", "wireguard"},
		},
		{
			Comment: "Apply the tunnel configuration to the interface",
			Args:    []string{p.WGCommand, "setconf", iface, p.ConfigPath},
		},
		{
			Comment: "Assign the interface address",
			Args:    []string{ip, "addr", "add", p.InterfaceAddress(), "dev", iface},
		},
		{
			Comment: "Set the MTU",
			Args:    []string{ip, "link", "set", "mtu", strconv.Itoa(r.InterfaceMTU), "dev", iface},
		},
		{
			Comment: "Bring the interface up",
			Args:    []string{ip, "link", "set", "up", "dev", iface},
		},
		{
			Comment:       "Drop the existing default route on the gateway interface",
			Args:          []string{ip, "route", "del", "default", "dev", gwIface},
			IgnoreFailure: true,
		},
		{
			Comment: "Route all traffic through the tunnel",
			Args:    []string{ip, "route", "add", "default", "dev", iface},
		},
		{
			Comment:       "Drop a stale host route to the server",
			Args:          append([]string{ip, "route", "del"}, serverRoute...),
			IgnoreFailure: true,
		},
		{
			Comment: "Keep reaching the server through the original gateway",
			Args:    append([]string{ip, "route", "add"}, serverRoute...),
		},
	}
}

// DeactivationSteps undoes every routing change made by ActivationSteps.
func (p *Peer) DeactivationSteps() []Step {
	r := p.Request
	ip := p.IPCommand

	return []Step{
		{
			Comment: "Remove the interface",
			Args:    []string{ip, "link", "del", "dev", r.InterfaceName},
		},
		{
			Comment: "Remove the host route to the server",
			Args:    append([]string{ip, "route", "del"}, p.serverHostRoute()...),
		},
		{
			Comment: "Restore the default route through the original gateway",
			Args:    []string{ip, "route", "add", "default", "via", r.DefaultGatewayIP, "dev", r.DefaultGatewayInterface},
		},
	}
}

// InterfaceAddress is the tunnel address with its /24 prefix, e.g. "10.8.0.2/24".
func (p *Peer) InterfaceAddress() string {
	addr, err := ParseIPNetMarshable(p.Request.InterfaceIP, false)

	if err != nil {
		return p.Request.InterfaceIP + "/" + strconv.Itoa(hostPrefix)
	}

	return addr.WithPrefix(hostPrefix)
}

func (p *Peer) serverHostRoute() []string {
	r := p.Request

	return []string{r.ServerIP + "/32", "via", r.DefaultGatewayIP, "dev", r.DefaultGatewayInterface}
}
