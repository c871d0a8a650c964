package types

import (
	"fmt"
	"strings"
)

// WGConfig is the subset of a WireGuard config that `wg setconf` understands.
// Address and MTU are applied by the unit's ip commands instead.
type WGConfig struct {
	Interface WGConfigInterface
	Peers     []WGConfigPeer
}

type WGConfigInterface struct {
	PrivateKey string
}

type WGConfigPeer struct {
	PublicKey  string
	Endpoint   Endpoint
	AllowedIPs []IPNetMarshable
}

func (c *WGConfig) ToINI() (*string, error) {
	var sb strings.Builder

	sb.WriteString("[Interface]\n")

	sb.WriteString(fmt.Sprintf("PrivateKey = %s\n", c.Interface.PrivateKey))

	for _, peer := range c.Peers {
		sb.WriteString("\n[Peer]\n")

		sb.WriteString(fmt.Sprintf("PublicKey = %s\n", peer.PublicKey))

		if peer.Endpoint.String() != "" {
			sb.WriteString(fmt.Sprintf("Endpoint = %s\n", peer.Endpoint.String()))
		}

		if len(peer.AllowedIPs) > 0 {
			sb.WriteString(fmt.Sprintf("AllowedIPs = %s\n", strings.Join(MapIPNetMarshablesToStrings(peer.AllowedIPs), ", ")))
		}
	}

	result := sb.String()
	return &result, nil
}
