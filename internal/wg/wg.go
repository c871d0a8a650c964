package wg

import (
	"fmt"
	"strings"
	"time"

	"golang.zx2c4.com/wireguard/wgctrl"
	"golang.zx2c4.com/wireguard/wgctrl/wgtypes"
)

// DeviceReader is the read side of *wgctrl.Client.
type DeviceReader interface {
	Device(name string) (*wgtypes.Device, error)
	Close() error
}

// Opener returns a DeviceReader the caller must Close.
type Opener func() (DeviceReader, error)

func OpenClient() (DeviceReader, error) {
	client, err := wgctrl.New()

	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrFailedToOpenClient, err)
	}

	return client, nil
}

// Show describes interfaceName the way `wg show` does: the interface, then one block per peer.
func Show(reader DeviceReader, interfaceName string) (string, error) {
	device, err := reader.Device(interfaceName)

	if err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrFailedToReadDevice, interfaceName, err)
	}

	return FormatDevice(device), nil
}

func FormatDevice(device *wgtypes.Device) string {
	var b strings.Builder

	fmt.Fprintf(&b, "interface: %s\n", device.Name)
	fmt.Fprintf(&b, "  public key: %s\n", device.PublicKey.String())
	fmt.Fprintf(&b, "  listening port: %d\n", device.ListenPort)

	for _, peer := range device.Peers {
		fmt.Fprintf(&b, "\npeer: %s\n", peer.PublicKey.String())

		if peer.Endpoint != nil {
			fmt.Fprintf(&b, "  endpoint: %s\n", peer.Endpoint.String())
		}

		allowedIPs := make([]string, len(peer.AllowedIPs))
		for i, allowedIP := range peer.AllowedIPs {
			allowedIPs[i] = allowedIP.String()
		}

		if len(allowedIPs) == 0 {
			b.WriteString("  allowed ips: (none)\n")
		} else {
			fmt.Fprintf(&b, "  allowed ips: %s\n", strings.Join(allowedIPs, ", "))
		}

		fmt.Fprintf(&b, "  latest handshake: %s\n", formatHandshake(peer.LastHandshakeTime))
		fmt.Fprintf(&b, "  transfer: %d B received, %d B sent\n", peer.ReceiveBytes, peer.TransmitBytes)
	}

	return strings.TrimSuffix(b.String(), "\n")
}

func formatHandshake(t time.Time) string {
	if t.IsZero() {
		return "never"
	}

	return t.UTC().Format(time.RFC3339)
}
