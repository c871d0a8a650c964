package types

import (
	"fmt"
	"net"
	"regexp"
	"strings"
)

const (
	DefaultServerPort   = 51820
	DefaultInterface    = "wg0"
	DefaultInterfaceMTU = 1400

	minMTU = 68
	maxMTU = 65535
)

var (
	interfaceNamePattern = regexp.MustCompile(`^[A-Za-z0-9_][A-Za-z0-9_.-]{0,14}$`)
	keyPattern           = regexp.MustCompile(`^[A-Za-z0-9+/=]+$`)
	hostnameLabelPattern = regexp.MustCompile(`^[A-Za-z0-9]([A-Za-z0-9-]{0,61}[A-Za-z0-9])?$`)
	numericLabelPattern  = regexp.MustCompile(`^[0-9]+$`)
)

// ProvisioningRequest is everything needed to provision one peer. It is built once per
// invocation and never persisted.
type ProvisioningRequest struct {
	ServerIP        string
	ServerPort      int
	ServerPublicKey string

	InterfaceName string
	InterfaceIP   string
	InterfaceMTU  int
	PrivateKey    string

	DefaultGatewayIP        string
	DefaultGatewayInterface string

	EnableOnStartup bool
	StartNow        bool
}

func NewProvisioningRequest() ProvisioningRequest {
	return ProvisioningRequest{
		ServerPort:    DefaultServerPort,
		InterfaceName: DefaultInterface,
		InterfaceMTU:  DefaultInterfaceMTU,
	}
}

// Validate rejects any value that could break out of the INI or unit file it is written into.
// Keys are checked for their alphabet only, never decoded.
func (r *ProvisioningRequest) Validate() error {
	checks := []struct {
		flag  string
		value string
		check func(string) error
	}{
		{"--server-ip", r.ServerIP, validateServerAddress},
		{"--server-pubkey", r.ServerPublicKey, validateKey},
		{"--interface", r.InterfaceName, validateInterfaceName},
		{"--interface-ip", r.InterfaceIP, validateIPv4},
		{"--private-key", r.PrivateKey, validateKey},
		{"--default-gw-ip", r.DefaultGatewayIP, validateIPv4},
		{"--default-gw-interface", r.DefaultGatewayInterface, validateInterfaceName},
	}

	for _, c := range checks {
		if c.value == "" {
			return fmt.Errorf("%w: %s: %w", ErrInvalidRequest, c.flag, ErrMissingValue)
		}

		if err := c.check(c.value); err != nil {
			return fmt.Errorf("%w: %s %q: %w", ErrInvalidRequest, c.flag, c.value, err)
		}
	}

	if r.ServerPort < 1 || r.ServerPort > 65535 {
		return fmt.Errorf("%w: --server-port %d: %w", ErrInvalidRequest, r.ServerPort, ErrPortOutOfRange)
	}

	if r.InterfaceMTU < minMTU || r.InterfaceMTU > maxMTU {
		return fmt.Errorf("%w: --interface-mtu %d: %w", ErrInvalidRequest, r.InterfaceMTU, ErrMTUOutOfRange)
	}

	return nil
}

func validateIPv4(s string) error {
	ip := net.ParseIP(s)

	if ip == nil {
		return ErrInvalidIPv4
	}

	if ip.To4() == nil || strings.Contains(s, ":") {
		return ErrIPv6NotSupported
	}

	return nil
}

// validateServerAddress accepts an IPv4 address or a DNS hostname.
func validateServerAddress(s string) error {
	if ip := net.ParseIP(s); ip != nil {
		return validateIPv4(s)
	}

	if strings.Contains(s, ":") {
		return ErrIPv6NotSupported
	}

	if len(s) > 253 {
		return ErrInvalidHostname
	}

	labels := strings.Split(strings.TrimSuffix(s, "."), ".")

	for _, label := range labels {
		if !hostnameLabelPattern.MatchString(label) {
			return ErrInvalidHostname
		}
	}

	// A numeric top-level label means a malformed IPv4 address such as 999.1.1.1 or 1.2.3.
	if numericLabelPattern.MatchString(labels[len(labels)-1]) {
		return ErrInvalidHostname
	}

	return nil
}

func validateInterfaceName(s string) error {
	if !interfaceNamePattern.MatchString(s) {
		return ErrInvalidInterfaceName
	}

	return nil
}

func validateKey(s string) error {
	if !keyPattern.MatchString(s) {
		return ErrInvalidKeyCharacters
	}

	return nil
}
