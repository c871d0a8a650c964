package types

import (
	"errors"
	"net"
	"strconv"
	"strings"
)

type IPNetMarshable struct {
	net.IPNet
}

func ParseIPNetMarshable(s string, maskMustBeSpecified bool) (*IPNetMarshable, error) {
	if s == "" {
		return nil, errors.New("invalid IP network format, expected 'IP/CIDR'")
	}

	parts := strings.Split(s, "/")

	if len(parts) > 2 {
		return nil, errors.New("invalid IP network format, expected 'IP/CIDR'")
	}

	ip := net.ParseIP(parts[0]).To4()

	if ip == nil {
		return nil, errors.New("invalid IPv4 address")
	}

	if len(parts) == 1 {
		if maskMustBeSpecified {
			return nil, errors.New("network mask must be specified")
		}

		return &IPNetMarshable{IPNet: net.IPNet{IP: ip, Mask: net.CIDRMask(32, 32)}}, nil
	}

	ones, err := strconv.Atoi(parts[1])

	if err != nil {
		return nil, errors.New("invalid CIDR value for network mask")
	}

	if ones < 0 || ones > 32 {
		return nil, errors.New("CIDR value for network mask must be between 0 and 32")
	}

	return &IPNetMarshable{IPNet: net.IPNet{IP: ip, Mask: net.CIDRMask(ones, 32)}}, nil
}

// WithPrefix keeps the host bits of the address, unlike net.IPNet.String for a masked network.
// "10.8.0.2" with ones=24 renders as "10.8.0.2/24".
func (n IPNetMarshable) WithPrefix(ones int) string {
	return n.IP.String() + "/" + strconv.Itoa(ones)
}

func MapIPNetMarshablesToStrings(ipnets []IPNetMarshable) []string {
	result := make([]string, len(ipnets))

	for i, ipnet := range ipnets {
		result[i] = ipnet.String()
	}

	return result
}
