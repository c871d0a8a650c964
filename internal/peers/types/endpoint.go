package types

import "strconv"

// Endpoint is the remote peer's host and port. Host may be a hostname, which wg resolves itself.
type Endpoint struct {
	Host string
	Port int
}

// String formats the endpoint as "host:port" without brackets; only IPv4 and hostnames are accepted.
func (e Endpoint) String() string {
	if e.Host == "" {
		return ""
	}

	if e.Port == 0 {
		return e.Host
	}

	return e.Host + ":" + strconv.Itoa(e.Port)
}
