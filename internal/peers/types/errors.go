package types

import "errors"

var (
	ErrInvalidRequest = errors.New("invalid provisioning request")

	ErrMissingValue          = errors.New("value is required")
	ErrInvalidIPv4           = errors.New("not a dotted IPv4 address")
	ErrIPv6NotSupported      = errors.New("IPv6 is not supported")
	ErrInvalidHostname       = errors.New("not a valid IPv4 address or hostname")
	ErrInvalidInterfaceName  = errors.New("interface name must be 1-15 characters from [A-Za-z0-9_.-], not starting with . or -")
	ErrInvalidKeyCharacters  = errors.New("key may only contain base64 characters [A-Za-z0-9+/=]")
	ErrPortOutOfRange        = errors.New("port must be between 1 and 65535")
	ErrMTUOutOfRange         = errors.New("MTU must be between 68 and 65535")
	ErrTemplateRenderFailure = errors.New("failed to render template")
)
