package wg

import "errors"

var (
	ErrFailedToOpenClient = errors.New("failed to open WireGuard control client")
	ErrFailedToReadDevice = errors.New("failed to read WireGuard device")
)
