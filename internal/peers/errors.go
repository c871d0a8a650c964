package peers

import "errors"

var (
	ErrFailedToRenderTunnelConfig = errors.New("failed to render tunnel config")
	ErrFailedToRenderServiceUnit  = errors.New("failed to render service unit")
	ErrFailedToWriteTunnelConfig  = errors.New("failed to write tunnel config")
	ErrFailedToWriteServiceUnit   = errors.New("failed to write service unit")
)
