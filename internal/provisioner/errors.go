package provisioner

import "errors"

var (
	ErrPermission      = errors.New("this command must be run as root (sudo)")
	ErrIO              = errors.New("file operation failed")
	ErrExternalCommand = errors.New("external command failed")
)
