// Package wgtest provides an in-memory wg.DeviceReader.
package wgtest

import (
	"os"

	"golang.zx2c4.com/wireguard/wgctrl/wgtypes"
)

// Reader serves Devices by name. An unknown name fails with os.ErrNotExist, as wgctrl does.
type Reader struct {
	Devices map[string]*wgtypes.Device
	Closed  bool
}

func (r *Reader) Device(name string) (*wgtypes.Device, error) {
	device, ok := r.Devices[name]

	if !ok {
		return nil, os.ErrNotExist
	}

	return device, nil
}

func (r *Reader) Close() error {
	r.Closed = true
	return nil
}
