package peers

import (
	"fmt"
	"path/filepath"

	"wgpeer/cmd/wgpeer/config"
	"wgpeer/internal/files"
	"wgpeer/internal/logger"
	"wgpeer/internal/peers/types"
)

const (
	// The tunnel config carries the private key.
	tunnelConfigPerm = 0600
	serviceUnitPerm  = 0644

	unitNamePrefix = "wireguard-peer-"
)

// Repository maps an interface name to the two files that describe its peer.
// Both files are fully overwritten on every save.
type Repository struct {
	cfg *config.Configuration
}

func NewRepository(cfg *config.Configuration) *Repository {
	return &Repository{
		cfg: cfg,
	}
}

func UnitName(interfaceName string) string {
	return unitNamePrefix + interfaceName + ".service"
}

func (r *Repository) TunnelConfigPath(interfaceName string) string {
	return filepath.Join(r.cfg.WireguardDir, interfaceName+".conf")
}

func (r *Repository) ServiceUnitPath(interfaceName string) string {
	return filepath.Join(r.cfg.SystemdDir, UnitName(interfaceName))
}

func (r *Repository) LockPath(interfaceName string) string {
	return filepath.Join(r.cfg.LockDir, "wgpeer-"+interfaceName+".lock")
}

// NewPeer binds a request to this repository's paths.
func (r *Repository) NewPeer(request types.ProvisioningRequest) *types.Peer {
	return types.NewPeer(request, r.TunnelConfigPath(request.InterfaceName), r.cfg)
}

// Snapshot captures both files of interfaceName before they are overwritten.
func (r *Repository) Snapshot(interfaceName string) (*files.Snapshot, error) {
	return files.TakeSnapshot(r.TunnelConfigPath(interfaceName), r.ServiceUnitPath(interfaceName))
}

func (r *Repository) SaveTunnelConfig(peer *types.Peer) error {
	tunnelConfig, err := peer.GetFormattedWireguardConfig()

	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToRenderTunnelConfig, err)
	}

	path := r.TunnelConfigPath(peer.Request.InterfaceName)

	logger.Info("Writing tunnel config to %s", path)

	if err := files.WriteFile(path, []byte(*tunnelConfig), tunnelConfigPerm); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFailedToWriteTunnelConfig, path, err)
	}

	return nil
}

func (r *Repository) SaveServiceUnit(peer *types.Peer) error {
	serviceUnit, err := peer.GetFormattedServiceUnit()

	if err != nil {
		return fmt.Errorf("%w: %v", ErrFailedToRenderServiceUnit, err)
	}

	path := r.ServiceUnitPath(peer.Request.InterfaceName)

	logger.Info("Writing service unit to %s", path)

	if err := files.WriteFile(path, []byte(*serviceUnit), serviceUnitPerm); err != nil {
		return fmt.Errorf("%w: %s: %w", ErrFailedToWriteServiceUnit, path, err)
	}

	return nil
}
