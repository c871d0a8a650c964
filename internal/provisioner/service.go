package provisioner

import (
	"fmt"
	"os"

	"wgpeer/cmd/wgpeer/config"
	"wgpeer/internal/files"
	"wgpeer/internal/logger"
	"wgpeer/internal/peers"
	"wgpeer/internal/peers/types"
	"wgpeer/internal/systemd"
	"wgpeer/internal/terminal"
	"wgpeer/internal/wg"
)

type Options struct {
	// Transactional restores both files and reloads systemd again when a later step fails.
	Transactional bool
	// Lock serializes runs for the same interface through a file lock.
	Lock bool
}

type Service struct {
	repository *peers.Repository
	systemd    *systemd.Manager

	// Geteuid and OpenDevices are replaced in tests.
	Geteuid     func() int
	OpenDevices wg.Opener
}

func NewService(cfg *config.Configuration, runner terminal.Runner) *Service {
	return &Service{
		repository:  peers.NewRepository(cfg),
		systemd:     systemd.NewManager(runner, cfg.SystemctlCommand),
		Geteuid:     os.Geteuid,
		OpenDevices: wg.OpenClient,
	}
}

func (s *Service) CheckPrivileges() error {
	if s.Geteuid() != 0 {
		return ErrPermission
	}

	return nil
}

// Provision writes the tunnel config and the unit for request, reloads systemd, then starts
// and/or enables the unit as requested. Steps run strictly in order and the first failure
// aborts the rest. Nothing is undone unless opts.Transactional is set.
func (s *Service) Provision(request types.ProvisioningRequest, opts Options) (err error) {
	if err = s.CheckPrivileges(); err != nil {
		return err
	}

	if err = request.Validate(); err != nil {
		return err
	}

	iface := request.InterfaceName
	unit := peers.UnitName(iface)

	if opts.Lock {
		lock, lockErr := files.AcquireLock(s.repository.LockPath(iface))

		if lockErr != nil {
			return lockErr
		}

		defer func() {
			if releaseErr := lock.Release(); releaseErr != nil {
				logger.Warn("Failed to release lock for %s: %v", iface, releaseErr)
			}
		}()
	}

	if opts.Transactional {
		snapshot, snapshotErr := s.repository.Snapshot(iface)

		if snapshotErr != nil {
			return fmt.Errorf("%w: %w", ErrIO, snapshotErr)
		}

		defer func() {
			if err != nil {
				s.rollback(snapshot)
			}
		}()
	}

	peer := s.repository.NewPeer(request)

	if err = s.repository.SaveTunnelConfig(peer); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	if err = s.repository.SaveServiceUnit(peer); err != nil {
		return fmt.Errorf("%w: %w", ErrIO, err)
	}

	if err = s.systemd.DaemonReload(); err != nil {
		return fmt.Errorf("%w: %w", ErrExternalCommand, err)
	}

	if request.StartNow {
		if err = s.systemd.Start(unit); err != nil {
			return fmt.Errorf("%w: %w", ErrExternalCommand, err)
		}
	}

	if request.EnableOnStartup {
		if err = s.systemd.Enable(unit); err != nil {
			return fmt.Errorf("%w: %w", ErrExternalCommand, err)
		}
	}

	logger.Info("Provisioned peer %s (unit %s)", iface, unit)

	return nil
}

// rollback does not stop a unit that was already started; stopping it runs its own ExecStop lines.
func (s *Service) rollback(snapshot *files.Snapshot) {
	logger.Warn("Provisioning failed, restoring previous files")

	if err := snapshot.Restore(); err != nil {
		logger.Error("Rollback incomplete: %v", err)
	}

	if err := s.systemd.DaemonReload(); err != nil {
		logger.Error("Rollback daemon-reload failed: %v", err)
	}
}

// Rendered is the content Provision would write, keyed by target path.
type Rendered struct {
	TunnelConfigPath string
	TunnelConfig     string
	ServiceUnitPath  string
	ServiceUnit      string
}

// Render validates request and renders both files without touching the filesystem.
func (s *Service) Render(request types.ProvisioningRequest) (*Rendered, error) {
	if err := request.Validate(); err != nil {
		return nil, err
	}

	peer := s.repository.NewPeer(request)

	tunnelConfig, err := peer.GetFormattedWireguardConfig()

	if err != nil {
		return nil, fmt.Errorf("%w: %v", peers.ErrFailedToRenderTunnelConfig, err)
	}

	serviceUnit, err := peer.GetFormattedServiceUnit()

	if err != nil {
		return nil, fmt.Errorf("%w: %v", peers.ErrFailedToRenderServiceUnit, err)
	}

	return &Rendered{
		TunnelConfigPath: s.repository.TunnelConfigPath(request.InterfaceName),
		TunnelConfig:     *tunnelConfig,
		ServiceUnitPath:  s.repository.ServiceUnitPath(request.InterfaceName),
		ServiceUnit:      *serviceUnit,
	}, nil
}

type Status struct {
	Unit        string
	ActiveState string
	// WireGuard describes the live device; empty unless the unit is active.
	WireGuard string
}

func (s *Service) Status(interfaceName string) (*Status, error) {
	unit := peers.UnitName(interfaceName)

	state, err := s.systemd.IsActive(unit)

	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrExternalCommand, err)
	}

	status := &Status{Unit: unit, ActiveState: state}

	if state != "active" {
		return status, nil
	}

	devices, err := s.OpenDevices()

	if err != nil {
		return nil, err
	}

	defer devices.Close()

	status.WireGuard, err = wg.Show(devices, interfaceName)

	if err != nil {
		return nil, err
	}

	return status, nil
}
