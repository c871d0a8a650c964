package systemd

import (
	"errors"

	"wgpeer/internal/logger"
	"wgpeer/internal/terminal"
)

// Manager drives systemctl. Every call blocks until systemctl exits.
type Manager struct {
	runner    terminal.Runner
	systemctl string
}

func NewManager(runner terminal.Runner, systemctl string) *Manager {
	return &Manager{
		runner:    runner,
		systemctl: systemctl,
	}
}

func (m *Manager) run(args ...string) (string, error) {
	return m.runner.Run(terminal.NewCommand(m.systemctl, args...))
}

func (m *Manager) DaemonReload() error {
	logger.Info("Reloading systemd unit files")

	_, err := m.run("daemon-reload")
	return err
}

func (m *Manager) Start(unit string) error {
	logger.Info("Starting %s", unit)

	_, err := m.run("start", unit)
	return err
}

func (m *Manager) Enable(unit string) error {
	logger.Info("Enabling %s at boot", unit)

	_, err := m.run("enable", unit)
	return err
}

// IsActive reports the unit's ActiveState as printed by `systemctl is-active`.
// systemctl exits non-zero for any state other than active, which is not an error here.
func (m *Manager) IsActive(unit string) (string, error) {
	state, err := m.run("is-active", unit)

	if err == nil {
		return state, nil
	}

	var exitErr *terminal.ExitError
	if errors.As(err, &exitErr) && exitErr.Code != terminal.NotStartedExitCode {
		if exitErr.Stdout != "" {
			return exitErr.Stdout, nil
		}

		return "inactive", nil
	}

	return "", err
}
