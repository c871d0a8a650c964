package terminal

import "wgpeer/internal/logger"

// Runner executes commands. systemd and wg take a Runner so tests can record invocations.
type Runner interface {
	Run(c *Command) (string, error)
}

// LocalRunner runs commands on this host.
type LocalRunner struct{}

func (LocalRunner) Run(c *Command) (string, error) {
	logger.Debug("Running %s", c.String())

	output, err := c.Execute()

	if err != nil {
		logger.Debug("Command %s failed: %v", c.String(), err)
		return "", err
	}

	return output, nil
}
