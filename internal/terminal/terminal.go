package terminal

import (
	"bytes"
	"errors"
	"fmt"
	"os/exec"
	"strings"
)

// NotStartedExitCode mirrors what a shell reports for a missing binary.
const NotStartedExitCode = 127

type Command struct {
	Command string
	Args    []string
	Dir     string
}

func NewCommand(command string, args ...string) *Command {
	return &Command{
		Command: command,
		Args:    args,
	}
}

// String renders the command line the way it would be typed.
func (c *Command) String() string {
	return strings.Join(append([]string{c.Command}, c.Args...), " ")
}

// ExitError is returned by Execute when the command could not be started or exited non-zero.
type ExitError struct {
	CommandLine string
	Code        int
	Stdout      string
	Stderr      string
	Err         error
}

func (e *ExitError) Error() string {
	if e.Stderr == "" {
		return fmt.Sprintf("command %q failed with exit code %d: %v", e.CommandLine, e.Code, e.Err)
	}

	return fmt.Sprintf("command %q failed with exit code %d: %v\nStderr: %s", e.CommandLine, e.Code, e.Err, e.Stderr)
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

func (c *Command) Execute() (string, error) {
	cmd := exec.Command(c.Command, c.Args...)

	if c.Dir != "" {
		cmd.Dir = c.Dir
	}

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil {
		code := NotStartedExitCode

		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			code = exitErr.ExitCode()
		}

		return "", &ExitError{
			CommandLine: c.String(),
			Code:        code,
			Stdout:      strings.TrimSpace(stdout.String()),
			Stderr:      strings.TrimSpace(stderr.String()),
			Err:         err,
		}
	}

	return strings.TrimSpace(stdout.String()), nil
}
