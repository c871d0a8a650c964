// Package terminaltest provides a terminal.Runner that records commands instead of running them.
package terminaltest

import (
	"fmt"
	"strings"

	"wgpeer/internal/terminal"
)

// Recorder records every command line it is asked to run. A command whose line starts with a
// key of Failures fails with that exit code; Outputs supplies stdout the same way.
type Recorder struct {
	Commands []string
	Failures map[string]int
	Outputs  map[string]string
}

func (r *Recorder) Run(c *terminal.Command) (string, error) {
	line := c.String()
	r.Commands = append(r.Commands, line)

	output := ""
	for prefix, out := range r.Outputs {
		if strings.HasPrefix(line, prefix) {
			output = out
		}
	}

	for prefix, code := range r.Failures {
		if strings.HasPrefix(line, prefix) {
			return "", &terminal.ExitError{
				CommandLine: line,
				Code:        code,
				Stdout:      output,
				Err:         fmt.Errorf("exit status %d", code),
			}
		}
	}

	return output, nil
}
