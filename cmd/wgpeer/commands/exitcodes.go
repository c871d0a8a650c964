package commands

import (
	"errors"

	"wgpeer/internal/files"
	"wgpeer/internal/peers"
	"wgpeer/internal/peers/types"
	"wgpeer/internal/provisioner"
	"wgpeer/internal/terminal"
	"wgpeer/internal/wg"

	"github.com/spf13/cobra"
)

const (
	ExitFailure = 1
	ExitUsage   = 2
)

var failures = []error{
	provisioner.ErrPermission,
	provisioner.ErrIO,
	provisioner.ErrExternalCommand,
	types.ErrInvalidRequest,
	files.ErrLocked,
	files.ErrFailedToLock,
	peers.ErrFailedToRenderTunnelConfig,
	peers.ErrFailedToRenderServiceUnit,
	wg.ErrFailedToOpenClient,
	wg.ErrFailedToReadDevice,
}

// ExitCode maps an error returned by the root command to a process exit code.
// A failed external command passes its own exit code through. Errors this
// package does not know about come from cobra's argument and flag parsing.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}

	var exitErr *terminal.ExitError
	if errors.As(err, &exitErr) && exitErr.Code > 0 {
		return exitErr.Code
	}

	for _, failure := range failures {
		if errors.Is(err, failure) {
			return ExitFailure
		}
	}

	return ExitUsage
}

// Report prints err to cmd's error stream and returns the exit code for it.
func Report(cmd *cobra.Command, err error) int {
	if err == nil {
		return 0
	}

	code := ExitCode(err)

	switch {
	case errors.Is(err, provisioner.ErrPermission):
		cmd.PrintErrln("This command must be run as root (sudo).")
	case code == ExitUsage:
		cmd.PrintErrf("Error: %v\nRun '%s --help' for usage.\n", err, cmd.CommandPath())
	default:
		cmd.PrintErrf("Error: %v\n", err)
	}

	return code
}
