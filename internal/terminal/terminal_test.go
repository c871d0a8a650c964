package terminal

import (
	"errors"
	"testing"
)

func TestCommand_Execute_CapturesStdout(t *testing.T) {
	out, err := NewCommand("sh", "-c", "echo hello; echo ignored >&2").Execute()

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if out != "hello" {
		t.Errorf("expected hello, got %q", out)
	}
}

func TestCommand_Execute_NonZeroExit(t *testing.T) {
	_, err := NewCommand("sh", "-c", "echo boom >&2; exit 3").Execute()

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *ExitError, got %v", err)
	}

	if exitErr.Code != 3 {
		t.Errorf("expected exit code 3, got %d", exitErr.Code)
	}

	if exitErr.Stderr != "boom" {
		t.Errorf("expected stderr boom, got %q", exitErr.Stderr)
	}

	if exitErr.CommandLine != "sh -c echo boom >&2; exit 3" {
		t.Errorf("unexpected command line %q", exitErr.CommandLine)
	}
}

func TestCommand_Execute_MissingBinary(t *testing.T) {
	_, err := NewCommand("/nonexistent/wgpeer-test-binary").Execute()

	var exitErr *ExitError
	if !errors.As(err, &exitErr) {
		t.Fatalf("expected *ExitError, got %v", err)
	}

	if exitErr.Code != NotStartedExitCode {
		t.Errorf("expected exit code %d, got %d", NotStartedExitCode, exitErr.Code)
	}
}

func TestLocalRunner_Run(t *testing.T) {
	out, err := LocalRunner{}.Run(NewCommand("true"))

	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if out != "" {
		t.Errorf("expected empty output, got %q", out)
	}
}
