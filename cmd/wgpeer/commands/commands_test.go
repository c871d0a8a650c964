package commands

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"wgpeer/cmd/wgpeer/config"
	"wgpeer/internal/provisioner"
	"wgpeer/internal/terminal"
	"wgpeer/internal/terminal/terminaltest"
	"wgpeer/internal/wg"
	"wgpeer/internal/wg/wgtest"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/cobra"
	"golang.zx2c4.com/wireguard/wgctrl/wgtypes"
)

var exampleArgs = []string{
	"--server-ip", "203.0.113.9",
	"--server-pubkey", "ABC=",
	"--interface-ip", "10.8.0.2",
	"--private-key", "XYZ=",
	"--default-gw-ip", "192.168.1.1",
	"--default-gw-interface", "eth0",
}

type harness struct {
	root     *cobra.Command
	cfg      *config.Configuration
	service  *provisioner.Service
	recorder *terminaltest.Recorder
	out      *bytes.Buffer
	errOut   *bytes.Buffer
}

func newHarness(t *testing.T, euid int) *harness {
	t.Helper()

	dir := t.TempDir()
	cfg := &config.Configuration{
		WireguardDir:     filepath.Join(dir, "wireguard"),
		SystemdDir:       filepath.Join(dir, "systemd"),
		LockDir:          dir,
		IPCommand:        "ip",
		WGCommand:        "wg",
		SystemctlCommand: "systemctl",

		ServiceUnitTemplatePath: config.DefaultServiceUnitTemplatePath,
	}

	for _, d := range []string{cfg.WireguardDir, cfg.SystemdDir} {
		if err := os.MkdirAll(d, 0755); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	}

	recorder := &terminaltest.Recorder{}
	service := provisioner.NewService(cfg, recorder)
	service.Geteuid = func() int { return euid }

	root := &cobra.Command{Use: "wgpeer"}
	RegisterCommands(root, service)

	out := &bytes.Buffer{}
	errOut := &bytes.Buffer{}
	root.SetOut(out)
	root.SetErr(errOut)

	return &harness{root: root, cfg: cfg, service: service, recorder: recorder, out: out, errOut: errOut}
}

func (h *harness) execute(args ...string) error {
	h.root.SetArgs(args)
	return h.root.Execute()
}

func TestProvisionCommand_Example(t *testing.T) {
	h := newHarness(t, 0)

	if err := h.execute(exampleArgs...); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if diff := cmp.Diff([]string{"systemctl daemon-reload"}, h.recorder.Commands); diff != "" {
		t.Errorf("unexpected commands (-want +got):\n%s", diff)
	}

	data, err := os.ReadFile(filepath.Join(h.cfg.WireguardDir, "wg0.conf"))

	if err != nil {
		t.Fatalf("expected tunnel config to be written, got %v", err)
	}

	if !strings.Contains(string(data), "Endpoint = 203.0.113.9:51820\n") {
		t.Errorf("expected endpoint 203.0.113.9:51820, got %s", data)
	}

	unit, err := os.ReadFile(filepath.Join(h.cfg.SystemdDir, "wireguard-peer-wg0.service"))

	if err != nil {
		t.Fatalf("expected service unit to be written, got %v", err)
	}

	if !strings.Contains(string(unit), "ExecStart=ip link set mtu 1400 dev wg0\n") {
		t.Errorf("expected default MTU in unit, got %s", unit)
	}
}

func TestProvisionCommand_StartNow(t *testing.T) {
	h := newHarness(t, 0)

	if err := h.execute(append(exampleArgs, "--start-now")...); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := []string{
		"systemctl daemon-reload",
		"systemctl start wireguard-peer-wg0.service",
	}

	if diff := cmp.Diff(want, h.recorder.Commands); diff != "" {
		t.Errorf("unexpected commands (-want +got):\n%s", diff)
	}
}

func TestProvisionCommand_NotRoot(t *testing.T) {
	tests := map[string][]string{
		"valid flags":    exampleArgs,
		"no flags":       {},
		"bad flag value": {"--server-port", "not-a-number"},
		"unknown flag":   {"--no-such-flag"},
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, 1000)

			err := h.execute(args...)

			if !errors.Is(err, provisioner.ErrPermission) {
				t.Fatalf("expected ErrPermission, got %v", err)
			}

			if code := ExitCode(err); code != ExitFailure {
				t.Errorf("expected exit code %d, got %d", ExitFailure, code)
			}

			if _, err := os.Stat(filepath.Join(h.cfg.WireguardDir, "wg0.conf")); !os.IsNotExist(err) {
				t.Errorf("expected no tunnel config, got %v", err)
			}
		})
	}
}

func TestProvisionCommand_UsageErrors(t *testing.T) {
	tests := map[string][]string{
		"missing required flag": exampleArgs[2:],
		"bad flag value":        append([]string{"--interface-mtu", "big"}, exampleArgs...),
	}

	for name, args := range tests {
		t.Run(name, func(t *testing.T) {
			h := newHarness(t, 0)

			err := h.execute(args...)

			if code := ExitCode(err); code != ExitUsage {
				t.Errorf("expected exit code %d, got %d (%v)", ExitUsage, code, err)
			}

			if len(h.recorder.Commands) != 0 {
				t.Errorf("expected no commands, got %v", h.recorder.Commands)
			}
		})
	}
}

func TestProvisionCommand_InvalidValue(t *testing.T) {
	h := newHarness(t, 0)

	err := h.execute(append(exampleArgs, "--interface", "wg0; reboot")...)

	if code := ExitCode(err); code != ExitFailure {
		t.Errorf("expected exit code %d, got %d (%v)", ExitFailure, code, err)
	}
}

func TestProvisionCommand_ExternalCommandExitCode(t *testing.T) {
	h := newHarness(t, 0)
	h.recorder.Failures = map[string]int{"systemctl daemon-reload": 6}

	err := h.execute(exampleArgs...)

	if code := ExitCode(err); code != 6 {
		t.Errorf("expected exit code 6, got %d (%v)", code, err)
	}
}

func TestRenderCommand(t *testing.T) {
	h := newHarness(t, 1000)

	if err := h.execute(append([]string{"render"}, exampleArgs...)...); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	out := h.out.String()

	for _, want := range []string{
		"# " + filepath.Join(h.cfg.WireguardDir, "wg0.conf") + "\n[Interface]\n",
		"Endpoint = 203.0.113.9:51820\n",
		"# " + filepath.Join(h.cfg.SystemdDir, "wireguard-peer-wg0.service") + "\n",
		"ExecStart=ip addr add 10.8.0.2/24 dev wg0\n",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got %s", want, out)
		}
	}

	if len(h.recorder.Commands) != 0 {
		t.Errorf("expected no commands, got %v", h.recorder.Commands)
	}

	if _, err := os.Stat(filepath.Join(h.cfg.WireguardDir, "wg0.conf")); !os.IsNotExist(err) {
		t.Errorf("expected nothing to be written, got %v", err)
	}
}

func TestStatusCommand(t *testing.T) {
	h := newHarness(t, 1000)
	h.recorder.Outputs = map[string]string{"systemctl is-active": "active"}
	h.service.OpenDevices = func() (wg.DeviceReader, error) {
		return &wgtest.Reader{Devices: map[string]*wgtypes.Device{
			"wg1": {Name: "wg1", ListenPort: 51820},
		}}, nil
	}

	if err := h.execute("status", "--interface", "wg1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	want := "wireguard-peer-wg1.service: active\n" +
		"interface: wg1\n" +
		"  public key: " + wgtypes.Key{}.String() + "\n" +
		"  listening port: 51820\n"

	if got := h.out.String(); got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestProvisionCommand_NotRootWithStrayArgument(t *testing.T) {
	h := newHarness(t, 1000)

	err := h.execute(append([]string{"extra"}, exampleArgs...)...)

	if code := ExitCode(err); code != ExitFailure {
		t.Errorf("expected exit code %d, got %d (%v)", ExitFailure, code, err)
	}
}

func TestProvisionCommand_StrayArgument(t *testing.T) {
	h := newHarness(t, 0)

	err := h.execute(append([]string{"extra"}, exampleArgs...)...)

	if code := ExitCode(err); code != ExitUsage {
		t.Errorf("expected exit code %d, got %d (%v)", ExitUsage, code, err)
	}

	if len(h.recorder.Commands) != 0 {
		t.Errorf("expected no commands, got %v", h.recorder.Commands)
	}
}

func TestReport(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		wantCode int
		wantErr  string
	}{
		{"success", nil, 0, ""},
		{"permission", provisioner.ErrPermission, ExitFailure, "This command must be run as root (sudo).\n"},
		{"usage", errors.New("unknown flag: --nope"), ExitUsage, "Error: unknown flag: --nope\nRun 'wgpeer --help' for usage.\n"},
		{"io", fmt.Errorf("%w: disk full", provisioner.ErrIO), ExitFailure, "Error: file operation failed: disk full\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := newHarness(t, 0)

			if code := Report(h.root, tt.err); code != tt.wantCode {
				t.Errorf("expected exit code %d, got %d", tt.wantCode, code)
			}

			if got := h.errOut.String(); got != tt.wantErr {
				t.Errorf("expected %q, got %q", tt.wantErr, got)
			}
		})
	}
}

func TestReport_NotRootRun(t *testing.T) {
	h := newHarness(t, 1000)

	code := Report(h.root, h.execute(exampleArgs...))

	if code != ExitFailure {
		t.Errorf("expected exit code %d, got %d", ExitFailure, code)
	}

	if got := h.errOut.String(); got != "This command must be run as root (sudo).\n" {
		t.Errorf("unexpected stderr %q", got)
	}

	if h.out.Len() != 0 {
		t.Errorf("expected nothing on stdout, got %q", h.out.String())
	}
}

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"success", nil, 0},
		{"permission", provisioner.ErrPermission, ExitFailure},
		{"io", fmt.Errorf("%w: disk full", provisioner.ErrIO), ExitFailure},
		{"external command", fmt.Errorf("%w: %w", provisioner.ErrExternalCommand, &terminal.ExitError{Code: 5}), 5},
		{"cobra", errors.New(`required flag(s) "server-ip" not set`), ExitUsage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExitCode(tt.err); got != tt.want {
				t.Errorf("expected %d, got %d", tt.want, got)
			}
		})
	}
}
