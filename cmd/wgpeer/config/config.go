package config

import (
	"os"

	"wgpeer/internal/logger"

	"github.com/joho/godotenv"
)

// DefaultServiceUnitTemplatePath is relative to the embedded templates.Configs FS.
const DefaultServiceUnitTemplatePath = "configs/systemd/peer.service.hbs"

var envFiles = []string{
	"/etc/default/wgpeer",
	".env",
}

// loadEnvFiles must run before Config is built; package-level vars are initialized before init().
func loadEnvFiles() {
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err != nil {
			if !os.IsNotExist(err) {
				logger.Warn("Error loading %s: %v", envFile, err)
			}
		}
	}
}

func GetEnv(key string, defaultValue string) string {
	value := os.Getenv(key)

	if value == "" {
		return defaultValue
	}

	return value
}

type Configuration struct {
	// WireguardDir holds <interface>.conf files.
	WireguardDir string
	// SystemdDir holds wireguard-peer-<interface>.service units.
	SystemdDir string
	LockDir    string

	IPCommand        string
	WGCommand        string
	SystemctlCommand string

	ServiceUnitTemplatePath string
}

func newConfiguration() *Configuration {
	loadEnvFiles()

	return &Configuration{
		WireguardDir: GetEnv("WGPEER_WIREGUARD_DIR", "/etc/wireguard"),
		SystemdDir:   GetEnv("WGPEER_SYSTEMD_DIR", "/etc/systemd/system"),
		LockDir:      GetEnv("WGPEER_LOCK_DIR", "/run/lock"),

		IPCommand:        GetEnv("WGPEER_IP_COMMAND", "ip"),
		WGCommand:        GetEnv("WGPEER_WG_COMMAND", "wg"),
		SystemctlCommand: GetEnv("WGPEER_SYSTEMCTL_COMMAND", "systemctl"),

		ServiceUnitTemplatePath: DefaultServiceUnitTemplatePath,
	}
}

var Config = newConfiguration()
