package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
)

const (
	appName        = "hyprhelp"
	configFileName = "hyprhelp.toml"

	// EnvConfigFile points at an explicit config file.
	EnvConfigFile = "HYPRHELP_CONFIG"
)

// findUserConfigFile looks for a user-level config file.
// $HYPRHELP_CONFIG wins when set. Otherwise ~/.hyprhelp/hyprhelp.toml is
// checked first, then the OS-specific config directory.
func findUserConfigFile() string {
	if explicit := os.Getenv(EnvConfigFile); explicit != "" {
		return expandPath(explicit)
	}

	for _, path := range userConfigCandidates() {
		if _, err := os.Stat(path); err == nil {
			return path
		}
	}
	return ""
}

// userConfigCandidates lists the user config locations in lookup order.
func userConfigCandidates() []string {
	var paths []string
	if home, err := os.UserHomeDir(); err == nil {
		paths = append(paths, filepath.Join(home, "."+appName, configFileName))
	}
	if cfgDir := osUserConfigDir(); cfgDir != "" {
		paths = append(paths, filepath.Join(cfgDir, appName, configFileName))
	}
	return paths
}

// osUserConfigDir returns the OS-specific user config directory.
// Returns empty string if the directory cannot be determined.
func osUserConfigDir() string {
	switch runtime.GOOS {
	case "windows":
		return os.Getenv("APPDATA")
	case "darwin":
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, "Library", "Application Support")
		}
	default:
		if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
			return xdg
		}
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, ".config")
		}
	}
	return ""
}

// UserConfigPath returns where a new user config file should be written:
// $HYPRHELP_CONFIG when set, otherwise the OS-specific config directory.
func UserConfigPath() (string, error) {
	if explicit := os.Getenv(EnvConfigFile); explicit != "" {
		return expandPath(explicit), nil
	}
	cfgDir := osUserConfigDir()
	if cfgDir == "" {
		return "", fmt.Errorf("cannot determine user config directory")
	}
	return filepath.Join(cfgDir, appName, configFileName), nil
}
