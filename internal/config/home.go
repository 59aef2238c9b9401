package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// AppName is the directory name used under the user configuration directory.
const AppName = "g"

// GetConfigDir returns the g configuration directory.
// It is <os.UserConfigDir()>/g and is not created.
func GetConfigDir() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("get user config directory: %w", err)
	}
	return filepath.Join(base, AppName), nil
}

// DefaultConfigPath returns the path of the default config file, or an empty
// string when the user configuration directory cannot be determined.
func DefaultConfigPath() string {
	dir, err := GetConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, "config.yaml")
}

// Exists reports whether a config file is present at path.
func Exists(path string) bool {
	_, err := os.Stat(path)
	return !os.IsNotExist(err)
}
