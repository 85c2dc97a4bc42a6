package paths

import (
	"os"
	"path/filepath"
	"strings"
)

func home() string {
	h, _ := os.UserHomeDir()
	return h
}

// Dir returns ~/.combobox.
func Dir() string {
	return filepath.Join(home(), ".combobox")
}

// ConfigFile returns ~/.combobox/config.yaml.
func ConfigFile() string {
	return filepath.Join(Dir(), "config.yaml")
}

// LogFile returns ~/.combobox/combobox.log.
func LogFile() string {
	return filepath.Join(Dir(), "combobox.log")
}

// Expand replaces a leading ~ with the home directory.
func Expand(path string) string {
	if path == "~" {
		return home()
	}
	if strings.HasPrefix(path, "~/") {
		return filepath.Join(home(), path[2:])
	}
	return path
}
