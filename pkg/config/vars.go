package config

import (
	"path/filepath"
)

// AppName is used in generating file system paths.
var AppName = "herbdb"

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/herbdb by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// DocumentsDir returns the default directory for scraped species
// documents. Returns ~/.local/share/herbdb/documents by default.
func DocumentsDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "documents")
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/herbdb/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/herbdb/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}
