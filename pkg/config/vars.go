package config

import (
	"path/filepath"
)

var (
	// DumpURL is the default location of the NCBI taxonomy dump.
	DumpURL = "https://ftp.ncbi.nlm.nih.gov/pub/taxonomy/new_taxdump/new_taxdump.zip"
	// AppName is used in generating file system paths.
	AppName = "taxdump"
)

// ConfigDir returns the directory path for configuration files.
// Returns ~/.config/taxdump by default.
func ConfigDir(homeDir string) string {
	return filepath.Join(homeDir, ".config", AppName)
}

// CacheDir returns the directory path for cache files.
// Returns ~/.cache/taxdump by default.
func CacheDir(homeDir string) string {
	return filepath.Join(homeDir, ".cache", AppName)
}

// DumpCacheDir returns the directory where downloaded dumps are kept.
// Returns ~/.cache/taxdump/dump by default.
func DumpCacheDir(homeDir string) string {
	return filepath.Join(CacheDir(homeDir), "dump")
}

// LogDir returns the directory path for log files.
// Returns ~/.local/share/taxdump/logs by default.
func LogDir(homeDir string) string {
	return filepath.Join(homeDir, ".local", "share", AppName, "logs")
}

// ConfigFilePath returns the full path to the config.yaml file.
// Returns ~/.config/taxdump/config.yaml by default.
func ConfigFilePath(homeDir string) string {
	return filepath.Join(ConfigDir(homeDir), "config.yaml")
}
