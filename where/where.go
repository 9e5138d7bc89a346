// Package where resolves the filesystem locations m3ugen reads from and writes to.
package where

import (
	"os"
	"path/filepath"

	"github.com/m3ugen/m3ugen/constant"
	"github.com/m3ugen/m3ugen/filesystem"
	"github.com/samber/lo"
)

// EnvConfigPath is the environment variable identifier used to override the default configuration directory.
const EnvConfigPath = "M3UGEN_CONFIG_PATH"

// ensureDir guarantees the existence of a directory at the specified path, creating it if necessary.
func ensureDir(path string) string {
	lo.Must0(filesystem.API().MkdirAll(path, os.ModePerm))
	return path
}

// Config resolves the directory holding m3ugen.toml.
// M3UGEN_CONFIG_PATH takes precedence over the platform default.
func Config() string {
	if custom, ok := os.LookupEnv(EnvConfigPath); ok {
		return ensureDir(custom)
	}

	base := lo.Must(os.UserConfigDir())
	return ensureDir(filepath.Join(base, constant.M3ugen))
}

// Logs resolves the directory used for daily log files.
func Logs() string {
	return ensureDir(filepath.Join(Config(), "logs"))
}

// ConfigFile resolves the path of the TOML configuration file.
func ConfigFile() string {
	return filepath.Join(Config(), constant.M3ugen+".toml")
}

// Playlist resolves the configured output path. Relative paths stay relative
// to the process working directory.
func Playlist(configured string) string {
	if configured == "" {
		return constant.DefaultPlaylist
	}
	return filepath.Clean(configured)
}
