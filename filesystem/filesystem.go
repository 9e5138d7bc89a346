// Package filesystem routes every file operation through a swappable afero backend.
//
// The playlist writer, the log file and the config file all go through API(),
// so tests can run against an in-memory tree.
package filesystem

import "github.com/spf13/afero"

var backend = afero.Afero{Fs: afero.NewOsFs()}

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs swaps in a volatile in-memory backend.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// SetReadOnly wraps the current backend so that every write fails.
func SetReadOnly() {
	backend = afero.Afero{Fs: afero.NewReadOnlyFs(backend.Fs)}
}
