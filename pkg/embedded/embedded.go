// Package embedded provides access to the embedded scene descriptions.
//
// The go:embed directive can only embed files from the declaring package's
// directory, so the embed.FS lives in the project root (embed.go) and is
// handed to this package at startup. Call Init before loading any scene.
package embedded

import (
	"embed"
	"fmt"
	"io/fs"
)

var (
	configFS    embed.FS
	initialized bool
)

// Init installs the embedded config filesystem. Must be called from main
// before any scene is loaded.
func Init(configs embed.FS) {
	configFS = configs
	initialized = true
}

// IsInitialized reports whether Init has been called.
func IsInitialized() bool {
	return initialized
}

// FS returns the embedded config filesystem.
func FS() (fs.FS, error) {
	if !initialized {
		return nil, fmt.Errorf("embedded package not initialized, call Init() first")
	}
	return configFS, nil
}

// ReadFile reads an embedded file, e.g. "assets/config/black_rose.yaml".
func ReadFile(path string) ([]byte, error) {
	if !initialized {
		return nil, fmt.Errorf("embedded package not initialized, call Init() first")
	}
	return configFS.ReadFile(path)
}
