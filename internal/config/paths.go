// ABOUTME: Standard filesystem paths for axees configuration and data
// ABOUTME: Resolves ~/.axees/ for global and .axees/ for project-local paths

package config

import (
	"os"
	"path/filepath"
)

const (
	globalDirName  = ".axees"
	projectDirName = ".axees"
)

// GlobalDir returns the user-global config directory (~/.axees/).
func GlobalDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", globalDirName)
	}
	return filepath.Join(home, globalDirName)
}

// ProjectDir returns the project-local config directory (.axees/ in cwd).
func ProjectDir(projectRoot string) string {
	return filepath.Join(projectRoot, projectDirName)
}

// SessionsDir returns the session journal directory.
func SessionsDir() string {
	return filepath.Join(GlobalDir(), "sessions")
}

// DocstoreDir returns the local document index directory.
func DocstoreDir() string {
	return filepath.Join(GlobalDir(), "docstore")
}

// AuthFile returns the path to the auth credentials file.
func AuthFile() string {
	return filepath.Join(GlobalDir(), "auth.json")
}

// GlobalConfigFile returns the path to the global config file.
func GlobalConfigFile() string {
	return filepath.Join(GlobalDir(), "config.json")
}

// ProjectConfigFile returns the path to the project-local config file.
func ProjectConfigFile(projectRoot string) string {
	return filepath.Join(ProjectDir(projectRoot), "config.json")
}

// EnsureDir creates a directory and all parents if they don't exist.
// Uses 0o700 for directories containing sensitive data (auth, sessions).
func EnsureDir(path string) error {
	return os.MkdirAll(path, 0o700)
}
