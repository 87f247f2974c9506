// Package project provides work-root discovery and configuration loading.
package project

import (
	"os"
	"path/filepath"

	"github.com/typemark/shapediff/internal/config"
)

// FindRoot walks up from the current working directory until it finds
// shapediff.yaml. Returns ("", nil) when no configuration file exists
// anywhere up to the filesystem root; the caller falls back to the
// current directory with defaults.
func FindRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return FindRootFrom(cwd)
}

// FindRootFrom walks up from the given directory until it finds
// shapediff.yaml.
func FindRootFrom(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", err
	}

	for {
		configPath := filepath.Join(dir, config.FileName)
		if _, err := os.Stat(configPath); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			// Reached filesystem root; not configured anywhere.
			return "", nil
		}
		dir = parent
	}
}
