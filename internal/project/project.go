package project

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/typemark/shapediff/internal/config"
)

// Project represents a resolved work root and its configuration.
type Project struct {
	Root     string
	Config   *config.Config
	Warnings []string
}

// LoadProject resolves the work root from the current directory and
// loads its configuration. A missing shapediff.yaml is not an error:
// the current directory becomes the work root with default settings.
func LoadProject() (*Project, error) {
	root, err := FindRoot()
	if err != nil {
		return nil, err
	}
	if root == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, err
		}
		return &Project{Root: cwd, Config: config.Default()}, nil
	}
	return LoadProjectFrom(root)
}

// LoadProjectFrom loads a project from a specified work root. The root
// must contain a shapediff.yaml.
func LoadProjectFrom(root string) (*Project, error) {
	configPath := filepath.Join(root, config.FileName)

	cfg, warnings, err := config.LoadAndValidate(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	return &Project{
		Root:     root,
		Config:   cfg,
		Warnings: warnings,
	}, nil
}

// ConfigPath returns the full path to the configuration file.
func (p *Project) ConfigPath() string {
	return filepath.Join(p.Root, config.FileName)
}
