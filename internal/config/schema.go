package config

import (
	"fmt"
	"time"

	"gopkg.in/yaml.v3"
)

// Config is the root of the shapediff.yaml configuration.
type Config struct {
	Reference *ReferenceConfig `yaml:"reference"`
	Candidate *CandidateConfig `yaml:"candidate"`
	Suite     *SuiteConfig     `yaml:"suite"`
}

// ReferenceConfig configures the trusted reference implementation.
type ReferenceConfig struct {
	// Dir is the checkout of the reference engine, relative to the work
	// root. It must contain a Cargo.toml.
	Dir string `yaml:"dir"`

	// Bin is the cargo binary that dumps one shaping result as JSON.
	Bin string `yaml:"bin"`
}

// CandidateConfig configures the implementation under test.
type CandidateConfig struct {
	// Dir is the MoonBit package directory, relative to the work root.
	Dir string `yaml:"dir"`

	// Wasm overrides the built artifact path. When empty, the path is
	// derived from Dir and the package name.
	Wasm string `yaml:"wasm"`

	// Spectest overrides the spectest shim path. When empty it defaults
	// to <dir>/spectest.wasm.
	Spectest string `yaml:"spectest"`
}

// SuiteConfig configures case iteration and comparison.
type SuiteConfig struct {
	// Texts are the default sample texts shaped when no --text is given.
	Texts []string `yaml:"texts"`

	// Size is the default point size.
	Size float64 `yaml:"size"`

	// Tolerance is the maximum allowed absolute difference between two
	// numeric leaves. Zero means exact numeric equality.
	Tolerance *float64 `yaml:"tolerance"`

	// Scratch is the sandbox-visible directory fonts are staged into,
	// relative to the work root.
	Scratch string `yaml:"scratch"`

	// Timeout is the per-producer-invocation ceiling.
	Timeout Duration `yaml:"timeout"`

	// ValidateSchema gates each parsed result against the embedded
	// shaping-result schema before comparison.
	ValidateSchema bool `yaml:"validate_schema"`
}

// Duration decodes Go duration strings ("30s", "2m") from YAML.
type Duration time.Duration

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var raw string
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("timeout must be a duration string like \"30s\"")
	}
	v, err := time.ParseDuration(raw)
	if err != nil {
		return fmt.Errorf("invalid duration %q: %w", raw, err)
	}
	*d = Duration(v)
	return nil
}

func (d Duration) String() string {
	return time.Duration(d).String()
}
