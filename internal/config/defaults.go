package config

import "time"

// Default configuration values. They mirror the layout the verifier was
// written against: a Rust reference checkout next to the work root and a
// MoonBit dump package compiled to wasm.
const (
	DefaultReferenceDir = "swash-reference"
	DefaultReferenceBin = "dump_json"
	DefaultCandidateDir = "tools/moon_swash_dump"
	DefaultScratchDir   = ".tmp/fonts"
	DefaultSize         = 14.0
	DefaultTolerance    = 0.02
	DefaultTimeout      = Duration(2 * time.Minute)
)

// DefaultTexts returns the fixed sample set shaped when no texts are given.
func DefaultTexts() []string {
	return []string{"abc", "Hello, world!", "AV"}
}

// applyDefaults fills in default values for unset configuration fields.
func applyDefaults(cfg *Config) {
	applyReferenceDefaults(cfg)
	applyCandidateDefaults(cfg)
	applySuiteDefaults(cfg)
}

func applyReferenceDefaults(cfg *Config) {
	if cfg.Reference == nil {
		cfg.Reference = &ReferenceConfig{}
	}
	if cfg.Reference.Dir == "" {
		cfg.Reference.Dir = DefaultReferenceDir
	}
	if cfg.Reference.Bin == "" {
		cfg.Reference.Bin = DefaultReferenceBin
	}
}

func applyCandidateDefaults(cfg *Config) {
	if cfg.Candidate == nil {
		cfg.Candidate = &CandidateConfig{}
	}
	if cfg.Candidate.Dir == "" {
		cfg.Candidate.Dir = DefaultCandidateDir
	}
}

func applySuiteDefaults(cfg *Config) {
	if cfg.Suite == nil {
		cfg.Suite = &SuiteConfig{}
	}
	if len(cfg.Suite.Texts) == 0 {
		cfg.Suite.Texts = DefaultTexts()
	}
	if cfg.Suite.Size == 0 {
		cfg.Suite.Size = DefaultSize
	}
	if cfg.Suite.Tolerance == nil {
		tol := DefaultTolerance
		cfg.Suite.Tolerance = &tol
	}
	if cfg.Suite.Scratch == "" {
		cfg.Suite.Scratch = DefaultScratchDir
	}
	if cfg.Suite.Timeout == 0 {
		cfg.Suite.Timeout = DefaultTimeout
	}
}
