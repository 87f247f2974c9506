// Package shapediff provides public constants for external tools
// integrating with the shapediff CLI.
package shapediff

// Exit codes returned by the shapediff CLI.
// These constants allow wrapper scripts and CI pipelines to check exit
// codes symbolically rather than using magic numbers.
//
// Preparation and execution failures of a producer subprocess pass the
// subprocess's own exit status through unchanged, so any code not
// listed here originates from cargo, moon, or wasmtime.
const (
	// ExitSuccess indicates every case matched.
	ExitSuccess = 0

	// ExitFailure indicates a runtime failure: a structural mismatch
	// between the two implementations, or unparsable producer output.
	ExitFailure = 1

	// ExitConfigError indicates invalid configuration or flags.
	ExitConfigError = 2

	// ExitEnvError indicates a missing prerequisite (no usable font,
	// missing reference checkout, etc.).
	ExitEnvError = 3
)
