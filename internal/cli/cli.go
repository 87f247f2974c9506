// Package cli provides command-line interface functionality for shapediff.
package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/typemark/shapediff/internal/errors"
	"github.com/typemark/shapediff/internal/output"
)

// Version is set at build time.
var Version = "dev"

// out is the shared output writer for the CLI.
var out = output.New()

// Options holds parsed command-line flags. Unset numeric flags stay
// nil so configuration-file values are not clobbered by defaults.
type Options struct {
	Font       string
	Texts      []string
	Size       *float64
	Tolerance  *float64
	Dump       bool
	Schema     bool
	ConfigPath string
	Quiet      bool
	Verbose    bool
}

// Run executes the CLI with the given arguments and returns an exit code.
func Run(args []string) int {
	for _, arg := range args {
		switch arg {
		case "-h", "--help":
			printUsage()
			return errors.ExitSuccess
		case "--version":
			fmt.Printf("shapediff %s\n", Version)
			return errors.ExitSuccess
		}
	}

	opts, err := parseFlags(args)
	if err != nil {
		out.ErrorPrefix("%v", err)
		return errors.ExitConfigError
	}

	out.SetQuiet(opts.Quiet)
	out.SetVerbose(opts.Verbose)

	return cmdRun(opts)
}

// parseFlags manually parses flags from arguments.
//
// Manual parsing is used instead of stdlib flag because --text is
// repeatable and custom error messages with usage hints are needed.
func parseFlags(args []string) (*Options, error) {
	opts := &Options{}

	i := 0
	for i < len(args) {
		arg := args[i]

		value := func(name string) (string, error) {
			if strings.HasPrefix(arg, name+"=") {
				return strings.TrimPrefix(arg, name+"="), nil
			}
			if i+1 >= len(args) {
				return "", fmt.Errorf("%s requires a value", name)
			}
			i++
			return args[i], nil
		}

		switch {
		case arg == "--font" || strings.HasPrefix(arg, "--font="):
			v, err := value("--font")
			if err != nil {
				return nil, err
			}
			opts.Font = v
		case arg == "--text" || strings.HasPrefix(arg, "--text="):
			v, err := value("--text")
			if err != nil {
				return nil, err
			}
			opts.Texts = append(opts.Texts, v)
		case arg == "--size" || strings.HasPrefix(arg, "--size="):
			v, err := value("--size")
			if err != nil {
				return nil, err
			}
			size, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid --size value %q: must be a number", v)
			}
			opts.Size = &size
		case arg == "--tol" || strings.HasPrefix(arg, "--tol="):
			v, err := value("--tol")
			if err != nil {
				return nil, err
			}
			tol, err := strconv.ParseFloat(v, 64)
			if err != nil {
				return nil, fmt.Errorf("invalid --tol value %q: must be a number", v)
			}
			opts.Tolerance = &tol
		case arg == "--config" || strings.HasPrefix(arg, "--config="):
			v, err := value("--config")
			if err != nil {
				return nil, err
			}
			opts.ConfigPath = v
		case arg == "--dump":
			opts.Dump = true
		case arg == "--schema":
			opts.Schema = true
		case arg == "-q" || arg == "--quiet":
			opts.Quiet = true
		case arg == "-v" || arg == "--verbose":
			opts.Verbose = true
		default:
			return nil, fmt.Errorf("unknown argument %q\n  run 'shapediff --help' for usage", arg)
		}
		i++
	}

	if err := validateOptions(opts); err != nil {
		return nil, err
	}

	return opts, nil
}

// validateOptions checks that parsed options are valid.
func validateOptions(opts *Options) error {
	if opts.Size != nil && *opts.Size <= 0 {
		return fmt.Errorf("invalid --size value %v: must be positive", *opts.Size)
	}
	if opts.Tolerance != nil && *opts.Tolerance < 0 {
		return fmt.Errorf("invalid --tol value %v: must be non-negative", *opts.Tolerance)
	}
	if opts.Quiet && opts.Verbose {
		return fmt.Errorf("--quiet and --verbose are mutually exclusive")
	}
	return nil
}

func printUsage() {
	w := output.New()

	w.HelpTitle("shapediff - differential tester for text shaping engines")

	w.HelpSection("Usage:")
	w.HelpUsage("shapediff [flags]")

	w.HelpSection("Flags:")
	w.HelpFlag("--font <path>", "Font file to shape (default: first available system font)", 16)
	w.HelpFlag("--text <string>", "Text to shape; repeatable (default: built-in sample set)", 16)
	w.HelpFlag("--size <points>", "Point size (default 14)", 16)
	w.HelpFlag("--tol <number>", "Numeric comparison tolerance (default 0.02)", 16)
	w.HelpFlag("--dump", "Print both raw outputs on mismatch", 16)
	w.HelpFlag("--schema", "Validate outputs against the shaping-result schema", 16)
	w.HelpFlag("--config <path>", "Configuration file (default: discover shapediff.yaml upward)", 16)
	w.HelpFlag("-q, --quiet", "Suppress per-case output", 16)
	w.HelpFlag("-v, --verbose", "Print producer invocations", 16)
	w.HelpFlag("--version", "Print version and exit", 16)
	w.HelpFlag("-h, --help", "Show this help", 16)

	w.HelpSection("Examples:")
	w.HelpExample("shapediff", "Run the default sample suite")
	w.HelpExample("shapediff --text \"fi ffi\" --size 24", "Run one custom case")
	w.HelpExample("shapediff --dump --tol 0", "Exact comparison with full output dumps")
}
