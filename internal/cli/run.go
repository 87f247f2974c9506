package cli

import (
	"context"
	goerrors "errors"
	"path/filepath"
	"time"

	"github.com/typemark/shapediff/internal/config"
	"github.com/typemark/shapediff/internal/errors"
	"github.com/typemark/shapediff/internal/fonts"
	"github.com/typemark/shapediff/internal/producer"
	"github.com/typemark/shapediff/internal/project"
	"github.com/typemark/shapediff/internal/suite"
)

// cmdRun loads configuration, stages the font, and runs the comparison
// suite. Flags take precedence over configuration-file values.
func cmdRun(opts *Options) int {
	proj, code := loadProjectFor(opts)
	if proj == nil {
		return code
	}
	for _, w := range proj.Warnings {
		out.WarningSimple("%s", w)
	}
	cfg := proj.Config

	texts := cfg.Suite.Texts
	if len(opts.Texts) > 0 {
		texts = opts.Texts
	}
	size := cfg.Suite.Size
	if opts.Size != nil {
		size = *opts.Size
	}
	tolerance := *cfg.Suite.Tolerance
	if opts.Tolerance != nil {
		tolerance = *opts.Tolerance
	}

	fontPath, err := fonts.Resolve(opts.Font)
	if err != nil {
		return reportError(err)
	}
	staged, err := fonts.Stage(fontPath, proj.Root, cfg.Suite.Scratch)
	if err != nil {
		return reportError(err)
	}
	out.Verbose("staged font %s as %s", fontPath, staged)

	timeout := time.Duration(cfg.Suite.Timeout)
	reference := producer.NewReference(proj.Root, cfg.Reference, timeout)
	candidate := producer.NewCandidate(proj.Root, cfg.Candidate, timeout)

	runner := suite.New(reference, candidate, out, suite.Options{
		Tolerance:      tolerance,
		ValidateSchema: opts.Schema || cfg.Suite.ValidateSchema,
		Dump:           opts.Dump,
	})

	if err := runner.RunSuite(context.Background(), staged, texts, size); err != nil {
		// Case failures are already reported by the suite runner.
		var failure *suite.CaseFailure
		if goerrors.As(err, &failure) {
			return failure.ExitCode()
		}
		return reportError(err)
	}

	out.FinalSuccess("all %d cases matched (tol=%v)", len(texts), tolerance)
	return errors.ExitSuccess
}

// loadProjectFor resolves the work root and configuration, honoring an
// explicit --config path. Returns the project and 0, or nil and the
// exit code on failure.
func loadProjectFor(opts *Options) (*project.Project, int) {
	if opts.ConfigPath != "" {
		abs, err := filepath.Abs(opts.ConfigPath)
		if err != nil {
			out.ErrorPrefix("%v", err)
			return nil, errors.ExitConfigError
		}
		cfg, warnings, err := config.LoadAndValidate(abs)
		if err != nil {
			out.ErrorPrefix("%v", err)
			return nil, errors.GetExitCode(err)
		}
		return &project.Project{Root: filepath.Dir(abs), Config: cfg, Warnings: warnings}, 0
	}

	proj, err := project.LoadProject()
	if err != nil {
		out.ErrorPrefix("%v", err)
		return nil, errors.GetExitCode(err)
	}
	return proj, 0
}

// reportError prints an error with its captured subprocess streams, if
// any, and returns its exit code.
func reportError(err error) int {
	out.ErrorPrefix("%v", err)
	var se *errors.ShapediffError
	if goerrors.As(err, &se) {
		if diag := se.Diagnostic(); diag != "" {
			out.Diagnostic(diag)
		}
	}
	return errors.GetExitCode(err)
}
