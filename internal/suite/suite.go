// Package suite drives (font, text, size) comparison cases end-to-end:
// invoke both producers, parse both outputs, compare, report.
//
// Execution is fully sequential. Cases run in text order and the suite
// stops at the first failure; no case ever runs after a known failure.
package suite

import (
	"context"
	"errors"
	"fmt"

	"github.com/typemark/shapediff/internal/compare"
	"github.com/typemark/shapediff/internal/document"
	sderrors "github.com/typemark/shapediff/internal/errors"
	"github.com/typemark/shapediff/internal/output"
	"github.com/typemark/shapediff/internal/producer"
	"github.com/typemark/shapediff/internal/schema"
)

// Case identifies one comparison unit.
type Case struct {
	Font string // staged font path, relative to the work root
	Text string
	Size float64
}

// CaseFailure wraps whatever went wrong in one case with the case's
// identity. Exactly one of Mismatch and Err is set: Mismatch for a
// structural divergence between two well-formed outputs, Err for a
// producer or parse failure — "the implementations disagree" is never
// confused with "the tooling is broken".
type CaseFailure struct {
	Case     Case
	Mismatch *compare.Mismatch
	Err      error
	RefRaw   string // raw reference output, when it was obtained
	CandRaw  string // raw candidate output, when it was obtained
}

func (f *CaseFailure) Error() string {
	if f.Mismatch != nil {
		return fmt.Sprintf("text=%q size=%v font=%s: %s", f.Case.Text, f.Case.Size, f.Case.Font, f.Mismatch)
	}
	return fmt.Sprintf("text=%q size=%v font=%s: %v", f.Case.Text, f.Case.Size, f.Case.Font, f.Err)
}

func (f *CaseFailure) Unwrap() error {
	return f.Err
}

// ExitCode returns the process exit code for this failure: 1 for a
// structural mismatch or parse failure, the underlying subprocess's own
// status for an execution failure.
func (f *CaseFailure) ExitCode() int {
	if f.Mismatch != nil {
		return sderrors.ExitRuntimeError
	}
	return sderrors.GetExitCode(f.Err)
}

// Options configures suite execution.
type Options struct {
	// Tolerance is the maximum allowed absolute difference between two
	// numeric leaves.
	Tolerance float64

	// ValidateSchema gates each parsed output against the embedded
	// shaping-result schema before comparison.
	ValidateSchema bool

	// Dump prints both raw outputs in full on mismatch.
	Dump bool
}

// Runner drives cases against one reference/candidate producer pair.
type Runner struct {
	reference producer.Producer
	candidate producer.Producer
	out       *output.Writer
	opts      Options
}

// New creates a suite runner.
func New(reference, candidate producer.Producer, out *output.Writer, opts Options) *Runner {
	return &Runner{
		reference: reference,
		candidate: candidate,
		out:       out,
		opts:      opts,
	}
}

// RunCase runs one case: reference first, then candidate. If the
// reference fails, its failure is reported and the candidate is never
// invoked. Both parsed trees are owned by this call and discarded after
// comparison.
func (r *Runner) RunCase(ctx context.Context, c Case) *CaseFailure {
	r.out.Verbose("running %s: font=%s text=%q size=%v", r.reference.Name(), c.Font, c.Text, c.Size)
	refRaw, err := r.reference.Run(ctx, c.Font, c.Text, c.Size)
	if err != nil {
		return &CaseFailure{Case: c, Err: err}
	}

	r.out.Verbose("running %s: font=%s text=%q size=%v", r.candidate.Name(), c.Font, c.Text, c.Size)
	candRaw, err := r.candidate.Run(ctx, c.Font, c.Text, c.Size)
	if err != nil {
		return &CaseFailure{Case: c, Err: err, RefRaw: refRaw}
	}

	refDoc, err := document.Parse(refRaw)
	if err != nil {
		return &CaseFailure{Case: c, Err: sderrors.Parse(r.reference.Name(), refRaw, err), RefRaw: refRaw, CandRaw: candRaw}
	}
	candDoc, err := document.Parse(candRaw)
	if err != nil {
		return &CaseFailure{Case: c, Err: sderrors.Parse(r.candidate.Name(), candRaw, err), RefRaw: refRaw, CandRaw: candRaw}
	}

	if r.opts.ValidateSchema {
		if err := schema.ValidateShapingResult(refDoc); err != nil {
			return &CaseFailure{Case: c, Err: sderrors.Parse(r.reference.Name(), refRaw, err), RefRaw: refRaw, CandRaw: candRaw}
		}
		if err := schema.ValidateShapingResult(candDoc); err != nil {
			return &CaseFailure{Case: c, Err: sderrors.Parse(r.candidate.Name(), candRaw, err), RefRaw: refRaw, CandRaw: candRaw}
		}
	}

	if m := compare.Compare(refDoc, candDoc, r.opts.Tolerance); m != nil {
		return &CaseFailure{Case: c, Mismatch: m, RefRaw: refRaw, CandRaw: candRaw}
	}

	return nil
}

// RunSuite prepares both producers exactly once, then iterates texts in
// order, stopping at the first failing case. Each passing case prints a
// one-line acknowledgment; the first failure prints full diagnostic
// context and is returned.
func (r *Runner) RunSuite(ctx context.Context, font string, texts []string, size float64) error {
	if err := r.reference.Prepare(ctx); err != nil {
		return err
	}
	if err := r.candidate.Prepare(ctx); err != nil {
		return err
	}

	for _, text := range texts {
		c := Case{Font: font, Text: text, Size: size}
		if failure := r.RunCase(ctx, c); failure != nil {
			r.report(failure)
			return failure
		}
		r.out.CaseOK(text)
	}

	return nil
}

// report prints the failing case's identity and the specific reason of
// divergence on the diagnostic stream.
func (r *Runner) report(f *CaseFailure) {
	r.out.CaseFailed(f.Case.Text, f.Case.Size, f.Case.Font)

	if f.Mismatch != nil {
		r.out.Errorln("%s", f.Mismatch)
	} else {
		r.out.Errorln("%v", f.Err)
		var se *sderrors.ShapediffError
		if errors.As(f.Err, &se) {
			r.out.Diagnostic(se.Diagnostic())
		}
	}

	if r.opts.Dump {
		if f.RefRaw != "" {
			r.out.Dump(r.reference.Name(), f.RefRaw)
		}
		if f.CandRaw != "" {
			r.out.Dump(r.candidate.Name(), f.CandRaw)
		}
	}
}
