package producer

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/typemark/shapediff/internal/config"
	sderrors "github.com/typemark/shapediff/internal/errors"
)

// ReferenceName is the reference producer's role name in diagnostics.
const ReferenceName = "reference"

// Reference runs the trusted Rust shaping engine via cargo. It is the
// oracle the candidate's output is checked against.
type Reference struct {
	root    string // work root; every invocation's cwd
	dir     string // checkout directory relative to the work root
	bin     string // cargo binary that dumps one shaping result as JSON
	timeout time.Duration
}

// NewReference creates a reference producer rooted at the work root.
func NewReference(root string, cfg *config.ReferenceConfig, timeout time.Duration) *Reference {
	return &Reference{
		root:    root,
		dir:     cfg.Dir,
		bin:     cfg.Bin,
		timeout: timeout,
	}
}

// Name returns the producer's role name.
func (r *Reference) Name() string { return ReferenceName }

// Prepare verifies the reference checkout exists. Cargo builds lazily
// on first run, so there is no expensive setup to amortize; the check
// is naturally idempotent.
func (r *Reference) Prepare(ctx context.Context) error {
	manifest := filepath.Join(r.root, r.dir, "Cargo.toml")
	if _, err := os.Stat(manifest); err != nil {
		return sderrors.Environmentf(
			"reference checkout not found at ./%s; place a checkout of the Rust reference implementation there",
			r.dir)
	}
	return nil
}

// Run shapes one case through the reference engine.
func (r *Reference) Run(ctx context.Context, fontPath, text string, size float64) (string, error) {
	argv := referenceRunArgs(r.dir, r.bin, fontPath, text, size)

	res, err := runCommand(ctx, r.root, r.timeout, argv...)
	if res.timedOut {
		return "", sderrors.Execution(ReferenceName,
			fmt.Sprintf("cargo run timed out after %v", r.timeout),
			res.status, res.stdout, res.stderr)
	}
	if err != nil {
		return "", sderrors.Execution(ReferenceName,
			fmt.Sprintf("cargo run failed (exit=%d)", res.status),
			res.status, res.stdout, res.stderr)
	}

	return strings.TrimSpace(res.stdout), nil
}

// referenceRunArgs constructs the cargo invocation for one case.
// Separated for testability without spawning cargo.
func referenceRunArgs(dir, bin, fontPath, text string, size float64) []string {
	return []string{
		"cargo", "run", "--quiet",
		"--manifest-path", path.Join(dir, "Cargo.toml"),
		"--bin", bin,
		"--",
		fontPath, text, formatSize(size),
	}
}
