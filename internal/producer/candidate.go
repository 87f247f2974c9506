package producer

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/typemark/shapediff/internal/config"
	sderrors "github.com/typemark/shapediff/internal/errors"
)

// CandidateName is the candidate producer's role name in diagnostics.
const CandidateName = "candidate"

// Candidate runs the MoonBit shaping engine under test: Prepare builds
// the wasm artifact once, Run executes it under wasmtime with the work
// root mounted so the staged font stays readable inside the sandbox.
type Candidate struct {
	root     string // work root; every invocation's cwd
	dir      string // MoonBit package directory relative to the work root
	wasm     string // built artifact relative to the work root
	spectest string // spectest shim relative to the work root
	timeout  time.Duration

	prepareOnce sync.Once
	prepareErr  error
}

// NewCandidate creates a candidate producer rooted at the work root.
// The artifact and shim paths derive from the package directory unless
// overridden in the configuration.
func NewCandidate(root string, cfg *config.CandidateConfig, timeout time.Duration) *Candidate {
	wasm := cfg.Wasm
	if wasm == "" {
		wasm = path.Join(cfg.Dir, "target", "wasm", "release", "build", path.Base(cfg.Dir)+".wasm")
	}
	spectest := cfg.Spectest
	if spectest == "" {
		spectest = path.Join(cfg.Dir, "spectest.wasm")
	}
	return &Candidate{
		root:     root,
		dir:      cfg.Dir,
		wasm:     wasm,
		spectest: spectest,
		timeout:  timeout,
	}
}

// Name returns the producer's role name.
func (c *Candidate) Name() string { return CandidateName }

// Prepare builds the wasm artifact. The build runs at most once per
// Candidate; later calls return the cached outcome.
func (c *Candidate) Prepare(ctx context.Context) error {
	c.prepareOnce.Do(func() {
		c.prepareErr = c.build(ctx)
	})
	return c.prepareErr
}

func (c *Candidate) build(ctx context.Context) error {
	argv := candidateBuildArgs(c.dir)

	res, err := runCommand(ctx, c.root, c.timeout, argv...)
	if res.timedOut {
		return sderrors.Preparation(CandidateName,
			fmt.Sprintf("moon build timed out after %v", c.timeout),
			res.status, res.stdout, res.stderr)
	}
	if err != nil {
		return sderrors.Preparation(CandidateName,
			fmt.Sprintf("moon build failed (exit=%d)", res.status),
			res.status, res.stdout, res.stderr)
	}

	if _, err := os.Stat(filepath.Join(c.root, filepath.FromSlash(c.wasm))); err != nil {
		return sderrors.Preparation(CandidateName,
			fmt.Sprintf("wasm artifact not found at %s after build", c.wasm),
			0, res.stdout, res.stderr)
	}
	if _, err := os.Stat(filepath.Join(c.root, filepath.FromSlash(c.spectest))); err != nil {
		return sderrors.Preparation(CandidateName,
			fmt.Sprintf("spectest shim not found at %s", c.spectest),
			0, res.stdout, res.stderr)
	}

	return nil
}

// Run shapes one case through the built artifact.
func (c *Candidate) Run(ctx context.Context, fontPath, text string, size float64) (string, error) {
	argv := candidateRunArgs(c.wasm, c.spectest, fontPath, text, size)

	res, err := runCommand(ctx, c.root, c.timeout, argv...)
	if res.timedOut {
		return "", sderrors.Execution(CandidateName,
			fmt.Sprintf("wasmtime run timed out after %v", c.timeout),
			res.status, res.stdout, res.stderr)
	}
	if err != nil {
		return "", sderrors.Execution(CandidateName,
			fmt.Sprintf("wasmtime run failed (exit=%d)", res.status),
			res.status, res.stdout, res.stderr)
	}

	return strings.TrimSpace(res.stdout), nil
}

// candidateBuildArgs constructs the moon build invocation.
// Separated for testability without spawning moon.
func candidateBuildArgs(dir string) []string {
	return []string{"moon", "build", "-C", dir, "--target", "wasm", "--release", "-d"}
}

// candidateRunArgs constructs the wasmtime invocation for one case.
// The guest is granted access to "." so it can read the staged font
// through the work-root-relative path.
func candidateRunArgs(wasm, spectest, fontPath, text string, size float64) []string {
	return []string{
		"wasmtime", "run",
		"--dir", ".",
		"--preload", "spectest=" + spectest,
		wasm,
		fontPath, text, formatSize(size),
	}
}
