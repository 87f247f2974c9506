// Package producer runs the two shaping implementations as external
// processes and returns their raw structured output.
//
// Each producer is invoked with exactly three positional inputs — the
// staged font path (relative to the work root), the text, and the
// decimal size — and is expected to emit one self-describing JSON
// document on stdout. Diagnostic logging on stderr is tolerated and
// only surfaced on failure.
package producer

import (
	"bytes"
	"context"
	"errors"
	"os"
	"os/exec"
	"strconv"
	"time"
)

// Producer abstracts "run an implementation with (font, text, size) and
// return its raw structured-output text". Case and suite drivers depend
// only on this interface, never on process-invocation details.
type Producer interface {
	// Name identifies the producer's role in diagnostics.
	Name() string

	// Prepare performs any one-time setup needed before the first Run.
	// It is idempotent: calling it when already prepared must not redo
	// expensive work or fail.
	Prepare(ctx context.Context) error

	// Run executes the implementation once and returns its stdout
	// trimmed of surrounding whitespace. The call blocks until the
	// underlying process terminates or times out.
	Run(ctx context.Context, fontPath, text string, size float64) (string, error)
}

// execResult holds the captured streams and exit status of one
// subprocess invocation.
type execResult struct {
	stdout   string
	stderr   string
	status   int
	timedOut bool
}

// runCommand executes argv from dir with both streams captured. A
// non-nil error is returned for non-zero exit, abnormal termination,
// or timeout expiry; the result is populated in every case.
func runCommand(ctx context.Context, dir string, timeout time.Duration, argv ...string) (execResult, error) {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, timeout)
		defer cancel()
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = dir
	cmd.Env = os.Environ()

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()

	res := execResult{
		stdout:   stdout.String(),
		stderr:   stderr.String(),
		status:   exitStatus(err),
		timedOut: errors.Is(ctx.Err(), context.DeadlineExceeded),
	}
	return res, err
}

// exitStatus extracts the subprocess exit status, or 0 when the process
// never ran or was killed by a signal.
func exitStatus(err error) int {
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		if code := exitErr.ExitCode(); code > 0 {
			return code
		}
	}
	return 0
}

// formatSize renders the point size as the decimal positional argument
// both producers receive. Both variants get the identical rendering to
// guarantee a fair comparison.
func formatSize(size float64) string {
	return strconv.FormatFloat(size, 'g', -1, 64)
}
