// Package errors provides structured error types and exit codes for shapediff.
package errors

import (
	"fmt"
	"strings"
)

// Exit codes used by the shapediff CLI.
const (
	ExitSuccess          = 0 // Every case matched within tolerance
	ExitRuntimeError     = 1 // Structural mismatch, parse failure, or other runtime error
	ExitConfigError      = 2 // Configuration error (invalid config, bad flag value, etc.)
	ExitEnvironmentError = 3 // Environment error (no font found, missing checkout, etc.)
)

// ErrorKind represents the type of error.
type ErrorKind int

const (
	KindRuntime ErrorKind = iota
	KindParse
	KindPreparation
	KindExecution
	KindMismatch
	KindConfig
	KindEnvironment
)

// ShapediffError is the base error type for shapediff.
//
// For KindPreparation and KindExecution the Status, Stdout, and Stderr
// fields carry the underlying subprocess's exit status and captured
// streams verbatim so a toolchain problem is diagnosable without a rerun.
type ShapediffError struct {
	Kind     ErrorKind
	Message  string
	Producer string // Producer name if applicable ("reference", "candidate")
	Status   int    // Subprocess exit status if applicable
	Stdout   string // Captured stdout of the failing subprocess
	Stderr   string // Captured stderr of the failing subprocess
	Cause    error  // Underlying error
}

func (e *ShapediffError) Error() string {
	if e.Producer != "" {
		return fmt.Sprintf("[%s] %s", e.Producer, e.Message)
	}
	return e.Message
}

func (e *ShapediffError) Unwrap() error {
	return e.Cause
}

// ExitCode returns the appropriate exit code for this error.
// Preparation and execution failures pass the subprocess's own exit
// status through unchanged for diagnosability.
func (e *ShapediffError) ExitCode() int {
	switch e.Kind {
	case KindPreparation, KindExecution:
		if e.Status != 0 {
			return e.Status
		}
		return ExitRuntimeError
	case KindConfig:
		return ExitConfigError
	case KindEnvironment:
		return ExitEnvironmentError
	default:
		return ExitRuntimeError
	}
}

// Diagnostic returns the captured subprocess streams formatted for the
// diagnostic stream, or "" when nothing was captured.
func (e *ShapediffError) Diagnostic() string {
	var b strings.Builder
	if e.Stdout != "" {
		b.WriteString("stdout:\n")
		b.WriteString(e.Stdout)
		if !strings.HasSuffix(e.Stdout, "\n") {
			b.WriteString("\n")
		}
	}
	if e.Stderr != "" {
		b.WriteString("stderr:\n")
		b.WriteString(e.Stderr)
		if !strings.HasSuffix(e.Stderr, "\n") {
			b.WriteString("\n")
		}
	}
	return b.String()
}

// New creates a new runtime error.
func New(message string) *ShapediffError {
	return &ShapediffError{
		Kind:    KindRuntime,
		Message: message,
	}
}

// Newf creates a new runtime error with formatting.
func Newf(format string, args ...interface{}) *ShapediffError {
	return New(fmt.Sprintf(format, args...))
}

// Config creates a new configuration error.
func Config(message string) *ShapediffError {
	return &ShapediffError{
		Kind:    KindConfig,
		Message: message,
	}
}

// Configf creates a new configuration error with formatting.
func Configf(format string, args ...interface{}) *ShapediffError {
	return Config(fmt.Sprintf(format, args...))
}

// Environment creates a new environment error.
func Environment(message string) *ShapediffError {
	return &ShapediffError{
		Kind:    KindEnvironment,
		Message: message,
	}
}

// Environmentf creates a new environment error with formatting.
func Environmentf(format string, args ...interface{}) *ShapediffError {
	return Environment(fmt.Sprintf(format, args...))
}

// Parse creates a parse error for malformed producer output.
// The raw offending text is preserved in Stdout so callers never
// swallow the original document on failure.
func Parse(producer, raw string, cause error) *ShapediffError {
	return &ShapediffError{
		Kind:     KindParse,
		Message:  fmt.Sprintf("failed to parse output: %v", cause),
		Producer: producer,
		Stdout:   raw,
		Cause:    cause,
	}
}

// Preparation creates a preparation error for a failed setup step.
func Preparation(producer, message string, status int, stdout, stderr string) *ShapediffError {
	return &ShapediffError{
		Kind:     KindPreparation,
		Message:  message,
		Producer: producer,
		Status:   status,
		Stdout:   stdout,
		Stderr:   stderr,
	}
}

// Execution creates an execution error for a failed producer run.
func Execution(producer, message string, status int, stdout, stderr string) *ShapediffError {
	return &ShapediffError{
		Kind:     KindExecution,
		Message:  message,
		Producer: producer,
		Status:   status,
		Stdout:   stdout,
		Stderr:   stderr,
	}
}

// Mismatch creates a mismatch error for a structural divergence.
func Mismatch(message string) *ShapediffError {
	return &ShapediffError{
		Kind:    KindMismatch,
		Message: message,
	}
}

// Wrap wraps an error with additional context.
func Wrap(err error, message string) *ShapediffError {
	return &ShapediffError{
		Kind:    KindRuntime,
		Message: message,
		Cause:   err,
	}
}

// GetExitCode returns the exit code for an error.
func GetExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	if se, ok := err.(*ShapediffError); ok {
		return se.ExitCode()
	}
	return ExitRuntimeError
}

// IsKind reports whether err is a ShapediffError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	se, ok := err.(*ShapediffError)
	return ok && se.Kind == kind
}
