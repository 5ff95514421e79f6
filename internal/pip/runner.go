// Package pip shells out to the pip executable and turns its output into
// structured package metadata. All calls block until the subprocess exits
// and are intended to run on background goroutines, never on the UI loop.
package pip

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// ErrorKind classifies a failed pip invocation.
type ErrorKind int

const (
	// ErrExecutableNotFound means pip could not be located on PATH.
	ErrExecutableNotFound ErrorKind = iota
	// ErrNonZeroExit means pip ran but exited with a non-zero status.
	ErrNonZeroExit
)

// CommandError is returned for any failed pip invocation. Stdout and
// Stderr carry whatever the process produced before failing.
type CommandError struct {
	Kind   ErrorKind
	Args   []string
	Stdout string
	Stderr string
	Err    error
}

func (e *CommandError) Error() string {
	switch e.Kind {
	case ErrExecutableNotFound:
		return fmt.Sprintf("pip: executable not found: %v", e.Err)
	default:
		msg := strings.TrimSpace(e.Stderr)
		if msg == "" {
			msg = strings.TrimSpace(e.Stdout)
		}
		if msg == "" {
			return fmt.Sprintf("pip %s: %v", strings.Join(e.Args, " "), e.Err)
		}
		return fmt.Sprintf("pip %s: %s", strings.Join(e.Args, " "), msg)
	}
}

func (e *CommandError) Unwrap() error { return e.Err }

// Runner invokes the pip executable. Path may be a bare name resolved
// via PATH or an absolute path to a specific interpreter's pip.
type Runner struct {
	Path string
}

// NewRunner returns a Runner for the given pip path.
func NewRunner(path string) *Runner {
	return &Runner{Path: path}
}

// Run executes pip with args and waits for it to exit. When capture is
// true the trimmed stdout is returned; otherwise stdout is discarded and
// the returned string is empty. Stderr is always collected so failures
// carry their diagnostic text.
func (r *Runner) Run(ctx context.Context, capture bool, args ...string) (string, error) {
	exe, err := exec.LookPath(r.Path)
	if err != nil {
		return "", &CommandError{Kind: ErrExecutableNotFound, Args: args, Err: err}
	}

	cmd := exec.CommandContext(ctx, exe, args...)
	hideConsoleWindow(cmd)

	var stdout, stderr bytes.Buffer
	if capture {
		cmd.Stdout = &stdout
	}
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return "", &CommandError{
			Kind:   ErrNonZeroExit,
			Args:   args,
			Stdout: stdout.String(),
			Stderr: stderr.String(),
			Err:    err,
		}
	}

	return strings.TrimSpace(stdout.String()), nil
}
