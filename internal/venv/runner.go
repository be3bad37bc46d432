// SPDX-License-Identifier: MPL-2.0

package venv

import (
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"

	"github.com/charmbracelet/log"
	"mvdan.cc/sh/v3/syntax"
)

// stderrTailSize bounds how much tool stderr is kept for CreationError.
const stderrTailSize = 4096

type (
	// ExecCommandFunc is the function signature for creating exec.Cmd.
	// This allows injection of mock implementations for testing.
	ExecCommandFunc func(ctx context.Context, name string, arg ...string) *exec.Cmd

	// Runner spawns backend tools. Standard output is discarded unless
	// verbose; standard error is always forwarded.
	Runner struct {
		execCommand ExecCommandFunc
		logger      *log.Logger
		verbose     bool
		stdout      io.Writer
		stderr      io.Writer
	}

	// RunnerOption configures a Runner.
	RunnerOption func(*Runner)

	// tailBuffer keeps the last max bytes written to it.
	tailBuffer struct {
		buf []byte
		max int
	}
)

// WithExecCommand sets a custom exec command function for testing.
func WithExecCommand(fn ExecCommandFunc) RunnerOption {
	return func(r *Runner) {
		r.execCommand = fn
	}
}

// WithVerbose streams tool stdout and logs commands at debug level.
func WithVerbose(verbose bool) RunnerOption {
	return func(r *Runner) {
		r.verbose = verbose
	}
}

// WithOutput sets where tool output is forwarded.
func WithOutput(stdout, stderr io.Writer) RunnerOption {
	return func(r *Runner) {
		r.stdout = stdout
		r.stderr = stderr
	}
}

// WithLogger replaces the runner's logger.
func WithLogger(logger *log.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = logger
	}
}

// NewRunner creates a Runner that spawns real processes.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		execCommand: exec.CommandContext,
		stdout:      os.Stdout,
		stderr:      os.Stderr,
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.logger == nil {
		r.logger = log.NewWithOptions(r.stderr, log.Options{Prefix: "venv"})
	}
	if r.verbose {
		r.logger.SetLevel(log.DebugLevel)
	}
	return r
}

// Logger returns the runner's logger.
func (r *Runner) Logger() *log.Logger { return r.logger }

// Verbose reports whether tool output is streamed.
func (r *Runner) Verbose() bool { return r.verbose }

// Run executes argv and blocks until it exits. Canceling ctx kills the
// process. Any failure is a *CreationError carrying argv and the stderr tail.
func (r *Runner) Run(ctx context.Context, argv []string) error {
	if len(argv) == 0 {
		return &CreationError{Err: errors.New("empty command")}
	}

	r.logger.Debug("Run command", "cmd", quoteCommand(argv))

	cmd := r.execCommand(ctx, argv[0], argv[1:]...)
	if r.verbose {
		cmd.Stdout = r.stdout
	} else {
		cmd.Stdout = io.Discard
	}
	tail := &tailBuffer{max: stderrTailSize}
	cmd.Stderr = io.MultiWriter(r.stderr, tail)

	if err := cmd.Run(); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			err = errors.Join(err, ctxErr)
		}
		return &CreationError{Command: argv, Stderr: tail.String(), Err: err}
	}
	return nil
}

func (t *tailBuffer) Write(p []byte) (int, error) {
	n := len(p)
	if n >= t.max {
		t.buf = append(t.buf[:0], p[n-t.max:]...)
		return n, nil
	}
	if over := len(t.buf) + n - t.max; over > 0 {
		t.buf = t.buf[over:]
	}
	t.buf = append(t.buf, p...)
	return n, nil
}

func (t *tailBuffer) String() string {
	return strings.TrimSpace(string(t.buf))
}

// quoteCommand renders argv as a command line a POSIX shell would accept.
func quoteCommand(argv []string) string {
	parts := make([]string, len(argv))
	for i, arg := range argv {
		quoted, err := syntax.Quote(arg, syntax.LangPOSIX)
		if err != nil {
			quoted = arg
		}
		parts[i] = quoted
	}
	return strings.Join(parts, " ")
}
