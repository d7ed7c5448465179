// Package shell runs external processes and relays their output line by line.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os"
	"os/exec"
	"strings"
	"sync"

	"github.com/creack/pty"
	"go.trai.ch/dcmget/internal/core/domain"
	"go.trai.ch/dcmget/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// Executor implements ports.Executor using os/exec.
// Output is relayed through the logger as "<name>> <line>".
type Executor struct {
	logger  ports.Logger
	usePTY  bool
	environ func() []string
	mu      sync.Mutex
}

// Option configures an Executor.
type Option func(*Executor)

// WithPTY runs processes under a pseudo-terminal instead of pipes.
func WithPTY(enable bool) Option {
	return func(e *Executor) {
		e.usePTY = enable
	}
}

// WithEnviron replaces the base environment inherited by processes.
func WithEnviron(environ func() []string) Option {
	return func(e *Executor) {
		e.environ = environ
	}
}

// NewExecutor creates a new Executor relaying output to logger.
func NewExecutor(logger ports.Logger, opts ...Option) *Executor {
	e := &Executor{
		logger:  logger,
		environ: os.Environ,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// SetPTY switches between pseudo-terminal and pipe mode for later calls.
func (e *Executor) SetPTY(enable bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.usePTY = enable
}

// Execute runs the command to completion.
// Non-zero exits are reported through the outcome. The error is set only when
// the process could not be started or was interrupted through ctx.
func (e *Executor) Execute(ctx context.Context, c *domain.Command) (domain.ProcessOutcome, error) {
	cmd := exec.CommandContext(ctx, c.Path, c.Args...) //nolint:gosec // path resolved from PATH by the probe
	cmd.Dir = c.Dir
	cmd.Env = append(e.environ(), c.Env...)

	prefix := c.Name
	if prefix == "" {
		prefix = c.Path
	}
	stdout := e.relay(prefix)
	stderr := e.relay(prefix)

	e.mu.Lock()
	usePTY := e.usePTY
	e.mu.Unlock()

	var err error
	if usePTY {
		err = runPTY(cmd, stdout)
	} else {
		err = runPipes(cmd, stdout, stderr)
	}

	return outcome(ctx, c, err)
}

func (e *Executor) relay(prefix string) *logWriter {
	return &logWriter{logger: e.logger, prefix: prefix + "> ", mu: &e.mu}
}

// runPipes starts cmd with separate stdout and stderr pipes. Both are drained
// to EOF before Wait, as Wait closes the pipes.
func runPipes(cmd *exec.Cmd, stdout, stderr *logWriter) error {
	outPipe, err := cmd.StdoutPipe()
	if err != nil {
		return startError(err)
	}
	errPipe, err := cmd.StderrPipe()
	if err != nil {
		return startError(err)
	}

	if err := cmd.Start(); err != nil {
		return startError(err)
	}

	var g errgroup.Group
	g.Go(func() error { return drain(stdout, outPipe) })
	g.Go(func() error { return drain(stderr, errPipe) })
	_ = g.Wait()

	return cmd.Wait()
}

// runPTY starts cmd under a pseudo-terminal, merging stdout and stderr.
func runPTY(cmd *exec.Cmd, out *logWriter) error {
	ptmx, err := pty.Start(cmd)
	if err != nil {
		return startError(err)
	}

	ioDone := make(chan struct{})
	go func() {
		defer close(ioDone)
		defer func() { _ = ptmx.Close() }()
		// Reading a pty whose child exited yields EIO on Linux; treat it as EOF.
		_ = drain(out, ptmx)
	}()

	err = cmd.Wait()
	<-ioDone
	return err
}

func drain(w *logWriter, r io.Reader) error {
	_, err := io.Copy(w, r)
	_ = w.Close()
	return err
}

type startErr struct{ error }

func (s startErr) Unwrap() error { return s.error }

func startError(err error) error {
	return startErr{err}
}

func outcome(ctx context.Context, c *domain.Command, err error) (domain.ProcessOutcome, error) {
	if err == nil {
		return domain.ProcessOutcome{ExitCode: 0}, nil
	}

	var se startErr
	if errors.As(err, &se) {
		return domain.ProcessOutcome{ExitCode: -1}, zerr.With(
			zerr.Wrap(se.error, domain.ErrProcessStartFailed.Error()),
			"command", c.Name,
		)
	}

	if ctxErr := ctx.Err(); ctxErr != nil {
		return domain.ProcessOutcome{ExitCode: -1}, zerr.With(zerr.Wrap(ctxErr, "process interrupted"), "command", c.Name)
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		return domain.ProcessOutcome{ExitCode: exitErr.ExitCode()}, nil
	}

	return domain.ProcessOutcome{ExitCode: -1}, zerr.With(zerr.Wrap(err, "command failed"), "command", c.Name)
}

// logWriter splits written bytes into lines and logs each one with a prefix.
// A carriage return inside a line keeps only the text after it, so progress
// counters collapse to their final value.
type logWriter struct {
	logger ports.Logger
	prefix string
	buf    []byte
	mu     *sync.Mutex
}

func (w *logWriter) Write(p []byte) (int, error) {
	w.buf = append(w.buf, p...)

	for {
		i := bytes.IndexByte(w.buf, '\n')
		if i < 0 {
			break
		}
		w.logLine(w.buf[:i])
		w.buf = w.buf[i+1:]
	}

	return len(p), nil
}

// Close flushes a trailing line without newline.
func (w *logWriter) Close() error {
	if len(w.buf) > 0 {
		w.logLine(w.buf)
		w.buf = nil
	}
	return nil
}

func (w *logWriter) logLine(line []byte) {
	msg := strings.TrimRight(string(line), "\r")
	if i := strings.LastIndexByte(msg, '\r'); i >= 0 {
		msg = msg[i+1:]
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	w.logger.Info(w.prefix + msg)
}
