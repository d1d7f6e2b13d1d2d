// Package shell provides the shell executor adapter.
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

	"go.trai.ch/nh/internal/core/domain"
	"go.trai.ch/nh/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Executor = (*Executor)(nil)

// Executor implements ports.Executor using os/exec.
type Executor struct {
	logger    ports.Logger
	telemetry ports.Telemetry
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger, telemetry ports.Telemetry) *Executor {
	return &Executor{
		logger:    logger,
		telemetry: telemetry,
	}
}

// Execute runs the command in its working directory with the current process environment.
// Standard output is logged at info level and standard error at warn level, one line per entry.
func (e *Executor) Execute(ctx context.Context, command domain.Command) error {
	if len(command.Args) == 0 {
		return nil
	}

	vertex := e.telemetry.Record(strings.Join(command.Args, " "))

	//nolint:gosec // arguments are built by the application, never through a shell
	cmd := exec.CommandContext(ctx, command.Args[0], command.Args[1:]...)
	cmd.Dir = command.Dir
	cmd.Env = os.Environ()

	stdout := &lineWriter{emit: e.logger.Info}
	stderr := &lineWriter{emit: e.logger.Warn}
	cmd.Stdout = io.MultiWriter(stdout, vertex.Stdout())
	cmd.Stderr = io.MultiWriter(stderr, vertex.Stderr())

	err := cmd.Run()
	stdout.Flush()
	stderr.Flush()
	vertex.Complete(err)

	if err != nil {
		exitCode := -1 // Unknown or signal
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			exitCode = exitErr.ExitCode()
		}
		failed := zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
		return zerr.With(failed, "command", strings.Join(command.Args, " "))
	}
	return nil
}

// lineWriter buffers partial writes and emits complete lines.
type lineWriter struct {
	mu   sync.Mutex
	buf  bytes.Buffer
	emit func(string)
}

func (w *lineWriter) Write(p []byte) (int, error) {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.buf.Write(p)
	for {
		line, err := w.buf.ReadString('\n')
		if err != nil {
			// Keep the incomplete tail for the next write.
			w.buf.Reset()
			w.buf.WriteString(line)
			break
		}
		w.emit(strings.TrimSuffix(line, "\n"))
	}
	return len(p), nil
}

// Flush emits any buffered incomplete line.
func (w *lineWriter) Flush() {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.buf.Len() > 0 {
		w.emit(w.buf.String())
		w.buf.Reset()
	}
}
