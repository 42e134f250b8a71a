// Package shell provides the subprocess invoker adapter.
package shell

import (
	"bytes"
	"context"
	"errors"
	"io"
	"os/exec"
	"strings"

	"go.trai.ch/grind/internal/core/domain"
	"go.trai.ch/grind/internal/core/ports"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

var _ ports.Invoker = (*Invoker)(nil)

// Invoker implements ports.Invoker using os/exec. Each invocation is a
// blocking call: it returns only after the process has exited and both
// output streams have been captured in full.
type Invoker struct {
	logger ports.Logger
}

// NewInvoker creates a new Invoker.
func NewInvoker(logger ports.Logger) *Invoker {
	return &Invoker{
		logger: logger,
	}
}

// Invoke runs the tool and captures its exit status, stdout and stderr.
// The streams are captured separately and never merged.
//
// An error is returned only when the process could not be launched or
// run to completion; it wraps domain.ErrToolUnavailable. A non-zero
// exit status is an ordinary ToolResult.
func (i *Invoker) Invoke(ctx context.Context, dir, name string, args []string) (domain.ToolResult, error) {
	cmd := exec.CommandContext(ctx, name, args...) //nolint:gosec // tool path comes from configuration
	if dir != "" {
		cmd.Dir = dir
	}

	stdoutPipe, err := cmd.StdoutPipe()
	if err != nil {
		return domain.ToolResult{}, zerr.Wrap(err, "failed to open stdout pipe")
	}
	stderrPipe, err := cmd.StderrPipe()
	if err != nil {
		return domain.ToolResult{}, zerr.Wrap(err, "failed to open stderr pipe")
	}

	i.logger.Info("running " + name + " " + strings.Join(args, " "))

	if err := cmd.Start(); err != nil {
		return domain.ToolResult{}, errors.Join(
			domain.ErrToolUnavailable,
			zerr.With(zerr.Wrap(err, "failed to launch tool"), "tool", name),
		)
	}

	// Drain both pipes concurrently so neither stream can block the
	// process on a full pipe buffer.
	var stdout, stderr bytes.Buffer
	g := new(errgroup.Group)
	g.Go(func() error {
		_, err := io.Copy(&stdout, stdoutPipe)
		return err
	})
	g.Go(func() error {
		_, err := io.Copy(&stderr, stderrPipe)
		return err
	})

	copyErr := g.Wait()
	waitErr := cmd.Wait()

	if copyErr != nil {
		return domain.ToolResult{}, zerr.With(zerr.Wrap(copyErr, "failed to capture tool output"), "tool", name)
	}

	result := domain.ToolResult{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if waitErr != nil {
		var exitErr *exec.ExitError
		if !errors.As(waitErr, &exitErr) {
			return domain.ToolResult{}, errors.Join(
				domain.ErrToolUnavailable,
				zerr.With(zerr.Wrap(waitErr, "tool did not run to completion"), "tool", name),
			)
		}
		result.ExitCode = exitErr.ExitCode()
	}

	return result, nil
}
