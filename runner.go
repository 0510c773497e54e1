package pelagia

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// CommandRunner abstracts command execution to enable testing without real
// subprocesses.
type CommandRunner interface {
	Run(ctx context.Context, name string, args ...string) (stdout string, stderr string, err error)
}

// ExecRunner implements CommandRunner using os/exec.
type ExecRunner struct{}

// Run executes the command, honoring context cancellation and deadlines.
func (r *ExecRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	cmd := exec.CommandContext(ctx, name, args...)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	if err != nil && errors.Is(ctx.Err(), context.DeadlineExceeded) {
		err = fmt.Errorf("%w: %s", ErrRenderTimeout, name)
	}
	return stdout.String(), stderr.String(), err
}

// timeoutRunner wraps each invocation with a deadline. Diagram and PDF
// rendering can hang; bounding each call keeps the whole run bounded.
type timeoutRunner struct {
	base CommandRunner
	d    time.Duration
}

func (r *timeoutRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	if r.d <= 0 {
		return r.base.Run(ctx, name, args...)
	}
	ctx, cancel := context.WithTimeout(ctx, r.d)
	defer cancel()
	return r.base.Run(ctx, name, args...)
}

// firstLine returns the first non-blank line of s, for compact error messages.
func firstLine(s string) string {
	for _, line := range strings.Split(s, "\n") {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
