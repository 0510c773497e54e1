package pelagia

import (
	"context"
	"testing"
	"time"
)

// fakeRunner records invocations and delegates behavior to run.
// Shared by the diagram, PDF, and service tests.
type fakeRunner struct {
	calls [][]string
	run   func(ctx context.Context, name string, args []string) (string, string, error)
}

func (f *fakeRunner) Run(ctx context.Context, name string, args ...string) (string, string, error) {
	f.calls = append(f.calls, append([]string{name}, args...))
	if f.run != nil {
		return f.run(ctx, name, args)
	}
	return "", "", nil
}

// argAfter returns the argument following flag in a recorded call, or "".
func argAfter(call []string, flag string) string {
	for i, a := range call {
		if a == flag && i+1 < len(call) {
			return call[i+1]
		}
	}
	return ""
}

func TestTimeoutRunner(t *testing.T) {
	t.Parallel()

	t.Run("applies a deadline", func(t *testing.T) {
		t.Parallel()

		var sawDeadline bool
		base := &fakeRunner{
			run: func(ctx context.Context, _ string, _ []string) (string, string, error) {
				_, sawDeadline = ctx.Deadline()
				return "", "", nil
			},
		}
		r := &timeoutRunner{base: base, d: time.Minute}

		if _, _, err := r.Run(context.Background(), "tool"); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if !sawDeadline {
			t.Error("expected a deadline on the subprocess context")
		}
	})

	t.Run("zero duration passes through", func(t *testing.T) {
		t.Parallel()

		var sawDeadline bool
		base := &fakeRunner{
			run: func(ctx context.Context, _ string, _ []string) (string, string, error) {
				_, sawDeadline = ctx.Deadline()
				return "", "", nil
			},
		}
		r := &timeoutRunner{base: base, d: 0}

		if _, _, err := r.Run(context.Background(), "tool"); err != nil {
			t.Fatalf("Run() error = %v", err)
		}
		if sawDeadline {
			t.Error("expected no deadline when duration is zero")
		}
	})
}

func TestFirstLine(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{"single line", "boom", "boom"},
		{"multi line", "first\nsecond", "first"},
		{"leading blanks skipped", "\n\n  \nreal error\nmore", "real error"},
		{"whitespace trimmed", "  padded  \n", "padded"},
		{"empty", "", ""},
		{"only blanks", "\n  \n", ""},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := firstLine(tt.input); got != tt.expected {
				t.Errorf("firstLine(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}
