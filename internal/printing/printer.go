package printing

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"

	"labelstrip/internal/services"
)

var commandContext = exec.CommandContext

// Printer dispatches a written strip image to label printing hardware.
// The CLI depends on this interface so tests can substitute a fake without
// spawning processes.
type Printer interface {
	Print(ctx context.Context, imagePath string) error
}

// Option configures the CLI printer.
type Option func(*CLI)

// WithBinary overrides the default print utility command.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if strings.TrimSpace(binary) != "" {
			c.binary = strings.TrimSpace(binary)
		}
	}
}

// WithTimeout bounds a single print invocation so an unresponsive printer
// cannot hang the run.
func WithTimeout(timeout time.Duration) Option {
	return func(c *CLI) {
		if timeout > 0 {
			c.timeout = timeout
		}
	}
}

// WithLockPath overrides the lock file used to serialize print jobs.
func WithLockPath(path string) Option {
	return func(c *CLI) {
		if strings.TrimSpace(path) != "" {
			c.lockPath = strings.TrimSpace(path)
		}
	}
}

// CLI wraps an external print utility such as ptouch-print, invoked as
// "<command> --image <file>".
type CLI struct {
	binary   string
	timeout  time.Duration
	lockPath string
}

// NewCLI constructs a printer client using defaults.
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{
		binary:   "ptouch-print",
		timeout:  60 * time.Second,
		lockPath: filepath.Join(os.TempDir(), "labelstrip-print.lock"),
	}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// Print sends the image at path to the printer. Error classification matters
// to callers: a missing binary is a tooling failure the user fixes by
// installing the utility, while a failed or timed-out invocation is a print
// failure that leaves the written file available for a manual retry.
func (c *CLI) Print(ctx context.Context, imagePath string) error {
	imagePath = strings.TrimSpace(imagePath)
	if imagePath == "" {
		return services.Wrap(services.ErrValidation, "printer", "print", "empty image path", nil)
	}

	resolved, err := exec.LookPath(c.binary)
	if err != nil {
		return services.Wrap(services.ErrToolUnavailable, "printer", "print",
			fmt.Sprintf("print utility %q not found; install it or set printer.command", c.binary), err)
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	// One physical printer: serialize with other labelstrip invocations so
	// two strips cannot interleave on the tape.
	lock := flock.New(c.lockPath)
	locked, err := lock.TryLockContext(ctx, 200*time.Millisecond)
	if err != nil || !locked {
		return services.Wrap(services.ErrPrint, "printer", "lock",
			fmt.Sprintf("waiting for printer lock %s", c.lockPath), err)
	}
	defer lock.Unlock() //nolint:errcheck

	cmd := commandContext(ctx, resolved, "--image", imagePath)
	output, err := cmd.CombinedOutput()
	if err != nil {
		detail := strings.TrimSpace(string(output))
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return services.Wrap(services.ErrPrint, "printer", "run",
				fmt.Sprintf("%s timed out after %s", c.binary, c.timeout), err)
		}
		if detail != "" {
			return services.Wrap(services.ErrPrint, "printer", "run", detail, err)
		}
		return services.Wrap(services.ErrPrint, "printer", "run", c.binary, err)
	}
	return nil
}
