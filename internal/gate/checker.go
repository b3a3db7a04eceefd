package gate

import (
	"context"
	"os"
	"time"
)

// DefaultTimeout is the wall-clock budget for one checker run.
const DefaultTimeout = 10 * time.Second

// Checker runs one ecosystem's type checker against a project root.
type Checker interface {
	// Name identifies the backend (for diagnostics).
	Name() string

	// Eligible reports whether the project at root is configured for this
	// checker. Ineligibility is never an error: the gate skips silently.
	Eligible(root string) bool

	// Check runs the checker with root as the working directory.
	Check(ctx context.Context, root string) Outcome

	// BuildCommand is the command suggested to the user when a report is
	// truncated.
	BuildCommand() string
}

// For probes the project at root and returns the first eligible checker,
// or nil when the project is not configured for any. Backends are probed in
// a fixed order so the choice is deterministic.
func For(root string, timeout time.Duration) Checker {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	for _, c := range []Checker{
		newTypeScriptChecker(timeout),
		newGoChecker(timeout),
	} {
		if c.Eligible(root) {
			return c
		}
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
