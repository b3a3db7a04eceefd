package gate

import (
	"context"
	"os/exec"
	"path/filepath"
	"regexp"
	"time"
)

// goDiagnostic matches vet diagnostics, e.g. "./main.go:14:2: unreachable code".
var goDiagnostic = regexp.MustCompile(`\.go:\d+(:\d+)?:`)

type goChecker struct {
	timeout time.Duration
}

func newGoChecker(timeout time.Duration) *goChecker {
	return &goChecker{timeout: timeout}
}

func (c *goChecker) Name() string {
	return "go"
}

func (c *goChecker) BuildCommand() string {
	return "go vet ./..."
}

func (c *goChecker) Eligible(root string) bool {
	if !fileExists(filepath.Join(root, "go.mod")) {
		return false
	}
	_, err := exec.LookPath("go")
	return err == nil
}

func (c *goChecker) Check(ctx context.Context, root string) Outcome {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "go", "vet", "./...")
	cmd.Dir = root
	output, err := cmd.CombinedOutput()

	if ctx.Err() == context.DeadlineExceeded {
		return Outcome{Status: Inconclusive}
	}
	if err == nil {
		return Outcome{Status: Clean}
	}

	lines := matchingLines(output, goDiagnostic)
	if len(lines) == 0 {
		return Outcome{Status: Clean}
	}
	return Outcome{Status: Errors, Lines: lines}
}
