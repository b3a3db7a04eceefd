package gate

import (
	"context"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"time"
)

// tsDiagnostic matches tsc error lines, e.g.
// "src/app.ts(12,5): error TS2322: Type 'string' is not assignable ...".
var tsDiagnostic = regexp.MustCompile(`\berror TS\d+`)

type typeScriptChecker struct {
	timeout time.Duration
}

func newTypeScriptChecker(timeout time.Duration) *typeScriptChecker {
	return &typeScriptChecker{timeout: timeout}
}

func (c *typeScriptChecker) Name() string {
	return "typescript"
}

func (c *typeScriptChecker) BuildCommand() string {
	return "npx tsc --noEmit"
}

// Eligible requires both the package manifest at the project root and the
// tsc binary inside the project's local dependency directory. Absence of
// either means the project is not configured for this checker.
func (c *typeScriptChecker) Eligible(root string) bool {
	return fileExists(filepath.Join(root, "package.json")) &&
		fileExists(filepath.Join(root, "node_modules", ".bin", "tsc"))
}

func (c *typeScriptChecker) Check(ctx context.Context, root string) Outcome {
	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, "npx", "tsc", "--noEmit", "--pretty", "false")
	cmd.Dir = root
	output, err := cmd.CombinedOutput()

	if ctx.Err() == context.DeadlineExceeded {
		return Outcome{Status: Inconclusive}
	}
	if err == nil {
		return Outcome{Status: Clean}
	}

	lines := matchingLines(output, tsDiagnostic)
	if len(lines) == 0 {
		// The process failed for some reason other than type errors
		// (missing npx, misconfigured project). Not this gate's problem.
		return Outcome{Status: Clean}
	}
	return Outcome{Status: Errors, Lines: lines}
}

// matchingLines returns the lines of output that match re, in original order.
func matchingLines(output []byte, re *regexp.Regexp) []string {
	var lines []string
	for _, line := range strings.Split(string(output), "\n") {
		line = strings.TrimRight(line, "\r")
		if re.MatchString(line) {
			lines = append(lines, line)
		}
	}
	return lines
}
