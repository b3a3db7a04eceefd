package hook

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/andywolf/skillgate/internal/gate"
)

// Options tune the post-edit gate.
type Options struct {
	// Root is the project root. When empty, the envelope's cwd is used,
	// then the process working directory.
	Root string

	// Timeout is the checker's wall-clock budget; zero means the default.
	Timeout time.Duration
}

// editTools are the two tool identifiers that modify project sources.
var editTools = map[string]bool{
	"Edit":  true,
	"Write": true,
}

// RunPostTool evaluates one PostToolUse envelope and, when the edited
// project fails its type check, returns a bounded report. Every other path
// is a silent Skip; the gate never blocks the host workflow.
func RunPostTool(ctx context.Context, stdin []byte, opts Options) Result {
	var env ToolUseEnvelope
	if err := json.Unmarshal(stdin, &env); err != nil {
		return Fail(fmt.Errorf("failed to decode tool-use envelope: %w", err))
	}

	if !editTools[env.ToolName] {
		return Skip()
	}

	root := opts.Root
	if root == "" {
		root = env.Cwd
	}
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return Fail(fmt.Errorf("failed to resolve project root: %w", err))
		}
		root = wd
	}

	checker := gate.For(root, opts.Timeout)
	if checker == nil {
		return Skip()
	}

	outcome := checker.Check(ctx, root)
	if outcome.Status != gate.Errors {
		// Clean and Inconclusive both end the run without a report.
		return Skip()
	}

	report := gate.FormatReport(outcome.Lines, checker.BuildCommand())
	if report == "" {
		return Skip()
	}
	return Output(report)
}
