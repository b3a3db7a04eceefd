package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/andywolf/skillgate/internal/config"
	"github.com/andywolf/skillgate/internal/diag"
	"github.com/andywolf/skillgate/internal/hook"
	"github.com/spf13/cobra"
)

var hookCmd = &cobra.Command{
	Use:   "hook",
	Short: "Run a Claude Code lifecycle hook (reads the event envelope from stdin)",
}

var hookPromptCmd = &cobra.Command{
	Use:   "prompt",
	Short: "UserPromptSubmit hook: prepend skill advisories to the prompt",
	Long: `Reads a UserPromptSubmit envelope from stdin, matches the prompt against
the project's skill rules, and writes the (possibly augmented) prompt to
stdout.

Exits non-zero with empty stdout on any failure, so the host falls back to
the raw prompt.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runHookPrompt,
}

var hookPostToolCmd = &cobra.Command{
	Use:   "posttool",
	Short: "PostToolUse hook: type-check the project after Edit and Write",
	Long: `Reads a PostToolUse envelope from stdin and, when an edit-producing tool
ran in a type-checked project, runs the checker and writes a bounded error
report to stdout.

Always exits zero: the quality gate must never break the host workflow.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runHookPostTool,
}

func runHookPrompt(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		diag.Logf("prompt hook: %v", err)
		return err
	}
	setupDebug(cfg.Debug)

	stdin, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		diag.Logf("prompt hook: failed to read stdin: %v", err)
		return err
	}

	res := hook.RunPrompt(stdin, cfg.RulesPath)
	switch res.Status {
	case hook.StatusOutput:
		fmt.Fprint(cmd.OutOrStdout(), res.Text)
		return nil
	case hook.StatusSkip:
		return nil
	default:
		diag.Logf("prompt hook: %v", res.Err)
		return res.Err
	}
}

func runHookPostTool(cmd *cobra.Command, args []string) (err error) {
	// The gate is best-effort by contract: every failure path, including a
	// panic, logs to stderr and exits zero.
	defer func() {
		if r := recover(); r != nil {
			diag.Logf("posttool hook: recovered: %v", r)
		}
		err = nil
	}()

	cfg, cfgErr := config.Load()
	if cfgErr != nil {
		diag.Logf("posttool hook: %v", cfgErr)
		return nil
	}
	setupDebug(cfg.Debug)

	stdin, readErr := io.ReadAll(cmd.InOrStdin())
	if readErr != nil {
		diag.Logf("posttool hook: failed to read stdin: %v", readErr)
		return nil
	}

	res := hook.RunPostTool(cmd.Context(), stdin, hook.Options{Timeout: cfg.CheckTimeout})
	switch res.Status {
	case hook.StatusOutput:
		fmt.Fprint(cmd.OutOrStdout(), res.Text)
	case hook.StatusFail:
		diag.Logf("posttool hook: swallowed: %v", res.Err)
	}
	return nil
}

func setupDebug(enabled bool) {
	if !enabled {
		return
	}
	dir, err := os.UserCacheDir()
	if err != nil {
		return
	}
	diag.EnableDebug(dir)
}

func init() {
	hookCmd.AddCommand(hookPromptCmd)
	hookCmd.AddCommand(hookPostToolCmd)
	rootCmd.AddCommand(hookCmd)
}
