package cli

import (
	"fmt"
	"os"

	"github.com/andywolf/skillgate/internal/settings"
	"github.com/andywolf/skillgate/internal/skills"
	"github.com/spf13/cobra"
)

var installForce bool

var installCmd = &cobra.Command{
	Use:   "install",
	Short: "Install skillgate hooks and starter skills into the current project",
	Long: `Registers the UserPromptSubmit and PostToolUse hooks in the project's
.claude/settings.json and copies the bundled starter skills and
skill-rules.json into .claude/skills/. Existing skills are kept unless
--force is given.`,
	RunE: runInstall,
}

var uninstallCmd = &cobra.Command{
	Use:   "uninstall",
	Short: "Remove skillgate hooks from the current project",
	RunE:  runUninstall,
}

func runInstall(cmd *cobra.Command, args []string) error {
	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	if err := settings.Install(root); err != nil {
		return fmt.Errorf("failed to install hooks: %w", err)
	}
	if err := skills.Install(root, installForce); err != nil {
		return fmt.Errorf("failed to install skills: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Hooks registered in .claude/settings.json")
	fmt.Fprintln(cmd.OutOrStdout(), "Starter skills installed to .claude/skills/")
	return nil
}

func runUninstall(cmd *cobra.Command, args []string) error {
	root, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("failed to get working directory: %w", err)
	}

	if err := settings.Uninstall(root); err != nil {
		return fmt.Errorf("failed to remove hooks: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), "Skillgate hooks removed from .claude/settings.json")
	return nil
}

func init() {
	installCmd.Flags().BoolVar(&installForce, "force", false, "overwrite existing skills and rules")
	rootCmd.AddCommand(installCmd)
	rootCmd.AddCommand(uninstallCmd)
}
