package cli

import (
	"fmt"

	"github.com/andywolf/skillgate/internal/config"
	"github.com/andywolf/skillgate/internal/rules"
	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the skill rule file for dormant or broken rules",
	Long: `Loads the project's skill-rules.json and reports conditions the hooks
deliberately tolerate at runtime: rules with no triggers, intent patterns
that do not compile, invalid file-trigger globs, and unknown priority
tiers.`,
	SilenceUsage: true,
	RunE:         runValidate,
}

func runValidate(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	set, err := rules.Load(cfg.RulesPath)
	if err != nil {
		return err
	}
	if set == nil {
		return fmt.Errorf("no rule file at %s", cfg.RulesPath)
	}

	problems := rules.Validate(set)
	if len(problems) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "OK: %d rules, no problems found\n", set.Len())
		return nil
	}

	for _, p := range problems {
		fmt.Fprintln(cmd.OutOrStdout(), p.String())
	}
	return fmt.Errorf("%d problem(s) found in %s", len(problems), cfg.RulesPath)
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
