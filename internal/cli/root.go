// Package cli wires the skillgate commands. The hook subcommands are thin
// shells: they read stdin, call the pure hook core, and translate its tagged
// result into exit codes and stdout.
package cli

import (
	"fmt"
	"os"

	"github.com/andywolf/skillgate/internal/version"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

var rootCmd = &cobra.Command{
	Use:   "skillgate",
	Short: "Skillgate - skill advisories and type-check gates for Claude Code",
	Long: `Skillgate augments a Claude Code project with two lifecycle hooks:
a prompt-time advisor that recommends relevant skills for each submitted
prompt, and a post-edit quality gate that surfaces type errors after Edit
and Write tool calls.

Example:
  skillgate install`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.Version = version.Short()
	rootCmd.SetVersionTemplate("{{.Name}} {{.Version}}\n")

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is .skillgate.yaml)")
	rootCmd.PersistentFlags().Bool("debug", false, "append hook diagnostics to a debug log")
	_ = viper.BindPFlag("debug", rootCmd.PersistentFlags().Lookup("debug"))
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		cwd, err := os.Getwd()
		if err != nil {
			fmt.Fprintln(os.Stderr, "Error getting working directory:", err)
			os.Exit(1)
		}

		viper.AddConfigPath(cwd)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".skillgate")
	}

	viper.SetEnvPrefix("SKILLGATE")
	viper.AutomaticEnv()

	// A missing config file is fine; the defaults cover everything.
	_ = viper.ReadInConfig()
}
