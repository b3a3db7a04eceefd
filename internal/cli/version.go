package cli

import (
	"fmt"

	"github.com/andywolf/skillgate/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the skillgate build",
	Long: `Shows which build of skillgate is running. The verbose form adds the
full commit, build date, and platform.`,
	Run: func(cmd *cobra.Command, args []string) {
		if verbose, _ := cmd.Flags().GetBool("verbose"); verbose {
			fmt.Fprintln(cmd.OutOrStdout(), version.Full())
			return
		}
		fmt.Fprintln(cmd.OutOrStdout(), version.Info())
	},
}

func init() {
	versionCmd.Flags().BoolP("verbose", "v", false, "include the full commit, build date, and platform")
	rootCmd.AddCommand(versionCmd)
}
