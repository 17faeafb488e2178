package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "skatetrack",
	Short: "Inline skating skill tracker and training planner",
	Long: "SkateTrack is a terminal companion for tracking inline skating skill progress,\n" +
		"planning training sessions and syncing everything across devices.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides SKATETRACK_DB env var)")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Log sync and provider activity to stderr")

	rootCmd.AddCommand(skillCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(trainCmd)
	rootCmd.AddCommand(tipsCmd)
	rootCmd.AddCommand(versionCmd)
}

// logfFor returns a stderr logger when --verbose is set, a no-op
// otherwise.
func logfFor(cmd *cobra.Command) func(format string, args ...any) {
	verbose, _ := cmd.Flags().GetBool("verbose")
	if !verbose {
		return func(string, ...any) {}
	}
	return func(format string, args ...any) {
		fmt.Fprintf(os.Stderr, format+"\n", args...)
	}
}
