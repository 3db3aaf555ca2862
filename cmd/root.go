package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "keydrill",
	Short: "Terminal shortcut quiz",
	Long:  "keydrill quizzes you on readline and shell keyboard shortcuts, then shows where to practice next.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.String("config", "", "Path to a YAML config file (default $XDG_CONFIG_HOME/keydrill/config.yaml)")
	pf.Int("count", 0, "Number of questions per quiz")
	pf.String("difficulty", "", "Difficulty: easy, medium, hard or mixed")
	pf.String("category", "", "Only ask shortcuts from this category")
	pf.Duration("feedback-delay", 0, "Pause before moving to the next question (0 waits for Enter)")
	pf.String("log-level", "", "Log level: debug, info, warn or error")
	pf.String("log-file", "", "Write JSON logs to this file")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(drillCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(versionCmd)
}
