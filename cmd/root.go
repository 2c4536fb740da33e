package cmd

import (
	"github.com/abhisek/gradpath/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gradpath",
	Short: "Academic planning toolkit for university students",
	Long:  "GradPath - terminal toolkit that tracks degree progress, plans trimesters, and checks course selections for conflicts.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides GRADPATH_DB env var)")

	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(planCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(stateCmd)
	rootCmd.AddCommand(catalogCmd)
	rootCmd.AddCommand(gpaCmd)
	rootCmd.AddCommand(tuitionCmd)
	rootCmd.AddCommand(transcriptCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then GRADPATH_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
