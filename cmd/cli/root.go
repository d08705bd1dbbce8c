package cli

import (
	"github.com/spf13/cobra"
)

var configPath string

// rootCmd runs the portal when no subcommand is given.
var rootCmd = &cobra.Command{
	Use:           "farm2fork",
	Short:         "Farm-to-fork produce traceability portal",
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "config.yaml", "Path to the YAML config file")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(insightsCmd)
}

// Execute runs the command line and returns the first error a command produced.
func Execute() error {
	return rootCmd.Execute()
}
