package cmd

import (
	"github.com/spf13/cobra"

	"booq/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Write a starter config file",
	Long: `Write a commented starter config with a placeholder API key.
An existing file is never overwritten.

Examples:
  booq-cli init
  booq-cli init ./booq.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		target := configFile
		if len(args) == 1 {
			target = args[0]
		}

		path, err := config.WriteStarter(target)
		if err != nil {
			return err
		}
		reporter.Success("Config written: %s", path)
		reporter.Info("Set api_key in that file, or export BOOKLOOKER_API_KEY")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
