package cmd

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"booq/internal/adapters/browser"
	"booq/internal/application"
	"booq/internal/domain"
)

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Open the published gallery in the browser",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		index := filepath.Join(cfg.OutputPath, domain.IndexFileName)
		if _, err := os.Stat(index); err != nil {
			return &application.FileSystemError{Op: "open", Path: index, Err: err}
		}

		if err := browser.NewOpener().OpenFile(index); err != nil {
			return err
		}
		reporter.Info("Opened %s", index)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(previewCmd)
}
