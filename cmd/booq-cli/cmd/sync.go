package cmd

import (
	"github.com/spf13/cobra"

	"booq/internal/adapters/browser"
	"booq/internal/application/commands"
	"booq/internal/domain"
	"booq/internal/ports"
)

var syncOpen bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Clean up the image folder and publish the gallery",
	Long: `Fetch the active inventory, delete duplicate variants, move images of
sold items to Sold/ and publish index.html with the remaining images.

Examples:
  booq-cli sync
  booq-cli sync --gallery ~/Downloads/export --open`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}

		result, err := newSyncCommand().Execute(cmd.Context())
		if err != nil {
			return err
		}

		if verbose {
			reportUnchanged(reporter, result.Plan)
		}
		reporter.Success("Done: %s", result.Publish.IndexPath)
		if syncOpen {
			if err := browser.NewOpener().OpenFile(result.Publish.IndexPath); err != nil {
				reporter.Warn("cannot open preview: %v", err)
			}
		}
		return nil
	},
}

func init() {
	syncCmd.Flags().BoolVar(&syncOpen, "open", false, "open the published page in the browser")
	rootCmd.AddCommand(syncCmd)
}

// reportUnchanged lists the images sync left in place
func reportUnchanged(rep ports.Reporter, plan *commands.SyncPlan) {
	for _, a := range plan.Reconcile.Actions {
		switch a.Kind {
		case domain.ActionKeep:
			key, _ := a.Asset.Key.Get()
			rep.Info("kept %s (%s)", a.Asset.Filename, key)
		case domain.ActionSkip:
			rep.Info("skipped %s (no order number)", a.Asset.Filename)
		}
	}
}
