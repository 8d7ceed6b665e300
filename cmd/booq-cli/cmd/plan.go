package cmd

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/spf13/cobra"

	"booq/internal/application/commands"
	"booq/internal/domain"
)

var planAll bool

var planCmd = &cobra.Command{
	Use:   "plan",
	Short: "Show what sync would do without changing anything",
	Long: `Dry run: fetch the inventory, plan the image cleanup and list the
gallery that would be published. No file is deleted, moved or written.

Examples:
  booq-cli plan
  booq-cli plan --all`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := cfg.Validate(); err != nil {
			return err
		}

		plan, err := newSyncCommand().Plan(cmd.Context())
		if err != nil {
			return err
		}

		printPlan(cmd.OutOrStdout(), plan, planAll || verbose)
		return nil
	},
}

func init() {
	planCmd.Flags().BoolVarP(&planAll, "all", "a", false, "also list kept and skipped images")
	rootCmd.AddCommand(planCmd)
}

func printPlan(w io.Writer, plan *commands.SyncPlan, all bool) {
	s := plan.Reconcile.Stats
	fmt.Fprintf(w, "Source: %s\n", plan.Source)
	fmt.Fprintf(w, "Active items: %d\n", len(plan.Inventory.Keys))
	fmt.Fprintf(w, "Plan: %d delete, %d archive, %d keep, %d skip\n\n", s.Deleted, s.Moved, s.Kept, s.Skipped)

	for _, a := range plan.Reconcile.Actions {
		switch a.Kind {
		case domain.ActionDelete:
			fmt.Fprintf(w, "delete   %s\n", a.Asset.Filename)
		case domain.ActionArchive:
			fmt.Fprintf(w, "archive  %s → %s\n", a.Asset.Filename, filepath.Join(domain.ArchiveDirName, filepath.Base(a.Target)))
		default:
			if all {
				fmt.Fprintf(w, "%-8s %s\n", a.Kind, a.Asset.Filename)
			}
		}
	}

	fmt.Fprintf(w, "\nGallery: %d items\n", len(plan.Preview.Items))
	if all {
		for _, it := range plan.Preview.Items {
			fmt.Fprintf(w, "  %-10s %-9s %s\n", it.Key, it.Price.OrElse("-"), it.DetailLink)
		}
	}
	for _, path := range plan.Preview.Collisions {
		fmt.Fprintf(w, "  collision: %s skipped\n", path)
	}
	for _, err := range plan.Degraded {
		fmt.Fprintf(w, "warning: %v\n", err)
	}
}
