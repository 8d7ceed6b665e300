package commands

import (
	"context"

	"booq/internal/application"
	"booq/internal/domain"
	"booq/internal/ports"
)

// ReconcileResult contains the outcome of a reconciliation pass
type ReconcileResult struct {
	Plan    domain.ReconcilePlan
	Applied bool
}

// ReconcileCommand cleans up the gallery folder against the active inventory:
// duplicate variants are deleted, images of inactive items archived and
// foreign files left alone.
type ReconcileCommand struct {
	store    ports.ImageStore
	reporter ports.Reporter
	Root     string
	Prefixes []string
	Active   domain.KeySet
	DryRun   bool
}

// NewReconcileCommand creates a new ReconcileCommand
func NewReconcileCommand(store ports.ImageStore, reporter ports.Reporter, root string, prefixes []string, active domain.KeySet) *ReconcileCommand {
	return &ReconcileCommand{
		store:    store,
		reporter: reporter,
		Root:     root,
		Prefixes: prefixes,
		Active:   active,
	}
}

// Validate checks the command has a root and prefixes
func (c *ReconcileCommand) Validate() error {
	if err := application.ValidateRequired("gallery_path", c.Root); err != nil {
		return err
	}
	return application.ValidatePrefixes(c.Prefixes)
}

// Execute scans the root, plans and, unless DryRun is set, applies the plan
func (c *ReconcileCommand) Execute(ctx context.Context) (*ReconcileResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	plan, err := ScanAndPlan(c.store, c.Root, c.Prefixes, c.Active)
	if err != nil {
		return nil, err
	}

	if c.DryRun {
		return &ReconcileResult{Plan: plan}, nil
	}

	if err := ApplyPlan(ctx, c.store, c.reporter, plan); err != nil {
		return nil, err
	}
	return &ReconcileResult{Plan: plan, Applied: true}, nil
}

// ScanAndPlan lists the images under root and decides what happens to each
func ScanAndPlan(store ports.ImageStore, root string, prefixes []string, active domain.KeySet) (domain.ReconcilePlan, error) {
	assets, err := store.Scan(root, prefixes)
	if err != nil {
		return domain.ReconcilePlan{}, fsError("scan", root, err)
	}
	return domain.PlanReconciliation(root, assets, active), nil
}

// ApplyPlan performs the deletions and moves of plan in order. It stops at
// the first failure; a later run re-plans from whatever state is left.
func ApplyPlan(ctx context.Context, store ports.ImageStore, reporter ports.Reporter, plan domain.ReconcilePlan) error {
	for _, action := range plan.Pending() {
		if err := ctx.Err(); err != nil {
			return err
		}

		switch action.Kind {
		case domain.ActionDelete:
			if err := store.Delete(action.Asset.Path); err != nil {
				return fsError("delete", action.Asset.Path, err)
			}
			reporter.Info("deleted duplicate %s", action.Asset.Filename)
		case domain.ActionArchive:
			if err := store.Archive(action.Asset.Path, action.Target); err != nil {
				return fsError("archive", action.Asset.Path, err)
			}
			reporter.Info("archived %s → %s/", action.Asset.Filename, domain.ArchiveDirName)
		}
	}

	s := plan.Stats
	reporter.Success("%d deleted, %d archived, %d skipped, %d kept", s.Deleted, s.Moved, s.Skipped, s.Kept)
	return nil
}
