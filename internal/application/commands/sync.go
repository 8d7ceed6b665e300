package commands

import (
	"context"
	"path/filepath"
	"time"

	"booq/internal/application"
	"booq/internal/domain"
	"booq/internal/ports"
)

// SyncOptions configures a full gallery sync
type SyncOptions struct {
	APIKey            string
	Prefixes          []string
	GalleryPath       string
	OutputPath        string
	FallbackURL       string
	EnrichmentURL     string
	EnrichmentEnabled bool
	Page              PageInfo
}

// SyncPlan is everything a sync would do, computed without touching files
type SyncPlan struct {
	Source     string
	Ignored    []string
	Inventory  domain.Inventory
	Enrichment map[domain.ItemKey]domain.Enrichment
	Reconcile  domain.ReconcilePlan
	Preview    domain.Gallery
	Degraded   []error
}

// SyncResult contains the outcome of an applied sync
type SyncResult struct {
	Plan    *SyncPlan
	Output  *domain.RenderedOutput
	Publish *PublishResult
}

// SyncCommand runs the whole pipeline: catalog, enrichment, reconciliation,
// rendering and publishing.
type SyncCommand struct {
	catalog  ports.CatalogClient
	enricher ports.ListingEnricher
	store    ports.ImageStore
	writer   ports.OutputWriter
	reporter ports.Reporter
	Options  SyncOptions
	Now      func() time.Time
}

// NewSyncCommand creates a new SyncCommand
func NewSyncCommand(
	catalog ports.CatalogClient,
	enricher ports.ListingEnricher,
	store ports.ImageStore,
	writer ports.OutputWriter,
	reporter ports.Reporter,
	opts SyncOptions,
) *SyncCommand {
	return &SyncCommand{
		catalog:  catalog,
		enricher: enricher,
		store:    store,
		writer:   writer,
		reporter: reporter,
		Options:  opts,
		Now:      time.Now,
	}
}

// Validate checks the options before anything is fetched or touched
func (c *SyncCommand) Validate() error {
	if err := application.ValidateRequired("api_key", c.Options.APIKey); err != nil {
		return err
	}
	if err := application.ValidateRequired("gallery_path", c.Options.GalleryPath); err != nil {
		return err
	}
	if err := application.ValidateRequired("output_path", c.Options.OutputPath); err != nil {
		return err
	}
	return application.ValidatePrefixes(c.Options.Prefixes)
}

// Plan fetches the inventory and enrichment and plans the reconciliation.
// Nothing on disk is modified.
func (c *SyncCommand) Plan(ctx context.Context) (*SyncPlan, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	fetched, err := NewFetchInventoryCommand(c.catalog, c.reporter, c.Options.APIKey).Execute(ctx)
	if err != nil {
		return nil, err
	}

	enriched, err := NewEnrichCommand(
		c.enricher, c.reporter, fetched.Inventory,
		c.Options.EnrichmentURL, c.Options.EnrichmentEnabled, c.fallbackURL(),
	).Execute(ctx)
	if err != nil {
		return nil, err
	}

	source, ignored, err := c.store.ExportDir(c.Options.GalleryPath)
	if err != nil {
		return nil, fsError("read", c.Options.GalleryPath, err)
	}
	if len(ignored) > 0 {
		c.reporter.Warn("%d export folders found, using the newest:", len(ignored)+1)
		c.reporter.Warn("    %s (used)", filepath.Base(source))
		for _, dir := range ignored {
			c.reporter.Warn("    %s (ignored)", filepath.Base(dir))
		}
	}
	c.reporter.Info("Image folder: %s", source)

	plan, err := ScanAndPlan(c.store, source, c.Options.Prefixes, fetched.Inventory.Active())
	if err != nil {
		return nil, err
	}

	sp := &SyncPlan{
		Source:     source,
		Ignored:    ignored,
		Inventory:  fetched.Inventory,
		Enrichment: enriched.Enrichment,
		Reconcile:  plan,
		Preview:    domain.BuildGallery(plan.Survivors, fetched.Inventory, enriched.Enrichment, c.fallbackURL()),
		Degraded:   fetched.Degraded,
	}
	if enriched.Degraded != nil {
		sp.Degraded = append(sp.Degraded, enriched.Degraded)
	}
	return sp, nil
}

// Apply reconciles the image folder, renders the page and publishes it
func (c *SyncCommand) Apply(ctx context.Context, plan *SyncPlan) (*SyncResult, error) {
	if plan == nil {
		return nil, &application.ConfigError{Field: "plan", Message: "nothing to apply"}
	}

	if err := ApplyPlan(ctx, c.store, c.reporter, plan.Reconcile); err != nil {
		return nil, err
	}

	render := NewRenderCommand(c.Options.Page, plan.Reconcile.Survivors, plan.Inventory, plan.Enrichment, c.fallbackURL())
	if c.Now != nil {
		render.Now = c.Now
	}
	output, err := render.Execute(ctx)
	if err != nil {
		return nil, err
	}
	for _, path := range output.Collisions {
		c.reporter.Warn("%s has the same output name as another image, skipped", path)
	}
	c.reporter.Success("Gallery with %d images rendered", len(output.Items))

	published, err := NewPublishCommand(c.writer, c.reporter, output, c.Options.OutputPath).Execute(ctx)
	if err != nil {
		return nil, err
	}

	return &SyncResult{Plan: plan, Output: output, Publish: published}, nil
}

// Execute plans and applies in one go
func (c *SyncCommand) Execute(ctx context.Context) (*SyncResult, error) {
	plan, err := c.Plan(ctx)
	if err != nil {
		return nil, err
	}
	return c.Apply(ctx, plan)
}

func (c *SyncCommand) fallbackURL() string {
	if c.Options.FallbackURL == "" {
		return domain.DefaultFallbackURL
	}
	return c.Options.FallbackURL
}
