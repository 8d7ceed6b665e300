package commands

import (
	"context"
	"errors"

	"booq/internal/application"
	"booq/internal/domain"
	"booq/internal/ports"
)

// EnrichResult contains the resolved links and why enrichment degraded, if it did
type EnrichResult struct {
	Enrichment map[domain.ItemKey]domain.Enrichment
	Links      int
	Described  int
	Degraded   error
}

// EnrichCommand resolves detail links and descriptions for an inventory.
// It never fails the run: every problem degrades to the fallback link.
type EnrichCommand struct {
	enricher    ports.ListingEnricher
	reporter    ports.Reporter
	Inventory   domain.Inventory
	URL         string
	Enabled     bool
	FallbackURL string
}

// NewEnrichCommand creates a new EnrichCommand
func NewEnrichCommand(enricher ports.ListingEnricher, reporter ports.Reporter, inv domain.Inventory, url string, enabled bool, fallbackURL string) *EnrichCommand {
	return &EnrichCommand{
		enricher:    enricher,
		reporter:    reporter,
		Inventory:   inv,
		URL:         url,
		Enabled:     enabled,
		FallbackURL: fallbackURL,
	}
}

// Execute fetches the listing page when enabled and merges it into the inventory
func (c *EnrichCommand) Execute(ctx context.Context) (*EnrichResult, error) {
	fallback := c.FallbackURL
	if fallback == "" {
		fallback = domain.DefaultFallbackURL
	}

	idx, degraded := c.fetch(ctx)
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if degraded != nil {
		c.reporter.Warn("%v; tiles link to the catalog", degraded)
	}

	result := &EnrichResult{
		Enrichment: domain.Enrich(c.Inventory, idx, fallback),
		Links:      idx.Links(),
		Described:  idx.Descriptions(),
		Degraded:   degraded,
	}
	if degraded == nil {
		c.reporter.Success("%d detail links, %d descriptions", result.Links, result.Described)
	}
	return result, nil
}

func (c *EnrichCommand) fetch(ctx context.Context) (domain.EnrichmentIndex, error) {
	switch {
	case c.URL == "":
		return nil, &application.EnrichmentError{Err: errors.New("no enrichment URL configured")}
	case !c.Enabled:
		return nil, &application.EnrichmentError{Source: c.URL, Err: errors.New("enrichment disabled, skipped")}
	case c.enricher == nil:
		return nil, &application.EnrichmentError{Source: c.URL, Err: errors.New("no enricher available")}
	}

	c.reporter.Info("Loading listing page %s ...", c.URL)
	idx, err := c.enricher.Listings(ctx, c.URL)
	if err != nil {
		return nil, &application.EnrichmentError{Source: c.URL, Err: err}
	}
	return idx, nil
}
