package commands

import (
	"context"

	"booq/internal/application"
	"booq/internal/domain"
	"booq/internal/ports"
)

// Catalog field names used by the inventory feeds
const (
	FieldOrderNo    = "orderNo"
	FieldIdentifier = "isbn"
)

// FetchInventoryResult contains the merged inventory and any degraded feeds
type FetchInventoryResult struct {
	Inventory domain.Inventory
	Degraded  []error
}

// FetchInventoryCommand logs into the catalog and merges its feeds
type FetchInventoryCommand struct {
	catalog  ports.CatalogClient
	reporter ports.Reporter
	APIKey   string
}

// NewFetchInventoryCommand creates a new FetchInventoryCommand
func NewFetchInventoryCommand(catalog ports.CatalogClient, reporter ports.Reporter, apiKey string) *FetchInventoryCommand {
	return &FetchInventoryCommand{
		catalog:  catalog,
		reporter: reporter,
		APIKey:   apiKey,
	}
}

// Validate checks that an API key is set
func (c *FetchInventoryCommand) Validate() error {
	return application.ValidateRequired("api_key", c.APIKey)
}

// Execute authenticates and fetches the active-key, price and identifier
// feeds. Authentication and the active-key feed are fatal; the price and
// identifier feeds degrade to empty with a warning.
func (c *FetchInventoryCommand) Execute(ctx context.Context) (*FetchInventoryResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	c.reporter.Info("Authenticating with catalog...")
	token, err := c.catalog.Authenticate(ctx, c.APIKey)
	if err != nil {
		return nil, &application.AuthError{Err: err}
	}
	c.reporter.Success("Token received")

	keys, err := c.catalog.ListActiveKeys(ctx, token)
	if err != nil {
		return nil, &application.FeedError{Feed: FieldOrderNo, Fatal: true, Err: err}
	}

	result := &FetchInventoryResult{}

	priceLines, err := c.catalog.ListField(ctx, token, ports.FieldQuery{Field: FieldOrderNo, ShowPrice: true})
	if err != nil {
		result.Degraded = append(result.Degraded, &application.FeedError{Feed: "price", Err: err})
		c.reporter.Warn("Price feed unavailable, continuing without prices: %v", err)
		priceLines = nil
	}

	idLines, err := c.catalog.ListField(ctx, token, ports.FieldQuery{Field: FieldIdentifier})
	if err != nil {
		result.Degraded = append(result.Degraded, &application.FeedError{Feed: FieldIdentifier, Err: err})
		c.reporter.Warn("Identifier feed unavailable, continuing without identifiers: %v", err)
		idLines = nil
	}

	identifiers := domain.ParseIdentifierFeed(idLines)
	if identifiers.IsPositional() && len(idLines) > 0 && len(idLines) != len(keys) {
		c.reporter.Warn("Identifier feed has %d lines for %d active keys; joining by position", len(idLines), len(keys))
	}

	result.Inventory = domain.MergeInventory(keys, domain.ParsePriceFeed(priceLines), identifiers)

	c.reporter.Success("%d active listings", result.Inventory.Len())
	return result, nil
}
