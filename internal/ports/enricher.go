package ports

import (
	"context"

	"booq/internal/domain"
)

// ListingEnricher defines the interface for external detail-link sources
type ListingEnricher interface {
	// Listings fetches url and extracts identifier -> link/description data.
	// Zero matches and malformed markup yield an empty index, not an error;
	// an error means the source itself was unreachable.
	Listings(ctx context.Context, url string) (domain.EnrichmentIndex, error)
}
