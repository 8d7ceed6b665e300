package ports

import "context"

// FieldQuery selects one column of the catalog's article list
type FieldQuery struct {
	Field     string // e.g. "orderNo", "isbn"
	ShowPrice bool   // append "\t<price>" to every line
}

// CatalogClient defines the interface for the seller's marketplace catalog
type CatalogClient interface {
	// Authenticate exchanges the API key for a session token
	Authenticate(ctx context.Context, apiKey string) (string, error)

	// ListActiveKeys returns the order numbers of all active listings, in feed order
	ListActiveKeys(ctx context.Context, token string) ([]string, error)

	// ListField returns one line per active listing for the requested field.
	// Interior blank lines are preserved so the result can be joined by position.
	ListField(ctx context.Context, token string, query FieldQuery) ([]string, error)
}
