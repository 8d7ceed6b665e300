package domain

// DefaultFallbackURL is the seller's catalog search page, linked from every
// tile that has no direct detail link.
const DefaultFallbackURL = "https://www.booklooker.de/wdeu/B%C3%BCcher/Angebote/?sortOrder=offerDate&sortDirection=desc"

// EnrichmentRecord is the externally scraped data for one identifier
type EnrichmentRecord struct {
	Identifier  string
	DetailLink  Optional[string]
	Description Optional[string]
}

// EnrichmentIndex maps identifiers to scraped data
type EnrichmentIndex map[string]EnrichmentRecord

// NewEnrichmentIndex combines identifier->link and identifier->description
// maps. Either map may be nil.
func NewEnrichmentIndex(links, descriptions map[string]string) EnrichmentIndex {
	idx := make(EnrichmentIndex, len(links))
	for id, link := range links {
		rec := idx[id]
		rec.Identifier = id
		rec.DetailLink = NonEmpty(link)
		idx[id] = rec
	}
	for id, desc := range descriptions {
		rec := idx[id]
		rec.Identifier = id
		rec.Description = NonEmpty(desc)
		idx[id] = rec
	}
	return idx
}

// Links returns how many records carry a detail link
func (idx EnrichmentIndex) Links() int {
	n := 0
	for _, rec := range idx {
		if rec.DetailLink.IsPresent() {
			n++
		}
	}
	return n
}

// Descriptions returns how many records carry a description
func (idx EnrichmentIndex) Descriptions() int {
	n := 0
	for _, rec := range idx {
		if rec.Description.IsPresent() {
			n++
		}
	}
	return n
}

// Enrichment is the resolved link and tooltip for one item
type Enrichment struct {
	Key         ItemKey
	DetailLink  string
	Description Optional[string]
}

// Enrich resolves every inventory record against idx by identifier.
// Records without identifier or match get fallbackURL and no description.
// Two records sharing an identifier resolve to the same enrichment.
func Enrich(inv Inventory, idx EnrichmentIndex, fallbackURL string) map[ItemKey]Enrichment {
	out := make(map[ItemKey]Enrichment, len(inv.Keys))
	for _, key := range inv.Keys {
		e := Enrichment{Key: key, DetailLink: fallbackURL}
		if id, ok := inv.Records[key].Identifier.Get(); ok {
			if rec, found := idx[id]; found {
				e.DetailLink = rec.DetailLink.OrElse(fallbackURL)
				e.Description = rec.Description
			}
		}
		out[key] = e
	}
	return out
}
