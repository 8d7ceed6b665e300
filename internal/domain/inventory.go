package domain

import "strings"

// InventoryRecord is the merged catalog metadata for one active item
type InventoryRecord struct {
	Key        ItemKey
	Identifier Optional[string] // ISBN-like code
	Price      Optional[string] // decimal as delivered by the catalog
}

// Inventory is the set of currently active items.
// Keys keeps first-seen feed order without duplicates.
type Inventory struct {
	Keys    []ItemKey
	Records map[ItemKey]InventoryRecord
}

// Active returns the keys as a set
func (inv Inventory) Active() KeySet {
	return NewKeySet(inv.Keys...)
}

// Record looks up the record for key
func (inv Inventory) Record(key ItemKey) (InventoryRecord, bool) {
	rec, ok := inv.Records[key]
	return rec, ok
}

// Len returns the number of distinct active items
func (inv Inventory) Len() int {
	return len(inv.Keys)
}

// IdentifierFeed carries identifiers either keyed by order number or as a
// bare sequence aligned by position with the active-key feed.
type IdentifierFeed struct {
	byKey      map[ItemKey]string
	positional []string
}

// KeyedIdentifiers builds a feed joined by item key
func KeyedIdentifiers(byKey map[ItemKey]string) IdentifierFeed {
	if byKey == nil {
		byKey = map[ItemKey]string{}
	}
	return IdentifierFeed{byKey: byKey}
}

// PositionalIdentifiers builds a feed joined by index with the active keys
func PositionalIdentifiers(values []string) IdentifierFeed {
	return IdentifierFeed{positional: values}
}

// IsPositional reports whether the feed is joined by index
func (f IdentifierFeed) IsPositional() bool {
	return f.byKey == nil
}

func (f IdentifierFeed) lookup(i int, key ItemKey) string {
	if f.byKey != nil {
		return f.byKey[key]
	}
	if i < 0 || i >= len(f.positional) {
		return ""
	}
	return f.positional[i]
}

// ParsePriceFeed reads "orderNo<TAB>price" lines into a price lookup.
// A line without a price maps its key to "".
func ParsePriceFeed(lines []string) map[ItemKey]string {
	prices := make(map[ItemKey]string, len(lines))
	for _, line := range lines {
		key, value, _ := strings.Cut(strings.TrimSpace(line), "\t")
		k := NewItemKey(key)
		if k == "" {
			continue
		}
		prices[k] = strings.TrimSpace(value)
	}
	return prices
}

// ParseIdentifierFeed turns raw identifier lines into a feed. When every
// non-blank line is "orderNo<TAB>identifier" the feed is keyed; otherwise the
// lines are kept positionally, blank lines included, so index i still lines
// up with the i-th active key.
func ParseIdentifierFeed(lines []string) IdentifierFeed {
	keyed := false
	for _, line := range lines {
		if strings.TrimSpace(line) == "" {
			continue
		}
		if !strings.Contains(line, "\t") {
			keyed = false
			break
		}
		keyed = true
	}

	if keyed {
		byKey := make(map[ItemKey]string, len(lines))
		for _, line := range lines {
			key, value, ok := strings.Cut(strings.TrimSpace(line), "\t")
			if !ok {
				continue
			}
			byKey[NewItemKey(key)] = strings.TrimSpace(value)
		}
		return KeyedIdentifiers(byKey)
	}

	values := make([]string, len(lines))
	for i, line := range lines {
		values[i] = strings.TrimSpace(line)
	}
	return PositionalIdentifiers(values)
}

// MergeInventory joins the active keys with the price and identifier feeds.
//
// The result holds exactly one record per distinct active key. Missing prices
// or identifiers are absent, never an error; a positional identifier feed that
// is shorter than activeKeys leaves the tail without identifiers. Repeated
// keys collapse to the values seen last.
func MergeInventory(activeKeys []string, prices map[ItemKey]string, identifiers IdentifierFeed) Inventory {
	inv := Inventory{
		Keys:    make([]ItemKey, 0, len(activeKeys)),
		Records: make(map[ItemKey]InventoryRecord, len(activeKeys)),
	}

	for i, raw := range activeKeys {
		key := NewItemKey(raw)
		if key == "" {
			continue
		}
		if _, seen := inv.Records[key]; !seen {
			inv.Keys = append(inv.Keys, key)
		}
		inv.Records[key] = InventoryRecord{
			Key:        key,
			Identifier: NonEmpty(identifiers.lookup(i, key)),
			Price:      NonEmpty(prices[key]),
		}
	}

	return inv
}
