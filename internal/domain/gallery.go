package domain

import (
	"math"
	"sort"
	"strconv"
	"strings"
)

// ImagesDirName is the asset folder inside the output directory
const ImagesDirName = "images"

// IndexFileName is the rendered page inside the output directory
const IndexFileName = "index.html"

// GalleryItem is one tile of the rendered page
type GalleryItem struct {
	Key         ItemKey
	Filename    string // lowercased, relative to the images folder
	DetailLink  string
	Price       Optional[string] // formatted label, e.g. "19,50 €"
	Description Optional[string]
	Source      string
}

// CopyInstruction tells the publisher to copy Source to images/Target
type CopyInstruction struct {
	Source string
	Target string
}

// Gallery is the ordered set of tiles plus the images they need
type Gallery struct {
	Items      []GalleryItem
	Copies     []CopyInstruction
	Collisions []string // source paths dropped because their target name was taken
}

// FormatPrice renders a catalog price as "19,50 €". Prices that do not parse
// as a finite decimal number are absent; hex notation is rejected.
func FormatPrice(raw string) Optional[string] {
	raw = strings.TrimSpace(raw)
	if raw == "" || isHex(raw) {
		return None[string]()
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return None[string]()
	}
	label := strconv.FormatFloat(v, 'f', 2, 64) + " €"
	return Some(strings.ReplaceAll(label, ".", ","))
}

func isHex(s string) bool {
	s = strings.TrimLeft(s, "+-")
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// BuildGallery turns survivors into tiles ordered by key, descending and
// case-insensitive, then by filename and path. Two survivors that would be
// copied to the same lowercased filename keep only the first; the rest are
// reported as collisions.
func BuildGallery(survivors []ImageAsset, inv Inventory, enrichment map[ItemKey]Enrichment, fallbackURL string) Gallery {
	items := make([]GalleryItem, 0, len(survivors))
	for _, asset := range survivors {
		key, ok := asset.Key.Get()
		if !ok {
			continue
		}
		key = NewItemKey(string(key))

		item := GalleryItem{
			Key:        key,
			Filename:   strings.ToLower(asset.Filename),
			DetailLink: fallbackURL,
			Source:     asset.Path,
		}
		if rec, found := inv.Record(key); found {
			if price, ok := rec.Price.Get(); ok {
				item.Price = FormatPrice(price)
			}
		}
		if e, found := enrichment[key]; found {
			item.DetailLink = e.DetailLink
			item.Description = e.Description
		}
		items = append(items, item)
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := strings.ToUpper(string(items[i].Key)), strings.ToUpper(string(items[j].Key))
		if a != b {
			return a > b
		}
		if items[i].Filename != items[j].Filename {
			return items[i].Filename > items[j].Filename
		}
		return items[i].Source < items[j].Source
	})

	g := Gallery{
		Items:  make([]GalleryItem, 0, len(items)),
		Copies: make([]CopyInstruction, 0, len(items)),
	}
	taken := make(map[string]bool, len(items))
	for _, item := range items {
		if taken[item.Filename] {
			g.Collisions = append(g.Collisions, item.Source)
			continue
		}
		taken[item.Filename] = true
		g.Items = append(g.Items, item)
		g.Copies = append(g.Copies, CopyInstruction{Source: item.Source, Target: item.Filename})
	}

	return g
}

// RenderedOutput is the page document plus the images it references
type RenderedOutput struct {
	Document   []byte
	Items      []GalleryItem
	Copies     []CopyInstruction
	Collisions []string
}
