package wordpress

import (
	"context"
	"fmt"
	"io"
	"mime"
	"net/http"
	"regexp"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
	"golang.org/x/text/encoding/htmlindex"

	"booq/internal/domain"
	"booq/internal/ports"
)

// MinDescriptionLength is the shortest cell text treated as a description
const MinDescriptionLength = 30

var (
	identifierPattern = regexp.MustCompile(`ISBN:\s*(\d{10,13})`)
	detailPattern     = regexp.MustCompile(`window\.open\('(https://www\.booklooker\.de/app/detail\.php\?id=[^']+)'\)`)
	pricePattern      = regexp.MustCompile(`(?s)Preis\(.*`)
)

// Enricher scrapes the listing table rendered by the Booklooker WordPress plugin
type Enricher struct {
	httpClient *http.Client
}

// NewEnricher creates a new Enricher
func NewEnricher() *Enricher {
	return &Enricher{
		httpClient: &http.Client{
			Timeout: 20 * time.Second,
		},
	}
}

var _ ports.ListingEnricher = (*Enricher)(nil)

// Listings fetches url and extracts identifier -> link/description pairs
func (e *Enricher) Listings(ctx context.Context, url string) (domain.EnrichmentIndex, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := e.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch listing page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("listing page returned status %d", resp.StatusCode)
	}

	body, err := decodeBody(resp.Body, resp.Header.Get("Content-Type"))
	if err != nil {
		return nil, err
	}

	return ParseListings(body)
}

// decodeBody converts the response to UTF-8 using the declared charset.
// Pages without a charset, or with one we do not know, are read as UTF-8.
func decodeBody(r io.Reader, contentType string) (io.Reader, error) {
	_, params, err := mime.ParseMediaType(contentType)
	if err != nil {
		return r, nil
	}
	name := params["charset"]
	if name == "" {
		return r, nil
	}
	enc, err := htmlindex.Get(name)
	if err != nil {
		return r, nil
	}
	if n, _ := htmlindex.Name(enc); n == "utf-8" {
		return r, nil
	}
	return enc.NewDecoder().Reader(r), nil
}

// ParseListings extracts one record per table row that names an identifier
// and carries a detail link or a description. Rows with neither are dropped.
// Malformed markup is tolerated; only a read error is returned.
func ParseListings(r io.Reader) (domain.EnrichmentIndex, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("failed to parse listing page: %w", err)
	}

	links := map[string]string{}
	descriptions := map[string]string{}

	for _, row := range innermostRows(doc) {
		m := identifierPattern.FindStringSubmatch(textOf(row))
		if m == nil {
			continue
		}
		id := m[1]

		if link := detailLink(row); link != "" {
			links[id] = link
		}
		if desc := description(row); desc != "" {
			descriptions[id] = desc
		}
	}

	return domain.NewEnrichmentIndex(links, descriptions), nil
}

// innermostRows returns every <tr> that contains no other <tr>
func innermostRows(n *html.Node) []*html.Node {
	var rows []*html.Node
	var walk func(*html.Node) bool
	walk = func(n *html.Node) bool {
		nested := false
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if walk(c) {
				nested = true
			}
		}
		if n.Type == html.ElementNode && n.DataAtom == atom.Tr {
			if !nested {
				rows = append(rows, n)
			}
			return true
		}
		return nested
	}
	walk(n)
	return rows
}

func detailLink(row *html.Node) string {
	var link string
	visit(row, func(n *html.Node) bool {
		for _, a := range n.Attr {
			if !strings.EqualFold(a.Key, "onclick") {
				continue
			}
			if m := detailPattern.FindStringSubmatch(a.Val); m != nil {
				link = m[1]
				return false
			}
		}
		return true
	})
	return link
}

func description(row *html.Node) string {
	longest := ""
	visit(row, func(n *html.Node) bool {
		if n.DataAtom != atom.Td {
			return true
		}
		if text := textOf(n); utf8.RuneCountInString(text) > utf8.RuneCountInString(longest) {
			longest = text
		}
		return true
	})

	desc := pricePattern.ReplaceAllString(longest, "")
	desc = strings.Join(strings.Fields(desc), " ")
	if utf8.RuneCountInString(desc) <= MinDescriptionLength {
		return ""
	}
	return desc
}

// visit calls fn for every element below n until fn returns false
func visit(n *html.Node, fn func(*html.Node) bool) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && !fn(c) {
			return false
		}
		if !visit(c, fn) {
			return false
		}
	}
	return true
}

// textOf concatenates the text below n, separating elements with spaces
func textOf(n *html.Node) string {
	var b strings.Builder
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		switch n.Type {
		case html.TextNode:
			b.WriteString(n.Data)
		case html.ElementNode:
			if n.DataAtom == atom.Script || n.DataAtom == atom.Style {
				return
			}
			b.WriteByte(' ')
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return b.String()
}
