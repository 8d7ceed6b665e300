package commands

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"time"

	"booq/internal/domain"
)

//go:embed templates/index.html.tmpl
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/index.html.tmpl"))

// StampLayout formats the "last updated" stamp in the page header
const StampLayout = "02.01.2006 15:04"

// Thumbnail size slider bounds in pixels
const (
	MinThumbSize     = 80
	MaxThumbSize     = 280
	DefaultThumbSize = 130
	ThumbStorageKey  = "booq-thumb-size"
)

// PageInfo is the configurable chrome around the gallery grid
type PageInfo struct {
	Title    string
	Subtitle string
	HomeURL  string
	ShareURL string
}

// DefaultPageInfo returns the chrome used when nothing is configured
func DefaultPageInfo() PageInfo {
	return PageInfo{
		Title:    "Booq",
		Subtitle: "wdeu bei Booklooker.de",
		HomeURL:  "https://wdeu.de",
		ShareURL: "https://galerie.wdeu.de",
	}
}

type tileView struct {
	Key         string
	Filename    string
	Link        string
	Price       string
	Description string
}

type pageView struct {
	PageInfo
	Count       int
	Stamp       string
	Items       []tileView
	MinSize     int
	MaxSize     int
	DefaultSize int
	StorageKey  string
}

// RenderCommand turns surviving images and merged metadata into a page
type RenderCommand struct {
	Page        PageInfo
	Survivors   []domain.ImageAsset
	Inventory   domain.Inventory
	Enrichment  map[domain.ItemKey]domain.Enrichment
	FallbackURL string
	Now         func() time.Time
}

// NewRenderCommand creates a new RenderCommand
func NewRenderCommand(page PageInfo, survivors []domain.ImageAsset, inv domain.Inventory, enrichment map[domain.ItemKey]domain.Enrichment, fallbackURL string) *RenderCommand {
	return &RenderCommand{
		Page:        page,
		Survivors:   survivors,
		Inventory:   inv,
		Enrichment:  enrichment,
		FallbackURL: fallbackURL,
		Now:         time.Now,
	}
}

// Execute builds the gallery and renders the page document
func (c *RenderCommand) Execute(ctx context.Context) (*domain.RenderedOutput, error) {
	fallback := c.FallbackURL
	if fallback == "" {
		fallback = domain.DefaultFallbackURL
	}
	now := c.Now
	if now == nil {
		now = time.Now
	}

	g := domain.BuildGallery(c.Survivors, c.Inventory, c.Enrichment, fallback)

	view := pageView{
		PageInfo:    c.Page,
		Count:       len(g.Items),
		Stamp:       now().Format(StampLayout),
		Items:       make([]tileView, 0, len(g.Items)),
		MinSize:     MinThumbSize,
		MaxSize:     MaxThumbSize,
		DefaultSize: DefaultThumbSize,
		StorageKey:  ThumbStorageKey,
	}
	for _, item := range g.Items {
		view.Items = append(view.Items, tileView{
			Key:         item.Key.String(),
			Filename:    item.Filename,
			Link:        item.DetailLink,
			Price:       item.Price.OrElse(""),
			Description: item.Description.OrElse(""),
		})
	}

	var buf bytes.Buffer
	if err := pageTemplate.Execute(&buf, view); err != nil {
		return nil, fmt.Errorf("failed to render page: %w", err)
	}

	return &domain.RenderedOutput{
		Document:   buf.Bytes(),
		Items:      g.Items,
		Copies:     g.Copies,
		Collisions: g.Collisions,
	}, nil
}
