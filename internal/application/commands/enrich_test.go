package commands

import (
	"context"
	"errors"
	"testing"

	"booq/internal/application"
	"booq/internal/domain"
)

func enrichInventory() domain.Inventory {
	return domain.MergeInventory(
		[]string{"BN1", "BN2"},
		nil,
		domain.KeyedIdentifiers(map[domain.ItemKey]string{"BN1": "978A"}),
	)
}

func TestEnrichCommand_Execute(t *testing.T) {
	enricher := &fakeEnricher{index: domain.NewEnrichmentIndex(
		map[string]string{"978A": "https://detail/1"},
		map[string]string{"978A": "A description"},
	)}
	rep := &recordingReporter{}

	result, err := NewEnrichCommand(enricher, rep, enrichInventory(), "https://shop.test/books", true, "https://fallback").Execute(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Degraded != nil {
		t.Errorf("unexpected degradation: %v", result.Degraded)
	}
	if got := result.Enrichment["BN1"].DetailLink; got != "https://detail/1" {
		t.Errorf("BN1 link = %q", got)
	}
	if got := result.Enrichment["BN2"].DetailLink; got != "https://fallback" {
		t.Errorf("BN2 link = %q, expected fallback", got)
	}
	if result.Links != 1 || result.Described != 1 {
		t.Errorf("counts = %d/%d, expected 1/1", result.Links, result.Described)
	}
	if len(enricher.urls) != 1 || enricher.urls[0] != "https://shop.test/books" {
		t.Errorf("enricher called with %v", enricher.urls)
	}
}

func TestEnrichCommand_Degrades(t *testing.T) {
	tests := []struct {
		name        string
		url         string
		enabled     bool
		enricherErr error
		wantFetch   bool
		wantMsg     string
	}{
		{name: "not configured", url: "", enabled: true, wantMsg: "no enrichment URL"},
		{name: "disabled", url: "https://shop.test", enabled: false, wantMsg: "disabled"},
		{name: "unreachable", url: "https://shop.test", enabled: true, enricherErr: errors.New("connection refused"), wantFetch: true, wantMsg: "connection refused"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			enricher := &fakeEnricher{err: tt.enricherErr}
			rep := &recordingReporter{}

			result, err := NewEnrichCommand(enricher, rep, enrichInventory(), tt.url, tt.enabled, "").Execute(context.Background())
			if err != nil {
				t.Fatalf("enrichment must not fail the run: %v", err)
			}
			if !errors.Is(result.Degraded, application.ErrEnrichmentUnavailable) {
				t.Errorf("Degraded = %v, expected ErrEnrichmentUnavailable", result.Degraded)
			}
			if !contains(result.Degraded.Error(), tt.wantMsg) {
				t.Errorf("expected %q in %q", tt.wantMsg, result.Degraded.Error())
			}
			if (len(enricher.urls) > 0) != tt.wantFetch {
				t.Errorf("fetched = %v, expected %v", len(enricher.urls) > 0, tt.wantFetch)
			}
			for key, e := range result.Enrichment {
				if e.DetailLink != domain.DefaultFallbackURL || e.Description.IsPresent() {
					t.Errorf("%s = %+v, expected fallback without description", key, e)
				}
			}
			if !rep.has("warn", tt.wantMsg) {
				t.Errorf("expected warning containing %q, got %v", tt.wantMsg, rep.lines)
			}
		})
	}
}

func TestEnrichCommand_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	enricher := &fakeEnricher{err: context.Canceled}
	_, err := NewEnrichCommand(enricher, &recordingReporter{}, enrichInventory(), "https://shop.test", true, "").Execute(ctx)
	if !errors.Is(err, context.Canceled) {
		t.Errorf("expected context.Canceled, got %v", err)
	}
}
