package domain

import (
	"reflect"
	"testing"
)

func TestParsePriceFeed(t *testing.T) {
	lines := []string{"bn100\t19.50", "BN101\t", "BN102", "", "  BLX7\t4.00  "}
	got := ParsePriceFeed(lines)

	want := map[ItemKey]string{
		"BN100": "19.50",
		"BN101": "",
		"BN102": "",
		"BLX7":  "4.00",
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ParsePriceFeed = %v, expected %v", got, want)
	}
}

func TestParseIdentifierFeed_Positional(t *testing.T) {
	feed := ParseIdentifierFeed([]string{"9783161484100", "", " 3161484100 "})
	if !feed.IsPositional() {
		t.Fatal("expected positional feed for bare lines")
	}

	inv := MergeInventory([]string{"BN1", "BN2", "BN3", "BN4"}, nil, feed)
	wantIDs := map[ItemKey]string{"BN1": "9783161484100", "BN3": "3161484100"}
	for _, key := range inv.Keys {
		id, ok := inv.Records[key].Identifier.Get()
		want, expected := wantIDs[key]
		if ok != expected || id != want {
			t.Errorf("%s identifier = %q (present=%v), expected %q (present=%v)", key, id, ok, want, expected)
		}
	}
}

func TestParseIdentifierFeed_Keyed(t *testing.T) {
	feed := ParseIdentifierFeed([]string{"BN2\t978-2", "", "bn1\t978-1"})
	if feed.IsPositional() {
		t.Fatal("expected keyed feed when every line carries a tab")
	}

	inv := MergeInventory([]string{"BN1", "BN2"}, nil, feed)
	if id, _ := inv.Records["BN1"].Identifier.Get(); id != "978-1" {
		t.Errorf("BN1 identifier = %q, expected 978-1", id)
	}
	if id, _ := inv.Records["BN2"].Identifier.Get(); id != "978-2" {
		t.Errorf("BN2 identifier = %q, expected 978-2", id)
	}
}

func TestMergeInventory_OneRecordPerActiveKey(t *testing.T) {
	tests := []struct {
		name        string
		active      []string
		prices      map[ItemKey]string
		identifiers IdentifierFeed
		wantKeys    []ItemKey
	}{
		{
			name:     "empty feeds",
			active:   []string{"BN1", "bn2", "BLX3"},
			wantKeys: []ItemKey{"BN1", "BN2", "BLX3"},
		},
		{
			name:        "empty positional feed",
			active:      []string{"BN1", "BN2"},
			identifiers: PositionalIdentifiers(nil),
			wantKeys:    []ItemKey{"BN1", "BN2"},
		},
		{
			name:     "prices for unknown keys are ignored",
			active:   []string{"BN1"},
			prices:   map[ItemKey]string{"BN9": "3.00"},
			wantKeys: []ItemKey{"BN1"},
		},
		{
			name:     "duplicates collapse",
			active:   []string{"BN1", "BN2", "bn1"},
			wantKeys: []ItemKey{"BN1", "BN2"},
		},
		{
			name:     "no active keys",
			active:   nil,
			prices:   map[ItemKey]string{"BN1": "1.00"},
			wantKeys: []ItemKey{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := MergeInventory(tt.active, tt.prices, tt.identifiers)
			if !reflect.DeepEqual(inv.Keys, tt.wantKeys) {
				t.Errorf("Keys = %v, expected %v", inv.Keys, tt.wantKeys)
			}
			if len(inv.Records) != len(tt.wantKeys) {
				t.Errorf("got %d records, expected %d", len(inv.Records), len(tt.wantKeys))
			}
			for _, k := range tt.wantKeys {
				if rec, ok := inv.Records[k]; !ok || rec.Key != k {
					t.Errorf("missing record for %s", k)
				}
			}
		})
	}
}

func TestMergeInventory_DuplicateKeyTakesLastValues(t *testing.T) {
	inv := MergeInventory(
		[]string{"BN1", "BN2", "BN1"},
		nil,
		PositionalIdentifiers([]string{"first", "second", "third"}),
	)
	if id, _ := inv.Records["BN1"].Identifier.Get(); id != "third" {
		t.Errorf("BN1 identifier = %q, expected last-seen value third", id)
	}
}

func TestMergeInventory_PricesAbsentVsPresent(t *testing.T) {
	inv := MergeInventory(
		[]string{"BN1", "BN2", "BN3"},
		map[ItemKey]string{"BN1": "19.5", "BN2": ""},
		KeyedIdentifiers(nil),
	)

	if p, ok := inv.Records["BN1"].Price.Get(); !ok || p != "19.5" {
		t.Errorf("BN1 price = %q (present=%v), expected 19.5", p, ok)
	}
	if inv.Records["BN2"].Price.IsPresent() {
		t.Error("BN2 empty price should be absent")
	}
	if inv.Records["BN3"].Price.IsPresent() {
		t.Error("BN3 unmatched price should be absent")
	}
}

func TestMergeInventory_ShortPositionalFeedFailsSoft(t *testing.T) {
	inv := MergeInventory([]string{"BN1", "BN2", "BN3"}, nil, PositionalIdentifiers([]string{"111"}))
	if id, _ := inv.Records["BN1"].Identifier.Get(); id != "111" {
		t.Errorf("BN1 identifier = %q, expected 111", id)
	}
	for _, k := range []ItemKey{"BN2", "BN3"} {
		if inv.Records[k].Identifier.IsPresent() {
			t.Errorf("%s should have no identifier", k)
		}
	}
}
