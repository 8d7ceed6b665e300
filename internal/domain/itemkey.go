package domain

import (
	"path/filepath"
	"regexp"
	"strings"
)

// ItemKey is the canonical order number of a marketplace item, e.g. "BN00561"
type ItemKey string

// NewItemKey normalizes a raw order number from a feed
func NewItemKey(raw string) ItemKey {
	return ItemKey(strings.ToUpper(strings.TrimSpace(raw)))
}

func (k ItemKey) String() string {
	return string(k)
}

// DefaultPrefixes are the order-number prefixes used when none are configured.
// BN marks single listings, BLX marks CSV bulk uploads.
var DefaultPrefixes = []string{"BN", "BLX"}

// duplicateSuffix matches the extra-photo suffix of a stem (BN100_2)
var duplicateSuffix = regexp.MustCompile(`_[0-9]+$`)

// Classification is the verdict for a single filename
type Classification struct {
	Managed   bool
	Key       Optional[ItemKey]
	Duplicate bool
}

// Stem returns the filename without its extension
func Stem(filename string) string {
	base := filepath.Base(filename)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

// Classify decides whether filename is a managed gallery image.
//
// A stem starting with one of prefixes (case-insensitive, tested in order)
// followed by digits is managed and keyed by the uppercased prefix+digits.
// If such a stem also ends in _<digits> it is a duplicate variant and gets no
// key. Everything else is foreign, including _<digits> names without a
// configured prefix such as IMG_2.jpg, which are never deleted.
//
// Callers should avoid prefix lists where one entry is a prefix of another.
func Classify(filename string, prefixes []string) Classification {
	stem := Stem(filename)

	key, ok := matchKey(stem, prefixes)
	if !ok {
		return Classification{}
	}

	if duplicateSuffix.MatchString(stem) {
		return Classification{Managed: true, Duplicate: true}
	}

	return Classification{Managed: true, Key: Some(key)}
}

func matchKey(stem string, prefixes []string) (ItemKey, bool) {
	for _, prefix := range prefixes {
		if prefix == "" || len(stem) <= len(prefix) {
			continue
		}
		if !strings.EqualFold(stem[:len(prefix)], prefix) {
			continue
		}
		digits := leadingDigits(stem[len(prefix):])
		if digits == "" {
			continue
		}
		return NewItemKey(prefix + digits), true
	}
	return "", false
}

func leadingDigits(s string) string {
	end := 0
	for end < len(s) && s[end] >= '0' && s[end] <= '9' {
		end++
	}
	return s[:end]
}

// KeySet is a set of item keys
type KeySet map[ItemKey]struct{}

// NewKeySet builds a set from keys
func NewKeySet(keys ...ItemKey) KeySet {
	set := make(KeySet, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return set
}

// Has reports whether k is in the set
func (s KeySet) Has(k ItemKey) bool {
	_, ok := s[k]
	return ok
}
