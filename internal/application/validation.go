package application

import (
	"fmt"
	"strings"
)

// ValidateRequired checks if a configuration value is non-empty (after trimming whitespace).
// Returns a ConfigError if the value is empty.
func ValidateRequired(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ConfigError{
			Field:   field,
			Message: fmt.Sprintf("%s is required", formatFieldName(field)),
		}
	}
	return nil
}

// formatFieldName converts configuration keys to readable words
// for error messages (e.g., "api_key" -> "API key")
func formatFieldName(field string) string {
	replacements := map[string]string{
		"api_key":        "API key",
		"order_prefix":   "order prefix",
		"gallery_path":   "gallery path",
		"output_path":    "output path",
		"fallback_url":   "fallback URL",
		"enrichment.url": "enrichment URL",
	}

	if formatted, ok := replacements[field]; ok {
		return formatted
	}

	return field
}

// ValidatePrefixes checks that at least one order-number prefix is configured
// and that every prefix is made of letters only.
func ValidatePrefixes(prefixes []string) error {
	if len(prefixes) == 0 {
		return &ConfigError{Field: "order_prefix", Message: "at least one order prefix is required"}
	}
	for _, p := range prefixes {
		if p == "" {
			return &ConfigError{Field: "order_prefix", Message: "order prefix must not be empty"}
		}
		for _, r := range p {
			if (r < 'A' || r > 'Z') && (r < 'a' || r > 'z') {
				return &ConfigError{
					Field:   "order_prefix",
					Message: fmt.Sprintf("order prefix %q must contain letters only", p),
				}
			}
		}
	}
	return nil
}

// OverlappingPrefixes returns pairs where one prefix is a prefix of another.
// Such lists are allowed but make the configured order significant.
func OverlappingPrefixes(prefixes []string) [][2]string {
	var pairs [][2]string
	for i := 0; i < len(prefixes); i++ {
		for j := i + 1; j < len(prefixes); j++ {
			a, b := strings.ToUpper(prefixes[i]), strings.ToUpper(prefixes[j])
			if a == "" || b == "" {
				continue
			}
			if strings.HasPrefix(a, b) || strings.HasPrefix(b, a) {
				pairs = append(pairs, [2]string{prefixes[i], prefixes[j]})
			}
		}
	}
	return pairs
}
