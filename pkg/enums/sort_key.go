package enums

import "fmt"

// SortKey describes the catalog sort orders offered in the shop view.
type SortKey string

const (
	SortKeyFeatured  SortKey = "Featured"
	SortKeyPriceAsc  SortKey = "Price: Low to High"
	SortKeyPriceDesc SortKey = "Price: High to Low"
)

var validSortKeys = []SortKey{
	SortKeyFeatured,
	SortKeyPriceAsc,
	SortKeyPriceDesc,
}

// IsValid reports whether the value matches a known sort key.
func (s SortKey) IsValid() bool {
	for _, candidate := range validSortKeys {
		if candidate == s {
			return true
		}
	}
	return false
}

// ParseSortKey converts the raw string to SortKey.
func ParseSortKey(value string) (SortKey, error) {
	for _, candidate := range validSortKeys {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid sort key %q", value)
}
