package enums

import "fmt"

// PriceRange describes the catalog price band filters offered in the shop view.
type PriceRange string

const (
	PriceRangeAll     PriceRange = "All"
	PriceRangeUnder50 PriceRange = "Under $50"
	PriceRangeMid     PriceRange = "$50 - $200"
	PriceRangePremium PriceRange = "Premium ($200+)"
)

var validPriceRanges = []PriceRange{
	PriceRangeAll,
	PriceRangeUnder50,
	PriceRangeMid,
	PriceRangePremium,
}

// IsValid reports whether the value matches a known price range.
func (p PriceRange) IsValid() bool {
	for _, candidate := range validPriceRanges {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePriceRange converts the raw string to PriceRange.
func ParsePriceRange(value string) (PriceRange, error) {
	for _, candidate := range validPriceRanges {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid price range %q", value)
}
